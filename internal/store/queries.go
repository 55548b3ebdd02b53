package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/rvisser/bowlink/internal/models"
)

// vocabRecord is the database shape of a vocabulary item.
type vocabRecord struct {
	ID       surrealmodels.RecordID `json:"id"`
	Name     string                 `json:"name"`
	Category string                 `json:"category"`
	Created  time.Time              `json:"created,omitempty"`
}

// acceptedRecord is the database shape of an accepted link.
type acceptedRecord struct {
	ID      surrealmodels.RecordID `json:"id"`
	FromID  string                 `json:"from_id"`
	ToID    string                 `json:"to_id"`
	Score   float64                `json:"score"`
	Method  string                 `json:"method"`
	Created time.Time              `json:"created,omitempty"`
}

// UpsertItems creates or updates vocabulary items by ID.
func (c *Client) UpsertItems(ctx context.Context, items []models.VocabularyItem) error {
	for _, item := range items {
		_, err := surrealdb.Query[[]vocabRecord](ctx, c.db, `
			UPSERT type::record("vocab_item", $id) SET
				name = $name,
				category = $category
		`, map[string]any{
			"id":       item.ID,
			"name":     item.Name,
			"category": string(item.Category),
		})
		if err != nil {
			return fmt.Errorf("upsert item %s: %w", item.ID, wrapQueryError(err))
		}
	}
	return nil
}

// ListVocabulary loads the full vocabulary snapshot, grouped by
// category, ordered by record ID within each category.
func (c *Client) ListVocabulary(ctx context.Context) (models.Vocabulary, error) {
	results, err := surrealdb.Query[[]vocabRecord](ctx, c.db, `
		SELECT * FROM vocab_item ORDER BY category, id
	`, nil)
	if err != nil {
		return models.Vocabulary{}, fmt.Errorf("list vocabulary: %w", wrapQueryError(err))
	}

	var vocab models.Vocabulary
	if results == nil || len(*results) == 0 {
		return vocab, nil
	}

	for _, rec := range (*results)[0].Result {
		id, ok := rec.ID.ID.(string)
		if !ok {
			return models.Vocabulary{}, fmt.Errorf("unexpected record ID type: %T", rec.ID.ID)
		}
		category, err := models.ParseCategory(rec.Category)
		if err != nil {
			return models.Vocabulary{}, fmt.Errorf("item %s: %w", id, err)
		}
		item := models.VocabularyItem{ID: id, Name: rec.Name, Category: category}
		switch category {
		case models.CategoryActivity:
			vocab.Activities = append(vocab.Activities, item)
		case models.CategoryPressure:
			vocab.Pressures = append(vocab.Pressures, item)
		case models.CategoryConsequence:
			vocab.Consequences = append(vocab.Consequences, item)
		case models.CategoryControl:
			vocab.Controls = append(vocab.Controls, item)
		}
	}
	return vocab, nil
}

// AcceptLink persists a confirmed link. The pair is unique regardless
// of direction; accepting an existing pair returns ErrAlreadyExists.
func (c *Client) AcceptLink(ctx context.Context, link models.CandidateLink) error {
	_, err := surrealdb.Query[[]acceptedRecord](ctx, c.db, `
		CREATE type::record("accepted_link", $id) SET
			from_id = $from,
			to_id = $to,
			score = $score,
			method = $method
	`, map[string]any{
		"id":     uuid.NewString(),
		"from":   link.FromID,
		"to":     link.ToID,
		"score":  link.Score,
		"method": link.Method,
	})
	if err != nil {
		return fmt.Errorf("accept link %s->%s: %w", link.FromID, link.ToID, wrapQueryError(err))
	}
	return nil
}

// ListAcceptedPairs returns the unordered pair keys of all accepted
// links, the exclusion input for recommendations.
func (c *Client) ListAcceptedPairs(ctx context.Context) ([]models.PairKey, error) {
	results, err := surrealdb.Query[[]acceptedRecord](ctx, c.db, `
		SELECT * FROM accepted_link ORDER BY from_id, to_id
	`, nil)
	if err != nil {
		return nil, fmt.Errorf("list accepted links: %w", wrapQueryError(err))
	}

	var pairs []models.PairKey
	if results == nil || len(*results) == 0 {
		return pairs, nil
	}
	for _, rec := range (*results)[0].Result {
		pairs = append(pairs, models.NewPairKey(rec.FromID, rec.ToID))
	}
	return pairs, nil
}

// GetItem retrieves a vocabulary item by ID. Returns ErrNotFound if absent.
func (c *Client) GetItem(ctx context.Context, id string) (models.VocabularyItem, error) {
	results, err := surrealdb.Query[[]vocabRecord](ctx, c.db, `
		SELECT * FROM type::record("vocab_item", $id)
	`, map[string]any{"id": id})
	if err != nil {
		return models.VocabularyItem{}, fmt.Errorf("get item: %w", wrapQueryError(err))
	}
	if results == nil || len(*results) == 0 || len((*results)[0].Result) == 0 {
		return models.VocabularyItem{}, fmt.Errorf("item %s: %w", id, ErrNotFound)
	}

	rec := (*results)[0].Result[0]
	category, err := models.ParseCategory(rec.Category)
	if err != nil {
		return models.VocabularyItem{}, fmt.Errorf("item %s: %w", id, err)
	}
	return models.VocabularyItem{ID: id, Name: rec.Name, Category: category}, nil
}
