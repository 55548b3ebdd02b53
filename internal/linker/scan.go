package linker

import (
	"sync"

	"github.com/rvisser/bowlink/internal/models"
)

// Config holds the tunable thresholds of the link discovery pipeline.
type Config struct {
	// SimilarityThreshold is the minimum score for a pairwise
	// similarity candidate to be emitted.
	SimilarityThreshold float64

	// MaxLinksPerItem caps the out-degree of each source item after
	// aggregation.
	MaxLinksPerItem int

	// MinSimilarity filters links when building the graph.
	MinSimilarity float64

	// Workers sets the parallelism of the pairwise scan. Values < 2
	// scan sequentially. Parallelism is a performance option only;
	// results are identical either way.
	Workers int
}

// DefaultConfig returns the pipeline defaults.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: 0.3,
		MaxLinksPerItem:     10,
		MinSimilarity:       0.3,
		Workers:             1,
	}
}

// causalRank orders categories along the bowtie flow for orienting
// undirected matches. Controls always act as sources.
var causalRank = map[models.Category]int{
	models.CategoryControl:     0,
	models.CategoryActivity:    1,
	models.CategoryPressure:    2,
	models.CategoryConsequence: 3,
}

// orient returns the two items in canonical link direction:
// Activity before Pressure before Consequence, Control first against
// anything. Keeps the aggregated LinkSet's directions consistent with
// the recommendation priority table.
func orient(a, b models.VocabularyItem) (models.VocabularyItem, models.VocabularyItem) {
	if causalRank[a.Category] <= causalRank[b.Category] {
		return a, b
	}
	return b, a
}

func newLink(from, to models.VocabularyItem, score float64, method string) models.CandidateLink {
	return models.CandidateLink{
		FromID:   from.ID,
		FromName: from.Name,
		FromType: from.Category,
		ToID:     to.ID,
		ToName:   to.Name,
		ToType:   to.Category,
		Score:    score,
		Method:   method,
	}
}

// ProgressFunc receives scan progress as (source items done, total).
type ProgressFunc func(done, total int)

// ScanSimilarity computes pairwise similarity for every cross-category
// pair and emits a candidate link for each score >= threshold. The
// scan is O(n^2) in the total item count, which is fine for the
// hundreds of terms a curated vocabulary holds; past low thousands a
// blocking or indexing step would be needed.
func ScanSimilarity(items []models.VocabularyItem, threshold float64, method SimilarityMethod, workers int, progress ProgressFunc) ([]models.CandidateLink, error) {
	if _, err := ParseSimilarityMethod(string(method)); err != nil {
		return nil, err
	}

	if workers < 2 || len(items) < 2 {
		return scanRange(items, 0, len(items), threshold, method, progress), nil
	}

	// Partition source indices across workers; each produces a local
	// slice that is concatenated in worker order afterward, so the
	// result matches the sequential scan exactly.
	if workers > len(items) {
		workers = len(items)
	}
	parts := make([][]models.CandidateLink, workers)
	chunk := (len(items) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(items) {
			hi = len(items)
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			parts[w] = scanRange(items, lo, hi, threshold, method, nil)
		}(w, lo, hi)
	}
	wg.Wait()

	var links []models.CandidateLink
	for _, p := range parts {
		links = append(links, p...)
	}
	if progress != nil {
		progress(len(items), len(items))
	}
	return links, nil
}

// scanRange scans pairs (i, j) with lo <= i < hi and i < j < len(items).
// Method validity is checked by the caller.
func scanRange(items []models.VocabularyItem, lo, hi int, threshold float64, method SimilarityMethod, progress ProgressFunc) []models.CandidateLink {
	var links []models.CandidateLink
	for i := lo; i < hi; i++ {
		for j := i + 1; j < len(items); j++ {
			if items[i].Category == items[j].Category {
				continue
			}
			score, err := Similarity(items[i].Name, items[j].Name, method)
			if err != nil {
				// Unreachable: method validated up front.
				continue
			}
			if score < threshold {
				continue
			}
			from, to := orient(items[i], items[j])
			links = append(links, newLink(from, to, score, "similarity_"+string(method)))
		}
		if progress != nil {
			progress(i+1-lo, hi-lo)
		}
	}
	return links
}
