package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvisser/bowlink/internal/graph"
	"github.com/rvisser/bowlink/internal/linker"
	"github.com/rvisser/bowlink/internal/models"
)

func testService() *LinkerService {
	return NewLinkerService(linker.DefaultConfig(), nil, nil, nil, nil)
}

func testVocabulary() models.Vocabulary {
	return models.Vocabulary{
		Activities: []models.VocabularyItem{
			{ID: "act-1", Name: "Industrial chemical discharge", Category: models.CategoryActivity},
			{ID: "act-2", Name: "Agricultural fertiliser use", Category: models.CategoryActivity},
		},
		Pressures: []models.VocabularyItem{
			{ID: "pre-1", Name: "Chemical pollution of waterways", Category: models.CategoryPressure},
			{ID: "pre-2", Name: "Nutrient enrichment of waterways", Category: models.CategoryPressure},
		},
		Consequences: []models.VocabularyItem{
			{ID: "con-1", Name: "Loss of aquatic species", Category: models.CategoryConsequence},
		},
		Controls: []models.VocabularyItem{
			{ID: "ctl-1", Name: "Chemical discharge regulation", Category: models.CategoryControl},
		},
	}
}

func TestSuggestLinks(t *testing.T) {
	svc := testService()

	links, err := svc.SuggestLinks(context.Background(), testVocabulary(), DefaultSuggestOptions())
	require.NoError(t, err)
	require.NotEmpty(t, links)

	// The act-1/pre-1 pair: jaccard 0.2 is below the 0.3 threshold,
	// but the pollution theme and the causal pattern both fire; the
	// causal 0.8 wins dedup.
	var found bool
	for _, l := range links {
		if l.FromID == "act-1" && l.ToID == "pre-1" {
			found = true
			assert.Equal(t, models.MethodCausal, l.Method)
			assert.Equal(t, 0.8, l.Score)
		}
		assert.NotEqual(t, l.FromType, l.ToType, "cross-category invariant")
	}
	assert.True(t, found, "act-1 -> pre-1 should link")

	// Ranked by score descending.
	for i := 1; i < len(links); i++ {
		assert.GreaterOrEqual(t, links[i-1].Score, links[i].Score)
	}
}

func TestSuggestLinksDeterministic(t *testing.T) {
	svc := testService()
	vocab := testVocabulary()

	first, err := svc.SuggestLinks(context.Background(), vocab, DefaultSuggestOptions())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := svc.SuggestLinks(context.Background(), vocab, DefaultSuggestOptions())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSuggestLinksUnknownMethod(t *testing.T) {
	svc := testService()

	_, err := svc.SuggestLinks(context.Background(), testVocabulary(), SuggestOptions{
		Methods: []string{"bogus"},
	})
	assert.Error(t, err)
}

func TestSuggestLinksEmbeddingWithoutEmbedder(t *testing.T) {
	svc := testService()

	_, err := svc.SuggestLinks(context.Background(), testVocabulary(), SuggestOptions{
		Methods: []string{"embedding"},
	})
	assert.Error(t, err)
}

// stubEmbedder returns fixed vectors keyed by text.
type stubEmbedder struct {
	vectors map[string][]float32
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	v, ok := s.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no vector for %q", text)
	}
	return v, nil
}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := s.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (s *stubEmbedder) Model() string  { return "stub" }
func (s *stubEmbedder) Dimension() int { return 3 }

func TestSuggestLinksEmbedding(t *testing.T) {
	vocab := models.Vocabulary{
		Activities: []models.VocabularyItem{
			{ID: "act-1", Name: "dredging", Category: models.CategoryActivity},
		},
		Pressures: []models.VocabularyItem{
			{ID: "pre-1", Name: "turbidity", Category: models.CategoryPressure},
			{ID: "pre-2", Name: "noise", Category: models.CategoryPressure},
		},
	}
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"dredging":  {1, 0, 0},
		"turbidity": {1, 0.1, 0}, // near-parallel to dredging
		"noise":     {0, 0, 1},   // orthogonal
	}}
	svc := NewLinkerService(linker.DefaultConfig(), nil, embedder, nil, nil)

	links, err := svc.SuggestLinks(context.Background(), vocab, SuggestOptions{
		Threshold: 0.5,
		Methods:   []string{"embedding"},
	})
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "act-1", links[0].FromID)
	assert.Equal(t, "pre-1", links[0].ToID)
	assert.Equal(t, models.MethodEmbedding, links[0].Method)
	assert.InDelta(t, 0.995, links[0].Score, 0.01)
}

func TestTypeScore(t *testing.T) {
	tests := []struct {
		from, to models.Category
		want     float64
	}{
		{models.CategoryActivity, models.CategoryPressure, 1.0},
		{models.CategoryPressure, models.CategoryConsequence, 0.9},
		{models.CategoryControl, models.CategoryPressure, 0.8},
		{models.CategoryControl, models.CategoryConsequence, 0.8},
		{models.CategoryActivity, models.CategoryConsequence, 0.5},
		{models.CategoryControl, models.CategoryActivity, 0.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, typeScore(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestRecommend(t *testing.T) {
	svc := testService()

	recs, err := svc.Recommend(context.Background(), testVocabulary(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 20)

	for i, r := range recs {
		assert.InDelta(t, r.Score*r.TypeScore, r.RecommendationScore, 1e-9)
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].RecommendationScore, r.RecommendationScore)
		}
	}
}

func TestRecommendExcludesExisting(t *testing.T) {
	svc := testService()
	vocab := testVocabulary()

	all, err := svc.Recommend(context.Background(), vocab, nil)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	// Exclude the top pair, reversed: exclusion is unordered.
	top := all[0]
	existing := []models.PairKey{models.NewPairKey(top.ToID, top.FromID)}

	filtered, err := svc.Recommend(context.Background(), vocab, existing)
	require.NoError(t, err)
	for _, r := range filtered {
		assert.NotEqual(t, top.Key(), r.Key(), "excluded pair recommended")
	}
}

func TestClusters(t *testing.T) {
	svc := testService()
	vocab := testVocabulary()

	links, err := svc.SuggestLinks(context.Background(), vocab, DefaultSuggestOptions())
	require.NoError(t, err)

	assignments, err := svc.Clusters(links, graph.AlgorithmLouvain)
	require.NoError(t, err)
	require.NotEmpty(t, assignments)

	seen := make(map[string]bool)
	for _, a := range assignments {
		assert.False(t, seen[a.ItemID], "item %s assigned twice", a.ItemID)
		seen[a.ItemID] = true
		assert.GreaterOrEqual(t, a.ClusterID, 0)
	}
}

func TestClustersUnknownAlgorithm(t *testing.T) {
	svc := testService()
	_, err := svc.Clusters(nil, graph.Algorithm("bogus"))
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	svc := testService()
	linkSet := models.LinkSet{
		{FromID: "act-1", FromType: models.CategoryActivity, ToID: "pre-1", ToType: models.CategoryPressure, Score: 0.6},
		{FromID: "pre-1", FromType: models.CategoryPressure, ToID: "con-1", ToType: models.CategoryConsequence, Score: 0.5},
	}

	paths := svc.Paths(linkSet, "act-1", "con-1", 3)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"act-1", "pre-1", "con-1"}, paths[0].NodeIDs)

	assert.Empty(t, svc.Paths(linkSet, "act-1", "con-9", 3))
}
