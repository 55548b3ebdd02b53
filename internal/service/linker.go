// Package service orchestrates the link discovery pipeline over a
// vocabulary snapshot and shapes its output for callers.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/rvisser/bowlink/internal/embedding"
	"github.com/rvisser/bowlink/internal/graph"
	"github.com/rvisser/bowlink/internal/linker"
	"github.com/rvisser/bowlink/internal/metrics"
	"github.com/rvisser/bowlink/internal/models"
)

// Recommendation pipeline constants: a broad scan whose ranking the
// type-score table then reorders.
const (
	recommendThreshold    = 0.2
	recommendMaxPerSource = 10
	recommendLimit        = 20
)

// LinkerService runs the discovery pipeline. The embedder is optional;
// when nil the embedding method is unavailable.
type LinkerService struct {
	cfg      linker.Config
	themes   linker.ThemeTable
	embedder embedding.Embedder
	metrics  *metrics.Collector
	logger   *slog.Logger
}

// NewLinkerService creates a linker service. A nil theme table uses the
// defaults; a nil collector disables metrics recording.
func NewLinkerService(cfg linker.Config, themes linker.ThemeTable, embedder embedding.Embedder, mc *metrics.Collector, logger *slog.Logger) *LinkerService {
	if themes == nil {
		themes = linker.DefaultThemes()
	}
	if mc == nil {
		mc = metrics.NewCollector()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LinkerService{
		cfg:      cfg,
		themes:   themes,
		embedder: embedder,
		metrics:  mc,
		logger:   logger,
	}
}

// Metrics returns the service's collector.
func (s *LinkerService) Metrics() *metrics.Collector {
	return s.metrics
}

// SuggestOptions configures one discovery run. Zero values fall back
// to the service config.
type SuggestOptions struct {
	Threshold    float64
	MaxPerSource int

	// Methods are the similarity methods to scan with. Empty means
	// jaccard only. "embedding" requires a configured embedder.
	Methods []string

	// Themes / Causal toggle the non-similarity matchers.
	Themes bool
	Causal bool

	// Progress, when set, receives pairwise scan progress.
	Progress linker.ProgressFunc
}

// DefaultSuggestOptions returns the standard full pipeline: jaccard
// similarity plus theme and causal matchers.
func DefaultSuggestOptions() SuggestOptions {
	return SuggestOptions{
		Methods: []string{string(linker.SimilarityJaccard)},
		Themes:  true,
		Causal:  true,
	}
}

// SuggestLinks runs the configured matchers over the vocabulary and
// aggregates their candidates into a ranked LinkSet. Deterministic for
// identical input and options.
func (s *LinkerService) SuggestLinks(ctx context.Context, vocab models.Vocabulary, opts SuggestOptions) (models.LinkSet, error) {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = s.cfg.SimilarityThreshold
	}
	maxPerSource := opts.MaxPerSource
	if maxPerSource == 0 {
		maxPerSource = s.cfg.MaxLinksPerItem
	}
	methods := opts.Methods
	if len(methods) == 0 {
		methods = []string{string(linker.SimilarityJaccard)}
	}

	items := vocab.Items()
	var candidates []models.CandidateLink

	for _, m := range methods {
		if m == "embedding" {
			links, err := s.scanEmbedding(ctx, items, threshold)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, links...)
			continue
		}

		method, err := linker.ParseSimilarityMethod(m)
		if err != nil {
			return nil, err
		}
		start := time.Now()
		links, err := linker.ScanSimilarity(items, threshold, method, s.cfg.Workers, opts.Progress)
		if err != nil {
			return nil, err
		}
		s.metrics.RecordTiming(metrics.OpScanSimilarity, time.Since(start))
		candidates = append(candidates, links...)
	}

	if opts.Themes {
		start := time.Now()
		candidates = append(candidates, linker.ScanThemes(items, s.themes)...)
		s.metrics.RecordTiming(metrics.OpScanThemes, time.Since(start))
	}
	if opts.Causal {
		start := time.Now()
		candidates = append(candidates, linker.ScanCausalPatterns(vocab.Activities, vocab.Pressures)...)
		s.metrics.RecordTiming(metrics.OpScanCausal, time.Since(start))
	}

	start := time.Now()
	linkSet := linker.Aggregate(candidates, maxPerSource)
	s.metrics.RecordTiming(metrics.OpAggregate, time.Since(start))

	s.logger.Info("link discovery complete",
		"items", len(items),
		"candidates", len(candidates),
		"links", len(linkSet),
	)
	return linkSet, nil
}

// typeScores weights recommendations by how central the category pair
// is to a bowtie: activity causes come first, then consequence chains,
// then control placements.
var typeScores = map[linker.CategoryPair]float64{
	{From: models.CategoryActivity, To: models.CategoryPressure}:    1.0,
	{From: models.CategoryPressure, To: models.CategoryConsequence}: 0.9,
	{From: models.CategoryControl, To: models.CategoryPressure}:     0.8,
	{From: models.CategoryControl, To: models.CategoryConsequence}:  0.8,
}

// defaultTypeScore applies to category pairs outside the table.
const defaultTypeScore = 0.5

func typeScore(from, to models.Category) float64 {
	if ts, ok := typeScores[linker.CategoryPair{From: from, To: to}]; ok {
		return ts
	}
	return defaultTypeScore
}

// Recommend runs a broad discovery pass and returns the top-ranked
// suggestions not already present in existing (matched as unordered
// pairs). Deterministic given identical inputs.
func (s *LinkerService) Recommend(ctx context.Context, vocab models.Vocabulary, existing []models.PairKey) ([]models.Recommendation, error) {
	linkSet, err := s.SuggestLinks(ctx, vocab, SuggestOptions{
		Threshold:    recommendThreshold,
		MaxPerSource: recommendMaxPerSource,
		Methods:      []string{string(linker.SimilarityJaccard)},
		Themes:       true,
		Causal:       true,
	})
	if err != nil {
		return nil, err
	}

	known := make(map[models.PairKey]struct{}, len(existing))
	for _, k := range existing {
		known[k] = struct{}{}
	}

	recs := make([]models.Recommendation, 0, len(linkSet))
	for _, link := range linkSet {
		if _, ok := known[link.Key()]; ok {
			continue
		}
		ts := typeScore(link.FromType, link.ToType)
		recs = append(recs, models.Recommendation{
			CandidateLink:       link,
			TypeScore:           ts,
			RecommendationScore: link.Score * ts,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].RecommendationScore != recs[j].RecommendationScore {
			return recs[i].RecommendationScore > recs[j].RecommendationScore
		}
		if recs[i].FromID != recs[j].FromID {
			return recs[i].FromID < recs[j].FromID
		}
		return recs[i].ToID < recs[j].ToID
	})

	if len(recs) > recommendLimit {
		recs = recs[:recommendLimit]
	}
	return recs, nil
}

// Clusters builds the filtered graph and assigns every node to a
// community using the requested algorithm.
func (s *LinkerService) Clusters(linkSet models.LinkSet, algorithm graph.Algorithm) ([]models.ClusterAssignment, error) {
	g := graph.Build(linkSet, s.cfg.MinSimilarity)

	start := time.Now()
	communities, err := graph.Communities(g, algorithm)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordTiming(metrics.OpCluster, time.Since(start))

	assignments := make([]models.ClusterAssignment, 0, len(communities))
	for _, id := range g.NodeIDs() {
		node, _ := g.Node(id)
		assignments = append(assignments, models.ClusterAssignment{
			ItemID:    id,
			ClusterID: communities[id],
			Type:      node.Category,
		})
	}
	return assignments, nil
}

// Paths enumerates bounded simple paths between two items over the
// link set.
func (s *LinkerService) Paths(linkSet models.LinkSet, fromID, toID string, maxLength int) []models.PathResult {
	start := time.Now()
	paths := graph.FindPaths(linkSet, fromID, toID, maxLength)
	s.metrics.RecordTiming(metrics.OpFindPaths, time.Since(start))
	return paths
}

// scanEmbedding scores cross-category pairs by cosine similarity of
// name embeddings. Requires a configured embedder; one network batch
// per run, then pure computation.
func (s *LinkerService) scanEmbedding(ctx context.Context, items []models.VocabularyItem, threshold float64) ([]models.CandidateLink, error) {
	if s.embedder == nil {
		return nil, fmt.Errorf("embedding similarity requires a configured embedder")
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	start := time.Now()
	vectors, err := s.embedder.EmbedBatch(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("embed vocabulary: %w", err)
	}
	s.metrics.RecordTiming(metrics.OpEmbedding, time.Since(start))

	var links []models.CandidateLink
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if items[i].Category == items[j].Category {
				continue
			}
			score := vectorCosine(vectors[i], vectors[j])
			if score < threshold {
				continue
			}
			from, to := items[i], items[j]
			if linkOrientSwap(from, to) {
				from, to = to, from
			}
			links = append(links, models.CandidateLink{
				FromID:   from.ID,
				FromName: from.Name,
				FromType: from.Category,
				ToID:     to.ID,
				ToName:   to.Name,
				ToType:   to.Category,
				Score:    score,
				Method:   models.MethodEmbedding,
			})
		}
	}
	return links, nil
}

// linkOrientSwap reports whether the pair should be emitted b->a to
// match the linker's canonical direction.
func linkOrientSwap(a, b models.VocabularyItem) bool {
	rank := map[models.Category]int{
		models.CategoryControl:     0,
		models.CategoryActivity:    1,
		models.CategoryPressure:    2,
		models.CategoryConsequence: 3,
	}
	return rank[a.Category] > rank[b.Category]
}

// vectorCosine is the zero-norm-guarded cosine of two embedding
// vectors, clamped to [0, 1].
func vectorCosine(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	score := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
