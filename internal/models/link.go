package models

// Link methods. Keyword-theme links use a dynamic method name of the
// form "keyword_<theme>", built with KeywordMethod.
const (
	MethodJaccard   = "similarity_jaccard"
	MethodCosine    = "similarity_cosine"
	MethodString    = "similarity_string"
	MethodEmbedding = "similarity_embedding"
	MethodCausal    = "causal_pattern"
)

// KeywordMethod returns the method name for a keyword-theme link.
func KeywordMethod(theme string) string {
	return "keyword_" + theme
}

// CandidateLink is an unconfirmed, scored suggestion of a relationship
// between two items of different categories. Multiple candidates may
// exist for the same pair from different methods until aggregation.
type CandidateLink struct {
	FromID   string   `json:"from_id"`
	FromName string   `json:"from_name"`
	FromType Category `json:"from_type"`
	ToID     string   `json:"to_id"`
	ToName   string   `json:"to_name"`
	ToType   Category `json:"to_type"`
	Score    float64  `json:"score"`
	Method   string   `json:"method"`
}

// PairKey identifies an unordered (from, to) pair. The two IDs are
// stored in lexicographic order so both directions map to one key.
type PairKey struct {
	A string
	B string
}

// NewPairKey builds the canonical unordered key for two item IDs.
func NewPairKey(fromID, toID string) PairKey {
	if toID < fromID {
		fromID, toID = toID, fromID
	}
	return PairKey{A: fromID, B: toID}
}

// Key returns the unordered pair key for the link.
func (l CandidateLink) Key() PairKey {
	return NewPairKey(l.FromID, l.ToID)
}

// LinkSet is an ordered sequence of candidate links after
// deduplication and ranking. Invariants: no two entries share the same
// unordered (FromID, ToID) pair, and FromType != ToType on every entry.
type LinkSet []CandidateLink

// Recommendation is a candidate link enriched with a category-pair
// priority weight. RecommendationScore = Score * TypeScore.
type Recommendation struct {
	CandidateLink
	TypeScore           float64 `json:"type_score"`
	RecommendationScore float64 `json:"recommendation_score"`
}

// ClusterAssignment records the community a graph node was placed in.
// Clusters are recomputed on demand, never persisted.
type ClusterAssignment struct {
	ItemID    string   `json:"item_id"`
	ClusterID int      `json:"cluster_id"`
	Type      Category `json:"type"`
}

// PathResult is one simple path between two items, with the sum of
// edge scores along it.
type PathResult struct {
	NodeIDs    []string `json:"node_ids"`
	Length     int      `json:"length"`
	TotalScore float64  `json:"total_score"`
}
