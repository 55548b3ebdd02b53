package linker

import (
	"fmt"
	"math"
)

// SimilarityMethod selects the pairwise text similarity strategy.
type SimilarityMethod string

const (
	// SimilarityJaccard scores token-set overlap. Rewards shared
	// vocabulary regardless of frequency; the default for short names.
	SimilarityJaccard SimilarityMethod = "jaccard"

	// SimilarityCosine scores term-frequency vectors, weighting
	// repeated terms.
	SimilarityCosine SimilarityMethod = "cosine"

	// SimilarityString scores normalized edit similarity
	// (Jaro-Winkler), catching near-duplicate phrasing.
	SimilarityString SimilarityMethod = "string"
)

// ParseSimilarityMethod validates a method name. Unknown values error
// rather than falling back, so caller mistakes are not masked.
func ParseSimilarityMethod(s string) (SimilarityMethod, error) {
	switch SimilarityMethod(s) {
	case SimilarityJaccard, SimilarityCosine, SimilarityString:
		return SimilarityMethod(s), nil
	default:
		return "", fmt.Errorf("unsupported similarity method: %q", s)
	}
}

// Similarity computes the pairwise similarity of two texts in [0, 1].
// Degenerate input (empty after normalization) scores 0 for every
// method; "no data" is a normal leaf condition, not an error.
func Similarity(a, b string, method SimilarityMethod) (float64, error) {
	switch method {
	case SimilarityJaccard:
		return jaccard(a, b), nil
	case SimilarityCosine:
		return cosine(a, b), nil
	case SimilarityString:
		return jaroWinkler(Normalize(a), Normalize(b)), nil
	default:
		return 0, fmt.Errorf("unsupported similarity method: %q", method)
	}
}

// jaccard is |intersection| / |union| over token sets.
func jaccard(a, b string) float64 {
	setA := tokenSet(Tokenize(a))
	setB := tokenSet(Tokenize(b))
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// cosine is the dot product of term-frequency vectors over the product
// of their L2 norms. Zero-norm input returns 0 instead of NaN so a
// degenerate name can never poison downstream ranking.
func cosine(a, b string) float64 {
	freqA := termFrequencies(Tokenize(a))
	freqB := termFrequencies(Tokenize(b))

	var dot, normA, normB float64
	for t, fa := range freqA {
		normA += fa * fa
		if fb, ok := freqB[t]; ok {
			dot += fa * fb
		}
	}
	for _, fb := range freqB {
		normB += fb * fb
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func termFrequencies(tokens []string) map[string]float64 {
	freq := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}
	return freq
}

// jaroWinkler computes Jaro-Winkler similarity over two already
// normalized strings. Either string empty scores 0.
func jaroWinkler(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	ra := []rune(a)
	rb := []rune(b)

	// Matching window: half the longer string, minus one.
	window := len(ra)
	if len(rb) > window {
		window = len(rb)
	}
	window = window/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, len(ra))
	matchedB := make([]bool, len(rb))
	matches := 0
	for i, ca := range ra {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window + 1
		if hi > len(rb) {
			hi = len(rb)
		}
		for j := lo; j < hi; j++ {
			if matchedB[j] || rb[j] != ca {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	// Count transpositions between the matched sequences.
	transpositions := 0
	j := 0
	for i := range ra {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if ra[i] != rb[j] {
			transpositions++
		}
		j++
	}
	transpositions /= 2

	m := float64(matches)
	jaro := (m/float64(len(ra)) + m/float64(len(rb)) + (m-float64(transpositions))/m) / 3

	// Winkler prefix boost: up to 4 common leading runes, scale 0.1.
	prefix := 0
	for i := 0; i < len(ra) && i < len(rb) && i < 4; i++ {
		if ra[i] != rb[i] {
			break
		}
		prefix++
	}
	return jaro + float64(prefix)*0.1*(1-jaro)
}
