package linker

import "github.com/rvisser/bowlink/internal/models"

// CausalPatternStrength is the fixed score of a causal-pattern link.
const CausalPatternStrength = 0.8

// CategoryPair keys a causal matcher by link direction.
type CategoryPair struct {
	From models.Category
	To   models.Category
}

// causalMatcher reports whether a causal pattern holds between two
// items of the pair's categories.
type causalMatcher func(from, to models.VocabularyItem) bool

// causalMatchers registers the pattern per category pair. Only the
// Activity->Pressure pattern is implemented; Pressure->Consequence and
// Control->* are open extension points behind the same keying.
var causalMatchers = map[CategoryPair]causalMatcher{
	{From: models.CategoryActivity, To: models.CategoryPressure}: sharesToken,
}

// sharesToken reports whether the two names share any token.
func sharesToken(from, to models.VocabularyItem) bool {
	fromTokens := tokenSet(Tokenize(from.Name))
	if len(fromTokens) == 0 {
		return false
	}
	for _, t := range Tokenize(to.Name) {
		if _, ok := fromTokens[t]; ok {
			return true
		}
	}
	return false
}

// ScanCausalPatterns emits a fixed-strength causal link for each
// Activity whose name shares a token with a Pressure's name.
func ScanCausalPatterns(activities, pressures []models.VocabularyItem) []models.CandidateLink {
	match := causalMatchers[CategoryPair{From: models.CategoryActivity, To: models.CategoryPressure}]

	var links []models.CandidateLink
	for _, act := range activities {
		for _, pr := range pressures {
			if !match(act, pr) {
				continue
			}
			links = append(links, newLink(act, pr, CausalPatternStrength, models.MethodCausal))
		}
	}
	return links
}
