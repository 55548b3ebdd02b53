// Package linker implements the vocabulary link discovery pipeline:
// text normalization, pairwise similarity scoring, keyword-theme and
// causal-pattern matching, and link aggregation. The package is pure
// computation over in-memory data; callers own all I/O.
package linker

import (
	"strings"
	"unicode"
)

// stopwords are dropped during tokenization. Kept deliberately small:
// vocabulary names are short phrases, and over-aggressive removal
// would empty them out.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "for": {}, "from": {}, "in": {}, "into": {},
	"is": {}, "it": {}, "of": {}, "on": {}, "or": {}, "over": {},
	"the": {}, "to": {}, "under": {}, "with": {},
}

// Normalize lowercases text, replaces every punctuation run with a
// single space, collapses whitespace, and trims. Empty input yields "".
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits normalized text on whitespace, dropping empty tokens
// and stopwords.
func Tokenize(text string) []string {
	fields := strings.Fields(Normalize(text))
	tokens := fields[:0]
	for _, f := range fields {
		if _, skip := stopwords[f]; !skip {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// tokenSet converts a token slice to a set.
func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
