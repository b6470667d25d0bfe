// Package similarity provides the edit-distance string scorer shared by
// every fuzzy-matching component (issuer, format, vocabulary dedup).
package similarity

import (
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
)

// Score returns a normalized similarity in [0,1]: 1.0 for identical
// strings, 0.0 for completely different ones. Symmetric in its
// arguments. Inputs are compared as-is; use Normalize first when
// case/punctuation should not matter.
func Score(a, b string) float64 {
	if a == b {
		return 1.0
	}
	return levenshtein.Similarity(a, b, nil)
}

// NormalizedScore compares the normalized forms of a and b.
func NormalizedScore(a, b string) float64 {
	return Score(Normalize(a), Normalize(b))
}

// Normalize lowercases, strips punctuation, and collapses runs of
// whitespace to a single space. This is the shared identity form for
// organization names, aliases, and vocabulary terms.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// BestMatch scores needle against every candidate and returns the
// index and score of the best one. Returns (-1, 0) for an empty
// candidate list.
func BestMatch(needle string, candidates []string) (int, float64) {
	bestIdx, bestScore := -1, 0.0
	for i, c := range candidates {
		if s := Score(needle, c); s > bestScore {
			bestIdx, bestScore = i, s
		}
	}
	return bestIdx, bestScore
}
