package constants

// Matching thresholds are part of the external contract and must not
// vary per environment. Callers treat them as fixed constants, never
// configuration.
const (
	// IssuerMatchThreshold is the minimum fuzzy similarity for an
	// issuer name/code/alias match, and the minimum recognizer
	// confidence for auto-creating a new organization.
	IssuerMatchThreshold = 0.7

	// FormatMatchThreshold is the acceptance bar each format-matching
	// strategy must clear before its result is used.
	FormatMatchThreshold = 0.8

	// TermDedupThreshold: normalized-text similarity at or above this
	// treats a candidate as the same vocabulary term.
	TermDedupThreshold = 0.85

	// CategoryKeywordThreshold is the minimum keyword score for the
	// term classifier to pick a category over OTHER.
	CategoryKeywordThreshold = 0.3
)

// Weights for the format feature-matching strategy.
const (
	FormatLayoutWeight   = 0.4
	FormatFieldSetWeight = 0.6
)

// Weight per exact format signal (header pattern, logo signature).
const FormatExactSignalWeight = 0.5
