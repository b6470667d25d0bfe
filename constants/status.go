package constants

// TermStatus is the canonical review status for vocabulary_terms rows.
type TermStatus string

// Stable values (store these exact strings in DB).
const (
	TermStatusPending      TermStatus = "PENDING"       // awaiting human review
	TermStatusConfirmed    TermStatus = "CONFIRMED"     // reviewer accepted
	TermStatusRejected     TermStatus = "REJECTED"      // reviewer rejected
	TermStatusAutoApproved TermStatus = "AUTO_APPROVED" // approved without review
)

// DocumentStatus routes a processed document for the caller's review queue.
type DocumentStatus string

const (
	DocumentIdentified   DocumentStatus = "IDENTIFIED"
	DocumentNeedsReview  DocumentStatus = "NEEDS_REVIEW"
	DocumentUnidentified DocumentStatus = "UNIDENTIFIED"
)

// ResolutionTier is the specificity level at which a config was found.
type ResolutionTier string

const (
	TierSpecific ResolutionTier = "specific" // organization + format pair
	TierFormat   ResolutionTier = "format"   // format only
	TierCompany  ResolutionTier = "company"  // organization only
	TierGlobal   ResolutionTier = "global"   // unscoped stored config
	TierDefault  ResolutionTier = "default"  // built-in fallback set
)

// MatchMethod records how an issuer or format was resolved.
type MatchMethod string

const (
	MatchExact   MatchMethod = "exact"
	MatchFuzzy   MatchMethod = "fuzzy"
	MatchFeature MatchMethod = "feature"
	MatchCreated MatchMethod = "created"
	MatchNew     MatchMethod = "new"
)

// PromptPurpose is the closed set of purpose tags for prompt configs.
type PromptPurpose string

const (
	PurposeIssuerIdentification PromptPurpose = "ISSUER_IDENTIFICATION"
	PurposeClassification       PromptPurpose = "CLASSIFICATION"
	PurposeExtraction           PromptPurpose = "EXTRACTION"
	PurposeValidation           PromptPurpose = "VALIDATION"
)

// AllPromptPurposes lists every valid purpose tag.
var AllPromptPurposes = []PromptPurpose{
	PurposeIssuerIdentification,
	PurposeClassification,
	PurposeExtraction,
	PurposeValidation,
}

// ValidPromptPurpose reports whether p is one of the known purpose tags.
func ValidPromptPurpose(p PromptPurpose) bool {
	for _, known := range AllPromptPurposes {
		if p == known {
			return true
		}
	}
	return false
}
