package vocab

import (
	"strings"

	"github.com/laitim2001/ai-document-extraction/constants"
)

// categoryKeywords drives the rule-based category suggestion. Simple
// and reproducible on purpose; a reviewer can always see why a term
// landed where it did.
var categoryKeywords = map[constants.TermCategory][]string{
	constants.CategoryFreight:        {"freight", "shipping", "transport", "carriage", "haulage", "ocean", "air", "fcl", "lcl"},
	constants.CategoryHandling:       {"handling", "thc", "terminal", "loading", "unloading", "stuffing"},
	constants.CategoryDocumentation:  {"documentation", "document", "bill", "lading", "awb", "paperwork", "telex"},
	constants.CategoryCustoms:        {"customs", "duty", "clearance", "import", "export", "tariff", "declaration"},
	constants.CategoryInsurance:      {"insurance", "coverage", "liability", "cargo cover"},
	constants.CategoryStorage:        {"storage", "demurrage", "detention", "warehouse", "warehousing"},
	constants.CategoryPickupDelivery: {"pickup", "delivery", "trucking", "drayage", "cartage", "courier", "door"},
	constants.CategorySurcharge:      {"surcharge", "fuel", "baf", "caf", "peak season", "emergency", "congestion"},
	constants.CategoryTax:            {"tax", "vat", "gst", "levy"},
}

// classifyOrder fixes the tie-break: earlier categories win equal
// scores, so classification is deterministic.
var classifyOrder = []constants.TermCategory{
	constants.CategoryFreight,
	constants.CategoryHandling,
	constants.CategoryDocumentation,
	constants.CategoryCustoms,
	constants.CategoryInsurance,
	constants.CategoryStorage,
	constants.CategoryPickupDelivery,
	constants.CategorySurcharge,
	constants.CategoryTax,
}

// ClassifyTerm suggests a category for a normalized term. The score is
// the fraction of the term's tokens matched by a category's keywords;
// below the keyword threshold everything falls back to OTHER.
func ClassifyTerm(normalized string) (constants.TermCategory, float64) {
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return constants.CategoryOther, 0
	}
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = struct{}{}
	}

	bestCategory := constants.CategoryOther
	bestScore := 0.0
	for _, category := range classifyOrder {
		matched := 0
		for _, keyword := range categoryKeywords[category] {
			if strings.ContainsRune(keyword, ' ') {
				if strings.Contains(" "+normalized+" ", " "+keyword+" ") {
					matched++
				}
				continue
			}
			if _, ok := tokenSet[keyword]; ok {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		score := float64(matched) / float64(len(tokens))
		if score > 1 {
			score = 1
		}
		if score > bestScore {
			bestCategory, bestScore = category, score
		}
	}

	if bestScore < constants.CategoryKeywordThreshold {
		return constants.CategoryOther, bestScore
	}
	return bestCategory, bestScore
}
