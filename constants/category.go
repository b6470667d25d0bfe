package constants

import (
	"strings"
)

// TermCategory classifies learned vocabulary terms. The set is fixed;
// the rule-based classifier in internal/vocab never invents new ones.
type TermCategory string

const (
	CategoryFreight        TermCategory = "FREIGHT"
	CategoryHandling       TermCategory = "HANDLING"
	CategoryDocumentation  TermCategory = "DOCUMENTATION"
	CategoryCustoms        TermCategory = "CUSTOMS"
	CategoryInsurance      TermCategory = "INSURANCE"
	CategoryStorage        TermCategory = "STORAGE"
	CategoryPickupDelivery TermCategory = "PICKUP_DELIVERY"
	CategorySurcharge      TermCategory = "SURCHARGE"
	CategoryTax            TermCategory = "TAX"
	CategoryOther          TermCategory = "OTHER"
)

var allTermCategories = []TermCategory{
	CategoryFreight,
	CategoryHandling,
	CategoryDocumentation,
	CategoryCustoms,
	CategoryInsurance,
	CategoryStorage,
	CategoryPickupDelivery,
	CategorySurcharge,
	CategoryTax,
	CategoryOther,
}

// TermCategoriesAsStrings returns the category set as plain strings.
func TermCategoriesAsStrings() []string {
	result := make([]string, len(allTermCategories))
	for i, cat := range allTermCategories {
		result[i] = string(cat)
	}
	return result
}

// CanonicalizeTermCategory maps free-form input to a known category.
// Returns (OTHER, false) when the input matches nothing.
func CanonicalizeTermCategory(input string) (TermCategory, bool) {
	if input == "" {
		return CategoryOther, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]TermCategory{
		"ocean freight": CategoryFreight,
		"air freight":   CategoryFreight,
		"trucking":      CategoryPickupDelivery,
		"drayage":       CategoryPickupDelivery,
		"vat":           CategoryTax,
		"duty":          CategoryCustoms,
		"demurrage":     CategoryStorage,
		"warehousing":   CategoryStorage,
		"fuel":          CategorySurcharge,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allTermCategories {
		if normalized == strings.ToLower(string(cat)) ||
			normalized == strings.ReplaceAll(strings.ToLower(string(cat)), "_", " ") {
			return cat, true
		}
	}

	return CategoryOther, false
}
