package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/laitim2001/ai-document-extraction/constants"
)

func TestClassifyTerm(t *testing.T) {
	tests := []struct {
		term string
		want constants.TermCategory
	}{
		{term: "ocean freight fcl", want: constants.CategoryFreight},
		{term: "air freight", want: constants.CategoryFreight},
		{term: "terminal handling charge thc", want: constants.CategoryHandling},
		{term: "customs clearance fee", want: constants.CategoryCustoms},
		{term: "import duty", want: constants.CategoryCustoms},
		{term: "cargo insurance", want: constants.CategoryInsurance},
		{term: "container demurrage", want: constants.CategoryStorage},
		{term: "door delivery", want: constants.CategoryPickupDelivery},
		{term: "fuel surcharge", want: constants.CategorySurcharge},
		{term: "peak season surcharge", want: constants.CategorySurcharge},
		{term: "vat 19 percent", want: constants.CategoryTax},
		{term: "telex release bill of lading", want: constants.CategoryDocumentation},
		{term: "miscellaneous admin fee", want: constants.CategoryOther},
		{term: "", want: constants.CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got, _ := ClassifyTerm(tt.term)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyTerm_Threshold(t *testing.T) {
	// one keyword among five tokens scores 0.2, below the bar
	category, score := ClassifyTerm("one time special freight arrangement")
	assert.Equal(t, constants.CategoryOther, category)
	assert.Less(t, score, constants.CategoryKeywordThreshold)

	// one among three clears it
	category, score = ClassifyTerm("express freight service")
	assert.Equal(t, constants.CategoryFreight, category)
	assert.GreaterOrEqual(t, score, constants.CategoryKeywordThreshold)
}
