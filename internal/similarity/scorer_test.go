package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_Reflexive(t *testing.T) {
	for _, s := range []string{"", "a", "DHL Express", "ocean freight fcl", "日本通運"} {
		assert.Equal(t, 1.0, Score(s, s), "Score(%q, %q)", s, s)
	}
}

func TestScore_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"DHL Express", "DHL Expres"},
		{"freight", "fright"},
		{"", "abc"},
		{"kühne nagel", "kuehne nagel"},
	}
	for _, p := range pairs {
		assert.InDelta(t, Score(p[0], p[1]), Score(p[1], p[0]), 1e-12)
	}
}

func TestScore_Ranges(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		min  float64
		max  float64
	}{
		{name: "identical", a: "maersk", b: "maersk", min: 1.0, max: 1.0},
		{name: "one edit", a: "maersk", b: "maersks", min: 0.85, max: 0.99},
		{name: "unrelated", a: "maersk", b: "zzzzzz", min: 0.0, max: 0.2},
		{name: "near duplicate term", a: "ocean freight fcl", b: "ocean freight fcl.", min: 0.85, max: 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.a, tt.b)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "DHL Express", want: "dhl express"},
		{name: "punctuation stripped", input: "A.P. Moller-Maersk", want: "a p moller maersk"},
		{name: "whitespace collapsed", input: "  Ocean   Freight \t- FCL ", want: "ocean freight fcl"},
		{name: "empty", input: "", want: ""},
		{name: "only punctuation", input: "-- // --", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestBestMatch(t *testing.T) {
	idx, score := BestMatch("dhl express", []string{"fedex", "dhl expres", "ups"})
	assert.Equal(t, 1, idx)
	assert.Greater(t, score, 0.9)

	idx, score = BestMatch("anything", nil)
	assert.Equal(t, -1, idx)
	assert.Zero(t, score)
}
