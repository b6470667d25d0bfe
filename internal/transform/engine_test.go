package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laitim2001/ai-document-extraction/internal/common"
)

func TestApply_BasicKinds(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name  string
		value string
		kind  Kind
		opts  Options
		want  string
	}{
		{name: "none passes through", value: " x ", kind: KindNone, want: " x "},
		{name: "upper", value: "dhl", kind: KindUpper, want: "DHL"},
		{name: "lower", value: "FCL", kind: KindLower, want: "fcl"},
		{name: "trim", value: "  Acme Co  ", kind: KindTrim, want: "Acme Co"},
		{name: "split", value: "a|b|c", kind: KindSplit, opts: Options{Delimiter: "|", Index: 1}, want: "b"},
		{name: "replace", value: "a-b-c", kind: KindReplace, opts: Options{Search: "-", Replacement: "_"}, want: "a_b_c"},
		{name: "concat", value: "123", kind: KindConcat, opts: Options{Prefix: "INV-", Suffix: "-X"}, want: "INV-123-X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := e.Apply(tt.value, tt.kind, tt.opts)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_FormatDate(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name  string
		value string
		opts  Options
		want  string
	}{
		{name: "iso in default out", value: "2024-12-18", want: "2024-12-18"},
		{name: "us slash", value: "12/18/2024", want: "2024-12-18"},
		{name: "dotted european", value: "18.12.2024", want: "2024-12-18"},
		{name: "day month name year", value: "18 Dec 2024", want: "2024-12-18"},
		{name: "custom output layout", value: "2024-12-18", opts: Options{DateFormat: "02 Jan 2006"}, want: "18 Dec 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := e.Apply(tt.value, KindFormatDate, tt.opts)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	orig := "not a date"
	got, ok, err := e.Apply(orig, KindFormatDate, Options{})
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, orig, got, "failed transform returns the original value")
}

func TestApply_ExtractNumber(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain", value: "1234", want: "1234"},
		{name: "currency prefix", value: "USD 1,234.56", want: "1234.56"},
		{name: "decimal comma", value: "45,50 EUR", want: "45.5"},
		{name: "thousands comma only", value: "1,234", want: "1234"},
		{name: "negative", value: "-12.5 kg", want: "-12.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := e.Apply(tt.value, KindExtractNumber, Options{})
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok, err := e.Apply("no digits here", KindExtractNumber, Options{})
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestApply_FormatCurrency(t *testing.T) {
	e := NewEngine()

	got, ok, err := e.Apply("1234.5", KindFormatCurrency, Options{Currency: "USD", Locale: "en"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, got, "$")
	assert.Contains(t, got, "1,234.50")
}

func TestApply_NamedPatterns(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name    string
		value   string
		pattern string
		want    string
	}{
		{name: "digits", value: "AWB 1234567890", pattern: "digits", want: "1234567890"},
		{name: "decimal", value: "total 45.20 usd", pattern: "decimal", want: "45.20"},
		{name: "email", value: "billing: ap@acme.example.com pls", pattern: "email", want: "ap@acme.example.com"},
		{name: "date", value: "issued 2024-12-18 by", pattern: "date", want: "2024-12-18"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := e.Apply(tt.value, KindRegex, Options{PatternName: tt.pattern})
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_UnknownPatternRejected(t *testing.T) {
	e := NewEngine()

	orig := `(.*)` // user-supplied patterns must never execute
	got, ok, err := e.Apply("value", KindRegex, Options{PatternName: orig})
	assert.False(t, ok)
	assert.Equal(t, "value", got)

	var unknownErr *common.UnknownPatternError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, orig, unknownErr.Name)
}

func TestApply_NeverPanics(t *testing.T) {
	e := NewEngine()

	values := []string{"", " ", "\x00\xff", "多言語テキスト", "1,2,3,,,"}
	for _, kind := range AllKinds {
		for _, v := range values {
			assert.NotPanics(t, func() {
				out, ok, _ := e.Apply(v, kind, Options{})
				if !ok {
					assert.Equal(t, v, out)
				}
			})
		}
	}

	// unknown kind is an error, not a panic
	out, ok, err := e.Apply("v", Kind("bogus"), Options{})
	assert.False(t, ok)
	assert.Error(t, err)
	assert.Equal(t, "v", out)
}

func TestValidateMapping(t *testing.T) {
	e := NewEngine()

	assert.NoError(t, e.ValidateMapping(KindTrim, Options{}))
	assert.NoError(t, e.ValidateMapping(KindRegex, Options{PatternName: "digits"}))
	assert.NoError(t, e.ValidateMapping(KindFormatCurrency, Options{Currency: "EUR", Locale: "de"}))

	assert.Error(t, e.ValidateMapping(Kind("nope"), Options{}))
	assert.Error(t, e.ValidateMapping(KindRegex, Options{PatternName: "evil"}))
	assert.Error(t, e.ValidateMapping(KindSplit, Options{}))
	assert.Error(t, e.ValidateMapping(KindSplit, Options{Delimiter: ",", Index: -1}))
	assert.Error(t, e.ValidateMapping(KindReplace, Options{}))
	assert.Error(t, e.ValidateMapping(KindFormatCurrency, Options{Currency: "NOPE"}))
}
