package transform

// Kind is the closed set of supported transformations. Configs store
// these exact strings; anything else is rejected when the config is
// written, not when a document is processed.
type Kind string

const (
	KindNone           Kind = "none"
	KindUpper          Kind = "upper"
	KindLower          Kind = "lower"
	KindTrim           Kind = "trim"
	KindFormatDate     Kind = "format_date"
	KindFormatCurrency Kind = "format_currency"
	KindExtractNumber  Kind = "extract_number"
	KindRegex          Kind = "regex"
	KindSplit          Kind = "split"
	KindReplace        Kind = "replace"
	KindConcat         Kind = "concat"
)

// AllKinds lists every supported transformation kind.
var AllKinds = []Kind{
	KindNone,
	KindUpper,
	KindLower,
	KindTrim,
	KindFormatDate,
	KindFormatCurrency,
	KindExtractNumber,
	KindRegex,
	KindSplit,
	KindReplace,
	KindConcat,
}

// ValidKind reports whether k names a supported transformation.
func ValidKind(k Kind) bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Options carries the per-kind parameters. Unused fields are ignored
// by kinds that do not need them.
type Options struct {
	// format_date: output layout in Go reference-time form.
	DateFormat string `json:"date_format,omitempty"`
	// format_currency: ISO 4217 code and BCP 47 locale tag.
	Currency string `json:"currency,omitempty"`
	Locale   string `json:"locale,omitempty"`
	// regex: a name from the fixed pattern table, never a raw pattern.
	PatternName string `json:"pattern_name,omitempty"`
	// split
	Delimiter string `json:"delimiter,omitempty"`
	Index     int    `json:"index,omitempty"`
	// replace
	Search      string `json:"search,omitempty"`
	Replacement string `json:"replacement,omitempty"`
	// concat
	Prefix string `json:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}
