// Package transform implements the pure value-transformation engine
// applied by field mappings. All transforms are side-effect free and
// safe for concurrent use; a failed transform never escapes as a
// panic, and the caller keeps the untransformed value.
package transform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/laitim2001/ai-document-extraction/internal/common"
)

// namedPatterns is the fixed, code-defined table of regex patterns a
// mapping may reference by name. User-supplied patterns are rejected;
// this is a safety boundary, not an oversight.
var namedPatterns = map[string]*regexp.Regexp{
	"digits":     regexp.MustCompile(`\d+`),
	"decimal":    regexp.MustCompile(`-?\d+(?:[.,]\d+)?`),
	"currency":   regexp.MustCompile(`[A-Z]{3}|[$€£¥]`),
	"date":       regexp.MustCompile(`\d{4}-\d{2}-\d{2}|\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}`),
	"email":      regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
	"phone":      regexp.MustCompile(`\+?\d[\d\s().-]{6,}\d`),
	"whitespace": regexp.MustCompile(`\s+`),
}

// PatternNames returns the names accepted by the regex transform.
func PatternNames() []string {
	names := make([]string, 0, len(namedPatterns))
	for name := range namedPatterns {
		names = append(names, name)
	}
	return names
}

// dateInputLayouts are the accepted source layouts, tried in order.
var dateInputLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"01-02-2006",
	"02.01.2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
}

type transformFunc func(value string, opts Options) (string, error)

// Engine dispatches transformation kinds through a finite map built at
// construction time. Unknown kinds cannot reach call time.
type Engine struct {
	funcs map[Kind]transformFunc
}

// NewEngine builds the engine with every supported kind registered.
func NewEngine() *Engine {
	e := &Engine{}
	e.funcs = map[Kind]transformFunc{
		KindNone:           func(v string, _ Options) (string, error) { return v, nil },
		KindUpper:          func(v string, _ Options) (string, error) { return strings.ToUpper(v), nil },
		KindLower:          func(v string, _ Options) (string, error) { return strings.ToLower(v), nil },
		KindTrim:           func(v string, _ Options) (string, error) { return strings.TrimSpace(v), nil },
		KindFormatDate:     formatDate,
		KindFormatCurrency: formatCurrency,
		KindExtractNumber:  extractNumber,
		KindRegex:          applyNamedPattern,
		KindSplit:          splitValue,
		KindReplace:        replaceValue,
		KindConcat:         concatValue,
	}
	return e
}

// Apply runs one transform. On any failure it returns the original
// value, ok=false, and the cause; it never panics.
func (e *Engine) Apply(value string, kind Kind, opts Options) (string, bool, error) {
	fn, ok := e.funcs[kind]
	if !ok {
		return value, false, fmt.Errorf("unsupported transform kind %q", kind)
	}
	out, err := fn(value, opts)
	if err != nil {
		return value, false, err
	}
	return out, true, nil
}

// ValidateMapping checks a kind/options pair at config-write time so
// bad configs are rejected before any document meets them.
func (e *Engine) ValidateMapping(kind Kind, opts Options) error {
	if _, ok := e.funcs[kind]; !ok {
		return fmt.Errorf("unsupported transform kind %q", kind)
	}
	switch kind {
	case KindRegex:
		if _, ok := namedPatterns[opts.PatternName]; !ok {
			return &common.UnknownPatternError{Name: opts.PatternName}
		}
	case KindSplit:
		if opts.Delimiter == "" {
			return fmt.Errorf("split transform requires a delimiter")
		}
		if opts.Index < 0 {
			return fmt.Errorf("split index must be non-negative, got %d", opts.Index)
		}
	case KindReplace:
		if opts.Search == "" {
			return fmt.Errorf("replace transform requires a search string")
		}
	case KindFormatCurrency:
		if opts.Currency != "" {
			if _, err := currency.ParseISO(opts.Currency); err != nil {
				return fmt.Errorf("invalid currency code %q: %w", opts.Currency, err)
			}
		}
		if opts.Locale != "" {
			if _, err := language.Parse(opts.Locale); err != nil {
				return fmt.Errorf("invalid locale %q: %w", opts.Locale, err)
			}
		}
	}
	return nil
}

func formatDate(value string, opts Options) (string, error) {
	layout := opts.DateFormat
	if layout == "" {
		layout = "2006-01-02"
	}
	v := strings.TrimSpace(value)
	for _, in := range dateInputLayouts {
		if t, err := time.Parse(in, v); err == nil {
			return t.Format(layout), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", value)
}

func formatCurrency(value string, opts Options) (string, error) {
	num, err := extractNumber(value, opts)
	if err != nil {
		return "", err
	}
	amount, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return "", fmt.Errorf("parse amount %q: %w", num, err)
	}

	code := opts.Currency
	if code == "" {
		code = "USD"
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("parse currency %q: %w", code, err)
	}

	tag := language.English
	if opts.Locale != "" {
		tag, err = language.Parse(opts.Locale)
		if err != nil {
			return "", fmt.Errorf("parse locale %q: %w", opts.Locale, err)
		}
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(amount))), nil
}

// extractNumber pulls the first numeric value out of a noisy string,
// resolving thousands separators against decimal commas the way the
// source documents actually mix them.
func extractNumber(value string, _ Options) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			return r
		}
		return -1
	}, value)
	if cleaned == "" || cleaned == "-" {
		return "", fmt.Errorf("no number in %q", value)
	}

	switch {
	case strings.Contains(cleaned, ",") && strings.Contains(cleaned, "."):
		// both present: comma is a thousands separator
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case strings.Contains(cleaned, ","):
		parts := strings.Split(cleaned, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			// one comma with 1-2 trailing digits: decimal comma
			cleaned = parts[0] + "." + parts[1]
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return "", fmt.Errorf("parse number %q: %w", value, err)
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

func applyNamedPattern(value string, opts Options) (string, error) {
	re, ok := namedPatterns[opts.PatternName]
	if !ok {
		return "", &common.UnknownPatternError{Name: opts.PatternName}
	}
	match := re.FindString(value)
	if match == "" {
		return "", fmt.Errorf("pattern %q matched nothing in %q", opts.PatternName, value)
	}
	return match, nil
}

func splitValue(value string, opts Options) (string, error) {
	if opts.Delimiter == "" {
		return "", fmt.Errorf("split transform requires a delimiter")
	}
	parts := strings.Split(value, opts.Delimiter)
	if opts.Index < 0 || opts.Index >= len(parts) {
		return "", fmt.Errorf("split index %d out of range for %d parts", opts.Index, len(parts))
	}
	return parts[opts.Index], nil
}

func replaceValue(value string, opts Options) (string, error) {
	if opts.Search == "" {
		return "", fmt.Errorf("replace transform requires a search string")
	}
	return strings.ReplaceAll(value, opts.Search, opts.Replacement), nil
}

func concatValue(value string, opts Options) (string, error) {
	return opts.Prefix + value + opts.Suffix, nil
}
