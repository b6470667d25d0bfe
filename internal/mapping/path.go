package mapping

import (
	"strconv"
	"strings"
)

// lookupPath resolves a dotted/indexed path like "a.b[0].c" inside a
// nested field bag. Maps descend by key, slices by the bracketed
// index. A missing key, out-of-range index, or type mismatch means the
// value is absent, never an error.
func lookupPath(fields map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	var current any = fields
	for _, segment := range strings.Split(path, ".") {
		key, indexes, ok := splitSegment(segment)
		if !ok {
			return nil, false
		}
		if key != "" {
			m, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			current, ok = m[key]
			if !ok {
				return nil, false
			}
		}
		for _, idx := range indexes {
			current, ok = elementAt(current, idx)
			if !ok {
				return nil, false
			}
		}
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// splitSegment parses "b[0][1]" into key "b" and indexes [0, 1].
func splitSegment(segment string) (string, []int, bool) {
	open := strings.IndexByte(segment, '[')
	if open < 0 {
		return segment, nil, segment != ""
	}
	key := segment[:open]
	var indexes []int
	rest := segment[open:]
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, false
		}
		close := strings.IndexByte(rest, ']')
		if close < 0 {
			return "", nil, false
		}
		idx, err := strconv.Atoi(rest[1:close])
		if err != nil || idx < 0 {
			return "", nil, false
		}
		indexes = append(indexes, idx)
		rest = rest[close+1:]
	}
	return key, indexes, true
}

func elementAt(v any, idx int) (any, bool) {
	switch s := v.(type) {
	case []any:
		if idx >= len(s) {
			return nil, false
		}
		return s[idx], true
	case []map[string]any:
		if idx >= len(s) {
			return nil, false
		}
		return s[idx], true
	case []string:
		if idx >= len(s) {
			return nil, false
		}
		return s[idx], true
	default:
		return nil, false
	}
}

// stringify renders an extracted value the way the transformation
// engine expects it. JSON numbers arrive as float64; integral values
// must not grow a ".000000" tail.
func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
