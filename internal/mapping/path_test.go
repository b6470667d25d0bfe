package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPath(t *testing.T) {
	fields := map[string]any{
		"simple": "v",
		"nested": map[string]any{"inner": map[string]any{"leaf": 7}},
		"items": []any{
			map[string]any{"desc": "first"},
			map[string]any{"desc": "second", "tags": []any{"a", "b"}},
		},
		"nil": nil,
	}

	tests := []struct {
		path  string
		want  any
		found bool
	}{
		{path: "simple", want: "v", found: true},
		{path: "nested.inner.leaf", want: 7, found: true},
		{path: "items[0].desc", want: "first", found: true},
		{path: "items[1].tags[1]", want: "b", found: true},
		{path: "missing", found: false},
		{path: "nested.missing", found: false},
		{path: "items[5].desc", found: false},
		{path: "simple.deeper", found: false},
		{path: "items[-1]", found: false},
		{path: "items[x]", found: false},
		{path: "nil", found: false},
		{path: "", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, found := lookupPath(fields, tt.path)
			require.Equal(t, tt.found, found)
			if found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
		ok   bool
	}{
		{in: "s", want: "s", ok: true},
		{in: float64(1200), want: "1200", ok: true},
		{in: float64(85.5), want: "85.5", ok: true},
		{in: 42, want: "42", ok: true},
		{in: int64(9), want: "9", ok: true},
		{in: true, want: "true", ok: true},
		{in: map[string]any{}, ok: false},
		{in: []any{1}, ok: false},
	}
	for _, tt := range tests {
		got, ok := stringify(tt.in)
		require.Equal(t, tt.ok, ok)
		if ok {
			assert.Equal(t, tt.want, got)
		}
	}
}
