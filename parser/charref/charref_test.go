package charref

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSorted(t *testing.T) {
	require.True(t, sort.SliceIsSorted(entities[:], func(i, j int) bool {
		return entities[i].name < entities[j].name
	}))
	for _, e := range entities {
		assert.LessOrEqual(t, len(e.name), MaxNameLength, e.name)
	}
}

func TestLongestMatch(t *testing.T) {
	tests := []struct {
		in    string
		name  string
		value string
		ok    bool
	}{
		{"amp;", "amp;", "&", true},
		{"amp", "amp", "&", true},
		{"ampere", "amp", "&", true},
		{"notin;", "notin;", "\u2209", true},
		{"notit;", "not", "\u00AC", true},
		{"NotEqualTilde;", "NotEqualTilde;", "\u2242\u0338", true},
		{"xyz;", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			name, value, ok := LongestMatch(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix("no"))
	assert.True(t, HasPrefix("notin"))
	assert.True(t, HasPrefix("AElig;"))
	assert.False(t, HasPrefix("zzz"))
	assert.False(t, HasPrefix("amp;x"))
}
