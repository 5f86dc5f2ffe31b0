package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html/atom"
)

func TestCategories(t *testing.T) {
	var tests = []struct {
		name string
		cat  Category
		want bool
	}{
		{"br", Void, true},
		{"div", Void, false},
		{"div", Special, true},
		{"span", Special, false},
		{"b", Formatting, true},
		{"nobr", Formatting, true},
		{"p", Formatting, false},
		{"mtext", MathMLTextIntegration, true},
		{"foreignObject", SVGHTMLIntegration, true},
		{"foreignobject", SVGHTMLIntegration, false},
		{"title", SVGHTMLIntegration | Special | RawText, true},
		{"search", Special, true},
		{"custom-element", Special, false},
		{"marquee", Scope, true},
		{"div", Scope, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Is(tt.name, tt.cat))
		})
	}
}

func TestLookup(t *testing.T) {
	id, cat := Lookup("table")
	assert.Equal(t, atom.Table, id)
	assert.NotZero(t, cat&Special)
	assert.True(t, IDIs(id, Special))

	id, cat = Lookup("not-a-tag")
	assert.Zero(t, id)
	assert.Zero(t, cat)
	assert.False(t, IDIs(0, 0))
}
