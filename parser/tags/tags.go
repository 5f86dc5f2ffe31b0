// Package tags maps tag names to numeric ids and the category flags the tree
// constructor dispatches on. The tables are built once at package init and
// never mutated, so concurrent readers need no synchronization.
package tags

import (
	"golang.org/x/net/html/atom"
)

// ID is the numeric id of a tag name. Names the table does not know map to 0.
type ID = atom.Atom

// Category is a bitset of element categories.
type Category uint16

const (
	// Void elements never have children and have no end tag.
	Void Category = 1 << iota
	// Special elements in the HTML namespace. They bound the furthest-block
	// search of the adoption agency algorithm.
	Special
	// Formatting elements are tracked in the list of active formatting
	// elements.
	Formatting
	// MathMLTextIntegration marks mi, mo, mn, ms and mtext. In the MathML
	// namespace these are special and are text integration points.
	MathMLTextIntegration
	// SVGHTMLIntegration marks foreignObject, desc and title. In the SVG
	// namespace these are special and are HTML integration points.
	SVGHTMLIntegration
	// RawText elements switch the tokenizer out of the data state.
	RawText
	// Scope elements in the HTML namespace bound the default element scope.
	Scope
)

var voidNames = []string{
	"area", "base", "br", "col", "embed", "hr", "img", "input", "keygen",
	"link", "meta", "param", "source", "track", "wbr",
	"basefont", "bgsound", "frame",
}

var specialNames = []string{
	"address", "applet", "area", "article", "aside", "base", "basefont",
	"bgsound", "blockquote", "body", "br", "button", "caption", "center",
	"col", "colgroup", "dd", "details", "dir", "div", "dl", "dt", "embed",
	"fieldset", "figcaption", "figure", "footer", "form", "frame",
	"frameset", "h1", "h2", "h3", "h4", "h5", "h6", "head", "header",
	"hgroup", "hr", "html", "iframe", "img", "input", "keygen", "li", "link",
	"listing", "main", "marquee", "menu", "meta", "nav", "noembed",
	"noframes", "noscript", "object", "ol", "p", "param", "plaintext", "pre",
	"script", "search", "section", "select", "source", "style", "summary",
	"table", "tbody", "td", "template", "textarea", "tfoot", "th", "thead",
	"title", "tr", "track", "ul", "wbr", "xmp",
}

var formattingNames = []string{
	"a", "b", "big", "code", "em", "font", "i", "nobr", "s", "small",
	"strike", "strong", "tt", "u",
}

var rawTextNames = []string{
	"iframe", "noembed", "noframes", "noscript", "plaintext", "script",
	"style", "textarea", "title", "xmp",
}

var (
	categories = map[ID]Category{}
	// names that atom does not know but the tree constructor still needs
	// to classify.
	extraCategories = map[string]Category{}
)

func init() {
	add := func(names []string, c Category) {
		for _, name := range names {
			if id := atom.Lookup([]byte(name)); id != 0 {
				categories[id] |= c
			} else {
				extraCategories[name] |= c
			}
		}
	}
	add(voidNames, Void)
	add(specialNames, Special)
	add(formattingNames, Formatting)
	add(rawTextNames, RawText)
	add([]string{"applet", "caption", "html", "marquee", "object", "table", "td", "template", "th"}, Scope)
	add([]string{"mi", "mo", "mn", "ms", "mtext"}, MathMLTextIntegration)
	add([]string{"foreignObject", "desc", "title"}, SVGHTMLIntegration)
}

// Lookup returns the id and categories of a tag name. Lookup is case
// sensitive; HTML tag names reach it already lowercased by the tokenizer.
func Lookup(name string) (ID, Category) {
	id := atom.Lookup([]byte(name))
	if id == 0 {
		return 0, extraCategories[name]
	}
	return id, categories[id]
}

// Is reports whether the named tag belongs to every category in c.
func Is(name string, c Category) bool {
	_, cat := Lookup(name)
	return cat&c == c
}

// IDIs is Is for callers that already hold an id.
func IDIs(id ID, c Category) bool {
	return id != 0 && categories[id]&c == c
}
