package parser

import (
	"github.com/heathj/htmlkit/parser/dom"
	"github.com/heathj/htmlkit/parser/tags"
)

type scope uint

const (
	defaultScope scope = iota
	listItemScope
	buttonScope
	tableScope
	selectScope
)

// https://html.spec.whatwg.org/multipage/parsing.html#has-an-element-in-the-specific-scope
func isScopeBoundary(n *dom.Node, s scope) bool {
	switch s {
	case tableScope:
		return n.IsHTML("html", "table", "template")
	case selectScope:
		return !n.IsHTML("optgroup", "option")
	case listItemScope:
		if n.IsHTML("ol", "ul") {
			return true
		}
	case buttonScope:
		if n.IsHTML("button") {
			return true
		}
	}
	switch n.Namespace {
	case dom.HTML:
		return tags.IDIs(n.DataAtom, tags.Scope)
	case dom.MathML:
		return n.NodeName == "annotation-xml" || isMathMLTextIntegrationPoint(n)
	case dom.SVG:
		return isHTMLIntegrationPoint(n)
	}
	return false
}

// hasElementInScope reports whether an HTML element with one of the names
// is in the given scope.
func (c *HTMLTreeConstructor) hasElementInScope(s scope, names ...string) bool {
	for i := len(c.stackOfOpenElements) - 1; i >= 0; i-- {
		n := c.stackOfOpenElements[i]
		if n.IsHTML(names...) {
			return true
		}
		if isScopeBoundary(n, s) {
			return false
		}
	}
	return false
}

func (c *HTMLTreeConstructor) hasNodeInScope(s scope, target *dom.Node) bool {
	for i := len(c.stackOfOpenElements) - 1; i >= 0; i-- {
		n := c.stackOfOpenElements[i]
		if n == target {
			return true
		}
		if isScopeBoundary(n, s) {
			return false
		}
	}
	return false
}
