package parser

import (
	"strings"

	"github.com/heathj/htmlkit/parser/dom"
	"github.com/heathj/htmlkit/parser/tags"
)

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inbody
func (c *HTMLTreeConstructor) inBodyModeHandler(t *Token) bool {
	switch t.TokenType {
	case characterToken:
		switch {
		case t.Data == "\u0000":
			c.parseError(unexpectedNullCharacter)
		case t.isWhitespace():
			c.reconstructActiveFormattingElements()
			c.insertCharacter(t)
		default:
			c.reconstructActiveFormattingElements()
			c.insertCharacter(t)
			c.frameset = framesetNotOK
		}
		return false
	case commentToken:
		c.insertComment(t)
		return false
	case docTypeToken:
		c.parseError(doctypeInBody)
		return false
	case endOfFileToken:
		if len(c.templateInsertionModes) > 0 {
			return c.useRulesFor(t, inTemplate)
		}
		c.checkOpenElementsAtEnd()
		c.stopParsing()
		return false
	case startTagToken:
		return c.inBodyStartTag(t)
	case endTagToken:
		return c.inBodyEndTag(t)
	}
	return false
}

// checkOpenElementsAtEnd reports a parse error if an element that has no
// optional end tag is still open.
func (c *HTMLTreeConstructor) checkOpenElementsAtEnd() {
	for _, n := range c.stackOfOpenElements {
		if !n.IsHTML("dd", "dt", "li", "optgroup", "option", "p", "rb", "rp", "rt", "rtc",
			"tbody", "td", "tfoot", "th", "thead", "tr", "body", "html") {
			c.parseError(eofWithUnclosedElements)
			return
		}
	}
}

func (c *HTMLTreeConstructor) inBodyStartTag(t *Token) bool {
	switch t.TagName {
	case "html":
		c.parseError(htmlStartTagInBody)
		if !c.stackHas("template") && len(c.stackOfOpenElements) > 0 {
			adjustTagAttributes(c.stackOfOpenElements[0], t)
		}
	case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style", "template", "title":
		return c.useRulesFor(t, inHead)
	case "body":
		c.parseError(bodyStartTagInBody)
		if len(c.stackOfOpenElements) < 2 || !c.stackOfOpenElements[1].IsHTML("body") || c.stackHas("template") {
			return false
		}
		c.frameset = framesetNotOK
		adjustTagAttributes(c.stackOfOpenElements[1], t)
	case "frameset":
		c.parseError(framesetStartTagInBody)
		if len(c.stackOfOpenElements) < 2 || !c.stackOfOpenElements[1].IsHTML("body") || c.frameset == framesetNotOK {
			return false
		}
		body := c.stackOfOpenElements[1]
		if body.ParentNode != nil {
			body.ParentNode.RemoveChild(body)
		}
		c.stackOfOpenElements = c.stackOfOpenElements[:1]
		c.insertHTMLElementForToken(t)
		c.switchMode(inFrameset)
	case "address", "article", "aside", "blockquote", "center", "details", "dialog", "dir", "div", "dl",
		"fieldset", "figcaption", "figure", "footer", "header", "hgroup", "main", "menu", "nav", "ol", "p",
		"search", "section", "summary", "ul":
		c.closePElementInButtonScope()
		c.insertHTMLElementForToken(t)
	case "h1", "h2", "h3", "h4", "h5", "h6":
		c.closePElementInButtonScope()
		if c.getCurrentNode().IsHTML("h1", "h2", "h3", "h4", "h5", "h6") {
			c.parseError(misnestedTag)
			c.stackOfOpenElements.Pop()
		}
		c.insertHTMLElementForToken(t)
	case "pre", "listing":
		c.closePElementInButtonScope()
		c.insertHTMLElementForToken(t)
		c.skipNewline = true
		c.frameset = framesetNotOK
	case "form":
		templateOpen := c.stackHas("template")
		if c.formElementPointer != nil && !templateOpen {
			c.parseError(nestedForm)
			return false
		}
		c.closePElementInButtonScope()
		elem := c.insertHTMLElementForToken(t)
		if !templateOpen {
			c.formElementPointer = elem
		}
	case "li":
		c.closeListItem("li")
		c.closePElementInButtonScope()
		c.insertHTMLElementForToken(t)
	case "dd", "dt":
		c.closeListItem("dd", "dt")
		c.closePElementInButtonScope()
		c.insertHTMLElementForToken(t)
	case "plaintext":
		c.closePElementInButtonScope()
		c.insertHTMLElementForToken(t)
		c.switchTokenizer(plaintextState)
	case "button":
		if c.hasElementInScope(defaultScope, "button") {
			c.parseError(unexpectedStartTag)
			c.generateImpliedEndTags()
			c.popUntil("button")
		}
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		c.frameset = framesetNotOK
	case "a":
		if i := c.lastFormattingElementNamed("a"); i != -1 {
			c.parseError(nestedFormattingElement)
			a := c.activeFormattingElements[i].node
			c.adoptionAgency(&Token{TokenType: endTagToken, TagName: "a"})
			if j := c.formattingIndex(a); j != -1 {
				c.removeFormattingEntry(j)
			}
			if j := c.stackOfOpenElements.Index(a); j != -1 {
				c.stackOfOpenElements.Remove(j)
			}
		}
		c.reconstructActiveFormattingElements()
		c.insertFormattingElement(t)
	case "b", "big", "code", "em", "font", "i", "s", "small", "strike", "strong", "tt", "u":
		c.reconstructActiveFormattingElements()
		c.insertFormattingElement(t)
	case "nobr":
		c.reconstructActiveFormattingElements()
		if c.hasElementInScope(defaultScope, "nobr") {
			c.parseError(nestedFormattingElement)
			c.adoptionAgency(&Token{TokenType: endTagToken, TagName: "nobr"})
			c.reconstructActiveFormattingElements()
		}
		c.insertFormattingElement(t)
	case "applet", "marquee", "object":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		c.pushFormattingMarker()
		c.frameset = framesetNotOK
	case "table":
		if c.Document.QuirksMode != dom.Quirks {
			c.closePElementInButtonScope()
		}
		c.insertHTMLElementForToken(t)
		c.frameset = framesetNotOK
		c.switchMode(inTable)
	case "area", "br", "embed", "img", "keygen", "wbr":
		c.reconstructActiveFormattingElements()
		c.insertVoidElement(t)
		c.frameset = framesetNotOK
	case "input":
		c.reconstructActiveFormattingElements()
		c.insertVoidElement(t)
		if typ, ok := t.Attr("type"); !ok || !strings.EqualFold(typ, "hidden") {
			c.frameset = framesetNotOK
		}
	case "param", "source", "track":
		c.insertVoidElement(t)
	case "hr":
		c.closePElementInButtonScope()
		c.insertVoidElement(t)
		c.frameset = framesetNotOK
	case "image":
		c.parseError(imageStartTag)
		t.TagName = "img"
		return true
	case "textarea":
		c.insertHTMLElementForToken(t)
		c.skipNewline = true
		c.switchTokenizer(rcDataState)
		c.originalInsertionMode = c.insertionMode
		c.frameset = framesetNotOK
		c.switchMode(text)
	case "xmp":
		c.closePElementInButtonScope()
		c.reconstructActiveFormattingElements()
		c.frameset = framesetNotOK
		c.genericRawTextElement(t)
	case "iframe":
		c.frameset = framesetNotOK
		c.genericRawTextElement(t)
	case "noembed":
		c.genericRawTextElement(t)
	case "noscript":
		if c.scriptingEnabled {
			c.genericRawTextElement(t)
			return false
		}
		return c.defaultInBodyStartTag(t)
	case "select":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		c.frameset = framesetNotOK
		switch c.insertionMode {
		case inTable, inCaption, inTableBody, inRow, inCell:
			c.switchMode(inSelectInTable)
		default:
			c.switchMode(inSelect)
		}
	case "optgroup", "option":
		if c.getCurrentNode().IsHTML("option") {
			c.stackOfOpenElements.Pop()
		}
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
	case "rb", "rtc":
		if c.hasElementInScope(defaultScope, "ruby") {
			c.generateImpliedEndTags()
			if !c.getCurrentNode().IsHTML("ruby") {
				c.parseError(misnestedTag)
			}
		}
		c.insertHTMLElementForToken(t)
	case "rp", "rt":
		if c.hasElementInScope(defaultScope, "ruby") {
			c.generateImpliedEndTags("rtc")
			if !c.getCurrentNode().IsHTML("rtc", "ruby") {
				c.parseError(misnestedTag)
			}
		}
		c.insertHTMLElementForToken(t)
	case "math":
		c.reconstructActiveFormattingElements()
		adjustMathMLAttributes(t)
		adjustForeignAttributes(t)
		c.insertForeignElementForToken(t, dom.MathML)
		if t.SelfClosing {
			c.stackOfOpenElements.Pop()
			c.acknowledgeSelfClosing()
		}
	case "svg":
		c.reconstructActiveFormattingElements()
		adjustSVGAttributes(t)
		adjustForeignAttributes(t)
		c.insertForeignElementForToken(t, dom.SVG)
		if t.SelfClosing {
			c.stackOfOpenElements.Pop()
			c.acknowledgeSelfClosing()
		}
	case "caption", "col", "colgroup", "frame", "head", "tbody", "td", "tfoot", "th", "thead", "tr":
		c.parseError(unexpectedStartTag)
	default:
		return c.defaultInBodyStartTag(t)
	}
	return false
}

func (c *HTMLTreeConstructor) defaultInBodyStartTag(t *Token) bool {
	c.reconstructActiveFormattingElements()
	c.insertHTMLElementForToken(t)
	return false
}

func (c *HTMLTreeConstructor) insertFormattingElement(t *Token) {
	elem := c.insertHTMLElementForToken(t)
	if c.fatal != nil {
		return
	}
	c.pushActiveFormattingElement(elem, t)
}

func (c *HTMLTreeConstructor) insertVoidElement(t *Token) {
	c.insertHTMLElementForToken(t)
	c.stackOfOpenElements.Pop()
	c.acknowledgeSelfClosing()
}

// closeListItem runs the list item loop shared by the li, dd and dt start
// tags.
func (c *HTMLTreeConstructor) closeListItem(names ...string) {
	c.frameset = framesetNotOK
	for i := len(c.stackOfOpenElements) - 1; i >= 0; i-- {
		node := c.stackOfOpenElements[i]
		if node.IsHTML(names...) {
			c.generateImpliedEndTags(node.NodeName)
			if !c.getCurrentNode().IsHTML(node.NodeName) {
				c.parseError(misnestedTag)
			}
			c.popUntil(node.NodeName)
			return
		}
		if isSpecial(node) && !node.IsHTML("address", "div", "p") {
			return
		}
	}
}

func (c *HTMLTreeConstructor) inBodyEndTag(t *Token) bool {
	switch t.TagName {
	case "template":
		return c.useRulesFor(t, inHead)
	case "body":
		if !c.hasElementInScope(defaultScope, "body") {
			c.parseError(elementNotInScope)
			return false
		}
		c.checkOpenElementsAtEnd()
		c.switchMode(afterBody)
	case "html":
		if !c.hasElementInScope(defaultScope, "body") {
			c.parseError(elementNotInScope)
			return false
		}
		c.checkOpenElementsAtEnd()
		c.switchMode(afterBody)
		return true
	case "address", "article", "aside", "blockquote", "button", "center", "details", "dialog", "dir", "div",
		"dl", "fieldset", "figcaption", "figure", "footer", "header", "hgroup", "listing", "main", "menu",
		"nav", "ol", "pre", "search", "section", "summary", "ul":
		if !c.hasElementInScope(defaultScope, t.TagName) {
			c.parseError(elementNotInScope)
			return false
		}
		c.generateImpliedEndTags()
		if !c.getCurrentNode().IsHTML(t.TagName) {
			c.parseError(misnestedTag)
		}
		c.popUntil(t.TagName)
	case "form":
		c.closeForm()
	case "p":
		if !c.hasElementInScope(buttonScope, "p") {
			c.parseError(elementNotInScope)
			c.insertHTMLElementNamed("p")
		}
		c.closePElement()
	case "li":
		if !c.hasElementInScope(listItemScope, "li") {
			c.parseError(elementNotInScope)
			return false
		}
		c.generateImpliedEndTags("li")
		if !c.getCurrentNode().IsHTML("li") {
			c.parseError(misnestedTag)
		}
		c.popUntil("li")
	case "dd", "dt":
		if !c.hasElementInScope(defaultScope, t.TagName) {
			c.parseError(elementNotInScope)
			return false
		}
		c.generateImpliedEndTags(t.TagName)
		if !c.getCurrentNode().IsHTML(t.TagName) {
			c.parseError(misnestedTag)
		}
		c.popUntil(t.TagName)
	case "h1", "h2", "h3", "h4", "h5", "h6":
		if !c.hasElementInScope(defaultScope, "h1", "h2", "h3", "h4", "h5", "h6") {
			c.parseError(elementNotInScope)
			return false
		}
		c.generateImpliedEndTags()
		if !c.getCurrentNode().IsHTML(t.TagName) {
			c.parseError(misnestedTag)
		}
		c.popUntil("h1", "h2", "h3", "h4", "h5", "h6")
	case "applet", "marquee", "object":
		if !c.hasElementInScope(defaultScope, t.TagName) {
			c.parseError(elementNotInScope)
			return false
		}
		c.generateImpliedEndTags()
		if !c.getCurrentNode().IsHTML(t.TagName) {
			c.parseError(misnestedTag)
		}
		c.popUntil(t.TagName)
		c.clearActiveFormattingToLastMarker()
	case "br":
		c.parseError(brEndTag)
		c.reconstructActiveFormattingElements()
		c.insertVoidElement(&Token{TokenType: startTagToken, TagName: "br"})
		c.frameset = framesetNotOK
	default:
		if tags.Is(t.TagName, tags.Formatting) && !c.adoptionAgency(t) {
			return false
		}
		c.anyOtherEndTag(t)
	}
	return false
}

func (c *HTMLTreeConstructor) closeForm() {
	if c.stackHas("template") {
		if !c.hasElementInScope(defaultScope, "form") {
			c.parseError(elementNotInScope)
			return
		}
		c.generateImpliedEndTags()
		if !c.getCurrentNode().IsHTML("form") {
			c.parseError(misnestedTag)
		}
		c.popUntil("form")
		return
	}

	node := c.formElementPointer
	c.formElementPointer = nil
	if node == nil || !c.hasNodeInScope(defaultScope, node) {
		c.parseError(elementNotInScope)
		return
	}
	c.generateImpliedEndTags()
	if c.getCurrentNode() != node {
		c.parseError(misnestedTag)
	}
	c.stackOfOpenElements.Remove(c.stackOfOpenElements.Index(node))
}

// https://html.spec.whatwg.org/multipage/parsing.html#any-other-end-tag
func (c *HTMLTreeConstructor) anyOtherEndTag(t *Token) {
	for i := len(c.stackOfOpenElements) - 1; i >= 0; i-- {
		node := c.stackOfOpenElements[i]
		if node.IsHTML(t.TagName) {
			c.generateImpliedEndTags(t.TagName)
			if node != c.getCurrentNode() {
				c.parseError(misnestedTag)
			}
			c.popUntilNode(node)
			return
		}
		if isSpecial(node) {
			c.parseError(endTagClosesSpecialElement)
			return
		}
	}
}
