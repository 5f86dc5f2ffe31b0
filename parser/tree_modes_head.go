package parser

import "github.com/heathj/htmlkit/parser/dom"

// useRulesFor processes t with the rules of another insertion mode without
// switching to it.
func (c *HTMLTreeConstructor) useRulesFor(t *Token, mode insertionMode) bool {
	return c.mappings[mode](t)
}

func (c *HTMLTreeConstructor) insertCommentAtDocument(t *Token) {
	c.insertCommentAt(t, c.Document.Node, nil)
}

// https://html.spec.whatwg.org/multipage/parsing.html#the-initial-insertion-mode
func (c *HTMLTreeConstructor) initialModeHandler(t *Token) bool {
	switch t.TokenType {
	case characterToken:
		if t.isWhitespace() {
			return false
		}
	case commentToken:
		c.insertCommentAtDocument(t)
		return false
	case docTypeToken:
		if isNonConformingDoctype(t) {
			c.parseError(nonConformingDoctype)
		}
		doctype, err := c.Document.CreateDoctype(t.TagName, t.PublicIdentifier, t.SystemIdentifier)
		if err != nil {
			c.fail(err, dom.DocumentTypeNode)
			return false
		}
		c.Document.AppendChild(doctype)
		c.Document.QuirksMode = c.quirksModeFor(t)
		c.switchMode(beforeHTML)
		return false
	}
	return c.defaultInitialModeHandler(t)
}

func (c *HTMLTreeConstructor) defaultInitialModeHandler(t *Token) bool {
	if !c.config.IframeSrcdoc {
		c.parseError(missingDoctype)
		c.Document.QuirksMode = dom.Quirks
	}
	c.switchMode(beforeHTML)
	return true
}

// https://html.spec.whatwg.org/multipage/parsing.html#the-before-html-insertion-mode
func (c *HTMLTreeConstructor) beforeHTMLModeHandler(t *Token) bool {
	switch t.TokenType {
	case docTypeToken:
		c.parseError(doctypeInBeforeHTML)
		return false
	case commentToken:
		c.insertCommentAtDocument(t)
		return false
	case characterToken:
		if t.isWhitespace() {
			return false
		}
	case startTagToken:
		if t.TagName == "html" {
			c.insertRootElement(t)
			c.switchMode(beforeHead)
			return false
		}
	case endTagToken:
		switch t.TagName {
		case "head", "body", "html", "br":
		default:
			c.parseError(unexpectedEndTag)
			return false
		}
	}
	return c.defaultBeforeHTMLModeHandler(t)
}

func (c *HTMLTreeConstructor) defaultBeforeHTMLModeHandler(t *Token) bool {
	c.insertRootElement(&Token{TokenType: startTagToken, TagName: "html"})
	c.switchMode(beforeHead)
	return true
}

func (c *HTMLTreeConstructor) insertRootElement(t *Token) {
	elem := c.createElementForToken(t, dom.HTML)
	if c.fatal != nil {
		return
	}
	c.Document.AppendChild(elem)
	c.stackOfOpenElements.Push(elem)
}

// https://html.spec.whatwg.org/multipage/parsing.html#the-before-head-insertion-mode
func (c *HTMLTreeConstructor) beforeHeadModeHandler(t *Token) bool {
	switch t.TokenType {
	case characterToken:
		if t.isWhitespace() {
			return false
		}
	case commentToken:
		c.insertComment(t)
		return false
	case docTypeToken:
		c.parseError(doctypeInBeforeHead)
		return false
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inBody)
		case "head":
			c.headElementPointer = c.insertHTMLElementForToken(t)
			c.switchMode(inHead)
			return false
		}
	case endTagToken:
		switch t.TagName {
		case "head", "body", "html", "br":
		default:
			c.parseError(unexpectedEndTag)
			return false
		}
	}
	return c.defaultBeforeHeadModeHandler(t)
}

func (c *HTMLTreeConstructor) defaultBeforeHeadModeHandler(t *Token) bool {
	c.headElementPointer = c.insertHTMLElementNamed("head")
	c.switchMode(inHead)
	return true
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inhead
func (c *HTMLTreeConstructor) inHeadModeHandler(t *Token) bool {
	switch t.TokenType {
	case characterToken:
		if t.isWhitespace() {
			c.insertCharacter(t)
			return false
		}
	case commentToken:
		c.insertComment(t)
		return false
	case docTypeToken:
		c.parseError(doctypeInHead)
		return false
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inBody)
		case "base", "basefont", "bgsound", "link", "meta":
			c.insertHTMLElementForToken(t)
			c.stackOfOpenElements.Pop()
			c.acknowledgeSelfClosing()
			return false
		case "title":
			c.genericRCDATAElement(t)
			return false
		case "noscript":
			if !c.scriptingEnabled {
				c.insertHTMLElementForToken(t)
				c.switchMode(inHeadNoScript)
				return false
			}
			c.genericRawTextElement(t)
			return false
		case "noframes", "style":
			c.genericRawTextElement(t)
			return false
		case "script":
			c.insertHTMLElementForToken(t)
			c.switchTokenizer(scriptDataState)
			c.originalInsertionMode = c.insertionMode
			c.switchMode(text)
			return false
		case "template":
			c.insertHTMLElementForToken(t)
			c.pushFormattingMarker()
			c.frameset = framesetNotOK
			c.switchMode(inTemplate)
			c.pushTemplateInsertionMode(inTemplate)
			return false
		case "head":
			c.parseError(headStartTagInHead)
			return false
		}
	case endTagToken:
		switch t.TagName {
		case "head":
			c.stackOfOpenElements.Pop()
			c.switchMode(afterHead)
			return false
		case "body", "html", "br":
		case "template":
			c.closeTemplate()
			return false
		default:
			c.parseError(unexpectedEndTag)
			return false
		}
	}
	return c.defaultInHeadModeHandler(t)
}

func (c *HTMLTreeConstructor) defaultInHeadModeHandler(t *Token) bool {
	c.stackOfOpenElements.Pop()
	c.switchMode(afterHead)
	return true
}

// closeTemplate handles a template end tag for the in head rules.
func (c *HTMLTreeConstructor) closeTemplate() {
	if !c.stackHas("template") {
		c.parseError(templateEndTagWithoutTemplate)
		return
	}
	c.generateImpliedEndTagsThoroughly()
	if !c.getCurrentNode().IsHTML("template") {
		c.parseError(templateNotCurrent)
	}
	c.popUntil("template")
	c.clearActiveFormattingToLastMarker()
	c.popTemplateInsertionMode()
	c.resetInsertionMode()
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inheadnoscript
func (c *HTMLTreeConstructor) inHeadNoScriptModeHandler(t *Token) bool {
	switch t.TokenType {
	case characterToken:
		if t.isWhitespace() {
			return c.useRulesFor(t, inHead)
		}
	case commentToken:
		return c.useRulesFor(t, inHead)
	case docTypeToken:
		c.parseError(doctypeInHeadNoScript)
		return false
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inBody)
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			return c.useRulesFor(t, inHead)
		case "head", "noscript":
			c.parseError(unexpectedStartTagInHeadNoScript)
			return false
		}
	case endTagToken:
		switch t.TagName {
		case "noscript":
			c.stackOfOpenElements.Pop()
			c.switchMode(inHead)
			return false
		case "br":
		default:
			c.parseError(unexpectedEndTag)
			return false
		}
	}
	return c.defaultInHeadNoScriptModeHandler(t)
}

func (c *HTMLTreeConstructor) defaultInHeadNoScriptModeHandler(t *Token) bool {
	if t.TokenType == characterToken {
		c.parseError(unexpectedCharacter)
	} else {
		c.parseError(unexpectedStartTag)
	}
	c.stackOfOpenElements.Pop()
	c.switchMode(inHead)
	return true
}

// https://html.spec.whatwg.org/multipage/parsing.html#the-after-head-insertion-mode
func (c *HTMLTreeConstructor) afterHeadModeHandler(t *Token) bool {
	switch t.TokenType {
	case characterToken:
		if t.isWhitespace() {
			c.insertCharacter(t)
			return false
		}
	case commentToken:
		c.insertComment(t)
		return false
	case docTypeToken:
		c.parseError(doctypeAfterHead)
		return false
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inBody)
		case "body":
			c.insertHTMLElementForToken(t)
			c.frameset = framesetNotOK
			c.switchMode(inBody)
			return false
		case "frameset":
			c.insertHTMLElementForToken(t)
			c.switchMode(inFrameset)
			return false
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style", "template", "title":
			c.parseError(headContentAfterHead)
			head := c.headElementPointer
			if head == nil {
				return c.useRulesFor(t, inHead)
			}
			c.stackOfOpenElements.Push(head)
			reprocess := c.useRulesFor(t, inHead)
			if i := c.stackOfOpenElements.Index(head); i != -1 {
				c.stackOfOpenElements.Remove(i)
			}
			return reprocess
		case "head":
			c.parseError(headStartTagAfterHead)
			return false
		}
	case endTagToken:
		switch t.TagName {
		case "template":
			return c.useRulesFor(t, inHead)
		case "body", "html", "br":
		default:
			c.parseError(unexpectedEndTag)
			return false
		}
	}
	return c.defaultAfterHeadModeHandler(t)
}

func (c *HTMLTreeConstructor) defaultAfterHeadModeHandler(t *Token) bool {
	c.insertHTMLElementNamed("body")
	c.switchMode(inBody)
	return true
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-incdata
func (c *HTMLTreeConstructor) textModeHandler(t *Token) bool {
	switch t.TokenType {
	case characterToken:
		c.insertCharacter(t)
	case endOfFileToken:
		c.parseError(eofInText)
		c.stackOfOpenElements.Pop()
		c.switchMode(c.originalInsertionMode)
		return true
	case endTagToken:
		c.stackOfOpenElements.Pop()
		c.switchMode(c.originalInsertionMode)
	}
	return false
}
