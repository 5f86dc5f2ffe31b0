package parser

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inselect
func (c *HTMLTreeConstructor) inSelectModeHandler(t *Token) bool {
	switch t.TokenType {
	case characterToken:
		if t.Data == "\u0000" {
			c.parseError(unexpectedNullCharacter)
			return false
		}
		c.insertCharacter(t)
		return false
	case commentToken:
		c.insertComment(t)
		return false
	case docTypeToken:
		c.parseError(doctypeInSelect)
		return false
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inBody)
		case "option":
			if c.getCurrentNode().IsHTML("option") {
				c.stackOfOpenElements.Pop()
			}
			c.insertHTMLElementForToken(t)
			return false
		case "optgroup", "hr":
			if c.getCurrentNode().IsHTML("option") {
				c.stackOfOpenElements.Pop()
			}
			if c.getCurrentNode().IsHTML("optgroup") {
				c.stackOfOpenElements.Pop()
			}
			if t.TagName == "hr" {
				c.insertVoidElement(t)
			} else {
				c.insertHTMLElementForToken(t)
			}
			return false
		case "select":
			c.parseError(unexpectedStartTag)
			if c.hasElementInScope(selectScope, "select") {
				c.popUntil("select")
				c.resetInsertionMode()
			}
			return false
		case "input", "keygen", "textarea":
			c.parseError(unexpectedStartTag)
			if !c.hasElementInScope(selectScope, "select") {
				return false
			}
			c.popUntil("select")
			c.resetInsertionMode()
			return true
		case "script", "template":
			return c.useRulesFor(t, inHead)
		}
	case endTagToken:
		switch t.TagName {
		case "optgroup":
			n := len(c.stackOfOpenElements)
			if c.getCurrentNode().IsHTML("option") && n > 1 && c.stackOfOpenElements[n-2].IsHTML("optgroup") {
				c.stackOfOpenElements.Pop()
			}
			if c.getCurrentNode().IsHTML("optgroup") {
				c.stackOfOpenElements.Pop()
			} else {
				c.parseError(unexpectedEndTag)
			}
			return false
		case "option":
			if c.getCurrentNode().IsHTML("option") {
				c.stackOfOpenElements.Pop()
			} else {
				c.parseError(unexpectedEndTag)
			}
			return false
		case "select":
			if !c.hasElementInScope(selectScope, "select") {
				c.parseError(elementNotInScope)
				return false
			}
			c.popUntil("select")
			c.resetInsertionMode()
			return false
		case "template":
			return c.useRulesFor(t, inHead)
		}
	case endOfFileToken:
		return c.useRulesFor(t, inBody)
	}
	c.ignoreUnexpected(t)
	return false
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inselectintable
func (c *HTMLTreeConstructor) inSelectInTableModeHandler(t *Token) bool {
	switch t.TokenType {
	case startTagToken:
		switch t.TagName {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			c.parseError(unexpectedStartTag)
			c.popUntil("select")
			c.resetInsertionMode()
			return true
		}
	case endTagToken:
		switch t.TagName {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			c.parseError(unexpectedEndTag)
			if !c.hasElementInScope(tableScope, t.TagName) {
				return false
			}
			c.popUntil("select")
			c.resetInsertionMode()
			return true
		}
	}
	return c.useRulesFor(t, inSelect)
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intemplate
func (c *HTMLTreeConstructor) inTemplateModeHandler(t *Token) bool {
	switch t.TokenType {
	case characterToken, commentToken, docTypeToken:
		return c.useRulesFor(t, inBody)
	case startTagToken:
		switch t.TagName {
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style", "template", "title":
			return c.useRulesFor(t, inHead)
		case "caption", "colgroup", "tbody", "tfoot", "thead":
			return c.switchTemplateMode(inTable)
		case "col":
			return c.switchTemplateMode(inColumnGroup)
		case "tr":
			return c.switchTemplateMode(inTableBody)
		case "td", "th":
			return c.switchTemplateMode(inRow)
		default:
			return c.switchTemplateMode(inBody)
		}
	case endTagToken:
		if t.TagName == "template" {
			return c.useRulesFor(t, inHead)
		}
		c.parseError(unexpectedEndTag)
		return false
	case endOfFileToken:
		if !c.stackHas("template") {
			c.stopParsing()
			return false
		}
		c.parseError(eofInTemplate)
		c.popUntil("template")
		c.clearActiveFormattingToLastMarker()
		c.popTemplateInsertionMode()
		c.resetInsertionMode()
		return true
	}
	return false
}

func (c *HTMLTreeConstructor) switchTemplateMode(mode insertionMode) bool {
	c.popTemplateInsertionMode()
	c.pushTemplateInsertionMode(mode)
	c.switchMode(mode)
	return true
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-afterbody
func (c *HTMLTreeConstructor) afterBodyModeHandler(t *Token) bool {
	switch t.TokenType {
	case characterToken:
		if t.isWhitespace() {
			return c.useRulesFor(t, inBody)
		}
	case commentToken:
		if len(c.stackOfOpenElements) > 0 {
			c.insertCommentAt(t, c.stackOfOpenElements[0], nil)
		}
		return false
	case docTypeToken:
		c.parseError(doctypeAfterBody)
		return false
	case startTagToken:
		if t.TagName == "html" {
			return c.useRulesFor(t, inBody)
		}
	case endTagToken:
		if t.TagName == "html" {
			if c.fragmentContext != nil {
				c.parseError(unexpectedEndTag)
				return false
			}
			c.switchMode(afterAfterBody)
			return false
		}
	case endOfFileToken:
		c.stopParsing()
		return false
	}
	return c.defaultAfterBodyModeHandler(t)
}

func (c *HTMLTreeConstructor) defaultAfterBodyModeHandler(t *Token) bool {
	c.parseError(contentAfterBody)
	c.switchMode(inBody)
	return true
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inframeset
func (c *HTMLTreeConstructor) inFramesetModeHandler(t *Token) bool {
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
		c.parseError(doctypeInFrameset)
		return false
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inBody)
		case "frameset":
			c.insertHTMLElementForToken(t)
			return false
		case "frame":
			c.insertVoidElement(t)
			return false
		case "noframes":
			return c.useRulesFor(t, inHead)
		}
	case endTagToken:
		if t.TagName == "frameset" {
			if len(c.stackOfOpenElements) == 1 {
				c.parseError(unexpectedEndTag)
				return false
			}
			c.stackOfOpenElements.Pop()
			if c.fragmentContext == nil && !c.getCurrentNode().IsHTML("frameset") {
				c.switchMode(afterFrameset)
			}
			return false
		}
	case endOfFileToken:
		if len(c.stackOfOpenElements) != 1 {
			c.parseError(eofInFrameset)
		}
		c.stopParsing()
		return false
	}
	c.ignoreUnexpected(t)
	return false
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-afterframeset
func (c *HTMLTreeConstructor) afterFramesetModeHandler(t *Token) bool {
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
		c.parseError(doctypeAfterFrameset)
		return false
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inBody)
		case "noframes":
			return c.useRulesFor(t, inHead)
		}
	case endTagToken:
		if t.TagName == "html" {
			c.switchMode(afterAfterFrameset)
			return false
		}
	case endOfFileToken:
		c.stopParsing()
		return false
	}
	c.ignoreUnexpected(t)
	return false
}

// https://html.spec.whatwg.org/multipage/parsing.html#the-after-after-body-insertion-mode
func (c *HTMLTreeConstructor) afterAfterBodyModeHandler(t *Token) bool {
	switch t.TokenType {
	case commentToken:
		c.insertCommentAtDocument(t)
		return false
	case docTypeToken:
		return c.useRulesFor(t, inBody)
	case characterToken:
		if t.isWhitespace() {
			return c.useRulesFor(t, inBody)
		}
	case startTagToken:
		if t.TagName == "html" {
			return c.useRulesFor(t, inBody)
		}
	case endOfFileToken:
		c.stopParsing()
		return false
	}
	return c.defaultAfterBodyModeHandler(t)
}

// https://html.spec.whatwg.org/multipage/parsing.html#the-after-after-frameset-insertion-mode
func (c *HTMLTreeConstructor) afterAfterFramesetModeHandler(t *Token) bool {
	switch t.TokenType {
	case commentToken:
		c.insertCommentAtDocument(t)
		return false
	case docTypeToken:
		return c.useRulesFor(t, inBody)
	case characterToken:
		if t.isWhitespace() {
			return c.useRulesFor(t, inBody)
		}
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inBody)
		case "noframes":
			return c.useRulesFor(t, inHead)
		}
	case endOfFileToken:
		c.stopParsing()
		return false
	}
	c.ignoreUnexpected(t)
	return false
}

// ignoreUnexpected reports a parse error for a token that is dropped.
func (c *HTMLTreeConstructor) ignoreUnexpected(t *Token) {
	switch t.TokenType {
	case characterToken:
		c.parseError(unexpectedCharacter)
	case endTagToken:
		c.parseError(unexpectedEndTag)
	default:
		c.parseError(unexpectedStartTag)
	}
}
