package parser

import "strings"

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intable
func (c *HTMLTreeConstructor) inTableModeHandler(t *Token) bool {
	switch t.TokenType {
	case characterToken:
		if c.getCurrentNode().IsHTML("table", "tbody", "template", "tfoot", "thead", "tr") {
			c.pendingTableCharacters = c.pendingTableCharacters[:0]
			c.originalInsertionMode = c.insertionMode
			c.switchMode(inTableText)
			return true
		}
	case commentToken:
		c.insertComment(t)
		return false
	case docTypeToken:
		c.parseError(doctypeInTable)
		return false
	case startTagToken:
		switch t.TagName {
		case "caption":
			c.clearStackBackToTable()
			c.pushFormattingMarker()
			c.insertHTMLElementForToken(t)
			c.switchMode(inCaption)
			return false
		case "colgroup":
			c.clearStackBackToTable()
			c.insertHTMLElementForToken(t)
			c.switchMode(inColumnGroup)
			return false
		case "col":
			c.clearStackBackToTable()
			c.insertHTMLElementNamed("colgroup")
			c.switchMode(inColumnGroup)
			return true
		case "tbody", "tfoot", "thead":
			c.clearStackBackToTable()
			c.insertHTMLElementForToken(t)
			c.switchMode(inTableBody)
			return false
		case "td", "th", "tr":
			c.clearStackBackToTable()
			c.insertHTMLElementNamed("tbody")
			c.switchMode(inTableBody)
			return true
		case "table":
			c.parseError(unexpectedStartTag)
			if !c.hasElementInScope(tableScope, "table") {
				return false
			}
			c.popUntil("table")
			c.resetInsertionMode()
			return true
		case "style", "script", "template":
			return c.useRulesFor(t, inHead)
		case "input":
			if typ, ok := t.Attr("type"); ok && strings.EqualFold(typ, "hidden") {
				c.parseError(unexpectedStartTag)
				c.insertVoidElement(t)
				return false
			}
		case "form":
			c.parseError(unexpectedStartTag)
			if c.stackHas("template") || c.formElementPointer != nil {
				return false
			}
			c.formElementPointer = c.insertHTMLElementForToken(t)
			c.stackOfOpenElements.Pop()
			return false
		}
	case endTagToken:
		switch t.TagName {
		case "table":
			if !c.hasElementInScope(tableScope, "table") {
				c.parseError(elementNotInScope)
				return false
			}
			c.popUntil("table")
			c.resetInsertionMode()
			return false
		case "body", "caption", "col", "colgroup", "html", "tbody", "td", "tfoot", "th", "thead", "tr":
			c.parseError(unexpectedEndTag)
			return false
		case "template":
			return c.useRulesFor(t, inHead)
		}
	case endOfFileToken:
		return c.useRulesFor(t, inBody)
	}
	return c.defaultInTableModeHandler(t)
}

// defaultInTableModeHandler processes t with the in body rules, with foster
// parenting enabled.
func (c *HTMLTreeConstructor) defaultInTableModeHandler(t *Token) bool {
	switch t.TokenType {
	case characterToken:
		c.parseError(characterInTable)
	case endTagToken:
		c.parseError(endTagInTable)
	default:
		c.parseError(startTagInTable)
	}
	c.fosterParenting = true
	reprocess := c.useRulesFor(t, inBody)
	c.fosterParenting = false
	return reprocess
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intabletext
func (c *HTMLTreeConstructor) inTableTextModeHandler(t *Token) bool {
	if t.TokenType == characterToken {
		if t.Data == "\u0000" {
			c.parseError(unexpectedNullCharacter)
			return false
		}
		c.pendingTableCharacters = append(c.pendingTableCharacters, *t)
		return false
	}

	whitespaceOnly := true
	for i := range c.pendingTableCharacters {
		if !c.pendingTableCharacters[i].isWhitespace() {
			whitespaceOnly = false
			break
		}
	}
	if whitespaceOnly {
		var b strings.Builder
		for i := range c.pendingTableCharacters {
			b.WriteString(c.pendingTableCharacters[i].Data)
		}
		if b.Len() > 0 {
			c.insertText(b.String())
		}
	} else {
		for i := range c.pendingTableCharacters {
			pending := c.pendingTableCharacters[i]
			c.defaultInTableModeHandler(&pending)
		}
	}
	c.pendingTableCharacters = c.pendingTableCharacters[:0]
	c.switchMode(c.originalInsertionMode)
	return true
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-incaption
func (c *HTMLTreeConstructor) inCaptionModeHandler(t *Token) bool {
	switch t.TokenType {
	case startTagToken:
		switch t.TagName {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			return c.closeCaption()
		}
	case endTagToken:
		switch t.TagName {
		case "caption":
			c.closeCaption()
			return false
		case "table":
			return c.closeCaption()
		case "body", "col", "colgroup", "html", "tbody", "td", "tfoot", "th", "thead", "tr":
			c.parseError(unexpectedEndTag)
			return false
		}
	}
	return c.useRulesFor(t, inBody)
}

// closeCaption closes the open caption. It returns false when there was
// none, in which case the token is ignored.
func (c *HTMLTreeConstructor) closeCaption() bool {
	if !c.hasElementInScope(tableScope, "caption") {
		c.parseError(elementNotInScope)
		return false
	}
	c.generateImpliedEndTags()
	if !c.getCurrentNode().IsHTML("caption") {
		c.parseError(misnestedTag)
	}
	c.popUntil("caption")
	c.clearActiveFormattingToLastMarker()
	c.switchMode(inTable)
	return true
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-incolgroup
func (c *HTMLTreeConstructor) inColumnGroupModeHandler(t *Token) bool {
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
		c.parseError(doctypeInColumnGroup)
		return false
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inBody)
		case "col":
			c.insertVoidElement(t)
			return false
		case "template":
			return c.useRulesFor(t, inHead)
		}
	case endTagToken:
		switch t.TagName {
		case "colgroup":
			if !c.getCurrentNode().IsHTML("colgroup") {
				c.parseError(unexpectedEndTag)
				return false
			}
			c.stackOfOpenElements.Pop()
			c.switchMode(inTable)
			return false
		case "col":
			c.parseError(unexpectedEndTag)
			return false
		case "template":
			return c.useRulesFor(t, inHead)
		}
	case endOfFileToken:
		return c.useRulesFor(t, inBody)
	}
	return c.defaultInColumnGroupModeHandler(t)
}

func (c *HTMLTreeConstructor) defaultInColumnGroupModeHandler(t *Token) bool {
	if !c.getCurrentNode().IsHTML("colgroup") {
		c.parseError(unexpectedStartTag)
		return false
	}
	c.stackOfOpenElements.Pop()
	c.switchMode(inTable)
	return true
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intbody
func (c *HTMLTreeConstructor) inTableBodyModeHandler(t *Token) bool {
	switch t.TokenType {
	case startTagToken:
		switch t.TagName {
		case "tr":
			c.clearStackBackToTableBody()
			c.insertHTMLElementForToken(t)
			c.switchMode(inRow)
			return false
		case "th", "td":
			c.parseError(unexpectedStartTag)
			c.clearStackBackToTableBody()
			c.insertHTMLElementNamed("tr")
			c.switchMode(inRow)
			return true
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead":
			return c.closeTableBody()
		}
	case endTagToken:
		switch t.TagName {
		case "tbody", "tfoot", "thead":
			if !c.hasElementInScope(tableScope, t.TagName) {
				c.parseError(elementNotInScope)
				return false
			}
			c.clearStackBackToTableBody()
			c.stackOfOpenElements.Pop()
			c.switchMode(inTable)
			return false
		case "table":
			return c.closeTableBody()
		case "body", "caption", "col", "colgroup", "html", "td", "th", "tr":
			c.parseError(unexpectedEndTag)
			return false
		}
	}
	return c.useRulesFor(t, inTable)
}

func (c *HTMLTreeConstructor) closeTableBody() bool {
	if !c.hasElementInScope(tableScope, "tbody", "thead", "tfoot") {
		c.parseError(elementNotInScope)
		return false
	}
	c.clearStackBackToTableBody()
	c.stackOfOpenElements.Pop()
	c.switchMode(inTable)
	return true
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intr
func (c *HTMLTreeConstructor) inRowModeHandler(t *Token) bool {
	switch t.TokenType {
	case startTagToken:
		switch t.TagName {
		case "th", "td":
			c.clearStackBackToTableRow()
			c.insertHTMLElementForToken(t)
			c.switchMode(inCell)
			c.pushFormattingMarker()
			return false
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead", "tr":
			return c.closeRow()
		}
	case endTagToken:
		switch t.TagName {
		case "tr":
			c.closeRow()
			return false
		case "table":
			return c.closeRow()
		case "tbody", "tfoot", "thead":
			if !c.hasElementInScope(tableScope, t.TagName) {
				c.parseError(elementNotInScope)
				return false
			}
			if !c.hasElementInScope(tableScope, "tr") {
				return false
			}
			return c.closeRow()
		case "body", "caption", "col", "colgroup", "html", "td", "th":
			c.parseError(unexpectedEndTag)
			return false
		}
	}
	return c.useRulesFor(t, inTable)
}

func (c *HTMLTreeConstructor) closeRow() bool {
	if !c.hasElementInScope(tableScope, "tr") {
		c.parseError(elementNotInScope)
		return false
	}
	c.clearStackBackToTableRow()
	c.stackOfOpenElements.Pop()
	c.switchMode(inTableBody)
	return true
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intd
func (c *HTMLTreeConstructor) inCellModeHandler(t *Token) bool {
	switch t.TokenType {
	case startTagToken:
		switch t.TagName {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if !c.hasElementInScope(tableScope, "td", "th") {
				c.parseError(elementNotInScope)
				return false
			}
			c.closeCell()
			return true
		}
	case endTagToken:
		switch t.TagName {
		case "td", "th":
			if !c.hasElementInScope(tableScope, t.TagName) {
				c.parseError(elementNotInScope)
				return false
			}
			c.generateImpliedEndTags()
			if !c.getCurrentNode().IsHTML(t.TagName) {
				c.parseError(misnestedTag)
			}
			c.popUntil(t.TagName)
			c.clearActiveFormattingToLastMarker()
			c.switchMode(inRow)
			return false
		case "body", "caption", "col", "colgroup", "html":
			c.parseError(unexpectedEndTag)
			return false
		case "table", "tbody", "tfoot", "thead", "tr":
			if !c.hasElementInScope(tableScope, t.TagName) {
				c.parseError(elementNotInScope)
				return false
			}
			c.closeCell()
			return true
		}
	}
	return c.useRulesFor(t, inBody)
}

// https://html.spec.whatwg.org/multipage/parsing.html#close-the-cell
func (c *HTMLTreeConstructor) closeCell() {
	c.generateImpliedEndTags()
	if !c.getCurrentNode().IsHTML("td", "th") {
		c.parseError(misnestedTag)
	}
	c.popUntil("td", "th")
	c.clearActiveFormattingToLastMarker()
	c.switchMode(inRow)
}
