package parser

import "github.com/heathj/htmlkit/parser/dom"

func (c *HTMLTreeConstructor) pushFormattingMarker() {
	c.activeFormattingElements = append(c.activeFormattingElements, formattingEntry{})
}

// https://html.spec.whatwg.org/multipage/parsing.html#push-onto-the-list-of-active-formatting-elements
func (c *HTMLTreeConstructor) pushActiveFormattingElement(elem *dom.Node, t *Token) {
	count, earliest := 0, -1
	for i := len(c.activeFormattingElements) - 1; i >= 0; i-- {
		e := c.activeFormattingElements[i]
		if e.isMarker() {
			break
		}
		if sameFormattingElement(e.node, elem) {
			count++
			earliest = i
		}
	}
	if count >= 3 {
		c.removeFormattingEntry(earliest)
	}

	entry := formattingEntry{node: elem, token: *t}
	entry.token.Attributes = append([]dom.Attribute(nil), t.Attributes...)
	c.activeFormattingElements = append(c.activeFormattingElements, entry)
}

// sameFormattingElement compares tag name, namespace and attributes. The
// attribute order does not matter.
func sameFormattingElement(a, b *dom.Node) bool {
	if a.NodeName != b.NodeName || a.Namespace != b.Namespace || len(a.Attributes) != len(b.Attributes) {
		return false
	}
	for _, attr := range a.Attributes {
		found := false
		for _, other := range b.Attributes {
			if attr == other {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (c *HTMLTreeConstructor) removeFormattingEntry(i int) {
	if i < 0 || i >= len(c.activeFormattingElements) {
		return
	}
	c.activeFormattingElements = append(c.activeFormattingElements[:i], c.activeFormattingElements[i+1:]...)
}

func (c *HTMLTreeConstructor) insertFormattingEntry(i int, e formattingEntry) {
	if i >= len(c.activeFormattingElements) {
		c.activeFormattingElements = append(c.activeFormattingElements, e)
		return
	}
	c.activeFormattingElements = append(c.activeFormattingElements, formattingEntry{})
	copy(c.activeFormattingElements[i+1:], c.activeFormattingElements[i:])
	c.activeFormattingElements[i] = e
}

func (c *HTMLTreeConstructor) formattingIndex(n *dom.Node) int {
	for i := len(c.activeFormattingElements) - 1; i >= 0; i-- {
		if e := c.activeFormattingElements[i]; !e.isMarker() && e.node == n {
			return i
		}
	}
	return -1
}

// lastFormattingElementNamed returns the index of the last HTML element
// with the given name between the end of the list and the last marker.
func (c *HTMLTreeConstructor) lastFormattingElementNamed(name string) int {
	for i := len(c.activeFormattingElements) - 1; i >= 0; i-- {
		e := c.activeFormattingElements[i]
		if e.isMarker() {
			return -1
		}
		if e.node.IsHTML(name) {
			return i
		}
	}
	return -1
}

// https://html.spec.whatwg.org/multipage/parsing.html#clear-the-list-of-active-formatting-elements-up-to-the-last-marker
func (c *HTMLTreeConstructor) clearActiveFormattingToLastMarker() {
	for len(c.activeFormattingElements) > 0 {
		last := c.activeFormattingElements[len(c.activeFormattingElements)-1]
		c.activeFormattingElements = c.activeFormattingElements[:len(c.activeFormattingElements)-1]
		if last.isMarker() {
			return
		}
	}
}

// https://html.spec.whatwg.org/multipage/parsing.html#reconstruct-the-active-formatting-elements
func (c *HTMLTreeConstructor) reconstructActiveFormattingElements() {
	n := len(c.activeFormattingElements)
	if n == 0 {
		return
	}
	last := c.activeFormattingElements[n-1]
	if last.isMarker() || c.stackOfOpenElements.Contains(last.node) {
		return
	}

	// rewind
	i := n - 1
	for i > 0 {
		prev := c.activeFormattingElements[i-1]
		if prev.isMarker() || c.stackOfOpenElements.Contains(prev.node) {
			break
		}
		i--
	}

	// advance and create
	for ; i < n; i++ {
		t := c.activeFormattingElements[i].token
		elem := c.insertHTMLElementForToken(&t)
		if c.fatal != nil {
			return
		}
		c.activeFormattingElements[i].node = elem
	}
}

// https://html.spec.whatwg.org/multipage/parsing.html#adoption-agency-algorithm
//
// adoptionAgency returns true when the caller has to fall back to the "any
// other end tag" steps.
func (c *HTMLTreeConstructor) adoptionAgency(t *Token) bool {
	subject := t.TagName
	if cur := c.getCurrentNode(); cur.IsHTML(subject) && c.formattingIndex(cur) == -1 {
		c.stackOfOpenElements.Pop()
		return false
	}

	for outer := 0; outer < 8; outer++ {
		fi := c.lastFormattingElementNamed(subject)
		if fi == -1 {
			return true
		}
		formattingElement := c.activeFormattingElements[fi].node
		formattingToken := c.activeFormattingElements[fi].token

		si := c.stackOfOpenElements.Index(formattingElement)
		if si == -1 {
			c.parseError(formattingElementNotOpen)
			c.removeFormattingEntry(fi)
			return false
		}
		if !c.hasNodeInScope(defaultScope, formattingElement) {
			c.parseError(formattingElementNotInScope)
			return false
		}
		if formattingElement != c.getCurrentNode() {
			c.parseError(formattingElementNotCurrent)
		}

		fbi := -1
		for i := si + 1; i < len(c.stackOfOpenElements); i++ {
			if isSpecial(c.stackOfOpenElements[i]) {
				fbi = i
				break
			}
		}
		if fbi == -1 {
			c.popUntilNode(formattingElement)
			c.removeFormattingEntry(fi)
			return false
		}
		furthestBlock := c.stackOfOpenElements[fbi]
		commonAncestor := c.stackOfOpenElements[si-1]
		bookmark := fi

		lastNode := furthestBlock
		ni := fbi
		for inner := 1; ; inner++ {
			ni--
			node := c.stackOfOpenElements[ni]
			if node == formattingElement {
				break
			}
			nfi := c.formattingIndex(node)
			if inner > 3 && nfi != -1 {
				c.removeFormattingEntry(nfi)
				if nfi < bookmark {
					bookmark--
				}
				nfi = -1
			}
			if nfi == -1 {
				c.stackOfOpenElements.Remove(ni)
				continue
			}

			entryToken := c.activeFormattingElements[nfi].token
			replacement := c.createElementForToken(&entryToken, dom.HTML)
			if c.fatal != nil {
				return false
			}
			c.activeFormattingElements[nfi].node = replacement
			c.stackOfOpenElements[ni] = replacement
			node = replacement
			if lastNode == furthestBlock {
				bookmark = nfi + 1
			}
			node.AppendChild(lastNode)
			lastNode = node
		}

		parent, before := c.appropriatePlaceForInsertion(commonAncestor)
		parent.InsertBefore(lastNode, before)

		elem := c.createElementForToken(&formattingToken, dom.HTML)
		if c.fatal != nil {
			return false
		}
		furthestBlock.MoveChildren(elem)
		furthestBlock.AppendChild(elem)

		if fi = c.formattingIndex(formattingElement); fi != -1 {
			if fi < bookmark {
				bookmark--
			}
			c.removeFormattingEntry(fi)
		}
		c.insertFormattingEntry(bookmark, formattingEntry{node: elem, token: formattingToken})

		c.stackOfOpenElements.Remove(c.stackOfOpenElements.Index(formattingElement))
		c.stackOfOpenElements.Insert(c.stackOfOpenElements.Index(furthestBlock)+1, elem)
	}
	return false
}
