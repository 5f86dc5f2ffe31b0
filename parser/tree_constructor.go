package parser

import (
	"strings"

	"github.com/heathj/htmlkit/parser/dom"
	"github.com/heathj/htmlkit/parser/tags"
	"github.com/sirupsen/logrus"
)

type frameset uint

const (
	framesetNotOK frameset = iota
	framesetOK
)

// formattingEntry is an entry of the list of active formatting elements:
// either a marker (node is nil) or an element with the token that created
// it.
type formattingEntry struct {
	node  *dom.Node
	token Token
}

func (e formattingEntry) isMarker() bool {
	return e.node == nil
}

type treeConstructionModeHandler func(t *Token) (reprocess bool)

// HTMLTreeConstructor holds the state for various state of the tree construction phase.
type HTMLTreeConstructor struct {
	config                   Config
	Document                 *dom.Document
	insertionMode            insertionMode
	originalInsertionMode    insertionMode
	templateInsertionModes   []insertionMode
	stackOfOpenElements      dom.NodeList
	activeFormattingElements []formattingEntry
	headElementPointer       *dom.Node
	formElementPointer       *dom.Node
	fosterParenting          bool
	scriptingEnabled         bool
	frameset                 frameset
	fragmentContext          *dom.Node
	pendingTableCharacters   []Token
	mappings                 [numInsertionModes]treeConstructionModeHandler

	// skipNewline drops a line feed that directly follows a pre, listing or
	// textarea start tag.
	skipNewline             bool
	selfClosingAcknowledged bool
	nextTokenizerState      *tokenizerState
	tokenOffset             int64
	stopped                 bool

	// fatal is set when the document could not allocate a node. Everything
	// after that is discarded.
	fatal error

	diagnostics *diagnosticLog
	log         *logrus.Logger
}

// NewHTMLTreeConstructor creates an HTMLTreeConstructor building into doc.
func newHTMLTreeConstructor(doc *dom.Document, cfg Config, diagnostics *diagnosticLog, log *logrus.Logger) *HTMLTreeConstructor {
	c := &HTMLTreeConstructor{
		config:           cfg,
		Document:         doc,
		scriptingEnabled: cfg.Scripting,
		frameset:         framesetOK,
		diagnostics:      diagnostics,
		log:              log,
	}
	c.createMappings()
	return c
}

func (c *HTMLTreeConstructor) createMappings() {
	c.mappings = [numInsertionModes]treeConstructionModeHandler{
		initial:            c.initialModeHandler,
		beforeHTML:         c.beforeHTMLModeHandler,
		beforeHead:         c.beforeHeadModeHandler,
		inHead:             c.inHeadModeHandler,
		inHeadNoScript:     c.inHeadNoScriptModeHandler,
		afterHead:          c.afterHeadModeHandler,
		inBody:             c.inBodyModeHandler,
		text:               c.textModeHandler,
		inTable:            c.inTableModeHandler,
		inTableText:        c.inTableTextModeHandler,
		inCaption:          c.inCaptionModeHandler,
		inColumnGroup:      c.inColumnGroupModeHandler,
		inTableBody:        c.inTableBodyModeHandler,
		inRow:              c.inRowModeHandler,
		inCell:             c.inCellModeHandler,
		inSelect:           c.inSelectModeHandler,
		inSelectInTable:    c.inSelectInTableModeHandler,
		inTemplate:         c.inTemplateModeHandler,
		afterBody:          c.afterBodyModeHandler,
		inFrameset:         c.inFramesetModeHandler,
		afterFrameset:      c.afterFramesetModeHandler,
		afterAfterBody:     c.afterAfterBodyModeHandler,
		afterAfterFrameset: c.afterAfterFramesetModeHandler,
	}
}

// ProcessToken runs one token through tree construction and reports what
// the tokenizer needs to know before it produces the next one.
func (c *HTMLTreeConstructor) ProcessToken(t *Token) *Progress {
	c.tokenOffset = t.Offset
	c.nextTokenizerState = nil
	if c.skipNewline {
		c.skipNewline = false
		if t.TokenType == characterToken && t.Data == "\n" {
			return MakeProgress(c.adjustedCurrentNode(), nil)
		}
	}
	if c.stopped || c.fatal != nil {
		return MakeProgress(nil, nil)
	}

	c.selfClosingAcknowledged = false
	for reprocess := true; reprocess && c.fatal == nil; {
		if c.useHTMLRules(t) {
			reprocess = c.mappings[c.insertionMode](t)
		} else {
			reprocess = c.foreignContentHandler(t)
		}
	}
	if t.TokenType == startTagToken && t.SelfClosing && !c.selfClosingAcknowledged && !tags.Is(t.TagName, tags.Void) {
		c.parseError(nonVoidHTMLElementStartTagWithTrailingSolidus)
	}
	return MakeProgress(c.adjustedCurrentNode(), c.nextTokenizerState)
}

// useHTMLRules is the tree construction dispatcher: it decides whether a
// token goes to the current insertion mode or to the foreign content rules.
func (c *HTMLTreeConstructor) useHTMLRules(t *Token) bool {
	acn := c.adjustedCurrentNode()
	if acn == nil || acn.Namespace == dom.HTML || t.TokenType == endOfFileToken {
		return true
	}
	if isMathMLTextIntegrationPoint(acn) {
		if t.TokenType == startTagToken && t.TagName != "mglyph" && t.TagName != "malignmark" {
			return true
		}
		if t.TokenType == characterToken {
			return true
		}
	}
	if acn.Is(dom.MathML, "annotation-xml") && t.TokenType == startTagToken && t.TagName == "svg" {
		return true
	}
	if isHTMLIntegrationPoint(acn) && (t.TokenType == startTagToken || t.TokenType == characterToken) {
		return true
	}
	return false
}

func (c *HTMLTreeConstructor) parseError(kind ErrorKind) {
	c.diagnostics.add(kind, c.tokenOffset)
}

func (c *HTMLTreeConstructor) switchTokenizer(state tokenizerState) {
	c.nextTokenizerState = &state
}

func (c *HTMLTreeConstructor) switchMode(mode insertionMode) {
	if c.log.IsLevelEnabled(logrus.DebugLevel) {
		c.log.WithFields(logrus.Fields{
			"from": c.insertionMode,
			"mode": mode,
		}).Debug("insertion mode")
	}
	c.insertionMode = mode
}

func (c *HTMLTreeConstructor) acknowledgeSelfClosing() {
	c.selfClosingAcknowledged = true
}

func (c *HTMLTreeConstructor) stopParsing() {
	c.stackOfOpenElements = nil
	c.stopped = true
}

func (c *HTMLTreeConstructor) getCurrentNode() *dom.Node {
	return c.stackOfOpenElements.Top()
}

// https://html.spec.whatwg.org/multipage/parsing.html#adjusted-current-node
func (c *HTMLTreeConstructor) adjustedCurrentNode() *dom.Node {
	if c.fragmentContext != nil && len(c.stackOfOpenElements) == 1 {
		return c.fragmentContext
	}
	return c.getCurrentNode()
}

func isMathMLTextIntegrationPoint(n *dom.Node) bool {
	return n.NodeType == dom.ElementNode && n.Namespace == dom.MathML &&
		tags.Is(n.NodeName, tags.MathMLTextIntegration)
}

func isHTMLIntegrationPoint(n *dom.Node) bool {
	if n.NodeType != dom.ElementNode {
		return false
	}
	switch n.Namespace {
	case dom.MathML:
		if n.NodeName != "annotation-xml" {
			return false
		}
		enc, _ := n.Attr("encoding")
		enc = strings.ToLower(enc)
		return enc == "text/html" || enc == "application/xhtml+xml"
	case dom.SVG:
		return tags.Is(n.NodeName, tags.SVGHTMLIntegration)
	}
	return false
}

func isSpecial(n *dom.Node) bool {
	switch n.Namespace {
	case dom.HTML:
		return tags.IDIs(n.DataAtom, tags.Special) || tags.Is(n.NodeName, tags.Special)
	case dom.MathML:
		return n.NodeName == "annotation-xml" || tags.Is(n.NodeName, tags.MathMLTextIntegration)
	case dom.SVG:
		return tags.Is(n.NodeName, tags.SVGHTMLIntegration)
	}
	return false
}

// fail records a fatal error. Nodes handed out afterwards are detached
// placeholders so the handlers can unwind without nil checks.
func (c *HTMLTreeConstructor) fail(err error, placeholder dom.NodeType) *dom.Node {
	if c.fatal == nil {
		c.fatal = err
	}
	return &dom.Node{NodeType: placeholder}
}

// https://html.spec.whatwg.org/multipage/parsing.html#appropriate-place-for-inserting-a-node
func (c *HTMLTreeConstructor) appropriatePlaceForInsertion(override *dom.Node) (parent, before *dom.Node) {
	target := override
	if target == nil {
		target = c.getCurrentNode()
	}
	if target == nil {
		return c.Document.Node, nil
	}
	parent = target
	if c.fosterParenting && target.IsHTML("table", "tbody", "tfoot", "thead", "tr") {
		lastTemplate, lastTable := -1, -1
		for i := len(c.stackOfOpenElements) - 1; i >= 0; i-- {
			n := c.stackOfOpenElements[i]
			if lastTemplate == -1 && n.IsHTML("template") {
				lastTemplate = i
			}
			if lastTable == -1 && n.IsHTML("table") {
				lastTable = i
			}
		}
		switch {
		case lastTemplate != -1 && (lastTable == -1 || lastTemplate > lastTable):
			parent = c.stackOfOpenElements[lastTemplate]
		case lastTable == -1:
			parent = c.stackOfOpenElements[0]
		case c.stackOfOpenElements[lastTable].ParentNode != nil:
			table := c.stackOfOpenElements[lastTable]
			return table.ParentNode, table
		default:
			parent = c.stackOfOpenElements[lastTable-1]
		}
	}
	if parent.IsHTML("template") && parent.Content != nil {
		parent = parent.Content
	}
	return parent, nil
}

// https://html.spec.whatwg.org/multipage/parsing.html#create-an-element-for-the-token
func (c *HTMLTreeConstructor) createElementForToken(t *Token, ns dom.Namespace) *dom.Node {
	elem, err := c.Document.CreateElement(t.TagName, ns, t.Attributes)
	if err != nil {
		return c.fail(err, dom.ElementNode)
	}
	return elem
}

// https://html.spec.whatwg.org/multipage/parsing.html#insert-a-foreign-element
func (c *HTMLTreeConstructor) insertForeignElementForToken(t *Token, ns dom.Namespace) *dom.Node {
	parent, before := c.appropriatePlaceForInsertion(nil)
	elem := c.createElementForToken(t, ns)
	if c.fatal != nil {
		return elem
	}
	parent.InsertBefore(elem, before)
	c.stackOfOpenElements.Push(elem)
	return elem
}

func (c *HTMLTreeConstructor) insertHTMLElementForToken(t *Token) *dom.Node {
	return c.insertForeignElementForToken(t, dom.HTML)
}

// insertHTMLElementNamed inserts an element for a start tag the parser
// made up, like the implied head or tbody.
func (c *HTMLTreeConstructor) insertHTMLElementNamed(name string) *dom.Node {
	return c.insertHTMLElementForToken(&Token{TokenType: startTagToken, TagName: name})
}

// https://html.spec.whatwg.org/multipage/parsing.html#insert-a-character
func (c *HTMLTreeConstructor) insertCharacter(t *Token) {
	c.insertText(t.Data)
}

func (c *HTMLTreeConstructor) insertText(data string) {
	parent, before := c.appropriatePlaceForInsertion(nil)
	if parent.NodeType == dom.DocumentNode {
		return
	}
	prev := parent.LastChild
	if before != nil {
		prev = before.PreviousSibling
	}
	if prev != nil && prev.NodeType == dom.TextNode {
		prev.AppendData(data)
		return
	}
	text, err := c.Document.CreateText(data)
	if err != nil {
		c.fail(err, dom.TextNode)
		return
	}
	parent.InsertBefore(text, before)
}

// https://html.spec.whatwg.org/multipage/parsing.html#insert-a-comment
func (c *HTMLTreeConstructor) insertComment(t *Token) {
	parent, before := c.appropriatePlaceForInsertion(nil)
	c.insertCommentAt(t, parent, before)
}

func (c *HTMLTreeConstructor) insertCommentAt(t *Token, parent, before *dom.Node) {
	comment, err := c.Document.CreateComment(t.Data)
	if err != nil {
		c.fail(err, dom.CommentNode)
		return
	}
	parent.InsertBefore(comment, before)
}

// genericRawTextElement and genericRCDATAElement insert the element and
// hand the tokenizer its new state.
func (c *HTMLTreeConstructor) genericRawTextElement(t *Token) {
	c.insertHTMLElementForToken(t)
	c.switchTokenizer(rawTextState)
	c.originalInsertionMode = c.insertionMode
	c.switchMode(text)
}

func (c *HTMLTreeConstructor) genericRCDATAElement(t *Token) {
	c.insertHTMLElementForToken(t)
	c.switchTokenizer(rcDataState)
	c.originalInsertionMode = c.insertionMode
	c.switchMode(text)
}

var impliedEndTags = []string{"dd", "dt", "li", "optgroup", "option", "p", "rb", "rp", "rt", "rtc"}

var impliedEndTagsThoroughly = []string{
	"caption", "colgroup", "dd", "dt", "li", "optgroup", "option", "p", "rb",
	"rp", "rt", "rtc", "tbody", "td", "tfoot", "th", "thead", "tr",
}

// https://html.spec.whatwg.org/multipage/parsing.html#generate-implied-end-tags
func (c *HTMLTreeConstructor) generateImpliedEndTags(except ...string) {
	for {
		cur := c.getCurrentNode()
		if cur == nil || !cur.IsHTML(impliedEndTags...) || cur.IsHTML(except...) {
			return
		}
		c.stackOfOpenElements.Pop()
	}
}

func (c *HTMLTreeConstructor) generateImpliedEndTagsThoroughly() {
	for {
		cur := c.getCurrentNode()
		if cur == nil || !cur.IsHTML(impliedEndTagsThoroughly...) {
			return
		}
		c.stackOfOpenElements.Pop()
	}
}

// popUntil pops elements until an HTML element with one of the names has
// been popped.
func (c *HTMLTreeConstructor) popUntil(names ...string) {
	c.stackOfOpenElements.PopUntil(func(n *dom.Node) bool {
		return n.IsHTML(names...)
	})
}

// popUntilNode pops elements until target has been popped.
func (c *HTMLTreeConstructor) popUntilNode(target *dom.Node) {
	c.stackOfOpenElements.PopUntil(func(n *dom.Node) bool {
		return n == target
	})
}

// https://html.spec.whatwg.org/multipage/parsing.html#close-a-p-element
func (c *HTMLTreeConstructor) closePElement() {
	c.generateImpliedEndTags("p")
	if !c.getCurrentNode().IsHTML("p") {
		c.parseError(misnestedTag)
	}
	c.popUntil("p")
}

func (c *HTMLTreeConstructor) closePElementInButtonScope() {
	if c.hasElementInScope(buttonScope, "p") {
		c.closePElement()
	}
}

// clearStackBackTo pops until the current node is an HTML element with one
// of the names, or the html root.
func (c *HTMLTreeConstructor) clearStackBackTo(names ...string) {
	for {
		cur := c.getCurrentNode()
		if cur == nil || cur.IsHTML(names...) || cur.IsHTML("html", "template") {
			return
		}
		c.stackOfOpenElements.Pop()
	}
}

func (c *HTMLTreeConstructor) clearStackBackToTable() {
	c.clearStackBackTo("table")
}

func (c *HTMLTreeConstructor) clearStackBackToTableBody() {
	c.clearStackBackTo("tbody", "tfoot", "thead")
}

func (c *HTMLTreeConstructor) clearStackBackToTableRow() {
	c.clearStackBackTo("tr")
}

// https://html.spec.whatwg.org/multipage/parsing.html#reset-the-insertion-mode-appropriately
func (c *HTMLTreeConstructor) resetInsertionMode() {
	for i := len(c.stackOfOpenElements) - 1; i >= 0; i-- {
		node := c.stackOfOpenElements[i]
		last := i == 0
		if last && c.fragmentContext != nil {
			node = c.fragmentContext
		}
		if node.Namespace != dom.HTML {
			if last {
				c.switchMode(inBody)
				return
			}
			continue
		}
		switch node.NodeName {
		case "select":
			if !last {
				for j := i - 1; j > 0; j-- {
					ancestor := c.stackOfOpenElements[j]
					if ancestor.IsHTML("template") {
						break
					}
					if ancestor.IsHTML("table") {
						c.switchMode(inSelectInTable)
						return
					}
				}
			}
			c.switchMode(inSelect)
			return
		case "td", "th":
			if !last {
				c.switchMode(inCell)
				return
			}
		case "tr":
			c.switchMode(inRow)
			return
		case "tbody", "thead", "tfoot":
			c.switchMode(inTableBody)
			return
		case "caption":
			c.switchMode(inCaption)
			return
		case "colgroup":
			c.switchMode(inColumnGroup)
			return
		case "table":
			c.switchMode(inTable)
			return
		case "template":
			c.switchMode(c.currentTemplateInsertionMode())
			return
		case "head":
			if !last {
				c.switchMode(inHead)
				return
			}
		case "body":
			c.switchMode(inBody)
			return
		case "frameset":
			c.switchMode(inFrameset)
			return
		case "html":
			if c.headElementPointer == nil {
				c.switchMode(beforeHead)
			} else {
				c.switchMode(afterHead)
			}
			return
		}
		if last {
			c.switchMode(inBody)
			return
		}
	}
	c.switchMode(inBody)
}

func (c *HTMLTreeConstructor) pushTemplateInsertionMode(mode insertionMode) {
	c.templateInsertionModes = append(c.templateInsertionModes, mode)
}

func (c *HTMLTreeConstructor) popTemplateInsertionMode() {
	if n := len(c.templateInsertionModes); n > 0 {
		c.templateInsertionModes = c.templateInsertionModes[:n-1]
	}
}

func (c *HTMLTreeConstructor) currentTemplateInsertionMode() insertionMode {
	if n := len(c.templateInsertionModes); n > 0 {
		return c.templateInsertionModes[n-1]
	}
	return inBody
}

func (c *HTMLTreeConstructor) stackHas(names ...string) bool {
	for _, n := range c.stackOfOpenElements {
		if n.IsHTML(names...) {
			return true
		}
	}
	return false
}

// adjustTagAttributes copies attributes of t that elem does not have yet
// onto elem, for stray html and body start tags.
func adjustTagAttributes(elem *dom.Node, t *Token) {
	for _, a := range t.Attributes {
		if !elem.HasAttr(a.Name) {
			elem.Attributes = append(elem.Attributes, a)
		}
	}
}
