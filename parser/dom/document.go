package dom

import (
	"github.com/pkg/errors"
	"golang.org/x/net/html/atom"
)

// ErrNodeLimit is returned once a Document has allocated as many nodes as
// its limit allows.
var ErrNodeLimit = errors.New("dom: node limit reached")

type QuirksMode string

const (
	NoQuirks      QuirksMode = "no-quirks"
	Quirks        QuirksMode = "quirks"
	LimitedQuirks QuirksMode = "limited-quirks"
)

const blockSize = 128

// arena hands out nodes from fixed-size blocks so pointers stay valid for
// the lifetime of the Document.
type arena struct {
	blocks [][]Node
	count  int
	max    int
}

func (a *arena) alloc() (*Node, error) {
	if a.max > 0 && a.count >= a.max {
		return nil, errors.Wrapf(ErrNodeLimit, "allocating node %d", a.count+1)
	}
	n := len(a.blocks)
	if n == 0 || len(a.blocks[n-1]) == cap(a.blocks[n-1]) {
		a.blocks = append(a.blocks, make([]Node, 0, blockSize))
		n++
	}
	b := &a.blocks[n-1]
	*b = append(*b, Node{})
	a.count++
	return &(*b)[len(*b)-1], nil
}

// Document is the root of a parsed tree and the owner of all of its nodes.
type Document struct {
	*Node
	QuirksMode QuirksMode

	arena *arena
}

// NewDocument returns an empty document. maxNodes bounds the number of nodes
// it will allocate, the document node included; zero means no limit.
func NewDocument(maxNodes int) *Document {
	a := &arena{max: maxNodes}
	// The document node itself is always allocated.
	a.max = 0
	root, _ := a.alloc()
	a.max = maxNodes
	root.NodeType = DocumentNode
	root.NodeName = "#document"
	return &Document{Node: root, QuirksMode: NoQuirks, arena: a}
}

// NodeCount returns the number of nodes allocated so far.
func (d *Document) NodeCount() int {
	return d.arena.count
}

// CreateElement allocates an element. Template elements in the HTML
// namespace get their contents fragment allocated alongside.
func (d *Document) CreateElement(name string, ns Namespace, attrs []Attribute) (*Node, error) {
	n, err := d.arena.alloc()
	if err != nil {
		return nil, err
	}
	n.NodeType = ElementNode
	n.NodeName = name
	n.DataAtom = atom.Lookup([]byte(name))
	n.Namespace = ns
	if len(attrs) > 0 {
		n.Attributes = append([]Attribute(nil), attrs...)
	}
	if ns == HTML && n.DataAtom == atom.Template {
		content, err := d.CreateFragment()
		if err != nil {
			return nil, err
		}
		n.Content = content
	}
	return n, nil
}

func (d *Document) CreateText(data string) (*Node, error) {
	n, err := d.arena.alloc()
	if err != nil {
		return nil, err
	}
	n.NodeType = TextNode
	n.NodeName = "#text"
	n.data = append(n.data, data...)
	return n, nil
}

func (d *Document) CreateComment(data string) (*Node, error) {
	n, err := d.arena.alloc()
	if err != nil {
		return nil, err
	}
	n.NodeType = CommentNode
	n.NodeName = "#comment"
	n.data = append(n.data, data...)
	return n, nil
}

func (d *Document) CreateDoctype(name, publicID, systemID string) (*Node, error) {
	n, err := d.arena.alloc()
	if err != nil {
		return nil, err
	}
	n.NodeType = DocumentTypeNode
	n.NodeName = name
	n.PublicID = publicID
	n.SystemID = systemID
	return n, nil
}

func (d *Document) CreateFragment() (*Node, error) {
	n, err := d.arena.alloc()
	if err != nil {
		return nil, err
	}
	n.NodeType = DocumentFragmentNode
	n.NodeName = "#document-fragment"
	return n, nil
}
