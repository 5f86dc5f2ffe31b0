// Package dom holds the document tree the parser builds. A Document owns
// every node through its arena; anything else holding a *Node (the parser's
// stack of open elements, say) holds a non-owning reference.
package dom

import (
	"golang.org/x/net/html/atom"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

type Namespace uint8

const (
	NoNamespace Namespace = iota
	HTML
	MathML
	SVG
	XLink
	XML
	XMLNS
)

// Attribute is a single name/value pair. Namespace is only set for the
// adjusted foreign attributes (xlink:href and friends).
type Attribute struct {
	Namespace Namespace
	Prefix    string
	Name      string
	Value     string
}

// Node is a variant over the node types above. Which fields are meaningful
// depends on NodeType.
type Node struct {
	NodeType NodeType
	// NodeName is the local name of an element or the name of a doctype.
	NodeName string
	// DataAtom is the numeric id of NodeName, zero for names outside the
	// tag table.
	DataAtom  atom.Atom
	Namespace Namespace
	// Attributes keep the order they were first seen in.
	Attributes []Attribute
	// Content is the template contents fragment of a template element.
	Content *Node

	PublicID, SystemID string

	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node

	data []byte
}

// Data returns the text of a Text or Comment node.
func (n *Node) Data() string {
	return string(n.data)
}

// AppendData extends the text of a Text or Comment node.
func (n *Node) AppendData(s string) {
	n.data = append(n.data, s...)
}

// SetData replaces the text of a Text or Comment node.
func (n *Node) SetData(s string) {
	n.data = append(n.data[:0], s...)
}

// Is reports whether n is an element with the given namespace and local
// name.
func (n *Node) Is(ns Namespace, name string) bool {
	return n != nil && n.NodeType == ElementNode && n.Namespace == ns && n.NodeName == name
}

// IsHTML reports whether n is an HTML element named one of names.
func (n *Node) IsHTML(names ...string) bool {
	if n == nil || n.NodeType != ElementNode || n.Namespace != HTML {
		return false
	}
	for _, name := range names {
		if n.NodeName == name {
			return true
		}
	}
	return false
}

// Attr returns the value of the first attribute with the given name.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attributes {
		if a.Name == name && a.Namespace == NoNamespace {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether an attribute with the given name is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// HasChildNodes reports whether n has any children.
func (n *Node) HasChildNodes() bool {
	return n.FirstChild != nil
}

// ChildNodes returns the children of n in order.
func (n *Node) ChildNodes() NodeList {
	var children NodeList
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// AppendChild adds child as the last child of n, detaching it from its
// current parent first.
func (n *Node) AppendChild(child *Node) *Node {
	return n.InsertBefore(child, nil)
}

// InsertBefore inserts child immediately before ref, or at the end when ref
// is nil. child is detached from its current parent first.
func (n *Node) InsertBefore(child, ref *Node) *Node {
	if child.ParentNode != nil {
		child.ParentNode.RemoveChild(child)
	}
	var prev *Node
	if ref == nil {
		prev = n.LastChild
	} else {
		prev = ref.PreviousSibling
	}
	if prev != nil {
		prev.NextSibling = child
	} else {
		n.FirstChild = child
	}
	if ref != nil {
		ref.PreviousSibling = child
	} else {
		n.LastChild = child
	}
	child.ParentNode = n
	child.PreviousSibling = prev
	child.NextSibling = ref
	return child
}

// RemoveChild detaches child from n. It is a no-op when child is not a child
// of n.
func (n *Node) RemoveChild(child *Node) *Node {
	if child.ParentNode != n {
		return child
	}
	if n.FirstChild == child {
		n.FirstChild = child.NextSibling
	}
	if child.NextSibling != nil {
		child.NextSibling.PreviousSibling = child.PreviousSibling
	}
	if n.LastChild == child {
		n.LastChild = child.PreviousSibling
	}
	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = child.NextSibling
	}
	child.ParentNode = nil
	child.PreviousSibling = nil
	child.NextSibling = nil
	return child
}

// MoveChildren reparents every child of n onto dst, preserving order.
func (n *Node) MoveChildren(dst *Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		dst.AppendChild(c)
	}
}
