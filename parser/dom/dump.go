package dom

import (
	"sort"
	"strings"
)

// String renders the subtree rooted at n in the html5lib tree-construction
// test format. It is a debugging aid, not a serializer.
func (n *Node) String() string {
	var b strings.Builder
	switch n.NodeType {
	case DocumentNode:
		b.WriteString("#document\n")
		dumpChildren(&b, n, 0)
	case DocumentFragmentNode:
		dumpChildren(&b, n, 0)
	default:
		dumpNode(&b, n, 0)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Dump renders a list of sibling nodes, as returned by fragment parsing.
func Dump(nodes []*Node) string {
	var b strings.Builder
	for _, n := range nodes {
		dumpNode(&b, n, 0)
	}
	return strings.TrimRight(b.String(), "\n")
}

func indent(b *strings.Builder, depth int) {
	b.WriteString("| ")
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func dumpChildren(b *strings.Builder, n *Node, depth int) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dumpNode(b, c, depth)
	}
}

func dumpNode(b *strings.Builder, n *Node, depth int) {
	indent(b, depth)
	switch n.NodeType {
	case ElementNode:
		b.WriteByte('<')
		switch n.Namespace {
		case SVG:
			b.WriteString("svg ")
		case MathML:
			b.WriteString("math ")
		}
		b.WriteString(n.NodeName)
		b.WriteString(">\n")
		dumpAttributes(b, n.Attributes, depth+1)
		if n.Content != nil {
			indent(b, depth+1)
			b.WriteString("content\n")
			dumpChildren(b, n.Content, depth+2)
		}
	case TextNode:
		b.WriteString(`"` + n.Data() + "\"\n")
	case CommentNode:
		b.WriteString("<!-- " + n.Data() + " -->\n")
	case DocumentTypeNode:
		b.WriteString("<!DOCTYPE " + n.NodeName)
		if n.PublicID != "" || n.SystemID != "" {
			b.WriteString(` "` + n.PublicID + `" "` + n.SystemID + `"`)
		}
		b.WriteString(">\n")
	default:
		b.WriteString(n.NodeName + "\n")
	}
	dumpChildren(b, n, depth+1)
}

func dumpAttributes(b *strings.Builder, attrs []Attribute, depth int) {
	if len(attrs) == 0 {
		return
	}
	lines := make([]string, 0, len(attrs))
	for _, a := range attrs {
		var prefix string
		switch a.Namespace {
		case XLink:
			prefix = "xlink "
		case XML:
			prefix = "xml "
		case XMLNS:
			prefix = "xmlns "
		}
		lines = append(lines, prefix+a.Name+`="`+a.Value+`"`)
	}
	sort.Strings(lines)
	for _, l := range lines {
		indent(b, depth)
		b.WriteString(l + "\n")
	}
}
