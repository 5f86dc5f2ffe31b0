package dom

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

func TestTreeMutation(t *testing.T) {
	doc := NewDocument(0)
	a, err := doc.CreateElement("a", HTML, nil)
	require.NoError(t, err)
	b, err := doc.CreateElement("b", HTML, nil)
	require.NoError(t, err)
	c, err := doc.CreateElement("c", HTML, nil)
	require.NoError(t, err)

	doc.AppendChild(a)
	a.AppendChild(c)
	a.InsertBefore(b, c)
	assert.Equal(t, NodeList{b, c}, a.ChildNodes())
	assert.Same(t, a, b.ParentNode)
	assert.Same(t, c, b.NextSibling)
	assert.Same(t, b, c.PreviousSibling)

	// Moving a node detaches it from its old parent.
	doc.AppendChild(b)
	assert.Equal(t, NodeList{c}, a.ChildNodes())
	assert.Equal(t, NodeList{a, b}, doc.ChildNodes())

	a.RemoveChild(c)
	assert.False(t, a.HasChildNodes())
	assert.Nil(t, c.ParentNode)
	assert.Nil(t, a.FirstChild)
	assert.Nil(t, a.LastChild)
}

func TestMoveChildren(t *testing.T) {
	doc := NewDocument(0)
	src, _ := doc.CreateElement("div", HTML, nil)
	dst, _ := doc.CreateElement("span", HTML, nil)
	for _, s := range []string{"x", "y", "z"} {
		n, err := doc.CreateText(s)
		require.NoError(t, err)
		src.AppendChild(n)
	}
	src.MoveChildren(dst)
	assert.False(t, src.HasChildNodes())
	require.Len(t, dst.ChildNodes(), 3)
	assert.Equal(t, "z", dst.LastChild.Data())
}

func TestNodeLimit(t *testing.T) {
	doc := NewDocument(3)
	_, err := doc.CreateElement("html", HTML, nil)
	require.NoError(t, err)
	_, err = doc.CreateText("x")
	require.NoError(t, err)
	_, err = doc.CreateComment("y")
	require.Error(t, err)
	assert.Equal(t, ErrNodeLimit, errors.Cause(err))
	assert.Equal(t, 3, doc.NodeCount())
}

func TestArenaPointersStable(t *testing.T) {
	doc := NewDocument(0)
	first, err := doc.CreateText("first")
	require.NoError(t, err)
	for i := 0; i < blockSize*3; i++ {
		_, err := doc.CreateText("filler")
		require.NoError(t, err)
	}
	assert.Equal(t, "first", first.Data())
	assert.Equal(t, blockSize*3+2, doc.NodeCount())
}

func TestTemplateContent(t *testing.T) {
	doc := NewDocument(0)
	tmpl, err := doc.CreateElement("template", HTML, nil)
	require.NoError(t, err)
	require.NotNil(t, tmpl.Content)
	assert.Equal(t, DocumentFragmentNode, tmpl.Content.NodeType)
	assert.Equal(t, atom.Template, tmpl.DataAtom)

	svgTmpl, err := doc.CreateElement("template", SVG, nil)
	require.NoError(t, err)
	assert.Nil(t, svgTmpl.Content)
}

func TestDump(t *testing.T) {
	doc := NewDocument(0)
	dt, _ := doc.CreateDoctype("html", "", "")
	doc.AppendChild(dt)
	html, _ := doc.CreateElement("html", HTML, nil)
	doc.AppendChild(html)
	body, _ := doc.CreateElement("body", HTML, []Attribute{
		{Name: "id", Value: "x"},
		{Name: "class", Value: "y"},
	})
	html.AppendChild(body)
	svg, _ := doc.CreateElement("svg", SVG, []Attribute{
		{Namespace: XLink, Prefix: "xlink", Name: "href", Value: "#a"},
	})
	body.AppendChild(svg)
	tmpl, _ := doc.CreateElement("template", HTML, nil)
	body.AppendChild(tmpl)
	txt, _ := doc.CreateText("hi")
	tmpl.Content.AppendChild(txt)
	cmt, _ := doc.CreateComment("c")
	body.AppendChild(cmt)

	expected := `#document
| <!DOCTYPE html>
| <html>
|   <body>
|     class="y"
|     id="x"
|     <svg svg>
|       xlink href="#a"
|     <template>
|       content
|         "hi"
|     <!-- c -->`
	assert.Equal(t, expected, doc.String())
	assert.Equal(t, "| <svg svg>\n|   xlink href=\"#a\"", Dump([]*Node{svg}))
}

func TestNodeList(t *testing.T) {
	doc := NewDocument(0)
	var nodes []*Node
	for _, name := range []string{"a", "b", "c"} {
		n, _ := doc.CreateElement(name, HTML, nil)
		nodes = append(nodes, n)
	}
	var l NodeList
	l.Push(nodes[0])
	l.Push(nodes[2])
	l.Insert(1, nodes[1])
	assert.Equal(t, NodeList{nodes[0], nodes[1], nodes[2]}, l)
	assert.Equal(t, 1, l.Index(nodes[1]))
	assert.Same(t, nodes[2], l.Top())

	popped := l.PopUntil(func(n *Node) bool { return n.NodeName == "b" })
	assert.Same(t, nodes[1], popped)
	assert.Equal(t, NodeList{nodes[0]}, l)

	assert.Same(t, nodes[0], l.Remove(0))
	assert.Nil(t, l.Pop())
	assert.Nil(t, l.Top())
}
