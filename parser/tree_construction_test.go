package parser

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/heathj/htmlkit/parser/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type docFragmentTest struct {
	enabled   bool
	name      string
	namespace dom.Namespace
}

type scriptingMode uint

const (
	scriptBoth scriptingMode = iota
	scriptOff
	scriptOn
)

type treeTest struct {
	in         string
	docFrag    docFragmentTest
	scriptMode scriptingMode
	expected   string
}

func parseFragmentContext(line string) docFragmentTest {
	frag := docFragmentTest{enabled: true, name: line, namespace: dom.HTML}
	switch {
	case strings.HasPrefix(line, "svg "):
		frag.name, frag.namespace = strings.TrimPrefix(line, "svg "), dom.SVG
	case strings.HasPrefix(line, "math "):
		frag.name, frag.namespace = strings.TrimPrefix(line, "math "), dom.MathML
	}
	return frag
}

// parseTests reads a file in the html5lib tree construction format.
func parseTests(t *testing.T, path string) []treeTest {
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var treeTests []treeTest
	for i, test := range strings.Split(string(data), "#data\n") {
		if i == 0 {
			continue
		}
		tt := treeTest{}
		lines := strings.Split(test, "\n")
		var in []string
		j := 0
		for ; j < len(lines) && lines[j] != "#errors"; j++ {
			in = append(in, lines[j])
		}
		tt.in = strings.Join(in, "\n")

		var expected []string
		for ; j < len(lines); j++ {
			switch lines[j] {
			case "#document-fragment":
				j++
				tt.docFrag = parseFragmentContext(lines[j])
			case "#script-on":
				tt.scriptMode = scriptOn
			case "#script-off":
				tt.scriptMode = scriptOff
			case "#document":
				for j++; j < len(lines) && lines[j] != ""; j++ {
					expected = append(expected, lines[j])
				}
			}
		}
		tt.expected = strings.Join(expected, "\n")
		if !tt.docFrag.enabled {
			tt.expected = "#document\n" + tt.expected
		}
		treeTests = append(treeTests, tt)
	}
	return treeTests
}

func TestTreeConstructor(t *testing.T) {
	tests := parseTests(t, "testdata/tree_construction/basic.dat")
	require.NotEmpty(t, tests)
	for _, test := range tests {
		switch test.scriptMode {
		case scriptBoth:
			runTreeConstructorTest(t, test, false)
			runTreeConstructorTest(t, test, true)
		case scriptOn:
			runTreeConstructorTest(t, test, true)
		case scriptOff:
			runTreeConstructorTest(t, test, false)
		}
	}
}

func runTreeConstructorTest(t *testing.T, test treeTest, scripting bool) {
	name := test.in
	if scripting {
		name += " (scripting)"
	}
	t.Run(name, func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.Scripting = scripting

		if test.docFrag.enabled {
			context, err := dom.NewDocument(0).CreateElement(test.docFrag.name, test.docFrag.namespace, nil)
			require.NoError(t, err)
			nodes, _, err := ParseFragment(context, []byte(test.in), cfg)
			require.NoError(t, err)
			assert.Equal(t, test.expected, dom.Dump(nodes))
			return
		}

		doc, _, err := Parse(strings.NewReader(test.in), cfg)
		require.NoError(t, err)
		assert.Equal(t, test.expected, doc.String())

		// Feeding one byte at a time builds the same tree.
		p := NewParser(cfg)
		require.NoError(t, p.Begin())
		for i := 0; i < len(test.in); i++ {
			require.NoError(t, p.Feed([]byte{test.in[i]}))
		}
		doc, err = p.End()
		require.NoError(t, err)
		assert.Equal(t, test.expected, doc.String())
	})
}

func TestChunkInvariance(t *testing.T) {
	inputs := []string{
		"<div>hi</div>",
		"<!DOCTYPE html><title>é &amp; ü</title><p class=a>1<b>2<i>3</p>4</i>5</b>",
		"<table><tr><td>x</td></tr> y<!-- c --></table><svg><![CDATA[z]]></svg>",
		"<script>if (a<b) { document.write('<!--') }</script>&notin;&#x41;",
		"\ufeff<p a=\"\u00e9\">x<!-- \u20ac -->\U0001F600\u00e9",
	}

	for _, in := range inputs {
		in := in
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			want, wantErrs, err := Parse(strings.NewReader(in), DefaultConfig())
			require.NoError(t, err)

			for split := 1; split < len(in); split++ {
				p := NewParser(DefaultConfig())
				require.NoError(t, p.Begin())
				require.NoError(t, p.Feed([]byte(in[:split])))
				require.NoError(t, p.Feed([]byte(in[split:])))
				got, err := p.End()
				require.NoError(t, err)
				assert.Equal(t, want.String(), got.String(), "split at %d", split)
				assert.Equal(t, wantErrs, p.Diagnostics(), "split at %d", split)
			}
		})
	}
}

func TestMisnestedFormattingTerminates(t *testing.T) {
	var patterns = []string{
		"<a><b></a></b>",
		"<b><i></b></i>",
		"<p><b><i></p>",
		"<table><a><tr></a>",
	}

	for _, pattern := range patterns {
		pattern := pattern
		t.Run(pattern, func(t *testing.T) {
			t.Parallel()
			in := strings.Repeat(pattern, 500)
			done := make(chan error, 1)
			go func() {
				_, _, err := Parse(strings.NewReader(in), DefaultConfig())
				done <- err
			}()
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(30 * time.Second):
				t.Fatal("parse did not finish")
			}
		})
	}
}

func TestQuirksMode(t *testing.T) {
	var tests = []struct {
		in     string
		srcdoc bool
		mode   dom.QuirksMode
	}{
		{"<p>", false, dom.Quirks},
		{"<p>", true, dom.NoQuirks},
		{"<!DOCTYPE html>", false, dom.NoQuirks},
		{"<!DOCTYPE html SYSTEM 'about:legacy-compat'>", false, dom.NoQuirks},
		{"<!DOCTYPE svg>", false, dom.Quirks},
		{`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN">`, false, dom.Quirks},
		{`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd">`, false, dom.LimitedQuirks},
		{`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "">`, false, dom.LimitedQuirks},
		{`<!DOCTYPE html PUBLIC "-//W3O//DTD W3 HTML Strict 3.0//EN//">`, false, dom.Quirks},
		{`<!DOCTYPE html SYSTEM "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd">`, false, dom.Quirks},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			cfg.IframeSrcdoc = tt.srcdoc
			doc, _, err := Parse(strings.NewReader(tt.in), cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, doc.QuirksMode)
		})
	}
}

func TestDiagnostics(t *testing.T) {
	_, errs, err := Parse(strings.NewReader("<p>x</div>"), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, ParseError{Kind: missingDoctype, Offset: 0}, errs[0])
	assert.Equal(t, ParseError{Kind: elementNotInScope, Offset: 4}, errs[1])

	_, errs, err = Parse(strings.NewReader("<!DOCTYPE html><html><head></head><body></body></html>"), DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestTreeConstructionErrorKinds(t *testing.T) {
	var tests = []struct {
		in    string
		kinds []ErrorKind
	}{
		{"<body><!DOCTYPE html>", []ErrorKind{doctypeInBody}},
		{"<head></head><!DOCTYPE html>", []ErrorKind{doctypeAfterHead}},
		{"<head></head><head>", []ErrorKind{headStartTagAfterHead}},
		{"<svg><!DOCTYPE html>", []ErrorKind{doctypeInForeignContent, eofWithUnclosedElements}},
		{"<a><a>", []ErrorKind{nestedFormattingElement, eofWithUnclosedElements}},
		{"<p><b></p></b>", []ErrorKind{misnestedTag, formattingElementNotOpen}},
		{"<b><table></b>", []ErrorKind{endTagInTable, formattingElementNotInScope, eofWithUnclosedElements}},
		{"<body></body>x", []ErrorKind{contentAfterBody}},
		{"<title>x", []ErrorKind{eofInText}},
		{"<image>", []ErrorKind{imageStartTag}},
		{"</br>", []ErrorKind{brEndTag}},
		{"<p>x</div>", []ErrorKind{elementNotInScope}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			_, errs, err := Parse(strings.NewReader("<!DOCTYPE html>"+tt.in), DefaultConfig())
			require.NoError(t, err)
			kinds := make([]ErrorKind, 0, len(errs))
			for _, e := range errs {
				kinds = append(kinds, e.Kind)
			}
			assert.Equal(t, tt.kinds, kinds)
		})
	}
}

func TestNodeLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxNodes = 8
	doc, _, err := Parse(strings.NewReader(strings.Repeat("<div>", 100)), cfg)
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.True(t, IsResourceError(err))
	assert.False(t, IsMisuse(err))

	cfg.MaxNodes = 0
	doc, _, err = Parse(strings.NewReader(strings.Repeat("<div>", 100)), cfg)
	require.NoError(t, err)
	// document, html, head, body and the divs
	assert.Equal(t, 104, doc.NodeCount())
}

func TestParserMisuse(t *testing.T) {
	p := NewParser(DefaultConfig())
	assert.Equal(t, ErrNotStarted, p.Feed([]byte("x")))
	_, err := p.End()
	assert.Equal(t, ErrNotStarted, err)

	require.NoError(t, p.Begin())
	assert.Equal(t, ErrAlreadyStarted, p.Begin())
	require.NoError(t, p.Feed([]byte("<p>")))
	_, err = p.End()
	require.NoError(t, err)

	assert.Equal(t, ErrFeedAfterEnd, p.Feed([]byte("x")))
	_, err = p.End()
	assert.Equal(t, ErrAlreadyEnded, err)
	assert.True(t, IsMisuse(err))

	cfg := DefaultConfig()
	cfg.Encoding = "no-such-encoding"
	err = NewParser(cfg).Begin()
	require.Error(t, err)
	assert.True(t, IsMisuse(err))

	_, _, err = ParseFragment(nil, nil, DefaultConfig())
	assert.Equal(t, ErrBadContext, err)
	text, err := dom.NewDocument(0).CreateText("x")
	require.NoError(t, err)
	_, _, err = ParseFragment(text, nil, DefaultConfig())
	assert.Equal(t, ErrBadContext, err)
}

func TestParseEncodings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Encoding = "windows-1252"
	doc, _, err := Parse(bytes.NewReader([]byte("<p>caf\xe9</p>")), cfg)
	require.NoError(t, err)
	assert.Contains(t, doc.String(), `"café"`)

	// A byte order mark wins over the label.
	cfg.Encoding = "windows-1252"
	doc, _, err = Parse(bytes.NewReader([]byte("\xef\xbb\xbf<p>é</p>")), cfg)
	require.NoError(t, err)
	assert.Contains(t, doc.String(), `"é"`)

	// The first read ends in the middle of the é.
	in := "\xef\xbb\xbf<p>" + strings.Repeat("a", readChunkSize-7) + "\u00e9"
	doc, _, err = Parse(strings.NewReader(in), DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, doc.String(), "a\u00e9\"")
	assert.NotContains(t, doc.String(), "\uFFFD")
}

func TestFragmentFormPointer(t *testing.T) {
	ctxDoc := dom.NewDocument(0)
	form, err := ctxDoc.CreateElement("form", dom.HTML, nil)
	require.NoError(t, err)
	div, err := ctxDoc.CreateElement("div", dom.HTML, nil)
	require.NoError(t, err)
	form.AppendChild(div)

	// A nested form is ignored because the context sits inside one.
	nodes, _, err := ParseFragment(div, []byte("<form><input></form>"), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "| <input>", dom.Dump(nodes))
	assert.False(t, div.HasChildNodes())
}
