package parser

import (
	"github.com/heathj/htmlkit/parser/dom"
	"github.com/heathj/htmlkit/parser/tags"
	"github.com/pkg/errors"
)

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-html-fragments
func fragmentTokenizerState(context *dom.Node, scripting bool) tokenizerState {
	if context.Namespace != dom.HTML || !tags.Is(context.NodeName, tags.RawText) {
		return dataState
	}
	switch context.NodeName {
	case "title", "textarea":
		return rcDataState
	case "style", "xmp", "iframe", "noembed", "noframes":
		return rawTextState
	case "script":
		return scriptDataState
	case "noscript":
		if scripting {
			return rawTextState
		}
	case "plaintext":
		return plaintextState
	}
	return dataState
}

// ParseFragment parses input as the contents of context and returns the
// resulting nodes. context itself is not modified.
func ParseFragment(context *dom.Node, input []byte, cfg Config) ([]*dom.Node, []ParseError, error) {
	if context == nil || context.NodeType != dom.ElementNode {
		return nil, nil, ErrBadContext
	}

	p := NewParser(cfg)
	tc := p.TreeConstructor
	p.Tokenizer.currentState = fragmentTokenizerState(context, cfg.Scripting)

	root, err := tc.Document.CreateElement("html", dom.HTML, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "parser: creating fragment root")
	}
	tc.Document.AppendChild(root)
	tc.stackOfOpenElements.Push(root)
	if context.IsHTML("template") {
		tc.pushTemplateInsertionMode(inTemplate)
	}
	tc.fragmentContext = context
	tc.resetInsertionMode()
	for n := context; n != nil; n = n.ParentNode {
		if n.IsHTML("form") {
			tc.formElementPointer = n
			break
		}
	}
	p.progress = MakeProgress(tc.adjustedCurrentNode(), nil)

	if err := p.Begin(); err != nil {
		return nil, nil, err
	}
	if err := p.Feed(input); err != nil {
		return nil, p.Diagnostics(), err
	}
	if _, err := p.End(); err != nil {
		return nil, p.Diagnostics(), err
	}
	return root.ChildNodes(), p.Diagnostics(), nil
}
