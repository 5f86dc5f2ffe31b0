package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/heathj/htmlkit/parser/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenizer() *HTMLTokenizer {
	log := DefaultConfig().logger()
	return newHTMLTokenizer(&inputStream{}, &diagnosticLog{logger: log}, log)
}

// drain pulls tokens until the tokenizer asks for more input or hands out
// the end of file token.
func drain(t *testing.T, p *HTMLTokenizer, progress *Progress) []Token {
	var out []Token
	for p.Next() {
		tok, err := p.Token(progress)
		progress = nil
		if err == errNeedInput {
			break
		}
		require.NoError(t, err)
		out = append(out, *tok)
	}
	return out
}

func tokenizeString(t *testing.T, input string) ([]Token, []ParseError) {
	p := newTestTokenizer()
	p.input.append([]rune(input))
	p.input.end()
	return drain(t, p, nil), p.diagnostics.snapshot()
}

// describe renders tokens with runs of characters merged, which is how
// the html5lib tokenizer tests write them.
func describe(tokens []Token) []string {
	var (
		out  []string
		text strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			out = append(out, fmt.Sprintf("Character(%q)", text.String()))
			text.Reset()
		}
	}
	for i := range tokens {
		if tokens[i].TokenType == characterToken {
			text.WriteString(tokens[i].Data)
			continue
		}
		flush()
		out = append(out, tokens[i].String())
	}
	flush()
	return out
}

func kinds(errs []ParseError) []ErrorKind {
	out := make([]ErrorKind, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Kind)
	}
	return out
}

func TestStateParsers(t *testing.T) {
	var tests = []struct {
		state     tokenizerState
		r         rune
		reconsume bool
		next      tokenizerState
	}{
		{dataState, '&', false, characterReferenceState},
		{dataState, '<', false, tagOpenState},
		{dataState, 'a', false, dataState},
		{dataState, '\u0000', false, dataState},
		{rcDataState, '&', false, characterReferenceState},
		{rcDataState, '<', false, rcDataLessThanSignState},
		{rcDataState, 'a', false, rcDataState},
		{rawTextState, '<', false, rawTextLessThanSignState},
		{rawTextState, '&', false, rawTextState},
		{scriptDataState, '<', false, scriptDataLessThanSignState},
		{scriptDataState, 'a', false, scriptDataState},
		{plaintextState, '<', false, plaintextState},
		{tagOpenState, '!', false, markupDeclarationOpenState},
		{tagOpenState, '/', false, endTagOpenState},
		{tagOpenState, 'a', true, tagNameState},
		{tagOpenState, 'Z', true, tagNameState},
		{tagOpenState, '?', true, bogusCommentState},
		{tagOpenState, '1', true, dataState},
		{endTagOpenState, 'a', true, tagNameState},
		{endTagOpenState, '>', false, dataState},
		{endTagOpenState, '1', true, bogusCommentState},
		{tagNameState, ' ', false, beforeAttributeNameState},
		{tagNameState, '\t', false, beforeAttributeNameState},
		{tagNameState, '/', false, selfClosingStartTagState},
		{tagNameState, '>', false, dataState},
		{tagNameState, 'a', false, tagNameState},
		{beforeAttributeNameState, ' ', false, beforeAttributeNameState},
		{beforeAttributeNameState, '/', true, afterAttributeNameState},
		{beforeAttributeNameState, '>', true, afterAttributeNameState},
		{beforeAttributeNameState, '=', false, attributeNameState},
		{beforeAttributeNameState, 'a', true, attributeNameState},
		{attributeNameState, ' ', true, afterAttributeNameState},
		{attributeNameState, '=', false, beforeAttributeValueState},
		{attributeNameState, '"', false, attributeNameState},
		{attributeNameState, 'a', false, attributeNameState},
		{afterAttributeNameState, ' ', false, afterAttributeNameState},
		{afterAttributeNameState, '/', false, selfClosingStartTagState},
		{afterAttributeNameState, '=', false, beforeAttributeValueState},
		{afterAttributeNameState, '>', false, dataState},
		{afterAttributeNameState, 'a', true, attributeNameState},
		{beforeAttributeValueState, ' ', false, beforeAttributeValueState},
		{beforeAttributeValueState, '"', false, attributeValueDoubleQuotedState},
		{beforeAttributeValueState, '\'', false, attributeValueSingleQuotedState},
		{beforeAttributeValueState, '>', false, dataState},
		{beforeAttributeValueState, 'a', true, attributeValueUnquotedState},
		{attributeValueDoubleQuotedState, '"', false, afterAttributeValueQuotedState},
		{attributeValueDoubleQuotedState, '&', false, characterReferenceState},
		{attributeValueDoubleQuotedState, '\'', false, attributeValueDoubleQuotedState},
		{attributeValueSingleQuotedState, '\'', false, afterAttributeValueQuotedState},
		{attributeValueSingleQuotedState, '&', false, characterReferenceState},
		{attributeValueUnquotedState, ' ', false, beforeAttributeNameState},
		{attributeValueUnquotedState, '&', false, characterReferenceState},
		{attributeValueUnquotedState, '>', false, dataState},
		{attributeValueUnquotedState, '`', false, attributeValueUnquotedState},
		{afterAttributeValueQuotedState, ' ', false, beforeAttributeNameState},
		{afterAttributeValueQuotedState, '/', false, selfClosingStartTagState},
		{afterAttributeValueQuotedState, '>', false, dataState},
		{afterAttributeValueQuotedState, 'a', true, beforeAttributeNameState},
		{selfClosingStartTagState, '>', false, dataState},
		{selfClosingStartTagState, 'a', true, beforeAttributeNameState},
		{bogusCommentState, '>', false, dataState},
		{bogusCommentState, 'a', false, bogusCommentState},
		{commentStartState, '-', false, commentStartDashState},
		{commentStartState, '>', false, dataState},
		{commentStartState, 'a', true, commentState},
		{commentStartDashState, '-', false, commentEndState},
		{commentStartDashState, 'a', true, commentState},
		{commentState, '<', false, commentLessThanSignState},
		{commentState, '-', false, commentEndDashState},
		{commentState, 'a', false, commentState},
		{commentLessThanSignState, '!', false, commentLessThanSignBangState},
		{commentLessThanSignState, '<', false, commentLessThanSignState},
		{commentLessThanSignState, 'a', true, commentState},
		{commentLessThanSignBangState, '-', false, commentLessThanSignBangDashState},
		{commentLessThanSignBangDashState, '-', false, commentLessThanSignBangDashDashState},
		{commentLessThanSignBangDashState, 'a', true, commentEndDashState},
		{commentLessThanSignBangDashDashState, '>', true, commentEndState},
		{commentEndDashState, '-', false, commentEndState},
		{commentEndDashState, 'a', true, commentState},
		{commentEndState, '>', false, dataState},
		{commentEndState, '!', false, commentEndBangState},
		{commentEndState, '-', false, commentEndState},
		{commentEndState, 'a', true, commentState},
		{doctypeState, ' ', false, beforeDoctypeNameState},
		{doctypeState, '>', true, beforeDoctypeNameState},
		{doctypeState, 'h', true, beforeDoctypeNameState},
		{beforeDoctypeNameState, ' ', false, beforeDoctypeNameState},
		{beforeDoctypeNameState, '>', false, dataState},
		{beforeDoctypeNameState, 'H', false, doctypeNameState},
		{doctypeNameState, ' ', false, afterDoctypeNameState},
		{doctypeNameState, '>', false, dataState},
		{doctypeNameState, 'x', false, doctypeNameState},
		{afterDoctypeNameState, ' ', false, afterDoctypeNameState},
		{afterDoctypeNameState, '>', false, dataState},
		{afterDoctypeNameState, 'x', true, bogusDoctypeState},
		{bogusDoctypeState, '>', false, dataState},
		{bogusDoctypeState, 'x', false, bogusDoctypeState},
		{cdataSectionState, ']', false, cdataSectionBracketState},
		{cdataSectionState, 'x', false, cdataSectionState},
		{cdataSectionBracketState, ']', false, cdataSectionEndState},
		{cdataSectionBracketState, 'x', true, cdataSectionState},
		{cdataSectionEndState, ']', false, cdataSectionEndState},
		{cdataSectionEndState, '>', false, dataState},
		{cdataSectionEndState, 'x', true, cdataSectionState},
		{characterReferenceState, 'a', true, namedCharacterReferenceState},
		{characterReferenceState, '#', false, numericCharacterReferenceState},
		{numericCharacterReferenceState, 'x', false, hexadecimalCharacterReferenceStartState},
		{numericCharacterReferenceState, '1', true, decimalCharacterReferenceStartState},
		{hexadecimalCharacterReferenceStartState, 'f', true, hexadecimalCharacterReferenceState},
		{decimalCharacterReferenceStartState, '7', true, decimalCharacterReferenceState},
		{hexadecimalCharacterReferenceState, 'F', false, hexadecimalCharacterReferenceState},
		{hexadecimalCharacterReferenceState, 'x', true, numericCharacterReferenceEndState},
		{decimalCharacterReferenceState, '9', false, decimalCharacterReferenceState},
		{decimalCharacterReferenceState, 'a', true, numericCharacterReferenceEndState},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%s %q", tt.state, tt.r), func(t *testing.T) {
			t.Parallel()
			p := newTestTokenizer()
			reconsume, next := p.stateToParser(tt.state)(tt.r, false)
			assert.Equal(t, tt.reconsume, reconsume)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestStateParsersCoverEveryState(t *testing.T) {
	p := newTestTokenizer()
	for s := tokenizerState(0); s < numTokenizerStates; s++ {
		assert.NotNil(t, p.stateToParser(s), s.String())
	}
	assert.Nil(t, p.stateToParser(numTokenizerStates))
}

func TestParseStatefulness(t *testing.T) {
	var tests = []struct {
		name  string
		state tokenizerState
		in    string
		check func(*testing.T, *TokenBuilder)
	}{
		{"tag name lowercased", tagNameState, "DiV", func(t *testing.T, b *TokenBuilder) {
			assert.Equal(t, "div", b.name.String())
		}},
		{"null in tag name", tagNameState, "a\u0000", func(t *testing.T, b *TokenBuilder) {
			assert.Equal(t, "a\uFFFD", b.name.String())
		}},
		{"attribute name lowercased", attributeNameState, "HREF", func(t *testing.T, b *TokenBuilder) {
			assert.Equal(t, "href", b.attributeKey.String())
		}},
		{"double quoted value", attributeValueDoubleQuotedState, "A b'", func(t *testing.T, b *TokenBuilder) {
			assert.Equal(t, "A b'", b.attributeValue.String())
		}},
		{"unquoted value", attributeValueUnquotedState, "x=y", func(t *testing.T, b *TokenBuilder) {
			assert.Equal(t, "x=y", b.attributeValue.String())
		}},
		{"comment data", commentState, "hi <there", func(t *testing.T, b *TokenBuilder) {
			assert.Equal(t, "hi <there", b.data.String())
		}},
		{"bogus comment data", bogusCommentState, "?xml", func(t *testing.T, b *TokenBuilder) {
			assert.Equal(t, "?xml", b.data.String())
		}},
		{"doctype name", beforeDoctypeNameState, "HTML", func(t *testing.T, b *TokenBuilder) {
			assert.Equal(t, "html", b.name.String())
		}},
		{"missing doctype name forces quirks", beforeDoctypeNameState, ">", func(t *testing.T, b *TokenBuilder) {
			assert.True(t, b.forceQuirks)
		}},
		{"self closing", selfClosingStartTagState, ">", func(t *testing.T, b *TokenBuilder) {
			assert.True(t, b.selfClosing)
		}},
		{"hex reference", hexadecimalCharacterReferenceState, "1F600", func(t *testing.T, b *TokenBuilder) {
			assert.Equal(t, 0x1F600, b.GetCharRef())
		}},
		{"decimal reference saturates", decimalCharacterReferenceState, "99999999999", func(t *testing.T, b *TokenBuilder) {
			assert.Equal(t, 0x110000, b.GetCharRef())
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := newTestTokenizer()
			state := tt.state
			for _, r := range tt.in {
				reconsume := true
				for reconsume {
					reconsume, state = p.stateToParser(state)(r, false)
				}
			}
			tt.check(t, p.tokenBuilder)
		})
	}
}

func TestTokenize(t *testing.T) {
	var tests = []struct {
		in     string
		tokens []string
		errs   []ErrorKind
	}{
		{
			`<div class="a" id=b>hi</div>`,
			[]string{`StartTag(div class="a" id="b")`, `Character("hi")`, `EndTag(div)`, "EOF"},
			nil,
		},
		{`<BR/>`, []string{`StartTag(br /)`, "EOF"}, nil},
		{`<!-- c -->`, []string{`Comment(" c ")`, "EOF"}, nil},
		{`<!---->`, []string{`Comment("")`, "EOF"}, nil},
		{`<!-->`, []string{`Comment("")`, "EOF"}, []ErrorKind{abruptClosingOfEmptyComment}},
		{`<!-- a <!-- b -->`, []string{`Comment(" a <!-- b ")`, "EOF"}, []ErrorKind{nestedComment}},
		{`<!-- a`, []string{`Comment(" a")`, "EOF"}, []ErrorKind{eofInComment}},
		{`<!DOCTYPE html>`, []string{`DOCTYPE(html "" "" quirks=false)`, "EOF"}, nil},
		{`<!doctype>`, []string{`DOCTYPE( "" "" quirks=true)`, "EOF"}, []ErrorKind{missingDoctypeName}},
		{
			`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN">`,
			[]string{`DOCTYPE(html "-//W3C//DTD HTML 4.01//EN" "" quirks=false)`, "EOF"},
			nil,
		},
		{
			`<!DOCTYPE html SYSTEM 'about:legacy-compat'>`,
			[]string{`DOCTYPE(html "" "about:legacy-compat" quirks=false)`, "EOF"},
			nil,
		},
		{
			`<!DOCTYPE html bogus>`,
			[]string{`DOCTYPE(html "" "" quirks=true)`, "EOF"},
			[]ErrorKind{invalidCharacterSequenceAfterDoctypeName},
		},
		{`<a b=1 b=2>`, []string{`StartTag(a b="1")`, "EOF"}, []ErrorKind{duplicateAttribute}},
		{`</a b=1>`, []string{`EndTag(a)`, "EOF"}, []ErrorKind{endTagWithAttributes}},
		{`</a/>`, []string{`EndTag(a)`, "EOF"}, []ErrorKind{endTagWithTrailingSolidus}},
		{`</>`, []string{"EOF"}, []ErrorKind{missingEndTagName}},
		{`<?xml?>`, []string{`Comment("?xml?")`, "EOF"}, []ErrorKind{unexpectedQuestionMarkInsteadOfTagName}},
		{`<1`, []string{`Character("<1")`, "EOF"}, []ErrorKind{invalidFirstCharacterOfTagName}},
		{`a<`, []string{`Character("a<")`, "EOF"}, []ErrorKind{eofBeforeTagName}},
		{`a<b`, []string{`Character("a")`, "EOF"}, []ErrorKind{eofInTag}},
		{`<![CDATA[x]]>`, []string{`Comment("[CDATA[x]]")`, "EOF"}, []ErrorKind{cdataInHTMLContent}},
		{`<!x>`, []string{`Comment("x")`, "EOF"}, []ErrorKind{incorrectlyOpenedComment}},
		{"a\u0000b", []string{"Character(\"a\\x00b\")", "EOF"}, []ErrorKind{unexpectedNullCharacter}},
		{"<a x=\"\u0000\">", []string{"StartTag(a x=\"\uFFFD\")", "EOF"}, []ErrorKind{unexpectedNullCharacter}},
		{`<a x="1"y>`, []string{`StartTag(a x="1" y="")`, "EOF"}, []ErrorKind{missingWhitespaceBetweenAttributes}},
		{`<a x=>`, []string{`StartTag(a x="")`, "EOF"}, []ErrorKind{missingAttributeValue}},
		{`<a =x>`, []string{`StartTag(a =x="")`, "EOF"}, []ErrorKind{unexpectedEqualsSignBeforeAttributeName}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			tokens, errs := tokenizeString(t, tt.in)
			assert.Equal(t, tt.tokens, describe(tokens))
			assert.Equal(t, tt.errs, nilIfEmpty(kinds(errs)))
		})
	}
}

func nilIfEmpty(k []ErrorKind) []ErrorKind {
	if len(k) == 0 {
		return nil
	}
	return k
}

func TestCharacterReferences(t *testing.T) {
	var tests = []struct {
		in   string
		text string
		errs []ErrorKind
	}{
		{"&amp;&lt;&gt;", "&<>", nil},
		{"&amp", "&", []ErrorKind{missingSemicolonAfterCharacterReference}},
		{"&notit;", "¬it;", []ErrorKind{missingSemicolonAfterCharacterReference}},
		{"&notin;", "∉", nil},
		{"&xyz;", "&xyz;", []ErrorKind{unknownNamedCharacterReference}},
		{"& x", "& x", nil},
		{"&#65;&#x41;&#X61;", "AAa", nil},
		{"&#65", "A", []ErrorKind{missingSemicolonAfterCharacterReference}},
		{"&#;", "&#;", []ErrorKind{absenceOfDigitsInNumericCharacterReference}},
		{"&#x;", "&#x;", []ErrorKind{absenceOfDigitsInNumericCharacterReference}},
		{"&#0;", "\uFFFD", []ErrorKind{nullCharacterReference}},
		{"&#x110000;", "\uFFFD", []ErrorKind{characterReferenceOutsideUnicodeRange}},
		{"&#xD800;", "\uFFFD", []ErrorKind{surrogateCharacterReference}},
		{"&#x80;", "\u20AC", []ErrorKind{controlCharacterReference}},
		{"&#x81;", "\u0081", []ErrorKind{controlCharacterReference}},
		{"&#xFDD0;", "\uFDD0", []ErrorKind{noncharacterCharacterReference}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			tokens, errs := tokenizeString(t, tt.in)
			require.NotEmpty(t, tokens)
			assert.Equal(t, []string{fmt.Sprintf("Character(%q)", tt.text), "EOF"}, describe(tokens))
			assert.Equal(t, tt.errs, nilIfEmpty(kinds(errs)))
		})
	}
}

func TestCharacterReferencesInAttributes(t *testing.T) {
	var tests = []struct {
		in    string
		value string
	}{
		{`<a href="?a=1&amp;b=2">`, "?a=1&b=2"},
		{`<a href="?a=1&copy=2">`, "?a=1&copy=2"},
		{`<a href="?a=1&copyx">`, "?a=1&copyx"},
		{`<a href="&copy ">`, "© "},
		{`<a href=&lt;>`, "<"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			tokens, _ := tokenizeString(t, tt.in)
			require.Len(t, tokens, 2)
			v, ok := tokens[0].Attr("href")
			require.True(t, ok)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestTokenizerAttributeAccuracy(t *testing.T) {
	tokens, _ := tokenizeString(t, `<div z="3" a='1' m=2 flag>`)
	require.Len(t, tokens, 2)
	assert.Equal(t, []dom.Attribute{
		{Name: "z", Value: "3"},
		{Name: "a", Value: "1"},
		{Name: "m", Value: "2"},
		{Name: "flag", Value: ""},
	}, tokens[0].Attributes)
}

func TestDoctypeIdentifierPresence(t *testing.T) {
	var tests = []struct {
		in                   string
		hasPublic, hasSystem bool
	}{
		{`<!DOCTYPE html>`, false, false},
		{`<!DOCTYPE html PUBLIC "">`, true, false},
		{`<!DOCTYPE html PUBLIC "a" "b">`, true, true},
		{`<!DOCTYPE html SYSTEM "">`, false, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			tokens, _ := tokenizeString(t, tt.in)
			require.NotEmpty(t, tokens)
			require.Equal(t, docTypeToken, tokens[0].TokenType)
			assert.Equal(t, tt.hasPublic, tokens[0].HasPublicIdentifier)
			assert.Equal(t, tt.hasSystem, tokens[0].HasSystemIdentifier)
		})
	}
}

func TestTokenizerProgress(t *testing.T) {
	t.Run("tokenizer state", func(t *testing.T) {
		p := newTestTokenizer()
		p.input.append([]rune("<b>&amp;</b>"))
		p.input.end()
		state := rawTextState
		tokens := drain(t, p, MakeProgress(nil, &state))
		// No start tag was emitted, so the end tag is not appropriate.
		assert.Equal(t, []string{`Character("<b>&amp;</b>")`, "EOF"}, describe(tokens))
	})

	t.Run("cdata in foreign content", func(t *testing.T) {
		doc := dom.NewDocument(0)
		svg, err := doc.CreateElement("svg", dom.SVG, nil)
		require.NoError(t, err)
		p := newTestTokenizer()
		p.input.append([]rune("<![CDATA[a]]b]]>"))
		p.input.end()
		tokens := drain(t, p, MakeProgress(svg, nil))
		assert.Equal(t, []string{`Character("a]]b")`, "EOF"}, describe(tokens))
		assert.Empty(t, p.diagnostics.entries)
	})
}

func TestTokenizerSuspends(t *testing.T) {
	p := newTestTokenizer()
	p.input.append([]rune("x&am"))
	assert.Equal(t, []string{`Character("x")`}, describe(drain(t, p, nil)))
	assert.True(t, p.Next())

	p.input.append([]rune("p;<!DOC"))
	assert.Equal(t, []string{`Character("&")`}, describe(drain(t, p, nil)))

	p.input.append([]rune("TYPE html>"))
	p.input.end()
	assert.Equal(t, []string{`DOCTYPE(html "" "" quirks=false)`, "EOF"}, describe(drain(t, p, nil)))
	assert.False(t, p.Next())
	assert.Empty(t, p.diagnostics.entries)
}

func TestTokenizerChunkInvariance(t *testing.T) {
	inputs := []string{
		`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN"><p class="x">a &amp; b&notin; &#x41;</p>`,
		"<!-- c --><![CDATA[y]]><a href='&copy=1'>é&#0;</a>",
		"&notit; &xyz; <a b=1 b=2> </a x>",
	}

	for _, in := range inputs {
		in := in
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			wantTokens, wantErrs := tokenizeString(t, in)
			runes := []rune(in)
			for split := 1; split < len(runes); split++ {
				p := newTestTokenizer()
				p.input.append(runes[:split])
				got := drain(t, p, nil)
				p.input.append(runes[split:])
				p.input.end()
				got = append(got, drain(t, p, nil)...)
				assert.Equal(t, describe(wantTokens), describe(got), "split at %d", split)
				assert.Equal(t, wantErrs, p.diagnostics.snapshot(), "split at %d", split)
			}
		})
	}
}

func TestParseErrorOffsets(t *testing.T) {
	_, errs := tokenizeString(t, "abé</x y>")
	require.Len(t, errs, 1)
	assert.Equal(t, endTagWithAttributes, errs[0].Kind)
	// The end tag is reported at its closing '>': a, b, two bytes of é,
	// then "</x y".
	assert.Equal(t, int64(9), errs[0].Offset)
}
