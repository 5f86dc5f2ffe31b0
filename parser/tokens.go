package parser

import (
	"fmt"
	"strings"

	"github.com/heathj/htmlkit/parser/dom"
)

//go:generate stringer -type=tokenType
type tokenType uint

const (
	characterToken tokenType = iota
	startTagToken
	endTagToken
	endOfFileToken
	commentToken
	docTypeToken
)

// Token is a concrete token that is ready to be emitted.
type Token struct {
	TokenType tokenType
	// Attributes are unique by name and keep source order.
	Attributes       []dom.Attribute
	TagName          string
	PublicIdentifier string
	SystemIdentifier string
	// HasPublicIdentifier and HasSystemIdentifier distinguish a missing
	// identifier from an empty one.
	HasPublicIdentifier bool
	HasSystemIdentifier bool
	ForceQuirks         bool
	SelfClosing         bool
	// Data is the comment text, or the single codepoint of a character token.
	Data string
	// Offset is where the tokenizer started building the token.
	Offset int64
}

// Attr returns the value of the named attribute.
func (t *Token) Attr(name string) (string, bool) {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (t *Token) String() string {
	switch t.TokenType {
	case characterToken:
		return fmt.Sprintf("Character(%q)", t.Data)
	case startTagToken:
		var b strings.Builder
		fmt.Fprintf(&b, "StartTag(%s", t.TagName)
		for _, a := range t.Attributes {
			fmt.Fprintf(&b, " %s=%q", a.Name, a.Value)
		}
		if t.SelfClosing {
			b.WriteString(" /")
		}
		b.WriteString(")")
		return b.String()
	case endTagToken:
		return fmt.Sprintf("EndTag(%s)", t.TagName)
	case commentToken:
		return fmt.Sprintf("Comment(%q)", t.Data)
	case docTypeToken:
		return fmt.Sprintf("DOCTYPE(%s %q %q quirks=%t)", t.TagName, t.PublicIdentifier, t.SystemIdentifier, t.ForceQuirks)
	}
	return "EOF"
}

// isWhitespace reports whether t is a character token holding one of the
// five HTML whitespace characters.
func (t *Token) isWhitespace() bool {
	if t.TokenType != characterToken {
		return false
	}
	switch t.Data {
	case "\u0009", "\u000A", "\u000C", "\u000D", " ":
		return true
	}
	return false
}

type tagType uint

const (
	startTag tagType = iota
	endTag
)

// TokenBuilder builds various tokens up during the tokenization
// phase.
type TokenBuilder struct {
	attributes             []dom.Attribute
	attributeKey           strings.Builder
	attributeValue         strings.Builder
	name                   strings.Builder
	data                   strings.Builder
	tempBuffer             strings.Builder
	publicID               strings.Builder
	systemID               strings.Builder
	hasPublicID            bool
	hasSystemID            bool
	selfClosing            bool
	forceQuirks            bool
	removeNextAttr         bool
	curTagType             tagType
	characterReferenceCode int
	start                  int64
}

func newTokenBuilder() *TokenBuilder {
	return &TokenBuilder{}
}

// NewToken clears all the builders and attributes. The temp buffer is left
// alone; the states that use it reset it themselves.
func (t *TokenBuilder) NewToken(tt tagType, start int64) {
	t.Reset(start)
	t.curTagType = tt
}

// Reset clears everything but the temp buffer and records where the next
// token starts.
func (t *TokenBuilder) Reset(start int64) {
	t.attributes = nil
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	t.publicID.Reset()
	t.systemID.Reset()
	t.hasPublicID = false
	t.hasSystemID = false
	t.data.Reset()
	t.name.Reset()
	t.selfClosing = false
	t.forceQuirks = false
	t.removeNextAttr = false
	t.start = start
}

// EnableSelfClosing changes to the self-closing flag to "set".
func (t *TokenBuilder) EnableSelfClosing() {
	t.selfClosing = true
}

// EnableForceQuirks changes to the force-quirks flag to "set".
func (t *TokenBuilder) EnableForceQuirks() {
	t.forceQuirks = true
}

// WritePublicIdentifierEmpty marks the public identifier as present but
// empty.
func (t *TokenBuilder) WritePublicIdentifierEmpty() {
	t.publicID.Reset()
	t.hasPublicID = true
}

// WriteSystemIdentifierEmpty marks the system identifier as present but
// empty.
func (t *TokenBuilder) WriteSystemIdentifierEmpty() {
	t.systemID.Reset()
	t.hasSystemID = true
}

// WritePublicIdentifier appends a rune to the public identifier buffer.
func (t *TokenBuilder) WritePublicIdentifier(r rune) {
	t.publicID.WriteRune(r)
}

// WriteSystemIdentifier appends a rune to the system identifier buffer.
func (t *TokenBuilder) WriteSystemIdentifier(r rune) {
	t.systemID.WriteRune(r)
}

// WriteAttributeName appends a character to the current
// attribute's name.
func (t *TokenBuilder) WriteAttributeName(r rune) {
	t.attributeKey.WriteRune(r)
}

// WriteData appends a character to the current data section.
func (t *TokenBuilder) WriteData(r rune) {
	t.data.WriteRune(r)
}

// WriteAttributeValue appends a character to the current
// attribute's value.
func (t *TokenBuilder) WriteAttributeValue(r rune) {
	t.attributeValue.WriteRune(r)
}

// RemoveDuplicateAttributeName checks if the current name is already
// in the list of commited attributes. If so, the attribute is dropped when
// it is committed.
func (t *TokenBuilder) RemoveDuplicateAttributeName() bool {
	k := t.attributeKey.String()
	for _, a := range t.attributes {
		if a.Name == k {
			t.removeNextAttr = true
			return true
		}
	}
	return false
}

// WriteName appends a character to the current name value.
func (t *TokenBuilder) WriteName(r rune) {
	t.name.WriteRune(r)
}

// CommitAttribute ends the creation of a key/value
// pair by copying the name and value fields into the
// attribute list and clearing the name and value fields.
func (t *TokenBuilder) CommitAttribute() {
	// only commit the attribute if it isn't a duplicate
	if !t.removeNextAttr {
		k := t.attributeKey.String()
		if k != "" {
			t.attributes = append(t.attributes, dom.Attribute{Name: k, Value: t.attributeValue.String()})
		}
	}
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	t.removeNextAttr = false
}

// WriteTempBuffer appends a character to the temporary buffer of the current
// state.
func (t *TokenBuilder) WriteTempBuffer(r rune) {
	t.tempBuffer.WriteRune(r)
}

// ResetTempBuffer clears the temporary buffer to be used by some other state.
func (t *TokenBuilder) ResetTempBuffer() {
	t.tempBuffer.Reset()
}

// TempBuffer just returns the string version of the current buffer conents.
func (t *TokenBuilder) TempBuffer() string {
	return t.tempBuffer.String()
}

// SetCharRef sets the character reference code.
func (t *TokenBuilder) SetCharRef(i int) {
	t.characterReferenceCode = i
}

// GetCharRef returns the character reference code.
func (t *TokenBuilder) GetCharRef() int {
	return t.characterReferenceCode
}

// AddToCharRef adds a number to the current char ref code. The code
// saturates just past the Unicode range so overflowing input still reports
// as out of range.
func (t *TokenBuilder) AddToCharRef(i int) {
	t.characterReferenceCode += i
	if t.characterReferenceCode > 0x110000 {
		t.characterReferenceCode = 0x110000
	}
}

// MultByCharRef multiplies the current char ref code by a number.
func (t *TokenBuilder) MultByCharRef(i int) {
	t.characterReferenceCode *= i
	if t.characterReferenceCode > 0x110000 {
		t.characterReferenceCode = 0x110000
	}
}

// StartTagToken creates a start tag token from the builder
// contents.
func (t *TokenBuilder) StartTagToken() Token {
	return Token{
		TokenType:   startTagToken,
		TagName:     t.name.String(),
		Attributes:  t.attributes,
		SelfClosing: t.selfClosing,
		Offset:      t.start,
	}
}

// EndTagToken creates an end tag token from the builder
// contents.
func (t *TokenBuilder) EndTagToken() Token {
	return Token{
		TokenType:   endTagToken,
		TagName:     t.name.String(),
		Attributes:  t.attributes,
		SelfClosing: t.selfClosing,
		Offset:      t.start,
	}
}

// TagToken creates whichever tag token is being built.
func (t *TokenBuilder) TagToken() Token {
	if t.curTagType == endTag {
		return t.EndTagToken()
	}
	return t.StartTagToken()
}

// CharacterToken creates a character token.
func (t *TokenBuilder) CharacterToken(r rune, offset int64) Token {
	return Token{
		TokenType: characterToken,
		Data:      string(r),
		Offset:    offset,
	}
}

// EndOfFileToken create an end of file token.
func (t *TokenBuilder) EndOfFileToken(offset int64) Token {
	return Token{
		TokenType: endOfFileToken,
		Offset:    offset,
	}
}

// CommentToken creates a comment token from the builder contents.
func (t *TokenBuilder) CommentToken() Token {
	return Token{
		TokenType: commentToken,
		Data:      t.data.String(),
		Offset:    t.start,
	}
}

// DocTypeToken creates a doc type token from the builder contents.
func (t *TokenBuilder) DocTypeToken() Token {
	return Token{
		TokenType:           docTypeToken,
		TagName:             t.name.String(),
		ForceQuirks:         t.forceQuirks,
		PublicIdentifier:    t.publicID.String(),
		SystemIdentifier:    t.systemID.String(),
		HasPublicIdentifier: t.hasPublicID,
		HasSystemIdentifier: t.hasSystemID,
		Offset:              t.start,
	}
}
