package parser

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrorKind identifies a parse error. Tokenizer kinds use the WHATWG error
// codes verbatim.
type ErrorKind string

const (
	abruptClosingOfEmptyComment                       ErrorKind = "abrupt-closing-of-empty-comment"
	abruptDoctypePublicIdentifier                     ErrorKind = "abrupt-doctype-public-identifier"
	abruptDoctypeSystemIdentifier                     ErrorKind = "abrupt-doctype-system-identifier"
	absenceOfDigitsInNumericCharacterReference        ErrorKind = "absence-of-digits-in-numeric-character-reference"
	cdataInHTMLContent                                ErrorKind = "cdata-in-html-content"
	characterReferenceOutsideUnicodeRange             ErrorKind = "character-reference-outside-unicode-range"
	controlCharacterInInputStream                     ErrorKind = "control-character-in-input-stream"
	controlCharacterReference                         ErrorKind = "control-character-reference"
	duplicateAttribute                                ErrorKind = "duplicate-attribute"
	endTagWithAttributes                              ErrorKind = "end-tag-with-attributes"
	endTagWithTrailingSolidus                         ErrorKind = "end-tag-with-trailing-solidus"
	eofBeforeTagName                                  ErrorKind = "eof-before-tag-name"
	eofInCdata                                        ErrorKind = "eof-in-cdata"
	eofInComment                                      ErrorKind = "eof-in-comment"
	eofInDoctype                                      ErrorKind = "eof-in-doctype"
	eofInScriptHTMLCommentLikeText                    ErrorKind = "eof-in-script-html-comment-like-text"
	eofInTag                                          ErrorKind = "eof-in-tag"
	incorrectlyClosedComment                          ErrorKind = "incorrectly-closed-comment"
	incorrectlyOpenedComment                          ErrorKind = "incorrectly-opened-comment"
	invalidCharacterSequenceAfterDoctypeName          ErrorKind = "invalid-character-sequence-after-doctype-name"
	invalidFirstCharacterOfTagName                    ErrorKind = "invalid-first-character-of-tag-name"
	missingAttributeValue                             ErrorKind = "missing-attribute-value"
	missingDoctypeName                                ErrorKind = "missing-doctype-name"
	missingDoctypePublicIdentifier                    ErrorKind = "missing-doctype-public-identifier"
	missingDoctypeSystemIdentifier                    ErrorKind = "missing-doctype-system-identifier"
	missingEndTagName                                 ErrorKind = "missing-end-tag-name"
	missingQuoteBeforeDoctypePublicIdentifier         ErrorKind = "missing-quote-before-doctype-public-identifier"
	missingQuoteBeforeDoctypeSystemIdentifier         ErrorKind = "missing-quote-before-doctype-system-identifier"
	missingSemicolonAfterCharacterReference           ErrorKind = "missing-semicolon-after-character-reference"
	missingWhitespaceAfterDoctypePublicKeyword        ErrorKind = "missing-whitespace-after-doctype-public-keyword"
	missingWhitespaceAfterDoctypeSystemKeyword        ErrorKind = "missing-whitespace-after-doctype-system-keyword"
	missingWhitespaceBeforeDoctypeName                ErrorKind = "missing-whitespace-before-doctype-name"
	missingWhitespaceBetweenAttributes                ErrorKind = "missing-whitespace-between-attributes"
	missingWhitespaceBetweenDoctypePublicAndSystemIDs ErrorKind = "missing-whitespace-between-doctype-public-and-system-identifiers"
	nestedComment                                     ErrorKind = "nested-comment"
	noncharacterCharacterReference                    ErrorKind = "noncharacter-character-reference"
	noncharacterInInputStream                         ErrorKind = "noncharacter-in-input-stream"
	nonVoidHTMLElementStartTagWithTrailingSolidus     ErrorKind = "non-void-html-element-start-tag-with-trailing-solidus"
	nullCharacterReference                            ErrorKind = "null-character-reference"
	surrogateCharacterReference                       ErrorKind = "surrogate-character-reference"
	surrogateInInputStream                            ErrorKind = "surrogate-in-input-stream"
	unexpectedCharacterAfterDoctypeSystemIdentifier   ErrorKind = "unexpected-character-after-doctype-system-identifier"
	unexpectedCharacterInAttributeName                ErrorKind = "unexpected-character-in-attribute-name"
	unexpectedCharacterInUnquotedAttributeValue       ErrorKind = "unexpected-character-in-unquoted-attribute-value"
	unexpectedEqualsSignBeforeAttributeName           ErrorKind = "unexpected-equals-sign-before-attribute-name"
	unexpectedNullCharacter                           ErrorKind = "unexpected-null-character"
	unexpectedQuestionMarkInsteadOfTagName            ErrorKind = "unexpected-question-mark-instead-of-tag-name"
	unexpectedSolidusInTag                            ErrorKind = "unexpected-solidus-in-tag"
	unknownNamedCharacterReference                    ErrorKind = "unknown-named-character-reference"

	// Tree construction.
	missingDoctype                   ErrorKind = "missing-doctype"
	nonConformingDoctype             ErrorKind = "non-conforming-doctype"
	doctypeInBeforeHTML              ErrorKind = "doctype-in-before-html"
	doctypeInBeforeHead              ErrorKind = "doctype-in-before-head"
	doctypeInHead                    ErrorKind = "doctype-in-head"
	doctypeInHeadNoScript            ErrorKind = "doctype-in-head-noscript"
	doctypeAfterHead                 ErrorKind = "doctype-after-head"
	doctypeInBody                    ErrorKind = "doctype-in-body"
	doctypeInTable                   ErrorKind = "doctype-in-table"
	doctypeInColumnGroup             ErrorKind = "doctype-in-column-group"
	doctypeInSelect                  ErrorKind = "doctype-in-select"
	doctypeAfterBody                 ErrorKind = "doctype-after-body"
	doctypeInFrameset                ErrorKind = "doctype-in-frameset"
	doctypeAfterFrameset             ErrorKind = "doctype-after-frameset"
	doctypeInForeignContent          ErrorKind = "doctype-in-foreign-content"
	headStartTagInHead               ErrorKind = "head-start-tag-in-head"
	headStartTagAfterHead            ErrorKind = "head-start-tag-after-head"
	headContentAfterHead             ErrorKind = "head-content-after-head"
	unexpectedStartTagInHeadNoScript ErrorKind = "unexpected-start-tag-in-head-noscript"
	templateEndTagWithoutTemplate    ErrorKind = "template-end-tag-without-open-template"
	templateNotCurrent               ErrorKind = "template-element-not-current"
	htmlStartTagInBody               ErrorKind = "html-start-tag-in-body"
	bodyStartTagInBody               ErrorKind = "body-start-tag-in-body"
	framesetStartTagInBody           ErrorKind = "frameset-start-tag-in-body"
	nestedForm                       ErrorKind = "nested-form"
	nestedFormattingElement          ErrorKind = "nested-formatting-element"
	imageStartTag                    ErrorKind = "image-start-tag"
	brEndTag                         ErrorKind = "br-end-tag"
	endTagClosesSpecialElement       ErrorKind = "end-tag-closes-special-element"
	elementNotInScope                ErrorKind = "element-not-in-scope"
	formattingElementNotOpen         ErrorKind = "formatting-element-not-open"
	formattingElementNotInScope      ErrorKind = "formatting-element-not-in-scope"
	formattingElementNotCurrent      ErrorKind = "formatting-element-not-current"
	characterInTable                 ErrorKind = "non-space-character-in-table"
	startTagInTable                  ErrorKind = "start-tag-in-table"
	endTagInTable                    ErrorKind = "end-tag-in-table"
	contentAfterBody                 ErrorKind = "content-after-body"
	htmlStartTagInForeignContent     ErrorKind = "html-start-tag-in-foreign-content"
	htmlEndTagInForeignContent       ErrorKind = "html-end-tag-in-foreign-content"
	foreignEndTagMismatch            ErrorKind = "foreign-end-tag-mismatch"
	unexpectedStartTag               ErrorKind = "unexpected-start-tag"
	unexpectedEndTag                 ErrorKind = "unexpected-end-tag"
	unexpectedCharacter              ErrorKind = "unexpected-character"
	misnestedTag                     ErrorKind = "misnested-tag"
	eofWithUnclosedElements          ErrorKind = "eof-with-unclosed-elements"
	eofInText                        ErrorKind = "eof-in-text"
	eofInTemplate                    ErrorKind = "eof-in-template"
	eofInFrameset                    ErrorKind = "eof-in-frameset"
)

// ParseError is one entry of the diagnostic log. Offset is the UTF-8 byte
// offset into the decoded, newline-normalized input.
type ParseError struct {
	Kind   ErrorKind
	Offset int64
}

func (e ParseError) String() string {
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

// diagnosticLog is append only. Nothing reads it back during a parse.
type diagnosticLog struct {
	entries []ParseError
	logger  *logrus.Logger
}

func (d *diagnosticLog) add(kind ErrorKind, offset int64) {
	d.entries = append(d.entries, ParseError{Kind: kind, Offset: offset})
	d.logger.WithFields(logrus.Fields{
		"kind":   kind,
		"offset": offset,
	}).Debug("parse error")
}

func (d *diagnosticLog) snapshot() []ParseError {
	out := make([]ParseError, len(d.entries))
	copy(out, d.entries)
	return out
}
