package parser

import (
	"github.com/heathj/htmlkit/parser/dom"
	"github.com/sirupsen/logrus"
)

type parserStateHandler func(r rune, eof bool) (reconsume bool, next tokenizerState)

// HTMLTokenizer holds state for the various state of the tokenizer.
type HTMLTokenizer struct {
	done                      bool
	returnState, currentState tokenizerState
	input                     *inputStream
	adjustedCurrentNode       *dom.Node
	emittedTokens             []Token
	tokenBuilder              *TokenBuilder
	lastEmittedStartTagName   string
	handlers                  [numTokenizerStates]parserStateHandler

	// suspended is set by a state that needs more lookahead than is
	// buffered. The rune is pushed back and the state runs again once
	// more input arrives.
	suspended bool
	// runeOffset is the byte offset of the rune being processed.
	runeOffset int64

	diagnostics *diagnosticLog
	log         *logrus.Logger
}

// NewHTMLTokenizer creates a tokenizer reading from input. Parse errors go
// to diagnostics.
func newHTMLTokenizer(input *inputStream, diagnostics *diagnosticLog, log *logrus.Logger) *HTMLTokenizer {
	p := &HTMLTokenizer{
		input:        input,
		tokenBuilder: newTokenBuilder(),
		diagnostics:  diagnostics,
		log:          log,
	}
	p.createHandlers()
	return p
}

func (p *HTMLTokenizer) createHandlers() {
	p.handlers = [numTokenizerStates]parserStateHandler{
		dataState:                                     p.dataStateParser,
		rcDataState:                                   p.rcDataStateParser,
		rawTextState:                                  p.rawTextStateParser,
		scriptDataState:                               p.scriptDataStateParser,
		plaintextState:                                p.plaintextStateParser,
		tagOpenState:                                  p.tagOpenStateParser,
		endTagOpenState:                               p.endTagOpenStateParser,
		tagNameState:                                  p.tagNameStateParser,
		rcDataLessThanSignState:                       p.rcDataLessThanSignStateParser,
		rcDataEndTagOpenState:                         p.rcDataEndTagOpenStateParser,
		rcDataEndTagNameState:                         p.rcDataEndTagNameStateParser,
		rawTextLessThanSignState:                      p.rawTextLessThanSignStateParser,
		rawTextEndTagOpenState:                        p.rawTextEndTagOpenStateParser,
		rawTextEndTagNameState:                        p.rawTextEndTagNameStateParser,
		scriptDataLessThanSignState:                   p.scriptDataLessThanSignStateParser,
		scriptDataEndTagOpenState:                     p.scriptDataEndTagOpenStateParser,
		scriptDataEndTagNameState:                     p.scriptDataEndTagNameStateParser,
		scriptDataEscapeStartState:                    p.scriptDataEscapeStartStateParser,
		scriptDataEscapeStartDashState:                p.scriptDataEscapeStartDashStateParser,
		scriptDataEscapedState:                        p.scriptDataEscapedStateParser,
		scriptDataEscapedDashState:                    p.scriptDataEscapedDashStateParser,
		scriptDataEscapedDashDashState:                p.scriptDataEscapedDashDashStateParser,
		scriptDataEscapedLessThanSignState:            p.scriptDataEscapedLessThanSignStateParser,
		scriptDataEscapedEndTagOpenState:              p.scriptDataEscapedEndTagOpenStateParser,
		scriptDataEscapedEndTagNameState:              p.scriptDataEscapedEndTagNameStateParser,
		scriptDataDoubleEscapeStartState:              p.scriptDataDoubleEscapeStartStateParser,
		scriptDataDoubleEscapedState:                  p.scriptDataDoubleEscapedStateParser,
		scriptDataDoubleEscapedDashState:              p.scriptDataDoubleEscapedDashStateParser,
		scriptDataDoubleEscapedDashDashState:          p.scriptDataDoubleEscapedDashDashStateParser,
		scriptDataDoubleEscapedLessThanSignState:      p.scriptDataDoubleEscapedLessThanSignStateParser,
		scriptDataDoubleEscapeEndState:                p.scriptDataDoubleEscapeEndStateParser,
		beforeAttributeNameState:                      p.beforeAttributeNameStateParser,
		attributeNameState:                            p.attributeNameStateParser,
		afterAttributeNameState:                       p.afterAttributeNameStateParser,
		beforeAttributeValueState:                     p.beforeAttributeValueStateParser,
		attributeValueDoubleQuotedState:               p.attributeValueDoubleQuotedStateParser,
		attributeValueSingleQuotedState:               p.attributeValueSingleQuotedStateParser,
		attributeValueUnquotedState:                   p.attributeValueUnquotedStateParser,
		afterAttributeValueQuotedState:                p.afterAttributeValueQuotedStateParser,
		selfClosingStartTagState:                      p.selfClosingStartTagStateParser,
		bogusCommentState:                             p.bogusCommentStateParser,
		markupDeclarationOpenState:                    p.markupDeclarationOpenStateParser,
		commentStartState:                             p.commentStartStateParser,
		commentStartDashState:                         p.commentStartDashStateParser,
		commentState:                                  p.commentStateParser,
		commentLessThanSignState:                      p.commentLessThanSignStateParser,
		commentLessThanSignBangState:                  p.commentLessThanSignBangStateParser,
		commentLessThanSignBangDashState:              p.commentLessThanSignBangDashStateParser,
		commentLessThanSignBangDashDashState:          p.commentLessThanSignBangDashDashStateParser,
		commentEndDashState:                           p.commentEndDashStateParser,
		commentEndState:                               p.commentEndStateParser,
		commentEndBangState:                           p.commentEndBangStateParser,
		doctypeState:                                  p.doctypeStateParser,
		beforeDoctypeNameState:                        p.beforeDoctypeNameStateParser,
		doctypeNameState:                              p.doctypeNameStateParser,
		afterDoctypeNameState:                         p.afterDoctypeNameStateParser,
		afterDoctypePublicKeywordState:                p.afterDoctypePublicKeywordStateParser,
		beforeDoctypePublicIdentifierState:            p.beforeDoctypePublicIdentifierStateParser,
		doctypePublicIdentifierDoubleQuotedState:      p.doctypePublicIdentifierDoubleQuotedStateParser,
		doctypePublicIdentifierSingleQuotedState:      p.doctypePublicIdentifierSingleQuotedStateParser,
		afterDoctypePublicIdentifierState:             p.afterDoctypePublicIdentifierStateParser,
		betweenDoctypePublicAndSystemIdentifiersState: p.betweenDoctypePublicAndSystemIdentifiersStateParser,
		afterDoctypeSystemKeywordState:                p.afterDoctypeSystemKeywordStateParser,
		beforeDoctypeSystemIdentifierState:            p.beforeDoctypeSystemIdentifierStateParser,
		doctypeSystemIdentifierDoubleQuotedState:      p.doctypeSystemIdentifierDoubleQuotedStateParser,
		doctypeSystemIdentifierSingleQuotedState:      p.doctypeSystemIdentifierSingleQuotedStateParser,
		afterDoctypeSystemIdentifierState:             p.afterDoctypeSystemIdentifierStateParser,
		bogusDoctypeState:                             p.bogusDoctypeStateParser,
		cdataSectionState:                             p.cdataSectionStateParser,
		cdataSectionBracketState:                      p.cdataSectionBracketStateParser,
		cdataSectionEndState:                          p.cdataSectionEndStateParser,
		characterReferenceState:                       p.characterReferenceStateParser,
		namedCharacterReferenceState:                  p.namedCharacterReferenceStateParser,
		ambiguousAmpersandState:                       p.ambiguousAmpersandStateParser,
		numericCharacterReferenceState:                p.numericCharacterReferenceStateParser,
		hexadecimalCharacterReferenceStartState:       p.hexadecimalCharacterReferenceStartStateParser,
		decimalCharacterReferenceStartState:           p.decimalCharacterReferenceStartStateParser,
		hexadecimalCharacterReferenceState:            p.hexadecimalCharacterReferenceStateParser,
		decimalCharacterReferenceState:                p.decimalCharacterReferenceStateParser,
		numericCharacterReferenceEndState:             p.numericCharacterReferenceEndStateParser,
	}
}

func (p *HTMLTokenizer) stateToParser(state tokenizerState) parserStateHandler {
	if state < numTokenizerStates {
		return p.handlers[state]
	}
	return nil
}

func isNonCharacter(code int) bool {
	if code >= 0xFDD0 && code <= 0xFDEF {
		return true
	}
	return code <= 0x10FFFF && code&0xFFFE == 0xFFFE
}

func isC0Control(code int) bool {
	return code >= 0x00 && code <= 0x1F
}

func isControl(code int) bool {
	return isC0Control(code) || (code >= 0x7F && code <= 0x9F)
}

func isASCIIWhitespace(code int) bool {
	switch code {
	case 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	default:
		return false
	}
}

func isSurrogate(code int) bool {
	return code >= 0xD800 && code <= 0xDFFF
}

func isASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isASCIILower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isASCIIAlpha(r rune) bool {
	return isASCIIUpper(r) || isASCIILower(r)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIAlphanumeric(r rune) bool {
	return isASCIIAlpha(r) || isASCIIDigit(r)
}

func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func wasConsumedByAttribute(returnState tokenizerState) bool {
	switch returnState {
	case attributeValueDoubleQuotedState, attributeValueSingleQuotedState, attributeValueUnquotedState:
		return true
	}
	return false
}

func (p *HTMLTokenizer) parseError(kind ErrorKind) {
	p.diagnostics.add(kind, p.runeOffset)
}

func (p *HTMLTokenizer) flushCodePointsAsCharacterReference() {
	if wasConsumedByAttribute(p.returnState) {
		for _, v := range p.tokenBuilder.TempBuffer() {
			p.tokenBuilder.WriteAttributeValue(v)
		}
		return
	}
	for _, v := range p.tokenBuilder.TempBuffer() {
		p.emitChar(v)
	}
}

func (p *HTMLTokenizer) emitTempBuffer() {
	for _, v := range p.tokenBuilder.TempBuffer() {
		p.emitChar(v)
	}
}

// isApprEndTagToken reports whether the end tag being built closes the
// element whose start tag was emitted last.
func (p *HTMLTokenizer) isApprEndTagToken() bool {
	return p.lastEmittedStartTagName != "" && p.lastEmittedStartTagName == p.tokenBuilder.name.String()
}

func (p *HTMLTokenizer) emitChar(r rune) {
	p.emit(p.tokenBuilder.CharacterToken(r, p.runeOffset))
}

func (p *HTMLTokenizer) emitEOF() {
	p.emit(p.tokenBuilder.EndOfFileToken(p.runeOffset))
}

// emitCurrentTag commits the pending attribute and emits the tag being
// built. It returns the data state for the caller to switch to.
func (p *HTMLTokenizer) emitCurrentTag() tokenizerState {
	p.tokenBuilder.CommitAttribute()
	p.emit(p.tokenBuilder.TagToken())
	return dataState
}

func (p *HTMLTokenizer) emit(tokens ...Token) {
	for _, token := range tokens {
		switch token.TokenType {
		case endTagToken:
			if len(token.Attributes) > 0 {
				p.parseError(endTagWithAttributes)
				token.Attributes = nil
			}
			if token.SelfClosing {
				p.parseError(endTagWithTrailingSolidus)
				token.SelfClosing = false
			}
		case startTagToken:
			p.lastEmittedStartTagName = token.TagName
		}
		if p.log.IsLevelEnabled(logrus.TraceLevel) {
			p.log.WithFields(logrus.Fields{
				"state": p.currentState,
				"token": &token,
			}).Trace("emit")
		}
		p.emittedTokens = append(p.emittedTokens, token)
	}
}

// suspend asks for more input. The calling state must not have changed
// anything yet.
func (p *HTMLTokenizer) suspend(state tokenizerState) (bool, tokenizerState) {
	p.suspended = true
	return false, state
}

func (p *HTMLTokenizer) dataStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '&':
		p.returnState = dataState
		return false, characterReferenceState
	case '<':
		return false, tagOpenState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.emitChar(r)
		return false, dataState
	default:
		p.emitChar(r)
		return false, dataState
	}
}

func (p *HTMLTokenizer) rcDataStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emitEOF()
		return false, rcDataState
	}
	switch r {
	case '&':
		p.returnState = rcDataState
		return false, characterReferenceState
	case '<':
		return false, rcDataLessThanSignState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, rcDataState
	default:
		p.emitChar(r)
		return false, rcDataState
	}
}

func (p *HTMLTokenizer) rawTextStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emitEOF()
		return false, rawTextState
	}
	switch r {
	case '<':
		return false, rawTextLessThanSignState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, rawTextState
	default:
		p.emitChar(r)
		return false, rawTextState
	}
}

func (p *HTMLTokenizer) scriptDataStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emitEOF()
		return false, scriptDataState
	}
	switch r {
	case '<':
		return false, scriptDataLessThanSignState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, scriptDataState
	default:
		p.emitChar(r)
		return false, scriptDataState
	}
}

func (p *HTMLTokenizer) plaintextStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emitEOF()
		return false, plaintextState
	}
	switch r {
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.emitChar('\uFFFD')
	default:
		p.emitChar(r)
	}
	return false, plaintextState
}

func (p *HTMLTokenizer) tagOpenStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(eofBeforeTagName)
		p.emitChar('<')
		p.emitEOF()
		return false, dataState
	}
	switch {
	case r == '!':
		return false, markupDeclarationOpenState
	case r == '/':
		return false, endTagOpenState
	case isASCIIAlpha(r):
		p.tokenBuilder.NewToken(startTag, p.runeOffset-1)
		return true, tagNameState
	case r == '?':
		p.parseError(unexpectedQuestionMarkInsteadOfTagName)
		p.tokenBuilder.Reset(p.runeOffset - 1)
		return true, bogusCommentState
	default:
		p.parseError(invalidFirstCharacterOfTagName)
		p.emitChar('<')
		return true, dataState
	}
}

func (p *HTMLTokenizer) endTagOpenStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(eofBeforeTagName)
		p.emitChar('<')
		p.emitChar('/')
		p.emitEOF()
		return false, dataState
	}
	switch {
	case isASCIIAlpha(r):
		p.tokenBuilder.NewToken(endTag, p.runeOffset-2)
		return true, tagNameState
	case r == '>':
		p.parseError(missingEndTagName)
		return false, dataState
	default:
		p.parseError(invalidFirstCharacterOfTagName)
		p.tokenBuilder.Reset(p.runeOffset - 2)
		return true, bogusCommentState
	}
}

func (p *HTMLTokenizer) tagNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(eofInTag)
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ': // tab, line feed, form feed, space
		return false, beforeAttributeNameState
	case '/':
		return false, selfClosingStartTagState
	case '>':
		return false, p.emitCurrentTag()
	case '\u0000': // null
		p.parseError(unexpectedNullCharacter)
		p.tokenBuilder.WriteName('\uFFFD')
		return false, tagNameState
	default:
		p.tokenBuilder.WriteName(toASCIILower(r))
		return false, tagNameState
	}
}

// The RCDATA, RAWTEXT and script data end tag states only differ in the
// state they fall back to, so they share these helpers.

func (p *HTMLTokenizer) lessThanSignInText(r rune, eof bool, text, endTagOpen tokenizerState) (bool, tokenizerState) {
	if !eof && r == '/' {
		p.tokenBuilder.ResetTempBuffer()
		return false, endTagOpen
	}
	p.emitChar('<')
	return true, text
}

func (p *HTMLTokenizer) endTagOpenInText(r rune, eof bool, text, endTagName tokenizerState) (bool, tokenizerState) {
	if !eof && isASCIIAlpha(r) {
		p.tokenBuilder.NewToken(endTag, p.runeOffset-2)
		return true, endTagName
	}
	p.emitChar('<')
	p.emitChar('/')
	return true, text
}

func (p *HTMLTokenizer) endTagNameInText(r rune, eof bool, text, self tokenizerState) (bool, tokenizerState) {
	if !eof {
		switch {
		case r == '\t' || r == '\n' || r == '\f' || r == ' ':
			if p.isApprEndTagToken() {
				return false, beforeAttributeNameState
			}
		case r == '/':
			if p.isApprEndTagToken() {
				return false, selfClosingStartTagState
			}
		case r == '>':
			if p.isApprEndTagToken() {
				return false, p.emitCurrentTag()
			}
		case isASCIIAlpha(r):
			p.tokenBuilder.WriteName(toASCIILower(r))
			p.tokenBuilder.WriteTempBuffer(r)
			return false, self
		}
	}
	p.emitChar('<')
	p.emitChar('/')
	p.emitTempBuffer()
	return true, text
}

func (p *HTMLTokenizer) rcDataLessThanSignStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.lessThanSignInText(r, eof, rcDataState, rcDataEndTagOpenState)
}

func (p *HTMLTokenizer) rcDataEndTagOpenStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.endTagOpenInText(r, eof, rcDataState, rcDataEndTagNameState)
}

func (p *HTMLTokenizer) rcDataEndTagNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.endTagNameInText(r, eof, rcDataState, rcDataEndTagNameState)
}

func (p *HTMLTokenizer) rawTextLessThanSignStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.lessThanSignInText(r, eof, rawTextState, rawTextEndTagOpenState)
}

func (p *HTMLTokenizer) rawTextEndTagOpenStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.endTagOpenInText(r, eof, rawTextState, rawTextEndTagNameState)
}

func (p *HTMLTokenizer) rawTextEndTagNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.endTagNameInText(r, eof, rawTextState, rawTextEndTagNameState)
}

func (p *HTMLTokenizer) scriptDataLessThanSignStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emitChar('<')
		return true, scriptDataState
	}
	switch r {
	case '/':
		p.tokenBuilder.ResetTempBuffer()
		return false, scriptDataEndTagOpenState
	case '!':
		p.emitChar('<')
		p.emitChar('!')
		return false, scriptDataEscapeStartState
	default:
		p.emitChar('<')
		return true, scriptDataState
	}
}

func (p *HTMLTokenizer) scriptDataEndTagOpenStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.endTagOpenInText(r, eof, scriptDataState, scriptDataEndTagNameState)
}

func (p *HTMLTokenizer) scriptDataEndTagNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.endTagNameInText(r, eof, scriptDataState, scriptDataEndTagNameState)
}

func (p *HTMLTokenizer) scriptDataEscapeStartStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		p.emitChar('-')
		return false, scriptDataEscapeStartDashState
	}
	return true, scriptDataState
}

func (p *HTMLTokenizer) scriptDataEscapeStartDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		p.emitChar('-')
		return false, scriptDataEscapedDashDashState
	}
	return true, scriptDataState
}

func (p *HTMLTokenizer) scriptDataEscapedStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(eofInScriptHTMLCommentLikeText)
		p.emitEOF()
		return false, scriptDataEscapedState
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataEscapedDashState
	case '<':
		return false, scriptDataEscapedLessThanSignState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, scriptDataEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataEscapedDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(eofInScriptHTMLCommentLikeText)
		p.emitEOF()
		return false, scriptDataEscapedDashState
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataEscapedDashDashState
	case '<':
		return false, scriptDataEscapedLessThanSignState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, scriptDataEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataEscapedDashDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(eofInScriptHTMLCommentLikeText)
		p.emitEOF()
		return false, scriptDataEscapedDashDashState
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataEscapedDashDashState
	case '<':
		return false, scriptDataEscapedLessThanSignState
	case '>':
		p.emitChar('>')
		return false, scriptDataState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, scriptDataEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataEscapedLessThanSignStateParser(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case !eof && r == '/':
		p.tokenBuilder.ResetTempBuffer()
		return false, scriptDataEscapedEndTagOpenState
	case !eof && isASCIIAlpha(r):
		p.tokenBuilder.ResetTempBuffer()
		p.emitChar('<')
		return true, scriptDataDoubleEscapeStartState
	default:
		p.emitChar('<')
		return true, scriptDataEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataEscapedEndTagOpenStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.endTagOpenInText(r, eof, scriptDataEscapedState, scriptDataEscapedEndTagNameState)
}

func (p *HTMLTokenizer) scriptDataEscapedEndTagNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.endTagNameInText(r, eof, scriptDataEscapedState, scriptDataEscapedEndTagNameState)
}

// doubleEscapeBoundary handles the double escape start and end states,
// which only differ in where they go when the temp buffer spells "script".
func (p *HTMLTokenizer) doubleEscapeBoundary(r rune, eof bool, onScript, otherwise, self tokenizerState) (bool, tokenizerState) {
	if !eof {
		switch {
		case r == '\t' || r == '\n' || r == '\f' || r == ' ' || r == '/' || r == '>':
			p.emitChar(r)
			if p.tokenBuilder.TempBuffer() == "script" {
				return false, onScript
			}
			return false, otherwise
		case isASCIIAlpha(r):
			p.tokenBuilder.WriteTempBuffer(toASCIILower(r))
			p.emitChar(r)
			return false, self
		}
	}
	return true, otherwise
}

func (p *HTMLTokenizer) scriptDataDoubleEscapeStartStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.doubleEscapeBoundary(r, eof, scriptDataDoubleEscapedState, scriptDataEscapedState, scriptDataDoubleEscapeStartState)
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(eofInScriptHTMLCommentLikeText)
		p.emitEOF()
		return false, scriptDataDoubleEscapedState
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataDoubleEscapedDashState
	case '<':
		p.emitChar('<')
		return false, scriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, scriptDataDoubleEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataDoubleEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(eofInScriptHTMLCommentLikeText)
		p.emitEOF()
		return false, scriptDataDoubleEscapedDashState
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataDoubleEscapedDashDashState
	case '<':
		p.emitChar('<')
		return false, scriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, scriptDataDoubleEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataDoubleEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedDashDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(eofInScriptHTMLCommentLikeText)
		p.emitEOF()
		return false, scriptDataDoubleEscapedDashDashState
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataDoubleEscapedDashDashState
	case '<':
		p.emitChar('<')
		return false, scriptDataDoubleEscapedLessThanSignState
	case '>':
		p.emitChar('>')
		return false, scriptDataState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, scriptDataDoubleEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataDoubleEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedLessThanSignStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '/' {
		p.tokenBuilder.ResetTempBuffer()
		p.emitChar('/')
		return false, scriptDataDoubleEscapeEndState
	}
	return true, scriptDataDoubleEscapedState
}

func (p *HTMLTokenizer) scriptDataDoubleEscapeEndStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.doubleEscapeBoundary(r, eof, scriptDataEscapedState, scriptDataDoubleEscapedState, scriptDataDoubleEscapeEndState)
}

// checkDuplicateAttribute runs when the attribute name state is left.
func (p *HTMLTokenizer) checkDuplicateAttribute() {
	if p.tokenBuilder.RemoveDuplicateAttributeName() {
		p.parseError(duplicateAttribute)
	}
}

func (p *HTMLTokenizer) beforeAttributeNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return true, afterAttributeNameState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ':
		return false, beforeAttributeNameState
	case '/', '>':
		return true, afterAttributeNameState
	case '=':
		p.parseError(unexpectedEqualsSignBeforeAttributeName)
		p.tokenBuilder.CommitAttribute()
		p.tokenBuilder.WriteAttributeName(r)
		return false, attributeNameState
	default:
		p.tokenBuilder.CommitAttribute()
		return true, attributeNameState
	}
}

func (p *HTMLTokenizer) attributeNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.checkDuplicateAttribute()
		return true, afterAttributeNameState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ', '/', '>':
		p.checkDuplicateAttribute()
		return true, afterAttributeNameState
	case '=':
		p.checkDuplicateAttribute()
		return false, beforeAttributeValueState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.tokenBuilder.WriteAttributeName('\uFFFD')
	case '"', '\'', '<':
		p.parseError(unexpectedCharacterInAttributeName)
		p.tokenBuilder.WriteAttributeName(r)
	default:
		p.tokenBuilder.WriteAttributeName(toASCIILower(r))
	}
	return false, attributeNameState
}

func (p *HTMLTokenizer) afterAttributeNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(eofInTag)
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ':
		return false, afterAttributeNameState
	case '/':
		return false, selfClosingStartTagState
	case '=':
		return false, beforeAttributeValueState
	case '>':
		return false, p.emitCurrentTag()
	default:
		p.tokenBuilder.CommitAttribute()
		return true, attributeNameState
	}
}

func (p *HTMLTokenizer) beforeAttributeValueStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return true, attributeValueUnquotedState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ':
		return false, beforeAttributeValueState
	case '"':
		return false, attributeValueDoubleQuotedState
	case '\'':
		return false, attributeValueSingleQuotedState
	case '>':
		p.parseError(missingAttributeValue)
		return false, p.emitCurrentTag()
	default:
		return true, attributeValueUnquotedState
	}
}

func (p *HTMLTokenizer) quotedAttributeValue(r rune, eof bool, quote rune, self tokenizerState) (bool, tokenizerState) {
	if eof {
		p.parseError(eofInTag)
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case quote:
		return false, afterAttributeValueQuotedState
	case '&':
		p.returnState = self
		return false, characterReferenceState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.tokenBuilder.WriteAttributeValue('\uFFFD')
	default:
		p.tokenBuilder.WriteAttributeValue(r)
	}
	return false, self
}

func (p *HTMLTokenizer) attributeValueDoubleQuotedStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.quotedAttributeValue(r, eof, '"', attributeValueDoubleQuotedState)
}

func (p *HTMLTokenizer) attributeValueSingleQuotedStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.quotedAttributeValue(r, eof, '\'', attributeValueSingleQuotedState)
}

func (p *HTMLTokenizer) attributeValueUnquotedStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(eofInTag)
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ':
		return false, beforeAttributeNameState
	case '&':
		p.returnState = attributeValueUnquotedState
		return false, characterReferenceState
	case '>':
		return false, p.emitCurrentTag()
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.tokenBuilder.WriteAttributeValue('\uFFFD')
	case '"', '\'', '<', '=', '`':
		p.parseError(unexpectedCharacterInUnquotedAttributeValue)
		p.tokenBuilder.WriteAttributeValue(r)
	default:
		p.tokenBuilder.WriteAttributeValue(r)
	}
	return false, attributeValueUnquotedState
}

func (p *HTMLTokenizer) afterAttributeValueQuotedStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(eofInTag)
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ':
		return false, beforeAttributeNameState
	case '/':
		return false, selfClosingStartTagState
	case '>':
		return false, p.emitCurrentTag()
	default:
		p.parseError(missingWhitespaceBetweenAttributes)
		return true, beforeAttributeNameState
	}
}

func (p *HTMLTokenizer) selfClosingStartTagStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(eofInTag)
		p.emitEOF()
		return false, dataState
	}
	if r == '>' {
		p.tokenBuilder.EnableSelfClosing()
		return false, p.emitCurrentTag()
	}
	p.parseError(unexpectedSolidusInTag)
	return true, beforeAttributeNameState
}

func (p *HTMLTokenizer) bogusCommentStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emit(p.tokenBuilder.CommentToken())
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '>':
		p.emit(p.tokenBuilder.CommentToken())
		return false, dataState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.tokenBuilder.WriteData('\uFFFD')
	default:
		p.tokenBuilder.WriteData(r)
	}
	return false, bogusCommentState
}

// markupDeclarationOpenStateParser receives the rune after "<!". Whatever
// it decides, it decides on complete lookahead: with too little input it
// suspends and runs again later.
func (p *HTMLTokenizer) markupDeclarationOpenStateParser(r rune, eof bool) (bool, tokenizerState) {
	start := p.runeOffset - 2
	if !eof {
		var (
			rest  string
			fold  bool
			found lookahead
		)
		switch r {
		case '-':
			rest = "-"
		case 'D', 'd':
			rest, fold = "OCTYPE", true
		case '[':
			rest = "CDATA["
		}
		if rest != "" {
			found = p.input.match(rest, fold)
		}
		switch {
		case found == lookaheadShort:
			return p.suspend(markupDeclarationOpenState)
		case found == lookaheadMatch:
			p.input.discard(len(rest))
			switch r {
			case '-':
				p.tokenBuilder.Reset(start)
				return false, commentStartState
			case '[':
				if p.adjustedCurrentNode != nil && p.adjustedCurrentNode.Namespace != dom.HTML {
					return false, cdataSectionState
				}
				p.parseError(cdataInHTMLContent)
				p.tokenBuilder.Reset(start)
				for _, c := range "[CDATA[" {
					p.tokenBuilder.WriteData(c)
				}
				return false, bogusCommentState
			default:
				p.tokenBuilder.Reset(start)
				return false, doctypeState
			}
		}
	}
	p.parseError(incorrectlyOpenedComment)
	p.tokenBuilder.Reset(start)
	return true, bogusCommentState
}

func (p *HTMLTokenizer) emitCommentAndEOF() (bool, tokenizerState) {
	p.parseError(eofInComment)
	p.emit(p.tokenBuilder.CommentToken())
	p.emitEOF()
	return false, dataState
}

func (p *HTMLTokenizer) commentStartStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return true, commentState
	}
	switch r {
	case '-':
		return false, commentStartDashState
	case '>':
		p.parseError(abruptClosingOfEmptyComment)
		p.emit(p.tokenBuilder.CommentToken())
		return false, dataState
	default:
		return true, commentState
	}
}

func (p *HTMLTokenizer) commentStartDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.emitCommentAndEOF()
	}
	switch r {
	case '-':
		return false, commentEndState
	case '>':
		p.parseError(abruptClosingOfEmptyComment)
		p.emit(p.tokenBuilder.CommentToken())
		return false, dataState
	default:
		p.tokenBuilder.WriteData('-')
		return true, commentState
	}
}

func (p *HTMLTokenizer) commentStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.emitCommentAndEOF()
	}
	switch r {
	case '<':
		p.tokenBuilder.WriteData(r)
		return false, commentLessThanSignState
	case '-':
		return false, commentEndDashState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.tokenBuilder.WriteData('\uFFFD')
	default:
		p.tokenBuilder.WriteData(r)
	}
	return false, commentState
}

func (p *HTMLTokenizer) commentLessThanSignStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch r {
		case '!':
			p.tokenBuilder.WriteData(r)
			return false, commentLessThanSignBangState
		case '<':
			p.tokenBuilder.WriteData(r)
			return false, commentLessThanSignState
		}
	}
	return true, commentState
}

func (p *HTMLTokenizer) commentLessThanSignBangStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		return false, commentLessThanSignBangDashState
	}
	return true, commentState
}

func (p *HTMLTokenizer) commentLessThanSignBangDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		return false, commentLessThanSignBangDashDashState
	}
	return true, commentEndDashState
}

func (p *HTMLTokenizer) commentLessThanSignBangDashDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r != '>' {
		p.parseError(nestedComment)
	}
	return true, commentEndState
}

func (p *HTMLTokenizer) commentEndDashStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.emitCommentAndEOF()
	}
	if r == '-' {
		return false, commentEndState
	}
	p.tokenBuilder.WriteData('-')
	return true, commentState
}

func (p *HTMLTokenizer) commentEndStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.emitCommentAndEOF()
	}
	switch r {
	case '>':
		p.emit(p.tokenBuilder.CommentToken())
		return false, dataState
	case '!':
		return false, commentEndBangState
	case '-':
		p.tokenBuilder.WriteData('-')
		return false, commentEndState
	default:
		p.tokenBuilder.WriteData('-')
		p.tokenBuilder.WriteData('-')
		return true, commentState
	}
}

func (p *HTMLTokenizer) commentEndBangStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.emitCommentAndEOF()
	}
	switch r {
	case '-':
		p.writeDataString("--!")
		return false, commentEndDashState
	case '>':
		p.parseError(incorrectlyClosedComment)
		p.emit(p.tokenBuilder.CommentToken())
		return false, dataState
	default:
		p.writeDataString("--!")
		return true, commentState
	}
}

func (p *HTMLTokenizer) writeDataString(s string) {
	for _, c := range s {
		p.tokenBuilder.WriteData(c)
	}
}

// emitDoctype emits the doctype being built, optionally forcing quirks
// first.
func (p *HTMLTokenizer) emitDoctype(forceQuirks bool) tokenizerState {
	if forceQuirks {
		p.tokenBuilder.EnableForceQuirks()
	}
	p.emit(p.tokenBuilder.DocTypeToken())
	return dataState
}

func (p *HTMLTokenizer) eofInDoctype() (bool, tokenizerState) {
	p.parseError(eofInDoctype)
	p.emitDoctype(true)
	p.emitEOF()
	return false, dataState
}

func (p *HTMLTokenizer) doctypeStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ':
		return false, beforeDoctypeNameState
	case '>':
		return true, beforeDoctypeNameState
	default:
		p.parseError(missingWhitespaceBeforeDoctypeName)
		return true, beforeDoctypeNameState
	}
}

func (p *HTMLTokenizer) beforeDoctypeNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ':
		return false, beforeDoctypeNameState
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.tokenBuilder.WriteName('\uFFFD')
		return false, doctypeNameState
	case '>':
		p.parseError(missingDoctypeName)
		return false, p.emitDoctype(true)
	default:
		p.tokenBuilder.WriteName(toASCIILower(r))
		return false, doctypeNameState
	}
}

func (p *HTMLTokenizer) doctypeNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ':
		return false, afterDoctypeNameState
	case '>':
		return false, p.emitDoctype(false)
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		p.tokenBuilder.WriteName('\uFFFD')
	default:
		p.tokenBuilder.WriteName(toASCIILower(r))
	}
	return false, doctypeNameState
}

func (p *HTMLTokenizer) afterDoctypeNameStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ':
		return false, afterDoctypeNameState
	case '>':
		return false, p.emitDoctype(false)
	}

	var (
		rest string
		next tokenizerState
	)
	switch r {
	case 'P', 'p':
		rest, next = "UBLIC", afterDoctypePublicKeywordState
	case 'S', 's':
		rest, next = "YSTEM", afterDoctypeSystemKeywordState
	}
	if rest != "" {
		switch p.input.match(rest, true) {
		case lookaheadShort:
			return p.suspend(afterDoctypeNameState)
		case lookaheadMatch:
			p.input.discard(len(rest))
			return false, next
		}
	}
	p.parseError(invalidCharacterSequenceAfterDoctypeName)
	p.tokenBuilder.EnableForceQuirks()
	return true, bogusDoctypeState
}

// doctypeKeyword covers the after PUBLIC / SYSTEM keyword states.
func (p *HTMLTokenizer) doctypeKeyword(r rune, eof bool, system bool) (bool, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	missingWhitespace, missingID, missingQuote := missingWhitespaceAfterDoctypePublicKeyword, missingDoctypePublicIdentifier, missingQuoteBeforeDoctypePublicIdentifier
	before, dq, sq := beforeDoctypePublicIdentifierState, doctypePublicIdentifierDoubleQuotedState, doctypePublicIdentifierSingleQuotedState
	if system {
		missingWhitespace, missingID, missingQuote = missingWhitespaceAfterDoctypeSystemKeyword, missingDoctypeSystemIdentifier, missingQuoteBeforeDoctypeSystemIdentifier
		before, dq, sq = beforeDoctypeSystemIdentifierState, doctypeSystemIdentifierDoubleQuotedState, doctypeSystemIdentifierSingleQuotedState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ':
		return false, before
	case '"', '\'':
		p.parseError(missingWhitespace)
		p.startDoctypeIdentifier(system)
		if r == '"' {
			return false, dq
		}
		return false, sq
	case '>':
		p.parseError(missingID)
		return false, p.emitDoctype(true)
	default:
		p.parseError(missingQuote)
		p.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

// beforeDoctypeIdentifier covers the before public / system identifier
// states.
func (p *HTMLTokenizer) beforeDoctypeIdentifier(r rune, eof bool, system bool) (bool, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	missingID, missingQuote := missingDoctypePublicIdentifier, missingQuoteBeforeDoctypePublicIdentifier
	self, dq, sq := beforeDoctypePublicIdentifierState, doctypePublicIdentifierDoubleQuotedState, doctypePublicIdentifierSingleQuotedState
	if system {
		missingID, missingQuote = missingDoctypeSystemIdentifier, missingQuoteBeforeDoctypeSystemIdentifier
		self, dq, sq = beforeDoctypeSystemIdentifierState, doctypeSystemIdentifierDoubleQuotedState, doctypeSystemIdentifierSingleQuotedState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ':
		return false, self
	case '"':
		p.startDoctypeIdentifier(system)
		return false, dq
	case '\'':
		p.startDoctypeIdentifier(system)
		return false, sq
	case '>':
		p.parseError(missingID)
		return false, p.emitDoctype(true)
	default:
		p.parseError(missingQuote)
		p.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *HTMLTokenizer) startDoctypeIdentifier(system bool) {
	if system {
		p.tokenBuilder.WriteSystemIdentifierEmpty()
		return
	}
	p.tokenBuilder.WritePublicIdentifierEmpty()
}

// quotedDoctypeIdentifier covers the four quoted identifier states.
func (p *HTMLTokenizer) quotedDoctypeIdentifier(r rune, eof bool, quote rune, system bool, self tokenizerState) (bool, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	write, after, abrupt := p.tokenBuilder.WritePublicIdentifier, afterDoctypePublicIdentifierState, abruptDoctypePublicIdentifier
	if system {
		write, after, abrupt = p.tokenBuilder.WriteSystemIdentifier, afterDoctypeSystemIdentifierState, abruptDoctypeSystemIdentifier
	}
	switch r {
	case quote:
		return false, after
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
		write('\uFFFD')
	case '>':
		p.parseError(abrupt)
		return false, p.emitDoctype(true)
	default:
		write(r)
	}
	return false, self
}

func (p *HTMLTokenizer) afterDoctypePublicKeywordStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.doctypeKeyword(r, eof, false)
}

func (p *HTMLTokenizer) beforeDoctypePublicIdentifierStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.beforeDoctypeIdentifier(r, eof, false)
}

func (p *HTMLTokenizer) doctypePublicIdentifierDoubleQuotedStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.quotedDoctypeIdentifier(r, eof, '"', false, doctypePublicIdentifierDoubleQuotedState)
}

func (p *HTMLTokenizer) doctypePublicIdentifierSingleQuotedStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.quotedDoctypeIdentifier(r, eof, '\'', false, doctypePublicIdentifierSingleQuotedState)
}

func (p *HTMLTokenizer) afterDoctypePublicIdentifierStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ':
		return false, betweenDoctypePublicAndSystemIdentifiersState
	case '>':
		return false, p.emitDoctype(false)
	case '"', '\'':
		p.parseError(missingWhitespaceBetweenDoctypePublicAndSystemIDs)
		p.startDoctypeIdentifier(true)
		if r == '"' {
			return false, doctypeSystemIdentifierDoubleQuotedState
		}
		return false, doctypeSystemIdentifierSingleQuotedState
	default:
		p.parseError(missingQuoteBeforeDoctypeSystemIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *HTMLTokenizer) betweenDoctypePublicAndSystemIdentifiersStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ':
		return false, betweenDoctypePublicAndSystemIdentifiersState
	case '>':
		return false, p.emitDoctype(false)
	case '"':
		p.startDoctypeIdentifier(true)
		return false, doctypeSystemIdentifierDoubleQuotedState
	case '\'':
		p.startDoctypeIdentifier(true)
		return false, doctypeSystemIdentifierSingleQuotedState
	default:
		p.parseError(missingQuoteBeforeDoctypeSystemIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *HTMLTokenizer) afterDoctypeSystemKeywordStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.doctypeKeyword(r, eof, true)
}

func (p *HTMLTokenizer) beforeDoctypeSystemIdentifierStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.beforeDoctypeIdentifier(r, eof, true)
}

func (p *HTMLTokenizer) doctypeSystemIdentifierDoubleQuotedStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.quotedDoctypeIdentifier(r, eof, '"', true, doctypeSystemIdentifierDoubleQuotedState)
}

func (p *HTMLTokenizer) doctypeSystemIdentifierSingleQuotedStateParser(r rune, eof bool) (bool, tokenizerState) {
	return p.quotedDoctypeIdentifier(r, eof, '\'', true, doctypeSystemIdentifierSingleQuotedState)
}

func (p *HTMLTokenizer) afterDoctypeSystemIdentifierStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', ' ':
		return false, afterDoctypeSystemIdentifierState
	case '>':
		return false, p.emitDoctype(false)
	default:
		p.parseError(unexpectedCharacterAfterDoctypeSystemIdentifier)
		return true, bogusDoctypeState
	}
}

func (p *HTMLTokenizer) bogusDoctypeStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emitDoctype(false)
		p.emitEOF()
		return false, dataState
	}
	switch r {
	case '>':
		return false, p.emitDoctype(false)
	case '\u0000':
		p.parseError(unexpectedNullCharacter)
	}
	return false, bogusDoctypeState
}

func (p *HTMLTokenizer) cdataSectionStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(eofInCdata)
		p.emitEOF()
		return false, dataState
	}
	if r == ']' {
		return false, cdataSectionBracketState
	}
	p.emitChar(r)
	return false, cdataSectionState
}

func (p *HTMLTokenizer) cdataSectionBracketStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == ']' {
		return false, cdataSectionEndState
	}
	p.emitChar(']')
	return true, cdataSectionState
}

func (p *HTMLTokenizer) cdataSectionEndStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch r {
		case ']':
			p.emitChar(']')
			return false, cdataSectionEndState
		case '>':
			return false, dataState
		}
	}
	p.emitChar(']')
	p.emitChar(']')
	return true, cdataSectionState
}

// checkInputRune reports the input stream errors for r.
func (p *HTMLTokenizer) checkInputRune(r rune) {
	code := int(r)
	switch {
	case isSurrogate(code):
		p.parseError(surrogateInInputStream)
	case isNonCharacter(code):
		p.parseError(noncharacterInInputStream)
	case code != 0 && isControl(code) && !isASCIIWhitespace(code):
		p.parseError(controlCharacterInInputStream)
	}
}

func (p *HTMLTokenizer) takeLastEmittedToken() *Token {
	if len(p.emittedTokens) > 0 {
		ret := p.emittedTokens[0]
		p.emittedTokens = p.emittedTokens[1:]
		if ret.TokenType == endOfFileToken {
			p.done = true
		}
		return &ret
	}
	return nil
}

// Next reports whether there can be more tokens. It turns false once the
// end of file token has been handed out.
func (p *HTMLTokenizer) Next() bool {
	return !p.done || len(p.emittedTokens) > 0
}

// Token returns the next token. progress carries what the tree constructor
// wants the tokenizer to know before it continues: the adjusted current
// node (for CDATA sections) and possibly a new tokenizer state. It returns
// errNeedInput when the buffered input runs out before the input has been
// ended.
func (p *HTMLTokenizer) Token(progress *Progress) (*Token, error) {
	if progress != nil {
		p.adjustedCurrentNode = progress.AdjustedCurrentNode
		if progress.TokenizerState != nil {
			p.currentState = *progress.TokenizerState
		}
	}

	// some states emit more than 1 token at a time and sometimes no tokens.
	// loop until at least 1 token is emitted and then take them.
	for {
		if token := p.takeLastEmittedToken(); token != nil {
			return token, nil
		}
		if p.done {
			return nil, errNeedInput
		}

		p.input.release()
		mark := p.input.mark()
		offset := p.input.byteOffset()
		r, ok := p.input.next()
		if !ok && !p.input.ended {
			return nil, errNeedInput
		}
		p.runeOffset = offset
		logged := len(p.diagnostics.entries)
		if ok {
			p.checkInputRune(r)
		}
		p.processRune(r, !ok)
		if p.suspended {
			p.suspended = false
			p.input.reset(mark)
			p.diagnostics.entries = p.diagnostics.entries[:logged]
			return nil, errNeedInput
		}
	}
}

func (p *HTMLTokenizer) processRune(r rune, eof bool) {
	reconsume := true
	for reconsume && !p.suspended {
		reconsume, p.currentState = p.stateToParser(p.currentState)(r, eof)
	}
}

//go:generate stringer -type=tokenizerState
type tokenizerState uint

const (
	dataState tokenizerState = iota
	rcDataState
	rawTextState
	scriptDataState
	plaintextState
	tagOpenState
	endTagOpenState
	tagNameState
	rcDataLessThanSignState
	rcDataEndTagOpenState
	rcDataEndTagNameState
	rawTextLessThanSignState
	rawTextEndTagOpenState
	rawTextEndTagNameState
	scriptDataLessThanSignState
	scriptDataEndTagOpenState
	scriptDataEndTagNameState
	scriptDataEscapeStartState
	scriptDataEscapeStartDashState
	scriptDataEscapedState
	scriptDataEscapedDashState
	scriptDataEscapedDashDashState
	scriptDataEscapedLessThanSignState
	scriptDataEscapedEndTagOpenState
	scriptDataEscapedEndTagNameState
	scriptDataDoubleEscapeStartState
	scriptDataDoubleEscapedState
	scriptDataDoubleEscapedDashState
	scriptDataDoubleEscapedDashDashState
	scriptDataDoubleEscapedLessThanSignState
	scriptDataDoubleEscapeEndState
	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	attributeValueUnquotedState
	afterAttributeValueQuotedState
	selfClosingStartTagState
	bogusCommentState
	markupDeclarationOpenState
	commentStartState
	commentStartDashState
	commentState
	commentLessThanSignState
	commentLessThanSignBangState
	commentLessThanSignBangDashState
	commentLessThanSignBangDashDashState
	commentEndDashState
	commentEndState
	commentEndBangState
	doctypeState
	beforeDoctypeNameState
	doctypeNameState
	afterDoctypeNameState
	afterDoctypePublicKeywordState
	beforeDoctypePublicIdentifierState
	doctypePublicIdentifierDoubleQuotedState
	doctypePublicIdentifierSingleQuotedState
	afterDoctypePublicIdentifierState
	betweenDoctypePublicAndSystemIdentifiersState
	afterDoctypeSystemKeywordState
	beforeDoctypeSystemIdentifierState
	doctypeSystemIdentifierDoubleQuotedState
	doctypeSystemIdentifierSingleQuotedState
	afterDoctypeSystemIdentifierState
	bogusDoctypeState
	cdataSectionState
	cdataSectionBracketState
	cdataSectionEndState
	characterReferenceState
	namedCharacterReferenceState
	ambiguousAmpersandState
	numericCharacterReferenceState
	hexadecimalCharacterReferenceStartState
	decimalCharacterReferenceStartState
	hexadecimalCharacterReferenceState
	decimalCharacterReferenceState
	numericCharacterReferenceEndState
	numTokenizerStates
)
