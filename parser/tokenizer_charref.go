package parser

import "github.com/heathj/htmlkit/parser/charref"

// c1Replacements maps numeric references in the C1 range to the characters
// windows-1252 puts there.
var c1Replacements = map[int]rune{
	0x80: '€', 0x82: '‚', 0x83: 'ƒ', 0x84: '„',
	0x85: '…', 0x86: '†', 0x87: '‡', 0x88: 'ˆ',
	0x89: '‰', 0x8A: 'Š', 0x8B: '‹', 0x8C: 'Œ',
	0x8E: 'Ž', 0x91: '‘', 0x92: '’', 0x93: '“',
	0x94: '”', 0x95: '•', 0x96: '–', 0x97: '—',
	0x98: '˜', 0x99: '™', 0x9A: 'š', 0x9B: '›',
	0x9C: 'œ', 0x9E: 'ž', 0x9F: 'Ÿ',
}

func (p *HTMLTokenizer) characterReferenceStateParser(r rune, eof bool) (bool, tokenizerState) {
	p.tokenBuilder.ResetTempBuffer()
	p.tokenBuilder.WriteTempBuffer('&')
	switch {
	case !eof && isASCIIAlphanumeric(r):
		return true, namedCharacterReferenceState
	case !eof && r == '#':
		p.tokenBuilder.WriteTempBuffer(r)
		return false, numericCharacterReferenceState
	default:
		p.flushCodePointsAsCharacterReference()
		return true, p.returnState
	}
}

// namedCharacterReferenceStateParser receives the first alphanumeric after
// the ampersand. It looks ahead until the candidate can no longer be the
// start of an entity name, suspending if the input runs out first, and
// then consumes the longest name that matched.
func (p *HTMLTokenizer) namedCharacterReferenceStateParser(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.flushCodePointsAsCharacterReference()
		return true, p.returnState
	}

	candidate := []rune{r}
	for candidate[len(candidate)-1] != ';' &&
		len(candidate) < charref.MaxNameLength &&
		charref.HasPrefix(string(candidate)) {
		more := p.input.peek(len(candidate))
		if len(more) < len(candidate) {
			if !p.input.ended {
				return p.suspend(namedCharacterReferenceState)
			}
			break
		}
		candidate = append(candidate[:1], more...)
	}

	name, value, ok := charref.LongestMatch(string(candidate))
	if !ok {
		p.flushCodePointsAsCharacterReference()
		return true, ambiguousAmpersandState
	}

	matched := []rune(name)
	p.input.discard(len(matched) - 1)
	terminated := matched[len(matched)-1] == ';'

	if !terminated && wasConsumedByAttribute(p.returnState) && len(candidate) > len(matched) {
		if next := candidate[len(matched)]; next == '=' || isASCIIAlphanumeric(next) {
			for _, c := range matched {
				p.tokenBuilder.WriteTempBuffer(c)
			}
			p.flushCodePointsAsCharacterReference()
			return false, p.returnState
		}
	}

	if !terminated {
		p.parseError(missingSemicolonAfterCharacterReference)
	}
	p.tokenBuilder.ResetTempBuffer()
	for _, c := range value {
		p.tokenBuilder.WriteTempBuffer(c)
	}
	p.flushCodePointsAsCharacterReference()
	return false, p.returnState
}

func (p *HTMLTokenizer) ambiguousAmpersandStateParser(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case !eof && isASCIIAlphanumeric(r):
		if wasConsumedByAttribute(p.returnState) {
			p.tokenBuilder.WriteAttributeValue(r)
		} else {
			p.emitChar(r)
		}
		return false, ambiguousAmpersandState
	case !eof && r == ';':
		p.parseError(unknownNamedCharacterReference)
		return true, p.returnState
	default:
		return true, p.returnState
	}
}

func (p *HTMLTokenizer) numericCharacterReferenceStateParser(r rune, eof bool) (bool, tokenizerState) {
	p.tokenBuilder.SetCharRef(0)
	if !eof && (r == 'x' || r == 'X') {
		p.tokenBuilder.WriteTempBuffer(r)
		return false, hexadecimalCharacterReferenceStartState
	}
	return true, decimalCharacterReferenceStartState
}

func (p *HTMLTokenizer) hexadecimalCharacterReferenceStartStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIHexDigit(r) {
		return true, hexadecimalCharacterReferenceState
	}
	p.parseError(absenceOfDigitsInNumericCharacterReference)
	p.flushCodePointsAsCharacterReference()
	return true, p.returnState
}

func (p *HTMLTokenizer) decimalCharacterReferenceStartStateParser(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIDigit(r) {
		return true, decimalCharacterReferenceState
	}
	p.parseError(absenceOfDigitsInNumericCharacterReference)
	p.flushCodePointsAsCharacterReference()
	return true, p.returnState
}

func (p *HTMLTokenizer) hexadecimalCharacterReferenceStateParser(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case !eof && isASCIIDigit(r):
		p.tokenBuilder.MultByCharRef(16)
		p.tokenBuilder.AddToCharRef(int(r - '0'))
		return false, hexadecimalCharacterReferenceState
	case !eof && r >= 'a' && r <= 'f':
		p.tokenBuilder.MultByCharRef(16)
		p.tokenBuilder.AddToCharRef(int(r-'a') + 10)
		return false, hexadecimalCharacterReferenceState
	case !eof && r >= 'A' && r <= 'F':
		p.tokenBuilder.MultByCharRef(16)
		p.tokenBuilder.AddToCharRef(int(r-'A') + 10)
		return false, hexadecimalCharacterReferenceState
	case !eof && r == ';':
		p.finishNumericCharacterReference()
		return false, p.returnState
	default:
		p.parseError(missingSemicolonAfterCharacterReference)
		return true, numericCharacterReferenceEndState
	}
}

func (p *HTMLTokenizer) decimalCharacterReferenceStateParser(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case !eof && isASCIIDigit(r):
		p.tokenBuilder.MultByCharRef(10)
		p.tokenBuilder.AddToCharRef(int(r - '0'))
		return false, decimalCharacterReferenceState
	case !eof && r == ';':
		p.finishNumericCharacterReference()
		return false, p.returnState
	default:
		p.parseError(missingSemicolonAfterCharacterReference)
		return true, numericCharacterReferenceEndState
	}
}

// numericCharacterReferenceEndStateParser consumes nothing: it settles the
// reference and hands the rune back to the return state.
func (p *HTMLTokenizer) numericCharacterReferenceEndStateParser(r rune, eof bool) (bool, tokenizerState) {
	p.finishNumericCharacterReference()
	return true, p.returnState
}

func (p *HTMLTokenizer) finishNumericCharacterReference() {
	code := p.tokenBuilder.GetCharRef()
	switch {
	case code == 0:
		p.parseError(nullCharacterReference)
		code = 0xFFFD
	case code > 0x10FFFF:
		p.parseError(characterReferenceOutsideUnicodeRange)
		code = 0xFFFD
	case isSurrogate(code):
		p.parseError(surrogateCharacterReference)
		code = 0xFFFD
	case isNonCharacter(code):
		p.parseError(noncharacterCharacterReference)
	case code == 0x0D || (isControl(code) && !isASCIIWhitespace(code)):
		p.parseError(controlCharacterReference)
		if replacement, ok := c1Replacements[code]; ok {
			code = int(replacement)
		}
	}
	p.tokenBuilder.ResetTempBuffer()
	p.tokenBuilder.WriteTempBuffer(rune(code))
	p.flushCodePointsAsCharacterReference()
}
