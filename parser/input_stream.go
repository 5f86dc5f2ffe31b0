package parser

import "unicode/utf8"

// inputStream is the codepoint source the tokenizer reads from. Decoded
// input is appended as segments; segments already appended are never copied
// or rewritten. CR and CRLF are folded into LF as segments arrive, and a CR
// at the very end is held back until the next rune (or the end of input)
// shows whether it starts a CRLF pair.
type inputStream struct {
	segments  [][]rune
	seg, off  int
	pos       int64
	offset    int64
	pendingCR bool
	ended     bool
}

// streamMark is a saved read position.
type streamMark struct {
	seg, off    int
	pos, offset int64
}

func (s *inputStream) append(runes []rune) {
	if len(runes) == 0 {
		return
	}
	out := make([]rune, 0, len(runes)+1)
	i := 0
	if s.pendingCR {
		s.pendingCR = false
		out = append(out, '\n')
		if runes[0] == '\n' {
			i = 1
		}
	}
	for ; i < len(runes); i++ {
		r := runes[i]
		if r != '\r' {
			out = append(out, r)
			continue
		}
		if i+1 == len(runes) {
			s.pendingCR = true
			break
		}
		out = append(out, '\n')
		if runes[i+1] == '\n' {
			i++
		}
	}
	if len(out) > 0 {
		s.segments = append(s.segments, out)
	}
}

// end marks the input as complete. Reads past the last rune now report EOF
// instead of asking for more input.
func (s *inputStream) end() {
	if s.pendingCR {
		s.pendingCR = false
		s.segments = append(s.segments, []rune{'\n'})
	}
	s.ended = true
}

// next consumes one rune. ok is false when no rune is buffered.
func (s *inputStream) next() (r rune, ok bool) {
	for s.seg < len(s.segments) {
		seg := s.segments[s.seg]
		if s.off < len(seg) {
			r = seg[s.off]
			s.off++
			s.pos++
			s.offset += int64(runeLen(r))
			return r, true
		}
		s.seg++
		s.off = 0
	}
	return 0, false
}

// peek returns up to n buffered runes past the read position without
// consuming them. The result is a fresh contiguous copy.
func (s *inputStream) peek(n int) []rune {
	out := make([]rune, 0, n)
	seg, off := s.seg, s.off
	for len(out) < n && seg < len(s.segments) {
		cur := s.segments[seg]
		if off >= len(cur) {
			seg++
			off = 0
			continue
		}
		take := len(cur) - off
		if rest := n - len(out); take > rest {
			take = rest
		}
		out = append(out, cur[off:off+take]...)
		off += take
	}
	return out
}

// discard consumes n runes.
func (s *inputStream) discard(n int) {
	for i := 0; i < n; i++ {
		if _, ok := s.next(); !ok {
			return
		}
	}
}

type lookahead uint8

const (
	lookaheadMismatch lookahead = iota
	lookaheadMatch
	lookaheadShort
)

// match compares the runes after the read position with word. fold makes
// the comparison ASCII case-insensitive. A partial match that may still
// complete once more input arrives reports lookaheadShort.
func (s *inputStream) match(word string, fold bool) lookahead {
	want := []rune(word)
	got := s.peek(len(want))
	for i, r := range got {
		if !runeEqual(r, want[i], fold) {
			return lookaheadMismatch
		}
	}
	if len(got) < len(want) {
		if s.ended {
			return lookaheadMismatch
		}
		return lookaheadShort
	}
	return lookaheadMatch
}

func (s *inputStream) mark() streamMark {
	return streamMark{seg: s.seg, off: s.off, pos: s.pos, offset: s.offset}
}

func (s *inputStream) reset(m streamMark) {
	s.seg, s.off, s.pos, s.offset = m.seg, m.off, m.pos, m.offset
}

// release drops segments that lie wholly before the read position. Marks
// taken before a release are invalid afterwards.
func (s *inputStream) release() {
	if s.seg == 0 {
		return
	}
	for i := 0; i < s.seg; i++ {
		s.segments[i] = nil
	}
	s.segments = s.segments[s.seg:]
	s.seg = 0
}

func (s *inputStream) position() int64 {
	return s.pos
}

func (s *inputStream) byteOffset() int64 {
	return s.offset
}

func runeLen(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	return 3
}

func runeEqual(a, b rune, fold bool) bool {
	if a == b {
		return true
	}
	return fold && toASCIILower(a) == toASCIILower(b)
}

func toASCIILower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 0x20
	}
	return r
}
