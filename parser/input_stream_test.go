package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(s *inputStream) string {
	var out []rune
	for {
		r, ok := s.next()
		if !ok {
			return string(out)
		}
		out = append(out, r)
	}
}

func TestInputStreamNewlines(t *testing.T) {
	var tests = []struct {
		name   string
		chunks []string
		want   string
	}{
		{"crlf", []string{"a\r\nb"}, "a\nb"},
		{"lone cr", []string{"a\rb\r"}, "a\nb\n"},
		{"crlf split", []string{"a\r", "\nb"}, "a\nb"},
		{"cr then cr", []string{"a\r", "\r", "b"}, "a\n\nb"},
		{"empty chunks", []string{"", "a", "", "b"}, "ab"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := &inputStream{}
			for _, c := range tt.chunks {
				s.append([]rune(c))
			}
			s.end()
			assert.Equal(t, tt.want, readAll(s))
			_, ok := s.next()
			assert.False(t, ok)
		})
	}
}

func TestInputStreamHoldsTrailingCR(t *testing.T) {
	s := &inputStream{}
	s.append([]rune("x\r"))
	assert.Equal(t, "x", readAll(s))
	assert.True(t, s.pendingCR)
	s.append([]rune("\n"))
	assert.Equal(t, "\n", readAll(s))
}

func TestInputStreamMarkReset(t *testing.T) {
	s := &inputStream{}
	s.append([]rune("ab"))
	s.append([]rune("é"))
	m := s.mark()
	r, ok := s.next()
	require.True(t, ok)
	assert.Equal(t, 'a', r)
	s.discard(2)
	assert.Equal(t, int64(3), s.position())
	assert.Equal(t, int64(4), s.byteOffset())

	s.reset(m)
	assert.Equal(t, int64(0), s.position())
	assert.Equal(t, "abé", readAll(s))
}

func TestInputStreamRelease(t *testing.T) {
	s := &inputStream{}
	s.append([]rune("ab"))
	s.append([]rune("cd"))
	s.discard(3)
	s.release()
	assert.Len(t, s.segments, 1)
	assert.Equal(t, "d", readAll(s))
	assert.Equal(t, int64(4), s.position())
}

func TestInputStreamMatch(t *testing.T) {
	s := &inputStream{}
	s.append([]rune("DOC"))
	assert.Equal(t, lookaheadShort, s.match("doctype", true))
	assert.Equal(t, lookaheadMismatch, s.match("doctype", false))
	assert.Equal(t, lookaheadMismatch, s.match("dx", true))

	s.append([]rune("type"))
	assert.Equal(t, lookaheadMatch, s.match("doctype", true))
	assert.Equal(t, []rune("DOCt"), s.peek(4))

	s = &inputStream{}
	s.append([]rune("DOC"))
	s.end()
	assert.Equal(t, lookaheadMismatch, s.match("doctype", true))
}
