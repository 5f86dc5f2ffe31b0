package parser

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderLabels(t *testing.T) {
	var tests = []struct {
		label string
		name  string
	}{
		{"", "utf-8"},
		{"UTF-8", "utf-8"},
		{"latin1", "windows-1252"},
		{"shift_jis", "shift_jis"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			d, err := newDecoder(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.name)
		})
	}
}

func TestDecoderRejects(t *testing.T) {
	for _, label := range []string{"bogus", "iso-2022-kr"} {
		_, err := newDecoder(label)
		require.Error(t, err, label)
		assert.Equal(t, ErrUnknownEncoding, errors.Cause(err), label)
	}
}

func TestDecoderSplitSequences(t *testing.T) {
	var tests = []struct {
		name  string
		label string
		in    string
	}{
		{"utf-8", "utf-8", "a\u00e9\u20ac\U0001F600"},
		{"utf-8 with BOM", "utf-8", "\xef\xbb\xbfa\u00e9\u20ac\U0001F600"},
		{"BOM overrides windows-1252", "windows-1252", "\xef\xbb\xbfa\u00e9\u20ac\U0001F600"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := newDecoder(tt.label)
			require.NoError(t, err)
			in := []byte(tt.in)
			var out []rune
			for i := range in {
				runes, err := d.decode(in[i:i+1], false)
				require.NoError(t, err)
				out = append(out, runes...)
			}
			runes, err := d.decode(nil, true)
			require.NoError(t, err)
			out = append(out, runes...)
			assert.Equal(t, "a\u00e9\u20ac\U0001F600", string(out))
		})
	}
}

func TestDecoderBOMSplitCharacter(t *testing.T) {
	d, err := newDecoder("utf-8")
	require.NoError(t, err)
	first, err := d.decode([]byte("\xef\xbb\xbf<p>\xc3"), false)
	require.NoError(t, err)
	assert.Equal(t, "<p>", string(first))
	second, err := d.decode([]byte("\xa9"), false)
	require.NoError(t, err)
	assert.Equal(t, "\u00e9", string(second))

	// A sequence still incomplete at the end of input is malformed.
	tail, err := d.decode([]byte("\xe2\x82"), false)
	require.NoError(t, err)
	assert.Empty(t, tail)
	tail, err = d.decode(nil, true)
	require.NoError(t, err)
	assert.NotEmpty(t, tail)
	for _, r := range tail {
		assert.Equal(t, '\uFFFD', r)
	}
}

func TestDecoderMalformed(t *testing.T) {
	d, err := newDecoder("utf-8")
	require.NoError(t, err)
	runes, err := d.decode([]byte("a\xffb"), false)
	require.NoError(t, err)
	assert.Equal(t, "a\uFFFDb", string(runes))
}

func TestDecoderBOM(t *testing.T) {
	d, err := newDecoder("windows-1252")
	require.NoError(t, err)
	runes, err := d.decode([]byte("\xfe\xff\x00h\x00i"), true)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(runes))
}
