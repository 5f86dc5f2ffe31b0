package parser

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decoder turns bytes in the configured encoding into codepoints. Bytes that
// end in the middle of a sequence are held until the next call. Malformed
// input decodes to U+FFFD. A byte order mark overrides the label and is
// stripped.
type decoder struct {
	name    string
	t       transform.Transformer
	pending []byte
	// held is an incomplete UTF-8 sequence at the end of the last output.
	// After a UTF-8 BOM the transformer passes bytes through unchecked, so
	// a character split across calls arrives in two halves.
	held []byte
}

func newDecoder(label string) (*decoder, error) {
	if label == "" {
		label = "utf-8"
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	if enc == encoding.Replacement {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q maps to the replacement encoding", label)
	}
	return &decoder{
		name: name,
		t:    unicode.BOMOverride(enc.NewDecoder()),
	}, nil
}

// decode converts src. atEOF flushes anything still pending.
func (d *decoder) decode(src []byte, atEOF bool) ([]rune, error) {
	d.pending = append(d.pending, src...)
	out := d.held
	d.held = nil
	for {
		dst := make([]byte, 3*len(d.pending)+16)
		nDst, nSrc, err := d.t.Transform(dst, d.pending, atEOF)
		out = append(out, dst[:nDst]...)
		d.pending = append(d.pending[:0], d.pending[nSrc:]...)
		switch {
		case err == transform.ErrShortDst:
			continue
		case err == transform.ErrShortSrc && !atEOF:
		case err != nil:
			return nil, errors.Wrapf(err, "decoding %s input", d.name)
		}
		break
	}
	if !atEOF {
		out, d.held = splitIncompleteRune(out)
	}
	return []rune(string(out)), nil
}

// splitIncompleteRune cuts a trailing partial UTF-8 sequence off b.
func splitIncompleteRune(b []byte) ([]byte, []byte) {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		if utf8.FullRune(b[i:]) {
			break
		}
		return b[:i], append([]byte(nil), b[i:]...)
	}
	return b, nil
}
