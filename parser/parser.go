package parser

import (
	"io"

	"github.com/heathj/htmlkit/parser/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Parser ties the decoder, the tokenizer and the tree constructor together.
// Input can be fed in chunks of any size; the resulting document does not
// depend on where the chunks are split.
type Parser struct {
	Tokenizer       *HTMLTokenizer
	TreeConstructor *HTMLTreeConstructor

	config      Config
	decoder     *decoder
	input       *inputStream
	diagnostics *diagnosticLog
	progress    *Progress
	log         *logrus.Logger

	started, ended bool
	err            error
}

func NewParser(cfg Config) *Parser {
	log := cfg.logger()
	diagnostics := &diagnosticLog{logger: log}
	input := &inputStream{}
	doc := dom.NewDocument(cfg.MaxNodes)
	return &Parser{
		Tokenizer:       newHTMLTokenizer(input, diagnostics, log),
		TreeConstructor: newHTMLTreeConstructor(doc, cfg, diagnostics, log),
		config:          cfg,
		input:           input,
		diagnostics:     diagnostics,
		log:             log,
	}
}

// Progress is what the tree constructor tells the tokenizer after each
// token.
type Progress struct {
	AdjustedCurrentNode *dom.Node
	TokenizerState      *tokenizerState
}

func MakeProgress(adjCurNode *dom.Node, tokenizerState *tokenizerState) *Progress {
	return &Progress{
		AdjustedCurrentNode: adjCurNode,
		TokenizerState:      tokenizerState,
	}
}

// Begin prepares the parser for input.
func (p *Parser) Begin() error {
	if p.started {
		return ErrAlreadyStarted
	}
	d, err := newDecoder(p.config.Encoding)
	if err != nil {
		return err
	}
	p.decoder = d
	p.started = true
	p.log.WithField("encoding", d.name).Debug("parse started")
	return nil
}

// Feed hands the parser the next chunk of bytes. Everything that can be
// decided with the input so far is processed before it returns.
func (p *Parser) Feed(buf []byte) error {
	switch {
	case !p.started:
		return ErrNotStarted
	case p.ended:
		return ErrFeedAfterEnd
	case p.err != nil:
		return p.err
	}
	runes, err := p.decoder.decode(buf, false)
	if err != nil {
		p.err = err
		return err
	}
	p.input.append(runes)
	return p.pump()
}

// End flushes the remaining input, runs the parser to completion and
// returns the document.
func (p *Parser) End() (*dom.Document, error) {
	switch {
	case !p.started:
		return nil, ErrNotStarted
	case p.ended:
		return nil, ErrAlreadyEnded
	}
	p.ended = true
	if p.err != nil {
		return nil, p.err
	}
	runes, err := p.decoder.decode(nil, true)
	if err != nil {
		p.err = err
		return nil, err
	}
	p.input.append(runes)
	p.input.end()
	if err := p.pump(); err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{
		"runes":  p.input.position(),
		"nodes":  p.TreeConstructor.Document.NodeCount(),
		"errors": len(p.diagnostics.entries),
	}).Debug("parse finished")
	return p.TreeConstructor.Document, nil
}

// Diagnostics returns a copy of the parse errors seen so far.
func (p *Parser) Diagnostics() []ParseError {
	return p.diagnostics.snapshot()
}

// pump moves tokens from the tokenizer to the tree constructor until the
// buffered input runs out.
func (p *Parser) pump() error {
	for p.Tokenizer.Next() {
		t, err := p.Tokenizer.Token(p.progress)
		p.progress = nil
		if err == errNeedInput {
			return nil
		}
		if err != nil {
			p.err = err
			return err
		}
		p.progress = p.TreeConstructor.ProcessToken(t)
		if fatal := p.TreeConstructor.fatal; fatal != nil {
			p.err = errors.Wrapf(fatal, "parser: token at offset %d", t.Offset)
			p.log.WithError(p.err).Warn("parse aborted")
			return p.err
		}
	}
	return nil
}

const readChunkSize = 4096

// Parse reads r to the end and parses it as a document.
func Parse(r io.Reader, cfg Config) (*dom.Document, []ParseError, error) {
	p := NewParser(cfg)
	if err := p.Begin(); err != nil {
		return nil, nil, err
	}
	buf := make([]byte, readChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if ferr := p.Feed(buf[:n]); ferr != nil {
				return nil, p.Diagnostics(), ferr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, p.Diagnostics(), errors.Wrap(err, "parser: reading input")
		}
	}
	doc, err := p.End()
	return doc, p.Diagnostics(), err
}
