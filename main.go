package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/heathj/htmlkit/parser"
	"github.com/heathj/htmlkit/parser/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		file      = flag.String("file", "", "HTML file to parse (stdin when empty)")
		encoding  = flag.String("encoding", "utf-8", "encoding label of the input")
		scripting = flag.Bool("scripting", true, "parse noscript as raw text")
		maxNodes  = flag.Int("max-nodes", 0, "node limit, 0 for none")
		context   = flag.String("fragment", "", "parse as a fragment of this HTML element")
		verbose   = flag.Bool("v", false, "log parse errors")
		trace     = flag.Bool("trace", false, "log every token and insertion mode change")
	)
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	switch {
	case *trace:
		log.SetLevel(logrus.TraceLevel)
	case *verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}

	cfg := parser.DefaultConfig()
	cfg.Encoding = *encoding
	cfg.Scripting = *scripting
	cfg.MaxNodes = *maxNodes
	cfg.Logger = log

	in := io.Reader(os.Stdin)
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.WithError(err).Fatal("opening input")
		}
		defer f.Close()
		in = f
	}

	out, diagnostics, err := run(in, *context, cfg)
	if err != nil {
		log.WithError(err).WithField("misuse", parser.IsMisuse(err)).Warn("parse failed")
		os.Exit(1)
	}
	log.WithField("errors", len(diagnostics)).Info("parsed")
	fmt.Println(out)
}

func run(in io.Reader, context string, cfg parser.Config) (string, []parser.ParseError, error) {
	if context == "" {
		doc, diagnostics, err := parser.Parse(in, cfg)
		if err != nil {
			return "", diagnostics, err
		}
		return doc.String(), diagnostics, nil
	}

	input, err := io.ReadAll(in)
	if err != nil {
		return "", nil, errors.Wrap(err, "reading input")
	}
	ctxDoc := dom.NewDocument(0)
	ctx, err := ctxDoc.CreateElement(context, dom.HTML, nil)
	if err != nil {
		return "", nil, err
	}
	nodes, diagnostics, err := parser.ParseFragment(ctx, input, cfg)
	if err != nil {
		return "", diagnostics, err
	}
	return dom.Dump(nodes), diagnostics, nil
}
