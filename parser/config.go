package parser

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Config controls a single parse.
type Config struct {
	// Scripting selects how noscript is parsed.
	Scripting bool
	// Encoding is any label known to the WHATWG encoding index. Empty means
	// UTF-8.
	Encoding string
	// MaxNodes caps the number of nodes the document may allocate. Zero
	// means unlimited.
	MaxNodes int
	// Logger receives token and insertion mode traces. Nil discards them.
	Logger *logrus.Logger
	// IframeSrcdoc marks the input as an iframe srcdoc document, which is
	// never put in quirks mode by a missing doctype.
	IframeSrcdoc bool
}

func DefaultConfig() Config {
	return Config{
		Scripting: true,
		Encoding:  "utf-8",
	}
}

func (c Config) logger() *logrus.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}
