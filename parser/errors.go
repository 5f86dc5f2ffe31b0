package parser

import (
	"github.com/heathj/htmlkit/parser/dom"
	"github.com/pkg/errors"
)

// Fatal statuses. Parse errors never show up here; they go to the
// diagnostic log.
var (
	// ErrNodeLimit means the document hit Config.MaxNodes. The partial
	// document must not be used.
	ErrNodeLimit = dom.ErrNodeLimit

	ErrNotStarted      = errors.New("parser: Begin has not been called")
	ErrAlreadyStarted  = errors.New("parser: Begin called twice")
	ErrFeedAfterEnd    = errors.New("parser: Feed called after End")
	ErrAlreadyEnded    = errors.New("parser: End called twice")
	ErrUnknownEncoding = errors.New("parser: unknown encoding label")
	ErrBadContext      = errors.New("parser: fragment context must be an element")
)

// errNeedInput is the tokenizer's way of saying the buffered input ran out
// before a decision could be made. It never leaves the package.
var errNeedInput = errors.New("parser: need more input")

// IsResourceError reports whether err means the parse was aborted because a
// resource limit was hit.
func IsResourceError(err error) bool {
	return errors.Cause(err) == ErrNodeLimit
}

// IsMisuse reports whether err is the result of calling the API out of
// order or with bad arguments.
func IsMisuse(err error) bool {
	switch errors.Cause(err) {
	case ErrNotStarted, ErrAlreadyStarted, ErrFeedAfterEnd, ErrAlreadyEnded, ErrUnknownEncoding, ErrBadContext:
		return true
	}
	return false
}
