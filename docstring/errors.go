package docstring

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the transformer.
var (
	// ErrMalformedItem indicates a field header that does not match the
	// accepted item grammar.
	ErrMalformedItem = errors.New("malformed item")
	// ErrMalformedSection indicates a section body that violates the
	// structural expectations of its strategy.
	ErrMalformedSection = errors.New("malformed section")
	// ErrOutOfRange indicates a cursor or splice operation outside the
	// buffer bounds. It is always a bug in the caller, never bad input.
	ErrOutOfRange = errors.New("index out of range")
	// ErrUnknownStrategy indicates a registry entry naming a strategy
	// that does not exist. It is a configuration error, not a data error.
	ErrUnknownStrategy = errors.New("unknown strategy")
	// ErrEmptyBlock indicates a block extraction attempted at end of
	// input. Callers must check for end of input first.
	ErrEmptyBlock = errors.New("empty block")
)

// TransformError reports a data-quality failure in one docstring with
// enough context to locate the offending section and block. It wraps one
// of the sentinel errors for use with [errors.Is].
type TransformError struct {
	Err    error
	Header string
	Block  []string
	Line   int
}

// Error implements the error interface.
func (e *TransformError) Error() string {
	msg := fmt.Sprintf("section %q at line %d: %v", e.Header, e.Line, e.Err)
	if len(e.Block) > 0 {
		msg += fmt.Sprintf(": %q", strings.Join(e.Block, "\n"))
	}

	return msg
}

// Unwrap returns the underlying sentinel error.
func (e *TransformError) Unwrap() error {
	return e.Err
}
