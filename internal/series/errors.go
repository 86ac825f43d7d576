package series

import (
	"errors"
	"fmt"
)

var (
	// ErrShortLine indicates a sample line with fewer than two columns.
	ErrShortLine = errors.New("series: expected two columns")

	// ErrPaletteExhausted indicates more series than palette entries.
	ErrPaletteExhausted = errors.New("series: palette exhausted")
)

// ParseError wraps a malformed sample line with its location.
type ParseError struct {
	Path    string
	Line    int
	Text    string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("series: line %d %q: %v", e.Line, e.Text, e.Wrapped)
	}
	return fmt.Sprintf("series: %s:%d %q: %v", e.Path, e.Line, e.Text, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}
