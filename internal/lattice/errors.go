package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates a matrix with no rows or no columns.
	ErrEmpty = errors.New("lattice: empty spin matrix")

	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("lattice: rows have inconsistent lengths")
)

// ParseError reports a token that is not an integer.
type ParseError struct {
	Path    string
	Line    int
	Token   string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("lattice: line %d: invalid spin %q: %v", e.Line, e.Token, e.Wrapped)
	}
	return fmt.Sprintf("lattice: %s:%d: invalid spin %q: %v", e.Path, e.Line, e.Token, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}
