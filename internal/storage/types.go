package storage

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when a week has no stamp file.
var ErrNoData = errors.New("no data")

// ParseError identifies a malformed line in a stamp or correction file.
type ParseError struct {
	File string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %q: %v", e.File, e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
