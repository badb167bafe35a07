// Package lineno selects lines from a text stream using a small
// address language of line numbers and ranges, such as "3", "5:9",
// "9..5", "8:" or "1,4 10:12".
//
// A specification is parsed with Parse into Filters. Select runs one
// or more specifications over an input and returns the matched lines
// grouped by filter, in the order the filters were written. Ranges
// written backwards ("9:5") produce their lines in descending order.
package lineno

import (
	"errors"
	"fmt"
)

var ErrUnableToParse = errors.New("unable to parse line number/range")

// ParseError describes where a filter specification stopped making
// sense. It always wraps ErrUnableToParse.
type ParseError struct {
	Input  string
	Offset int // byte offset into Input
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q at offset %d", ErrUnableToParse, e.Input, e.Offset)
}

func (e *ParseError) Unwrap() error { return ErrUnableToParse }
