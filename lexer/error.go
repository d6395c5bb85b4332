// Package lexer turns a free-form expression string into a flat token
// sequence, grounded on original_source/src/lexer.rs.
package lexer

import "fmt"

// Error is a LexError: an invalid character, an unrecognized word, a bad
// multi-word sequence, a numeric-literal parse failure, or empty input.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func errorf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
