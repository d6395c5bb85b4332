package evaluator

import "fmt"

// Error is an EvalError: dimensionally incompatible operands, a factorial
// precondition violated, a function applied to a dimensioned argument it
// doesn't accept, an unsupported function, or Of's left operand not being
// NoUnit.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func errorf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
