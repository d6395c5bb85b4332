package unitcalc

import (
	"regexp"

	"github.com/calcmark/unitcalc/unitalgebra"
	"github.com/calcmark/unitcalc/unitcat"
	"github.com/google/uuid"
)

// ansWord matches a standalone "ans" token so Session.Eval can substitute
// the previous answer into a fresh expression ("ans * 2") without teaching
// the lexer a variable-lookup mechanism — spec.md's Non-goals rule out a
// general variable store, but the original CLI's own convenience of
// recalling the last answer survives as this one textual substitution.
var ansWord = regexp.MustCompile(`(?i)\bans\b`)

// Session remembers the previous answer across calls, the same minimal
// convenience original_source's CLI offers, and carries a stable ID so a
// host embedding multiple sessions (a REPL, a multi-document editor) can
// tell them apart — mirroring the teacher's own session.go handle pattern.
type Session struct {
	ID                     uuid.UUID
	AllowTrailingOperators bool
	DefaultDegree          unitcat.Unit

	hasAnswer bool
	answer    unitalgebra.Quantity
}

// NewSession creates a Session with the given default-degree and trailing-
// operator settings.
func NewSession(allowTrailingOperators bool, defaultDegree unitcat.Unit) *Session {
	return &Session{
		ID:                     uuid.New(),
		AllowTrailingOperators: allowTrailingOperators,
		DefaultDegree:          defaultDegree,
	}
}

// Eval evaluates input in this session's context, substituting any
// standalone "ans" with the previous call's answer first, then records the
// new answer for the next call.
func (s *Session) Eval(input string, verbose bool) (Result, error) {
	if s.hasAnswer {
		input = ansWord.ReplaceAllString(input, s.answer.LexableString())
	}
	result, err := Eval(input, s.AllowTrailingOperators, s.DefaultDegree, verbose)
	if err != nil {
		return Result{}, err
	}
	s.answer = result.Value
	s.hasAnswer = true
	return result, nil
}

// Reset clears the remembered answer.
func (s *Session) Reset() {
	s.hasAnswer = false
	s.answer = unitalgebra.Quantity{}
}

// LastAnswer returns the remembered answer and whether one exists yet.
func (s *Session) LastAnswer() (unitalgebra.Quantity, bool) {
	return s.answer, s.hasAnswer
}
