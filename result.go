package unitcalc

import (
	"time"

	"github.com/calcmark/unitcalc/unitalgebra"
)

// Result is what Eval returns on success: the computed Quantity, plus
// per-stage timings when the caller asked for verbose=true. spec.md §1
// keeps timing/verbose reporting as the caller's concern, not Eval's — so
// Result only carries the numbers; printing them is up to cmd/unitcalc.
type Result struct {
	// Value is the computed answer: a scalar paired with its unit
	// (unitcat.NoUnit for a plain number).
	Value unitalgebra.Quantity

	// Timing is the zero value unless the caller requested verbose=true.
	Timing Timing
}

// Timing holds the wall-clock duration of each pipeline stage, populated
// only when Eval's verbose argument is true.
type Timing struct {
	Lex   time.Duration
	Parse time.Duration
	Eval  time.Duration
	Total time.Duration
}

func (r Result) String() string {
	return r.Value.String()
}
