// Package unitalgebra implements the dimensional algebra of spec.md §4.5:
// the rules for combining two Quantities under add/subtract/multiply/
// divide/modulo/power, including the category promotions (Length·Length
// → Area, Voltage·Current → Power, ...) and the "ideal unit" display
// normalization. Grounded on original_source/src/units.rs's add/subtract/
// multiply/divide/modulo/pow, adapted to the teacher's evaluator.go idiom
// of a small typed Answer/Quantity struct threaded through eval.
package unitalgebra

import (
	"fmt"
	"strings"

	"github.com/calcmark/unitcalc/unitcat"
	"github.com/shopspring/decimal"
)

// Quantity is a value paired with a Unit (possibly unitcat.NoUnit).
type Quantity struct {
	Value decimal.Decimal
	Unit  unitcat.Unit
}

func New(value decimal.Decimal, unit unitcat.Unit) Quantity {
	return Quantity{Value: value, Unit: unit}
}

func (q Quantity) String() string {
	return fmt.Sprintf("%s %s", q.Value.String(), q.Unit)
}

// LexableString renders q the way the lexer expects to read it back: a
// plain decimal followed by the unit's plural name (nothing for NoUnit),
// with hyphens replaced by spaces so "kilowatt-hours" becomes "kilowatt
// hours" — used by Session's "ans" substitution. Units with no lexer
// spelling for their plural (marathons, pounds per square inch) do not
// lex back to the same unit.
func (q Quantity) LexableString() string {
	if q.Unit == unitcat.NoUnit {
		return q.Value.String()
	}
	return fmt.Sprintf("%s %s", q.Value.String(), strings.ReplaceAll(q.Unit.Plural(), "-", " "))
}

// Error is an EvalError raised by the unit algebra: dimensionally
// incompatible operands for an arithmetic operator.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func errorf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func convertToLowest(left, right Quantity) (Quantity, Quantity, error) {
	lw, rw := left.Unit.Weight(), right.Unit.Weight()
	if lw.Equal(rw) {
		return left, right, nil
	}
	if lw.GreaterThan(rw) {
		v, err := unitcat.Convert(left.Value, left.Unit, right.Unit)
		if err != nil {
			return Quantity{}, Quantity{}, err
		}
		return New(v, right.Unit), right, nil
	}
	v, err := unitcat.Convert(right.Value, right.Unit, left.Unit)
	if err != nil {
		return Quantity{}, Quantity{}, err
	}
	return left, New(v, left.Unit), nil
}

func convertQ(q Quantity, to unitcat.Unit) (Quantity, error) {
	v, err := unitcat.Convert(q.Value, q.Unit, to)
	if err != nil {
		return Quantity{}, err
	}
	return New(v, to), nil
}

func idealize(q Quantity) Quantity {
	v, u := unitcat.IdealUnit(q.Value, q.Unit)
	return New(v, u)
}

func idealizeJoule(q Quantity) Quantity {
	v, u := unitcat.IdealJouleUnit(q.Value, q.Unit)
	return New(v, u)
}

// baseValue returns q.Value expressed in its category's base unit (the
// unit of weight 1), used by every promotion rule below to combine two
// operands' magnitudes before re-tagging the result's unit.
func baseValue(q Quantity) decimal.Decimal {
	return q.Value.Mul(q.Unit.Weight())
}
