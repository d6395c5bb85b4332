// Package numeric provides the scalar-layer primitives spec.md §1 assumes
// of its "exact rational or high-precision decimal scalar type": power,
// nth-root, and the Newton iterations built on them. Grounded on
// original_source/src/pow.rs's powf/powi/root (an exact-rational power/
// root implementation) and src/evaluator.rs's fixed-iteration sqrt/cbrt,
// translated to shopspring/decimal's exact coefficient*10^exponent
// representation, which hands us an exact numerator/denominator split for
// free — no gcd-search over floats needed (spec.md §9 Open Question 4:
// iterate to a precision target, not original_source's fixed count).
package numeric

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const maxNewtonIterations = 200

var (
	zero = decimal.Zero
	one  = decimal.NewFromInt(1)
	two  = decimal.NewFromInt(2)

	// epsilon is the convergence target for the Newton iterations below:
	// successive estimates within this distance are considered equal.
	epsilon = decimal.New(1, -int32(decimal.DivisionPrecision))
)

func converged(prev, next decimal.Decimal) bool {
	return next.Sub(prev).Abs().LessThan(epsilon)
}

// IntPow raises base to a non-negative integer power by squaring — exact,
// since decimal multiplication never loses precision.
func IntPow(base decimal.Decimal, exp *big.Int) decimal.Decimal {
	if exp.Sign() == 0 {
		return one
	}
	result := one
	b := base
	e := new(big.Int).Set(exp)
	bigOne := big.NewInt(1)
	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result = result.Mul(b)
		}
		b = b.Mul(b)
		e.Rsh(e, 1)
		_ = bigOne
	}
	return result
}

// NthRoot returns the real nth root of x via Newton's method:
// guess_{k+1} = ((n-1)*guess + x/guess^(n-1)) / n.
func NthRoot(x decimal.Decimal, n int64) decimal.Decimal {
	if n == 1 {
		return x
	}
	if x.IsZero() {
		return zero
	}
	nDec := decimal.NewFromInt(n)
	nMinusOne := big.NewInt(n - 1)
	guess := one
	if x.GreaterThan(one) {
		guess = x
	}
	for i := 0; i < maxNewtonIterations; i++ {
		denomPow := IntPow(guess, nMinusOne)
		next := nDec.Sub(one).Mul(guess).Add(x.Div(denomPow)).Div(nDec)
		if converged(guess, next) {
			return next
		}
		guess = next
	}
	return guess
}

// Sqrt is NthRoot(x, 2), grounded on original_source/src/evaluator.rs's
// fixed-iteration Newton sqrt — rewritten to converge on precision per
// spec.md §9 Open Question 4.
func Sqrt(x decimal.Decimal) decimal.Decimal { return NthRoot(x, 2) }

// Cbrt is NthRoot(x, 3), same grounding as Sqrt.
func Cbrt(x decimal.Decimal) decimal.Decimal { return NthRoot(x, 3) }

// fractionOf decomposes a non-negative decimal into an exact numerator/
// denominator pair using its coefficient*10^exponent representation: a
// non-negative exponent means the value is already an integer (denominator
// 1), a negative exponent contributes a power-of-ten denominator. Both are
// reduced by their GCD.
func fractionOf(d decimal.Decimal) (num, den *big.Int) {
	coeff := d.Coefficient()
	exp := d.Exponent()
	if exp >= 0 {
		num = new(big.Int).Mul(coeff, pow10(int(exp)))
		den = big.NewInt(1)
		return
	}
	num = new(big.Int).Set(coeff)
	den = pow10(int(-exp))
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	if g.Sign() != 0 {
		num = new(big.Int).Div(num, g)
		den = new(big.Int).Div(den, g)
	}
	return
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// Pow raises base to an arbitrary (possibly fractional, possibly negative)
// decimal exponent: an integer exponent is exact repeated squaring; a
// fractional exponent p/q is base^p then the q-th root (Newton); a
// negative exponent takes the reciprocal of the positive-exponent result.
// Grounded on original_source/src/pow.rs's powf.
func Pow(base, exponent decimal.Decimal) decimal.Decimal {
	if exponent.IsZero() {
		return one
	}
	negative := exponent.IsNegative()
	absExp := exponent.Abs()

	num, den := fractionOf(absExp)
	whole := IntPow(base, num)
	var result decimal.Decimal
	if den.Cmp(big.NewInt(1)) == 0 {
		result = whole
	} else {
		result = NthRoot(whole, den.Int64())
	}
	if negative {
		result = one.Div(result)
	}
	return result
}
