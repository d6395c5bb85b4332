package numeric_test

import (
	"math/big"
	"testing"

	"github.com/calcmark/unitcalc/numeric"
	"github.com/shopspring/decimal"
)

func withinEpsilon(a, b decimal.Decimal, epsilon string) bool {
	return a.Sub(b).Abs().LessThan(decimal.RequireFromString(epsilon))
}

func TestIntPow(t *testing.T) {
	got := numeric.IntPow(decimal.NewFromInt(2), big.NewInt(10))
	if !got.Equal(decimal.NewFromInt(1024)) {
		t.Errorf("expected 1024, got %s", got)
	}
}

func TestIntPowZeroExponent(t *testing.T) {
	got := numeric.IntPow(decimal.NewFromInt(7), big.NewInt(0))
	if !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected 1, got %s", got)
	}
}

func TestSqrtExact(t *testing.T) {
	got := numeric.Sqrt(decimal.NewFromInt(144))
	if !withinEpsilon(got, decimal.NewFromInt(12), "0.0000001") {
		t.Errorf("expected ~12, got %s", got)
	}
}

func TestCbrtExact(t *testing.T) {
	got := numeric.Cbrt(decimal.NewFromInt(27))
	if !withinEpsilon(got, decimal.NewFromInt(3), "0.0000001") {
		t.Errorf("expected ~3, got %s", got)
	}
}

func TestSqrtIrrational(t *testing.T) {
	got := numeric.Sqrt(decimal.NewFromInt(2))
	// 1.41421356... — check a handful of digits land where expected.
	if !withinEpsilon(got, decimal.RequireFromString("1.41421356"), "0.00001") {
		t.Errorf("expected ~1.41421356, got %s", got)
	}
}

func TestNthRootOfOneIsIdentity(t *testing.T) {
	got := numeric.NthRoot(decimal.NewFromInt(42), 1)
	if !got.Equal(decimal.NewFromInt(42)) {
		t.Errorf("expected 42, got %s", got)
	}
}

func TestPowFractionalExponent(t *testing.T) {
	// 4^0.5 == sqrt(4) == 2
	got := numeric.Pow(decimal.NewFromInt(4), decimal.RequireFromString("0.5"))
	if !withinEpsilon(got, decimal.NewFromInt(2), "0.0000001") {
		t.Errorf("expected ~2, got %s", got)
	}
}

func TestPowNegativeExponent(t *testing.T) {
	// 2^-3 == 0.125
	got := numeric.Pow(decimal.NewFromInt(2), decimal.NewFromInt(-3))
	if !got.Equal(decimal.RequireFromString("0.125")) {
		t.Errorf("expected 0.125, got %s", got)
	}
}

func TestPowZeroExponentIsOne(t *testing.T) {
	got := numeric.Pow(decimal.NewFromInt(9), decimal.Zero)
	if !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected 1, got %s", got)
	}
}
