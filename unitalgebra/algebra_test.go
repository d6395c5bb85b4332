package unitalgebra_test

import (
	"testing"

	"github.com/calcmark/unitcalc/unitalgebra"
	"github.com/calcmark/unitcalc/unitcat"
	"github.com/shopspring/decimal"
)

func TestAddSameUnit(t *testing.T) {
	q, err := unitalgebra.Add(
		unitalgebra.New(decimal.NewFromInt(3), unitcat.Meter),
		unitalgebra.New(decimal.NewFromInt(2), unitcat.Meter),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Value.Equal(decimal.NewFromInt(5)) || q.Unit != unitcat.Meter {
		t.Errorf("expected 5 Meter, got %s %v", q.Value, q.Unit)
	}
}

func TestAddDifferentUnitsPicksLowerWeight(t *testing.T) {
	// spec.md Open Question 3: result lands in the lower-weight unit
	// (Millimeter, weight 1), not a hardcoded Millimeter constant — here
	// Meter (weight 1000) is higher than Millimeter (weight 1).
	q, err := unitalgebra.Add(
		unitalgebra.New(decimal.NewFromInt(1), unitcat.Meter),
		unitalgebra.New(decimal.NewFromInt(500), unitcat.Millimeter),
	)
	if err != nil {
		t.Fatal(err)
	}
	if q.Unit != unitcat.Millimeter {
		t.Errorf("expected Millimeter, got %v", q.Unit)
	}
	if !q.Value.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected 1500, got %s", q.Value)
	}
}

func TestAddIncompatibleCategoriesIsError(t *testing.T) {
	_, err := unitalgebra.Add(
		unitalgebra.New(decimal.NewFromInt(1), unitcat.Meter),
		unitalgebra.New(decimal.NewFromInt(1), unitcat.Kilogram),
	)
	if err == nil {
		t.Fatal("expected error adding Length to Mass")
	}
}

func TestAddTemperatureIsError(t *testing.T) {
	_, err := unitalgebra.Add(
		unitalgebra.New(decimal.NewFromInt(1), unitcat.Celsius),
		unitalgebra.New(decimal.NewFromInt(1), unitcat.Celsius),
	)
	if err == nil {
		t.Fatal("expected error adding two Temperature quantities")
	}
}

func TestMultiplyNoUnitIsScalar(t *testing.T) {
	q, err := unitalgebra.Multiply(
		unitalgebra.New(decimal.NewFromInt(3), unitcat.NoUnit),
		unitalgebra.New(decimal.NewFromInt(4), unitcat.NoUnit),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Value.Equal(decimal.NewFromInt(12)) || q.Unit != unitcat.NoUnit {
		t.Errorf("expected 12 NoUnit, got %s %v", q.Value, q.Unit)
	}
}

func TestMultiplyScalarByUnitIsCommutative(t *testing.T) {
	left, err := unitalgebra.Multiply(
		unitalgebra.New(decimal.NewFromInt(3), unitcat.NoUnit),
		unitalgebra.New(decimal.NewFromInt(2), unitcat.Meter),
	)
	if err != nil {
		t.Fatal(err)
	}
	right, err := unitalgebra.Multiply(
		unitalgebra.New(decimal.NewFromInt(2), unitcat.Meter),
		unitalgebra.New(decimal.NewFromInt(3), unitcat.NoUnit),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !left.Value.Equal(right.Value) || left.Unit != right.Unit {
		t.Errorf("expected commutative result, got %s %v vs %s %v", left.Value, left.Unit, right.Value, right.Unit)
	}
}

func TestMultiplyLengthByLengthIsArea(t *testing.T) {
	q, err := unitalgebra.Multiply(
		unitalgebra.New(decimal.NewFromInt(3), unitcat.Meter),
		unitalgebra.New(decimal.NewFromInt(2), unitcat.Meter),
	)
	if err != nil {
		t.Fatal(err)
	}
	if q.Unit.Category() != unitcat.Area {
		t.Errorf("expected Area, got %v", q.Unit.Category())
	}
}

func TestMultiplyCurrentByResistanceIsVoltage(t *testing.T) {
	q, err := unitalgebra.Multiply(
		unitalgebra.New(decimal.NewFromInt(2), unitcat.Ampere),
		unitalgebra.New(decimal.NewFromInt(3), unitcat.Ohm),
	)
	if err != nil {
		t.Fatal(err)
	}
	if q.Unit.Category() != unitcat.Voltage {
		t.Errorf("expected Voltage, got %v", q.Unit.Category())
	}
	if !q.Value.Equal(decimal.NewFromInt(6)) {
		t.Errorf("expected 6, got %s", q.Value)
	}
}

func TestMultiplyResistanceByCurrentIsVoltage(t *testing.T) {
	// commutative direction of the same fix.
	q, err := unitalgebra.Multiply(
		unitalgebra.New(decimal.NewFromInt(3), unitcat.Ohm),
		unitalgebra.New(decimal.NewFromInt(2), unitcat.Ampere),
	)
	if err != nil {
		t.Fatal(err)
	}
	if q.Unit.Category() != unitcat.Voltage {
		t.Errorf("expected Voltage, got %v", q.Unit.Category())
	}
}

func TestDivideSameCategoryIsScalar(t *testing.T) {
	q, err := unitalgebra.Divide(
		unitalgebra.New(decimal.NewFromInt(10), unitcat.Meter),
		unitalgebra.New(decimal.NewFromInt(2), unitcat.Meter),
	)
	if err != nil {
		t.Fatal(err)
	}
	if q.Unit != unitcat.NoUnit || !q.Value.Equal(decimal.NewFromInt(5)) {
		t.Errorf("expected 5 NoUnit, got %s %v", q.Value, q.Unit)
	}
}

func TestDivideUnrelatedCategoriesIsError(t *testing.T) {
	_, err := unitalgebra.Divide(
		unitalgebra.New(decimal.NewFromInt(1), unitcat.Kilogram),
		unitalgebra.New(decimal.NewFromInt(1), unitcat.Second),
	)
	if err == nil {
		t.Fatal("expected error: Mass/Time has no promotion rule")
	}
}

func TestDivideLengthByTimeIsSpeed(t *testing.T) {
	q, err := unitalgebra.Divide(
		unitalgebra.New(decimal.NewFromInt(100), unitcat.Kilometer),
		unitalgebra.New(decimal.NewFromInt(2), unitcat.Hour),
	)
	if err != nil {
		t.Fatal(err)
	}
	if q.Unit.Category() != unitcat.Speed {
		t.Errorf("expected Speed, got %v", q.Unit.Category())
	}
	if !q.Value.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected 50, got %s", q.Value)
	}
}

func TestModuloSameUnit(t *testing.T) {
	q, err := unitalgebra.Modulo(
		unitalgebra.New(decimal.NewFromInt(10), unitcat.Meter),
		unitalgebra.New(decimal.NewFromInt(3), unitcat.Meter),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Value.Equal(decimal.NewFromInt(1)) || q.Unit != unitcat.Meter {
		t.Errorf("expected 1 Meter, got %s %v", q.Value, q.Unit)
	}
}

func TestPowLengthSquaredIsArea(t *testing.T) {
	q, err := unitalgebra.Pow(
		unitalgebra.New(decimal.NewFromInt(3), unitcat.Meter),
		unitalgebra.New(decimal.NewFromInt(2), unitcat.NoUnit),
	)
	if err != nil {
		t.Fatal(err)
	}
	if q.Unit.Category() != unitcat.Area {
		t.Errorf("expected Area, got %v", q.Unit.Category())
	}
}

func TestPowWithUnitExponentIsError(t *testing.T) {
	_, err := unitalgebra.Pow(
		unitalgebra.New(decimal.NewFromInt(2), unitcat.NoUnit),
		unitalgebra.New(decimal.NewFromInt(2), unitcat.Meter),
	)
	if err == nil {
		t.Fatal("expected error raising to a power with a unit exponent")
	}
}

func TestDivideStorageByRateIsSecondsNotIdealized(t *testing.T) {
	// spec.md §8's worked example pins this to plain Second (1000), not
	// the Time ideal-unit ladder's Minute tier.
	q, err := unitalgebra.Divide(
		unitalgebra.New(decimal.NewFromInt(1), unitcat.Gigabyte),
		unitalgebra.New(decimal.NewFromInt(1), unitcat.MegabytesPerSecond),
	)
	if err != nil {
		t.Fatal(err)
	}
	if q.Unit != unitcat.Second {
		t.Errorf("expected Second, got %v", q.Unit)
	}
	if !q.Value.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected 1000, got %s", q.Value)
	}
}
