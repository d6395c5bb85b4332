package unitcat

import (
	"testing"

	"github.com/martinlindhe/unit"
	"github.com/shopspring/decimal"
)

// These tests cross-check the hand-built decimal weight table against
// martinlindhe/unit's independent float64 implementation, catching typos
// in the literal weight strings in unit.go. Production arithmetic never uses
// this library — see DESIGN.md.
func TestCrossCheckLength(t *testing.T) {
	want := unit.Mile.Meters()
	got, err := Convert(decimal.NewFromInt(1), Mile, Meter)
	if err != nil {
		t.Fatal(err)
	}
	gotF, _ := got.Float64()
	if diff := gotF - want; diff > 0.001 || diff < -0.001 {
		t.Errorf("1 mile in meters = %v, martinlindhe/unit says %v", gotF, want)
	}
}

func TestCrossCheckMass(t *testing.T) {
	want := unit.Pound.Kilograms()
	got, err := Convert(decimal.NewFromInt(1), Pound, Kilogram)
	if err != nil {
		t.Fatal(err)
	}
	gotF, _ := got.Float64()
	if diff := gotF - want; diff > 0.0001 || diff < -0.0001 {
		t.Errorf("1 pound in kg = %v, martinlindhe/unit says %v", gotF, want)
	}
}

func TestCrossCheckVolume(t *testing.T) {
	want := unit.USGallon.Liters()
	got, err := Convert(decimal.NewFromInt(1), Gallon, Liter)
	if err != nil {
		t.Fatal(err)
	}
	gotF, _ := got.Float64()
	if diff := gotF - want; diff > 0.0001 || diff < -0.0001 {
		t.Errorf("1 gallon in liters = %v, martinlindhe/unit says %v", gotF, want)
	}
}

func TestCrossCheckSpeed(t *testing.T) {
	want := unit.MilesPerHour.KilometersPerHour()
	got, err := Convert(decimal.NewFromInt(1), MilesPerHour, KilometersPerHour)
	if err != nil {
		t.Fatal(err)
	}
	gotF, _ := got.Float64()
	if diff := gotF - want; diff > 0.0001 || diff < -0.0001 {
		t.Errorf("1 mph in kph = %v, martinlindhe/unit says %v", gotF, want)
	}
}
