package unitcat

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestConvertRoundTrip(t *testing.T) {
	cases := []struct {
		value    string
		from, to Unit
	}{
		{"3", Meter, Centimeter},
		{"1", Kilometer, Mile},
		{"100", Fahrenheit, Celsius},
		{"0", Celsius, Kelvin},
		{"1", Gigabyte, Bit},
		{"1", Horsepower, Watt},
	}
	for _, c := range cases {
		v := decimal.RequireFromString(c.value)
		out, err := Convert(v, c.from, c.to)
		if err != nil {
			t.Fatalf("convert %s %v->%v: %v", c.value, c.from, c.to, err)
		}
		back, err := Convert(out, c.to, c.from)
		if err != nil {
			t.Fatalf("convert back: %v", err)
		}
		diff := back.Sub(v).Abs()
		if diff.GreaterThan(decimal.RequireFromString("0.0000001")) {
			t.Errorf("round trip %s %v->%v->%v = %s, want %s", c.value, c.from, c.to, c.from, back, v)
		}
	}
}

func TestConvertIncompatibleCategories(t *testing.T) {
	_, err := Convert(decimal.NewFromInt(1), Meter, Gram)
	if err == nil {
		t.Fatal("expected ErrIncompatibleUnits")
	}
}

func TestConvertTemperature(t *testing.T) {
	cases := []struct {
		value, want  string
		from, to     Unit
	}{
		{"0", "32", Celsius, Fahrenheit},
		{"100", "212", Celsius, Fahrenheit},
		{"0", "273.15", Celsius, Kelvin},
		{"32", "0", Fahrenheit, Celsius},
	}
	for _, c := range cases {
		out, err := Convert(decimal.RequireFromString(c.value), c.from, c.to)
		if err != nil {
			t.Fatalf("convert: %v", err)
		}
		want := decimal.RequireFromString(c.want)
		if !out.Equal(want) {
			t.Errorf("%s %v->%v = %s, want %s", c.value, c.from, c.to, out, want)
		}
	}
}

func TestIdealUnitLength(t *testing.T) {
	value, unit := IdealUnit(decimal.NewFromInt(301), Centimeter)
	if unit != Meter {
		t.Errorf("301cm ideal unit = %v, want Meter", unit)
	}
	want := decimal.RequireFromString("3.01")
	if !value.Equal(want) {
		t.Errorf("301cm ideal value = %s, want %s", value, want)
	}
}

func TestIdealJouleUnitExcludesWattHour(t *testing.T) {
	value, unit := IdealJouleUnit(decimal.NewFromInt(3600), Joule)
	if unit != Kilojoule {
		t.Errorf("3600 joule via joule-only ideal = %v, want Kilojoule (not WattHour)", unit)
	}
	if !value.Equal(decimal.RequireFromString("3.6")) {
		t.Errorf("value = %s, want 3.6", value)
	}
}

func TestConvertToLowestPicksLowerWeight(t *testing.T) {
	_, unit, err := ConvertToLowest(decimal.NewFromInt(1), Kilometer)
	if err != nil {
		t.Fatal(err)
	}
	if unit != Nanosecond && unit.Category() != Length {
		t.Fatalf("unexpected category for lowest unit %v", unit)
	}
	if unit != Millimeter {
		t.Errorf("lowest Length unit = %v, want Millimeter", unit)
	}
}

func TestNameSingularPlural(t *testing.T) {
	if Meter.Name(decimal.NewFromInt(1)) != "meter" {
		t.Errorf("Name(1) = %s, want meter", Meter.Name(decimal.NewFromInt(1)))
	}
	if Meter.Name(decimal.NewFromInt(2)) != "meters" {
		t.Errorf("Name(2) = %s, want meters", Meter.Name(decimal.NewFromInt(2)))
	}
}
