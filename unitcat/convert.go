package unitcat

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrIncompatibleUnits is returned by Convert when from and to don't share a
// Category.
type ErrIncompatibleUnits struct {
	From, To Unit
}

func (e ErrIncompatibleUnits) Error() string {
	return fmt.Sprintf("cannot convert %s to %s: different categories", e.From, e.To)
}

// ConversionFactor returns the multiplier that turns a value in `from` into
// a value in `to`. Only valid for same-category, non-Temperature units —
// Temperature uses the affine formulas in Convert instead, since a pure
// scale factor can't express an offset.
func ConversionFactor(from, to Unit) decimal.Decimal {
	return from.Weight().Div(to.Weight())
}

// Convert rewrites value (currently denominated in `from`) into `to`.
// Temperature is affine, not linear, so it's handled as explicit conversion
// pairs grounded on original_source/src/units.rs's `convert` match arms;
// every other category is a straight weight ratio.
func Convert(value decimal.Decimal, from, to Unit) (decimal.Decimal, error) {
	if from == to {
		return value, nil
	}
	if from.Category() != to.Category() {
		return decimal.Decimal{}, ErrIncompatibleUnits{from, to}
	}
	if from.Category() == Temperature {
		return convertTemperature(value, from, to), nil
	}
	return value.Mul(ConversionFactor(from, to)), nil
}

var (
	kelvinToCelsiusOffset    = decimal.RequireFromString("-273.15")
	kelvinToFahrenheitScale  = decimal.RequireFromString("1.8")
	kelvinToFahrenheitOffset = decimal.RequireFromString("-459.67")
	celsiusToFahrenheitScale = decimal.RequireFromString("1.8")
	celsiusToFahrenheitAdd   = decimal.NewFromInt(32)
	fahrenheitKelvinOffset   = decimal.RequireFromString("459.67")
	fiveNinths               = decimal.NewFromInt(5).Div(decimal.NewFromInt(9))
	fahrenheitSub            = decimal.NewFromInt(32)
	oneOverOnePointEight     = decimal.NewFromInt(1).Div(decimal.RequireFromString("1.8"))
)

// convertTemperature implements the six Kelvin/Celsius/Fahrenheit pairs
// exactly per original_source/src/units.rs's convert() Temperature arms.
func convertTemperature(value decimal.Decimal, from, to Unit) decimal.Decimal {
	switch {
	case from == Kelvin && to == Celsius:
		return value.Add(kelvinToCelsiusOffset)
	case from == Kelvin && to == Fahrenheit:
		return value.Mul(kelvinToFahrenheitScale).Add(kelvinToFahrenheitOffset)
	case from == Celsius && to == Kelvin:
		return value.Sub(kelvinToCelsiusOffset)
	case from == Celsius && to == Fahrenheit:
		return value.Mul(celsiusToFahrenheitScale).Add(celsiusToFahrenheitAdd)
	case from == Fahrenheit && to == Kelvin:
		return value.Add(fahrenheitKelvinOffset).Mul(fiveNinths)
	case from == Fahrenheit && to == Celsius:
		return value.Sub(fahrenheitSub).Mul(oneOverOnePointEight)
	default:
		return value
	}
}

// lowestInCategory returns the lowest-weight unit sharing cat.
func lowestInCategory(cat Category) Unit {
	lowest := NoUnit
	for u := Unit(1); u < unitCount; u++ {
		if u.Category() != cat {
			continue
		}
		if lowest == NoUnit || u.Weight().LessThan(lowest.Weight()) {
			lowest = u
		}
	}
	return lowest
}

var lowestByCategory map[Category]Unit

func init() {
	lowestByCategory = make(map[Category]Unit)
	for u := Unit(1); u < unitCount; u++ {
		cat := u.Category()
		if cat == NoType || cat == Temperature {
			continue
		}
		cur, ok := lowestByCategory[cat]
		if !ok || u.Weight().LessThan(cur.Weight()) {
			lowestByCategory[cat] = u
		}
	}
}

// ConvertToLowest converts value/unit into the lowest-weight unit of its
// whole category. Mismatched-unit Plus/Minus does not use it: unitalgebra
// converts to the lower-weight unit of the two operands instead.
func ConvertToLowest(value decimal.Decimal, unit Unit) (decimal.Decimal, Unit, error) {
	lowest, ok := lowestByCategory[unit.Category()]
	if !ok {
		return value, unit, nil
	}
	converted, err := Convert(value, unit, lowest)
	if err != nil {
		return decimal.Decimal{}, NoUnit, err
	}
	return converted, lowest, nil
}

type threshold struct {
	atLeast string
	unit    Unit
}

var lengthThresholds = []threshold{
	{"1000000000000000000", LightYear},
	{"1000000", Kilometer},
	{"1000", Meter},
	{"10", Centimeter},
}

var timeThresholds = []threshold{
	{"31556952000000000", Year},
	{"86400000000000", Day},
	{"3600000000000", Hour},
	{"60000000000", Minute},
	{"1000000000", Second},
	{"1000000", Millisecond},
	{"1000", Microsecond},
}

var areaThresholds = []threshold{
	{"1000000000000", SquareKilometer},
	{"10000000000", Hectare},
	{"1000000", SquareMeter},
	{"100", SquareCentimeter},
}

var volumeThresholds = []threshold{
	{"1000000000000000000", CubicKilometer},
	{"1000000000", CubicMeter},
	{"1000000", Liter},
	{"1000", Milliliter},
}

var energyThresholds = []threshold{
	{"3600000000000000000", PetawattHour},
	{"3600000000000000", TerawattHour},
	{"3600000000000", GigawattHour},
	{"3600000000", MegawattHour},
	{"3600000", KilowattHour},
	{"3600", WattHour},
	{"1", Joule},
}

var joulesOnlyThresholds = []threshold{
	{"1000000000000", Terajoule},
	{"1000000000", Gigajoule},
	{"1000000", Megajoule},
	{"1000", Kilojoule},
	{"1", Joule},
}

var powerThresholds = []threshold{
	{"1000000000000000", Petawatt},
	{"1000000000000", Terawatt},
	{"1000000000", Gigawatt},
	{"1000000", Megawatt},
	{"1000", Kilowatt},
	{"1", Watt},
}

var currentThresholds = []threshold{
	{"1000", Kiloampere},
	{"1", Ampere},
}

var resistanceThresholds = []threshold{
	{"1000", Kiloohm},
	{"1", Ohm},
}

var voltageThresholds = []threshold{
	{"1000", Kilovolt},
	{"1", Volt},
}

func floorFallback(cat Category) Unit {
	switch cat {
	case Length:
		return Millimeter
	case Time:
		return Nanosecond
	case Area:
		return SquareMillimeter
	case Volume:
		return CubicMillimeter
	case Energy:
		return Millijoule
	case Power:
		return Milliwatt
	case ElectricCurrent:
		return Milliampere
	case Resistance:
		return Milliohm
	case Voltage:
		return Millivolt
	default:
		return NoUnit
	}
}

// thresholdsFor returns the ordered threshold ladder for a category, or nil
// if the category doesn't participate in ideal-unit normalization.
func thresholdsFor(cat Category, joulesOnly bool) []threshold {
	switch cat {
	case Length:
		return lengthThresholds
	case Time:
		return timeThresholds
	case Area:
		return areaThresholds
	case Volume:
		return volumeThresholds
	case Energy:
		if joulesOnly {
			return joulesOnlyThresholds
		}
		return energyThresholds
	case Power:
		return powerThresholds
	case ElectricCurrent:
		return currentThresholds
	case Resistance:
		return resistanceThresholds
	case Voltage:
		return voltageThresholds
	default:
		return nil
	}
}

func idealize(value decimal.Decimal, unit Unit, joulesOnly bool) decimal.Decimal {
	cat := unit.Category()
	ladder := thresholdsFor(cat, joulesOnly)
	if ladder == nil {
		return value
	}
	base := value.Mul(unit.Weight())
	for _, t := range ladder {
		if base.GreaterThanOrEqual(decimal.RequireFromString(t.atLeast)) {
			return base.Div(t.unit.Weight())
		}
	}
	fallback := floorFallback(cat)
	return base.Div(fallback.Weight())
}

func idealUnitOf(unit Unit, value decimal.Decimal, joulesOnly bool) Unit {
	cat := unit.Category()
	ladder := thresholdsFor(cat, joulesOnly)
	if ladder == nil {
		return unit
	}
	base := value.Mul(unit.Weight())
	for _, t := range ladder {
		if base.GreaterThanOrEqual(decimal.RequireFromString(t.atLeast)) {
			return t.unit
		}
	}
	return floorFallback(cat)
}

// IdealUnit picks a display-friendly unit for value/unit by magnitude,
// per spec.md §4.5's thresholds table. Categories outside
// {Length, Time, Area, Volume, Energy, Power, ElectricCurrent, Resistance,
// Voltage} pass through unchanged.
func IdealUnit(value decimal.Decimal, unit Unit) (decimal.Decimal, Unit) {
	cat := unit.Category()
	if thresholdsFor(cat, false) == nil {
		return value, unit
	}
	target := idealUnitOf(unit, value, false)
	out := idealize(value, unit, false)
	return out, target
}

// IdealJouleUnit is IdealUnit restricted to the joule family (no watt-hour
// ladder) — used when a Power*Time product with a Second-denominated Time
// operand naturally lands in joules (spec.md §4.5).
func IdealJouleUnit(value decimal.Decimal, unit Unit) (decimal.Decimal, Unit) {
	if unit.Category() != Energy {
		return value, unit
	}
	target := idealUnitOf(unit, value, true)
	out := idealize(value, unit, true)
	return out, target
}
