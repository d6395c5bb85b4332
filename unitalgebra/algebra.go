package unitalgebra

import (
	"github.com/calcmark/unitcalc/numeric"
	"github.com/calcmark/unitcalc/unitcat"
	"github.com/shopspring/decimal"
)

// Add returns left + right, converting the higher-weight operand down to
// the lower-weight unit when they share a category but differ in unit
// (spec.md §9 Open Question 3: the lower-weight unit, not a hardcoded
// Millimeter).
func Add(left, right Quantity) (Quantity, error) {
	if left.Unit == right.Unit {
		return New(left.Value.Add(right.Value), left.Unit), nil
	}
	if left.Unit.Category() != right.Unit.Category() || left.Unit.Category() == unitcat.Temperature {
		return Quantity{}, errorf("Cannot add %s and %s", left.Unit, right.Unit)
	}
	l, r, err := convertToLowest(left, right)
	if err != nil {
		return Quantity{}, err
	}
	return New(l.Value.Add(r.Value), l.Unit), nil
}

// Subtract returns left - right, same unit-resolution rule as Add.
func Subtract(left, right Quantity) (Quantity, error) {
	if left.Unit == right.Unit {
		return New(left.Value.Sub(right.Value), left.Unit), nil
	}
	if left.Unit.Category() != right.Unit.Category() || left.Unit.Category() == unitcat.Temperature {
		return Quantity{}, errorf("Cannot subtract %s by %s", left.Unit, right.Unit)
	}
	l, r, err := convertToLowest(left, right)
	if err != nil {
		return Quantity{}, err
	}
	return New(l.Value.Sub(r.Value), l.Unit), nil
}

// speedToLength maps a Speed unit to the Length unit its product with Time
// should land in, per spec.md §4.5's multiply table.
var speedToLength = map[unitcat.Unit]unitcat.Unit{
	unitcat.KilometersPerHour: unitcat.Kilometer,
	unitcat.MetersPerSecond:   unitcat.Meter,
	unitcat.MilesPerHour:      unitcat.Mile,
	unitcat.FeetPerSecond:     unitcat.Foot,
	unitcat.Knot:              unitcat.NauticalMile,
}

// dataRateToStorage maps each DataTransferRate unit to its DigitalStorage
// family member, used by DataTransferRate*Time.
var dataRateToStorage = map[unitcat.Unit]unitcat.Unit{
	unitcat.BitsPerSecond:        unitcat.Bit,
	unitcat.KilobitsPerSecond:    unitcat.Kilobit,
	unitcat.MegabitsPerSecond:    unitcat.Megabit,
	unitcat.GigabitsPerSecond:    unitcat.Gigabit,
	unitcat.TerabitsPerSecond:    unitcat.Terabit,
	unitcat.PetabitsPerSecond:    unitcat.Petabit,
	unitcat.ExabitsPerSecond:     unitcat.Exabit,
	unitcat.ZettabitsPerSecond:   unitcat.Zettabit,
	unitcat.YottabitsPerSecond:   unitcat.Yottabit,
	unitcat.KibibitsPerSecond:    unitcat.Kibibit,
	unitcat.MebibitsPerSecond:    unitcat.Mebibit,
	unitcat.GibibitsPerSecond:    unitcat.Gibibit,
	unitcat.TebibitsPerSecond:    unitcat.Tebibit,
	unitcat.PebibitsPerSecond:    unitcat.Pebibit,
	unitcat.ExbibitsPerSecond:    unitcat.Exbibit,
	unitcat.ZebibitsPerSecond:    unitcat.Zebibit,
	unitcat.YobibitsPerSecond:    unitcat.Yobibit,
	unitcat.BytesPerSecond:       unitcat.Byte,
	unitcat.KilobytesPerSecond:   unitcat.Kilobyte,
	unitcat.MegabytesPerSecond:   unitcat.Megabyte,
	unitcat.GigabytesPerSecond:   unitcat.Gigabyte,
	unitcat.TerabytesPerSecond:   unitcat.Terabyte,
	unitcat.PetabytesPerSecond:   unitcat.Petabyte,
	unitcat.ExabytesPerSecond:    unitcat.Exabyte,
	unitcat.ZettabytesPerSecond:  unitcat.Zettabyte,
	unitcat.YottabytesPerSecond:  unitcat.Yottabyte,
	unitcat.KibibytesPerSecond:   unitcat.Kibibyte,
	unitcat.MebibytesPerSecond:   unitcat.Mebibyte,
	unitcat.GibibytesPerSecond:   unitcat.Gibibyte,
	unitcat.TebibytesPerSecond:   unitcat.Tebibyte,
	unitcat.PebibytesPerSecond:   unitcat.Pebibyte,
	unitcat.ExbibytesPerSecond:   unitcat.Exbibyte,
	unitcat.ZebibytesPerSecond:   unitcat.Zebibyte,
	unitcat.YobibytesPerSecond:   unitcat.Yobibyte,
}

// lengthTimeToSpeed maps a (Length, Time) unit pair to the named Speed
// unit, for Length/Time division, per spec.md §4.5's divide table.
var lengthTimeToSpeed = map[[2]unitcat.Unit]unitcat.Unit{
	{unitcat.Kilometer, unitcat.Hour}:       unitcat.KilometersPerHour,
	{unitcat.Meter, unitcat.Second}:         unitcat.MetersPerSecond,
	{unitcat.Mile, unitcat.Hour}:            unitcat.MilesPerHour,
	{unitcat.Foot, unitcat.Second}:          unitcat.FeetPerSecond,
	{unitcat.NauticalMile, unitcat.Hour}:    unitcat.Knot,
}

// Multiply returns left * right, dispatching on the operands' categories.
// Commutative via a single try-swap (spec.md §9: rewritten here as an
// explicit operand-order normalization instead of recursive retry, per the
// suggested rewrite).
func Multiply(left, right Quantity) (Quantity, error) {
	if right.Unit == unitcat.NoUnit && left.Unit != unitcat.NoUnit {
		left, right = right, left
	}
	l, r := left, right
	lc, rc := l.Unit.Category(), r.Unit.Category()

	switch {
	case l.Unit == unitcat.NoUnit && r.Unit == unitcat.NoUnit:
		return New(l.Value.Mul(r.Value), unitcat.NoUnit), nil
	case lc == unitcat.Temperature || rc == unitcat.Temperature:
		return Quantity{}, errorf("Cannot multiply %s and %s", left.Unit, right.Unit)
	case l.Unit == unitcat.NoUnit:
		return New(l.Value.Mul(r.Value), r.Unit), nil
	case lc == unitcat.Length && rc == unitcat.Length:
		return idealize(New(baseValue(l).Mul(baseValue(r)), unitcat.SquareMillimeter)), nil
	case (lc == unitcat.Length && rc == unitcat.Area) || (lc == unitcat.Area && rc == unitcat.Length):
		return idealize(New(baseValue(l).Mul(baseValue(r)), unitcat.CubicMillimeter)), nil
	case lc == unitcat.Speed && rc == unitcat.Time:
		return multiplySpeedTime(l, r)
	case lc == unitcat.Time && rc == unitcat.Speed:
		return multiplySpeedTime(r, l)
	case lc == unitcat.DataTransferRate && rc == unitcat.Time:
		return multiplyRateTime(l, r)
	case lc == unitcat.Time && rc == unitcat.DataTransferRate:
		return multiplyRateTime(r, l)
	case lc == unitcat.Voltage && rc == unitcat.ElectricCurrent:
		return idealize(New(baseValue(l).Mul(baseValue(r)), unitcat.Watt)), nil
	case lc == unitcat.ElectricCurrent && rc == unitcat.Voltage:
		return idealize(New(baseValue(l).Mul(baseValue(r)), unitcat.Watt)), nil
	case lc == unitcat.ElectricCurrent && rc == unitcat.Resistance:
		// spec.md §9 Open Question 1: Voltage, not the source's Watt.
		return idealize(New(baseValue(l).Mul(baseValue(r)), unitcat.Volt)), nil
	case lc == unitcat.Resistance && rc == unitcat.ElectricCurrent:
		return idealize(New(baseValue(l).Mul(baseValue(r)), unitcat.Volt)), nil
	case lc == unitcat.Power && rc == unitcat.Time:
		return multiplyPowerTime(l, r)
	case lc == unitcat.Time && rc == unitcat.Power:
		return multiplyPowerTime(r, l)
	default:
		return Quantity{}, errorf("Cannot multiply %s and %s", left.Unit, right.Unit)
	}
}

func multiplySpeedTime(speed, t Quantity) (Quantity, error) {
	hours, err := convertQ(t, unitcat.Hour)
	if err != nil {
		return Quantity{}, err
	}
	kph := baseValue(speed)
	km := New(kph.Mul(hours.Value), unitcat.Kilometer)
	final, ok := speedToLength[speed.Unit]
	if !ok {
		final = unitcat.Meter
	}
	return convertQ(km, final)
}

func multiplyRateTime(rate, t Quantity) (Quantity, error) {
	seconds, err := convertQ(t, unitcat.Second)
	if err != nil {
		return Quantity{}, err
	}
	bits := baseValue(rate)
	storage := New(bits.Mul(seconds.Value), unitcat.Bit)
	final, ok := dataRateToStorage[rate.Unit]
	if !ok {
		final = unitcat.Bit
	}
	return convertQ(storage, final)
}

func multiplyPowerTime(power, t Quantity) (Quantity, error) {
	result := baseValue(power).Mul(t.Value).Mul(t.Unit.Weight()).Div(unitcat.Second.Weight())
	joules := New(result, unitcat.Joule)
	if t.Unit == unitcat.Second {
		return idealizeJoule(joules), nil
	}
	return idealize(joules), nil
}

// Divide returns left / right.
func Divide(left, right Quantity) (Quantity, error) {
	lc, rc := left.Unit.Category(), right.Unit.Category()
	switch {
	case left.Unit == unitcat.NoUnit && right.Unit == unitcat.NoUnit:
		return New(left.Value.Div(right.Value), unitcat.NoUnit), nil
	case lc == unitcat.Temperature || rc == unitcat.Temperature:
		return Quantity{}, errorf("Cannot divide %s by %s", left.Unit, right.Unit)
	case right.Unit == unitcat.NoUnit:
		return New(left.Value.Div(right.Value), left.Unit), nil
	case lc == rc:
		l, r, err := convertToLowest(left, right)
		if err != nil {
			return Quantity{}, err
		}
		return New(l.Value.Div(r.Value), unitcat.NoUnit), nil
	case lc == unitcat.Area && rc == unitcat.Length:
		return idealize(New(baseValue(left).Div(baseValue(right)), unitcat.Millimeter)), nil
	case lc == unitcat.Volume && rc == unitcat.Area:
		return idealize(New(baseValue(left).Div(baseValue(right)), unitcat.Millimeter)), nil
	case lc == unitcat.Volume && rc == unitcat.Length:
		return idealize(New(baseValue(left).Div(baseValue(right)), unitcat.SquareMillimeter)), nil
	case lc == unitcat.Length && rc == unitcat.Time:
		return divideLengthTime(left, right)
	case lc == unitcat.Length && rc == unitcat.Speed:
		return divideLengthSpeed(left, right)
	case lc == unitcat.DigitalStorage && rc == unitcat.DataTransferRate:
		return divideStorageRate(left, right)
	case lc == unitcat.Power && rc == unitcat.ElectricCurrent:
		return idealize(New(baseValue(left).Div(baseValue(right)), unitcat.Volt)), nil
	case lc == unitcat.Voltage && rc == unitcat.ElectricCurrent:
		return idealize(New(baseValue(left).Div(baseValue(right)), unitcat.Ohm)), nil
	case lc == unitcat.Voltage && rc == unitcat.Resistance:
		return idealize(New(baseValue(left).Div(baseValue(right)), unitcat.Ampere)), nil
	case lc == unitcat.Power && rc == unitcat.Voltage:
		return idealize(New(baseValue(left).Div(baseValue(right)), unitcat.Ampere)), nil
	case lc == unitcat.Energy && rc == unitcat.Time:
		result := baseValue(left).Div(baseValue(right).Div(unitcat.Second.Weight()))
		return idealize(New(result, unitcat.Watt)), nil
	default:
		return Quantity{}, errorf("Cannot divide %s by %s", left.Unit, right.Unit)
	}
}

func divideLengthTime(length, t Quantity) (Quantity, error) {
	km, err := convertQ(length, unitcat.Kilometer)
	if err != nil {
		return Quantity{}, err
	}
	hours, err := convertQ(t, unitcat.Hour)
	if err != nil {
		return Quantity{}, err
	}
	final, ok := lengthTimeToSpeed[[2]unitcat.Unit{length.Unit, t.Unit}]
	if !ok {
		final = unitcat.KilometersPerHour
	}
	kph := New(km.Value.Div(hours.Value), unitcat.KilometersPerHour)
	return convertQ(kph, final)
}

func divideLengthSpeed(length, speed Quantity) (Quantity, error) {
	km, err := convertQ(length, unitcat.Kilometer)
	if err != nil {
		return Quantity{}, err
	}
	kph, err := convertQ(speed, unitcat.KilometersPerHour)
	if err != nil {
		return Quantity{}, err
	}
	return idealize(New(km.Value.Div(kph.Value), unitcat.Hour)), nil
}

func divideStorageRate(storage, rate Quantity) (Quantity, error) {
	bits, err := convertQ(storage, unitcat.Bit)
	if err != nil {
		return Quantity{}, err
	}
	bps, err := convertQ(rate, unitcat.BitsPerSecond)
	if err != nil {
		return Quantity{}, err
	}
	// Not idealized: spec.md §8's "1 GB / 1 MBps" worked example expects
	// the plain Second answer (1000), not the Time ladder's Minute tier
	// original_source/src/units.rs's to_ideal_unit would promote it to.
	return New(bits.Value.Div(bps.Value), unitcat.Second), nil
}

// Modulo returns left % right — same-category only, non-Temperature.
func Modulo(left, right Quantity) (Quantity, error) {
	lc, rc := left.Unit.Category(), right.Unit.Category()
	if lc == unitcat.Temperature || rc == unitcat.Temperature || lc != rc {
		return Quantity{}, errorf("Cannot modulo %s by %s", left.Unit, right.Unit)
	}
	l, r, err := convertToLowest(left, right)
	if err != nil {
		return Quantity{}, err
	}
	return New(l.Value.Mod(r.Value), l.Unit), nil
}

// Pow returns left ^ right. Only NoUnit exponents are supported; Length
// raised to an exponent of 2 or 3 promotes to Area/Volume.
func Pow(left, right Quantity) (Quantity, error) {
	if right.Unit != unitcat.NoUnit {
		return Quantity{}, errorf("Cannot raise %s to a power with unit %s", left.Unit, right.Unit)
	}
	if left.Unit == unitcat.NoUnit {
		return New(numeric.Pow(left.Value, right.Value), unitcat.NoUnit), nil
	}
	if right.Value.Equal(decimalOne) {
		return left, nil
	}
	switch {
	case left.Unit.Category() == unitcat.Length && right.Value.Equal(decimalTwo):
		base := baseValue(left)
		return idealize(New(base.Mul(base), unitcat.SquareMillimeter)), nil
	case left.Unit.Category() == unitcat.Length && right.Value.Equal(decimalThree):
		base := baseValue(left)
		return idealize(New(base.Mul(base).Mul(base), unitcat.CubicMillimeter)), nil
	default:
		return Quantity{}, errorf("Cannot raise %s to a power", left.Unit)
	}
}

var (
	decimalOne   = decimal.NewFromInt(1)
	decimalTwo   = decimal.NewFromInt(2)
	decimalThree = decimal.NewFromInt(3)
)
