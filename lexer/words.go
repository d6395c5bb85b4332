package lexer

import (
	"github.com/calcmark/unitcalc/ast"
	"github.com/calcmark/unitcalc/unitcat"
)

// simpleOperatorWords are whole-word spellings of operators.
var simpleOperatorWords = map[string]ast.Operator{
	"plus":  ast.Plus,
	"minus": ast.Minus,
	"times": ast.Multiply,
	"mod":   ast.Modulo,
}

// functionWords map a word to a Function identifier.
var functionWords = map[string]ast.Function{
	"sqrt":  ast.Sqrt,
	"cbrt":  ast.Cbrt,
	"log":   ast.Log,
	"ln":    ast.Ln,
	"exp":   ast.Exp,
	"round": ast.Round,
	"rint":  ast.Round,
	"ceil":  ast.Ceil,
	"floor": ast.Floor,
	"abs":   ast.Abs,
	"fabs":  ast.Abs,
	"sin":   ast.Sin,
	"cos":   ast.Cos,
	"tan":   ast.Tan,
}

// lengthWordUnits maps a bare length word to its Unit — used by the
// "square"/"cubic" multi-word lookahead to derive the Area/Volume sibling.
var lengthWordUnits = map[string]unitcat.Unit{
	"mm": unitcat.Millimeter, "millimeter": unitcat.Millimeter, "millimeters": unitcat.Millimeter, "millimetre": unitcat.Millimeter, "millimetres": unitcat.Millimeter,
	"cm": unitcat.Centimeter, "centimeter": unitcat.Centimeter, "centimeters": unitcat.Centimeter, "centimetre": unitcat.Centimeter, "centimetres": unitcat.Centimeter,
	"dm": unitcat.Decimeter, "decimeter": unitcat.Decimeter, "decimeters": unitcat.Decimeter, "decimetre": unitcat.Decimeter, "decimetres": unitcat.Decimeter,
	"m": unitcat.Meter, "meter": unitcat.Meter, "meters": unitcat.Meter, "metre": unitcat.Meter, "metres": unitcat.Meter,
	"km": unitcat.Kilometer, "kilometer": unitcat.Kilometer, "kilometers": unitcat.Kilometer, "kilometre": unitcat.Kilometer, "kilometres": unitcat.Kilometer,
	"in": unitcat.Inch, "inch": unitcat.Inch, "inches": unitcat.Inch,
	"ft": unitcat.Foot, "foot": unitcat.Foot, "feet": unitcat.Foot,
	"yd": unitcat.Yard, "yard": unitcat.Yard, "yards": unitcat.Yard,
	"mi": unitcat.Mile, "mile": unitcat.Mile, "miles": unitcat.Mile,
}

var squareUnits = map[unitcat.Unit]unitcat.Unit{
	unitcat.Millimeter: unitcat.SquareMillimeter,
	unitcat.Centimeter: unitcat.SquareCentimeter,
	unitcat.Decimeter:  unitcat.SquareDecimeter,
	unitcat.Meter:      unitcat.SquareMeter,
	unitcat.Kilometer:  unitcat.SquareKilometer,
	unitcat.Inch:       unitcat.SquareInch,
	unitcat.Foot:       unitcat.SquareFoot,
	unitcat.Yard:       unitcat.SquareYard,
	unitcat.Mile:       unitcat.SquareMile,
}

var cubicUnits = map[unitcat.Unit]unitcat.Unit{
	unitcat.Millimeter: unitcat.CubicMillimeter,
	unitcat.Centimeter: unitcat.CubicCentimeter,
	unitcat.Decimeter:  unitcat.CubicDecimeter,
	unitcat.Meter:      unitcat.CubicMeter,
	unitcat.Kilometer:  unitcat.CubicKilometer,
	unitcat.Inch:       unitcat.CubicInch,
	unitcat.Foot:       unitcat.CubicFoot,
	unitcat.Yard:       unitcat.CubicYard,
	unitcat.Mile:       unitcat.CubicMile,
}

var hourSuffixes = map[string]bool{"hr": true, "hrs": true, "hour": true, "hours": true}

var wattFamily = map[string]struct {
	bare, withHour unitcat.Unit
}{
	"watt":      {unitcat.Watt, unitcat.WattHour},
	"kilowatt":  {unitcat.Kilowatt, unitcat.KilowattHour},
	"megawatt":  {unitcat.Megawatt, unitcat.MegawattHour},
	"gigawatt":  {unitcat.Gigawatt, unitcat.GigawattHour},
	"terawatt":  {unitcat.Terawatt, unitcat.TerawattHour},
	"petawatt":  {unitcat.Petawatt, unitcat.PetawattHour},
}
