package lexer

import (
	"github.com/calcmark/unitcalc/ast"
	"github.com/calcmark/unitcalc/unitcat"
)

// resolveKeywords is the post-pass that turns transient LexerKeyword tokens
// into real tokens, per spec.md §4.2. DoubleQuotes+Hg collapses two tokens
// into one (InchOfMercury), so this builds a fresh slice rather than
// mutating in place.
func resolveKeywords(tokens []ast.Token) ([]ast.Token, error) {
	out := make([]ast.Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Kind != ast.KindLexerKeyword {
			out = append(out, t)
			continue
		}
		switch t.Keyword {
		case ast.PercentChar:
			if moduloFollows(tokens, i+1) {
				out = append(out, ast.OperatorToken(ast.Modulo))
			} else {
				out = append(out, ast.UnaryToken(ast.Percent))
			}
		case ast.DoubleQuotes:
			if i+1 < len(tokens) && tokens[i+1].Kind == ast.KindLexerKeyword && tokens[i+1].Keyword == ast.Hg {
				out = append(out, ast.UnitToken(unitcat.InchOfMercury))
				i++
			} else {
				out = append(out, ast.UnitToken(unitcat.Inch))
			}
		case ast.Hg:
			out = append(out, ast.UnitToken(unitcat.Hectogram))
		case ast.In:
			if i+1 < len(tokens) && tokens[i+1].Kind == ast.KindUnit {
				out = append(out, ast.TextOpToken(ast.To))
			} else {
				out = append(out, ast.UnitToken(unitcat.Inch))
			}
		default:
			// Per, Mercury, PoundForce, Force, Revolution are resolved by
			// composite-unit folding; leave them for that pass, and
			// requireNoLeftoverKeywords catches anything that survives it.
			out = append(out, t)
		}
	}
	return out, nil
}

// moduloFollows reports whether the token at idx (the token immediately
// after a PercentChar) triggers Modulo rather than the postfix Percent.
func moduloFollows(tokens []ast.Token, idx int) bool {
	if idx >= len(tokens) {
		return false
	}
	t := tokens[idx]
	switch t.Kind {
	case ast.KindNumber, ast.KindConstant, ast.KindFunctionIdentifier, ast.KindUnit, ast.KindNamedNumber:
		return true
	case ast.KindOperator:
		return t.Op == ast.LeftParen
	default:
		return false
	}
}

type compositePattern struct {
	left, right ast.Token
	middlePer   bool // true if middle must be Per or Operator(Divide)
	middleOf    bool // true if middle must be TextOperator(Of)
	result      ast.Token
}

func foldComposites(tokens []ast.Token) []ast.Token {
	patterns := compositePatterns()
	out := make([]ast.Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		if i+2 < len(tokens)+1 && tryFold(tokens, i, patterns, &out) {
			i += 2
			continue
		}
		out = append(out, tokens[i])
	}
	return out
}

func tryFold(tokens []ast.Token, i int, patterns []compositePattern, out *[]ast.Token) bool {
	if i+2 >= len(tokens) {
		return false
	}
	a, b, c := tokens[i], tokens[i+1], tokens[i+2]
	for _, p := range patterns {
		if !sameToken(a, p.left) || !sameToken(c, p.right) {
			continue
		}
		if p.middlePer && !isPerLike(b) {
			continue
		}
		if p.middleOf && !(b.Kind == ast.KindTextOperator && b.TextOp == ast.Of) {
			continue
		}
		*out = append(*out, p.result)
		return true
	}
	return false
}

func isPerLike(t ast.Token) bool {
	if t.Kind == ast.KindLexerKeyword && t.Keyword == ast.Per {
		return true
	}
	return t.Kind == ast.KindOperator && t.Op == ast.Divide
}

func sameToken(a, b ast.Token) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ast.KindUnit:
		return a.Unit == b.Unit
	case ast.KindLexerKeyword:
		return a.Keyword == b.Keyword
	default:
		return true
	}
}

func compositePatterns() []compositePattern {
	u := ast.UnitToken
	patterns := []compositePattern{
		{left: u(unitcat.Kilometer), middlePer: true, right: u(unitcat.Hour), result: u(unitcat.KilometersPerHour)},
		{left: u(unitcat.Mile), middlePer: true, right: u(unitcat.Hour), result: u(unitcat.MilesPerHour)},
		{left: u(unitcat.Meter), middlePer: true, right: u(unitcat.Second), result: u(unitcat.MetersPerSecond)},
		{left: u(unitcat.Foot), middlePer: true, right: u(unitcat.Second), result: u(unitcat.FeetPerSecond)},
		{left: u(unitcat.BritishThermalUnit), middlePer: true, right: u(unitcat.Minute), result: u(unitcat.BritishThermalUnitsPerMinute)},
		{left: u(unitcat.BritishThermalUnit), middlePer: true, right: u(unitcat.Hour), result: u(unitcat.BritishThermalUnitsPerHour)},
		{left: ast.KeywordToken(ast.PoundForce), middlePer: true, right: u(unitcat.SquareInch), result: u(unitcat.PoundsPerSquareInch)},
		{left: u(unitcat.Inch), middleOf: true, right: ast.KeywordToken(ast.Mercury), result: u(unitcat.InchOfMercury)},
		{left: ast.KeywordToken(ast.Revolution), middlePer: true, right: u(unitcat.Minute), result: u(unitcat.RevolutionsPerMinute)},
	}
	return append(patterns, dataRatePatterns()...)
}

// dataRatePatterns folds every storage unit ("kilobit", "megabyte", ...)
// followed by Per/Second into its named per-second rate unit, so phrasings
// like "3 megabytes per second" reach unitalgebra the same way "3 meters
// per second" does — the abbreviated "mbps" spellings are instead direct
// words in unitcat/lookup.go, since they lex as one token with no Per to
// fold against.
func dataRatePatterns() []compositePattern {
	u := ast.UnitToken
	storageToRate := map[unitcat.Unit]unitcat.Unit{
		unitcat.Bit:       unitcat.BitsPerSecond,
		unitcat.Kilobit:   unitcat.KilobitsPerSecond,
		unitcat.Megabit:   unitcat.MegabitsPerSecond,
		unitcat.Gigabit:   unitcat.GigabitsPerSecond,
		unitcat.Terabit:   unitcat.TerabitsPerSecond,
		unitcat.Petabit:   unitcat.PetabitsPerSecond,
		unitcat.Exabit:    unitcat.ExabitsPerSecond,
		unitcat.Zettabit:  unitcat.ZettabitsPerSecond,
		unitcat.Yottabit:  unitcat.YottabitsPerSecond,
		unitcat.Kibibit:   unitcat.KibibitsPerSecond,
		unitcat.Mebibit:   unitcat.MebibitsPerSecond,
		unitcat.Gibibit:   unitcat.GibibitsPerSecond,
		unitcat.Tebibit:   unitcat.TebibitsPerSecond,
		unitcat.Pebibit:   unitcat.PebibitsPerSecond,
		unitcat.Exbibit:   unitcat.ExbibitsPerSecond,
		unitcat.Zebibit:   unitcat.ZebibitsPerSecond,
		unitcat.Yobibit:   unitcat.YobibitsPerSecond,
		unitcat.Byte:      unitcat.BytesPerSecond,
		unitcat.Kilobyte:  unitcat.KilobytesPerSecond,
		unitcat.Megabyte:  unitcat.MegabytesPerSecond,
		unitcat.Gigabyte:  unitcat.GigabytesPerSecond,
		unitcat.Terabyte:  unitcat.TerabytesPerSecond,
		unitcat.Petabyte:  unitcat.PetabytesPerSecond,
		unitcat.Exabyte:   unitcat.ExabytesPerSecond,
		unitcat.Zettabyte: unitcat.ZettabytesPerSecond,
		unitcat.Yottabyte: unitcat.YottabytesPerSecond,
		unitcat.Kibibyte:  unitcat.KibibytesPerSecond,
		unitcat.Mebibyte:  unitcat.MebibytesPerSecond,
		unitcat.Gibibyte:  unitcat.GibibytesPerSecond,
		unitcat.Tebibyte:  unitcat.TebibytesPerSecond,
		unitcat.Pebibyte:  unitcat.PebibytesPerSecond,
		unitcat.Exbibyte:  unitcat.ExbibytesPerSecond,
		unitcat.Zebibyte:  unitcat.ZebibytesPerSecond,
		unitcat.Yobibyte:  unitcat.YobibytesPerSecond,
	}
	patterns := make([]compositePattern, 0, len(storageToRate))
	for storage, rate := range storageToRate {
		patterns = append(patterns, compositePattern{
			left: u(storage), middlePer: true, right: u(unitcat.Second), result: u(rate),
		})
	}
	return patterns
}

func requireNoLeftoverKeywords(tokens []ast.Token) error {
	for _, t := range tokens {
		if t.Kind == ast.KindLexerKeyword {
			return errorf("Invalid string: unresolved %s", t.Keyword)
		}
	}
	return nil
}
