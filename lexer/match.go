package lexer

import (
	"github.com/calcmark/unitcalc/ast"
	"github.com/calcmark/unitcalc/unitcat"
)

// matchWord dispatches a lowercased word to a token, possibly consuming
// further words via lookahead (multi-word units, "multiplied by", etc.).
// Grounded on original_source/src/lexer.rs's word-match table.
func (s *scanner) matchWord(word string) error {
	switch word {
	case "in":
		s.push(ast.KeywordToken(ast.In))
		return nil
	case "to":
		s.push(ast.TextOpToken(ast.To))
		return nil
	case "of":
		s.push(ast.TextOpToken(ast.Of))
		return nil
	case "pi":
		s.push(ast.ConstantToken(ast.Pi))
		return nil
	case "e":
		s.push(ast.ConstantToken(ast.E))
		return nil
	case "per":
		s.push(ast.KeywordToken(ast.Per))
		return nil
	case "hg":
		s.push(ast.KeywordToken(ast.Hg))
		return nil
	case "mercury":
		s.push(ast.KeywordToken(ast.Mercury))
		return nil
	case "force":
		s.push(ast.KeywordToken(ast.Force))
		return nil
	case "lbf":
		s.push(ast.KeywordToken(ast.PoundForce))
		return nil
	case "r", "rev", "revolution", "revolutions":
		s.push(ast.KeywordToken(ast.Revolution))
		return nil
	case "deg", "degree", "degrees":
		s.pushUnit(s.defaultDegree)
		return nil
	case "multiplied":
		return s.requireNextWord(word, map[string]func(){"by": func() { s.pushOperator(ast.Multiply) }})
	case "divided":
		return s.requireNextWord(word, map[string]func(){"by": func() { s.pushOperator(ast.Divide) }})
	case "nautical":
		return s.requireNextWord(word, map[string]func(){
			"mile": func() { s.pushUnit(unitcat.NauticalMile) }, "miles": func() { s.pushUnit(unitcat.NauticalMile) },
		})
	case "light":
		return s.requireNextWord(word, map[string]func(){
			"yr": func() { s.pushUnit(unitcat.LightYear) }, "yrs": func() { s.pushUnit(unitcat.LightYear) },
			"year": func() { s.pushUnit(unitcat.LightYear) }, "years": func() { s.pushUnit(unitcat.LightYear) },
			"sec": func() { s.pushUnit(unitcat.LightSecond) }, "secs": func() { s.pushUnit(unitcat.LightSecond) },
			"second": func() { s.pushUnit(unitcat.LightSecond) }, "seconds": func() { s.pushUnit(unitcat.LightSecond) },
		})
	case "sq", "square":
		return s.requireNextWordFunc(word, func(word2 string) bool {
			base, ok := lengthWordUnits[word2]
			if !ok {
				return false
			}
			s.pushUnit(squareUnits[base])
			return true
		})
	case "cubic":
		return s.requireNextWordFunc(word, func(word2 string) bool {
			base, ok := lengthWordUnits[word2]
			if !ok {
				return false
			}
			s.pushUnit(cubicUnits[base])
			return true
		})
	case "fl", "fluid":
		return s.requireNextWord(word, map[string]func(){
			"oz": func() { s.pushUnit(unitcat.FluidOunce) }, "ounce": func() { s.pushUnit(unitcat.FluidOunce) }, "ounces": func() { s.pushUnit(unitcat.FluidOunce) },
		})
	case "oil":
		return s.requireNextWord(word, map[string]func(){
			"barrel": func() { s.pushUnit(unitcat.OilBarrel) }, "barrels": func() { s.pushUnit(unitcat.OilBarrel) },
		})
	case "short":
		return s.requireNextWord(word, map[string]func(){
			"ton": func() { s.pushUnit(unitcat.ShortTon) }, "tons": func() { s.pushUnit(unitcat.ShortTon) },
			"tonne": func() { s.pushUnit(unitcat.ShortTon) }, "tonnes": func() { s.pushUnit(unitcat.ShortTon) },
		})
	case "long":
		return s.requireNextWord(word, map[string]func(){
			"ton": func() { s.pushUnit(unitcat.LongTon) }, "tons": func() { s.pushUnit(unitcat.LongTon) },
			"tonne": func() { s.pushUnit(unitcat.LongTon) }, "tonnes": func() { s.pushUnit(unitcat.LongTon) },
		})
	case "metric":
		return s.requireNextWord(word, map[string]func(){
			"ton": func() { s.pushUnit(unitcat.MetricTon) }, "tons": func() { s.pushUnit(unitcat.MetricTon) },
			"tonne": func() { s.pushUnit(unitcat.MetricTon) }, "tonnes": func() { s.pushUnit(unitcat.MetricTon) },
			"hp": func() { s.pushUnit(unitcat.MetricHorsepower) }, "hps": func() { s.pushUnit(unitcat.MetricHorsepower) },
			"horsepower": func() { s.pushUnit(unitcat.MetricHorsepower) }, "horsepowers": func() { s.pushUnit(unitcat.MetricHorsepower) },
		})
	case "british":
		return s.matchBritishThermalUnit(word)
	case "newton":
		return s.matchNewton(word)
	case "pound", "pounds":
		return s.matchPound()
	}

	if op, ok := simpleOperatorWords[word]; ok {
		s.pushOperator(op)
		return nil
	}
	if fn, ok := functionWords[word]; ok {
		s.pushFunction(fn)
		return nil
	}
	if n, ok := unitcat.MatchNamedNumber(word); ok {
		s.pushNamedNumber(n)
		return nil
	}
	if wf, ok := wattFamily[word]; ok {
		return s.matchWattFamily(wf.bare, wf.withHour)
	}
	if u, ok := unitcat.LookupWord(word); ok {
		s.pushUnit(u)
		return nil
	}
	return errorf("Invalid string: %s", word)
}

// requireNextWord skips whitespace, reads the next word, and dispatches to
// the matching action — or a LexError if nothing matches.
func (s *scanner) requireNextWord(word1 string, actions map[string]func()) error {
	return s.requireNextWordFunc(word1, func(word2 string) bool {
		action, ok := actions[word2]
		if !ok {
			return false
		}
		action()
		return true
	})
}

func (s *scanner) requireNextWordFunc(word1 string, try func(word2 string) bool) error {
	save := s.i
	s.skipSpaces()
	word2, next := s.readWordAt(s.i)
	if word2 == "" || !try(word2) {
		s.i = save
		return errorf("Invalid string: %s %s", word1, word2)
	}
	s.i = next
	return nil
}

func (s *scanner) matchBritishThermalUnit(word string) error {
	save := s.i
	s.skipSpaces()
	word2, next := s.readWordAt(s.i)
	if word2 != "thermal" {
		s.i = save
		return errorf("Invalid string: %s %s", word, word2)
	}
	s.i = next
	s.skipSpaces()
	word3, next3 := s.readWordAt(s.i)
	if word3 != "unit" && word3 != "units" {
		return errorf("Invalid string: %s thermal %s", word, word3)
	}
	s.i = next3
	s.pushUnit(unitcat.BritishThermalUnit)
	return nil
}

func (s *scanner) matchNewton(word string) error {
	save := s.i
	if s.i < len(s.g) && s.g[s.i] == "-" {
		s.i++
	} else {
		s.skipSpaces()
	}
	word2, next := s.readWordAt(s.i)
	switch word2 {
	case "meter", "meters", "metre", "metres":
		s.i = next
		s.pushUnit(unitcat.NewtonMeter)
		return nil
	default:
		s.i = save
		return errorf("Invalid string: %s %s", word, word2)
	}
}

func (s *scanner) matchPound() error {
	save := s.i
	if s.i < len(s.g) && s.g[s.i] == "-" {
		s.i++
	} else {
		s.skipSpaces()
	}
	word2, next := s.readWordAt(s.i)
	if word2 == "force" {
		s.i = next
		s.push(ast.KeywordToken(ast.PoundForce))
		return nil
	}
	s.i = save
	s.pushUnit(unitcat.Pound)
	return nil
}

// matchWattFamily implements the optional "watt [hour(s)]" suffix: the
// bare power unit if no matching suffix follows, the energy unit if it
// does. Unlike the required multi-word phrases above, an unmatched
// lookahead here is not an error — the lookahead word is left unconsumed.
func (s *scanner) matchWattFamily(bare, withHour unitcat.Unit) error {
	save := s.i
	s.skipSpaces()
	word2, next := s.readWordAt(s.i)
	if hourSuffixes[word2] {
		s.i = next
		s.pushUnit(withHour)
		return nil
	}
	s.i = save
	s.pushUnit(bare)
	return nil
}
