package lexer

import (
	"strings"
	"unicode"

	"github.com/calcmark/unitcalc/ast"
	"github.com/calcmark/unitcalc/unitcat"
	"github.com/rivo/uniseg"
	"github.com/shopspring/decimal"
)

// Lex scans input into a token sequence. allowTrailingOperators drops one
// trailing `+ - * / ^ (` character before scanning. defaultDegree replaces
// the bare word deg/degree/degrees.
func Lex(input string, allowTrailingOperators bool, defaultDegree unitcat.Unit) ([]ast.Token, error) {
	input = strings.ReplaceAll(input, ",", "")
	input = strings.ToLower(input)
	if allowTrailingOperators {
		input = trimTrailingOperator(input)
	}

	s := &scanner{g: graphemeClusters(input), defaultDegree: defaultDegree}
	if err := s.scan(); err != nil {
		return nil, err
	}
	s.balanceParens()
	resolved, err := resolveKeywords(s.tokens)
	if err != nil {
		return nil, err
	}
	s.tokens = foldComposites(resolved)
	if err := requireNoLeftoverKeywords(s.tokens); err != nil {
		return nil, err
	}
	if len(s.tokens) == 0 {
		return nil, errorf("Empty input")
	}
	return s.tokens, nil
}

func graphemeClusters(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

func trimTrailingOperator(s string) string {
	trimmed := strings.TrimRight(s, " \t\n")
	if trimmed == "" {
		return s
	}
	last := trimmed[len(trimmed)-1]
	switch last {
	case '+', '-', '*', '/', '^', '(':
		return trimmed[:len(trimmed)-1]
	default:
		return s
	}
}

func isSpace(c string) bool {
	for _, r := range c {
		return unicode.IsSpace(r)
	}
	return false
}

func isLetterRune(c string) bool {
	for _, r := range c {
		return unicode.IsLetter(r)
	}
	return false
}

func isDigitRune(c string) bool {
	for _, r := range c {
		return unicode.IsDigit(r)
	}
	return false
}

type scanner struct {
	g             []string
	i             int
	defaultDegree unitcat.Unit
	tokens        []ast.Token
}

func (s *scanner) push(t ast.Token) { s.tokens = append(s.tokens, t) }

func (s *scanner) pushUnit(u unitcat.Unit)            { s.push(ast.UnitToken(u)) }
func (s *scanner) pushOperator(o ast.Operator)         { s.push(ast.OperatorToken(o)) }
func (s *scanner) pushFunction(f ast.Function)         { s.push(ast.FunctionToken(f)) }
func (s *scanner) pushNamedNumber(n unitcat.NamedNumber) { s.push(ast.NamedNumberToken(n)) }

func (s *scanner) scan() error {
	for s.i < len(s.g) {
		c := s.g[s.i]
		switch {
		case isSpace(c):
			s.i++
		case c == "+":
			s.push(ast.OperatorToken(ast.Plus))
			s.i++
		case c == "-":
			s.push(ast.OperatorToken(ast.Minus))
			s.i++
		case c == "*":
			s.push(ast.OperatorToken(ast.Multiply))
			s.i++
		case c == "/":
			s.push(ast.OperatorToken(ast.Divide))
			s.i++
		case c == "^":
			s.push(ast.OperatorToken(ast.Caret))
			s.i++
		case c == "!":
			s.push(ast.UnaryToken(ast.Factorial))
			s.i++
		case c == "(":
			s.push(ast.OperatorToken(ast.LeftParen))
			s.i++
		case c == ")":
			s.push(ast.OperatorToken(ast.RightParen))
			s.i++
		case c == "π":
			s.push(ast.ConstantToken(ast.Pi))
			s.i++
		case c == "'":
			s.push(ast.UnitToken(unitcat.Foot))
			s.i++
		case c == `"` || c == "“" || c == "”" || c == "″":
			s.push(ast.KeywordToken(ast.DoubleQuotes))
			s.i++
		case c == "%":
			s.push(ast.KeywordToken(ast.PercentChar))
			s.i++
		case c == "Ω" || c == "Ω":
			s.push(ast.UnitToken(unitcat.Ohm))
			s.i++
		case isDigitRune(c) || c == ".":
			if err := s.scanNumber(); err != nil {
				return err
			}
		case isLetterRune(c):
			if err := s.scanWord(); err != nil {
				return err
			}
		default:
			return errorf("Invalid character: %s", c)
		}
	}
	return nil
}

func (s *scanner) scanNumber() error {
	var sb strings.Builder
	for s.i < len(s.g) && (isDigitRune(s.g[s.i]) || s.g[s.i] == ".") {
		sb.WriteString(s.g[s.i])
		s.i++
	}
	v, err := decimal.NewFromString(sb.String())
	if err != nil {
		return errorf("Invalid number: %s", sb.String())
	}
	s.push(ast.NumberToken(v))
	return nil
}

// skipSpaces advances s.i past any run of whitespace.
func (s *scanner) skipSpaces() {
	for s.i < len(s.g) && isSpace(s.g[s.i]) {
		s.i++
	}
}

// readWordAt reads a letter run starting at pos without consuming it
// (callers commit by assigning the returned next index to s.i).
func (s *scanner) readWordAt(pos int) (word string, next int) {
	var sb strings.Builder
	for pos < len(s.g) && isLetterRune(s.g[pos]) {
		sb.WriteString(s.g[pos])
		pos++
	}
	return sb.String(), pos
}

func (s *scanner) scanWord() error {
	word, next := s.readWordAt(s.i)
	s.i = next
	if s.i < len(s.g) {
		switch s.g[s.i] {
		case "2", "²":
			word += "2"
			s.i++
		case "3", "³":
			word += "3"
			s.i++
		}
	}
	return s.matchWord(word)
}

func (s *scanner) balanceParens() {
	left, right := 0, 0
	for _, t := range s.tokens {
		if t.IsOperator(ast.LeftParen) {
			left++
		} else if t.IsOperator(ast.RightParen) {
			right++
		}
	}
	if left > right {
		for i := 0; i < left-right; i++ {
			s.tokens = append(s.tokens, ast.OperatorToken(ast.RightParen))
		}
	} else if right > left {
		prefix := make([]ast.Token, right-left)
		for i := range prefix {
			prefix[i] = ast.OperatorToken(ast.LeftParen)
		}
		s.tokens = append(prefix, s.tokens...)
	}
}
