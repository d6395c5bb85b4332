// Package parser is a recursive precedence climber: it turns the lexer's
// flat token sequence into an ast.Node expression tree. Grounded on
// original_source/src/parser.rs's seven-level parse_level_1..7 ladder, in
// the teacher's Parser-struct idiom (parser/parser.go's currentToken/peek/
// advance/expect shape).
package parser

import (
	"github.com/calcmark/unitcalc/ast"
	"github.com/calcmark/unitcalc/unitcat"
)

// Parser walks a token slice left to right, never backtracking past the
// current position except via the explicit lookahead helpers below.
type Parser struct {
	tokens []ast.Token
	pos    int
}

// New creates a Parser over tokens.
func New(tokens []ast.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes tokens into an expression tree. All tokens must be
// consumed — anything left over is a stray-token ParseError.
func Parse(tokens []ast.Token) (*ast.Node, error) {
	p := New(tokens)
	node, err := p.parseTextOperator()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, errorf(p.pos, "Expected end of input, found %v", p.current())
	}
	return node, nil
}

func (p *Parser) current() (ast.Token, bool) {
	if p.pos >= len(p.tokens) {
		return ast.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) at(offset int) (ast.Token, bool) {
	i := p.pos + offset
	if i < 0 || i >= len(p.tokens) {
		return ast.Token{}, false
	}
	return p.tokens[i], true
}

func (p *Parser) previous() (ast.Token, bool) {
	return p.at(-1)
}

func (p *Parser) advance() {
	p.pos++
}

// level 1 (lowest): To, Of — left-associative.
func (p *Parser) parseTextOperator() (*ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.current()
		if !ok || tok.Kind != ast.KindTextOperator {
			return left, nil
		}
		start := p.pos
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.Binary(tok, left, right, spanFrom(start))
	}
}

// level 2: Plus, Minus — left-associative.
func (p *Parser) parseAdditive() (*ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.current()
		if !ok || tok.Kind != ast.KindOperator || (tok.Op != ast.Plus && tok.Op != ast.Minus) {
			return left, nil
		}
		start := p.pos
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = ast.Binary(tok, left, right, spanFrom(start))
	}
}

// level 3: Multiply, Divide, Modulo, implicit multiplication, foot-inch.
func (p *Parser) parseTerm() (*ast.Node, error) {
	if node, ok, err := p.tryFootInch(); err != nil {
		return nil, err
	} else if ok {
		return node, nil
	}

	left, err := p.parseExponent()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.current()
		if ok && tok.Kind == ast.KindOperator && (tok.Op == ast.Multiply || tok.Op == ast.Divide || tok.Op == ast.Modulo) {
			start := p.pos
			p.advance()
			right, err := p.parseExponent()
			if err != nil {
				return nil, err
			}
			left = ast.Binary(tok, left, right, spanFrom(start))
			continue
		}
		if p.impliesMultiply() {
			start := p.pos
			right, err := p.parseExponent()
			if err != nil {
				return nil, err
			}
			left = ast.Binary(ast.OperatorToken(ast.Multiply), left, right, spanFrom(start))
			continue
		}
		return left, nil
	}
}

// impliesMultiply reports whether the current token should be treated as
// an implicit-multiplication operand given the previously parsed token,
// per spec.md §4.3's per-variant previous/current table. A current
// NamedNumber follows Number's rule and is also implied after a preceding
// Number, so "2 billion" multiplies; as the previous token a NamedNumber
// implies nothing (see DESIGN.md's Open Question notes).
func (p *Parser) impliesMultiply() bool {
	cur, ok := p.current()
	if !ok {
		return false
	}
	prev, hasPrev := p.previous()
	if !hasPrev {
		return false
	}
	prevIsNumber := prev.Kind == ast.KindNumber
	prevIsConstant := prev.Kind == ast.KindConstant
	prevIsRightParen := prev.Kind == ast.KindOperator && prev.Op == ast.RightParen

	switch cur.Kind {
	case ast.KindNumber, ast.KindNamedNumber:
		return prevIsConstant || prevIsRightParen || (cur.Kind == ast.KindNamedNumber && prevIsNumber)
	case ast.KindConstant:
		return prevIsNumber || prevIsRightParen
	case ast.KindFunctionIdentifier:
		return prevIsNumber || prevIsRightParen
	case ast.KindOperator:
		return cur.Op == ast.LeftParen && (prevIsNumber || prevIsConstant || prevIsRightParen)
	default:
		return false
	}
}

// tryFootInch looks for the four-token Number Foot Number Inch sequence at
// the current position and, if found, emits `Plus(Foot(n1), Inch(n2))` and
// advances past it.
func (p *Parser) tryFootInch() (*ast.Node, bool, error) {
	t0, ok0 := p.current()
	t1, ok1 := p.at(1)
	t2, ok2 := p.at(2)
	t3, ok3 := p.at(3)
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return nil, false, nil
	}
	if t0.Kind != ast.KindNumber || !isUnit(t1, unitcat.Foot) || t2.Kind != ast.KindNumber || !isUnit(t3, unitcat.Inch) {
		return nil, false, nil
	}
	start := p.pos
	feet := ast.Unary(t1, ast.Leaf(t0, spanFrom(start)), spanFrom(start))
	inches := ast.Unary(t3, ast.Leaf(t2, spanFrom(start+2)), spanFrom(start+2))
	p.pos += 4
	return ast.Binary(ast.OperatorToken(ast.Plus), feet, inches, spanFrom(start)), true, nil
}

func isUnit(t ast.Token, u unitcat.Unit) bool {
	return t.Kind == ast.KindUnit && t.Unit == u
}

// level 4: Caret, left-associative (spec.md §9 confirms left-, not
// right-associative, despite the teacher's own Caret being right-assoc).
func (p *Parser) parseExponent() (*ast.Node, error) {
	left, err := p.parseUnaryMinus()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.current()
		if !ok || tok.Kind != ast.KindOperator || tok.Op != ast.Caret {
			return left, nil
		}
		start := p.pos
		p.advance()
		right, err := p.parseUnaryMinus()
		if err != nil {
			return nil, err
		}
		left = ast.Binary(tok, left, right, spanFrom(start))
	}
}

// level 5: unary minus, binding tighter than Caret.
func (p *Parser) parseUnaryMinus() (*ast.Node, error) {
	tok, ok := p.current()
	if !ok || tok.Kind != ast.KindOperator || tok.Op != ast.Minus {
		return p.parsePostfix()
	}
	start := p.pos
	p.advance()
	child, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	return ast.Unary(ast.NegativeToken(), child, spanFrom(start)), nil
}

// level 6: Factorial, Percent (repeatable postfix), Unit suffix
// (non-repeatable postfix — ends the loop once applied).
func (p *Parser) parsePostfix() (*ast.Node, error) {
	node, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.current()
		if !ok {
			return node, nil
		}
		if tok.Kind == ast.KindUnaryOperator && (tok.UnaryOp == ast.Factorial || tok.UnaryOp == ast.Percent) {
			start := p.pos
			p.advance()
			node = ast.Unary(tok, node, spanFrom(start))
			continue
		}
		if tok.Kind == ast.KindUnit {
			start := p.pos
			p.advance()
			return ast.Unary(tok, node, spanFrom(start)), nil
		}
		return node, nil
	}
}

// level 7 (atoms): Number, NamedNumber, bare Unit, Constant, function
// application, parenthesized subexpression.
func (p *Parser) parseAtom() (*ast.Node, error) {
	tok, ok := p.current()
	if !ok {
		return nil, errorf(p.pos, "Unexpected end of input")
	}
	switch tok.Kind {
	case ast.KindNumber, ast.KindNamedNumber, ast.KindUnit, ast.KindConstant:
		start := p.pos
		p.advance()
		return ast.Leaf(tok, spanFrom(start)), nil
	case ast.KindFunctionIdentifier:
		return p.parseFunctionCall(tok)
	case ast.KindOperator:
		if tok.Op == ast.LeftParen {
			return p.parseParenthesized()
		}
		return nil, errorf(p.pos, "Unexpected token %v, expected paren or number", tok)
	default:
		return nil, errorf(p.pos, "Unexpected token %v, expected paren or number", tok)
	}
}

func (p *Parser) parseFunctionCall(fn ast.Token) (*ast.Node, error) {
	start := p.pos
	p.advance()
	open, ok := p.current()
	if !ok || open.Kind != ast.KindOperator || open.Op != ast.LeftParen {
		return nil, errorf(p.pos, "Expected ( after %v", fn)
	}
	p.advance()
	body, err := p.parseTextOperator()
	if err != nil {
		return nil, err
	}
	closeTok, ok := p.current()
	if !ok || closeTok.Kind != ast.KindOperator || closeTok.Op != ast.RightParen {
		return nil, errorf(p.pos, "Expected closing paren")
	}
	p.advance()
	return ast.Unary(fn, body, spanFrom(start)), nil
}

func (p *Parser) parseParenthesized() (*ast.Node, error) {
	start := p.pos
	p.advance()
	body, err := p.parseTextOperator()
	if err != nil {
		return nil, err
	}
	closeTok, ok := p.current()
	if !ok || closeTok.Kind != ast.KindOperator || closeTok.Op != ast.RightParen {
		return nil, errorf(p.pos, "Expected closing paren")
	}
	p.advance()
	return ast.Unary(ast.ParenToken(), body, spanFrom(start)), nil
}

func spanFrom(start int) ast.Range {
	return ast.Range{Start: ast.Position{Offset: start}, End: ast.Position{Offset: start + 1}}
}
