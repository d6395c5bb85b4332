package ast

import (
	"fmt"

	"github.com/calcmark/unitcalc/unitcat"
	"github.com/shopspring/decimal"
)

// Kind discriminates Token's variant. Grounded on spec.md §3's Token tagged
// union and original_source/src/lib.rs's Token enum.
type Kind int

const (
	KindNumber Kind = iota
	KindOperator
	KindUnaryOperator
	KindTextOperator
	KindFunctionIdentifier
	KindConstant
	KindNamedNumber
	KindUnit
	KindLexerKeyword
	KindParen
	KindNegative
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindOperator:
		return "Operator"
	case KindUnaryOperator:
		return "UnaryOperator"
	case KindTextOperator:
		return "TextOperator"
	case KindFunctionIdentifier:
		return "FunctionIdentifier"
	case KindConstant:
		return "Constant"
	case KindNamedNumber:
		return "NamedNumber"
	case KindUnit:
		return "Unit"
	case KindLexerKeyword:
		return "LexerKeyword"
	case KindParen:
		return "Paren"
	case KindNegative:
		return "Negative"
	default:
		return "Unknown"
	}
}

// Operator is the set of binary arithmetic operators plus the two parens
// (parens are consumed by the parser and never reach the tree as nodes of
// their own — Paren wraps the parsed subexpression instead).
type Operator int

const (
	Plus Operator = iota
	Minus
	Multiply
	Divide
	Modulo
	Caret
	LeftParen
	RightParen
)

func (o Operator) String() string {
	switch o {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Modulo:
		return "%"
	case Caret:
		return "^"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	default:
		return "?"
	}
}

type UnaryOp int

const (
	Percent UnaryOp = iota
	Factorial
)

func (u UnaryOp) String() string {
	if u == Percent {
		return "%"
	}
	return "!"
}

type TextOp int

const (
	To TextOp = iota
	Of
)

func (t TextOp) String() string {
	if t == To {
		return "to"
	}
	return "of"
}

type Function int

const (
	Sqrt Function = iota
	Cbrt
	Log
	Ln
	Exp
	Round
	Ceil
	Floor
	Abs
	Sin
	Cos
	Tan
)

func (f Function) String() string {
	names := [...]string{"sqrt", "cbrt", "log", "ln", "exp", "round", "ceil", "floor", "abs", "sin", "cos", "tan"}
	if int(f) < len(names) {
		return names[f]
	}
	return "fn?"
}

type Constant int

const (
	Pi Constant = iota
	E
)

func (c Constant) String() string {
	if c == Pi {
		return "pi"
	}
	return "e"
}

// LexerWord is a transient disambiguation tag — must never reach the
// parser (spec.md §9). Kept as its own type; lexer.Lex returns plain
// []ast.Token, and a runtime check after resolution rejects any token
// that still carries one.
type LexerWord int

const (
	PercentChar LexerWord = iota
	DoubleQuotes
	In
	Hg
	Per
	Mercury
	PoundForce
	Force
	Revolution
)

func (l LexerWord) String() string {
	names := [...]string{"%", "\"", "in", "hg", "per", "mercury", "lbf", "force", "rev"}
	if int(l) < len(names) {
		return names[l]
	}
	return "keyword?"
}

// Token is the tagged union produced by the lexer and consumed by the
// parser. Only one of the typed fields is meaningful, selected by Kind.
type Token struct {
	Kind Kind

	Number      decimal.Decimal
	Op          Operator
	UnaryOp     UnaryOp
	TextOp      TextOp
	Fn          Function
	Const       Constant
	NamedNumber unitcat.NamedNumber
	Unit        unitcat.Unit
	Keyword     LexerWord
}

func NumberToken(v decimal.Decimal) Token      { return Token{Kind: KindNumber, Number: v} }
func OperatorToken(o Operator) Token           { return Token{Kind: KindOperator, Op: o} }
func UnaryToken(u UnaryOp) Token               { return Token{Kind: KindUnaryOperator, UnaryOp: u} }
func TextOpToken(t TextOp) Token               { return Token{Kind: KindTextOperator, TextOp: t} }
func FunctionToken(f Function) Token           { return Token{Kind: KindFunctionIdentifier, Fn: f} }
func ConstantToken(c Constant) Token           { return Token{Kind: KindConstant, Const: c} }
func NamedNumberToken(n unitcat.NamedNumber) Token {
	return Token{Kind: KindNamedNumber, NamedNumber: n}
}
func UnitToken(u unitcat.Unit) Token     { return Token{Kind: KindUnit, Unit: u} }
func KeywordToken(l LexerWord) Token     { return Token{Kind: KindLexerKeyword, Keyword: l} }
func ParenToken() Token                  { return Token{Kind: KindParen} }
func NegativeToken() Token               { return Token{Kind: KindNegative} }

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return t.Number.String()
	case KindOperator:
		return t.Op.String()
	case KindUnaryOperator:
		return t.UnaryOp.String()
	case KindTextOperator:
		return t.TextOp.String()
	case KindFunctionIdentifier:
		return t.Fn.String()
	case KindConstant:
		return t.Const.String()
	case KindNamedNumber:
		return t.NamedNumber.String()
	case KindUnit:
		return t.Unit.String()
	case KindLexerKeyword:
		return t.Keyword.String()
	case KindParen:
		return "Paren"
	case KindNegative:
		return "Negative"
	default:
		return fmt.Sprintf("Token(%d)", t.Kind)
	}
}

// IsOperator reports whether t is Operator(op).
func (t Token) IsOperator(op Operator) bool {
	return t.Kind == KindOperator && t.Op == op
}
