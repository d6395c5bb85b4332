package parser_test

import (
	"testing"

	"github.com/calcmark/unitcalc/ast"
	"github.com/calcmark/unitcalc/lexer"
	"github.com/calcmark/unitcalc/parser"
	"github.com/calcmark/unitcalc/unitcat"
)

func mustParse(t *testing.T, input string) *ast.Node {
	t.Helper()
	tokens, err := lexer.Lex(input, false, unitcat.Celsius)
	if err != nil {
		t.Fatalf("lex(%q): %v", input, err)
	}
	node, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("parse(%q): %v", input, err)
	}
	return node
}

func TestParseAdditivePrecedence(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3): the root is Plus.
	node := mustParse(t, "1 + 2 * 3")
	if node.Token.Kind != ast.KindOperator || node.Token.Op != ast.Plus {
		t.Fatalf("expected root Plus, got %v", node.Token)
	}
	right := node.Children[1]
	if right.Token.Kind != ast.KindOperator || right.Token.Op != ast.Multiply {
		t.Fatalf("expected right child Multiply, got %v", right.Token)
	}
}

func TestParseCaretLeftAssociative(t *testing.T) {
	// 2 ^ 3 ^ 2 must parse as (2 ^ 3) ^ 2, not 2 ^ (3 ^ 2).
	node := mustParse(t, "2 ^ 3 ^ 2")
	if node.Token.Kind != ast.KindOperator || node.Token.Op != ast.Caret {
		t.Fatalf("expected root Caret, got %v", node.Token)
	}
	left := node.Children[0]
	if left.Token.Kind != ast.KindOperator || left.Token.Op != ast.Caret {
		t.Fatalf("expected left child Caret (left-associative), got %v", left.Token)
	}
}

func TestParseUnaryMinusBindsTighterThanCaret(t *testing.T) {
	// -2 ^ 2 parses as (-2) ^ 2.
	node := mustParse(t, "-2 ^ 2")
	if node.Token.Op != ast.Caret {
		t.Fatalf("expected root Caret, got %v", node.Token)
	}
	left := node.Children[0]
	if left.Token.Kind != ast.KindNegative {
		t.Fatalf("expected left child Negative, got %v", left.Token)
	}
}

func TestParseImplicitMultiplicationBeforeParen(t *testing.T) {
	// "2(3 + 4)" is implicit multiplication: 2 * (3 + 4).
	node := mustParse(t, "2(3 + 4)")
	if node.Token.Kind != ast.KindOperator || node.Token.Op != ast.Multiply {
		t.Fatalf("expected root Multiply, got %v", node.Token)
	}
	right := node.Children[1]
	if right.Token.Kind != ast.KindParen {
		t.Fatalf("expected right child Paren, got %v", right.Token)
	}
}

func TestParseConstantJuxtaposition(t *testing.T) {
	// "2pi" is implicit multiplication: Number then Constant.
	node := mustParse(t, "2pi")
	if node.Token.Kind != ast.KindOperator || node.Token.Op != ast.Multiply {
		t.Fatalf("expected root Multiply, got %v", node.Token)
	}
	if node.Children[1].Token.Kind != ast.KindConstant {
		t.Fatalf("expected right child Constant, got %v", node.Children[1].Token)
	}
}

func TestParseNamedNumberJuxtaposition(t *testing.T) {
	// "2 billion" is implicit multiplication: Number then NamedNumber.
	node := mustParse(t, "2 billion")
	if node.Token.Kind != ast.KindOperator || node.Token.Op != ast.Multiply {
		t.Fatalf("expected root Multiply, got %v", node.Token)
	}
	if node.Children[1].Token.Kind != ast.KindNamedNumber {
		t.Fatalf("expected right child NamedNumber, got %v", node.Children[1].Token)
	}
}

func TestParseFootInchLiteral(t *testing.T) {
	// "5 feet 6 inches" folds to Plus(Foot(5), Inch(6)).
	node := mustParse(t, "5 feet 6 inches")
	if node.Token.Kind != ast.KindOperator || node.Token.Op != ast.Plus {
		t.Fatalf("expected root Plus, got %v", node.Token)
	}
	feet := node.Children[0]
	if feet.Token.Kind != ast.KindUnit || feet.Token.Unit != unitcat.Foot {
		t.Fatalf("expected left child Foot unit, got %v", feet.Token)
	}
	inches := node.Children[1]
	if inches.Token.Kind != ast.KindUnit || inches.Token.Unit != unitcat.Inch {
		t.Fatalf("expected right child Inch unit, got %v", inches.Token)
	}
}

func TestParseFunctionCall(t *testing.T) {
	node := mustParse(t, "sqrt(9)")
	if node.Token.Kind != ast.KindFunctionIdentifier || node.Token.Fn != ast.Sqrt {
		t.Fatalf("expected root FunctionIdentifier Sqrt, got %v", node.Token)
	}
	if len(node.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(node.Children))
	}
}

func TestParseToOperator(t *testing.T) {
	node := mustParse(t, "1 km to miles")
	if node.Token.Kind != ast.KindTextOperator || node.Token.TextOp != ast.To {
		t.Fatalf("expected root TextOperator To, got %v", node.Token)
	}
}

func TestParseTrailingTokenIsError(t *testing.T) {
	tokens, err := lexer.Lex("1 +", true, unitcat.Celsius)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	tokens = append(tokens, ast.OperatorToken(ast.RightParen))
	if _, err := parser.Parse(tokens); err == nil {
		t.Fatal("expected error for stray trailing token")
	}
}

func TestParseUnexpectedEndOfInput(t *testing.T) {
	_, err := parser.Parse(nil)
	if err == nil {
		t.Fatal("expected error for empty token stream")
	}
}
