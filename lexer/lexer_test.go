package lexer_test

import (
	"testing"

	"github.com/calcmark/unitcalc/ast"
	"github.com/calcmark/unitcalc/lexer"
	"github.com/calcmark/unitcalc/unitcat"
	"github.com/shopspring/decimal"
)

func TestLexNumber(t *testing.T) {
	tokens, err := lexer.Lex("42.5", false, unitcat.Celsius)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0].Kind != ast.KindNumber {
		t.Fatalf("expected single Number token, got %v", tokens)
	}
	if !tokens[0].Number.Equal(decimal.RequireFromString("42.5")) {
		t.Errorf("expected 42.5, got %s", tokens[0].Number)
	}
}

func TestLexOperators(t *testing.T) {
	tokens, err := lexer.Lex("1 + 2 * 3", false, unitcat.Celsius)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 5 {
		t.Fatalf("expected 5 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[1].Op != ast.Plus || tokens[3].Op != ast.Multiply {
		t.Errorf("expected Plus then Multiply operators, got %v", tokens)
	}
}

func TestLexUnitWord(t *testing.T) {
	tokens, err := lexer.Lex("5 meters", false, unitcat.Celsius)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 || tokens[1].Kind != ast.KindUnit || tokens[1].Unit != unitcat.Meter {
		t.Fatalf("expected Number then Meter unit, got %v", tokens)
	}
}

func TestLexUnbalancedParensAreBalanced(t *testing.T) {
	tokens, err := lexer.Lex("(1 + 2", false, unitcat.Celsius)
	if err != nil {
		t.Fatal(err)
	}
	last := tokens[len(tokens)-1]
	if !last.IsOperator(ast.RightParen) {
		t.Fatalf("expected a trailing RightParen inserted, got %v", tokens)
	}
}

func TestLexDegreeUsesDefaultDegree(t *testing.T) {
	tokens, err := lexer.Lex("100 degrees", false, unitcat.Fahrenheit)
	if err != nil {
		t.Fatal(err)
	}
	if tokens[1].Kind != ast.KindUnit || tokens[1].Unit != unitcat.Fahrenheit {
		t.Fatalf("expected defaultDegree Fahrenheit substituted, got %v", tokens[1])
	}
}

func TestLexInvalidCharacterIsError(t *testing.T) {
	_, err := lexer.Lex("5 @ 3", false, unitcat.Celsius)
	if err == nil {
		t.Fatal("expected error for invalid character")
	}
}

func TestLexEmptyInputIsError(t *testing.T) {
	_, err := lexer.Lex("   ", false, unitcat.Celsius)
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestLexCommasAreStripped(t *testing.T) {
	tokens, err := lexer.Lex("1,000", false, unitcat.Celsius)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || !tokens[0].Number.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected 1000 after comma stripping, got %v", tokens)
	}
}

func TestLexTrailingOperatorTrimmed(t *testing.T) {
	tokens, err := lexer.Lex("1 +", true, unitcat.Celsius)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0].Kind != ast.KindNumber {
		t.Fatalf("expected trailing + trimmed, got %v", tokens)
	}
}

func TestLexAbbreviatedDataTransferRateWord(t *testing.T) {
	tokens, err := lexer.Lex("1 MBps", false, unitcat.Celsius)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 || tokens[1].Kind != ast.KindUnit || tokens[1].Unit != unitcat.MegabytesPerSecond {
		t.Fatalf("expected Number then MegabytesPerSecond unit, got %v", tokens)
	}
}

func TestLexDataTransferRateFoldsFromFullPhrase(t *testing.T) {
	tokens, err := lexer.Lex("1 megabyte per second", false, unitcat.Celsius)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 || tokens[1].Kind != ast.KindUnit || tokens[1].Unit != unitcat.MegabytesPerSecond {
		t.Fatalf("expected Megabyte/Per/Second folded into MegabytesPerSecond, got %v", tokens)
	}
}
