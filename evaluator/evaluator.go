// Package evaluator post-order walks the parser's expression tree into a
// unitalgebra.Quantity, delegating every binary arithmetic operator to the
// Unit Algebra. Grounded on original_source/src/evaluator.rs's
// evaluate_node dispatch and the teacher's evaluator/evaluator.go idiom
// (an EvaluationError type, a small per-node-kind dispatch), with the
// fixes spec.md §9 calls for: ElectricCurrent×Resistance → Voltage (lives
// in unitalgebra), Abs with no half-correction, Sqrt/Cbrt iterating to a
// precision target (lives in the numeric package), and Sin/Cos/Tan
// implemented via math's float64 trig rather than left unsupported.
package evaluator

import (
	"math"

	"github.com/calcmark/unitcalc/ast"
	"github.com/calcmark/unitcalc/numeric"
	"github.com/calcmark/unitcalc/unitalgebra"
	"github.com/calcmark/unitcalc/unitcat"
	"github.com/shopspring/decimal"
)

// log10, ln and exp aren't among the scalar primitives spec.md §1 assumes
// (power, nth-root, abs, comparison) — shopspring/decimal has no
// transcendental functions, so these three round-trip through float64.
func log10(v decimal.Decimal) decimal.Decimal {
	f, _ := v.Float64()
	return decimal.NewFromFloat(math.Log10(f))
}

func ln(v decimal.Decimal) decimal.Decimal {
	f, _ := v.Float64()
	return decimal.NewFromFloat(math.Log(f))
}

func exp(v decimal.Decimal) decimal.Decimal {
	f, _ := v.Float64()
	return decimal.NewFromFloat(math.Exp(f))
}

func sin(v decimal.Decimal) decimal.Decimal {
	f, _ := v.Float64()
	return decimal.NewFromFloat(math.Sin(f))
}

func cos(v decimal.Decimal) decimal.Decimal {
	f, _ := v.Float64()
	return decimal.NewFromFloat(math.Cos(f))
}

func tan(v decimal.Decimal) decimal.Decimal {
	f, _ := v.Float64()
	return decimal.NewFromFloat(math.Tan(f))
}

var (
	// Literals carry as many digits as original_source/src/evaluator.rs's
	// d128 constants — precision beyond decimal.DivisionPrecision is inert
	// but costs nothing to keep around verbatim.
	piLiteral = decimal.RequireFromString("3.141592653589793238462643383279503")
	eLiteral  = decimal.RequireFromString("2.718281828459045235360287471352662")

	oneHundred = decimal.NewFromInt(100)
	one        = decimal.NewFromInt(1)
	thousand   = decimal.NewFromInt(1000)
)

// Eval walks root and returns its Quantity, or the first EvalError/
// unitalgebra.Error/unitcat.ErrIncompatibleUnits encountered.
func Eval(root *ast.Node) (unitalgebra.Quantity, error) {
	return evalNode(root)
}

func evalNode(n *ast.Node) (unitalgebra.Quantity, error) {
	switch n.Token.Kind {
	case ast.KindNumber:
		return unitalgebra.New(n.Token.Number, unitcat.NoUnit), nil
	case ast.KindNamedNumber:
		return unitalgebra.New(unitcat.LookupNamedNumber(n.Token.NamedNumber), unitcat.NoUnit), nil
	case ast.KindConstant:
		return evalConstant(n.Token.Const), nil
	case ast.KindParen:
		return evalNode(n.Children[0])
	case ast.KindNegative:
		child, err := evalNode(n.Children[0])
		if err != nil {
			return unitalgebra.Quantity{}, err
		}
		return unitalgebra.New(child.Value.Neg(), child.Unit), nil
	case ast.KindUnit:
		child, err := evalNode(n.Children[0])
		if err != nil {
			return unitalgebra.Quantity{}, err
		}
		return unitalgebra.New(child.Value, n.Token.Unit), nil
	case ast.KindUnaryOperator:
		return evalUnary(n)
	case ast.KindFunctionIdentifier:
		return evalFunction(n)
	case ast.KindTextOperator:
		return evalTextOperator(n)
	case ast.KindOperator:
		return evalOperator(n)
	default:
		return unitalgebra.Quantity{}, errorf("Unexpected token %v", n.Token)
	}
}

func evalConstant(c ast.Constant) unitalgebra.Quantity {
	if c == ast.Pi {
		return unitalgebra.New(piLiteral, unitcat.NoUnit)
	}
	return unitalgebra.New(eLiteral, unitcat.NoUnit)
}

func evalUnary(n *ast.Node) (unitalgebra.Quantity, error) {
	child, err := evalNode(n.Children[0])
	if err != nil {
		return unitalgebra.Quantity{}, err
	}
	switch n.Token.UnaryOp {
	case ast.Percent:
		return unitalgebra.New(child.Value.Div(oneHundred), child.Unit), nil
	case ast.Factorial:
		return evalFactorial(child)
	default:
		return unitalgebra.Quantity{}, errorf("Unexpected unary operator %v", n.Token.UnaryOp)
	}
}

func evalFactorial(q unitalgebra.Quantity) (unitalgebra.Quantity, error) {
	v := q.Value
	if v.IsNegative() || !v.Equal(v.Truncate(0)) {
		return unitalgebra.Quantity{}, errorf("Cannot perform factorial of floats or negative numbers")
	}
	if v.GreaterThan(thousand) {
		return unitalgebra.Quantity{}, errorf("Cannot perform factorial of numbers above 1000")
	}
	result := one
	for i := decimal.NewFromInt(2); i.LessThanOrEqual(v); i = i.Add(one) {
		result = result.Mul(i)
	}
	return unitalgebra.New(result, q.Unit), nil
}

func evalTextOperator(n *ast.Node) (unitalgebra.Quantity, error) {
	switch n.Token.TextOp {
	case ast.To:
		return evalTo(n)
	case ast.Of:
		return evalOf(n)
	default:
		return unitalgebra.Quantity{}, errorf("Unexpected text operator %v", n.Token.TextOp)
	}
}

func evalTo(n *ast.Node) (unitalgebra.Quantity, error) {
	rightTok := n.Children[1].Token
	if rightTok.Kind != ast.KindUnit {
		return unitalgebra.Quantity{}, errorf("Right side of To operator needs to be a unit")
	}
	left, err := evalNode(n.Children[0])
	if err != nil {
		return unitalgebra.Quantity{}, err
	}
	toUnit := rightTok.Unit
	if left.Unit.Category() != toUnit.Category() {
		return unitalgebra.Quantity{}, errorf("Cannot convert from %s to %s", left.Unit, toUnit)
	}
	v, err := unitcat.Convert(left.Value, left.Unit, toUnit)
	if err != nil {
		return unitalgebra.Quantity{}, err
	}
	return unitalgebra.New(v, toUnit), nil
}

func evalOf(n *ast.Node) (unitalgebra.Quantity, error) {
	left, err := evalNode(n.Children[0])
	if err != nil {
		return unitalgebra.Quantity{}, err
	}
	right, err := evalNode(n.Children[1])
	if err != nil {
		return unitalgebra.Quantity{}, err
	}
	if left.Unit != unitcat.NoUnit {
		return unitalgebra.Quantity{}, errorf("child of the Of operator must be NoUnit")
	}
	return unitalgebra.New(left.Value.Mul(right.Value), right.Unit), nil
}

func evalOperator(n *ast.Node) (unitalgebra.Quantity, error) {
	left, err := evalNode(n.Children[0])
	if err != nil {
		return unitalgebra.Quantity{}, err
	}
	right, err := evalNode(n.Children[1])
	if err != nil {
		return unitalgebra.Quantity{}, err
	}
	switch n.Token.Op {
	case ast.Plus:
		return unitalgebra.Add(left, right)
	case ast.Minus:
		return unitalgebra.Subtract(left, right)
	case ast.Multiply:
		return unitalgebra.Multiply(left, right)
	case ast.Divide:
		return unitalgebra.Divide(left, right)
	case ast.Modulo:
		return unitalgebra.Modulo(left, right)
	case ast.Caret:
		return unitalgebra.Pow(left, right)
	default:
		return unitalgebra.Quantity{}, errorf("Unexpected operator %v", n.Token.Op)
	}
}

func evalFunction(n *ast.Node) (unitalgebra.Quantity, error) {
	child, err := evalNode(n.Children[0])
	if err != nil {
		return unitalgebra.Quantity{}, err
	}
	switch n.Token.Fn {
	case ast.Sqrt:
		return requireNoUnit(n.Token.Fn, child, func(v decimal.Decimal) decimal.Decimal { return numeric.Sqrt(v) })
	case ast.Cbrt:
		return requireNoUnit(n.Token.Fn, child, func(v decimal.Decimal) decimal.Decimal { return numeric.Cbrt(v) })
	case ast.Log:
		return requireNoUnit(n.Token.Fn, child, log10)
	case ast.Ln:
		return requireNoUnit(n.Token.Fn, child, ln)
	case ast.Exp:
		return requireNoUnit(n.Token.Fn, child, exp)
	case ast.Round:
		return unitalgebra.New(roundHalfUp(child.Value), child.Unit), nil
	case ast.Ceil:
		return unitalgebra.New(ceil(child.Value), child.Unit), nil
	case ast.Floor:
		return unitalgebra.New(floor(child.Value), child.Unit), nil
	case ast.Abs:
		// spec.md §9 Open Question 2: no half-correction here — that's a
		// copy-paste leftover from Round that can never fire on |x|.
		return unitalgebra.New(child.Value.Abs(), child.Unit), nil
	case ast.Sin:
		return requireNoUnit(n.Token.Fn, child, sin)
	case ast.Cos:
		return requireNoUnit(n.Token.Fn, child, cos)
	case ast.Tan:
		return requireNoUnit(n.Token.Fn, child, tan)
	default:
		return unitalgebra.Quantity{}, errorf("Unsupported function %v", n.Token.Fn)
	}
}

func requireNoUnit(fn ast.Function, q unitalgebra.Quantity, apply func(decimal.Decimal) decimal.Decimal) (unitalgebra.Quantity, error) {
	if q.Unit != unitcat.NoUnit {
		return unitalgebra.Quantity{}, errorf("%s() only accepts values with no unit", fn)
	}
	return unitalgebra.New(apply(q.Value), unitcat.NoUnit), nil
}

// roundHalfUp quantizes to the nearest integer, rounding half to even,
// then corrects a half-down rounding to half-up (so 0.5 → 1, 1.5 → 2,
// 2.5 → 3), per spec.md §4.4 and original_source/src/evaluator.rs's Round.
func roundHalfUp(v decimal.Decimal) decimal.Decimal {
	result := v.RoundBank(0)
	change := result.Sub(v)
	if change.Equal(decimal.NewFromFloat(-0.5)) {
		result = result.Add(one)
	}
	return result
}

func ceil(v decimal.Decimal) decimal.Decimal {
	result := v.RoundBank(0)
	change := result.Sub(v)
	if change.IsNegative() {
		result = result.Add(one)
	}
	return result
}

func floor(v decimal.Decimal) decimal.Decimal {
	result := v.RoundBank(0)
	change := result.Sub(v)
	if change.IsPositive() {
		result = result.Sub(one)
	}
	return result
}
