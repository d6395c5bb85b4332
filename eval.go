// Package unitcalc provides a clean, idiomatic Go API for evaluating
// unit-aware arithmetic expressions: "3 feet to meters", "10% of 50kg",
// "60 mph * 2 hours".
//
// Basic usage:
//
//	result, err := unitcalc.Eval("1 km to miles", false, unitcat.Celsius, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Value) // 0.621371192237334 Unit(mile)
package unitcalc

import (
	"fmt"
	"time"

	"github.com/calcmark/unitcalc/evaluator"
	"github.com/calcmark/unitcalc/lexer"
	"github.com/calcmark/unitcalc/parser"
	"github.com/calcmark/unitcalc/unitcat"
)

// Eval lexes, parses, and evaluates input in one shot. allowTrailingOperators
// drops one dangling operator a live-typing caller hasn't finished yet (see
// lexer.Lex); defaultDegree is substituted for the bare word deg/degree/
// degrees; verbose, when true, fills in the returned Result's Timing.
//
// Errors from each stage are wrapped with that stage's name, mirroring
// original_source/src/lib.rs's eval(): "Lexing error: …", "Parsing error:
// …", "Eval error: …".
func Eval(input string, allowTrailingOperators bool, defaultDegree unitcat.Unit, verbose bool) (Result, error) {
	var total time.Time
	if verbose {
		total = startTimer()
	}

	lexStart := startTimer()
	tokens, err := lexer.Lex(input, allowTrailingOperators, defaultDegree)
	lexDur := elapsed(lexStart, verbose)
	if err != nil {
		return Result{}, fmt.Errorf("Lexing error: %w", err)
	}

	parseStart := startTimer()
	tree, err := parser.Parse(tokens)
	parseDur := elapsed(parseStart, verbose)
	if err != nil {
		return Result{}, fmt.Errorf("Parsing error: %w", err)
	}

	evalStart := startTimer()
	quantity, err := evaluator.Eval(tree)
	evalDur := elapsed(evalStart, verbose)
	if err != nil {
		return Result{}, fmt.Errorf("Eval error: %w", err)
	}

	result := Result{Value: quantity}
	if verbose {
		result.Timing = Timing{
			Lex:   lexDur,
			Parse: parseDur,
			Eval:  evalDur,
			Total: elapsed(total, true),
		}
	}
	return result, nil
}

// startTimer reads the clock on every call; elapsed only measures when
// verbose is true and reports a zero duration otherwise.
func startTimer() time.Time { return time.Now() }

func elapsed(start time.Time, verbose bool) time.Duration {
	if !verbose {
		return 0
	}
	return time.Since(start)
}
