// Command unitcalc is the CLI entry point: a unit-aware calculator usable
// as a one-shot evaluator, a unit converter, or an interactive REPL.
package main

import "github.com/calcmark/unitcalc/cmd/unitcalc/cmd"

func main() {
	cmd.Execute()
}
