// Package cmd wires the Cobra commands for the unitcalc CLI, adapted from
// the teacher's cmd/calcmark/cmd package (same root/eval/convert/version
// shape, one command per file, package-level command variables wired up in
// each file's init).
package cmd

import (
	"fmt"
	"os"

	"github.com/calcmark/unitcalc/cmd/unitcalc/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "unitcalc [expression]",
	Short: "unitcalc - a unit-aware natural-language calculator",
	Long: `unitcalc evaluates natural-language arithmetic expressions that carry
physical units: "3 feet to meters", "60 mph * 2 hours", "10% of 2.5kg".

Examples:
  unitcalc                          Start the interactive REPL
  unitcalc eval "1 km to miles"     Evaluate one expression and print it
  unitcalc eval < input.txt         Evaluate stdin
  unitcalc convert 1 km miles       Convert a value between two units`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return runEval(args)
		}
		return runREPL()
	},
}

// Execute runs the root command.
func Execute() {
	if _, err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
