package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	unitcalc "github.com/calcmark/unitcalc"
	"github.com/calcmark/unitcalc/cmd/unitcalc/config"
	"github.com/calcmark/unitcalc/unitcat"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var evalVerbose bool

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate an expression and print the result",
	Long: `Evaluate a single expression (given as arguments, joined with spaces) or
read one expression per line from stdin.

Examples:
  unitcalc eval "1 km to miles"
  unitcalc eval -v "60 mph * 2 hours"
  echo "10% of 2.5kg" | unitcalc eval`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEval(args)
	},
}

func init() {
	evalCmd.Flags().BoolVarP(&evalVerbose, "verbose", "v", false, "Show per-stage timing")
	rootCmd.AddCommand(evalCmd)
}

// runEval handles both `unitcalc eval "<expr>"` and `unitcalc "<expr>"`: if
// args are given they're joined into one expression; otherwise stdin is
// read one line per expression.
func runEval(args []string) error {
	cfg := config.Get()
	verbose := evalVerbose || cfg.Verbose

	if len(args) > 0 {
		return evalAndPrint(strings.Join(args, " "), cfg, verbose)
	}

	scanner := bufio.NewScanner(os.Stdin)
	any := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		any = true
		if err := evalAndPrint(line, cfg, verbose); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if !any {
		return fmt.Errorf("no input provided")
	}
	return nil
}

func evalAndPrint(input string, cfg *config.Config, verbose bool) error {
	result, err := unitcalc.Eval(input, cfg.AllowTrailingOperators, cfg.DegreeUnit(), verbose)
	if err != nil {
		return err
	}
	fmt.Println(formatQuantity(result))
	if verbose {
		fmt.Fprintf(os.Stderr, "lex=%s parse=%s eval=%s total=%s\n",
			result.Timing.Lex, result.Timing.Parse, result.Timing.Eval, result.Timing.Total)
	}
	return nil
}

// formatQuantity renders a Result with thousands-grouped digits, an
// ambient display nicety the teacher's own format/display package also
// performs — here via golang.org/x/text/message instead of a hand-rolled
// grouping loop. The float64 round-trip only affects display grouping, not
// the underlying decimal.Decimal the caller gets back in Result.Value.
func formatQuantity(r unitcalc.Result) string {
	p := message.NewPrinter(language.English)
	f, ok := r.Value.Value.Float64()
	if !ok {
		return r.Value.String()
	}
	if r.Value.Unit == unitcat.NoUnit {
		return p.Sprintf("%v", number.Decimal(f))
	}
	return p.Sprintf("%v %s", number.Decimal(f), r.Value.Unit.Plural())
}
