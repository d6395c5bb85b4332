package cmd

import (
	"fmt"

	unitcalc "github.com/calcmark/unitcalc"
	"github.com/calcmark/unitcalc/cmd/unitcalc/config"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from-unit> <to-unit>",
	Short: "Convert a value from one unit to another",
	Long: `Convert a value from one unit to another. Shorthand for
unitcalc eval "<value> <from-unit> to <to-unit>".

Examples:
  unitcalc convert 1 km miles
  unitcalc convert 98.6 fahrenheit celsius`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := fmt.Sprintf("%s %s to %s", args[0], args[1], args[2])
		cfg := config.Get()
		result, err := unitcalc.Eval(expr, cfg.AllowTrailingOperators, cfg.DegreeUnit(), false)
		if err != nil {
			return err
		}
		fmt.Println(formatQuantity(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
