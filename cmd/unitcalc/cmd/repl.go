package cmd

import (
	"fmt"

	"github.com/calcmark/unitcalc/cmd/unitcalc/config"
	"github.com/calcmark/unitcalc/cmd/unitcalc/repl"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive REPL",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL() error {
	cfg := config.Get()
	m := repl.New(cfg)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	return nil
}
