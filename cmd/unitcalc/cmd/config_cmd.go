package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/calcmark/unitcalc/cmd/unitcalc/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage unitcalc's configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml to ~/.config/unitcalc/",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("locate home directory: %w", err)
		}
		path := filepath.Join(home, ".config", "unitcalc", "config.yaml")
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Println("wrote", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
