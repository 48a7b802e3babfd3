package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rekt-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the built-in YAML config. Save it as ~/.rekt/configs/rekt.yaml
or ./configs/rekt.yaml and edit the keys you want to change.

Examples:
  rekt config > ~/.rekt/configs/rekt.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
