package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-master/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.snake/snake.yaml and edit it to change the board, speeds, level
thresholds, obstacles, colors and file locations. Keys left out of the file
keep their default values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
