// snake is a single-player snake game for the terminal.
//
// Usage:
//
//	snake                 - Play (same as snake play)
//	snake play            - Play
//	snake scores          - Show the run history and best scores
//	snake config          - Print the default configuration
//
// Global flags:
//
//	--config <path>       - Game config YAML (default: ~/.snake/snake.yaml)
//	--seed <value>        - RNG seed for reproducible runs
//	--highscore <path>    - High score file (default: ./highscore.txt)
//	--db <path>           - Run history database (default: ~/.snake/history.db)
//	--log <path>          - Log file (default: ~/.snake/snake.log)
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-master/internal/config"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagHighScore string
	flagDBPath    string
	flagLogPath   string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake Master Deluxe - snake in your terminal",
	Long: `Snake Master Deluxe is the classic snake game for the terminal.

Eat food to grow and score. Every few points the level rises and the snake
speeds up; from level 3 obstacles appear. The board wraps at the edges, so
only your own tail and the obstacles can end a run.

Available commands:
  play     - Play (the default when no command is given)
  scores   - View the run history
  config   - Print the default configuration

Examples:
  snake
  snake play --difficulty hard
  snake scores
  snake config > ~/.snake/snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "", "Path to the high score file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the run history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to the log file (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies the path flags on top of it.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if flagHighScore != "" {
		cfg.Paths.HighScore = flagHighScore
	}
	if flagDBPath != "" {
		cfg.Paths.History = flagDBPath
	}
	if flagLogPath != "" {
		cfg.Paths.Log = flagLogPath
	}
	return cfg, nil
}

// newLogger opens the log file. The terminal belongs to the game, so when the
// file cannot be opened logging is discarded.
func newLogger(path string) (*log.Logger, io.Closer) {
	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}

	if p, err := config.ExpandPath(path); err == nil && p != "" {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err == nil {
			if f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				w, closer = f, f
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
