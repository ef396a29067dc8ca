package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-master/internal/config"
	"github.com/vovakirdan/snake-master/internal/platform/tui"
	"github.com/vovakirdan/snake-master/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
	flagScoresRecent     bool
	flagScoresRun        string
	flagScoresPlain      bool
	flagScoresClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display finished runs and the best score per difficulty.

In a terminal this opens an interactive table with one tab per difficulty.
When the output is redirected, or with --plain, the best runs are printed.

Examples:
  snake scores
  snake scores --plain --difficulty hard
  snake scores --plain --recent --limit 5
  snake scores --run 6f1c2a0e-...
  snake scores --clear --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only runs of this difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Print the latest runs instead of the best")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Print a single run by id")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print instead of opening the interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history (of --difficulty, or all)")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	difficulty := ""
	if flagScoresDifficulty != "" {
		d, err := config.ParseDifficulty(flagScoresDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = string(d)
	}

	// Open run history
	store, err := storage.Open(cfg.Paths.History)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.Clear(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")

	case flagScoresRun != "":
		printRun(store, flagScoresRun)

	case flagScoresPlain || flagScoresRecent || !term.IsTerminal(int(os.Stdout.Fd())):
		printRuns(store, difficulty)

	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printRun(store *storage.Store, runID string) {
	run, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run %q\n", runID)
		os.Exit(1)
	}

	fmt.Printf("Run        %s\n", run.RunID)
	fmt.Printf("Difficulty %s\n", run.Difficulty)
	fmt.Printf("Score      %d\n", run.Score)
	fmt.Printf("Level      %d\n", run.Level)
	fmt.Printf("Ticks      %d\n", run.Ticks)
	fmt.Printf("Ended by   %s\n", strings.ReplaceAll(run.EndReason, "_", " "))
	fmt.Printf("Duration   %s\n", run.Duration.Round(100*time.Millisecond))
	fmt.Printf("Played     %s\n", run.CreatedAt.Local().Format("2006-01-02 15:04"))
}

func printRuns(store *storage.Store, difficulty string) {
	var (
		runs  []storage.Run
		err   error
		title string
	)
	if flagScoresRecent {
		runs, err = store.RecentRuns(flagScoresLimit)
		title = "Recent runs"
	} else {
		runs, err = store.TopRuns(difficulty, flagScoresLimit)
		title = "Best runs"
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if difficulty != "" && !flagScoresRecent {
		title += " - " + config.Difficulty(difficulty).Title()
	}
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-5s  %-10s  %-18s  %s\n", "Rank", "Score", "Level", "Difficulty", "Ended by", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-10s  %-18s  %s\n", "----", "-----", "-----", "----------", "--------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-5d  %-10s  %-18s  %s\n",
			i+1, r.Score, r.Level, r.Difficulty,
			strings.ReplaceAll(r.EndReason, "_", " "),
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	// Show best per difficulty
	stats, err := store.AllStats()
	if err != nil || len(stats) == 0 {
		return
	}
	names := make([]string, 0, len(stats))
	for d := range stats {
		names = append(names, d)
	}
	sort.Strings(names)

	fmt.Println()
	for _, d := range names {
		st := stats[d]
		fmt.Printf("Best %-8s %d  (%d runs, avg %.1f)\n", d+":", st.HighScore, st.RunsCount, st.AvgScore)
	}
}
