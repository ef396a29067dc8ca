package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-master/internal/audio"
	"github.com/vovakirdan/snake-master/internal/audio/music"
	"github.com/vovakirdan/snake-master/internal/config"
	"github.com/vovakirdan/snake-master/internal/engine"
	"github.com/vovakirdan/snake-master/internal/highscore"
	"github.com/vovakirdan/snake-master/internal/platform/tui"
	"github.com/vovakirdan/snake-master/internal/storage"
)

var (
	flagDifficulty string
	flagMute       bool
	flagNoMusic    bool
	flagFullscreen bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game. Pick a difficulty on the intro screen, or skip it with
--difficulty.

Controls:
  Arrows/WASD  - Turn
  1/2/3        - Easy/Medium/Hard on the intro screen
  Enter        - Press the highlighted button
  P/Esc        - Pause and resume
  R            - Restart (paused or after game over)
  M            - Mute the music
  F11/F        - Toggle fullscreen
  Q/Ctrl+C     - Quit

The mouse works too: click the buttons and the speaker icon.

Examples:
  snake play
  snake play --difficulty hard
  snake play --seed 42 --mute
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd, so that bare "snake" takes
// them as well.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the intro: easy, medium or hard")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with the music muted")
	cmd.Flags().BoolVar(&flagNoMusic, "no-music", false, "Do not open the audio device")
	cmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start on the alternate screen")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var difficulty config.Difficulty
	if flagDifficulty != "" {
		difficulty, err = config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, logFile := newLogger(cfg.Paths.Log)
	defer logFile.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scorePath, err := config.ExpandPath(cfg.Paths.HighScore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	e := engine.New(engine.Config{
		Game:       cfg,
		Seed:       seed,
		Difficulty: difficulty,
		Muted:      flagMute,
	}, highscore.NewFile(scorePath))
	e.SetLogger(logger)

	// Open run history
	store, err := storage.Open(cfg.Paths.History)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without history - the high score file still works
		store = nil
	} else {
		e.SetRecorder(store)
	}

	player := openMusic(cfg.Audio, logger)
	e.SetAudio(player)

	logger.Info("starting", "seed", seed, "high_score", e.HighScore())

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(e, tui.Options{
		Fullscreen: flagFullscreen,
		Width:      width,
		Height:     height,
	}, logger)

	if err := player.Close(); err != nil {
		logger.Warn("closing audio", "error", err)
	}
	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openMusic starts the background track, or returns a silent controller when
// music is off or no audio device is available.
func openMusic(cfg config.Audio, logger *log.Logger) audio.Controller {
	if !cfg.Enabled || flagNoMusic {
		return audio.Silent{}
	}
	path, err := config.ExpandPath(cfg.Music)
	if err != nil {
		logger.Warn("music path", "error", err)
		path = ""
	}
	m, err := music.New(path, cfg.Volume)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return audio.Silent{}
	}
	logger.Debug("music loaded", "source", m.Source())
	return m
}
