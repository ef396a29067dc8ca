package engine

import (
	"github.com/vovakirdan/snake-master/internal/config"
	"github.com/vovakirdan/snake-master/internal/core"
	"github.com/vovakirdan/snake-master/internal/snake"
)

// Snapshot is everything a renderer needs to draw one frame.
type Snapshot struct {
	Phase      Phase
	Difficulty config.Difficulty
	Board      config.Board
	HighScore  int
	Muted      bool
	Buttons    []Button
	Cursor     int

	// Run fields are zero on the intro screen.
	RunID           string
	Score           int
	Level           int
	Speed           int
	Body            []snake.Position // tail first
	Food            snake.Position
	Obstacles       []core.Rect // only while active
	ObstaclesActive bool
	LastEvent       snake.StepEvent
}

// Snapshot returns the current frame data.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      e.phase,
		Difficulty: e.difficulty,
		Board:      e.cfg.Board,
		HighScore:  e.highScore,
		Muted:      e.muted,
		Buttons:    e.Buttons(),
		Cursor:     e.cursor,
		Level:      1,
		Food:       snake.NoFood,
	}
	if e.state == nil {
		return snap
	}

	snap.RunID = e.runID
	snap.Score = e.state.Score()
	snap.Level = e.state.Level()
	snap.Speed = e.state.Speed()
	snap.Body = e.state.Body()
	snap.Food = e.state.Food()
	snap.ObstaclesActive = e.state.ObstaclesActive()
	if snap.ObstaclesActive {
		snap.Obstacles = e.state.Obstacles()
	}
	snap.LastEvent = e.lastEvent
	return snap
}
