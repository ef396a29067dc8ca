package engine

import "time"

// HighScoreStore loads and saves the persistent high score.
type HighScoreStore interface {
	Load() int
	Save(score int) error
}

// EndReason says why a run ended.
type EndReason string

const (
	EndSelfCollision     EndReason = "self_collision"
	EndObstacleCollision EndReason = "obstacle_collision"
	EndRestart           EndReason = "restart"
	EndQuit              EndReason = "quit"
)

// RunRecord describes one finished run.
type RunRecord struct {
	RunID      string
	Difficulty string
	Score      int
	Level      int
	Ticks      uint64
	EndReason  EndReason
	Duration   time.Duration
}

// RunRecorder stores finished runs.
// This lets the engine report runs without depending on the storage package.
type RunRecorder interface {
	RecordRun(run RunRecord) error
}
