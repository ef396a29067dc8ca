package snake

import (
	"fmt"
	"strings"
)

// Snapshot captures the observable state of a run for determinism tests and logging.
type Snapshot struct {
	Tick            uint64
	Score           int
	Level           int
	Speed           int
	Len             int
	Growth          int
	Head            Position
	Dir             Direction
	Food            Position
	ObstaclesActive bool
}

// Snapshot returns the current run snapshot.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Tick:            s.tick,
		Score:           s.score,
		Level:           s.Level(),
		Speed:           s.Speed(),
		Len:             len(s.body),
		Growth:          s.growth,
		Head:            s.Head(),
		Dir:             s.dir,
		Food:            s.food,
		ObstaclesActive: s.ObstaclesActive(),
	}
}

// DebugState returns a multi-line description of the run.
func (s *State) DebugState() string {
	snap := s.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Level: %d, Speed: %d\n", snap.Tick, snap.Score, snap.Level, snap.Speed)
	fmt.Fprintf(&b, "Snake len: %d/%d, Direction: %s\n", snap.Len, snap.Growth, snap.Dir)
	fmt.Fprintf(&b, "Head: %s, Food: %s, Obstacles: %v\n", snap.Head, snap.Food, snap.ObstaclesActive)
	return b.String()
}
