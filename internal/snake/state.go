package snake

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/snake-master/internal/config"
	"github.com/vovakirdan/snake-master/internal/core"
)

// StepEvent is what happened during one simulation tick.
type StepEvent int

const (
	StepIdle StepEvent = iota // direction is zero, nothing moved
	StepMoved
	StepAte
	StepSelfCollision
	StepObstacleCollision
)

func (e StepEvent) String() string {
	switch e {
	case StepIdle:
		return "idle"
	case StepMoved:
		return "moved"
	case StepAte:
		return "ate"
	case StepSelfCollision:
		return "self_collision"
	case StepObstacleCollision:
		return "obstacle_collision"
	default:
		return "unknown"
	}
}

// Fatal reports whether the event ends the run.
func (e StepEvent) Fatal() bool {
	return e == StepSelfCollision || e == StepObstacleCollision
}

// Settings are the per-run inputs of a State.
type Settings struct {
	Board          Board
	BaseSpeed      int // ticks per second at level 1
	Progression    config.Progression
	Obstacles      []core.Rect
	ObstacleLevels []int
}

// SettingsFrom builds run settings from the config and the chosen difficulty.
func SettingsFrom(cfg config.SnakeConfig, d config.Difficulty) Settings {
	return Settings{
		Board:          BoardFrom(cfg.Board),
		BaseSpeed:      cfg.Difficulties.BaseSpeed(d),
		Progression:    cfg.Progression,
		Obstacles:      cfg.Obstacles.CoreRects(),
		ObstacleLevels: cfg.Obstacles.Levels,
	}
}

// NoFood is the food position when the board has no free cell left.
var NoFood = Position{X: -1, Y: -1}

// State is the simulation state of one run.
// Body is ordered oldest first: index 0 is the tail, the last element the head.
type State struct {
	settings Settings
	rng      *rand.Rand
	tick     uint64

	body   []Position
	growth int // target body length
	dir    Direction
	food   Position
	score  int
}

// NewState creates a fresh run: a single segment at the board center moving
// right, growth target 1, score 0 and food on a free cell.
func NewState(settings Settings, rng *rand.Rand) *State {
	s := &State{
		settings: settings,
		rng:      rng,
		body:     []Position{settings.Board.Start()},
		growth:   1,
		dir:      Right,
	}
	s.placeFood()
	return s
}

// Turn requests a direction change. Only orthogonal turns are accepted:
// a horizontal request needs the current horizontal delta to be zero and a
// vertical request needs the current vertical delta to be zero. Reversals
// and repeats are dropped and Turn returns false.
func (s *State) Turn(d Direction) bool {
	switch {
	case d.IsZero():
		return false
	case d.DX != 0 && s.dir.DX == 0:
		s.dir = Direction{DX: d.DX}
		return true
	case d.DY != 0 && s.dir.DY == 0:
		s.dir = Direction{DY: d.DY}
		return true
	default:
		return false
	}
}

// Step advances the run by one tick: move and wrap the head, append it, trim
// the tail to the growth target, then check self collision, obstacles and food
// in that order. A collision wins over food on the same tick.
func (s *State) Step() StepEvent {
	if s.dir.IsZero() {
		return StepIdle
	}
	s.tick++

	b := s.settings.Board
	head := s.Head()
	next := b.Wrap(Position{
		X: head.X + s.dir.DX*b.BlockSize,
		Y: head.Y + s.dir.DY*b.BlockSize,
	})

	s.body = append(s.body, next)
	if excess := len(s.body) - s.growth; excess > 0 {
		s.body = append(s.body[:0], s.body[excess:]...)
	}

	if SelfCollides(s.body) {
		return StepSelfCollision
	}

	if s.ObstaclesActive() {
		headRect := b.CellRect(next)
		for _, obs := range s.settings.Obstacles {
			if headRect.Intersects(obs) {
				return StepObstacleCollision
			}
		}
	}

	if next == s.food {
		s.score++
		s.growth++
		s.placeFood()
		return StepAte
	}
	return StepMoved
}

// SelfCollides reports whether the newest segment of body equals any older one.
func SelfCollides(body []Position) bool {
	if len(body) < 2 {
		return false
	}
	head := body[len(body)-1]
	return slices.Contains(body[:len(body)-1], head)
}

// placeFood moves the food to a uniformly random free cell: not on the body
// and not overlapping an obstacle.
func (s *State) placeFood() {
	b := s.settings.Board
	occupied := make(map[Position]bool, len(s.body))
	for _, seg := range s.body {
		occupied[seg] = true
	}

	var free []Position
	for _, c := range b.Cells() {
		if occupied[c] || s.blocked(c) {
			continue
		}
		free = append(free, c)
	}

	if len(free) == 0 {
		s.food = NoFood
		return
	}
	s.food = free[s.rng.Intn(len(free))]
}

func (s *State) blocked(p Position) bool {
	r := s.settings.Board.CellRect(p)
	for _, obs := range s.settings.Obstacles {
		if r.Intersects(obs) {
			return true
		}
	}
	return false
}

// Level returns the level for the current score.
func (s *State) Level() int {
	level, _ := s.settings.Progression.At(s.score, s.settings.BaseSpeed)
	return level
}

// Speed returns the ticks per second for the current score.
func (s *State) Speed() int {
	_, speed := s.settings.Progression.At(s.score, s.settings.BaseSpeed)
	return speed
}

// ObstaclesActive reports whether the obstacles are live at the current level.
func (s *State) ObstaclesActive() bool {
	return len(s.settings.Obstacles) > 0 && slices.Contains(s.settings.ObstacleLevels, s.Level())
}

// Head returns the newest body segment.
func (s *State) Head() Position {
	return s.body[len(s.body)-1]
}

// Body returns a copy of the body, tail first.
func (s *State) Body() []Position {
	return slices.Clone(s.body)
}

// Len returns the current body length.
func (s *State) Len() int {
	return len(s.body)
}

// Growth returns the target body length.
func (s *State) Growth() int {
	return s.growth
}

// Direction returns the current movement direction.
func (s *State) Direction() Direction {
	return s.dir
}

// Food returns the food cell, or NoFood when the board is full.
func (s *State) Food() Position {
	return s.food
}

// Score returns the number of food items eaten this run.
func (s *State) Score() int {
	return s.score
}

// Tick returns the number of movement ticks so far.
func (s *State) Tick() uint64 {
	return s.tick
}

// Board returns the playfield geometry.
func (s *State) Board() Board {
	return s.settings.Board
}

// Obstacles returns the obstacle rectangles, whether active or not.
func (s *State) Obstacles() []core.Rect {
	return s.settings.Obstacles
}
