// Package engine runs the game: it owns the current run, moves between the
// intro, playing, paused and game-over screens, keeps the high score and
// reports finished runs. All state lives in an Engine value; nothing is global.
package engine

import (
	"github.com/vovakirdan/snake-master/internal/config"
	"github.com/vovakirdan/snake-master/internal/snake"
)

// Phase is the screen the game is on.
type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// EventKind identifies an engine event.
type EventKind int

const (
	EventNone EventKind = iota
	EventSelectDifficulty
	EventTick
	EventTurn
	EventPause
	EventResume
	EventRestart
	EventQuit
	EventToggleMute
	EventCollision
)

func (k EventKind) String() string {
	switch k {
	case EventSelectDifficulty:
		return "select_difficulty"
	case EventTick:
		return "tick"
	case EventTurn:
		return "turn"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventRestart:
		return "restart"
	case EventQuit:
		return "quit"
	case EventToggleMute:
		return "toggle_mute"
	case EventCollision:
		return "collision"
	default:
		return "none"
	}
}

// Event is one input to the state machine.
type Event struct {
	Kind       EventKind
	Difficulty config.Difficulty // EventSelectDifficulty
	Dir        snake.Direction   // EventTurn
}

// Transition returns the phase that follows p when ev happens. It only
// decides the phase; running the simulation is the Engine's job.
// Events that do not apply to p leave it unchanged.
func Transition(p Phase, ev Event) Phase {
	if p == PhaseQuit {
		return PhaseQuit
	}
	if ev.Kind == EventQuit {
		return PhaseQuit
	}

	switch p {
	case PhaseIntro:
		if ev.Kind == EventSelectDifficulty {
			return PhasePlaying
		}
	case PhasePlaying:
		switch ev.Kind {
		case EventPause:
			return PhasePaused
		case EventCollision:
			return PhaseGameOver
		}
	case PhasePaused:
		switch ev.Kind {
		case EventResume, EventPause, EventRestart:
			return PhasePlaying
		}
	case PhaseGameOver:
		if ev.Kind == EventRestart {
			return PhasePlaying
		}
	}
	return p
}
