package engine

import (
	"github.com/vovakirdan/snake-master/internal/config"
	"github.com/vovakirdan/snake-master/internal/core"
)

// Button is a clickable menu entry in board pixel coordinates.
type Button struct {
	Label  string
	Rect   core.Rect
	Action core.Action
}

// ButtonsFor lays out the buttons of a phase on a board of the given width.
// Positions are centered on the board; on the default 600px board they match
// the classic layout.
func ButtonsFor(p Phase, b config.Board) []Button {
	mid := b.Width / 2
	switch p {
	case PhaseIntro:
		return []Button{
			{Label: config.DifficultyEasy.Title(), Rect: core.NewRect(mid-200, 200, 120, 40), Action: core.ActionEasy},
			{Label: config.DifficultyMedium.Title(), Rect: core.NewRect(mid-60, 200, 120, 40), Action: core.ActionMedium},
			{Label: config.DifficultyHard.Title(), Rect: core.NewRect(mid+80, 200, 120, 40), Action: core.ActionHard},
			{Label: "QUIT", Rect: core.NewRect(mid-60, 260, 120, 40), Action: core.ActionQuit},
		}
	case PhasePaused:
		return []Button{
			{Label: "Resume (P)", Rect: core.NewRect(mid-120, 180, 240, 50), Action: core.ActionPause},
			{Label: "Restart", Rect: core.NewRect(mid-120, 250, 240, 50), Action: core.ActionRestart},
			{Label: "Quit", Rect: core.NewRect(mid-120, 320, 240, 50), Action: core.ActionQuit},
		}
	case PhaseGameOver:
		return []Button{
			{Label: "RESTART", Rect: core.NewRect(mid-150, 220, 140, 50), Action: core.ActionRestart},
			{Label: "QUIT", Rect: core.NewRect(mid+10, 220, 140, 50), Action: core.ActionQuit},
		}
	case PhasePlaying:
		return []Button{MuteButton(b)}
	default:
		return nil
	}
}

// MuteButton is the speaker icon in the top-right corner of the HUD.
func MuteButton(b config.Board) Button {
	return Button{Label: "mute", Rect: core.NewRect(b.Width-40, 10, 24, 24), Action: core.ActionMute}
}

// HitTest returns the action of the button under the pixel (x, y), or
// ActionNone.
func HitTest(buttons []Button, x, y int) core.Action {
	for _, btn := range buttons {
		if btn.Rect.Contains(x, y) {
			return btn.Action
		}
	}
	return core.ActionNone
}
