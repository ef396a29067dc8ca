package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-master/internal/core"
	"github.com/vovakirdan/snake-master/internal/engine"
)

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Mute       key.Binding
	Fullscreen key.Binding
	Easy       key.Binding
	Medium     key.Binding
	Hard       key.Binding
	Help       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f11", "f"),
			key.WithHelp("f11/f", "fullscreen"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "easy"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "medium"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "hard"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys and for the help key.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Confirm, core.ActionConfirm},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.Mute, core.ActionMute},
		{k.Fullscreen, core.ActionFullscreen},
		{k.Easy, core.ActionEasy},
		{k.Medium, core.ActionMedium},
		{k.Hard, core.ActionHard},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// phaseHelp adapts the key map to help.KeyMap for one phase.
type phaseHelp struct {
	keys  KeyMap
	phase engine.Phase
}

// ShortHelp returns key bindings for the short help view.
func (h phaseHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.phase {
	case engine.PhaseIntro:
		return []key.Binding{k.Easy, k.Medium, k.Hard, k.Confirm, k.Quit, k.Help}
	case engine.PhasePlaying:
		return []key.Binding{k.Pause, k.Mute, k.Fullscreen, k.Quit, k.Help}
	case engine.PhasePaused:
		return []key.Binding{k.Pause, k.Restart, k.Quit, k.Help}
	case engine.PhaseGameOver:
		return []key.Binding{k.Restart, k.Confirm, k.Quit, k.Help}
	default:
		return nil
	}
}

// FullHelp returns key bindings for the full help view.
func (h phaseHelp) FullHelp() [][]key.Binding {
	k := h.keys
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Easy, k.Medium, k.Hard, k.Confirm},
		{k.Pause, k.Restart, k.Mute, k.Fullscreen},
		{k.Quit, k.Help},
	}
}
