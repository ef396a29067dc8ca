package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-master/internal/config"
	"github.com/vovakirdan/snake-master/internal/engine"
)

func newTestModel(e *engine.Engine) Model {
	return NewModel(e, Options{Width: 80, Height: 25}, log.New(io.Discard))
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelKeyWaitsForTick(t *testing.T) {
	e := newTestEngine(engine.Config{})
	m := newTestModel(e)

	m, _ = update(t, m, runeKey('2'))
	if e.Phase() != engine.PhaseIntro {
		t.Fatal("keys must not act before the next tick")
	}

	_, cmd := update(t, m, TickMsg{})
	if e.Phase() != engine.PhasePlaying || e.Difficulty() != config.DifficultyMedium {
		t.Errorf("phase/difficulty = %v/%v, expected playing/medium", e.Phase(), e.Difficulty())
	}
	if cmd == nil {
		t.Error("tick must schedule the next tick")
	}
}

func TestModelQuitIsImmediate(t *testing.T) {
	e := newTestEngine(engine.Config{Difficulty: config.DifficultyEasy})
	m := newTestModel(e)

	m, cmd := update(t, m, runeKey('q'))
	if e.Phase() != engine.PhaseQuit {
		t.Errorf("Phase() = %v, expected quit", e.Phase())
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit message")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelClickSelectsDifficulty(t *testing.T) {
	e := newTestEngine(engine.Config{})
	m := newTestModel(e)

	// HARD button cell (40, 11) on the board, offset (10, 2).
	click := tea.MouseMsg{X: 50, Y: 13, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, click)
	update(t, m, TickMsg{})

	if e.Difficulty() != config.DifficultyHard {
		t.Errorf("Difficulty() = %v, expected hard", e.Difficulty())
	}
}

func TestModelHover(t *testing.T) {
	e := newTestEngine(engine.Config{})
	m := newTestModel(e)

	m, _ = update(t, m, tea.MouseMsg{X: 20, Y: 12, Action: tea.MouseActionMotion})
	if m.hover.String() != "Easy" {
		t.Errorf("hover = %v, expected Easy", m.hover)
	}
	if e.Phase() != engine.PhaseIntro {
		t.Error("motion must not click")
	}
}

func TestModelFullscreenToggle(t *testing.T) {
	m := newTestModel(newTestEngine(engine.Config{}))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyF11})
	if !m.fullscreen || cmd == nil {
		t.Error("F11 should enter the alternate screen")
	}
	m, cmd = update(t, m, runeKey('f'))
	if m.fullscreen || cmd == nil {
		t.Error("f should leave the alternate screen")
	}
}

func TestModelTooSmall(t *testing.T) {
	m := newTestModel(newTestEngine(engine.Config{}))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})

	if got := m.View(); !strings.HasPrefix(got, "Terminal too small") {
		t.Errorf("View() = %q, expected a too-small message", got)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(newTestEngine(engine.Config{}))
	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
}
