package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-master/internal/core"
	"github.com/vovakirdan/snake-master/internal/engine"
)

// Options configures the terminal program.
type Options struct {
	Fullscreen bool // start on the alternate screen
	Width      int  // initial terminal size, until the first resize message
	Height     int
}

// Model is the Bubble Tea model that drives the engine.
type Model struct {
	engine     *engine.Engine
	screen     *core.Screen
	themes     *themeCache
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	width      int
	height     int
	hover      core.Action
	fullscreen bool
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the engine.
func NewModel(e *engine.Engine, opts Options, logger *log.Logger) Model {
	cfg := e.Config()
	l := NewLayout(cfg.Board, opts.Width, opts.Height, 1)

	h := help.New()
	h.Width = l.Cols()

	return Model{
		engine:     e,
		screen:     core.NewScreen(l.Cols(), l.Rows()),
		themes:     newThemeCache(cfg.Palette),
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		width:      opts.Width,
		height:     opts.Height,
		fullscreen: opts.Fullscreen,
		logger:     logger,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.engine.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) helpView() string {
	return m.help.View(phaseHelp{keys: m.keys, phase: m.engine.Phase()})
}

// layout places the board above the help footer.
func (m Model) layout() Layout {
	return NewLayout(m.engine.Config().Board, m.width, m.height, lipgloss.Height(m.helpView()))
}

// handleKey processes keyboard input. Quit and fullscreen take effect at
// once; everything else waits for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m.apply(m.keys.Action(msg))
}

// handleMouse maps clicks on buttons and the mute icon to actions and tracks
// which button is under the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y, ok := m.layout().Pixel(msg.X, msg.Y)
	if !ok {
		m.hover = core.ActionNone
		return m, nil
	}
	action := m.engine.HitTest(x, y)
	m.hover = action

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return m.apply(action)
	}
	return m, nil
}

func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		quit := core.NewInputFrame()
		quit.Set(core.ActionQuit)
		m.engine.Step(quit)
		m.quitting = true
		return m, tea.Quit
	case core.ActionFullscreen:
		m.fullscreen = !m.fullscreen
		m.logger.Debug("fullscreen toggled", "on", m.fullscreen)
		if m.fullscreen {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleTick runs one engine frame with the input gathered since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	out := m.engine.Step(m.inputFrame)

	// Clear input for next frame
	m.inputFrame.Clear()

	if out == engine.OutcomeQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.engine.TickRate())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.helpView()
	footerRows := lipgloss.Height(footer)
	l := m.layout()
	if m.width > 0 && !l.Fits(m.width, m.height, footerRows) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			l.Cols(), l.Rows()+footerRows, m.width, m.height)
	}

	snap := m.engine.Snapshot()
	Draw(m.screen, snap, l, m.hover)

	level := 1
	if snap.Phase == engine.PhasePlaying {
		level = snap.Level
	}
	board := RenderScreen(m.screen, m.themes.get(level))

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	content := board + "\n" + helpStyle.Render(footer)

	if m.width == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program and blocks until the player quits.
// If the program stops for any other reason the engine still quits, so the
// high score is saved.
func Run(e *engine.Engine, opts Options, logger *log.Logger) error {
	model := NewModel(e, opts, logger)

	progOpts := []tea.ProgramOption{tea.WithMouseAllMotion()}
	if opts.Fullscreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, progOpts...)

	_, err := p.Run()
	if e.Phase() != engine.PhaseQuit {
		e.Handle(engine.Event{Kind: engine.EventQuit})
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
