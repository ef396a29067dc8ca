package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/snake-master/internal/audio"
	"github.com/vovakirdan/snake-master/internal/config"
	"github.com/vovakirdan/snake-master/internal/core"
	"github.com/vovakirdan/snake-master/internal/snake"
)

// Outcome is what the caller should do after an engine call.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomePaused
	OutcomeGameOver
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomePaused:
		return "paused"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Config holds the engine inputs.
type Config struct {
	Game       config.SnakeConfig
	Seed       int64
	Difficulty config.Difficulty // when set, the intro is skipped
	Muted      bool
}

// Engine is the game context. It is driven from a single goroutine.
type Engine struct {
	cfg        config.SnakeConfig
	rng        *rand.Rand
	phase      Phase
	difficulty config.Difficulty
	state      *snake.State
	highScore  int
	muted      bool
	cursor     int
	lastEvent  snake.StepEvent

	scores   HighScoreStore
	recorder RunRecorder // optional
	audio    audio.Controller
	logger   *log.Logger
	now      func() time.Time

	runID    string
	runStart time.Time
	runOpen  bool
}

// New creates an engine on the intro screen, or directly in a run when
// cfg.Difficulty is set. The high score is loaded once here.
func New(cfg Config, scores HighScoreStore) *Engine {
	e := &Engine{
		cfg:    cfg.Game,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		phase:  PhaseIntro,
		muted:  cfg.Muted,
		scores: scores,
		audio:  audio.Silent{},
		logger: log.New(io.Discard),
		now:    time.Now,
	}
	e.highScore = scores.Load()

	if cfg.Difficulty != "" {
		e.Handle(Event{Kind: EventSelectDifficulty, Difficulty: cfg.Difficulty})
	}
	return e
}

// SetRecorder sets where finished runs are reported.
func (e *Engine) SetRecorder(r RunRecorder) {
	e.recorder = r
}

// SetAudio sets the music controller and starts it unless muted.
func (e *Engine) SetAudio(a audio.Controller) {
	e.audio = a
	if !e.muted {
		e.audio.Play()
	}
}

// SetLogger sets the logger.
func (e *Engine) SetLogger(l *log.Logger) {
	e.logger = l
}

// SetClock replaces time.Now for run durations.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Handle applies one event.
func (e *Engine) Handle(ev Event) Outcome {
	switch ev.Kind {
	case EventToggleMute:
		e.toggleMute()
		return e.outcome()
	case EventTurn:
		if e.phase == PhasePlaying && !e.state.Turn(ev.Dir) {
			e.logger.Debug("turn ignored", "dir", ev.Dir, "current", e.state.Direction())
		}
		return e.outcome()
	case EventTick:
		if e.phase == PhasePlaying {
			return e.tick()
		}
		return e.outcome()
	}

	from := e.phase
	next := Transition(from, ev)

	switch {
	case next == PhaseQuit && from != PhaseQuit:
		e.quit()
	case from == PhaseIntro && next == PhasePlaying:
		e.difficulty = ev.Difficulty
		if e.difficulty == "" {
			e.difficulty = config.DifficultyMedium
		}
		e.startRun()
	case ev.Kind == EventRestart && from != PhasePlaying && next == PhasePlaying:
		e.finishRun(EndRestart)
		e.startRun()
	case ev.Kind == EventCollision && next == PhaseGameOver:
		reason := EndObstacleCollision
		if e.lastEvent == snake.StepSelfCollision {
			reason = EndSelfCollision
		}
		e.gameOver(reason)
	}

	e.setPhase(next)
	return e.outcome()
}

// Step runs one frame: the actions gathered since the last frame are applied
// and, while playing, the simulation advances by one tick.
// Quit is honored first; at most one turn is applied per frame.
func (e *Engine) Step(frame core.InputFrame) Outcome {
	if frame.Has(core.ActionQuit) {
		return e.Handle(Event{Kind: EventQuit})
	}
	if frame.Has(core.ActionMute) {
		e.Handle(Event{Kind: EventToggleMute})
	}

	switch e.phase {
	case PhasePlaying:
		if frame.Has(core.ActionPause) {
			return e.Handle(Event{Kind: EventPause})
		}
		if dir, ok := turnFor(frame.Turn); ok {
			e.Handle(Event{Kind: EventTurn, Dir: dir})
		}
		return e.Handle(Event{Kind: EventTick})

	case PhaseIntro:
		for _, d := range []struct {
			action     core.Action
			difficulty config.Difficulty
		}{
			{core.ActionEasy, config.DifficultyEasy},
			{core.ActionMedium, config.DifficultyMedium},
			{core.ActionHard, config.DifficultyHard},
		} {
			if frame.Has(d.action) {
				return e.press(d.action)
			}
		}
		return e.navigate(frame)

	case PhasePaused:
		if frame.Has(core.ActionPause) {
			return e.Handle(Event{Kind: EventResume})
		}
		if frame.Has(core.ActionRestart) {
			return e.Handle(Event{Kind: EventRestart})
		}
		return e.navigate(frame)

	case PhaseGameOver:
		if frame.Has(core.ActionRestart) {
			return e.Handle(Event{Kind: EventRestart})
		}
		return e.navigate(frame)
	}
	return e.outcome()
}

// navigate moves the menu cursor and activates the highlighted button on
// confirm.
func (e *Engine) navigate(frame core.InputFrame) Outcome {
	buttons := e.Buttons()
	if len(buttons) == 0 {
		return e.outcome()
	}
	switch frame.Turn {
	case core.ActionUp, core.ActionLeft:
		e.cursor = (e.cursor - 1 + len(buttons)) % len(buttons)
	case core.ActionDown, core.ActionRight:
		e.cursor = (e.cursor + 1) % len(buttons)
	}
	if frame.Has(core.ActionConfirm) {
		return e.press(buttons[e.cursor].Action)
	}
	return e.outcome()
}

// press performs a button action in the current phase.
func (e *Engine) press(a core.Action) Outcome {
	switch a {
	case core.ActionEasy:
		return e.Handle(Event{Kind: EventSelectDifficulty, Difficulty: config.DifficultyEasy})
	case core.ActionMedium:
		return e.Handle(Event{Kind: EventSelectDifficulty, Difficulty: config.DifficultyMedium})
	case core.ActionHard:
		return e.Handle(Event{Kind: EventSelectDifficulty, Difficulty: config.DifficultyHard})
	case core.ActionPause:
		return e.Handle(Event{Kind: EventResume})
	case core.ActionRestart:
		return e.Handle(Event{Kind: EventRestart})
	case core.ActionQuit:
		return e.Handle(Event{Kind: EventQuit})
	case core.ActionMute:
		return e.Handle(Event{Kind: EventToggleMute})
	}
	return e.outcome()
}

func turnFor(a core.Action) (snake.Direction, bool) {
	switch a {
	case core.ActionUp:
		return snake.Up, true
	case core.ActionDown:
		return snake.Down, true
	case core.ActionLeft:
		return snake.Left, true
	case core.ActionRight:
		return snake.Right, true
	}
	return snake.Direction{}, false
}

func (e *Engine) tick() Outcome {
	level := e.state.Level()
	ev := e.state.Step()
	e.lastEvent = ev

	if score := e.state.Score(); score > e.highScore {
		e.highScore = score
	}

	if ev.Fatal() {
		return e.Handle(Event{Kind: EventCollision})
	}
	if next := e.state.Level(); ev == snake.StepAte && next != level {
		e.logger.Info("level up", "run", e.runID, "level", next, "speed", e.state.Speed())
	}
	return e.outcome()
}

func (e *Engine) startRun() {
	e.state = snake.NewState(snake.SettingsFrom(e.cfg, e.difficulty), e.rng)
	e.lastEvent = snake.StepIdle
	e.runID = uuid.NewString()
	e.runStart = e.now()
	e.runOpen = true
	e.logger.Info("run started", "run", e.runID, "difficulty", e.difficulty, "speed", e.state.Speed())
}

func (e *Engine) gameOver(reason EndReason) {
	e.logger.Info("game over",
		"run", e.runID,
		"score", e.state.Score(),
		"level", e.state.Level(),
		"cause", reason,
		"high_score", e.highScore,
	)
	e.finishRun(reason)
	e.persist()
}

func (e *Engine) quit() {
	e.finishRun(EndQuit)
	e.persist()
	e.audio.Pause()
	e.logger.Info("quit", "high_score", e.highScore)
}

// finishRun reports the current run once.
func (e *Engine) finishRun(reason EndReason) {
	if !e.runOpen {
		return
	}
	e.runOpen = false
	if e.recorder == nil {
		return
	}

	run := RunRecord{
		RunID:      e.runID,
		Difficulty: string(e.difficulty),
		Score:      e.state.Score(),
		Level:      e.state.Level(),
		Ticks:      e.state.Tick(),
		EndReason:  reason,
		Duration:   e.now().Sub(e.runStart),
	}
	if err := e.recorder.RecordRun(run); err != nil {
		e.logger.Warn("run not recorded", "run", e.runID, "err", err)
	}
}

// persist saves the high score. Failures are logged and otherwise ignored.
func (e *Engine) persist() {
	if err := e.scores.Save(e.highScore); err != nil {
		e.logger.Warn("high score not saved", "score", e.highScore, "err", err)
	}
}

func (e *Engine) toggleMute() {
	e.muted = !e.muted
	if e.muted {
		e.audio.Pause()
	} else {
		e.audio.Play()
	}
	e.logger.Debug("mute toggled", "muted", e.muted)
}

func (e *Engine) setPhase(p Phase) {
	if p == e.phase {
		return
	}
	e.logger.Debug("phase", "from", e.phase, "to", p)
	e.phase = p
	e.cursor = 0
}

func (e *Engine) outcome() Outcome {
	switch e.phase {
	case PhasePaused:
		return OutcomePaused
	case PhaseGameOver:
		return OutcomeGameOver
	case PhaseQuit:
		return OutcomeQuit
	default:
		return OutcomeContinue
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// HighScore returns the best score seen, persisted or not.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Muted reports whether the music is muted.
func (e *Engine) Muted() bool {
	return e.muted
}

// Difficulty returns the chosen difficulty, empty on the intro screen.
func (e *Engine) Difficulty() config.Difficulty {
	return e.difficulty
}

// State returns the current run, or nil before a difficulty is chosen.
func (e *Engine) State() *snake.State {
	return e.state
}

// Config returns the game configuration.
func (e *Engine) Config() config.SnakeConfig {
	return e.cfg
}

// Buttons returns the clickable buttons of the current phase. While playing
// that is only the mute icon.
func (e *Engine) Buttons() []Button {
	return ButtonsFor(e.phase, e.cfg.Board)
}

// HitTest maps a click at board pixel (x, y) to an action.
func (e *Engine) HitTest(x, y int) core.Action {
	return HitTest(e.Buttons(), x, y)
}

// Cursor returns the index of the highlighted menu button.
func (e *Engine) Cursor() int {
	return e.cursor
}

// TickRate returns the frames per second to run at: the level speed while
// playing, the menu rate otherwise.
func (e *Engine) TickRate() int {
	if e.phase == PhasePlaying {
		return e.state.Speed()
	}
	if e.cfg.MenuTickRate > 0 {
		return e.cfg.MenuTickRate
	}
	return 15
}
