package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snake-master/internal/config"
	"github.com/vovakirdan/snake-master/internal/core"
	"github.com/vovakirdan/snake-master/internal/engine"
	"github.com/vovakirdan/snake-master/internal/highscore"
)

func newTestEngine(cfg engine.Config) *engine.Engine {
	if cfg.Game.Board.Width == 0 {
		cfg.Game = config.DefaultSnakeConfig()
	}
	return engine.New(cfg, highscore.NewMemory(0))
}

func drawSnapshot(e *engine.Engine, hover core.Action) *core.Screen {
	l := defaultLayout()
	screen := core.NewScreen(l.Cols(), l.Rows())
	Draw(screen, e.Snapshot(), l, hover)
	return screen
}

func TestDrawIntro(t *testing.T) {
	screen := drawSnapshot(newTestEngine(engine.Config{}), core.ActionNone)
	out := screen.String()

	for _, want := range []string{gameTitle, "EASY", "MEDIUM", "HARD", "QUIT"} {
		if !strings.Contains(out, want) {
			t.Errorf("intro screen is missing %q", want)
		}
	}

	// The first button is highlighted by the cursor.
	if c := screen.GetCell(10, 10).Color; c != core.ColorButtonHover {
		t.Errorf("EASY color = %v, expected hover", c)
	}
	if c := screen.GetCell(24, 10).Color; c != core.ColorButton {
		t.Errorf("MEDIUM color = %v, expected button", c)
	}
}

func TestDrawHoverHighlights(t *testing.T) {
	screen := drawSnapshot(newTestEngine(engine.Config{}), core.ActionHard)
	if c := screen.GetCell(38, 10).Color; c != core.ColorButtonHover {
		t.Errorf("hovered HARD color = %v, expected hover", c)
	}
}

func TestDrawPlaying(t *testing.T) {
	e := newTestEngine(engine.Config{Difficulty: config.DifficultyEasy, Seed: 1})
	screen := drawSnapshot(e, core.ActionNone)

	if !strings.Contains(screen.Row(0), "Score: 0") || !strings.Contains(screen.Row(0), "Level: 1") {
		t.Errorf("HUD row = %q, expected score and level", screen.Row(0))
	}
	if screen.Get(0, 1) != '─' {
		t.Errorf("separator = %q, expected a line", screen.Get(0, 1))
	}

	head := e.State().Head()
	x, y := defaultLayout().Cell(head)
	if cell := screen.GetCell(x, y); cell.Color != core.ColorSnakeHead {
		t.Errorf("head cell = %+v, expected the head color", cell)
	}

	food := e.State().Food()
	fx, fy := defaultLayout().Cell(food)
	if cell := screen.GetCell(fx, fy); cell.Color != core.ColorFood {
		t.Errorf("food cell = %+v, expected the food color", cell)
	}

	if screen.Get(57, 0) != '♪' {
		t.Errorf("mute icon = %q, expected ♪", screen.Get(57, 0))
	}
}

func TestDrawMutedIcon(t *testing.T) {
	e := newTestEngine(engine.Config{Difficulty: config.DifficultyEasy, Muted: true})
	screen := drawSnapshot(e, core.ActionNone)
	if screen.Get(57, 0) != '×' {
		t.Errorf("mute icon = %q, expected ×", screen.Get(57, 0))
	}
}

func TestDrawObstaclesOnlyWhenActive(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Obstacles.Levels = []int{1}
	e := newTestEngine(engine.Config{Game: cfg, Difficulty: config.DifficultyEasy})

	screen := drawSnapshot(e, core.ActionNone)
	if cell := screen.GetCell(20, 7); cell.Rune != '▒' || cell.Color != core.ColorObstacle {
		t.Errorf("obstacle cell = %+v, expected ▒", cell)
	}

	e = newTestEngine(engine.Config{Difficulty: config.DifficultyEasy})
	screen = drawSnapshot(e, core.ActionNone)
	if screen.Get(20, 7) == '▒' {
		t.Error("obstacles must not be drawn below level 3")
	}
}

func TestDrawPausedAndGameOver(t *testing.T) {
	e := newTestEngine(engine.Config{Difficulty: config.DifficultyEasy})
	e.Handle(engine.Event{Kind: engine.EventPause})

	out := drawSnapshot(e, core.ActionNone).String()
	for _, want := range []string{"Paused", "Resume (P)", "Restart", "Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("pause screen is missing %q", want)
		}
	}

	cfg := config.DefaultSnakeConfig()
	cfg.Obstacles = config.Obstacles{Levels: []int{1}, Rects: []config.RectCfg{{X: 320, Y: 200, W: 20, H: 20}}}
	e = newTestEngine(engine.Config{Game: cfg, Difficulty: config.DifficultyEasy})
	e.Handle(engine.Event{Kind: engine.EventTick})

	out = drawSnapshot(e, core.ActionNone).String()
	for _, want := range []string{"Game Over! Score: 0 High Score: 0", "RESTART", "QUIT"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen is missing %q", want)
		}
	}
}

func TestThemeFallback(t *testing.T) {
	p := config.DefaultSnakeConfig().Palette
	th := NewTheme(p, 42)
	if th.Style(core.Color(200)).GetBackground() != th.Style(core.ColorDefault).GetBackground() {
		t.Error("unknown color roles should use the default style")
	}

	cache := newThemeCache(p)
	cache.get(2)
	cache.get(2)
	if len(cache.themes) != 1 {
		t.Errorf("theme cache size = %d, expected 1", len(cache.themes))
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.Fill(' ', core.ColorDefault)
	s.DrawText(0, 0, "ab", core.ColorText)
	s.DrawText(2, 0, "cd", core.ColorAlert)

	out := RenderScreen(s, NewTheme(config.DefaultSnakeConfig().Palette, 1))
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
}

func TestRowSpans(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.Fill(' ', core.ColorDefault)
	s.DrawText(1, 0, "ab", core.ColorFood)
	s.SetCell(5, 0, 'x', core.ColorText)

	got := rowSpans(s, 0)
	want := []span{
		{core.ColorDefault, " "},
		{core.ColorFood, "ab"},
		{core.ColorDefault, "  "},
		{core.ColorText, "x"},
	}
	if len(got) != len(want) {
		t.Fatalf("rowSpans = %+v, expected %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("span %d = %+v, expected %+v", i, got[i], want[i])
		}
	}
}
