package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-master/internal/config"
	"github.com/vovakirdan/snake-master/internal/core"
)

// Theme maps color roles to lipgloss styles for one level.
type Theme struct {
	styles map[core.Color]lipgloss.Style
}

// NewTheme builds the theme of a level from the palette. The background and
// snake color follow the level; everything else is fixed.
func NewTheme(p config.Palette, level int) Theme {
	base := lipgloss.NewStyle()
	if bg := p.Background(level); bg != "" {
		base = base.Background(lipgloss.Color(bg))
	}
	fg := func(hex string) lipgloss.Style {
		return base.Foreground(lipgloss.Color(hex))
	}
	button := lipgloss.NewStyle().
		Background(lipgloss.Color(p.Button)).
		Foreground(lipgloss.Color(p.ButtonText))

	return Theme{styles: map[core.Color]lipgloss.Style{
		core.ColorDefault:     base,
		core.ColorSnake:       fg(p.SnakeColor(level)),
		core.ColorSnakeHead:   fg(p.SnakeColor(level)).Bold(true),
		core.ColorFood:        fg(p.Food),
		core.ColorObstacle:    fg(p.Obstacle),
		core.ColorText:        fg(p.Text),
		core.ColorAlert:       fg(p.Alert).Bold(true),
		core.ColorButton:      button,
		core.ColorButtonHover: button.Background(lipgloss.Color(p.ButtonHover)).Bold(true),
		core.ColorDim:         base.Foreground(lipgloss.Color("240")),
	}}
}

// Style returns the style for a color role, falling back to the default.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.styles[c]; ok {
		return s
	}
	return t.styles[core.ColorDefault]
}

// themeCache builds each level's theme once.
type themeCache struct {
	palette config.Palette
	themes  map[int]Theme
}

func newThemeCache(p config.Palette) *themeCache {
	return &themeCache{palette: p, themes: make(map[int]Theme)}
}

func (c *themeCache) get(level int) Theme {
	if t, ok := c.themes[level]; ok {
		return t
	}
	t := NewTheme(c.palette, level)
	c.themes[level] = t
	return t
}
