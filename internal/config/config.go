// Package config provides YAML-based game configuration loading,
// difficulty presets and the score-driven level progression.
package config

import "github.com/vovakirdan/snake-master/internal/core"

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Board        Board           `yaml:"board"`
	Difficulties DifficultySpeed `yaml:"difficulties"`
	Progression  Progression     `yaml:"progression"`
	Obstacles    Obstacles       `yaml:"obstacles"`
	MenuTickRate int             `yaml:"menu_tick_rate"`
	Paths        Paths           `yaml:"paths"`
	Audio        Audio           `yaml:"audio"`
	Palette      Palette         `yaml:"palette"`
}

// Board defines the playfield geometry in pixels.
type Board struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	BlockSize int `yaml:"block_size"`
	TopMargin int `yaml:"top_margin"`
}

// Columns returns the number of cells across the board.
func (b Board) Columns() int {
	return b.Width / b.BlockSize
}

// Rows returns the number of cell rows, including the reserved top band.
func (b Board) Rows() int {
	return b.Height / b.BlockSize
}

// DifficultySpeed maps each difficulty to its level-1 ticks per second.
type DifficultySpeed struct {
	Easy   int `yaml:"easy"`
	Medium int `yaml:"medium"`
	Hard   int `yaml:"hard"`
}

// Obstacles defines the static obstacle layout and the levels it is active on.
type Obstacles struct {
	Levels []int     `yaml:"levels"`
	Rects  []RectCfg `yaml:"rects"`
}

// RectCfg is the YAML form of core.Rect.
type RectCfg struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Rect converts the config rectangle to a core.Rect.
func (r RectCfg) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// CoreRects returns the obstacle rectangles as core.Rect values.
func (o Obstacles) CoreRects() []core.Rect {
	rects := make([]core.Rect, 0, len(o.Rects))
	for _, r := range o.Rects {
		rects = append(rects, r.Rect())
	}
	return rects
}

// Paths holds file locations. A leading ~ expands to the home directory.
type Paths struct {
	HighScore string `yaml:"high_score"`
	History   string `yaml:"history"`
	Log       string `yaml:"log"`
}

// Audio configures the background music.
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Music   string  `yaml:"music"`
	Volume  float64 `yaml:"volume"`
}

// Palette holds hex colors. Backgrounds and Snake are indexed by level-1;
// levels beyond the list use the first background and FallbackSnake.
type Palette struct {
	Backgrounds   []string `yaml:"backgrounds"`
	Snake         []string `yaml:"snake"`
	FallbackSnake string   `yaml:"fallback_snake"`
	Food          string   `yaml:"food"`
	Obstacle      string   `yaml:"obstacle"`
	Button        string   `yaml:"button"`
	ButtonHover   string   `yaml:"button_hover"`
	ButtonText    string   `yaml:"button_text"`
	Text          string   `yaml:"text"`
	Alert         string   `yaml:"alert"`
}

// Background returns the background color for a level.
func (p Palette) Background(level int) string {
	if level >= 1 && level <= len(p.Backgrounds) {
		return p.Backgrounds[level-1]
	}
	if len(p.Backgrounds) > 0 {
		return p.Backgrounds[0]
	}
	return ""
}

// SnakeColor returns the snake color for a level.
func (p Palette) SnakeColor(level int) string {
	if level >= 1 && level <= len(p.Snake) {
		return p.Snake[level-1]
	}
	return p.FallbackSnake
}
