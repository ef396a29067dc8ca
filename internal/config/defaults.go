package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and is the fallback when the embedded file
// cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: Board{
			Width:     600,
			Height:    400,
			BlockSize: 20,
			TopMargin: 40,
		},
		Difficulties: DifficultySpeed{
			Easy:   8,
			Medium: 12,
			Hard:   18,
		},
		Progression: Progression{
			{MinScore: 100, Level: 6, Speed: 18},
			{MinScore: 80, Level: 5, Speed: 16},
			{MinScore: 60, Level: 4, Speed: 14},
			{MinScore: 40, Level: 3, Speed: 12},
			{MinScore: 25, Level: 2, Speed: 10},
			{MinScore: 0, Level: 1, Speed: 0},
		},
		Obstacles: Obstacles{
			Levels: []int{3},
			Rects: []RectCfg{
				{X: 200, Y: 150, W: 60, H: 20},
				{X: 400, Y: 100, W: 20, H: 80},
				{X: 100, Y: 300, W: 100, H: 20},
			},
		},
		MenuTickRate: 15,
		Paths: Paths{
			HighScore: "highscore.txt",
			History:   "~/.snake/history.db",
			Log:       "~/.snake/snake.log",
		},
		Audio: Audio{
			Enabled: true,
			Music:   "background_music.mp3",
			Volume:  0.5,
		},
		Palette: Palette{
			Backgrounds:   []string{"#1e1e1e", "#f5f5f5", "#143c14", "#0a2850", "#3c1446", "#ff8c00"},
			Snake:         []string{"#64c864", "#329632", "#006400", "#00b4b4", "#b400b4", "#ff7800"},
			FallbackSnake: "#ffffff",
			Food:          "#ffd700",
			Obstacle:      "#b40032",
			Button:        "#323232",
			ButtonHover:   "#505050",
			ButtonText:    "#c8c8c8",
			Text:          "#dcdcdc",
			Alert:         "#ff5050",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
