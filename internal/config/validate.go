package config

import (
	"fmt"
)

// ValidationError contains details about a configuration problem.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a configuration can drive a game.
func Validate(cfg SnakeConfig) error {
	if err := validateBoard(cfg.Board); err != nil {
		return err
	}
	if err := validateSpeeds(cfg); err != nil {
		return err
	}
	if err := ValidateProgression(cfg.Progression); err != nil {
		return err
	}
	return validateObstacles(cfg)
}

func validateBoard(b Board) error {
	if b.BlockSize <= 0 {
		return ValidationError{Code: "INVALID_BOARD", Message: fmt.Sprintf("block_size must be positive, got %d", b.BlockSize)}
	}
	if b.Width <= 0 || b.Height <= 0 || b.Width%b.BlockSize != 0 || b.Height%b.BlockSize != 0 {
		return ValidationError{
			Code:    "INVALID_BOARD",
			Message: fmt.Sprintf("board %dx%d must be positive multiples of block_size %d", b.Width, b.Height, b.BlockSize),
		}
	}
	if b.TopMargin < 0 || b.TopMargin%b.BlockSize != 0 || b.TopMargin >= b.Height {
		return ValidationError{
			Code:    "INVALID_BOARD",
			Message: fmt.Sprintf("top_margin %d must be a multiple of block_size below height %d", b.TopMargin, b.Height),
		}
	}
	return nil
}

func validateSpeeds(cfg SnakeConfig) error {
	for _, d := range Difficulties() {
		if cfg.Difficulties.BaseSpeed(d) <= 0 {
			return ValidationError{Code: "INVALID_SPEED", Message: fmt.Sprintf("%s speed must be positive", d)}
		}
	}
	if cfg.MenuTickRate <= 0 {
		return ValidationError{Code: "INVALID_SPEED", Message: "menu_tick_rate must be positive"}
	}
	return nil
}

// ValidateProgression checks the level table: it needs a row for score 0,
// unique thresholds, non-negative speeds and levels that never drop as the score grows.
func ValidateProgression(p Progression) error {
	if len(p) == 0 {
		return ValidationError{Code: "INVALID_PROGRESSION", Message: "progression table is empty"}
	}

	seen := make(map[int]bool, len(p))
	hasZero := false
	for _, t := range p {
		if t.MinScore < 0 {
			return ValidationError{Code: "INVALID_PROGRESSION", Message: fmt.Sprintf("negative min_score %d", t.MinScore)}
		}
		if seen[t.MinScore] {
			return ValidationError{Code: "INVALID_PROGRESSION", Message: fmt.Sprintf("duplicate min_score %d", t.MinScore)}
		}
		seen[t.MinScore] = true
		if t.MinScore == 0 {
			hasZero = true
		}
		if t.Level < 1 || t.Speed < 0 {
			return ValidationError{
				Code:    "INVALID_PROGRESSION",
				Message: fmt.Sprintf("row min_score=%d has level %d speed %d", t.MinScore, t.Level, t.Speed),
			}
		}
	}
	if !hasZero {
		return ValidationError{Code: "INVALID_PROGRESSION", Message: "progression needs a min_score 0 row"}
	}

	sorted := p.Sorted()
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Level > sorted[i-1].Level {
			return ValidationError{
				Code:    "INVALID_PROGRESSION",
				Message: fmt.Sprintf("level %d at score %d exceeds level %d at score %d", sorted[i].Level, sorted[i].MinScore, sorted[i-1].Level, sorted[i-1].MinScore),
			}
		}
	}
	return nil
}

func validateObstacles(cfg SnakeConfig) error {
	for i, r := range cfg.Obstacles.Rects {
		if r.W <= 0 || r.H <= 0 {
			return ValidationError{Code: "INVALID_OBSTACLE", Message: fmt.Sprintf("obstacle %d has no area", i)}
		}
		if r.X < 0 || r.Y < cfg.Board.TopMargin || r.X+r.W > cfg.Board.Width || r.Y+r.H > cfg.Board.Height {
			return ValidationError{Code: "INVALID_OBSTACLE", Message: fmt.Sprintf("obstacle %d lies outside the playfield", i)}
		}
	}
	return nil
}
