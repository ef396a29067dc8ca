package config

import (
	"fmt"
	"sort"
	"strings"
)

// Difficulty represents a named difficulty chosen on the intro screen.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the presets in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a flag value to a Difficulty.
// "normal" is accepted as an alias for medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Title returns the button label for the difficulty.
func (d Difficulty) Title() string {
	return strings.ToUpper(string(d))
}

// BaseSpeed returns the level-1 ticks per second for a difficulty.
func (s DifficultySpeed) BaseSpeed(d Difficulty) int {
	switch d {
	case DifficultyMedium:
		return s.Medium
	case DifficultyHard:
		return s.Hard
	default:
		return s.Easy
	}
}

// Threshold is one row of the progression table.
type Threshold struct {
	MinScore int `yaml:"min_score"`
	Level    int `yaml:"level"`
	Speed    int `yaml:"speed"` // 0 keeps the difficulty base speed
}

// Progression maps a score to a level and a speed.
// Rows may be listed in any order; the highest MinScore not above the score wins.
type Progression []Threshold

// At returns the level and ticks per second for a score.
// baseSpeed is used for rows whose Speed is 0.
func (p Progression) At(score, baseSpeed int) (level, speed int) {
	best := -1
	for i, t := range p {
		if score >= t.MinScore && (best < 0 || t.MinScore > p[best].MinScore) {
			best = i
		}
	}
	if best < 0 {
		return 1, baseSpeed
	}
	t := p[best]
	if t.Speed == 0 {
		return t.Level, baseSpeed
	}
	return t.Level, t.Speed
}

// MaxLevel returns the highest level in the table.
func (p Progression) MaxLevel() int {
	maxLevel := 0
	for _, t := range p {
		maxLevel = max(maxLevel, t.Level)
	}
	return maxLevel
}

// Sorted returns a copy ordered from the highest threshold down.
func (p Progression) Sorted() Progression {
	out := make(Progression, len(p))
	copy(out, p)
	sort.Slice(out, func(i, j int) bool {
		return out[i].MinScore > out[j].MinScore
	})
	return out
}
