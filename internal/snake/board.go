// Package snake holds the simulation state of a single run: the body, food,
// obstacles and score, plus the per-tick movement, growth and collision rules.
// It knows nothing about terminals, timing or persistence.
package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-master/internal/config"
	"github.com/vovakirdan/snake-master/internal/core"
)

// Position is the top-left pixel of a board cell.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a unit delta. Movement multiplies it by the block size.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// IsZero reports whether the direction has no motion.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Direction{}:
		return "none"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// Board is the toroidal playfield. The band above TopMargin is reserved for
// the HUD and is never part of the playable space.
type Board struct {
	Width     int
	Height    int
	BlockSize int
	TopMargin int
}

// BoardFrom converts the config geometry.
func BoardFrom(b config.Board) Board {
	return Board{
		Width:     b.Width,
		Height:    b.Height,
		BlockSize: b.BlockSize,
		TopMargin: b.TopMargin,
	}
}

// Wrap maps a position that left the playfield back in from the opposite edge:
// x wraps to [0, Width) and y to [TopMargin, Height).
func (b Board) Wrap(p Position) Position {
	return Position{
		X: core.Mod(p.X, b.Width),
		Y: b.TopMargin + core.Mod(p.Y-b.TopMargin, b.Height-b.TopMargin),
	}
}

// Contains reports whether p is the top-left corner of a playable cell.
func (b Board) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= b.TopMargin && p.Y < b.Height &&
		p.X%b.BlockSize == 0 && p.Y%b.BlockSize == 0
}

// Start returns the spawn cell, the block-aligned board center.
func (b Board) Start() Position {
	return Position{
		X: (b.Width / 2) / b.BlockSize * b.BlockSize,
		Y: (b.Height / 2) / b.BlockSize * b.BlockSize,
	}
}

// Cells returns every playable cell, row by row.
func (b Board) Cells() []Position {
	cells := make([]Position, 0, (b.Width/b.BlockSize)*((b.Height-b.TopMargin)/b.BlockSize))
	for y := b.TopMargin; y+b.BlockSize <= b.Height; y += b.BlockSize {
		for x := 0; x+b.BlockSize <= b.Width; x += b.BlockSize {
			cells = append(cells, Position{X: x, Y: y})
		}
	}
	return cells
}

// CellRect returns the unit cell at p as a rectangle for intersection tests.
func (b Board) CellRect(p Position) core.Rect {
	return core.NewRect(p.X, p.Y, b.BlockSize, b.BlockSize)
}
