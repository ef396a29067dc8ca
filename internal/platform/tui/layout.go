package tui

import (
	"github.com/vovakirdan/snake-master/internal/config"
	"github.com/vovakirdan/snake-master/internal/core"
	"github.com/vovakirdan/snake-master/internal/snake"
)

// colsPerBlock is how many terminal columns one board block takes, so that
// blocks look roughly square.
const colsPerBlock = 2

// Layout maps board pixels to terminal cells and back. The board is drawn
// centered in the terminal with a footer of help lines below it.
type Layout struct {
	Board   config.Board
	OffsetX int // terminal column of the board's left edge
	OffsetY int // terminal row of the board's top edge
}

// NewLayout centers the board in a terminal of termW x termH cells, leaving
// footer rows below it.
func NewLayout(board config.Board, termW, termH, footer int) Layout {
	l := Layout{Board: board}
	l.OffsetX = max(0, (termW-l.Cols())/2)
	l.OffsetY = max(0, (termH-l.Rows()-footer)/2)
	return l
}

// Cols returns the board width in terminal columns.
func (l Layout) Cols() int {
	return l.Board.Width / l.Board.BlockSize * colsPerBlock
}

// Rows returns the board height in terminal rows, HUD band included.
func (l Layout) Rows() int {
	return l.Board.Height / l.Board.BlockSize
}

// Fits reports whether the board and footer fit in the terminal.
func (l Layout) Fits(termW, termH, footer int) bool {
	return termW >= l.Cols() && termH >= l.Rows()+footer
}

// Cell returns the screen cell of the left half of a board block.
func (l Layout) Cell(p snake.Position) (x, y int) {
	return p.X / l.Board.BlockSize * colsPerBlock, p.Y / l.Board.BlockSize
}

// CellRect returns the screen cells covered by a pixel rectangle.
func (l Layout) CellRect(r core.Rect) core.Rect {
	bs := l.Board.BlockSize
	x0 := r.X * colsPerBlock / bs
	x1 := core.CeilDiv(r.Right()*colsPerBlock, bs)
	y0 := r.Y / bs
	y1 := core.CeilDiv(r.Bottom(), bs)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Pixel maps a terminal cell to the board pixel at its center.
// ok is false when the cell is outside the board.
func (l Layout) Pixel(col, row int) (x, y int, ok bool) {
	c := col - l.OffsetX
	r := row - l.OffsetY
	if c < 0 || r < 0 || c >= l.Cols() || r >= l.Rows() {
		return 0, 0, false
	}
	bs := l.Board.BlockSize
	return c*bs/colsPerBlock + bs/(2*colsPerBlock), r*bs + bs/2, true
}
