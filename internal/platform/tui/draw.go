package tui

import (
	"fmt"

	"github.com/vovakirdan/snake-master/internal/core"
	"github.com/vovakirdan/snake-master/internal/engine"
	"github.com/vovakirdan/snake-master/internal/snake"
)

const gameTitle = "Snake Master Deluxe"

// Draw renders a snapshot into dst, which must be the size of the board.
// hover is the action of the button under the mouse pointer, if any.
func Draw(dst *core.Screen, snap engine.Snapshot, l Layout, hover core.Action) {
	dst.Fill(' ', core.ColorDefault)

	switch snap.Phase {
	case engine.PhaseIntro:
		drawIntro(dst, snap, l)
	case engine.PhasePlaying:
		drawPlaying(dst, snap, l, hover)
		return
	case engine.PhasePaused:
		dst.DrawTextCentered(pixelRow(l, l.Board.Height/3), "Paused", core.ColorText)
	case engine.PhaseGameOver:
		msg := fmt.Sprintf("Game Over! Score: %d High Score: %d", snap.Score, snap.HighScore)
		dst.DrawTextCentered(pixelRow(l, l.Board.Height/3), msg, core.ColorAlert)
	}
	drawButtons(dst, snap, l, hover)
}

// pixelRow returns the screen row holding pixel row y.
func pixelRow(l Layout, y int) int {
	return y / l.Board.BlockSize
}

func drawIntro(dst *core.Screen, snap engine.Snapshot, l Layout) {
	dst.DrawTextCentered(pixelRow(l, l.Board.Height/6), gameTitle, core.ColorText)
	dst.DrawTextCentered(pixelRow(l, l.Board.Height/6)+2, "Choose a difficulty", core.ColorDim)
	if snap.HighScore > 0 {
		dst.DrawTextCentered(pixelRow(l, l.Board.Height/6)+4, fmt.Sprintf("High Score: %d", snap.HighScore), core.ColorText)
	}
}

func drawButtons(dst *core.Screen, snap engine.Snapshot, l Layout, hover core.Action) {
	for i, btn := range snap.Buttons {
		color := core.ColorButton
		if i == snap.Cursor || btn.Action == hover {
			color = core.ColorButtonHover
		}
		r := l.CellRect(btn.Rect)
		dst.DrawRect(r, ' ', color)

		label := []rune(btn.Label)
		x := r.X + (r.W-len(label))/2
		y := r.Y + (r.H-1)/2
		dst.DrawText(x, y, btn.Label, color)
	}
}

func drawPlaying(dst *core.Screen, snap engine.Snapshot, l Layout, hover core.Action) {
	drawHUD(dst, snap, l, hover)

	for _, obs := range snap.Obstacles {
		dst.DrawRect(l.CellRect(obs), '▒', core.ColorObstacle)
	}

	if snap.Food != snake.NoFood {
		x, y := l.Cell(snap.Food)
		dst.DrawText(x, y, "<>", core.ColorFood)
	}

	for i, seg := range snap.Body {
		x, y := l.Cell(seg)
		if i == len(snap.Body)-1 {
			dst.DrawText(x, y, "▓▓", core.ColorSnakeHead)
		} else {
			dst.DrawText(x, y, "██", core.ColorSnake)
		}
	}
}

func drawHUD(dst *core.Screen, snap engine.Snapshot, l Layout, hover core.Action) {
	hud := fmt.Sprintf(" Score: %d  Level: %d  High Score: %d", snap.Score, snap.Level, snap.HighScore)
	dst.DrawText(0, 0, hud, core.ColorText)

	// Separator on the last row of the reserved band.
	sep := pixelRow(l, l.Board.TopMargin) - 1
	if sep > 0 {
		for x := 0; x < dst.Width(); x++ {
			dst.SetCell(x, sep, '─', core.ColorDim)
		}
	}

	mute := engine.MuteButton(l.Board)
	color := core.ColorButton
	if hover == core.ActionMute {
		color = core.ColorButtonHover
	}
	r := l.CellRect(mute.Rect)
	dst.DrawRect(r, ' ', color)
	icon := '♪'
	if snap.Muted {
		icon = '×'
	}
	dst.SetCell(r.X+r.W/2, r.Y, icon, color)
}
