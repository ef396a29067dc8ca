package core

// Color is a semantic color role for a screen cell.
// The platform layer decides what each role looks like, which lets the
// palette follow the current level without the game knowing about terminals.
type Color uint8

// Color roles used by the snake screens.
const (
	ColorDefault Color = iota
	ColorSnake
	ColorSnakeHead
	ColorFood
	ColorObstacle
	ColorText
	ColorAlert
	ColorButton
	ColorButtonHover
	ColorDim
)

func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSnake:
		return "snake"
	case ColorSnakeHead:
		return "snake_head"
	case ColorFood:
		return "food"
	case ColorObstacle:
		return "obstacle"
	case ColorText:
		return "text"
	case ColorAlert:
		return "alert"
	case ColorButton:
		return "button"
	case ColorButtonHover:
		return "button_hover"
	case ColorDim:
		return "dim"
	default:
		return "unknown"
	}
}
