package core

// Action represents a semantic game action, abstracted from physical key presses
// and mouse clicks. The engine works with these intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow, W - turn up / previous menu item
	ActionDown              // Down arrow, S - turn down / next menu item
	ActionLeft              // Left arrow, A - turn left
	ActionRight             // Right arrow, D - turn right
	ActionConfirm           // Enter - activate the highlighted button
	ActionPause             // P - pause, and resume from the pause menu
	ActionRestart           // R - start a new run from pause or game over
	ActionQuit              // Q, Ctrl+C - persist and exit
	ActionMute              // M or the speaker icon - toggle background music
	ActionFullscreen        // F11, F - toggle the alternate screen
	ActionEasy              // 1 - easy difficulty on the intro screen
	ActionMedium            // 2 - medium difficulty
	ActionHard              // 3 - hard difficulty
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionMute:
		return "Mute"
	case ActionFullscreen:
		return "Fullscreen"
	case ActionEasy:
		return "Easy"
	case ActionMedium:
		return "Medium"
	case ActionHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// IsTurn reports whether the action is one of the four direction intents.
func (a Action) IsTurn() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame represents the input sampled for a single simulation tick.
// Direction intents are not queued: the last one set during the frame wins
// and is kept in Turn. Every action, turns included, is also recorded in Actions.
type InputFrame struct {
	Actions map[Action]bool
	Turn    Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if a.IsTurn() {
		f.Turn = a
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether nothing was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Turn = ActionNone
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Turn = f.Turn
	return clone
}
