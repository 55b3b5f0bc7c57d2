package core

// Action is a semantic input, independent of the key that produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // steer paddle left
	ActionRight          // steer paddle right
	ActionConfirm        // confirm a menu choice
	ActionBack           // leave a paused or finished round
	ActionRestart        // new round after the last one ended
	ActionQuit           // exit the program or session
	ActionPause          // toggle pause

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Confirm", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions held during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	held uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as held for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.held |= 1 << a
}

// Has reports whether the action is held this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.held&(1<<a) != 0
}

// Empty reports whether no action is held.
func (f InputFrame) Empty() bool {
	return f.held == 0
}

// Steer returns -1 for left, +1 for right and 0 when neither or both are held.
func (f InputFrame) Steer() int {
	dir := 0
	if f.Has(ActionLeft) {
		dir--
	}
	if f.Has(ActionRight) {
		dir++
	}
	return dir
}

// Clear drops every action for the next frame.
func (f *InputFrame) Clear() {
	f.held = 0
}
