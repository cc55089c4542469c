package mouse

import (
	"github.com/dvnrrs/hexcell/internal/input/key"
)

// Button is a mouse button or wheel direction.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonScrollUp
	ButtonScrollDown
)

var buttonNames = [...]string{"none", "left", "middle", "right", "scroll-up", "scroll-down"}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return buttonNames[ButtonNone]
}

// IsScroll reports whether b is a wheel tick rather than a button.
func (b Button) IsScroll() bool {
	return b == ButtonScrollUp || b == ButtonScrollDown
}

// Action is what happened to a target.
type Action uint8

const (
	ActionNone    Action = iota
	ActionPress          // a button went down
	ActionRelease        // the held button went up
	ActionMove           // the pointer moved within the same target
	ActionEnter          // the pointer crossed into the target
	ActionLeave          // the pointer crossed out of the target
	ActionScroll         // a wheel tick
)

var actionNames = [...]string{"none", "press", "release", "move", "enter", "leave", "scroll"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return actionNames[ActionNone]
}

// Position is a screen cell coordinate.
type Position struct {
	X, Y int
}

// Event is a mouse event resolved against a target.
type Event struct {
	Position Position

	// Button is set for press, release and scroll.
	Button Button

	// Held is the button down while the event happened.
	Held Button

	Modifiers key.Modifier
	Action    Action

	// Target is the index reported by the tracker's hit test, -1 for none.
	Target int
}

// LeftHeld reports whether the left button was down, as during a drag.
func (e Event) LeftHeld() bool {
	return e.Held == ButtonLeft
}
