package mouse

import "github.com/dvnrrs/hexcell/internal/input/key"

// HitTest maps a screen position to a target index.
// It returns false when nothing is under the position.
type HitTest func(pos Position) (target int, ok bool)

// Tracker turns raw terminal mouse samples (position plus the button
// currently down) into press, release, enter, leave and scroll events
// against the targets reported by a HitTest.
//
// Terminals only report button state, so a press is a transition from no
// button to a button and a release is the reverse.
type Tracker struct {
	hit HitTest

	// held is the button reported by the previous sample.
	held Button

	// current is the target under the pointer, -1 if none.
	current int

	// pos is the last reported position.
	pos Position
}

// NewTracker creates a tracker using the given hit test.
func NewTracker(hit HitTest) *Tracker {
	return &Tracker{hit: hit, current: -1}
}

// Feed processes one raw sample and returns the resulting events in order.
func (t *Tracker) Feed(pos Position, button Button, mods key.Modifier) []Event {
	mk := func(action Action, target int) Event {
		return Event{
			Position:  pos,
			Held:      t.held,
			Modifiers: mods,
			Action:    action,
			Target:    target,
		}
	}

	target := -1
	if t.hit != nil {
		if idx, ok := t.hit(pos); ok {
			target = idx
		}
	}

	var events []Event

	if button.IsScroll() {
		ev := mk(ActionScroll, target)
		ev.Button = button
		t.pos = pos
		return append(events, ev)
	}

	// Crossing targets happens before any button transition so that a
	// press lands on the target that was just entered. The held button is
	// carried on enter so drag selection can continue.
	if target != t.current {
		if t.current >= 0 {
			events = append(events, mk(ActionLeave, t.current))
		}
		t.current = target
		if target >= 0 {
			events = append(events, mk(ActionEnter, target))
		}
	} else if pos != t.pos && target >= 0 {
		events = append(events, mk(ActionMove, target))
	}
	t.pos = pos

	switch {
	case t.held == ButtonNone && button != ButtonNone:
		t.held = button
		ev := mk(ActionPress, target)
		ev.Button = button
		events = append(events, ev)
	case t.held != ButtonNone && button == ButtonNone:
		ev := mk(ActionRelease, target)
		ev.Button = t.held
		t.held = ButtonNone
		ev.Held = ButtonNone
		events = append(events, ev)
	case t.held != ButtonNone && button != ButtonNone && button != t.held:
		// Switched buttons without a reported release.
		ev := mk(ActionPress, target)
		ev.Button = button
		t.held = button
		ev.Held = button
		events = append(events, ev)
	}

	return events
}

// Held returns the button currently held down.
func (t *Tracker) Held() Button {
	return t.held
}

// Current returns the target under the pointer, or -1.
func (t *Tracker) Current() int {
	return t.current
}

// Reset forgets the held button and current target. Call it after the
// layout changes so the next sample re-enters whatever is under the pointer.
func (t *Tracker) Reset() {
	t.held = ButtonNone
	t.current = -1
}
