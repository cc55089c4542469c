package mouse

import (
	"testing"

	"github.com/dvnrrs/hexcell/internal/input/key"
)

func TestButtonString(t *testing.T) {
	tests := []struct {
		button   Button
		expected string
	}{
		{ButtonNone, "none"},
		{ButtonLeft, "left"},
		{ButtonMiddle, "middle"},
		{ButtonRight, "right"},
		{ButtonScrollUp, "scroll-up"},
		{ButtonScrollDown, "scroll-down"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.button.String(); got != tt.expected {
				t.Errorf("Button.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "none"},
		{ActionPress, "press"},
		{ActionRelease, "release"},
		{ActionMove, "move"},
		{ActionEnter, "enter"},
		{ActionLeave, "leave"},
		{ActionScroll, "scroll"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action.String() = %q, want %q", got, tt.expected)
		}
	}
}

// columnHit treats every screen column below 10 as its own target.
func columnHit(pos Position) (int, bool) {
	if pos.X < 0 || pos.X >= 10 || pos.Y != 0 {
		return 0, false
	}
	return pos.X, true
}

func actions(events []Event) []Action {
	out := make([]Action, len(events))
	for i, ev := range events {
		out[i] = ev.Action
	}
	return out
}

func equalActions(a, b []Action) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTrackerEnterLeave(t *testing.T) {
	tr := NewTracker(columnHit)

	got := tr.Feed(Position{X: 1}, ButtonNone, key.ModNone)
	if !equalActions(actions(got), []Action{ActionEnter}) {
		t.Fatalf("first sample actions = %v, want [enter]", actions(got))
	}
	if got[0].Target != 1 {
		t.Errorf("enter target = %d, want 1", got[0].Target)
	}

	got = tr.Feed(Position{X: 2}, ButtonNone, key.ModNone)
	if !equalActions(actions(got), []Action{ActionLeave, ActionEnter}) {
		t.Fatalf("crossing actions = %v, want [leave enter]", actions(got))
	}
	if got[0].Target != 1 || got[1].Target != 2 {
		t.Errorf("targets = %d,%d, want 1,2", got[0].Target, got[1].Target)
	}

	got = tr.Feed(Position{X: 20}, ButtonNone, key.ModNone)
	if !equalActions(actions(got), []Action{ActionLeave}) {
		t.Fatalf("leaving grid actions = %v, want [leave]", actions(got))
	}
	if tr.Current() != -1 {
		t.Errorf("Current() = %d, want -1", tr.Current())
	}
}

func TestTrackerPressRelease(t *testing.T) {
	tr := NewTracker(columnHit)

	got := tr.Feed(Position{X: 3}, ButtonLeft, key.ModShift)
	if !equalActions(actions(got), []Action{ActionEnter, ActionPress}) {
		t.Fatalf("actions = %v, want [enter press]", actions(got))
	}
	press := got[1]
	if press.Button != ButtonLeft || press.Target != 3 || !press.Modifiers.HasShift() {
		t.Errorf("press = %+v", press)
	}
	if tr.Held() != ButtonLeft {
		t.Errorf("Held() = %v, want left", tr.Held())
	}

	got = tr.Feed(Position{X: 3}, ButtonNone, key.ModNone)
	if !equalActions(actions(got), []Action{ActionRelease}) {
		t.Fatalf("actions = %v, want [release]", actions(got))
	}
	if got[0].Button != ButtonLeft {
		t.Errorf("release button = %v, want left", got[0].Button)
	}
}

func TestTrackerDragEnterCarriesHeldButton(t *testing.T) {
	tr := NewTracker(columnHit)
	tr.Feed(Position{X: 0}, ButtonLeft, key.ModNone)

	got := tr.Feed(Position{X: 1}, ButtonLeft, key.ModNone)
	if !equalActions(actions(got), []Action{ActionLeave, ActionEnter}) {
		t.Fatalf("actions = %v, want [leave enter]", actions(got))
	}
	if !got[1].LeftHeld() {
		t.Error("enter during drag should report the left button held")
	}
}

func TestTrackerScroll(t *testing.T) {
	tr := NewTracker(columnHit)
	got := tr.Feed(Position{X: 4}, ButtonScrollDown, key.ModNone)
	if !equalActions(actions(got), []Action{ActionScroll}) {
		t.Fatalf("actions = %v, want [scroll]", actions(got))
	}
	if got[0].Button != ButtonScrollDown {
		t.Errorf("scroll button = %v", got[0].Button)
	}
	if tr.Held() != ButtonNone {
		t.Error("scroll must not be treated as a held button")
	}
}

func TestTrackerMoveWithinTarget(t *testing.T) {
	wide := func(pos Position) (int, bool) { return pos.X / 3, pos.X >= 0 }
	tr := NewTracker(wide)
	tr.Feed(Position{X: 0}, ButtonNone, key.ModNone)

	got := tr.Feed(Position{X: 1}, ButtonNone, key.ModNone)
	if !equalActions(actions(got), []Action{ActionMove}) {
		t.Fatalf("actions = %v, want [move]", actions(got))
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(columnHit)
	tr.Feed(Position{X: 5}, ButtonLeft, key.ModNone)
	tr.Reset()

	if tr.Held() != ButtonNone || tr.Current() != -1 {
		t.Fatal("Reset should clear held button and target")
	}
	got := tr.Feed(Position{X: 5}, ButtonNone, key.ModNone)
	if !equalActions(actions(got), []Action{ActionEnter}) {
		t.Errorf("actions after reset = %v, want [enter]", actions(got))
	}
}
