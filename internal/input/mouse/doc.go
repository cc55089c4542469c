// Package mouse provides mouse input handling for the hex grid.
//
// Terminals report mouse activity as samples: a position and the set of
// buttons currently down. The Tracker turns that stream into discrete
// events against hit-tested targets:
//
//	tracker := mouse.NewTracker(grid.HitTest)
//	for _, ev := range tracker.Feed(pos, mouse.ButtonLeft, key.ModNone) {
//	    switch ev.Action {
//	    case mouse.ActionEnter:
//	        // ev.LeftHeld() reports a drag continuing into the target
//	    case mouse.ActionPress:
//	        // ev.Button is the button pressed
//	    }
//	}
//
// # Thread Safety
//
// Tracker is not synchronized. It is fed from the single event loop.
package mouse
