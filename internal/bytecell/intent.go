package bytecell

import (
	"fmt"
	"strings"

	"github.com/dvnrrs/hexcell/internal/input/key"
	"github.com/dvnrrs/hexcell/internal/input/mouse"
)

// Intent is the named outcome a cell reports to its host.
type Intent uint8

const (
	// IntentNone is never emitted.
	IntentNone Intent = iota

	// IntentByteModified reports that the cell's byte actually changed.
	IntentByteModified

	// Pointer intents.
	IntentClick
	IntentRightClick
	IntentMouseSelection

	// Navigation intents.
	IntentMoveNext
	IntentMovePrevious
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentMovePageUp
	IntentMovePageDown

	// Editing and command intents.
	IntentByteDeleted
	IntentEscapeKey
	IntentUndoRequested
	IntentPasteRequested
	IntentCopyRequested
	IntentSelectAllRequested

	// IntentCount is the number of intents.
	IntentCount
)

var intentNames = [IntentCount]string{
	IntentNone:               "none",
	IntentByteModified:       "byte-modified",
	IntentClick:              "click",
	IntentRightClick:         "right-click",
	IntentMouseSelection:     "mouse-selection",
	IntentMoveNext:           "move-next",
	IntentMovePrevious:       "move-previous",
	IntentMoveUp:             "move-up",
	IntentMoveDown:           "move-down",
	IntentMoveLeft:           "move-left",
	IntentMoveRight:          "move-right",
	IntentMovePageUp:         "move-page-up",
	IntentMovePageDown:       "move-page-down",
	IntentByteDeleted:        "byte-deleted",
	IntentEscapeKey:          "escape",
	IntentUndoRequested:      "undo",
	IntentPasteRequested:     "paste",
	IntentCopyRequested:      "copy",
	IntentSelectAllRequested: "select-all",
}

// String returns the intent name.
func (i Intent) String() string {
	if i < IntentCount {
		return intentNames[i]
	}
	return fmt.Sprintf("Intent(%d)", i)
}

// ParseIntent parses an intent name. Underscores and dashes are
// interchangeable and case is ignored.
func ParseIntent(name string) (Intent, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, s := range intentNames {
		if s == n && Intent(i) != IntentNone {
			return Intent(i), nil
		}
	}
	return IntentNone, fmt.Errorf("%w: unknown intent %q", ErrInvalidArgument, name)
}

// IsNavigation reports whether the intent moves the caret.
func (i Intent) IsNavigation() bool {
	return i >= IntentMoveNext && i <= IntentMovePageDown
}

// Signal is one intent emitted by a cell, together with the input event
// that produced it. Key and Mouse are zero when not applicable.
type Signal struct {
	Intent Intent
	Cell   *Cell
	Key    key.Event
	Mouse  mouse.Event
}

// Listener receives the signals of a cell.
type Listener interface {
	HandleSignal(sig Signal)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(sig Signal)

// HandleSignal calls f.
func (f ListenerFunc) HandleSignal(sig Signal) {
	f(sig)
}
