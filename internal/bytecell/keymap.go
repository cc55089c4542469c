package bytecell

import "github.com/dvnrrs/hexcell/internal/input/key"

// Keymap holds the chords that map to command intents. Navigation, delete,
// backspace and escape are fixed; the commands below can be rebound.
type Keymap struct {
	Undo      []key.Event
	Paste     []key.Event
	Copy      []key.Event
	SelectAll []key.Event
}

// DefaultKeymap returns the conventional Ctrl chords.
func DefaultKeymap() Keymap {
	return Keymap{
		Undo:      []key.Event{key.MustParse("Ctrl+Z")},
		Paste:     []key.Event{key.MustParse("Ctrl+V")},
		Copy:      []key.Event{key.MustParse("Ctrl+C")},
		SelectAll: []key.Event{key.MustParse("Ctrl+A")},
	}
}

// Bind replaces the chords of a command intent. It returns false for
// intents that cannot be rebound.
func (k *Keymap) Bind(intent Intent, chords ...key.Event) bool {
	switch intent {
	case IntentUndoRequested:
		k.Undo = chords
	case IntentPasteRequested:
		k.Paste = chords
	case IntentCopyRequested:
		k.Copy = chords
	case IntentSelectAllRequested:
		k.SelectAll = chords
	default:
		return false
	}
	return true
}

func matchAny(ev key.Event, chords []key.Event) bool {
	for _, c := range chords {
		if ev.Equals(c) {
			return true
		}
	}
	return false
}

// Classify maps a key press to the intents it produces, in emission order.
// It returns nil for keys the classifier does not recognize. Read-only
// gating of Delete is applied by Cell.HandleKey, not here.
//
// Backspace yields ByteDeleted followed by MovePrevious.
func Classify(ev key.Event, km Keymap) []Intent {
	switch ev.Key {
	case key.KeyUp:
		return []Intent{IntentMoveUp}
	case key.KeyDown:
		return []Intent{IntentMoveDown}
	case key.KeyLeft:
		return []Intent{IntentMoveLeft}
	case key.KeyRight:
		return []Intent{IntentMoveRight}
	case key.KeyPageDown:
		return []Intent{IntentMovePageDown}
	case key.KeyPageUp:
		return []Intent{IntentMovePageUp}
	case key.KeyDelete:
		return []Intent{IntentByteDeleted}
	case key.KeyBackspace:
		return []Intent{IntentByteDeleted, IntentMovePrevious}
	case key.KeyEscape:
		return []Intent{IntentEscapeKey}
	}

	switch {
	case matchAny(ev, km.Undo):
		return []Intent{IntentUndoRequested}
	case matchAny(ev, km.Paste):
		return []Intent{IntentPasteRequested}
	case matchAny(ev, km.Copy):
		return []Intent{IntentCopyRequested}
	case matchAny(ev, km.SelectAll):
		return []Intent{IntentSelectAllRequested}
	}
	return nil
}
