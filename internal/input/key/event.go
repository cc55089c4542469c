package key

import (
	"unicode"
)

// Event is one key press as delivered by the backend or parsed from a chord.
type Event struct {
	Key       Key
	Rune      rune // set when Key is KeyRune
	Modifiers Modifier
}

// NewRuneEvent returns a character key press.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent returns a press of a non-character key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

func (e Event) isRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// chordMods are the modifiers that turn a character into a chord. Shift
// only changes which character is typed.
func (e Event) chordMods() Modifier {
	if e.isRune() {
		return e.Modifiers.Without(ModShift)
	}
	return e.Modifiers
}

// IsChar reports whether e types a printable character.
func (e Event) IsChar() bool {
	return e.isRune() && unicode.IsPrint(e.Rune) && !e.IsModified()
}

// IsModified reports whether a chord modifier is held.
func (e Event) IsModified() bool {
	return e.chordMods() != ModNone
}

// Equals compares two presses. Shift is ignored for characters, and
// control chords match letters of either case because terminals do not
// report it.
func (e Event) Equals(other Event) bool {
	if e.Key != other.Key || e.chordMods() != other.chordMods() {
		return false
	}
	if e.Key != KeyRune {
		return true
	}
	if e.Modifiers.HasCtrl() {
		return unicode.ToLower(e.Rune) == unicode.ToLower(other.Rune)
	}
	return e.Rune == other.Rune
}

// String renders e as a chord such as "Ctrl+z", "Shift+Up" or "a".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
		if e.Rune == ' ' {
			name = "Space"
		}
	}
	if mods := e.chordMods(); mods != ModNone {
		return mods.String() + "+" + name
	}
	return name
}
