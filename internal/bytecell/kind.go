package bytecell

import (
	"fmt"

	"github.com/dvnrrs/hexcell/internal/input/key"
	"github.com/dvnrrs/hexcell/internal/renderer/core"
)

// Kind selects how a cell renders its byte and which characters edit it.
type Kind uint8

const (
	// KindHex shows two hex digits and accepts hex digit entry.
	KindHex Kind = iota
	// KindText shows the byte as a character and accepts printable ASCII.
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindHex:
		return "hex"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width returns the number of terminal columns the rendered text occupies.
func (k Kind) Width() int {
	if k == KindText {
		return 1
	}
	return 2
}

// placeholder is shown for bytes with no printable single-column glyph.
const placeholder = "."

// Render returns the text of a value. Absent values render as blanks of
// the kind's width.
func (k Kind) Render(v Value) string {
	b, ok := v.Get()
	switch k {
	case KindText:
		if !ok {
			return " "
		}
		r := rune(b)
		if b < 0x20 || b > 0x7E || core.RuneWidth(r) != 1 {
			return placeholder
		}
		return string(r)
	default:
		if !ok {
			return "  "
		}
		return fmt.Sprintf("%02X", b)
	}
}

// Type applies character entry to the byte. It is meant for keys HandleKey
// left unhandled and returns true when the key edited the byte.
//
// Hex cells take two digits, high nibble first, then emit IntentMoveNext.
// Text cells replace the byte with a printable ASCII character and emit
// IntentMoveNext. Either way the byte is marked modified before the value
// is written, so the write emits IntentByteModified. Bytes already marked
// added keep that action.
func (c *Cell) Type(ev key.Event) bool {
	opts := c.options()
	if c.readOnly(opts) || !c.state.Bound() || !ev.IsChar() {
		return false
	}
	current, ok := c.state.Value.Get()
	if !ok {
		return false
	}

	var next byte
	advance := false

	switch c.kind {
	case KindText:
		if ev.Rune < 0x20 || ev.Rune > 0x7E {
			return false
		}
		next = byte(ev.Rune)
		advance = true

	default:
		d, ok := hexDigit(ev.Rune)
		if !ok {
			return false
		}
		if c.nibble == 0 {
			next = d<<4 | current&0x0F
			c.nibble = 1
		} else {
			next = current&0xF0 | d
			c.nibble = 0
			advance = true
		}
	}

	if c.state.Action != ActionAdded {
		c.SetAction(ActionModified)
	}
	c.SetValue(Some(next))

	if advance {
		c.emit(Signal{Intent: IntentMoveNext, Key: ev})
	}
	return true
}

// EntryPending reports whether a hex cell has taken the high digit and is
// waiting for the low one.
func (c *Cell) EntryPending() bool {
	return c.nibble != 0
}

func hexDigit(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	default:
		return 0, false
	}
}
