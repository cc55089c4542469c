package bytecell

import (
	"fmt"

	"github.com/dvnrrs/hexcell/internal/input/key"
	"github.com/dvnrrs/hexcell/internal/input/mouse"
	"github.com/dvnrrs/hexcell/internal/renderer/core"
)

// HandleKey classifies a key press and emits the resulting intents. It
// returns true when the key was consumed. Delete on a read-only cell is
// left unhandled so an outer handler can decide; Backspace is not gated.
func (c *Cell) HandleKey(ev key.Event) bool {
	opts := c.options()

	if ev.Key == key.KeyDelete && c.readOnly(opts) {
		return false
	}

	intents := Classify(ev, opts.Keys)
	if len(intents) == 0 {
		return false
	}
	for _, intent := range intents {
		c.emit(Signal{Intent: intent, Key: ev})
	}
	return true
}

// MouseEnter handles the pointer entering the cell. An idle cell with a
// value is repainted with the hover color. With the left button held the
// cell emits IntentMouseSelection to continue a drag selection.
func (c *Cell) MouseEnter(ev mouse.Event) {
	opts := c.options()
	if hoverable(c.state) {
		c.visual.Background = opts.Palette.Get(RoleMouseOver)
	}
	applyOverlay(&c.visual, c.state, opts)

	if ev.LeftHeld() {
		c.emit(Signal{Intent: IntentMouseSelection, Mouse: ev})
	}
}

// MouseLeave reverts the hover repaint.
func (c *Cell) MouseLeave(_ mouse.Event) {
	opts := c.options()
	if hoverable(c.state) {
		c.visual.Background = core.ColorDefault
	}
	applyOverlay(&c.visual, c.state, opts)
}

// MouseDown handles a button press. The left button focuses the cell and
// emits IntentClick; the right button emits IntentRightClick. An event
// carries one button, so a press never emits both.
func (c *Cell) MouseDown(ev mouse.Event) {
	switch ev.Button {
	case mouse.ButtonLeft:
		if !c.focused {
			c.Focus()
		}
		c.emit(Signal{Intent: IntentClick, Mouse: ev})
	case mouse.ButtonRight:
		c.emit(Signal{Intent: IntentRightClick, Mouse: ev})
	}
}

// Focused reports whether the cell has keyboard focus.
func (c *Cell) Focused() bool {
	return c.focused
}

// Focus gives the cell keyboard focus and restarts nibble entry.
func (c *Cell) Focus() {
	c.focused = true
	c.nibble = 0
}

// Blur removes keyboard focus.
func (c *Cell) Blur() {
	c.focused = false
	c.nibble = 0
}

// ToolTip returns the hover description of the byte. No tooltip is shown
// for a cell without a value.
func (c *Cell) ToolTip() (string, bool) {
	b, ok := c.state.Value.Get()
	if !ok {
		return "", false
	}

	text := fmt.Sprintf("Position: 0x%08X (%d)\nValue: 0x%02X (%d) %s",
		c.state.Position, c.state.Position, b, b, KindText.Render(c.state.Value))
	if c.state.Action != ActionNone {
		text += "\nAction: " + c.state.Action.String()
	}
	return text, true
}
