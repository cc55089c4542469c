package bytecell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvnrrs/hexcell/internal/input/key"
	"github.com/dvnrrs/hexcell/internal/input/mouse"
	"github.com/dvnrrs/hexcell/internal/renderer/core"
)

func TestHandleKeyEmitsInOrder(t *testing.T) {
	c, rec := newTestCell(t, testOptions(), WithPosition(5))
	c.SetByte(1)

	handled := c.HandleKey(key.NewSpecialEvent(key.KeyBackspace, key.ModNone))
	assert.True(t, handled)
	assert.Equal(t, []Intent{IntentByteDeleted, IntentMovePrevious}, rec.intents())
	for _, s := range rec.signals {
		assert.Same(t, c, s.Cell)
		assert.Equal(t, key.KeyBackspace, s.Key.Key)
	}
}

func TestHandleKeyReadOnly(t *testing.T) {
	t.Run("cell flag", func(t *testing.T) {
		c, rec := newTestCell(t, testOptions())
		c.SetReadOnly(true)

		assert.False(t, c.HandleKey(key.NewSpecialEvent(key.KeyDelete, key.ModNone)))
		assert.Empty(t, rec.signals)

		assert.True(t, c.HandleKey(key.NewSpecialEvent(key.KeyBackspace, key.ModNone)))
		assert.Equal(t, []Intent{IntentByteDeleted, IntentMovePrevious}, rec.intents())
	})

	t.Run("host flag", func(t *testing.T) {
		opts := testOptions()
		opts.ReadOnly = true
		c, rec := newTestCell(t, opts)

		assert.False(t, c.HandleKey(key.NewSpecialEvent(key.KeyDelete, key.ModNone)))
		assert.Empty(t, rec.signals)
	})

	t.Run("navigation unaffected", func(t *testing.T) {
		c, rec := newTestCell(t, testOptions())
		c.SetReadOnly(true)
		assert.True(t, c.HandleKey(key.NewSpecialEvent(key.KeyDown, key.ModNone)))
		assert.Equal(t, []Intent{IntentMoveDown}, rec.intents())
	})
}

func TestHandleKeyUnrecognized(t *testing.T) {
	c, rec := newTestCell(t, testOptions())
	assert.False(t, c.HandleKey(key.NewSpecialEvent(key.KeyF1, key.ModNone)))
	assert.False(t, c.HandleKey(key.NewRuneEvent('q', key.ModAlt)))
	assert.Empty(t, rec.signals)
}

func TestHandleKeyWithoutListener(t *testing.T) {
	c, err := New(StaticHost(testOptions()))
	require.NoError(t, err)
	assert.True(t, c.HandleKey(key.NewSpecialEvent(key.KeyUp, key.ModNone)))
}

func TestMouseHover(t *testing.T) {
	opts := testOptions()
	hover := opts.Palette.Get(RoleMouseOver)

	t.Run("idle cell", func(t *testing.T) {
		c, rec := newTestCell(t, opts, WithPosition(0))
		c.SetByte(1)

		c.MouseEnter(mouse.Event{Action: mouse.ActionEnter})
		assert.Equal(t, hover, c.Visual().Background)
		assert.Empty(t, rec.signals)

		c.MouseLeave(mouse.Event{Action: mouse.ActionLeave})
		assert.Equal(t, core.ColorDefault, c.Visual().Background)
	})

	excluded := []struct {
		name  string
		setup func(c *Cell)
	}{
		{"modified", func(c *Cell) { c.SetAction(ActionModified) }},
		{"deleted", func(c *Cell) { c.SetAction(ActionDeleted) }},
		{"added", func(c *Cell) { c.SetAction(ActionAdded) }},
		{"selected", func(c *Cell) { c.SetSelected(true) }},
		{"highlighted", func(c *Cell) { c.SetHighlighted(true) }},
		{"no value", func(c *Cell) { c.ClearValue() }},
	}
	for _, tt := range excluded {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCell(t, opts, WithPosition(0))
			c.SetByte(1)
			tt.setup(c)
			before := c.Visual()

			c.MouseEnter(mouse.Event{Action: mouse.ActionEnter})
			assert.Equal(t, before, c.Visual())
			c.MouseLeave(mouse.Event{Action: mouse.ActionLeave})
			assert.Equal(t, before, c.Visual())
		})
	}
}

func TestMouseHoverOverlayWins(t *testing.T) {
	opts := testOptions()
	opts.AutoHighlight = true
	opts.SelectionByte = Some(0x41)

	c, _ := newTestCell(t, opts, WithPosition(0))
	c.SetByte(0x41)

	c.MouseEnter(mouse.Event{})
	assert.Equal(t, opts.Palette.Get(RoleAutoHighlight), c.Visual().Background)
	c.MouseLeave(mouse.Event{})
	assert.Equal(t, opts.Palette.Get(RoleAutoHighlight), c.Visual().Background)
}

func TestMouseEnterDragSelects(t *testing.T) {
	c, rec := newTestCell(t, testOptions(), WithPosition(0))
	c.SetSelected(true)

	c.MouseEnter(mouse.Event{Action: mouse.ActionEnter, Held: mouse.ButtonLeft})
	assert.Equal(t, []Intent{IntentMouseSelection}, rec.intents())
	assert.True(t, rec.signals[0].Mouse.LeftHeld())

	rec.signals = nil
	c.MouseEnter(mouse.Event{Action: mouse.ActionEnter, Held: mouse.ButtonRight})
	assert.Empty(t, rec.signals)
}

func TestMouseDown(t *testing.T) {
	c, rec := newTestCell(t, testOptions(), WithPosition(0))

	c.MouseDown(mouse.Event{Button: mouse.ButtonLeft, Action: mouse.ActionPress})
	assert.True(t, c.Focused())
	assert.Equal(t, []Intent{IntentClick}, rec.intents())

	rec.signals = nil
	c.MouseDown(mouse.Event{Button: mouse.ButtonRight, Action: mouse.ActionPress})
	assert.Equal(t, []Intent{IntentRightClick}, rec.intents())

	rec.signals = nil
	c.MouseDown(mouse.Event{Button: mouse.ButtonMiddle, Action: mouse.ActionPress})
	assert.Empty(t, rec.signals)

	c.Blur()
	assert.False(t, c.Focused())
}

func TestToolTip(t *testing.T) {
	c, _ := newTestCell(t, testOptions())

	_, ok := c.ToolTip()
	assert.False(t, ok)

	c.SetPosition(16)
	c.SetByte('A')
	text, ok := c.ToolTip()
	require.True(t, ok)
	assert.Contains(t, text, "0x00000010")
	assert.Contains(t, text, "0x41 (65) A")
	assert.NotContains(t, text, "Action")

	c.SetAction(ActionModified)
	text, _ = c.ToolTip()
	assert.Contains(t, text, "Action: modified")
}

func TestTypeHex(t *testing.T) {
	c, rec := newTestCell(t, testOptions(), WithPosition(0))
	c.SetByte(0x00)
	c.Focus()

	assert.True(t, c.Type(key.NewRuneEvent('a', key.ModNone)))
	b, _ := c.Value().Get()
	assert.Equal(t, byte(0xA0), b)
	assert.Equal(t, ActionModified, c.Action())
	assert.Equal(t, []Intent{IntentByteModified}, rec.intents())

	assert.True(t, c.Type(key.NewRuneEvent('F', key.ModNone)))
	b, _ = c.Value().Get()
	assert.Equal(t, byte(0xAF), b)
	assert.Equal(t, []Intent{IntentByteModified, IntentByteModified, IntentMoveNext}, rec.intents())
	assert.Equal(t, "AF", c.Visual().Text)

	assert.False(t, c.Type(key.NewRuneEvent('g', key.ModNone)))
	assert.False(t, c.Type(key.NewRuneEvent('1', key.ModCtrl)))
}

func TestTypeText(t *testing.T) {
	c, rec := newTestCell(t, testOptions(), WithKind(KindText), WithPosition(0))
	c.SetByte(0x00)

	assert.True(t, c.Type(key.NewRuneEvent('Q', key.ModShift)))
	b, _ := c.Value().Get()
	assert.Equal(t, byte('Q'), b)
	assert.Equal(t, []Intent{IntentByteModified, IntentMoveNext}, rec.intents())

	assert.False(t, c.Type(key.NewRuneEvent('é', key.ModNone)))
}

func TestTypeKeepsAdded(t *testing.T) {
	c, _ := newTestCell(t, testOptions(), WithKind(KindText), WithPosition(0))
	c.SetByte(0)
	c.SetAction(ActionAdded)

	c.Type(key.NewRuneEvent('x', key.ModNone))
	assert.Equal(t, ActionAdded, c.Action())
}

func TestTypeRejected(t *testing.T) {
	t.Run("read-only", func(t *testing.T) {
		c, rec := newTestCell(t, testOptions(), WithPosition(0))
		c.SetByte(0)
		c.SetReadOnly(true)
		assert.False(t, c.Type(key.NewRuneEvent('1', key.ModNone)))
		assert.Empty(t, rec.signals)
	})

	t.Run("unbound", func(t *testing.T) {
		c, _ := newTestCell(t, testOptions())
		c.SetByte(0)
		assert.False(t, c.Type(key.NewRuneEvent('1', key.ModNone)))
	})

	t.Run("no value", func(t *testing.T) {
		c, _ := newTestCell(t, testOptions(), WithPosition(0))
		assert.False(t, c.Type(key.NewRuneEvent('1', key.ModNone)))
	})
}

func TestFocusRestartsNibble(t *testing.T) {
	c, _ := newTestCell(t, testOptions(), WithPosition(0))
	c.SetByte(0x00)

	assert.False(t, c.EntryPending())
	c.Type(key.NewRuneEvent('1', key.ModNone))
	assert.True(t, c.EntryPending())
	c.Focus()
	assert.False(t, c.EntryPending())
	c.Type(key.NewRuneEvent('2', key.ModNone))

	b, _ := c.Value().Get()
	assert.Equal(t, byte(0x20), b)
}
