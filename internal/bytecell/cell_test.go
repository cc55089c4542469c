package bytecell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvnrrs/hexcell/internal/renderer/core"
)

// recorder collects emitted signals.
type recorder struct {
	signals []Signal
}

func (r *recorder) HandleSignal(sig Signal) {
	r.signals = append(r.signals, sig)
}

func (r *recorder) intents() []Intent {
	out := make([]Intent, 0, len(r.signals))
	for _, s := range r.signals {
		out = append(out, s.Intent)
	}
	return out
}

func (r *recorder) count(intent Intent) int {
	n := 0
	for _, s := range r.signals {
		if s.Intent == intent {
			n++
		}
	}
	return n
}

func newTestCell(t *testing.T, opts *Options, extra ...Option) (*Cell, *recorder) {
	t.Helper()
	rec := &recorder{}
	c, err := New(StaticHost(opts), append([]Option{WithListener(rec)}, extra...)...)
	require.NoError(t, err)
	return c, rec
}

func TestNewNilHost(t *testing.T) {
	c, err := New(nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNilHost)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewUnbound(t *testing.T) {
	c, rec := newTestCell(t, testOptions())

	assert.Equal(t, Unbound, c.Position())
	assert.False(t, c.Value().Valid())
	assert.Equal(t, ActionNone, c.Action())
	assert.False(t, c.Selected())
	assert.Equal(t, KindHex, c.Kind())
	assert.Equal(t, "  ", c.Visual().Text)
	assert.Empty(t, rec.signals)
}

func TestNilOptionsFallBack(t *testing.T) {
	c, err := New(HostFunc(func() *Options { return nil }))
	require.NoError(t, err)

	c.SetByte(0x10)
	c.SetAction(ActionDeleted)
	assert.Equal(t, DefaultPalette.Get(RoleDeleted), c.Visual().Background)
}

func TestSetValueNotification(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		suppress bool
		want     int
	}{
		{"no action", ActionNone, false, 0},
		{"modified", ActionModified, false, 1},
		{"deleted", ActionDeleted, false, 1},
		{"added", ActionAdded, false, 1},
		{"suppressed", ActionModified, true, 0},
		{"all means none", ActionAll, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestCell(t, testOptions(), WithPosition(0))
			c.SetAction(tt.action)
			c.SetSuppressNotify(tt.suppress)

			c.SetByte(0x20)
			assert.Equal(t, tt.want, rec.count(IntentByteModified))
			if tt.want > 0 {
				assert.Same(t, c, rec.signals[0].Cell)
			}
		})
	}
}

func TestSetValueAbsentStillNotifies(t *testing.T) {
	c, rec := newTestCell(t, testOptions())
	c.SetAction(ActionModified)
	c.ClearValue()
	assert.Equal(t, 1, rec.count(IntentByteModified))
}

func TestConstructedSuppressed(t *testing.T) {
	c, rec := newTestCell(t, testOptions(), WithSuppressNotify(true))
	assert.True(t, c.SuppressNotify())

	c.SetAction(ActionModified)
	c.SetByte(1)
	assert.Empty(t, rec.signals)
}

func TestSetActionAllIsNone(t *testing.T) {
	opts := testOptions()
	a, _ := newTestCell(t, opts, WithPosition(3))
	b, _ := newTestCell(t, opts, WithPosition(3))
	a.SetByte(7)
	b.SetByte(7)

	a.SetAction(ActionAll)
	b.SetAction(ActionNone)

	assert.Equal(t, ActionNone, a.Action())
	assert.Equal(t, b.Visual(), a.Visual())
}

func TestSetActionDoesNotNotify(t *testing.T) {
	c, rec := newTestCell(t, testOptions())
	c.SetByte(1)
	c.SetAction(ActionModified)
	assert.Empty(t, rec.signals)
	assert.Equal(t, testOptions().Palette.Get(RoleModified), c.Visual().Background)
}

// countingHost counts option pulls, one per visual recomputation.
type countingHost struct {
	opts  *Options
	pulls int
}

func (h *countingHost) CellOptions() *Options {
	h.pulls++
	return h.opts
}

func TestSetSelectedIdempotent(t *testing.T) {
	h := &countingHost{opts: testOptions()}
	c, err := New(h)
	require.NoError(t, err)

	before := h.pulls
	c.SetSelected(false)
	assert.Equal(t, before, h.pulls, "unchanged selection must not recompute")

	c.SetSelected(true)
	assert.Equal(t, before+1, h.pulls)
	c.SetSelected(true)
	assert.Equal(t, before+1, h.pulls)

	c.SetHighlighted(false)
	assert.Equal(t, before+1, h.pulls)
	c.SetHighlighted(true)
	assert.Equal(t, before+2, h.pulls)
	c.SetHighlighted(true)
	assert.Equal(t, before+2, h.pulls)
}

func TestStoreOnlySetters(t *testing.T) {
	h := &countingHost{opts: testOptions()}
	c, err := New(h)
	require.NoError(t, err)

	before := h.pulls
	c.SetPosition(42)
	c.SetFirstSelected(true)
	c.SetReadOnly(true)
	c.SetSuppressNotify(true)
	assert.Equal(t, before, h.pulls)

	assert.Equal(t, int64(42), c.Position())
	assert.True(t, c.FirstSelected())
	assert.True(t, c.ReadOnly())
}

func TestHostOptionsPulledOnRecompute(t *testing.T) {
	opts := testOptions()
	c, _ := newTestCell(t, opts, WithPosition(0))
	c.SetByte(0x41)

	opts.AutoHighlight = true
	opts.SelectionByte = Some(0x41)
	assert.Equal(t, core.ColorDefault, c.Visual().Background, "no recompute yet")

	c.UpdateVisual()
	assert.Equal(t, opts.Palette.Get(RoleAutoHighlight), c.Visual().Background)
}

func TestClear(t *testing.T) {
	c, rec := newTestCell(t, testOptions(), WithPosition(10))
	c.SetByte(0xFF)
	c.SetAction(ActionModified)
	c.SetSelected(true)
	rec.signals = nil

	c.Clear()

	assert.Empty(t, rec.signals, "clear must not notify")
	assert.Equal(t, Unbound, c.Position())
	assert.False(t, c.Value().Valid())
	assert.Equal(t, ActionNone, c.Action())
	assert.False(t, c.Selected())
	assert.False(t, c.SuppressNotify())
	assert.Equal(t, core.ColorDefault, c.Visual().Background)
}

func TestClearResetsSuppression(t *testing.T) {
	c, _ := newTestCell(t, testOptions(), WithSuppressNotify(true))
	c.Clear()
	assert.False(t, c.SuppressNotify())
}

func TestPopulateScenario(t *testing.T) {
	opts := testOptions()
	c, rec := newTestCell(t, opts)

	c.SetPosition(10)
	c.SetByte(0xFF)
	c.SetAction(ActionModified)

	assert.Empty(t, rec.signals, "the value was written before the action")
	v := c.Visual()
	assert.Equal(t, opts.Palette.Get(RoleModified), v.Background)
	assert.Equal(t, WeightBold, v.Weight)
	assert.Equal(t, "FF", v.Text)

	c.SetByte(0xFE)
	assert.Equal(t, []Intent{IntentByteModified}, rec.intents())
}

func TestTwoCellOverlay(t *testing.T) {
	opts := testOptions()
	opts.AutoHighlight = true
	opts.SelectionByte = Some(0x41)

	a, _ := newTestCell(t, opts, WithPosition(0))
	b, _ := newTestCell(t, opts, WithPosition(1))
	a.SetByte(0x41)
	b.SetByte(0x41)
	a.SetSelected(true)

	assert.Equal(t, opts.Palette.Get(RoleSelectionSecond), a.Visual().Background)
	assert.Equal(t, opts.Palette.Get(RoleAutoHighlight), b.Visual().Background)
}

// reentrantListener writes the value back from inside the notification.
type reentrantListener struct {
	calls int
}

func (l *reentrantListener) HandleSignal(sig Signal) {
	if sig.Intent != IntentByteModified {
		return
	}
	l.calls++
	sig.Cell.SetSuppressNotify(true)
	sig.Cell.SetByte(0x00)
	sig.Cell.SetSuppressNotify(false)
}

func TestReentrantWriteWithSuppression(t *testing.T) {
	l := &reentrantListener{}
	c, err := New(StaticHost(testOptions()), WithListener(l))
	require.NoError(t, err)

	c.SetAction(ActionModified)
	c.SetByte(0x55)

	assert.Equal(t, 1, l.calls)
	b, ok := c.Value().Get()
	require.True(t, ok)
	assert.Equal(t, byte(0x00), b)
	assert.Equal(t, "00", c.Visual().Text)
}

func TestTextKindRender(t *testing.T) {
	c, _ := newTestCell(t, testOptions(), WithKind(KindText))
	c.SetByte('A')
	assert.Equal(t, "A", c.Visual().Text)
	c.SetByte(0x00)
	assert.Equal(t, ".", c.Visual().Text)
}
