package grid

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dvnrrs/hexcell/internal/bytecell"
	"github.com/dvnrrs/hexcell/internal/input/key"
	"github.com/dvnrrs/hexcell/internal/input/mouse"
)

// mouseNone is replayed on the hovered cell after a refresh.
var mouseNone = mouse.Event{Target: -1}

// HandleKey routes a key press to the focused cell: first as a command,
// then as character entry. Tab switches panes. It returns true when the key
// was consumed.
func (g *Grid) HandleKey(ev key.Event) bool {
	if ev.Key == key.KeyTab && !ev.IsModified() {
		g.pane = 1 - g.pane
		g.focusPos = bytecell.Unbound
		g.focusCursor()
		return true
	}

	c := g.cursorCell()
	if c == nil && g.doc.Len() > 0 {
		// The wheel scrolled the cursor out of view; bring it back.
		g.ensureVisible()
		g.Refresh()
		c = g.cursorCell()
	}
	if c == nil {
		return false
	}

	// Both digits of one hex byte form a single undo step.
	if ev.IsChar() && c.EntryPending() && g.entryTx != uuid.Nil {
		g.tx = g.entryTx
	} else {
		g.tx = uuid.New()
	}
	defer func() { g.tx = uuid.Nil }()

	handled := c.HandleKey(ev) || c.Type(ev)

	g.entryTx = uuid.Nil
	if c.EntryPending() {
		g.entryTx = g.tx
	}
	return handled
}

// HitTest maps a screen position to a cell target for mouse.Tracker.
func (g *Grid) HitTest(pos mouse.Position) (int, bool) {
	row := pos.Y - g.origin.Row
	if row < 0 || row >= g.rows {
		return 0, false
	}

	hexStart := g.hexX(0)
	textStart := g.textX(0)

	switch {
	case pos.X >= hexStart && pos.X < hexStart+g.bytesPerLine*hexStride:
		off := pos.X - hexStart
		if off%hexStride == hexStride-1 {
			return 0, false
		}
		return row*g.bytesPerLine + off/hexStride, true
	case pos.X >= textStart && pos.X < textStart+g.bytesPerLine:
		return g.slotCount() + row*g.bytesPerLine + pos.X - textStart, true
	default:
		return 0, false
	}
}

// HandleMouse routes a tracked mouse event to the cell it targets.
func (g *Grid) HandleMouse(ev mouse.Event) {
	switch ev.Action {
	case mouse.ActionScroll:
		if ev.Button == mouse.ButtonScrollUp {
			g.Scroll(-3)
		} else {
			g.Scroll(3)
		}
		return
	}

	c := g.cell(ev.Target)
	if c == nil {
		return
	}

	switch ev.Action {
	case mouse.ActionEnter:
		g.hover = ev.Target
		c.MouseEnter(ev)
	case mouse.ActionLeave:
		if g.hover == ev.Target {
			g.hover = -1
		}
		c.MouseLeave(ev)
	case mouse.ActionPress:
		c.MouseDown(ev)
	}
}

// HandleSignal implements bytecell.Listener.
func (g *Grid) HandleSignal(sig bytecell.Signal) {
	c := sig.Cell
	pos := c.Position()
	g.log.Debug("%s at %d (%s pane)", sig.Intent, pos, g.paneOf(c))

	switch sig.Intent {
	case bytecell.IntentByteModified:
		g.recordModify(c)

	case bytecell.IntentClick:
		g.click(c, sig.Mouse)
	case bytecell.IntentMouseSelection:
		g.dragTo(c)
	case bytecell.IntentRightClick:
		g.rightClick(c)

	case bytecell.IntentMoveNext:
		g.moveBy(1, false)
	case bytecell.IntentMovePrevious:
		g.moveBy(-1, false)
	case bytecell.IntentMoveLeft:
		g.moveBy(-1, sig.Key.Modifiers.HasShift())
	case bytecell.IntentMoveRight:
		g.moveBy(1, sig.Key.Modifiers.HasShift())
	case bytecell.IntentMoveUp:
		g.moveBy(-int64(g.bytesPerLine), sig.Key.Modifiers.HasShift())
	case bytecell.IntentMoveDown:
		g.moveBy(int64(g.bytesPerLine), sig.Key.Modifiers.HasShift())
	case bytecell.IntentMovePageUp:
		g.moveBy(-int64(g.slotCount()), sig.Key.Modifiers.HasShift())
	case bytecell.IntentMovePageDown:
		g.moveBy(int64(g.slotCount()), sig.Key.Modifiers.HasShift())

	case bytecell.IntentByteDeleted:
		g.DeleteSelection()
	case bytecell.IntentEscapeKey:
		g.clearSelection()
		clear(g.highlights)
		g.Refresh()
	case bytecell.IntentUndoRequested:
		g.Undo()
	case bytecell.IntentCopyRequested:
		g.Copy()
	case bytecell.IntentPasteRequested:
		g.Paste()
	case bytecell.IntentSelectAllRequested:
		g.SelectAll()
	}
}

// transaction returns the ID grouping the current user action.
func (g *Grid) transaction() uuid.UUID {
	if g.tx == uuid.Nil {
		return uuid.New()
	}
	return g.tx
}

func (g *Grid) recordModify(c *bytecell.Cell) {
	b, ok := c.Value().Get()
	if !ok || !c.State().Bound() {
		return
	}
	if err := g.doc.Modify(g.transaction(), c.Position(), b); err != nil {
		g.message = err.Error()
		g.log.Debug("modify %d: %v", c.Position(), err)
	}
	g.Refresh()
}

func (g *Grid) click(c *bytecell.Cell, ev mouse.Event) {
	if !c.State().Bound() {
		return
	}
	pos := c.Position()
	g.pane = g.paneOf(c)

	if ev.Modifiers.HasShift() {
		if g.anchor == bytecell.Unbound {
			g.anchor = g.cursor
		}
		g.extent = pos
	} else {
		g.selectRange(pos, pos)
	}
	g.cursor = pos
	g.Refresh()
}

func (g *Grid) dragTo(c *bytecell.Cell) {
	if !c.State().Bound() {
		return
	}
	pos := c.Position()
	if g.anchor == bytecell.Unbound {
		g.anchor = g.cursor
	}
	g.extent = pos
	g.cursor = pos
	g.Refresh()
}

func (g *Grid) rightClick(c *bytecell.Cell) {
	if !c.State().Bound() {
		return
	}
	pos := c.Position()
	if !g.inSelection(pos) {
		g.selectRange(pos, pos)
	}
	g.cursor = pos
	g.Refresh()
}

func (g *Grid) moveBy(delta int64, extend bool) {
	g.MoveTo(g.cursor+delta, extend)
}

// MoveTo moves the cursor, clamped to the document. With extend the
// selection grows from its anchor, otherwise it is cleared.
func (g *Grid) MoveTo(pos int64, extend bool) {
	if g.doc.Len() == 0 {
		return
	}
	pos = g.clamp(pos)

	if extend {
		if g.anchor == bytecell.Unbound {
			g.anchor = g.cursor
		}
		g.extent = pos
	} else {
		g.clearSelection()
	}

	g.cursor = pos
	g.ensureVisible()
	g.Refresh()
}

// DeleteSelection marks the selected bytes, or the cursor byte, deleted.
func (g *Grid) DeleteSelection() {
	if g.opts.ReadOnly {
		g.message = "read-only"
		return
	}

	start, end, ok := g.Selection()
	if !ok {
		start, end = g.cursor, g.cursor
	}

	tx := g.transaction()
	for p := start; p <= end; p++ {
		if err := g.doc.Delete(tx, p); err != nil {
			g.message = err.Error()
			break
		}
	}
	g.Refresh()
}

// Undo reverts the last edit transaction.
func (g *Grid) Undo() {
	positions, err := g.doc.Undo()
	if err != nil {
		if errors.Is(err, ErrNothingToUndo) {
			g.message = "nothing to undo"
		} else {
			g.message = err.Error()
		}
		return
	}
	g.message = fmt.Sprintf("undid %d byte(s)", len(positions))
	g.Refresh()
}

// Copy places the selected bytes, or the cursor byte, on the clipboard.
func (g *Grid) Copy() {
	start, end, ok := g.Selection()
	if !ok {
		start, end = g.cursor, g.cursor
	}
	data, err := g.doc.Slice(start, end+1)
	if err != nil {
		g.message = err.Error()
		return
	}
	g.clipboard = data
	g.message = fmt.Sprintf("copied %d byte(s)", len(data))
}

// Clipboard returns the copied bytes.
func (g *Grid) Clipboard() []byte {
	return g.clipboard
}

// SetClipboard replaces the copied bytes.
func (g *Grid) SetClipboard(data []byte) {
	g.clipboard = append([]byte(nil), data...)
}

// Paste overwrites bytes from the cursor onward with the clipboard as one
// transaction. Bytes past the end of the document are dropped.
func (g *Grid) Paste() {
	if g.opts.ReadOnly || len(g.clipboard) == 0 {
		return
	}

	tx := g.transaction()
	length := g.doc.Len()
	n := 0
	for i, b := range g.clipboard {
		p := g.cursor + int64(i)
		if p >= length {
			break
		}
		if err := g.doc.Modify(tx, p, b); err != nil {
			g.message = err.Error()
			break
		}
		n++
	}
	g.message = fmt.Sprintf("pasted %d byte(s)", n)
	g.MoveTo(g.cursor+int64(n), false)
}

// SelectAll selects the whole document.
func (g *Grid) SelectAll() {
	length := g.doc.Len()
	if length == 0 {
		return
	}
	g.selectRange(0, length-1)
	g.Refresh()
}

// Find highlights every occurrence of pattern and moves the cursor to the
// first match at or after it, wrapping around. It returns the number of
// matches.
func (g *Grid) Find(pattern []byte) int {
	clear(g.highlights)
	if len(pattern) == 0 {
		g.Refresh()
		return 0
	}

	data, err := g.doc.Slice(0, g.doc.Len())
	if err != nil {
		return 0
	}

	var matches []int64
	for off := 0; off <= len(data)-len(pattern); {
		i := bytes.Index(data[off:], pattern)
		if i < 0 {
			break
		}
		start := int64(off + i)
		matches = append(matches, start)
		for j := range pattern {
			g.highlights[start+int64(j)] = true
		}
		off += i + 1
	}

	if len(matches) == 0 {
		g.message = "no match"
		g.Refresh()
		return 0
	}

	next := matches[0]
	for _, m := range matches {
		if m >= g.cursor {
			next = m
			break
		}
	}
	g.message = fmt.Sprintf("%d match(es)", len(matches))
	g.MoveTo(next, false)
	return len(matches)
}
