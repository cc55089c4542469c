package grid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/dvnrrs/hexcell/internal/bytecell"
	"github.com/dvnrrs/hexcell/internal/renderer/backend"
	"github.com/dvnrrs/hexcell/internal/renderer/core"
)

// DefaultBytesPerLine is the line width used when none is configured.
const DefaultBytesPerLine = 16

// Layout of one row: the offset, a gap, hex cells three columns apart, a
// space, then one column per text cell.
const (
	offsetWidth = 8
	offsetGap   = 2
	hexStride   = 3
	paneGap     = 1
)

// Logger receives debug output.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Pane identifies one of the two cell columns.
type Pane int

const (
	PaneHex Pane = iota
	PaneText
)

// String returns the pane name.
func (p Pane) String() string {
	if p == PaneText {
		return "text"
	}
	return "hex"
}

// Config configures a Grid.
type Config struct {
	// BytesPerLine is the number of bytes per row.
	BytesPerLine int

	// Rows is the number of byte rows, not counting the status line.
	Rows int

	// Origin is the top-left screen position of the grid.
	Origin core.ScreenPos

	// Options are the cell options. ColumnIndex and SelectionByte are
	// managed by the grid.
	Options bytecell.Options

	// Logger receives intent traces. Nil discards them.
	Logger Logger
}

// Grid is the host of a window of byte cells.
type Grid struct {
	doc  *Document
	opts bytecell.Options
	log  Logger

	bytesPerLine int
	rows         int
	origin       core.ScreenPos

	hex  []*bytecell.Cell
	text []*bytecell.Cell

	top    int64
	cursor int64
	pane   Pane

	// anchor and extent bound the selection; anchor is Unbound when
	// nothing is selected.
	anchor int64
	extent int64

	highlights map[int64]bool
	clipboard  []byte

	// tx groups the edits of one user action.
	tx uuid.UUID

	// entryTx is kept open while a hex byte has only its first digit.
	entryTx uuid.UUID

	// focusPos is the position the focused cell was focused at.
	focusPos int64

	hover   int
	message string

	drawn     map[int]uint64
	fullDraw  bool
	lastWidth int
}

// New creates a grid over doc.
func New(doc *Document, cfg Config) (*Grid, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if cfg.BytesPerLine <= 0 {
		cfg.BytesPerLine = DefaultBytesPerLine
	}
	if cfg.Rows <= 0 {
		cfg.Rows = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}

	g := &Grid{
		doc:          doc,
		log:          cfg.Logger,
		bytesPerLine: cfg.BytesPerLine,
		rows:         cfg.Rows,
		origin:       cfg.Origin,
		anchor:       bytecell.Unbound,
		extent:       bytecell.Unbound,
		focusPos:     bytecell.Unbound,
		highlights:   make(map[int64]bool),
		hover:        -1,
		drawn:        make(map[int]uint64),
		fullDraw:     true,
	}
	g.setOptions(cfg.Options)

	if err := g.build(); err != nil {
		return nil, err
	}
	g.Refresh()
	return g, nil
}

// CellOptions implements bytecell.Host.
func (g *Grid) CellOptions() *bytecell.Options {
	return &g.opts
}

// Document returns the byte source.
func (g *Grid) Document() *Document {
	return g.doc
}

// SetOptions replaces the cell options and repaints.
func (g *Grid) SetOptions(opts bytecell.Options) {
	g.setOptions(opts)
	g.Refresh()
}

func (g *Grid) setOptions(opts bytecell.Options) {
	if opts.Palette == nil {
		opts.Palette = bytecell.DefaultPalette.Clone()
	}
	opts.ReadOnly = opts.ReadOnly || g.doc.ReadOnly()
	opts.ColumnIndex = func(pos int64) int {
		return int(pos % int64(g.bytesPerLine))
	}
	opts.SelectionByte = g.opts.SelectionByte
	g.opts = opts
}

// build allocates the cells for the current size.
func (g *Grid) build() error {
	n := g.slotCount()
	g.hex = make([]*bytecell.Cell, n)
	g.text = make([]*bytecell.Cell, n)

	for i := 0; i < n; i++ {
		h, err := bytecell.New(g, bytecell.WithKind(bytecell.KindHex), bytecell.WithListener(g))
		if err != nil {
			return fmt.Errorf("build hex cell %d: %w", i, err)
		}
		t, err := bytecell.New(g, bytecell.WithKind(bytecell.KindText), bytecell.WithListener(g))
		if err != nil {
			return fmt.Errorf("build text cell %d: %w", i, err)
		}
		g.hex[i], g.text[i] = h, t
	}

	g.hover = -1
	g.focusPos = bytecell.Unbound
	g.Invalidate()
	return nil
}

// Resize changes the number of visible rows and the line width. A
// bytesPerLine of zero keeps the current width.
func (g *Grid) Resize(rows, bytesPerLine int) error {
	if rows <= 0 {
		rows = 1
	}
	if bytesPerLine <= 0 {
		bytesPerLine = g.bytesPerLine
	}
	if rows == g.rows && bytesPerLine == g.bytesPerLine {
		return nil
	}

	g.rows = rows
	g.bytesPerLine = bytesPerLine
	if err := g.build(); err != nil {
		return err
	}
	g.top -= g.top % int64(g.bytesPerLine)
	g.ensureVisible()
	g.Refresh()
	return nil
}

// Rows returns the number of byte rows.
func (g *Grid) Rows() int { return g.rows }

// BytesPerLine returns the line width in bytes.
func (g *Grid) BytesPerLine() int { return g.bytesPerLine }

// Width returns the number of screen columns a row occupies.
func (g *Grid) Width() int {
	return offsetWidth + offsetGap + g.bytesPerLine*hexStride + paneGap + g.bytesPerLine
}

// Top returns the position of the first displayed byte.
func (g *Grid) Top() int64 { return g.top }

// Cursor returns the cursor position.
func (g *Grid) Cursor() int64 { return g.cursor }

// Pane returns the pane receiving typed input.
func (g *Grid) Pane() Pane { return g.pane }

// Message returns the last status message.
func (g *Grid) Message() string { return g.message }

// SetMessage replaces the status message.
func (g *Grid) SetMessage(msg string) { g.message = msg }

func (g *Grid) slotCount() int {
	return g.rows * g.bytesPerLine
}

// cell returns the cell for a hit-test target: hex cells first, then text.
func (g *Grid) cell(target int) *bytecell.Cell {
	n := g.slotCount()
	switch {
	case target < 0:
		return nil
	case target < n:
		return g.hex[target]
	case target < 2*n:
		return g.text[target-n]
	default:
		return nil
	}
}

// CellAt returns the cell of a pane at a screen slot.
func (g *Grid) CellAt(p Pane, slot int) *bytecell.Cell {
	if slot < 0 || slot >= g.slotCount() {
		return nil
	}
	if p == PaneText {
		return g.text[slot]
	}
	return g.hex[slot]
}

func (g *Grid) paneOf(c *bytecell.Cell) Pane {
	if c.Kind() == bytecell.KindText {
		return PaneText
	}
	return PaneHex
}

// cursorCell returns the cell under the cursor in the active pane, or nil
// when the cursor is scrolled out of view or the document is empty.
func (g *Grid) cursorCell() *bytecell.Cell {
	if g.doc.Len() == 0 {
		return nil
	}
	return g.CellAt(g.pane, int(g.cursor-g.top))
}

// Selection returns the selected range, inclusive and ordered.
func (g *Grid) Selection() (start, end int64, ok bool) {
	if g.anchor == bytecell.Unbound {
		return 0, 0, false
	}
	start, end = g.anchor, g.extent
	if start > end {
		start, end = end, start
	}
	return start, end, true
}

func (g *Grid) inSelection(pos int64) bool {
	start, end, ok := g.Selection()
	return ok && pos >= start && pos <= end
}

func (g *Grid) clearSelection() {
	g.anchor = bytecell.Unbound
	g.extent = bytecell.Unbound
}

func (g *Grid) selectRange(anchor, extent int64) {
	g.anchor = anchor
	g.extent = extent
}

// Highlighted reports whether pos is a search match.
func (g *Grid) Highlighted(pos int64) bool {
	return g.highlights[pos]
}

func (g *Grid) clamp(pos int64) int64 {
	last := g.doc.Len() - 1
	if pos > last {
		pos = last
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}

func (g *Grid) maxTop() int64 {
	length := g.doc.Len()
	if length == 0 {
		return 0
	}
	bpl := int64(g.bytesPerLine)
	lastRow := (length - 1) / bpl
	top := (lastRow - int64(g.rows) + 1) * bpl
	return max(top, 0)
}

// ensureVisible scrolls so the cursor row is on screen.
func (g *Grid) ensureVisible() {
	bpl := int64(g.bytesPerLine)
	span := int64(g.slotCount())

	switch {
	case g.cursor < g.top:
		g.top = g.cursor - g.cursor%bpl
	case g.cursor >= g.top+span:
		g.top = (g.cursor/bpl - int64(g.rows) + 1) * bpl
	}
	g.top = min(max(g.top, 0), g.maxTop())
}

// Scroll moves the view by whole lines without moving the cursor.
func (g *Grid) Scroll(lines int) {
	top := g.top + int64(lines*g.bytesPerLine)
	top = min(max(top, 0), g.maxTop())
	if top == g.top {
		return
	}
	g.top = top
	g.Refresh()
}

// Refresh rebinds every cell to the byte now under it. Each cell is cleared
// first, then repopulated with notification suppressed.
func (g *Grid) Refresh() {
	g.updateSelectionByte()

	length := g.doc.Len()
	start, end, hasSel := g.Selection()

	for i := 0; i < g.slotCount(); i++ {
		pos := g.top + int64(i)
		for _, c := range [2]*bytecell.Cell{g.hex[i], g.text[i]} {
			c.Clear()
			if pos >= length {
				continue
			}
			b, action, err := g.doc.ByteAt(pos)
			if err != nil {
				continue
			}

			c.SetSuppressNotify(true)
			c.SetPosition(pos)
			c.SetByte(b)
			c.SetAction(action)
			c.SetHighlighted(g.highlights[pos])
			c.SetFirstSelected(hasSel && pos == g.anchor)
			c.SetSelected(hasSel && pos >= start && pos <= end)
			c.SetSuppressNotify(false)
		}
	}

	g.focusCursor()
	g.rehover()
}

// updateSelectionByte sets the auto-highlight reference to the byte at
// the selection anchor, or at the cursor when nothing is selected.
func (g *Grid) updateSelectionByte() {
	ref := g.cursor
	if g.anchor != bytecell.Unbound {
		ref = g.anchor
	}
	b, _, err := g.doc.ByteAt(ref)
	if err != nil {
		g.opts.SelectionByte = bytecell.None()
		return
	}
	g.opts.SelectionByte = bytecell.Some(b)
}

// focusCursor moves keyboard focus to the cursor cell. A cell that stays
// focused on the same position keeps its partial hex entry.
func (g *Grid) focusCursor() {
	target := g.cursorCell()
	for i := 0; i < g.slotCount(); i++ {
		for _, c := range [2]*bytecell.Cell{g.hex[i], g.text[i]} {
			if c != target && c.Focused() {
				c.Blur()
			}
		}
	}
	if target == nil {
		g.focusPos = bytecell.Unbound
		return
	}
	if !target.Focused() || g.focusPos != g.cursor {
		target.Focus()
	}
	g.focusPos = g.cursor
}

// rehover restores the hover paint Refresh discarded.
func (g *Grid) rehover() {
	if c := g.cell(g.hover); c != nil {
		c.MouseEnter(mouseNone)
	}
}

// Reload rebinds the grid after the document changed underneath it, such
// as a save dropping deleted bytes. Selection and search matches are
// discarded.
func (g *Grid) Reload() {
	clear(g.highlights)
	g.clearSelection()
	if g.doc.Len() == 0 {
		g.cursor = 0
	} else {
		g.cursor = g.clamp(g.cursor)
	}
	g.top = min(g.top, g.maxTop())
	g.ensureVisible()
	g.Refresh()
}

// Invalidate forces the next Draw to repaint everything.
func (g *Grid) Invalidate() {
	g.fullDraw = true
	clear(g.drawn)
}

// drawKey is what a drawn cell depends on.
type drawKey struct {
	Visual bytecell.Visual
	X, Y   int
}

var (
	offsetStyle = core.DefaultStyle().WithForeground(core.ColorGray)
	statusStyle = core.DefaultStyle().WithForeground(core.ColorBlack).WithBackground(core.ColorGray)
)

// Draw paints the grid and its status line. Cells whose visual is
// unchanged since the previous frame are skipped.
func (g *Grid) Draw(b backend.Backend) {
	if g.fullDraw {
		b.Fill(core.RectFromSize(g.origin.Row, g.origin.Col, g.rows+1, g.Width()), core.EmptyCell())
		g.fullDraw = false
	}

	length := g.doc.Len()
	n := g.slotCount()

	for row := 0; row < g.rows; row++ {
		y := g.origin.Row + row
		pos := g.top + int64(row*g.bytesPerLine)

		label := strings.Repeat(" ", offsetWidth)
		if pos < length {
			label = fmt.Sprintf("%08X", pos)
		}
		backend.SetString(b, g.origin.Col, y, label, offsetStyle)

		for col := 0; col < g.bytesPerLine; col++ {
			slot := row*g.bytesPerLine + col
			g.drawCell(b, slot, g.hexX(col), y)
			g.drawCell(b, n+slot, g.textX(col), y)
		}
	}

	g.drawStatus(b)

	if c := g.cursorCell(); c != nil {
		slot := int(g.cursor - g.top)
		x := g.hexX(slot % g.bytesPerLine)
		if g.pane == PaneText {
			x = g.textX(slot % g.bytesPerLine)
		}
		b.ShowCursor(x, g.origin.Row+slot/g.bytesPerLine)
	} else {
		b.HideCursor()
	}
}

func (g *Grid) drawCell(b backend.Backend, target, x, y int) {
	c := g.cell(target)
	v := c.Visual()

	h, err := hashstructure.Hash(drawKey{Visual: v, X: x, Y: y}, hashstructure.FormatV2, nil)
	if err == nil {
		if prev, ok := g.drawn[target]; ok && prev == h {
			return
		}
		g.drawn[target] = h
	}
	backend.SetString(b, x, y, v.Text, v.Style())
}

func (g *Grid) drawStatus(b backend.Backend) {
	line := g.StatusLine()
	width := g.Width()
	if n := len([]rune(line)); n < width {
		line += strings.Repeat(" ", width-n)
	}
	y := g.origin.Row + g.rows
	used := backend.SetString(b, g.origin.Col, y, line, statusStyle)
	for x := used; x < g.lastWidth; x++ {
		b.SetCell(g.origin.Col+x, y, core.EmptyCell())
	}
	g.lastWidth = used
}

// StatusLine describes the cursor, the selection and the hovered byte.
func (g *Grid) StatusLine() string {
	var sb strings.Builder

	if b, action, err := g.doc.ByteAt(g.cursor); err == nil {
		fmt.Fprintf(&sb, " %08X: %02X", g.cursor, b)
		if action != bytecell.ActionNone {
			fmt.Fprintf(&sb, " (%s)", action)
		}
	} else {
		sb.WriteString(" empty")
	}

	if start, end, ok := g.Selection(); ok {
		fmt.Fprintf(&sb, "  sel %d", end-start+1)
	}
	if g.opts.ReadOnly {
		sb.WriteString("  [RO]")
	}
	if g.doc.Modified() {
		sb.WriteString("  [+]")
	}

	if c := g.cell(g.hover); c != nil {
		if tip, ok := c.ToolTip(); ok {
			sb.WriteString("  | ")
			sb.WriteString(strings.ReplaceAll(tip, "\n", "  "))
		}
	} else if g.message != "" {
		sb.WriteString("  | ")
		sb.WriteString(g.message)
	}
	return sb.String()
}

func (g *Grid) hexX(col int) int {
	return g.origin.Col + offsetWidth + offsetGap + col*hexStride
}

func (g *Grid) textX(col int) int {
	return g.origin.Col + offsetWidth + offsetGap + g.bytesPerLine*hexStride + paneGap + col
}
