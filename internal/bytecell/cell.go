package bytecell

// Cell is the controller for one displayed byte slot. Cells are long-lived
// and reused as the grid scrolls: Clear returns a cell to the unbound state
// and the host repopulates it before the next paint.
type Cell struct {
	host     Host
	listener Listener
	kind     Kind

	state  State
	visual Visual

	focused bool

	// nibble counts hex digits typed since the cell gained focus.
	nibble int
}

// Option configures a Cell.
type Option func(*Cell)

// WithKind sets how the cell renders and edits its byte.
func WithKind(k Kind) Option {
	return func(c *Cell) {
		c.kind = k
	}
}

// WithListener sets the receiver of the cell's signals.
func WithListener(l Listener) Option {
	return func(c *Cell) {
		c.listener = l
	}
}

// WithPosition binds the cell to a position at construction.
func WithPosition(p int64) Option {
	return func(c *Cell) {
		c.state.Position = p
	}
}

// WithSuppressNotify starts the cell with change notification suppressed.
func WithSuppressNotify(suppress bool) Option {
	return func(c *Cell) {
		c.state.SuppressNotify = suppress
	}
}

// New creates an unbound cell owned by host.
func New(host Host, opts ...Option) (*Cell, error) {
	if host == nil {
		return nil, ErrNilHost
	}

	c := &Cell{
		host:  host,
		kind:  KindHex,
		state: UnboundState(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.UpdateVisual()
	return c, nil
}

// options pulls the host options, falling back to the defaults.
func (c *Cell) options() *Options {
	if o := c.host.CellOptions(); o != nil {
		return o
	}
	d := DefaultOptions()
	return &d
}

// SetListener replaces the receiver of the cell's signals.
func (c *Cell) SetListener(l Listener) {
	c.listener = l
}

func (c *Cell) emit(sig Signal) {
	if c.listener == nil {
		return
	}
	sig.Cell = c
	c.listener.HandleSignal(sig)
}

// Kind returns the cell kind.
func (c *Cell) Kind() Kind {
	return c.kind
}

// State returns a copy of the cell state.
func (c *Cell) State() State {
	return c.state
}

// Visual returns the last computed visual, including any hover repaint.
func (c *Cell) Visual() Visual {
	return c.visual
}

// Position returns the file position, Unbound when empty.
func (c *Cell) Position() int64 {
	return c.state.Position
}

// SetPosition stores the file position. It does not recompute the visual.
func (c *Cell) SetPosition(p int64) {
	c.state.Position = p
}

// Value returns the displayed byte.
func (c *Cell) Value() Value {
	return c.state.Value
}

// SetValue stores the byte. When the cell carries a pending action and
// notification is not suppressed, IntentByteModified is emitted once. The
// visual is always recomputed.
func (c *Cell) SetValue(v Value) {
	c.state.Value = v

	if c.state.Action != ActionNone && !c.state.SuppressNotify {
		c.emit(Signal{Intent: IntentByteModified})
	}

	c.UpdateVisual()
}

// SetByte is shorthand for SetValue(Some(b)).
func (c *Cell) SetByte(b byte) {
	c.SetValue(Some(b))
}

// ClearValue is shorthand for SetValue(None()).
func (c *Cell) ClearValue() {
	c.SetValue(None())
}

// Action returns the pending edit action.
func (c *Cell) Action() Action {
	return c.state.Action
}

// SetAction stores the action, mapping ActionAll to ActionNone, and
// recomputes the visual. It never emits IntentByteModified by itself; the
// next value write does.
func (c *Cell) SetAction(a Action) {
	c.state.Action = a.Normalize()
	c.UpdateVisual()
}

// Selected reports whether the cell is selected.
func (c *Cell) Selected() bool {
	return c.state.Selected
}

// SetSelected sets the selection flag. Unchanged values are ignored.
func (c *Cell) SetSelected(selected bool) {
	if selected == c.state.Selected {
		return
	}
	c.state.Selected = selected
	c.UpdateVisual()
}

// FirstSelected reports whether the cell is the selection anchor.
func (c *Cell) FirstSelected() bool {
	return c.state.FirstSelected
}

// SetFirstSelected marks the cell as the selection anchor. Like
// SetPosition it only stores; the host follows with SetSelected or
// UpdateVisual.
func (c *Cell) SetFirstSelected(first bool) {
	c.state.FirstSelected = first
}

// Highlighted reports whether the cell is highlighted.
func (c *Cell) Highlighted() bool {
	return c.state.Highlighted
}

// SetHighlighted sets the highlight flag. Unchanged values are ignored.
func (c *Cell) SetHighlighted(highlighted bool) {
	if highlighted == c.state.Highlighted {
		return
	}
	c.state.Highlighted = highlighted
	c.UpdateVisual()
}

// ReadOnly reports whether the cell itself is read-only. The host's
// Options.ReadOnly applies in addition.
func (c *Cell) ReadOnly() bool {
	return c.state.ReadOnly
}

// SetReadOnly sets the cell's read-only flag.
func (c *Cell) SetReadOnly(readOnly bool) {
	c.state.ReadOnly = readOnly
}

// SuppressNotify reports whether change notification is suppressed.
func (c *Cell) SuppressNotify() bool {
	return c.state.SuppressNotify
}

// SetSuppressNotify enables or disables change notification.
func (c *Cell) SetSuppressNotify(suppress bool) {
	c.state.SuppressNotify = suppress
}

// Clear returns the cell to the unbound state without notifying:
// position Unbound, no value, no action, not selected.
func (c *Cell) Clear() {
	c.state.SuppressNotify = true
	c.state.Position = Unbound
	c.SetValue(None())
	c.SetAction(ActionNone)
	c.SetSelected(false)
	c.state.SuppressNotify = false
}

// UpdateVisual recomputes the visual from the current state and the host
// options. Any hover repaint is discarded.
func (c *Cell) UpdateVisual() {
	opts := c.options()
	v := Resolve(c.state, opts)
	v.Text = c.kind.Render(c.state.Value)
	c.visual = v
}

func (c *Cell) readOnly(opts *Options) bool {
	return c.state.ReadOnly || opts.ReadOnly
}
