package bytecell

// Unbound is the position of a cell with no byte loaded.
const Unbound int64 = -1

// State is the data held by one byte cell.
type State struct {
	// Position is the offset into the byte source, Unbound when empty.
	// Other negative values are accepted and treated as unbound data.
	Position int64

	// Value is the displayed byte, absent when nothing is loaded.
	Value Value

	// Action is the pending edit classification. Never ActionAll.
	Action Action

	// Selected marks the byte as part of the selection.
	Selected bool

	// FirstSelected marks the selection anchor. Only meaningful when
	// Selected is set.
	FirstSelected bool

	// Highlighted marks the byte independently of selection, for example
	// as a search match.
	Highlighted bool

	// ReadOnly blocks delete and character entry.
	ReadOnly bool

	// SuppressNotify stops value writes from raising IntentByteModified.
	SuppressNotify bool
}

// UnboundState returns the state of a cleared cell.
func UnboundState() State {
	return State{Position: Unbound}
}

// Bound reports whether the state refers to a byte of the source.
func (s State) Bound() bool {
	return s.Position >= 0
}
