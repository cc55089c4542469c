package bytecell

import "github.com/dvnrrs/hexcell/internal/renderer/core"

// Visual is the render description of a cell: what to paint, not how.
type Visual struct {
	Background core.Color
	Foreground core.Color
	Weight     Weight
	Text       string
}

// Style converts the visual into a terminal style.
func (v Visual) Style() core.Style {
	s := core.Style{Foreground: v.Foreground, Background: v.Background}
	if v.Weight == WeightBold {
		s = s.Bold()
	}
	return s
}

// Equals returns true if two visuals paint identically.
func (v Visual) Equals(other Visual) bool {
	return v.Style().Equals(other.Style()) && v.Text == other.Text
}

// Resolve computes the colors and weight of a cell from its state and the
// host options. A nil opts resolves against DefaultOptions. Text is left
// empty; it depends on the cell kind.
func Resolve(s State, opts *Options) Visual {
	if opts == nil {
		d := DefaultOptions()
		opts = &d
	}
	p := opts.Palette

	v := Visual{Background: core.ColorDefault}

	switch {
	case s.Selected:
		v.Weight = opts.EmphasisWeight
		v.Foreground = p.Get(RoleForegroundContrast)
		if s.FirstSelected {
			v.Background = p.Get(RoleSelectionFirst)
		} else {
			v.Background = p.Get(RoleSelectionSecond)
		}

	case s.Highlighted:
		v.Weight = opts.NormalWeight
		v.Foreground = p.Get(RoleForeground)
		v.Background = p.Get(RoleHighlight)

	case s.Action != ActionNone:
		v.Weight = WeightBold
		v.Foreground = p.Get(RoleForeground)
		switch s.Action {
		case ActionModified:
			v.Background = p.Get(RoleModified)
		case ActionDeleted:
			v.Background = p.Get(RoleDeleted)
		}
		// ActionAdded has no background rule and stays transparent.

	default:
		v.Weight = opts.NormalWeight
		if opts.Column(s.Position)%2 == 0 {
			v.Foreground = p.Get(RoleForeground)
		} else {
			v.Foreground = p.Get(RoleForegroundSecondary)
		}
	}

	applyOverlay(&v, s, opts)
	return v
}

// applyOverlay repaints the background of an unselected cell whose value
// equals the host's reference byte. It runs after every other background
// decision, hover included.
func applyOverlay(v *Visual, s State, opts *Options) {
	if !opts.AutoHighlight || s.Selected {
		return
	}
	ref, ok := opts.SelectionByte.Get()
	if !ok {
		return
	}
	if b, ok := s.Value.Get(); ok && b == ref {
		v.Background = opts.Palette.Get(RoleAutoHighlight)
	}
}

// hoverable reports whether the pointer may repaint the cell: it must hold
// a value and carry no action, selection or highlight.
func hoverable(s State) bool {
	return s.Value.Valid() && s.Action == ActionNone && !s.Selected && !s.Highlighted
}
