package bytecell

import (
	"fmt"
	"strings"
)

// Action is the pending edit classification of a byte relative to the
// byte source.
type Action uint8

const (
	// ActionNone means the byte is unmodified.
	ActionNone Action = iota
	// ActionModified means the byte value was changed.
	ActionModified
	// ActionAdded means the byte was inserted.
	ActionAdded
	// ActionDeleted means the byte is marked for deletion.
	ActionDeleted
	// ActionAll matches every action when filtering. It is never stored on
	// a cell; assigning it is the same as assigning ActionNone.
	ActionAll
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionModified:
		return "modified"
	case ActionAdded:
		return "added"
	case ActionDeleted:
		return "deleted"
	case ActionAll:
		return "all"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Normalize maps the filter-only ActionAll to ActionNone.
func (a Action) Normalize() Action {
	if a == ActionAll {
		return ActionNone
	}
	return a
}

// Matches reports whether a passes the filter f. ActionAll matches
// everything.
func (a Action) Matches(f Action) bool {
	return f == ActionAll || a == f
}

// ParseAction parses an action name (case-insensitive).
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "nothing":
		return ActionNone, nil
	case "modified":
		return ActionModified, nil
	case "added":
		return ActionAdded, nil
	case "deleted":
		return ActionDeleted, nil
	case "all":
		return ActionAll, nil
	default:
		return ActionNone, fmt.Errorf("%w: unknown action %q", ErrInvalidArgument, s)
	}
}
