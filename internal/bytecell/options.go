package bytecell

import (
	"fmt"
	"strings"

	"github.com/dvnrrs/hexcell/internal/renderer/core"
)

// Role names a color the host supplies to its cells.
type Role uint8

const (
	// RoleSelectionFirst paints the selection anchor.
	RoleSelectionFirst Role = iota
	// RoleSelectionSecond paints the rest of the selection.
	RoleSelectionSecond
	// RoleHighlight paints highlighted bytes (search matches).
	RoleHighlight
	// RoleModified paints bytes with a pending modification.
	RoleModified
	// RoleDeleted paints bytes marked for deletion.
	RoleDeleted
	// RoleForeground is the normal text color.
	RoleForeground
	// RoleForegroundContrast is the text color on a selection.
	RoleForegroundContrast
	// RoleForegroundSecondary is the text color of odd columns.
	RoleForegroundSecondary
	// RoleMouseOver paints the byte under the pointer.
	RoleMouseOver
	// RoleAutoHighlight paints bytes equal to the reference byte.
	RoleAutoHighlight

	// RoleCount is the number of roles.
	RoleCount
)

var roleNames = [RoleCount]string{
	RoleSelectionFirst:      "selection_first",
	RoleSelectionSecond:     "selection_second",
	RoleHighlight:           "highlight",
	RoleModified:            "modified",
	RoleDeleted:             "deleted",
	RoleForeground:          "foreground",
	RoleForegroundContrast:  "foreground_contrast",
	RoleForegroundSecondary: "foreground_secondary",
	RoleMouseOver:           "mouse_over",
	RoleAutoHighlight:       "auto_highlight",
}

// String returns the configuration name of the role.
func (r Role) String() string {
	if r < RoleCount {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", r)
}

// ParseRole parses a role name as used in configuration files.
// Dashes and underscores are interchangeable.
func ParseRole(name string) (Role, error) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for r, n := range roleNames {
		if n == name {
			return Role(r), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown color role %q", ErrInvalidArgument, name)
}

// Palette maps roles to colors. Missing roles fall back to DefaultPalette.
type Palette map[Role]core.Color

// DefaultPalette holds the colors used for roles a palette leaves unset.
// The values are tuned for dark terminals.
var DefaultPalette = Palette{
	RoleSelectionFirst:      core.ColorFromRGB(0x64, 0x95, 0xED),
	RoleSelectionSecond:     core.ColorFromRGB(0x3A, 0x5F, 0xCD),
	RoleHighlight:           core.ColorFromRGB(0x8B, 0x75, 0x00),
	RoleModified:            core.ColorFromRGB(0x6E, 0x6E, 0x6E),
	RoleDeleted:             core.ColorFromRGB(0xB2, 0x22, 0x22),
	RoleForeground:          core.ColorFromRGB(0xD0, 0xD0, 0xD0),
	RoleForegroundContrast:  core.ColorWhite,
	RoleForegroundSecondary: core.ColorFromRGB(0x87, 0xAF, 0xD7),
	RoleMouseOver:           core.ColorFromRGB(0x30, 0x4A, 0x5E),
	RoleAutoHighlight:       core.ColorFromRGB(0x2E, 0x5E, 0x3E),
}

// Get returns the color for a role, falling back to DefaultPalette.
// Roles outside the known set resolve to the terminal default.
func (p Palette) Get(r Role) core.Color {
	if c, ok := p[r]; ok {
		return c
	}
	if c, ok := DefaultPalette[r]; ok {
		return c
	}
	return core.ColorDefault
}

// Clone returns a copy of the palette.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for r, c := range p {
		out[r] = c
	}
	return out
}

// Weight is the font weight of a cell's text.
type Weight uint8

const (
	// WeightNormal is regular text.
	WeightNormal Weight = iota
	// WeightBold is bold text.
	WeightBold
)

// String returns the weight name.
func (w Weight) String() string {
	if w == WeightBold {
		return "bold"
	}
	return "normal"
}

// Options are the shared style and behavior settings a host exposes to its
// cells. Cells read them on every recomputation and never modify them.
type Options struct {
	// Palette supplies the colors for each role.
	Palette Palette

	// NormalWeight is used for highlighted and default cells.
	NormalWeight Weight

	// EmphasisWeight is used for selected cells.
	EmphasisWeight Weight

	// AutoHighlight enables the same-byte overlay.
	AutoHighlight bool

	// SelectionByte is the reference byte for the overlay.
	SelectionByte Value

	// ReadOnly blocks edits on every cell of the host.
	ReadOnly bool

	// ColumnIndex returns the display column of a file position.
	// When nil the position itself is used.
	ColumnIndex func(position int64) int

	// Keys holds the command chords recognized by the classifier.
	Keys Keymap
}

// DefaultOptions returns options with the default palette and keymap.
func DefaultOptions() Options {
	return Options{
		Palette:        DefaultPalette.Clone(),
		NormalWeight:   WeightNormal,
		EmphasisWeight: WeightBold,
		Keys:           DefaultKeymap(),
	}
}

// Column returns the display column for a position.
func (o *Options) Column(position int64) int {
	if o.ColumnIndex == nil {
		return int(position)
	}
	return o.ColumnIndex(position)
}

// Host is the owner of a cell. It supplies the shared options, pulled on
// every recomputation.
type Host interface {
	CellOptions() *Options
}

// HostFunc adapts a function to the Host interface.
type HostFunc func() *Options

// CellOptions calls f.
func (f HostFunc) CellOptions() *Options {
	return f()
}

// StaticHost returns a host that always supplies opts.
func StaticHost(opts *Options) Host {
	return HostFunc(func() *Options { return opts })
}
