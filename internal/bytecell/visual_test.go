package bytecell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dvnrrs/hexcell/internal/renderer/core"
)

func testOptions() *Options {
	o := DefaultOptions()
	return &o
}

func TestResolvePrecedence(t *testing.T) {
	opts := testOptions()
	p := opts.Palette

	tests := []struct {
		name        string
		selected    bool
		highlighted bool
		action      Action
		wantBg      core.Color
		wantFg      core.Color
		wantWeight  Weight
	}{
		{"plain", false, false, ActionNone, core.ColorDefault, p.Get(RoleForeground), WeightNormal},
		{"modified", false, false, ActionModified, p.Get(RoleModified), p.Get(RoleForeground), WeightBold},
		{"highlighted", false, true, ActionNone, p.Get(RoleHighlight), p.Get(RoleForeground), WeightNormal},
		{"highlighted beats action", false, true, ActionDeleted, p.Get(RoleHighlight), p.Get(RoleForeground), WeightNormal},
		{"selected", true, false, ActionNone, p.Get(RoleSelectionSecond), p.Get(RoleForegroundContrast), WeightBold},
		{"selected beats action", true, false, ActionModified, p.Get(RoleSelectionSecond), p.Get(RoleForegroundContrast), WeightBold},
		{"selected beats highlight", true, true, ActionNone, p.Get(RoleSelectionSecond), p.Get(RoleForegroundContrast), WeightBold},
		{"selected beats all", true, true, ActionDeleted, p.Get(RoleSelectionSecond), p.Get(RoleForegroundContrast), WeightBold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{
				Position:    0,
				Value:       Some(0x10),
				Action:      tt.action,
				Selected:    tt.selected,
				Highlighted: tt.highlighted,
			}
			v := Resolve(s, opts)
			assert.Equal(t, tt.wantBg, v.Background)
			assert.Equal(t, tt.wantFg, v.Foreground)
			assert.Equal(t, tt.wantWeight, v.Weight)

			assert.Equal(t, v, Resolve(s, opts), "resolve must be deterministic")
		})
	}
}

func TestResolveActions(t *testing.T) {
	opts := testOptions()
	p := opts.Palette

	tests := []struct {
		action Action
		want   core.Color
	}{
		{ActionModified, p.Get(RoleModified)},
		{ActionDeleted, p.Get(RoleDeleted)},
		{ActionAdded, core.ColorDefault},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			v := Resolve(State{Value: Some(1), Action: tt.action}, opts)
			assert.Equal(t, tt.want, v.Background)
			assert.Equal(t, WeightBold, v.Weight)
		})
	}
}

func TestResolveFirstSelected(t *testing.T) {
	opts := testOptions()
	v := Resolve(State{Value: Some(1), Selected: true, FirstSelected: true}, opts)
	assert.Equal(t, opts.Palette.Get(RoleSelectionFirst), v.Background)
}

func TestResolveColumnParity(t *testing.T) {
	opts := testOptions()
	opts.ColumnIndex = func(pos int64) int { return int(pos % 16) }

	even := Resolve(State{Position: 16, Value: Some(1)}, opts)
	odd := Resolve(State{Position: 17, Value: Some(1)}, opts)

	assert.Equal(t, opts.Palette.Get(RoleForeground), even.Foreground)
	assert.Equal(t, opts.Palette.Get(RoleForegroundSecondary), odd.Foreground)
}

func TestResolveAutoHighlight(t *testing.T) {
	opts := testOptions()
	opts.AutoHighlight = true
	opts.SelectionByte = Some(0x41)
	auto := opts.Palette.Get(RoleAutoHighlight)

	t.Run("matching value", func(t *testing.T) {
		v := Resolve(State{Value: Some(0x41)}, opts)
		assert.Equal(t, auto, v.Background)
	})

	t.Run("overrides action and highlight", func(t *testing.T) {
		v := Resolve(State{Value: Some(0x41), Action: ActionModified, Highlighted: true}, opts)
		assert.Equal(t, auto, v.Background)
	})

	t.Run("selected cell is exempt", func(t *testing.T) {
		v := Resolve(State{Value: Some(0x41), Selected: true}, opts)
		assert.Equal(t, opts.Palette.Get(RoleSelectionSecond), v.Background)
	})

	t.Run("different value", func(t *testing.T) {
		v := Resolve(State{Value: Some(0x42)}, opts)
		assert.Equal(t, core.ColorDefault, v.Background)
	})

	t.Run("absent value", func(t *testing.T) {
		v := Resolve(State{Value: None()}, opts)
		assert.Equal(t, core.ColorDefault, v.Background)
	})

	t.Run("disabled", func(t *testing.T) {
		off := *opts
		off.AutoHighlight = false
		v := Resolve(State{Value: Some(0x41)}, &off)
		assert.Equal(t, core.ColorDefault, v.Background)
	})

	t.Run("no reference byte", func(t *testing.T) {
		none := *opts
		none.SelectionByte = None()
		v := Resolve(State{Value: Some(0x41)}, &none)
		assert.Equal(t, core.ColorDefault, v.Background)
	})
}

func TestResolveNilOptions(t *testing.T) {
	v := Resolve(State{Value: Some(1), Action: ActionModified}, nil)
	assert.Equal(t, DefaultPalette.Get(RoleModified), v.Background)
}

func TestResolveMissingRole(t *testing.T) {
	opts := testOptions()
	opts.Palette = Palette{RoleModified: core.ColorFromRGB(1, 2, 3)}

	v := Resolve(State{Value: Some(1), Action: ActionDeleted}, opts)
	assert.Equal(t, DefaultPalette.Get(RoleDeleted), v.Background)

	v = Resolve(State{Value: Some(1), Action: ActionModified}, opts)
	assert.Equal(t, core.ColorFromRGB(1, 2, 3), v.Background)
}

func TestVisualStyle(t *testing.T) {
	v := Visual{Foreground: core.ColorWhite, Background: core.ColorBlack, Weight: WeightBold}
	s := v.Style()
	assert.True(t, s.Attributes.Has(core.AttrBold))
	assert.Equal(t, core.ColorWhite, s.Foreground)

	v.Weight = WeightNormal
	assert.False(t, v.Style().Attributes.Has(core.AttrBold))
}
