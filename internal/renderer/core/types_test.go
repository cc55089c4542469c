package core

import (
	"testing"
)

func TestColorDefault(t *testing.T) {
	c := ColorDefault
	if !c.IsDefault() {
		t.Error("ColorDefault should be default")
	}
}

func TestColorFromRGB(t *testing.T) {
	c := ColorFromRGB(255, 128, 64)

	if c.R != 255 {
		t.Errorf("expected R 255, got %d", c.R)
	}
	if c.G != 128 {
		t.Errorf("expected G 128, got %d", c.G)
	}
	if c.B != 64 {
		t.Errorf("expected B 64, got %d", c.B)
	}
	if c.Indexed {
		t.Error("RGB color should not be indexed")
	}
	if c.IsDefault() {
		t.Error("RGB color should not be default")
	}
}

func TestColorFromIndex(t *testing.T) {
	c := ColorFromIndex(42)

	if c.R != 42 {
		t.Errorf("expected index 42, got %d", c.R)
	}
	if !c.Indexed {
		t.Error("indexed color should have Indexed true")
	}
	if c.IsDefault() {
		t.Error("indexed color should not be default")
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{"#FF8040", 255, 128, 64, false},
		{"#ff8040", 255, 128, 64, false},
		{"FF8040", 255, 128, 64, false},
		{"#FFF", 255, 255, 255, false}, // Short form
		{"#000", 0, 0, 0, false},
		{"invalid", 0, 0, 0, true},
		{"#GGG", 0, 0, 0, true},
	}

	for _, tt := range tests {
		c, err := ColorFromHex(tt.hex)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ColorFromHex(%q) expected error, got nil", tt.hex)
			}
			continue
		}
		if err != nil {
			t.Errorf("ColorFromHex(%q) unexpected error: %v", tt.hex, err)
			continue
		}
		if c.R != tt.r || c.G != tt.g || c.B != tt.b {
			t.Errorf("ColorFromHex(%q) = (%d,%d,%d), want (%d,%d,%d)",
				tt.hex, c.R, c.G, c.B, tt.r, tt.g, tt.b)
		}
	}
}

func TestColorFromHexDefault(t *testing.T) {
	for _, s := range []string{"default", "Transparent", " none "} {
		c, err := ColorFromHex(s)
		if err != nil {
			t.Fatalf("ColorFromHex(%q) unexpected error: %v", s, err)
		}
		if !c.IsDefault() {
			t.Errorf("ColorFromHex(%q) should be default", s)
		}
	}
}

func TestMustColorFromHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustColorFromHex should panic on invalid input")
		}
	}()
	MustColorFromHex("#12")
}

func TestColorEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{"same rgb", ColorFromRGB(1, 2, 3), ColorFromRGB(1, 2, 3), true},
		{"different rgb", ColorFromRGB(1, 2, 3), ColorFromRGB(1, 2, 4), false},
		{"default pair", ColorDefault, ColorDefault, true},
		{"default vs black", ColorDefault, ColorBlack, false},
		{"same index", ColorFromIndex(3), ColorFromIndex(3), true},
		{"index vs rgb", ColorFromIndex(3), ColorFromRGB(3, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.want {
				t.Errorf("Equals = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, "default"},
		{ColorFromIndex(9), "idx(9)"},
		{ColorFromRGB(0xAB, 0x01, 0xFF), "#AB01FF"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestColorBlend(t *testing.T) {
	mid := ColorBlack.Blend(ColorWhite, 0.5)
	if mid.R != 128 || mid.G != 128 || mid.B != 128 {
		t.Errorf("Blend(0.5) = %v, want #808080", mid)
	}

	if got := ColorBlack.Blend(ColorWhite, 2); !got.Equals(ColorWhite) {
		t.Errorf("Blend should clamp amount, got %v", got)
	}

	if got := ColorDefault.Blend(ColorWhite, 0.2); !got.IsDefault() {
		t.Errorf("Blend of default below half should keep default, got %v", got)
	}
	if got := ColorDefault.Blend(ColorWhite, 0.8); !got.Equals(ColorWhite) {
		t.Errorf("Blend of default above half should take other, got %v", got)
	}
}

func TestAttribute(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrUnderline)
	if !a.Has(AttrBold) || !a.Has(AttrUnderline) {
		t.Error("attribute set should contain bold and underline")
	}
	a = a.Without(AttrBold)
	if a.Has(AttrBold) {
		t.Error("bold should be removed")
	}
	if a.Has(AttrItalic) {
		t.Error("italic was never added")
	}
}

func TestStyle(t *testing.T) {
	s := DefaultStyle()
	if !s.Foreground.IsDefault() || !s.Background.IsDefault() {
		t.Error("default style should use default colors")
	}

	red := ColorFromRGB(255, 0, 0)
	s2 := s.WithForeground(red).WithBackground(ColorBlack).Bold()
	if !s2.Foreground.Equals(red) {
		t.Errorf("foreground = %v, want %v", s2.Foreground, red)
	}
	if !s2.Background.Equals(ColorBlack) {
		t.Errorf("background = %v, want black", s2.Background)
	}
	if !s2.Attributes.Has(AttrBold) {
		t.Error("style should be bold")
	}
	if s.Equals(s2) {
		t.Error("receiver style should be unchanged")
	}
}

func TestCell(t *testing.T) {
	e := EmptyCell()
	if e.Rune != ' ' || e.Width != 1 {
		t.Errorf("EmptyCell = %+v", e)
	}

	c := NewStyledCell('A', DefaultStyle().Bold())
	if c.Width != 1 {
		t.Errorf("width of 'A' = %d, want 1", c.Width)
	}
	if c.Equals(e) {
		t.Error("styled cell should differ from empty cell")
	}
	if !c.Equals(NewStyledCell('A', DefaultStyle().Bold())) {
		t.Error("identical cells should be equal")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{0x00, 0},
		{0x1B, 0},
		{0x7F, 0},
		{'中', 2},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%U) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestCellsFromString(t *testing.T) {
	cells := CellsFromString("a中", DefaultStyle())
	if len(cells) != 3 {
		t.Fatalf("len = %d, want 3", len(cells))
	}
	if cells[1].Width != 2 {
		t.Errorf("wide cell width = %d, want 2", cells[1].Width)
	}
	if cells[2].Width != 0 || cells[2].Rune != 0 {
		t.Errorf("continuation cell = %+v", cells[2])
	}
}

func TestScreenRect(t *testing.T) {
	r := RectFromSize(2, 4, 3, 10)
	if r.Width() != 10 || r.Height() != 3 {
		t.Errorf("size = %dx%d, want 10x3", r.Width(), r.Height())
	}

	tests := []struct {
		pos  ScreenPos
		want bool
	}{
		{ScreenPos{Row: 2, Col: 4}, true},
		{ScreenPos{Row: 4, Col: 13}, true},
		{ScreenPos{Row: 5, Col: 4}, false},
		{ScreenPos{Row: 2, Col: 14}, false},
		{ScreenPos{Row: 1, Col: 5}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pos); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.pos, got, tt.want)
		}
	}

	empty := ScreenRect{Top: 5, Bottom: 2}
	if empty.Height() != 0 {
		t.Errorf("inverted rect height = %d, want 0", empty.Height())
	}
}
