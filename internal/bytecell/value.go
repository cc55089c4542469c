package bytecell

import "fmt"

// Value is an optional byte. The zero Value is absent.
type Value struct {
	b     byte
	valid bool
}

// Some returns a present Value holding b.
func Some(b byte) Value {
	return Value{b: b, valid: true}
}

// None returns an absent Value.
func None() Value {
	return Value{}
}

// Get returns the byte and whether it is present.
func (v Value) Get() (byte, bool) {
	return v.b, v.valid
}

// Valid reports whether a byte is present.
func (v Value) Valid() bool {
	return v.valid
}

// Equal reports whether both values are absent or both hold the same byte.
func (v Value) Equal(other Value) bool {
	if v.valid != other.valid {
		return false
	}
	return !v.valid || v.b == other.b
}

// String formats the value as two hex digits, or "--" when absent.
func (v Value) String() string {
	if !v.valid {
		return "--"
	}
	return fmt.Sprintf("%02X", v.b)
}
