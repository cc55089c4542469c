// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers and timestamp
//
// # Key Specifications
//
// Key specifications are used by configuration files to rebind the
// command chords of a byte cell:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+Z", "Alt+F4", "Ctrl+Shift+V"
//   - Vim-style: "<C-z>", "<A-f>", "<Esc>"
package key
