// Package bytecell implements the controller behind one displayed byte of a
// hex grid.
//
// A Cell holds the state of a single byte slot (file position, value,
// pending edit action, selection and highlight flags) and turns that state
// into two outputs:
//
//   - a Visual, the colors, weight and text the presentation layer paints;
//   - Signals, the navigation and editing intents the owning grid acts on.
//
// The cell never navigates or edits the document itself. It only reports
// what the user asked for.
//
// # Visual Precedence
//
// Resolve is a pure function of a State and the host's Options. The first
// matching branch wins:
//
//  1. Selected: emphasis weight, contrast foreground, first or second
//     selection background depending on whether the cell is the anchor.
//  2. Highlighted: normal weight and foreground, highlight background.
//  3. Pending action: bold, normal foreground, Modified or Deleted
//     background. Added has no background rule.
//  4. Default: normal weight, transparent background, foreground alternating
//     by column parity.
//
// The auto-highlight overlay then repaints the background of every
// unselected cell whose value equals the host's reference byte.
//
// # Signals
//
// Each cell reports to a single Listener:
//
//	cell, err := bytecell.New(grid,
//	    bytecell.WithKind(bytecell.KindHex),
//	    bytecell.WithListener(bytecell.ListenerFunc(grid.HandleSignal)),
//	)
//
// Signals are delivered synchronously from the mutator or input method that
// produced them.
//
// # Re-entrancy
//
// A listener handling IntentByteModified must not call SetValue on the same
// cell without first setting SetSuppressNotify(true); otherwise every write
// notifies again. Recomputing the visual never emits signals.
//
// # Thread Safety
//
// Cells are not synchronized. The owning grid serializes all access on its
// event loop.
package bytecell
