package grid

import "errors"

var (
	// ErrOutOfRange is returned for positions outside the document.
	ErrOutOfRange = errors.New("position out of range")

	// ErrNothingToUndo is returned by Undo when the history is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrReadOnly is returned for edits on a read-only document.
	ErrReadOnly = errors.New("document is read-only")
)

// ErrNilDocument is returned by New when no document is given.
var ErrNilDocument = errors.New("grid: document is nil")
