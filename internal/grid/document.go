package grid

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/dvnrrs/hexcell/internal/bytecell"
)

// Edit is one recorded change to a byte. Edits sharing an ID form a
// transaction and are undone together.
type Edit struct {
	ID       uuid.UUID
	Position int64
	Old      byte
	New      byte
	Action   bytecell.Action

	// prev is the overlay entry the edit replaced.
	prev    overlay
	hadPrev bool
}

// overlay is the pending state of one byte.
type overlay struct {
	value  byte
	action bytecell.Action
}

// Document is an in-memory byte source. The original bytes are never
// touched until Save; edits live in an overlay keyed by position.
type Document struct {
	mu       sync.RWMutex
	path     string
	data     []byte
	overlay  map[int64]overlay
	history  []Edit
	readOnly bool
}

// NewDocument creates a document over a copy of data.
func NewDocument(data []byte) *Document {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Document{
		data:    buf,
		overlay: make(map[int64]overlay),
	}
}

// OpenDocument loads a file into a new document.
func OpenDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	d := NewDocument(data)
	d.path = path
	return d, nil
}

// Path returns the file the document was loaded from, if any.
func (d *Document) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// SetReadOnly blocks or allows edits.
func (d *Document) SetReadOnly(readOnly bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.readOnly = readOnly
}

// ReadOnly reports whether edits are blocked.
func (d *Document) ReadOnly() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.readOnly
}

// Len returns the number of bytes, deleted ones included.
func (d *Document) Len() int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return int64(len(d.data))
}

// ByteAt returns the current value of the byte at pos and its pending
// action.
func (d *Document) ByteAt(pos int64) (byte, bytecell.Action, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if pos < 0 || pos >= int64(len(d.data)) {
		return 0, bytecell.ActionNone, fmt.Errorf("%w: %d", ErrOutOfRange, pos)
	}
	if o, ok := d.overlay[pos]; ok {
		return o.value, o.action, nil
	}
	return d.data[pos], bytecell.ActionNone, nil
}

// Slice returns the current values of [from, to), deleted bytes included.
func (d *Document) Slice(from, to int64) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if from < 0 || to > int64(len(d.data)) || from > to {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrOutOfRange, from, to)
	}
	out := make([]byte, to-from)
	for i := range out {
		out[i] = d.valueLocked(from + int64(i))
	}
	return out, nil
}

func (d *Document) valueLocked(pos int64) byte {
	if o, ok := d.overlay[pos]; ok {
		return o.value
	}
	return d.data[pos]
}

// Modify records a new value for the byte at pos as part of transaction tx.
// Writing the value the byte already has is a no-op.
func (d *Document) Modify(tx uuid.UUID, pos int64, b byte) error {
	return d.record(tx, pos, func(old overlay) (overlay, bool) {
		if old.value == b && old.action != bytecell.ActionDeleted {
			return old, false
		}
		action := bytecell.ActionModified
		if old.action == bytecell.ActionAdded {
			action = bytecell.ActionAdded
		}
		return overlay{value: b, action: action}, true
	})
}

// Delete marks the byte at pos as deleted as part of transaction tx.
func (d *Document) Delete(tx uuid.UUID, pos int64) error {
	return d.record(tx, pos, func(old overlay) (overlay, bool) {
		if old.action == bytecell.ActionDeleted {
			return old, false
		}
		return overlay{value: old.value, action: bytecell.ActionDeleted}, true
	})
}

func (d *Document) record(tx uuid.UUID, pos int64, apply func(overlay) (overlay, bool)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.readOnly {
		return ErrReadOnly
	}
	if pos < 0 || pos >= int64(len(d.data)) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, pos)
	}

	prev, hadPrev := d.overlay[pos]
	current := prev
	if !hadPrev {
		current = overlay{value: d.data[pos]}
	}

	next, changed := apply(current)
	if !changed {
		return nil
	}

	d.overlay[pos] = next
	d.history = append(d.history, Edit{
		ID:       tx,
		Position: pos,
		Old:      current.value,
		New:      next.value,
		Action:   next.action,
		prev:     prev,
		hadPrev:  hadPrev,
	})
	return nil
}

// Undo reverts the most recent transaction and returns the positions it
// touched.
func (d *Document) Undo() ([]int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.history) == 0 {
		return nil, ErrNothingToUndo
	}

	id := d.history[len(d.history)-1].ID
	var positions []int64
	for len(d.history) > 0 && d.history[len(d.history)-1].ID == id {
		e := d.history[len(d.history)-1]
		d.history = d.history[:len(d.history)-1]

		if e.hadPrev {
			d.overlay[e.Position] = e.prev
		} else {
			delete(d.overlay, e.Position)
		}
		positions = append(positions, e.Position)
	}
	return positions, nil
}

// Edits returns a copy of the edit history, oldest first.
func (d *Document) Edits() []Edit {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Edit, len(d.history))
	copy(out, d.history)
	return out
}

// Modified reports whether any edit is pending.
func (d *Document) Modified() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.overlay) > 0
}

// Count returns the number of pending bytes whose action passes the
// filter. bytecell.ActionAll counts every pending byte.
func (d *Document) Count(filter bytecell.Action) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n := 0
	for _, o := range d.overlay {
		if o.action.Matches(filter) {
			n++
		}
	}
	return n
}

// Bytes returns the document contents with edits applied and deleted
// bytes dropped.
func (d *Document) Bytes() []byte {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.bytesLocked()
}

func (d *Document) bytesLocked() []byte {
	out := make([]byte, 0, len(d.data))
	for i, b := range d.data {
		o, ok := d.overlay[int64(i)]
		switch {
		case !ok:
			out = append(out, b)
		case o.action == bytecell.ActionDeleted:
		default:
			out = append(out, o.value)
		}
	}
	return out
}

// Save writes the edited contents to path, or to the path the document was
// opened from when path is empty. On success the edits become the new
// original and the history is cleared.
func (d *Document) Save(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if path == "" {
		path = d.path
	}
	if path == "" {
		return fmt.Errorf("save: no path")
	}

	out := d.bytesLocked()
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	d.data = out
	d.overlay = make(map[int64]overlay)
	d.history = nil
	d.path = path
	return nil
}
