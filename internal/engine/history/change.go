package history

import "github.com/dshills/modalcore/internal/engine/buffer"

// Change is a reversible edit at a position.
type Change struct {
	Line int
	Col  int
	Old  string // text removed at the position
	New  string // text inserted at the position
}

// Insert returns a change that inserts text.
func Insert(line, col int, text string) Change {
	return Change{Line: line, Col: col, New: text}
}

// Delete returns a change that removes text.
func Delete(line, col int, text string) Change {
	return Change{Line: line, Col: col, Old: text}
}

// ReplaceLine returns a change that rewrites a whole line's content.
func ReplaceLine(line int, oldText, newText string) Change {
	return Change{Line: line, Old: oldText, New: newText}
}

// Inverse returns the change that undoes c.
func (c Change) Inverse() Change {
	c.Old, c.New = c.New, c.Old
	return c
}

// IsEmpty reports whether the change does nothing.
func (c Change) IsEmpty() bool {
	return c.Old == c.New
}

// Apply performs the change on a buffer.
func (c Change) Apply(buf buffer.TextBuffer) {
	buf.ApplyChange(c.Line, c.Col, c.Old, c.New)
}

// Entry is one undoable unit.
type Entry struct {
	Changes      []Change
	CursorBefore buffer.Position
	CursorAfter  buffer.Position
}

// IsEmpty reports whether the entry has no changes.
func (e *Entry) IsEmpty() bool {
	return len(e.Changes) == 0
}

// Revert undoes the entry's changes, last first, and returns the cursor to
// restore.
func (e Entry) Revert(buf buffer.TextBuffer) buffer.Position {
	for i := len(e.Changes) - 1; i >= 0; i-- {
		e.Changes[i].Inverse().Apply(buf)
	}
	return e.CursorBefore
}

// Replay reapplies the entry's changes in order and returns the cursor to
// restore.
func (e Entry) Replay(buf buffer.TextBuffer) buffer.Position {
	for _, c := range e.Changes {
		c.Apply(buf)
	}
	return e.CursorAfter
}
