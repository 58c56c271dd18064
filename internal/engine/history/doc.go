// Package history provides undo/redo grouping for the modal editor.
//
// # Changes
//
// A Change is a reversible delta at a position: the text removed and the
// text inserted there. Inverse swaps the two.
//
// # Entries
//
// An Entry is the unit of one undo: an ordered list of changes plus the
// cursor before and after. Revert applies the inverse changes in reverse
// order; Replay applies them forward.
//
// # Stack
//
// Stack collects changes into entries:
//
//	s := history.NewStack()
//	s.Begin(cursor)
//	s.Record(history.Delete(0, 0, "foo"))
//	s.End(cursorAfter)
//
//	entry, err := s.PopUndo()
//	if err == nil {
//	    entry.Revert(buf)
//	}
//
// Begin calls that arrive within the grouping interval of the last edit,
// while an entry is still open, continue that entry. This is how Insert
// mode typing and change operators form one undo unit. The interval and the
// clock are injectable so tests can force either behavior.
//
// The undo stack is bounded; the oldest entries are dropped first.
package history
