package history

import (
	"errors"
	"sync"
	"time"

	"github.com/dshills/modalcore/internal/engine/buffer"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Stack manages the undo and redo history of one buffer.
type Stack struct {
	mu sync.Mutex

	undo    []Entry
	redo    []Entry
	current *Entry

	lastEdit time.Time
	interval time.Duration
	now      func() time.Time
	limit    int
}

// NewStack creates a stack with the default grouping interval and limit.
func NewStack(opts ...Option) *Stack {
	s := &Stack{
		interval: DefaultGroupInterval,
		now:      time.Now,
		limit:    DefaultLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Begin opens an entry. If an entry is open and the last edit was within the
// grouping interval, the open entry continues. Otherwise the open entry is
// finalized and a new one starts at cursor.
func (s *Stack) Begin(cursor buffer.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.current != nil && s.interval > 0 && now.Sub(s.lastEdit) < s.interval {
		s.lastEdit = now
		return
	}

	s.finalizeLocked(cursor)
	s.current = &Entry{CursorBefore: cursor, CursorAfter: cursor}
	s.lastEdit = now
}

// Record adds a change to the open entry. Without an open entry the change
// becomes an entry of its own.
func (s *Stack) Record(c Change) {
	if c.IsEmpty() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.current.Changes = append(s.current.Changes, c)
		s.lastEdit = s.now()
		return
	}

	pos := buffer.Pos(c.Line, c.Col)
	s.pushLocked(Entry{Changes: []Change{c}, CursorBefore: pos, CursorAfter: pos})
}

// End finalizes the open entry with the cursor after the edit and resets
// the grouping timer.
func (s *Stack) End(cursor buffer.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalizeLocked(cursor)
	s.lastEdit = time.Time{}
}

// finalizeLocked pushes the open entry if it has changes.
func (s *Stack) finalizeLocked(cursor buffer.Position) {
	if s.current == nil {
		return
	}
	entry := s.current
	s.current = nil
	if entry.IsEmpty() {
		return
	}
	entry.CursorAfter = cursor
	s.pushLocked(*entry)
}

func (s *Stack) pushLocked(e Entry) {
	s.undo = append(s.undo, e)
	s.redo = nil
	if excess := len(s.undo) - s.limit; excess > 0 {
		s.undo = append(s.undo[:0:0], s.undo[excess:]...)
	}
}

// PopUndo finalizes any open entry, moves the newest entry to the redo
// stack and returns it for the caller to revert.
func (s *Stack) PopUndo() (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.finalizeLocked(s.current.CursorAfter)
	}
	if len(s.undo) == 0 {
		return Entry{}, ErrNothingToUndo
	}
	e := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, e)
	return e, nil
}

// PopRedo moves the newest redo entry back to the undo stack and returns it
// for the caller to replay.
func (s *Stack) PopRedo() (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.finalizeLocked(s.current.CursorAfter)
	}
	if len(s.redo) == 0 {
		return Entry{}, ErrNothingToRedo
	}
	e := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, e)
	return e, nil
}

// InGroup reports whether an entry is open.
func (s *Stack) InGroup() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// UndoCount returns the number of undo entries, counting a non-empty open
// entry.
func (s *Stack) UndoCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.undo)
	if s.current != nil && !s.current.IsEmpty() {
		n++
	}
	return n
}

// RedoCount returns the number of redo entries.
func (s *Stack) RedoCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.redo)
}

// CanUndo returns true if undo is available.
func (s *Stack) CanUndo() bool {
	return s.UndoCount() > 0
}

// CanRedo returns true if redo is available.
func (s *Stack) CanRedo() bool {
	return s.RedoCount() > 0
}

// Clear drops all history, including an open entry.
func (s *Stack) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.undo = nil
	s.redo = nil
	s.current = nil
	s.lastEdit = time.Time{}
}
