package editor

import (
	"errors"
	"fmt"

	"github.com/dshills/modalcore/internal/engine/history"
)

// Undo reverts count undo entries.
func (e *Editor) Undo(count int) bool {
	return e.step(count, true)
}

// Redo reapplies count undone entries.
func (e *Editor) Redo(count int) bool {
	return e.step(count, false)
}

func (e *Editor) step(count int, undo bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	done := 0
	for ; done < max(count, 1); done++ {
		var (
			entry history.Entry
			err   error
		)
		if undo {
			entry, err = e.undo.PopUndo()
		} else {
			entry, err = e.undo.PopRedo()
		}
		if err != nil {
			if done == 0 {
				e.status = emptyHistoryStatus(err)
			}
			break
		}
		if undo {
			e.cursor = entry.Revert(e.doc)
		} else {
			e.cursor = entry.Replay(e.doc)
		}
	}
	if done == 0 {
		return false
	}
	e.clampCursor()
	e.wantCol = e.cursor.Col
	e.scrollToCursor()
	if undo {
		e.status = fmt.Sprintf("Undo: %d change(s) remaining", e.undo.UndoCount())
	} else {
		e.status = fmt.Sprintf("Redo: %d change(s) remaining", e.undo.RedoCount())
	}
	return true
}

func emptyHistoryStatus(err error) string {
	if errors.Is(err, history.ErrNothingToRedo) {
		return "Already at newest change"
	}
	return "Already at oldest change"
}
