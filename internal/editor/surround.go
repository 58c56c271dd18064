package editor

import (
	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/textobj"
)

// DeleteSurround removes the delimiter pair around the cursor.
func (e *Editor) DeleteSurround(ch rune) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	open, close := textobj.SurroundPair(ch)
	start, end, ok := textobj.FindSurrounding(e.doc, open, close, e.cursor)
	if !ok {
		e.statusf("No surrounding %c found", ch)
		return false
	}
	e.begin()
	e.remove(end, buffer.Pos(end.Line, end.Col+1))
	e.remove(start, buffer.Pos(start.Line, start.Col+1))
	if e.cursor.Line == end.Line && e.cursor.Col > end.Col {
		e.cursor.Col--
	}
	if e.cursor.Line == start.Line && e.cursor.Col > start.Col {
		e.cursor.Col--
	}
	e.clampCursor()
	e.end()
	return true
}

// ChangeSurround replaces the delimiter pair of old around the cursor with
// the pair of repl.
func (e *Editor) ChangeSurround(old, repl rune) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	open, close := textobj.SurroundPair(old)
	start, end, ok := textobj.FindSurrounding(e.doc, open, close, e.cursor)
	if !ok {
		e.statusf("No surrounding %c found", old)
		return false
	}
	newOpen, newClose := textobj.SurroundPair(repl)
	e.begin()
	e.replaceText(end, string(close), string(newClose))
	e.replaceText(start, string(open), string(newOpen))
	e.end()
	return true
}

// AddSurround wraps a text object in the delimiter pair of ch.
func (e *Editor) AddSurround(obj textobj.Object, ch rune) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := textobj.Resolve(e.doc, obj, e.cursor)
	if !ok {
		e.status = "Could not find text object"
		return false
	}
	open, close := textobj.SurroundPair(ch)
	e.begin()
	e.insertText(e.inclusiveEnd(r.End), string(close))
	e.insertText(r.Start, string(open))
	e.cursor = r.Start
	e.clampCursor()
	e.end()
	return true
}
