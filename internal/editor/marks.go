package editor

import (
	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/mark"
	"github.com/dshills/modalcore/internal/engine/motion"
)

// SetMark records the cursor under name.
func (e *Editor) SetMark(name rune) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !mark.IsValid(name) {
		e.statusf("Invalid mark: %c", name)
		return false
	}
	if !e.marks.Set(e.doc.Key(), e.doc.Path(), name, e.cursor) {
		e.statusf("Cannot set mark '%c' in an unnamed buffer", name)
		return false
	}
	e.statusf("Mark '%c' set", name)
	return true
}

// GotoMarkLine jumps to the first non-blank of a mark's line.
func (e *Editor) GotoMarkLine(name rune) bool {
	return e.gotoMark(name, false)
}

// GotoMarkExact jumps to a mark's line and column.
func (e *Editor) GotoMarkExact(name rune) bool {
	return e.gotoMark(name, true)
}

func (e *Editor) gotoMark(name rune, exact bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !mark.IsValid(name) {
		e.statusf("Invalid mark: %c", name)
		return false
	}
	m, ok := e.marks.Get(e.doc.Key(), name)
	if !ok {
		e.statusf("Mark '%c' not set", name)
		return false
	}
	if mark.IsGlobal(name) && m.Path != e.doc.Path() {
		e.fileJump = &FileJump{Path: m.Path, Pos: m.Pos, Exact: exact}
		e.log.Debug("mark in another file", "mark", string(name), "path", m.Path)
		return true
	}
	line := e.clampLine(m.Pos.Line)
	col := motion.FirstNonBlankCol(e.doc, line)
	if exact {
		col = m.Pos.Col
	}
	e.cursor = buffer.Pos(line, col)
	e.clampCursor()
	e.wantCol = e.cursor.Col
	e.scrollToCursor()
	return true
}
