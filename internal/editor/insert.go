package editor

import (
	"strings"

	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/motion"
	"github.com/dshills/modalcore/internal/input/vim"
)

// EnterInsert switches to Insert mode at the given position. Every edit up
// to EnterNormal forms one undo entry.
func (e *Editor) EnterInsert(at vim.InsertPosition) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.begin()
	l := e.cursor.Line
	switch at {
	case vim.InsertAfterCursor:
		if n := e.lineLen(l); n > 0 {
			e.cursor.Col = min(e.cursor.Col+1, n)
		}
	case vim.InsertLineStart:
		e.cursor.Col = motion.FirstNonBlankCol(e.doc, l)
	case vim.InsertLineEnd:
		e.cursor.Col = e.lineLen(l)
	case vim.InsertLineBelow:
		e.openLine(true)
	case vim.InsertLineAbove:
		e.openLine(false)
	}
	e.mode = ModeInsert
	e.clampCursor()
}

// OpenLineBelow opens a new line under the cursor and enters Insert mode.
func (e *Editor) OpenLineBelow() {
	e.EnterInsert(vim.InsertLineBelow)
}

// OpenLineAbove opens a new line over the cursor and enters Insert mode.
func (e *Editor) OpenLineAbove() {
	e.EnterInsert(vim.InsertLineAbove)
}

func (e *Editor) openLine(below bool) {
	l := e.cursor.Line
	indent := ""
	if e.autoIndent {
		line := e.lineText(l)
		indent = leadingSpace(line)
		if below && strings.HasSuffix(strings.TrimRight(line, " \t"), "{") {
			indent += e.indentUnit()
		}
	}
	if below {
		e.insertText(buffer.Pos(l, e.lineLen(l)), "\n"+indent)
		e.cursor = buffer.Pos(l+1, runeLen(indent))
		return
	}
	e.insertText(buffer.Pos(l, 0), indent+"\n")
	e.cursor = buffer.Pos(l, runeLen(indent))
}

func (e *Editor) indentUnit() string {
	return strings.Repeat(" ", e.tabWidth)
}

// EnterReplace switches to Replace mode.
func (e *Editor) EnterReplace() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.begin()
	e.mode = ModeReplace
}

// EnterNormal leaves Insert, Replace or visual mode. Leaving an insert
// closes its undo entry and steps the cursor back one column.
func (e *Editor) EnterNormal() {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.mode.IsInsert():
		e.end()
		e.lastInsert, e.hasInsert = e.cursor, true
		e.mode = ModeNormal
		if e.cursor.Col > 0 {
			e.cursor.Col--
		}
	case e.mode.IsVisual():
		e.leaveVisual()
	}
	e.clampCursor()
	e.wantCol = e.cursor.Col
}

// GotoLastInsert resumes Insert mode where it was last left.
func (e *Editor) GotoLastInsert() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.begin()
	e.mode = ModeInsert
	if e.hasInsert {
		e.cursor = e.lastInsert
	}
	e.clampCursor()
	e.scrollToCursor()
}

// InsertRune types r at the cursor. In Replace mode it overwrites the
// character under the cursor. With auto-indent a closing brace typed after
// only whitespace drops one indent level.
func (e *Editor) InsertRune(r rune) {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, c := e.cursor.Line, e.cursor.Col
	if e.mode == ModeReplace && c < e.lineLen(l) {
		old, _ := e.doc.CharAt(l, c)
		e.replaceText(e.cursor, string(old), string(r))
		e.cursor.Col++
		return
	}
	if e.autoIndent && r == '}' {
		e.dedentBeforeCursor()
	}
	e.cursor = e.insertText(e.cursor, string(r))
}

func (e *Editor) dedentBeforeCursor() {
	l, c := e.cursor.Line, e.cursor.Col
	before := e.doc.TextRange(l, 0, l, c)
	if before == "" || strings.TrimLeft(before, " \t") != "" {
		return
	}
	n := 1
	if !strings.HasSuffix(before, "\t") {
		n = min(e.tabWidth, len(before)-len(strings.TrimRight(before, " ")))
	}
	e.remove(buffer.Pos(l, c-n), e.cursor)
	e.cursor.Col -= n
}

// InsertNewline splits the line at the cursor. With auto-indent the new
// line copies the indent, one level deeper after an opening brace.
func (e *Editor) InsertNewline() {
	e.mu.Lock()
	defer e.mu.Unlock()
	indent := ""
	if e.autoIndent {
		l := e.cursor.Line
		indent = leadingSpace(e.lineText(l))
		before := e.doc.TextRange(l, 0, l, e.cursor.Col)
		if strings.HasSuffix(strings.TrimRight(before, " \t"), "{") {
			indent += e.indentUnit()
		}
	}
	e.cursor = e.insertText(e.cursor, "\n"+indent)
}

// InsertTab inserts spaces up to the next tab stop.
func (e *Editor) InsertTab() {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := e.tabWidth - e.cursor.Col%e.tabWidth
	e.cursor = e.insertText(e.cursor, strings.Repeat(" ", n))
}

// Backspace deletes the character before the cursor, joining with the
// previous line at column 0. In Replace mode it only moves left.
func (e *Editor) Backspace() {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, c := e.cursor.Line, e.cursor.Col
	switch {
	case e.mode == ModeReplace:
		if c > 0 {
			e.cursor.Col--
		}
	case c > 0:
		e.remove(buffer.Pos(l, c-1), e.cursor)
		e.cursor.Col--
	case l > 0:
		prev := e.lineLen(l - 1)
		e.remove(buffer.Pos(l-1, prev), e.cursor)
		e.cursor = buffer.Pos(l-1, prev)
	}
}

// DeleteForward deletes the character under the cursor, joining the next
// line at the end of a line.
func (e *Editor) DeleteForward() {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, c := e.cursor.Line, e.cursor.Col
	switch {
	case c < e.lineLen(l):
		e.remove(e.cursor, buffer.Pos(l, c+1))
	case l < e.lastLine():
		e.remove(e.cursor, buffer.Pos(l+1, 0))
	}
}
