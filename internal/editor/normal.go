package editor

import (
	"strings"

	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/register"
)

// DeleteChar deletes count characters under and after the cursor.
func (e *Editor) DeleteChar(count int, reg rune) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, c := e.cursor.Line, e.cursor.Col
	n := min(max(count, 1), e.lineLen(l)-c)
	if n <= 0 {
		return false
	}
	e.begin()
	text := e.remove(e.cursor, buffer.Pos(l, c+n))
	e.regs.Delete(reg, register.CharsOf(text), true)
	e.clampCursor()
	e.end()
	return true
}

// DeleteCharBefore deletes count characters before the cursor.
func (e *Editor) DeleteCharBefore(count int, reg rune) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, c := e.cursor.Line, e.cursor.Col
	n := min(max(count, 1), c)
	if n <= 0 {
		return false
	}
	e.begin()
	text := e.remove(buffer.Pos(l, c-n), e.cursor)
	e.regs.Delete(reg, register.CharsOf(text), true)
	e.cursor.Col -= n
	e.end()
	return true
}

// ReplaceChar replaces count characters from the cursor with r. Nothing
// changes when the line is too short.
func (e *Editor) ReplaceChar(r rune, count int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	count = max(count, 1)
	l, c := e.cursor.Line, e.cursor.Col
	if c+count > e.lineLen(l) {
		return false
	}
	old := e.doc.TextRange(l, c, l, c+count)
	e.begin()
	e.replaceText(e.cursor, old, strings.Repeat(string(r), count))
	e.cursor.Col = c + count - 1
	e.end()
	return true
}

// JoinLines joins count lines, at least two, into one. Leading whitespace
// of each joined line becomes a single space.
func (e *Editor) JoinLines(count int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	l := e.cursor.Line
	if l >= e.lastLine() {
		return false
	}
	joins := max(count-1, 1)
	e.begin()
	for i := 0; i < joins && l < e.lastLine(); i++ {
		cur := e.lineText(l)
		next := e.lineText(l + 1)
		body := strings.TrimLeft(next, " \t")
		at := buffer.Pos(l, runeLen(cur))
		e.remove(at, buffer.Pos(l+1, runeLen(next)-runeLen(body)))
		if cur != "" && body != "" && !strings.HasSuffix(cur, " ") && !strings.HasPrefix(body, ")") {
			e.insertText(at, " ")
		}
		e.cursor = at
	}
	e.clampCursor()
	e.end()
	e.wantCol = e.cursor.Col
	return true
}
