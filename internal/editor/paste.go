package editor

import (
	"strings"

	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/motion"
)

// PasteAfter puts reg count times after the cursor, or below the line for
// linewise content.
func (e *Editor) PasteAfter(reg rune, count int) bool {
	return e.paste(reg, count, true)
}

// PasteBefore puts reg count times before the cursor, or above the line for
// linewise content.
func (e *Editor) PasteBefore(reg rune, count int) bool {
	return e.paste(reg, count, false)
}

func (e *Editor) paste(reg rune, count int, after bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.regs.Get(reg)
	if !ok || c.Text == "" {
		e.status = "Nothing in register " + registerName(reg)
		return false
	}
	count = max(count, 1)
	e.begin()
	defer e.end()

	if c.IsLinewise() {
		text := strings.Repeat(strings.TrimSuffix(c.Text, "\n")+"\n", count)
		text = strings.TrimSuffix(text, "\n")
		line := e.cursor.Line
		if after {
			e.insertText(buffer.Pos(line, e.lineLen(line)), "\n"+text)
			line++
		} else {
			e.insertText(buffer.Pos(line, 0), text+"\n")
		}
		e.cursor = buffer.Pos(line, motion.FirstNonBlankCol(e.doc, line))
		e.wantCol = e.cursor.Col
		return true
	}

	text := strings.Repeat(c.Text, count)
	at := e.cursor
	if after && e.lineLen(at.Line) > 0 {
		at.Col = min(at.Col+1, e.lineLen(at.Line))
	}
	end := e.insertText(at, text)
	if strings.Contains(text, "\n") {
		e.cursor = at
	} else {
		e.cursor = buffer.Pos(end.Line, end.Col-1)
	}
	e.clampCursor()
	e.wantCol = e.cursor.Col
	return true
}

func registerName(r rune) string {
	if r == 0 {
		return `"`
	}
	return string(r)
}
