package editor

import (
	"strings"

	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/motion"
)

// IndentLines shifts count lines from the cursor right by one level.
func (e *Editor) IndentLines(count int) {
	e.shiftCount(count, true)
}

// DedentLines shifts count lines from the cursor left by one level.
func (e *Editor) DedentLines(count int) {
	e.shiftCount(count, false)
}

func (e *Editor) shiftCount(count int, right bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	first := e.cursor.Line
	e.begin()
	e.shiftLines(first, e.clampLine(first+max(count, 1)-1), right)
	e.end()
}

// shiftLines indents or dedents a line range and moves the cursor to the
// first non-blank of the first line. Empty lines are not indented.
func (e *Editor) shiftLines(first, last int, right bool) {
	unit := strings.Repeat(" ", e.tabWidth)
	for l := first; l <= last; l++ {
		if right {
			if e.lineLen(l) > 0 {
				e.insertText(buffer.Pos(l, 0), unit)
			}
			continue
		}
		if n := e.dedentWidth(l); n > 0 {
			e.remove(buffer.Pos(l, 0), buffer.Pos(l, n))
		}
	}
	e.cursor = buffer.Pos(first, motion.FirstNonBlankCol(e.doc, first))
	e.wantCol = e.cursor.Col
}

// dedentWidth counts the leading characters one dedent removes: up to
// tabWidth spaces, or a single tab.
func (e *Editor) dedentWidth(l int) int {
	n := 0
	for _, r := range e.lineText(l) {
		if n >= e.tabWidth {
			break
		}
		if r == '\t' {
			if n == 0 {
				return 1
			}
			break
		}
		if r != ' ' {
			break
		}
		n++
	}
	return n
}
