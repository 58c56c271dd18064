package editor

import (
	"strings"

	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/motion"
	"github.com/dshills/modalcore/internal/engine/register"
	"github.com/dshills/modalcore/internal/engine/textobj"
	"github.com/dshills/modalcore/internal/input/vim"
)

// DeleteMotion deletes over a motion into reg.
func (e *Editor) DeleteMotion(m motion.Motion, count int, reg rune) bool {
	return e.operateMotion(vim.OpDelete, m, count, reg)
}

// YankMotion copies over a motion into reg.
func (e *Editor) YankMotion(m motion.Motion, count int, reg rune) bool {
	return e.operateMotion(vim.OpYank, m, count, reg)
}

// ChangeMotion deletes over a motion and enters Insert mode.
func (e *Editor) ChangeMotion(m motion.Motion, count int, reg rune) bool {
	return e.operateMotion(vim.OpChange, m, count, reg)
}

// CaseMotion changes letter case over a motion.
func (e *Editor) CaseMotion(op vim.Operator, m motion.Motion, count int) bool {
	return e.operateMotion(op, m, count, 0)
}

func (e *Editor) operateMotion(op vim.Operator, m motion.Motion, count int, reg rune) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	sp, ok := e.motionSpan(m, count, op == vim.OpChange)
	if !ok {
		return false
	}
	e.operate(op, sp, reg)
	return true
}

// DeleteLines deletes count lines from the cursor.
func (e *Editor) DeleteLines(count int, reg rune) {
	e.operateLines(vim.OpDelete, count, reg)
}

// YankLines copies count lines from the cursor.
func (e *Editor) YankLines(count int, reg rune) {
	e.operateLines(vim.OpYank, count, reg)
}

// ChangeLines replaces count lines with one line holding the first line's
// indent and enters Insert mode.
func (e *Editor) ChangeLines(count int, reg rune) {
	e.operateLines(vim.OpChange, count, reg)
}

// CaseLines changes letter case of count lines.
func (e *Editor) CaseLines(op vim.Operator, count int) {
	e.operateLines(op, count, 0)
}

func (e *Editor) operateLines(op vim.Operator, count int, reg rune) {
	e.mu.Lock()
	defer e.mu.Unlock()
	first := e.cursor.Line
	last := e.clampLine(first + max(count, 1) - 1)
	e.operate(op, lineSpan(first, last), reg)
}

// DeleteTextObject deletes a text object into reg.
func (e *Editor) DeleteTextObject(obj textobj.Object, reg rune) bool {
	return e.operateObject(vim.OpDelete, obj, reg)
}

// YankTextObject copies a text object into reg.
func (e *Editor) YankTextObject(obj textobj.Object, reg rune) bool {
	return e.operateObject(vim.OpYank, obj, reg)
}

// ChangeTextObject deletes a text object and enters Insert mode.
func (e *Editor) ChangeTextObject(obj textobj.Object, reg rune) bool {
	return e.operateObject(vim.OpChange, obj, reg)
}

// CaseTextObject changes letter case of a text object.
func (e *Editor) CaseTextObject(op vim.Operator, obj textobj.Object) bool {
	return e.operateObject(op, obj, 0)
}

func (e *Editor) operateObject(op vim.Operator, obj textobj.Object, reg rune) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	sp, ok := e.objectSpan(obj)
	if !ok {
		e.statusf("No text object %s found", obj)
		return false
	}
	e.operate(op, sp, reg)
	return true
}

// operate applies op to a span.
func (e *Editor) operate(op vim.Operator, sp Span, reg rune) {
	switch op {
	case vim.OpDelete:
		e.begin()
		e.deleteSpan(sp, reg)
		e.end()
	case vim.OpChange:
		e.begin()
		e.changeSpan(sp, reg)
	case vim.OpYank:
		e.yankSpan(sp, reg)
	case vim.OpIndent, vim.OpDedent:
		first, last := sp.Lines()
		e.begin()
		e.shiftLines(first, last, op == vim.OpIndent)
		e.end()
	case vim.OpComment:
		first, last := sp.Lines()
		e.begin()
		e.toggleComment(first, last)
		e.end()
	case vim.OpLowercase, vim.OpUppercase, vim.OpToggleCase:
		e.begin()
		e.caseSpan(op, sp)
		e.end()
	}
}

func (e *Editor) deleteSpan(sp Span, reg rune) {
	if sp.Linewise {
		e.deleteLines(sp.Start.Line, sp.End.Line, reg)
		return
	}
	text := e.remove(sp.Start, sp.End)
	e.regs.Delete(reg, register.CharsOf(text), !strings.Contains(text, "\n"))
	e.cursor = sp.Start
	e.clampCursor()
	e.wantCol = e.cursor.Col
}

func (e *Editor) changeSpan(sp Span, reg rune) {
	if sp.Linewise {
		e.changeLines(sp.Start.Line, sp.End.Line, reg)
		return
	}
	text := e.remove(sp.Start, sp.End)
	e.regs.Delete(reg, register.CharsOf(text), !strings.Contains(text, "\n"))
	e.mode = ModeInsert
	e.cursor = sp.Start
	e.clampCursor()
}

func (e *Editor) yankSpan(sp Span, reg rune) {
	if sp.Linewise {
		first, last := sp.Start.Line, sp.End.Line
		e.regs.Yank(reg, register.LinesOf(e.linesText(first, last)+"\n"))
		if n := last - first + 1; n == 1 {
			e.status = "1 line yanked"
		} else {
			e.statusf("%d lines yanked", n)
		}
		if first < e.cursor.Line {
			e.cursor.Line = first
			e.clampCursor()
		}
		return
	}
	text := e.doc.TextRange(sp.Start.Line, sp.Start.Col, sp.End.Line, sp.End.Col)
	e.regs.Yank(reg, register.CharsOf(text))
	if sp.Start.Before(e.cursor) {
		e.cursor = sp.Start
		e.clampCursor()
	}
}

// linesText joins lines first through last without a final newline.
func (e *Editor) linesText(first, last int) string {
	return e.doc.TextRange(first, 0, last, e.lineLen(last))
}

// deleteLines removes whole lines and leaves the cursor on the first
// non-blank of the line that takes their place.
func (e *Editor) deleteLines(first, last int, reg rune) {
	e.regs.Delete(reg, register.LinesOf(e.linesText(first, last)+"\n"), false)
	switch {
	case last < e.lastLine():
		e.remove(buffer.Pos(first, 0), buffer.Pos(last+1, 0))
	case first > 0:
		e.remove(buffer.Pos(first-1, e.lineLen(first-1)), buffer.Pos(last, e.lineLen(last)))
	default:
		e.remove(buffer.Pos(0, 0), buffer.Pos(last, e.lineLen(last)))
	}
	line := e.clampLine(first)
	e.cursor = buffer.Pos(line, motion.FirstNonBlankCol(e.doc, line))
	e.wantCol = e.cursor.Col
}

// changeLines replaces lines first through last with a single line that
// keeps the first line's indent when auto-indent is on.
func (e *Editor) changeLines(first, last int, reg rune) {
	old := e.linesText(first, last)
	e.regs.Delete(reg, register.LinesOf(old+"\n"), false)
	indent := ""
	if e.autoIndent {
		indent = leadingSpace(e.lineText(first))
	}
	e.replaceText(buffer.Pos(first, 0), old, indent)
	e.mode = ModeInsert
	e.cursor = buffer.Pos(first, runeLen(indent))
}

func leadingSpace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}

func runeLen(s string) int {
	return len([]rune(s))
}
