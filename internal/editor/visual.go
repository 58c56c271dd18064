package editor

import (
	"fmt"
	"strings"

	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/motion"
	"github.com/dshills/modalcore/internal/engine/register"
	"github.com/dshills/modalcore/internal/engine/textobj"
	"github.com/dshills/modalcore/internal/input/vim"
)

type visualSel struct {
	mode   Mode
	anchor buffer.Position
	cursor buffer.Position
}

// block returns the rectangle of a block selection. right is inclusive.
func (v visualSel) block() (top, bottom, left, right int) {
	top, bottom = min(v.anchor.Line, v.cursor.Line), max(v.anchor.Line, v.cursor.Line)
	left, right = min(v.anchor.Col, v.cursor.Col), max(v.anchor.Col, v.cursor.Col)
	return top, bottom, left, right
}

// EnterVisual starts a visual mode. Entering the active kind again leaves
// visual mode; entering another kind switches while keeping the anchor.
func (e *Editor) EnterVisual(kind Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enterVisual(kind)
}

func (e *Editor) enterVisual(kind Mode) {
	switch {
	case e.mode == kind:
		e.leaveVisual()
	case e.mode.IsVisual():
		e.mode = kind
	default:
		e.anchor = e.cursor
		e.mode = kind
	}
}

// ExitVisual returns to Normal mode and remembers the selection for gv.
func (e *Editor) ExitVisual() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode.IsVisual() {
		e.leaveVisual()
	}
}

func (e *Editor) leaveVisual() visualSel {
	sel := visualSel{mode: e.mode, anchor: e.anchor, cursor: e.cursor}
	e.lastVisual = sel
	e.hasVisual = true
	e.mode = ModeNormal
	e.clampCursor()
	return sel
}

// ReselectVisual restores the last selection.
func (e *Editor) ReselectVisual() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.hasVisual {
		e.status = "No previous visual selection"
		return false
	}
	sel := e.lastVisual
	e.mode = sel.mode
	e.anchor = e.clampPos(sel.anchor)
	e.cursor = sel.cursor
	e.clampCursor()
	return true
}

func (e *Editor) clampPos(p buffer.Position) buffer.Position {
	p.Line = e.clampLine(p.Line)
	p.Col = max(min(p.Col, e.lineLen(p.Line)-1), 0)
	return p
}

// SwapVisualAnchor moves the cursor to the other end of the selection.
func (e *Editor) SwapVisualAnchor() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode.IsVisual() {
		e.anchor, e.cursor = e.cursor, e.anchor
	}
}

// Selection returns the ordered ends of the active selection.
func (e *Editor) Selection() (start, end buffer.Position, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.mode.IsVisual() {
		return buffer.Position{}, buffer.Position{}, false
	}
	start, end = buffer.Order(e.anchor, e.cursor)
	return start, end, true
}

// SelectTextObject selects a text object, entering charwise visual mode
// from Normal mode.
func (e *Editor) SelectTextObject(obj textobj.Object) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := textobj.Resolve(e.doc, obj, e.cursor)
	if !ok {
		e.statusf("No text object %s found", obj)
		return false
	}
	if !e.mode.IsVisual() {
		e.mode = ModeVisual
	}
	e.anchor = r.Start
	e.cursor = r.End
	e.clampCursor()
	return true
}

// charSpan returns the charwise span of a selection. A selection ending on
// an empty line takes the line break.
func (e *Editor) charSpan(sel visualSel) Span {
	a, b := buffer.Order(sel.anchor, sel.cursor)
	end := e.inclusiveEnd(b)
	if b.Col >= e.lineLen(b.Line) && b.Line < e.lastLine() {
		end = buffer.Pos(b.Line+1, 0)
	}
	return Span{Start: a, End: end}
}

func (e *Editor) selSpan(sel visualSel) Span {
	if sel.mode == ModeVisualLine {
		return lineSpan(sel.anchor.Line, sel.cursor.Line)
	}
	return e.charSpan(sel)
}

// VisualDelete deletes the selection into reg.
func (e *Editor) VisualDelete(reg rune) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.mode.IsVisual() {
		return
	}
	sel := e.leaveVisual()
	e.begin()
	if sel.mode == ModeVisualBlock {
		e.deleteBlock(sel, reg)
	} else {
		e.deleteSpan(e.selSpan(sel), reg)
	}
	e.end()
}

// deleteBlock removes the block rectangle bottom to top so earlier rows
// keep their positions. Rows shorter than the left edge are skipped.
func (e *Editor) deleteBlock(sel visualSel, reg rune) {
	top, bottom, left, right := sel.block()
	rows := make([]string, bottom-top+1)
	for l := bottom; l >= top; l-- {
		n := e.lineLen(l)
		if left >= n {
			continue
		}
		rows[l-top] = e.remove(buffer.Pos(l, left), buffer.Pos(l, min(right+1, n)))
	}
	e.regs.Delete(reg, register.CharsOf(strings.Join(rows, "\n")), top == bottom)
	e.cursor = buffer.Pos(top, left)
	e.clampCursor()
}

// VisualYank copies the selection into reg.
func (e *Editor) VisualYank(reg rune) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.mode.IsVisual() {
		return
	}
	sel := e.leaveVisual()
	switch sel.mode {
	case ModeVisualLine:
		first, last := min(sel.anchor.Line, sel.cursor.Line), max(sel.anchor.Line, sel.cursor.Line)
		e.regs.Yank(reg, register.LinesOf(e.linesText(first, last)+"\n"))
		e.status = lines(last-first+1) + " yanked"
		e.cursor, _ = buffer.Order(sel.anchor, sel.cursor)
	case ModeVisualBlock:
		top, bottom, left, right := sel.block()
		rows := make([]string, 0, bottom-top+1)
		for l := top; l <= bottom; l++ {
			n := e.lineLen(l)
			if left >= n {
				rows = append(rows, "")
				continue
			}
			rows = append(rows, e.doc.TextRange(l, left, l, min(right+1, n)))
		}
		e.regs.Yank(reg, register.CharsOf(strings.Join(rows, "\n")))
		e.status = "block of " + lines(bottom-top+1) + " yanked"
		e.cursor = buffer.Pos(top, left)
	default:
		sp := e.charSpan(sel)
		e.regs.Yank(reg, register.CharsOf(e.doc.TextRange(sp.Start.Line, sp.Start.Col, sp.End.Line, sp.End.Col)))
		e.status = "Yanked"
		e.cursor = sp.Start
	}
	e.clampCursor()
}

func lines(n int) string {
	if n == 1 {
		return "1 line"
	}
	return fmt.Sprintf("%d lines", n)
}

// VisualChange deletes the selection and enters Insert mode. A block
// change inserts on the top row only.
func (e *Editor) VisualChange(reg rune) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.mode.IsVisual() {
		return
	}
	sel := e.leaveVisual()
	e.begin()
	if sel.mode == ModeVisualBlock {
		e.deleteBlock(sel, reg)
		e.mode = ModeInsert
		return
	}
	e.changeSpan(e.selSpan(sel), reg)
}

// VisualIndent shifts the selected lines right, or left when right is false.
func (e *Editor) VisualIndent(right bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.mode.IsVisual() {
		return
	}
	sel := e.leaveVisual()
	e.begin()
	e.shiftLines(min(sel.anchor.Line, sel.cursor.Line), max(sel.anchor.Line, sel.cursor.Line), right)
	e.end()
}

// CaseVisual changes the letter case of the selection.
func (e *Editor) CaseVisual(op vim.Operator) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.mode.IsVisual() {
		return
	}
	sel := e.leaveVisual()
	e.begin()
	defer e.end()
	if sel.mode != ModeVisualBlock {
		e.caseSpan(op, e.selSpan(sel))
		return
	}
	top, bottom, left, right := sel.block()
	for l := top; l <= bottom; l++ {
		n := e.lineLen(l)
		if left >= n {
			continue
		}
		end := min(right+1, n)
		old := e.doc.TextRange(l, left, l, end)
		e.replaceText(buffer.Pos(l, left), old, convertCase(op, old))
	}
	e.cursor = buffer.Pos(top, left)
	e.clampCursor()
}

// ToggleCommentVisual toggles comments on the selected lines.
func (e *Editor) ToggleCommentVisual() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.mode.IsVisual() {
		return
	}
	sel := e.leaveVisual()
	first, last := min(sel.anchor.Line, sel.cursor.Line), max(sel.anchor.Line, sel.cursor.Line)
	e.begin()
	e.toggleComment(first, last)
	e.end()
	e.cursor = buffer.Pos(first, motion.FirstNonBlankCol(e.doc, first))
}
