package editor

import (
	"math"
	"unicode"

	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/charclass"
	"github.com/dshills/modalcore/internal/engine/motion"
	"github.com/dshills/modalcore/internal/engine/textobj"
)

// Span is a region an operator acts on. A charwise span is the half-open
// range [Start, End). A linewise span covers lines Start.Line through
// End.Line and ignores columns.
type Span struct {
	Start    buffer.Position
	End      buffer.Position
	Linewise bool
}

// lineSpan returns the linewise span of lines first through last.
func lineSpan(first, last int) Span {
	if last < first {
		first, last = last, first
	}
	return Span{Start: buffer.Pos(first, 0), End: buffer.Pos(last, 0), Linewise: true}
}

// Lines returns the first and last line the span touches.
func (s Span) Lines() (int, int) {
	last := s.End.Line
	if !s.Linewise && s.End.Col == 0 && s.End.Line > s.Start.Line {
		last--
	}
	return s.Start.Line, last
}

// MoveCursor applies a motion to the cursor and reports whether it had a
// target.
func (e *Editor) MoveCursor(m motion.Motion, count int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.moveCursor(m, count)
}

func (e *Editor) moveCursor(m motion.Motion, count int) bool {
	target, ok := e.motionTarget(m, count)
	if !ok {
		return false
	}
	if e.mode.IsInsert() {
		switch m.Kind {
		case motion.Right:
			target.Col = min(e.cursor.Col+max(count, 1), e.lineLen(e.cursor.Line))
		case motion.LineEnd:
			target.Col = e.lineLen(target.Line)
		}
	}
	e.cursor = target
	e.clampCursor()
	switch {
	case m.Kind == motion.LineEnd:
		e.wantCol = math.MaxInt
	case !keepsColumn(m.Kind):
		e.wantCol = e.cursor.Col
	}
	e.scrollToCursor()
	return true
}

// keepsColumn reports whether a motion moves between lines at the
// remembered column.
func keepsColumn(k motion.Kind) bool {
	switch k {
	case motion.Up, motion.Down, motion.HalfPageDown, motion.HalfPageUp, motion.PageDown, motion.PageUp:
		return true
	}
	return false
}

// motionTarget resolves where a motion lands from the cursor.
func (e *Editor) motionTarget(m motion.Motion, count int) (buffer.Position, bool) {
	if m.Kind.IsScreenRelative() {
		return e.screenTarget(m.Kind, count), true
	}
	target, ok := motion.Apply(e.doc, m, e.cursor, count, e.textRows)
	if !ok {
		return e.cursor, false
	}
	switch {
	case keepsColumn(m.Kind):
		target.Col = min(e.wantCol, e.maxCol(target.Line))
	case m.Kind == motion.FileStart || m.Kind == motion.FileEnd || m.Kind == motion.GotoLine:
		target.Col = motion.FirstNonBlankCol(e.doc, target.Line)
	}
	return target, true
}

// screenTarget places H, M and L relative to the viewport.
func (e *Editor) screenTarget(k motion.Kind, count int) buffer.Position {
	visible := max(min(e.textRows, e.lineCount()-e.viewport), 1)
	count = max(count, 1)
	var line int
	switch k {
	case motion.ScreenTop:
		line = e.viewport + min(count-1, visible-1)
	case motion.ScreenMiddle:
		line = e.viewport + (visible-1)/2
	default:
		line = e.viewport + max(visible-count, 0)
	}
	line = e.clampLine(line)
	return buffer.Pos(line, motion.FirstNonBlankCol(e.doc, line))
}

// MotionRange returns the span an operator covers when applied over m. It
// returns false when the motion fails or covers nothing.
func (e *Editor) MotionRange(m motion.Motion, count int) (Span, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.motionSpan(m, count, false)
}

// motionSpan computes an operator span. change selects the cw rule: on a
// non-blank character w acts like e.
func (e *Editor) motionSpan(m motion.Motion, count int, change bool) (Span, bool) {
	start := e.cursor
	if change && (m.Kind == motion.WordForward || m.Kind == motion.BigWordForward) {
		if r, ok := e.doc.CharAt(start.Line, start.Col); ok && !unicode.IsSpace(r) {
			end := e.wordEndAt(start, m.Kind == motion.BigWordForward, count)
			return Span{Start: start, End: e.inclusiveEnd(end)}, true
		}
	}

	target, ok := e.motionTarget(m, count)
	if !ok {
		return Span{}, false
	}
	if m.Kind.Linewise() {
		return lineSpan(start.Line, target.Line), true
	}

	a, b := buffer.Order(start, target)
	if m.Kind.Inclusive() && !target.Before(start) {
		b = e.inclusiveEnd(b)
	} else if m.Kind == motion.WordForward || m.Kind == motion.BigWordForward {
		b = e.trimWordSpan(a, b)
	} else if b.Line > a.Line && b.Col == 0 {
		// An exclusive span ending at column 0 stops at the end of the line
		// above, and covers whole lines when it starts in the indent.
		if a.Col <= motion.FirstNonBlankCol(e.doc, a.Line) {
			return lineSpan(a.Line, b.Line-1), true
		}
		b = buffer.Pos(b.Line-1, e.lineLen(b.Line-1))
	}
	if a == b {
		return Span{}, false
	}
	return Span{Start: a, End: b}, true
}

// inclusiveEnd turns the position of a last character into an exclusive end.
func (e *Editor) inclusiveEnd(p buffer.Position) buffer.Position {
	return buffer.Pos(p.Line, min(p.Col+1, e.lineLen(p.Line)))
}

// trimWordSpan keeps a w span from swallowing the line break after the
// last word: when the target is the first word of a later line, the span
// ends after the last non-blank line before it.
func (e *Editor) trimWordSpan(a, b buffer.Position) buffer.Position {
	if b.Line == a.Line || b.Col > motion.FirstNonBlankCol(e.doc, b.Line) {
		return b
	}
	if b.Line == e.lastLine() && b.Col == e.lineLen(b.Line) && b.Col > 0 {
		return b
	}
	l := b.Line - 1
	for l > a.Line && motion.IsBlankLine(e.doc, l) {
		l--
	}
	return buffer.Pos(l, e.lineLen(l))
}

// wordEndAt returns the last character of the word under p, then moves count-1
// further word ends.
func (e *Editor) wordEndAt(p buffer.Position, big bool, count int) buffer.Position {
	classify := charclass.For(big)
	r, _ := e.doc.CharAt(p.Line, p.Col)
	class := classify(r)
	n := e.lineLen(p.Line)
	for p.Col+1 < n {
		next, _ := e.doc.CharAt(p.Line, p.Col+1)
		if classify(next) != class {
			break
		}
		p.Col++
	}
	if count > 1 {
		k := motion.WordEnd
		if big {
			k = motion.BigWordEnd
		}
		p, _ = motion.Apply(e.doc, motion.New(k), p, count-1, e.textRows)
	}
	return p
}

// ObjectRange resolves a text object at the cursor into a charwise span.
func (e *Editor) ObjectRange(obj textobj.Object) (Span, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.objectSpan(obj)
}

func (e *Editor) objectSpan(obj textobj.Object) (Span, bool) {
	r, ok := textobj.Resolve(e.doc, obj, e.cursor)
	if !ok {
		return Span{}, false
	}
	end := e.inclusiveEnd(r.End)
	if end == r.Start {
		return Span{}, false
	}
	return Span{Start: r.Start, End: end}, true
}
