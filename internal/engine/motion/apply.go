package motion

import (
	"unicode"

	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/charclass"
)

// Apply computes the target of m from pos, repeated count times. textRows is
// the viewport height used by page motions. It returns false when the motion
// has no target, such as a find that does not match.
func Apply(buf buffer.Reader, m Motion, pos buffer.Position, count, textRows int) (buffer.Position, bool) {
	if count < 1 {
		count = 1
	}
	if textRows < 0 {
		textRows = 0
	}
	pos = clamp(buf, pos)
	lastLine := buf.LineCount() - 1
	l, c := pos.Line, pos.Col

	var target buffer.Position
	switch m.Kind {
	case Left:
		target = buffer.Pos(l, c-count)
	case Right:
		target = buffer.Pos(l, min(c+count, buf.LineLen(l)-1))
	case Up:
		target = buffer.Pos(l-count, c)
	case Down:
		target = buffer.Pos(l+count, c)

	case WordForward, BigWordForward:
		target = repeat(pos, count, func(p buffer.Position) buffer.Position {
			return wordForward(buf, p, m.Kind == BigWordForward)
		})
	case WordBackward, BigWordBackward:
		target = repeat(pos, count, func(p buffer.Position) buffer.Position {
			return wordBackward(buf, p, m.Kind == BigWordBackward)
		})
	case WordEnd, BigWordEnd:
		target = repeat(pos, count, func(p buffer.Position) buffer.Position {
			return wordEnd(buf, p, m.Kind == BigWordEnd)
		})

	case LineStart:
		target = buffer.Pos(l, 0)
	case FirstNonBlank:
		target = buffer.Pos(l, FirstNonBlankCol(buf, l))
	case LineEnd:
		target = buffer.Pos(l, buf.LineLen(l)-1)

	case FileStart:
		target = buffer.Pos(0, 0)
	case FileEnd:
		target = buffer.Pos(lastLine, 0)
	case GotoLine:
		target = buffer.Pos(m.Line-1, 0)

	case HalfPageDown:
		target = buffer.Pos(l+textRows/2*count, c)
	case HalfPageUp:
		target = buffer.Pos(l-textRows/2*count, c)
	case PageDown:
		target = buffer.Pos(l+textRows*count, c)
	case PageUp:
		target = buffer.Pos(l-textRows*count, c)

	case ScreenTop:
		target = buffer.Pos(count-1, c)
	case ScreenMiddle:
		target = buffer.Pos(textRows/2, c)
	case ScreenBottom:
		target = buffer.Pos(textRows-1-(count-1), c)

	case FindForward, TillForward:
		p, ok := findForward(buf, pos, m.Char, count, m.Kind == TillForward)
		if !ok {
			return pos, false
		}
		target = p
	case FindBackward, TillBackward:
		p, ok := findBackward(buf, pos, m.Char, count, m.Kind == TillBackward)
		if !ok {
			return pos, false
		}
		target = p

	case ParagraphForward:
		target = buffer.Pos(paragraphForward(buf, l, count), 0)
	case ParagraphBackward:
		target = buffer.Pos(paragraphBackward(buf, l, count), 0)
	case MatchingBracket:
		p, ok := matchingBracket(buf, pos)
		if !ok {
			return pos, false
		}
		target = p

	default:
		return pos, false
	}

	return clamp(buf, target), true
}

func repeat(p buffer.Position, count int, step func(buffer.Position) buffer.Position) buffer.Position {
	for i := 0; i < count; i++ {
		next := step(p)
		if next == p {
			break
		}
		p = next
	}
	return p
}

// clamp limits a position to the buffer. The column may equal the line length.
func clamp(buf buffer.Reader, p buffer.Position) buffer.Position {
	p.Line = max(min(p.Line, buf.LineCount()-1), 0)
	p.Col = max(min(p.Col, buf.LineLen(p.Line)), 0)
	return p
}

// FirstNonBlankCol returns the column of the first non-whitespace character
// of a line, or 0 when the line is blank.
func FirstNonBlankCol(buf buffer.Reader, line int) int {
	n := buf.LineLen(line)
	for c := 0; c < n; c++ {
		if r, ok := buf.CharAt(line, c); ok && !unicode.IsSpace(r) {
			return c
		}
	}
	return 0
}

// IsBlankLine reports whether a line is empty or whitespace only.
func IsBlankLine(buf buffer.Reader, line int) bool {
	text, _ := buf.Line(line)
	return charclass.IsBlank(text)
}

func findForward(buf buffer.Reader, p buffer.Position, target rune, count int, till bool) (buffer.Position, bool) {
	n := buf.LineLen(p.Line)
	found := 0
	for c := p.Col + 1; c < n; c++ {
		r, _ := buf.CharAt(p.Line, c)
		if r != target {
			continue
		}
		found++
		if found < count {
			continue
		}
		col := c
		if till {
			col--
			if col <= p.Col {
				return p, false
			}
		}
		return buffer.Pos(p.Line, col), true
	}
	return p, false
}

func findBackward(buf buffer.Reader, p buffer.Position, target rune, count int, till bool) (buffer.Position, bool) {
	found := 0
	for c := p.Col - 1; c >= 0; c-- {
		r, _ := buf.CharAt(p.Line, c)
		if r != target {
			continue
		}
		found++
		if found < count {
			continue
		}
		col := c
		if till {
			col++
			if col >= p.Col {
				return p, false
			}
		}
		return buffer.Pos(p.Line, col), true
	}
	return p, false
}

func paragraphForward(buf buffer.Reader, line, count int) int {
	total := buf.LineCount()
	l := line
	for i := 0; i < count; i++ {
		for l < total && IsBlankLine(buf, l) {
			l++
		}
		for l < total && !IsBlankLine(buf, l) {
			l++
		}
	}
	return min(l, total-1)
}

func paragraphBackward(buf buffer.Reader, line, count int) int {
	l := line
	for i := 0; i < count && l > 0; i++ {
		l--
		for l > 0 && IsBlankLine(buf, l) {
			l--
		}
		for l > 0 && !IsBlankLine(buf, l) {
			l--
		}
	}
	return l
}
