package textobj

import (
	"unicode"

	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/charclass"
)

// Resolve finds the inclusive range of obj around pos.
func Resolve(buf buffer.Reader, obj Object, pos buffer.Position) (buffer.Range, bool) {
	switch obj.Kind {
	case Word, BigWord:
		return word(buf, obj.Modifier, pos, obj.Kind == BigWord)
	case DoubleQuote, SingleQuote, BackTick:
		q, _ := obj.Kind.Delimiters()
		return quote(buf, obj.Modifier, pos, q)
	case Paren, Brace, Bracket, Angle:
		open, close := obj.Kind.Delimiters()
		return bracket(buf, obj.Modifier, pos, open, close)
	}
	return buffer.Range{}, false
}

func word(buf buffer.Reader, mod Modifier, pos buffer.Position, big bool) (buffer.Range, bool) {
	text, ok := buf.Line(pos.Line)
	if !ok || text == "" {
		return buffer.Range{}, false
	}
	chars := []rune(text)
	col := min(max(pos.Col, 0), len(chars)-1)

	classify := charclass.For(big)
	class := classify(chars[col])

	start, end := col, col
	for start > 0 && classify(chars[start-1]) == class {
		start--
	}
	for end < len(chars)-1 && classify(chars[end+1]) == class {
		end++
	}

	if mod == Around {
		trailing := end
		for trailing+1 < len(chars) && unicode.IsSpace(chars[trailing+1]) {
			trailing++
		}
		if trailing > end {
			end = trailing
		} else {
			for start > 0 && unicode.IsSpace(chars[start-1]) {
				start--
			}
		}
	}

	return buffer.Range{Start: buffer.Pos(pos.Line, start), End: buffer.Pos(pos.Line, end)}, true
}

func quote(buf buffer.Reader, mod Modifier, pos buffer.Position, q rune) (buffer.Range, bool) {
	open, close, ok := quotePair(buf, q, pos)
	if !ok {
		return buffer.Range{}, false
	}
	if mod == Around {
		return buffer.Range{Start: open, End: close}, true
	}
	if close.Col <= open.Col+1 {
		return buffer.Range{}, false
	}
	return buffer.Range{
		Start: buffer.Pos(pos.Line, open.Col+1),
		End:   buffer.Pos(pos.Line, close.Col-1),
	}, true
}

// quotePair pairs quote characters on the cursor line left to right and
// returns the pair that straddles the cursor.
func quotePair(buf buffer.Reader, q rune, pos buffer.Position) (buffer.Position, buffer.Position, bool) {
	text, ok := buf.Line(pos.Line)
	if !ok {
		return pos, pos, false
	}
	opening := -1
	for i, r := range []rune(text) {
		if r != q {
			continue
		}
		if opening < 0 {
			opening = i
			continue
		}
		if pos.Col >= opening && pos.Col <= i {
			return buffer.Pos(pos.Line, opening), buffer.Pos(pos.Line, i), true
		}
		opening = -1
	}
	return pos, pos, false
}

func bracket(buf buffer.Reader, mod Modifier, pos buffer.Position, open, close rune) (buffer.Range, bool) {
	start, end, ok := bracketPair(buf, open, close, pos)
	if !ok {
		return buffer.Range{}, false
	}
	if mod == Around {
		return buffer.Range{Start: start, End: end}, true
	}

	inner := buffer.Range{Start: buffer.Pos(start.Line, start.Col+1), End: buffer.Pos(end.Line, end.Col-1)}
	if end.Col == 0 {
		// Closer at the start of its line: stop at the end of the line above
		// so the closer keeps its own line.
		prev := end.Line - 1
		inner.End = buffer.Pos(prev, max(buf.LineLen(prev)-1, 0))
	}
	if inner.End.Before(inner.Start) {
		return buffer.Range{}, false
	}
	return inner, true
}

// bracketPair scans backward from pos for the unmatched opener, then forward
// from it for the matching closer. Both scans count nesting across lines.
func bracketPair(buf buffer.Reader, open, close rune, pos buffer.Position) (buffer.Position, buffer.Position, bool) {
	var start buffer.Position
	found := false
	depth := 0

backward:
	for l := min(pos.Line, buf.LineCount()-1); l >= 0; l-- {
		c := buf.LineLen(l) - 1
		if l == pos.Line {
			c = min(pos.Col, c)
		}
		for ; c >= 0; c-- {
			r, _ := buf.CharAt(l, c)
			switch r {
			case close:
				depth++
			case open:
				if depth == 0 {
					start, found = buffer.Pos(l, c), true
					break backward
				}
				depth--
			}
		}
	}
	if !found {
		return pos, pos, false
	}

	depth = 0
	for l := start.Line; l < buf.LineCount(); l++ {
		c := 0
		if l == start.Line {
			c = start.Col + 1
		}
		for n := buf.LineLen(l); c < n; c++ {
			r, _ := buf.CharAt(l, c)
			switch r {
			case open:
				depth++
			case close:
				if depth == 0 {
					return start, buffer.Pos(l, c), true
				}
				depth--
			}
		}
	}
	return pos, pos, false
}
