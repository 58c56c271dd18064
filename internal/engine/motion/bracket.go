package motion

import "github.com/dshills/modalcore/internal/engine/buffer"

var bracketPairs = map[rune]struct {
	match rune
	open  bool
}{
	'(': {')', true},
	')': {'(', false},
	'[': {']', true},
	']': {'[', false},
	'{': {'}', true},
	'}': {'{', false},
	'<': {'>', true},
	'>': {'<', false},
}

// matchingBracket finds the first bracket at or after the cursor on the
// current line and jumps to its partner, counting nesting across lines.
func matchingBracket(buf buffer.Reader, p buffer.Position) (buffer.Position, bool) {
	n := buf.LineLen(p.Line)
	for c := p.Col; c < n; c++ {
		r, _ := buf.CharAt(p.Line, c)
		pair, ok := bracketPairs[r]
		if !ok {
			continue
		}
		start := buffer.Pos(p.Line, c)
		if pair.open {
			return scanForward(buf, start, r, pair.match)
		}
		return scanBackward(buf, start, r, pair.match)
	}
	return p, false
}

func scanForward(buf buffer.Reader, from buffer.Position, open, close rune) (buffer.Position, bool) {
	depth := 0
	for l := from.Line; l < buf.LineCount(); l++ {
		c := 0
		if l == from.Line {
			c = from.Col
		}
		for n := buf.LineLen(l); c < n; c++ {
			switch r, _ := buf.CharAt(l, c); r {
			case open:
				depth++
			case close:
				depth--
				if depth == 0 {
					return buffer.Pos(l, c), true
				}
			}
		}
	}
	return from, false
}

func scanBackward(buf buffer.Reader, from buffer.Position, close, open rune) (buffer.Position, bool) {
	depth := 0
	for l := from.Line; l >= 0; l-- {
		c := buf.LineLen(l) - 1
		if l == from.Line {
			c = from.Col
		}
		for ; c >= 0; c-- {
			switch r, _ := buf.CharAt(l, c); r {
			case close:
				depth++
			case open:
				depth--
				if depth == 0 {
					return buffer.Pos(l, c), true
				}
			}
		}
	}
	return from, false
}
