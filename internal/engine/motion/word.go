package motion

import (
	"unicode"

	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/charclass"
)

// wordForward returns the start of the next word. Running off the end of the
// buffer yields the end of the last line.
func wordForward(buf buffer.Reader, p buffer.Position, big bool) buffer.Position {
	classify := charclass.For(big)
	total := buf.LineCount()
	last := buffer.Pos(total-1, buf.LineLen(total-1))
	l, c := p.Line, p.Col

	// Skip the run of the starting class. Whitespace has no run.
	start := charclass.Whitespace
	if c < buf.LineLen(l) {
		r, _ := buf.CharAt(l, c)
		start = classify(r)
	}
	for {
		if c >= buf.LineLen(l) {
			l, c = l+1, 0
			break
		}
		r, _ := buf.CharAt(l, c)
		if start == charclass.Whitespace || classify(r) != start {
			break
		}
		c++
	}

	// Skip whitespace, crossing lines.
	for {
		if l >= total {
			return last
		}
		if c >= buf.LineLen(l) {
			l, c = l+1, 0
			continue
		}
		r, _ := buf.CharAt(l, c)
		if !unicode.IsSpace(r) {
			return buffer.Pos(l, c)
		}
		c++
	}
}

// wordBackward returns the start of the current or previous word.
func wordBackward(buf buffer.Reader, p buffer.Position, big bool) buffer.Position {
	classify := charclass.For(big)
	l, c := p.Line, min(p.Col, buf.LineLen(p.Line))

	// stepLine moves to the last character of the previous line.
	stepLine := func() bool {
		if l == 0 {
			return false
		}
		l--
		c = max(buf.LineLen(l)-1, 0)
		return true
	}

	if c > 0 {
		c--
	} else if !stepLine() {
		return buffer.Pos(0, 0)
	}

	// Skip whitespace and empty lines backward.
	for {
		if c < buf.LineLen(l) {
			r, _ := buf.CharAt(l, c)
			if !unicode.IsSpace(r) {
				break
			}
			if c > 0 {
				c--
				continue
			}
		}
		if !stepLine() {
			return buffer.Pos(0, 0)
		}
	}

	r, _ := buf.CharAt(l, c)
	target := classify(r)
	for c > 0 {
		prev, _ := buf.CharAt(l, c-1)
		if classify(prev) != target {
			break
		}
		c--
	}
	return buffer.Pos(l, c)
}

// wordEnd returns the last character of the current or next word.
func wordEnd(buf buffer.Reader, p buffer.Position, big bool) buffer.Position {
	classify := charclass.For(big)
	total := buf.LineCount()
	last := buffer.Pos(total-1, max(buf.LineLen(total-1)-1, 0))
	l, c := p.Line, p.Col+1

	// Skip whitespace, crossing lines.
	for {
		if l >= total {
			return last
		}
		if c >= buf.LineLen(l) {
			l, c = l+1, 0
			continue
		}
		r, _ := buf.CharAt(l, c)
		if !unicode.IsSpace(r) {
			break
		}
		c++
	}

	r, _ := buf.CharAt(l, c)
	target := classify(r)
	n := buf.LineLen(l)
	for c+1 < n {
		next, _ := buf.CharAt(l, c+1)
		if classify(next) != target {
			break
		}
		c++
	}
	return buffer.Pos(l, c)
}
