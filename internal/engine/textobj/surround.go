package textobj

import "github.com/dshills/modalcore/internal/engine/buffer"

// NormalizeSurround maps the vim-surround aliases b, B, r and a to the
// bracket they stand for. Other characters are returned unchanged.
func NormalizeSurround(r rune) rune {
	switch r {
	case 'b':
		return '('
	case 'B':
		return '{'
	case 'r':
		return '['
	case 'a':
		return '<'
	}
	return r
}

// SurroundPair returns the open and close characters for a surround
// character. Either side of a bracket selects the pair; any other character
// pairs with itself.
func SurroundPair(r rune) (open, close rune) {
	switch r {
	case '(', ')':
		return '(', ')'
	case '[', ']':
		return '[', ']'
	case '{', '}':
		return '{', '}'
	case '<', '>':
		return '<', '>'
	}
	return r, r
}

// FindSurrounding locates the delimiter pair enclosing pos. Pairs of
// identical characters are matched on the cursor line only; brackets are
// matched with nesting across lines.
func FindSurrounding(buf buffer.Reader, open, close rune, pos buffer.Position) (buffer.Position, buffer.Position, bool) {
	if open == close {
		return quotePair(buf, open, pos)
	}
	return bracketPair(buf, open, close, pos)
}
