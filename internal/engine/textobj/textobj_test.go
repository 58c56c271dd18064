package textobj

import (
	"testing"

	"github.com/dshills/modalcore/internal/engine/buffer"
)

func rng(sl, sc, el, ec int) buffer.Range {
	return buffer.Range{Start: buffer.Pos(sl, sc), End: buffer.Pos(el, ec)}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		text string
		obj  Object
		pos  buffer.Position
		want buffer.Range
		ok   bool
	}{
		{"inner word", "foo bar baz", Object{Inner, Word}, buffer.Pos(0, 5), rng(0, 4, 0, 6), true},
		{"around word trailing", "foo bar baz", Object{Around, Word}, buffer.Pos(0, 5), rng(0, 4, 0, 7), true},
		{"around word leading at end", "foo bar", Object{Around, Word}, buffer.Pos(0, 5), rng(0, 3, 0, 6), true},
		{"inner word punctuation", "a.,b", Object{Inner, Word}, buffer.Pos(0, 1), rng(0, 1, 0, 2), true},
		{"inner word whitespace", "a   b", Object{Inner, Word}, buffer.Pos(0, 2), rng(0, 1, 0, 3), true},
		{"inner bigword", "x foo.bar y", Object{Inner, BigWord}, buffer.Pos(0, 4), rng(0, 2, 0, 8), true},
		{"word on empty line", "", Object{Inner, Word}, buffer.Pos(0, 0), buffer.Range{}, false},

		{"inner quote", `say "hello world" now`, Object{Inner, DoubleQuote}, buffer.Pos(0, 8), rng(0, 5, 0, 15), true},
		{"around quote", `say "hello world" now`, Object{Around, DoubleQuote}, buffer.Pos(0, 8), rng(0, 4, 0, 16), true},
		{"quote on delimiter", `"ab"`, Object{Inner, DoubleQuote}, buffer.Pos(0, 3), rng(0, 1, 0, 2), true},
		{"empty quotes inner", `x "" y`, Object{Inner, DoubleQuote}, buffer.Pos(0, 2), buffer.Range{}, false},
		{"empty quotes around", `x "" y`, Object{Around, DoubleQuote}, buffer.Pos(0, 2), rng(0, 2, 0, 3), true},
		{"second pair", `'a' 'b'`, Object{Inner, SingleQuote}, buffer.Pos(0, 5), rng(0, 5, 0, 5), true},
		{"between pairs", `'a' x 'b'`, Object{Inner, SingleQuote}, buffer.Pos(0, 4), buffer.Range{}, false},
		{"backtick", "run `cmd` now", Object{Inner, BackTick}, buffer.Pos(0, 6), rng(0, 5, 0, 7), true},

		{"inner paren nested", "foo(bar(baz))", Object{Inner, Paren}, buffer.Pos(0, 9), rng(0, 8, 0, 10), true},
		{"inner paren outer", "foo(bar(baz))", Object{Inner, Paren}, buffer.Pos(0, 5), rng(0, 4, 0, 11), true},
		{"around paren", "foo(bar(baz))", Object{Around, Paren}, buffer.Pos(0, 9), rng(0, 7, 0, 11), true},
		{"empty parens", "f()", Object{Inner, Paren}, buffer.Pos(0, 1), buffer.Range{}, false},
		{"no enclosing", "a (b) c", Object{Inner, Paren}, buffer.Pos(0, 6), buffer.Range{}, false},
		{"multi line brace", "{\n  x\n}", Object{Inner, Brace}, buffer.Pos(1, 2), rng(0, 1, 1, 2), true},
		{"multi line around", "{\n  x\n}", Object{Around, Brace}, buffer.Pos(1, 2), rng(0, 0, 2, 0), true},
		{"brackets", "a[1, [2]]", Object{Inner, Bracket}, buffer.Pos(0, 3), rng(0, 2, 0, 7), true},
		{"angles", "Vec<T>", Object{Inner, Angle}, buffer.Pos(0, 4), rng(0, 4, 0, 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromString(tt.text)
			got, ok := Resolve(buf, tt.obj, tt.pos)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v (range %s)", tt.ok, ok, got)
			}
			if ok && got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestFindSurrounding(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		pos         buffer.Position
		char        rune
		open, close buffer.Position
		ok          bool
	}{
		{"quotes", `say "hi"`, buffer.Pos(0, 5), '"', buffer.Pos(0, 4), buffer.Pos(0, 7), true},
		{"paren", "wrap(x)", buffer.Pos(0, 5), ')', buffer.Pos(0, 4), buffer.Pos(0, 6), true},
		{"nested picks nearest", "((a) b)", buffer.Pos(0, 5), '(', buffer.Pos(0, 0), buffer.Pos(0, 6), true},
		{"across lines", "[\n 1,\n]", buffer.Pos(1, 1), '[', buffer.Pos(0, 0), buffer.Pos(2, 0), true},
		{"missing", "plain", buffer.Pos(0, 2), '(', buffer.Pos(0, 2), buffer.Pos(0, 2), false},
		{"custom char", "*bold*", buffer.Pos(0, 2), '*', buffer.Pos(0, 0), buffer.Pos(0, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromString(tt.text)
			open, close := SurroundPair(tt.char)
			gotOpen, gotClose, ok := FindSurrounding(buf, open, close, tt.pos)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && (gotOpen != tt.open || gotClose != tt.close) {
				t.Errorf("expected %s-%s, got %s-%s", tt.open, tt.close, gotOpen, gotClose)
			}
		})
	}
}

func TestKindFor(t *testing.T) {
	tests := map[rune]Kind{
		'w': Word, 'W': BigWord, '"': DoubleQuote, '\'': SingleQuote, '`': BackTick,
		'(': Paren, ')': Paren, 'b': Paren, '{': Brace, 'B': Brace,
		'[': Bracket, 'r': Bracket, '<': Angle, 'a': Angle,
	}
	for r, want := range tests {
		got, ok := KindFor(r)
		if !ok || got != want {
			t.Errorf("%q: expected %s, got %s", r, want, got)
		}
	}
	if _, ok := KindFor('x'); ok {
		t.Error("expected 'x' to be rejected")
	}
}

func TestNormalizeSurround(t *testing.T) {
	tests := []struct{ in, want rune }{
		{'b', '('}, {'B', '{'}, {'r', '['}, {'a', '<'}, {'"', '"'}, {'x', 'x'},
	}
	for _, tt := range tests {
		if got := NormalizeSurround(tt.in); got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.in, tt.want, got)
		}
	}
	if o, c := SurroundPair('}'); o != '{' || c != '}' {
		t.Errorf("expected braces, got %q %q", o, c)
	}
	if (Object{Around, Paren}).String() != "a(" {
		t.Errorf("unexpected object string %q", Object{Around, Paren}.String())
	}
}
