package motion

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/modalcore/internal/engine/buffer"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		motion Motion
		from   buffer.Position
		count  int
		want   buffer.Position
		ok     bool
	}{
		{"left saturates", "hello", New(Left), buffer.Pos(0, 1), 5, buffer.Pos(0, 0), true},
		{"right stops at last char", "hello", New(Right), buffer.Pos(0, 3), 5, buffer.Pos(0, 4), true},
		{"down clamps column", "long line\nab", New(Down), buffer.Pos(0, 7), 1, buffer.Pos(1, 2), true},
		{"up saturates", "a\nb\nc", New(Up), buffer.Pos(2, 0), 9, buffer.Pos(0, 0), true},

		{"word forward", "alpha beta", New(WordForward), buffer.Pos(0, 0), 1, buffer.Pos(0, 6), true},
		{"word forward punctuation", "foo.bar", New(WordForward), buffer.Pos(0, 0), 1, buffer.Pos(0, 3), true},
		{"bigword forward punctuation", "foo.bar baz", New(BigWordForward), buffer.Pos(0, 0), 1, buffer.Pos(0, 8), true},
		{"word forward crosses lines", "foo\n  bar", New(WordForward), buffer.Pos(0, 0), 1, buffer.Pos(1, 2), true},
		{"word forward count", "alpha beta gamma delta", New(WordForward), buffer.Pos(0, 0), 3, buffer.Pos(0, 17), true},
		{"word forward at end", "foo bar", New(WordForward), buffer.Pos(0, 4), 1, buffer.Pos(0, 7), true},

		{"word backward", "alpha beta", New(WordBackward), buffer.Pos(0, 8), 1, buffer.Pos(0, 6), true},
		{"word backward from start", "alpha beta", New(WordBackward), buffer.Pos(0, 6), 1, buffer.Pos(0, 0), true},
		{"word backward crosses lines", "foo\n\n  bar", New(WordBackward), buffer.Pos(2, 2), 1, buffer.Pos(0, 0), true},
		{"bigword backward", "a foo.bar", New(BigWordBackward), buffer.Pos(0, 8), 1, buffer.Pos(0, 2), true},

		{"word end", "alpha beta", New(WordEnd), buffer.Pos(0, 0), 1, buffer.Pos(0, 4), true},
		{"word end from end", "alpha beta", New(WordEnd), buffer.Pos(0, 4), 1, buffer.Pos(0, 9), true},
		{"bigword end", "foo.bar baz", New(BigWordEnd), buffer.Pos(0, 0), 1, buffer.Pos(0, 6), true},

		{"line start", "  hello", New(LineStart), buffer.Pos(0, 4), 1, buffer.Pos(0, 0), true},
		{"first non blank", "  hello", New(FirstNonBlank), buffer.Pos(0, 6), 1, buffer.Pos(0, 2), true},
		{"line end", "hello", New(LineEnd), buffer.Pos(0, 0), 1, buffer.Pos(0, 4), true},
		{"line end empty", "", New(LineEnd), buffer.Pos(0, 0), 1, buffer.Pos(0, 0), true},

		{"file start", "a\nb\nc", New(FileStart), buffer.Pos(2, 0), 1, buffer.Pos(0, 0), true},
		{"file end", "a\nb\nc", New(FileEnd), buffer.Pos(0, 0), 1, buffer.Pos(2, 0), true},
		{"goto line", "a\nb\nc", Line(2), buffer.Pos(0, 0), 1, buffer.Pos(1, 0), true},
		{"goto line clamps", "a\nb\nc", Line(99), buffer.Pos(0, 0), 1, buffer.Pos(2, 0), true},

		{"find char", "a,b,c", Find(','), buffer.Pos(0, 0), 2, buffer.Pos(0, 3), true},
		{"find char missing", "abc", Find('z'), buffer.Pos(0, 0), 1, buffer.Pos(0, 0), false},
		{"find back", "a,b,c", FindBack(','), buffer.Pos(0, 4), 1, buffer.Pos(0, 3), true},
		{"till char", "abc)", Till(')'), buffer.Pos(0, 0), 1, buffer.Pos(0, 2), true},
		{"till adjacent is no-op", "a)", Till(')'), buffer.Pos(0, 0), 1, buffer.Pos(0, 0), false},
		{"till back", "(abc", TillBack('('), buffer.Pos(0, 3), 1, buffer.Pos(0, 1), true},
		{"till back adjacent is no-op", "(a", TillBack('('), buffer.Pos(0, 1), 1, buffer.Pos(0, 1), false},

		{"paragraph forward", "a\nb\n\nc", New(ParagraphForward), buffer.Pos(0, 0), 1, buffer.Pos(2, 0), true},
		{"paragraph forward to end", "a\nb", New(ParagraphForward), buffer.Pos(0, 0), 1, buffer.Pos(1, 0), true},
		{"paragraph backward", "a\n \nb\nc", New(ParagraphBackward), buffer.Pos(3, 0), 1, buffer.Pos(1, 0), true},

		{"bracket forward", "f(a(b)c)", New(MatchingBracket), buffer.Pos(0, 0), 1, buffer.Pos(0, 7), true},
		{"bracket backward", "f(a(b)c)", New(MatchingBracket), buffer.Pos(0, 5), 1, buffer.Pos(0, 3), true},
		{"bracket multi line", "{\n  x\n}", New(MatchingBracket), buffer.Pos(0, 0), 1, buffer.Pos(2, 0), true},
		{"no bracket", "abc", New(MatchingBracket), buffer.Pos(0, 0), 1, buffer.Pos(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromString(tt.text)
			got, ok := Apply(buf, tt.motion, tt.from, tt.count, 20)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestPageMotions(t *testing.T) {
	text := ""
	for i := 0; i < 100; i++ {
		text += "line\n"
	}
	buf := buffer.NewBufferFromString(text)

	tests := []struct {
		motion Motion
		from   int
		want   int
	}{
		{New(HalfPageDown), 0, 10},
		{New(HalfPageUp), 15, 5},
		{New(PageDown), 0, 20},
		{New(PageDown), 95, 100},
		{New(PageUp), 10, 0},
	}
	for _, tt := range tests {
		got, ok := Apply(buf, tt.motion, buffer.Pos(tt.from, 0), 1, 20)
		if !ok || got.Line != tt.want {
			t.Errorf("%s from %d: expected line %d, got %d", tt.motion, tt.from, tt.want, got.Line)
		}
	}
}

func TestKindProperties(t *testing.T) {
	if !New(WordEnd).Inclusive() || New(WordForward).Inclusive() {
		t.Error("word end should be inclusive, word forward exclusive")
	}
	if !Till('x').Inclusive() {
		t.Error("till should be inclusive")
	}
	if !New(Down).Linewise() || New(Right).Linewise() {
		t.Error("down should be linewise, right charwise")
	}
	if Find('x').Reverse() != FindBack('x') || TillBack('x').Reverse() != Till('x') {
		t.Error("reverse should flip find direction")
	}
	if Find('x').String() != "FindForward('x')" {
		t.Errorf("unexpected string %q", Find('x').String())
	}
	if Line(3).String() != "GotoLine(3)" {
		t.Errorf("unexpected string %q", Line(3).String())
	}
}

var allKinds = []Kind{
	Left, Right, Up, Down,
	WordForward, WordBackward, WordEnd, BigWordForward, BigWordBackward, BigWordEnd,
	LineStart, FirstNonBlank, LineEnd, FileStart, FileEnd, GotoLine,
	HalfPageDown, HalfPageUp, PageDown, PageUp, ScreenTop, ScreenMiddle, ScreenBottom,
	FindForward, FindBackward, TillForward, TillBackward,
	ParagraphForward, ParagraphBackward, MatchingBracket,
}

// TestApplyStaysInRange applies random motions repeatedly and checks that
// every target is a valid buffer coordinate.
func TestApplyStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringOf(rapid.RuneFrom([]rune("ab_ .,(){}\n\t"))).Draw(t, "text")
		buf := buffer.NewBufferFromString(text)
		pos := buffer.Pos(0, 0)

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			m := Motion{
				Kind: rapid.SampledFrom(allKinds).Draw(t, "kind"),
				Char: rapid.RuneFrom([]rune("a.(")).Draw(t, "char"),
				Line: rapid.IntRange(-5, 50).Draw(t, "line"),
			}
			count := rapid.IntRange(0, 5).Draw(t, "count")
			rows := rapid.IntRange(0, 30).Draw(t, "rows")

			next, _ := Apply(buf, m, pos, count, rows)
			if next.Line < 0 || next.Line >= buf.LineCount() {
				t.Fatalf("%s: line %d out of range", m, next.Line)
			}
			if next.Col < 0 || next.Col > buf.LineLen(next.Line) {
				t.Fatalf("%s: col %d out of range on line %d", m, next.Col, next.Line)
			}
			pos = next
		}
	})
}

// TestWordRoundTrip checks that w then b from inside a word lands on the
// start of that word.
func TestWordRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,6}`), 3, 8).Draw(t, "words")
		text := ""
		starts := make([]int, len(words))
		for i, w := range words {
			if i > 0 {
				text += " "
			}
			starts[i] = len(text)
			text += w
		}
		buf := buffer.NewBufferFromString(text)

		// Pick a word that is not the last one so w stays inside the buffer.
		idx := rapid.IntRange(0, len(words)-2).Draw(t, "word")
		offset := rapid.IntRange(0, len(words[idx])-1).Draw(t, "offset")
		from := buffer.Pos(0, starts[idx]+offset)

		fwd, _ := Apply(buf, New(WordForward), from, 1, 0)
		back, _ := Apply(buf, New(WordBackward), fwd, 1, 0)
		if back.Col != starts[idx] {
			t.Fatalf("expected col %d, got %d (text %q)", starts[idx], back.Col, text)
		}
	})
}
