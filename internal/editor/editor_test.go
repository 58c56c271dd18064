package editor

import (
	"testing"

	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/history"
	"github.com/dshills/modalcore/internal/engine/mark"
	"github.com/dshills/modalcore/internal/engine/register"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/vim"
)

type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

func newEditor(text string, opts ...Option) *Editor {
	return newEditorAt("", text, opts...)
}

func newEditorAt(path, text string, opts ...Option) *Editor {
	var bopts []buffer.Option
	if path != "" {
		bopts = append(bopts, buffer.WithPath(path))
	}
	buf := buffer.NewBufferFromString(text, bopts...)
	base := []Option{
		WithRegisters(register.NewBank(register.WithClipboard(register.NoClipboard{}))),
		WithUndoStack(history.NewStack(history.WithGroupInterval(0))),
	}
	return New(buf, append(base, opts...)...)
}

// run feeds keys through a fresh input state, routing by mode the way the
// dispatcher does.
func run(t fataler, e *Editor, keys string) {
	t.Helper()
	events, err := key.ParseSequence(keys)
	if err != nil {
		t.Fatalf("ParseSequence(%q): %v", keys, err)
	}
	st := vim.NewState()
	for _, ev := range events {
		var a vim.Action
		switch m := e.Mode(); {
		case m.IsInsert():
			a = vim.ProcessInsertKey(ev)
		case m.IsVisual():
			a = st.ProcessVisualKey(ev)
		default:
			a = st.ProcessNormalKey(ev)
		}
		e.Execute(a)
	}
}

func text(e *Editor) string {
	return e.Document().(*buffer.Buffer).Text()
}

func TestNormalEdits(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor buffer.Position
		keys   string
		want   string
		at     buffer.Position
	}{
		{"count delete words", "one two three four", buffer.Pos(0, 0), "3dw", "four", buffer.Pos(0, 0)},
		{"delete word at line end", "foo\n  bar", buffer.Pos(0, 0), "dw", "\n  bar", buffer.Pos(0, 0)},
		{"change word", "foo bar", buffer.Pos(0, 0), "cwbaz<Esc>", "baz bar", buffer.Pos(0, 2)},
		{"delete to end", "hello world", buffer.Pos(0, 5), "D", "hello", buffer.Pos(0, 4)},
		{"delete till", "ab,c", buffer.Pos(0, 0), "dt,", ",c", buffer.Pos(0, 0)},
		{"delete find inclusive", "a,b,c", buffer.Pos(0, 0), "df,", "b,c", buffer.Pos(0, 0)},
		{"delete paragraph", "a\nb\n\nc", buffer.Pos(0, 0), "d}", "\nc", buffer.Pos(0, 0)},
		{"delete left at col 0", "abc", buffer.Pos(0, 0), "dh", "abc", buffer.Pos(0, 0)},
		{"delete lines", "a\nb\nc", buffer.Pos(0, 0), "2dd", "c", buffer.Pos(0, 0)},
		{"delete last line", "a\nb\nc", buffer.Pos(2, 0), "dd", "a\nb", buffer.Pos(1, 0)},
		{"delete down", "a\nb\nc", buffer.Pos(1, 0), "dj", "a", buffer.Pos(0, 0)},
		{"delete inner quote", `say "hello world" now`, buffer.Pos(0, 5), `di"`, `say "" now`, buffer.Pos(0, 5)},
		{"delete around quote", `say "hello world" now`, buffer.Pos(0, 5), `da"`, `say  now`, buffer.Pos(0, 4)},
		{"delete inner paren", "call(a, b) end", buffer.Pos(0, 5), "di(", "call() end", buffer.Pos(0, 5)},
		{"change lines keeps indent", "  foo\nbar", buffer.Pos(0, 3), "ccx<Esc>", "  x\nbar", buffer.Pos(0, 2)},
		{"x", "abc", buffer.Pos(0, 1), "x", "ac", buffer.Pos(0, 1)},
		{"X", "abc", buffer.Pos(0, 2), "2X", "c", buffer.Pos(0, 0)},
		{"replace char", "abc", buffer.Pos(0, 0), "2rx", "xxc", buffer.Pos(0, 1)},
		{"replace past end", "abc", buffer.Pos(0, 2), "2rx", "abc", buffer.Pos(0, 2)},
		{"join", "a\n   b\nc", buffer.Pos(0, 0), "J", "a b\nc", buffer.Pos(0, 1)},
		{"join count", "a\nb\nc", buffer.Pos(0, 0), "3J", "a b c", buffer.Pos(0, 3)},
		{"swap chars", "abc", buffer.Pos(0, 0), "xp", "bac", buffer.Pos(0, 1)},
		{"move line down", "a\nb\nc", buffer.Pos(0, 0), "ddp", "b\na\nc", buffer.Pos(1, 0)},
		{"paste lines above with count", "x\ny", buffer.Pos(0, 0), "yy2P", "x\nx\nx\ny", buffer.Pos(0, 0)},
		{"named register", "a\nb", buffer.Pos(0, 0), `"ayyj"ap`, "a\nb\na", buffer.Pos(2, 0)},
		{"indent lines", "a\n\nb", buffer.Pos(0, 0), "3>>", "    a\n\n    b", buffer.Pos(0, 4)},
		{"dedent lines", "\tx\n  y\n      z", buffer.Pos(0, 0), "3<<", "x\ny\n  z", buffer.Pos(0, 0)},
		{"indent motion", "a\nb\nc", buffer.Pos(0, 0), ">j", "    a\n    b\nc", buffer.Pos(0, 4)},
		{"upper word", "Hello World", buffer.Pos(0, 0), "gUiw", "HELLO World", buffer.Pos(0, 0)},
		{"toggle case line", "Hello World", buffer.Pos(0, 3), "g~~", "hELLO wORLD", buffer.Pos(0, 0)},
		{"lower line", "Hello World", buffer.Pos(0, 0), "guu", "hello world", buffer.Pos(0, 0)},
		{"upper motion", "Hello World", buffer.Pos(0, 0), "gUw", "HELLO World", buffer.Pos(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditor(tt.text)
			e.SetCursor(tt.cursor)
			run(t, e, tt.keys)
			if got := text(e); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if got := e.Cursor(); got != tt.at {
				t.Errorf("expected cursor %s, got %s", tt.at, got)
			}
			if e.Mode() != ModeNormal {
				t.Errorf("expected Normal mode, got %s", e.Mode())
			}
		})
	}
}

func TestSurround(t *testing.T) {
	tests := []struct {
		name string
		text string
		col  int
		keys string
		want string
	}{
		{"change quotes", `say "hi"`, 5, `cs"'`, `say 'hi'`},
		{"change parens to brackets", "f(x)", 2, "cs(]", "f[x]"},
		{"delete parens", "f(x)", 2, "ds(", "fx"},
		{"delete alias", "f(x)", 2, "dsb", "fx"},
		{"add quotes", "hello world", 0, `ysiw"`, `"hello" world`},
		{"add parens", "hello world", 6, "ysiw)", "hello (world)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditor(tt.text)
			e.SetCursor(buffer.Pos(0, tt.col))
			run(t, e, tt.keys)
			if got := text(e); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}

	t.Run("missing pair", func(t *testing.T) {
		e := newEditor("plain")
		run(t, e, "ds(")
		if text(e) != "plain" {
			t.Errorf("expected unchanged buffer, got %q", text(e))
		}
		if e.Status() != "No surrounding ( found" {
			t.Errorf("unexpected status %q", e.Status())
		}
	})
}

func TestMissingTextObject(t *testing.T) {
	e := newEditor("abc")
	run(t, e, "di(")
	if text(e) != "abc" {
		t.Errorf("expected unchanged buffer, got %q", text(e))
	}
	if e.Status() != "No text object i( found" {
		t.Errorf("unexpected status %q", e.Status())
	}
}

func TestComments(t *testing.T) {
	tests := []struct {
		name string
		path string
		text string
		keys string
		want string
	}{
		{"go lines", "main.go", "a := 1\n  b := 2", "gcj", "// a := 1\n  // b := 2"},
		{"python line", "x.py", "print(1)", "gcc", "# print(1)"},
		{"html suffix", "x.html", "<p>hi</p>", "gcc", "<!-- <p>hi</p> -->"},
		{"skip blank lines", "main.go", "a\n\nb", "gcG", "// a\n\n// b"},
		{"uncomment", "main.go", "// a\n  // b", "gcj", "a\n  b"},
		{"uncomment suffix", "x.css", "/* a { } */", "gcc", "a { }"},
		{"mixed comments", "main.go", "// a\nb", "gcj", "// // a\n// b"},
		{"unknown type", "", "a", "gcc", "// a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditorAt(tt.path, tt.text)
			run(t, e, tt.keys)
			if got := text(e); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}

	t.Run("round trip", func(t *testing.T) {
		e := newEditorAt("x.html", "<p>hi</p>")
		run(t, e, "gccgcc")
		if got := text(e); got != "<p>hi</p>" {
			t.Errorf("expected original text, got %q", got)
		}
	})
}

func TestVisual(t *testing.T) {
	t.Run("charwise yank", func(t *testing.T) {
		e := newEditor("hello world")
		run(t, e, "vey")
		c, _ := e.Registers().Get(register.Unnamed)
		if c.Text != "hello" || c.IsLinewise() {
			t.Errorf("unexpected register %+v", c)
		}
		if e.Status() != "Yanked" {
			t.Errorf("unexpected status %q", e.Status())
		}
		if e.Mode() != ModeNormal {
			t.Errorf("expected Normal mode, got %s", e.Mode())
		}
	})

	t.Run("linewise delete", func(t *testing.T) {
		e := newEditor("one\ntwo\nthree")
		run(t, e, "Vjd")
		if got := text(e); got != "three" {
			t.Errorf("expected %q, got %q", "three", got)
		}
		c, _ := e.Registers().Get(register.Unnamed)
		if c.Text != "one\ntwo\n" || !c.IsLinewise() {
			t.Errorf("unexpected register %+v", c)
		}
	})

	t.Run("linewise yank status", func(t *testing.T) {
		e := newEditor("one\ntwo\nthree")
		run(t, e, "Vjjy")
		if e.Status() != "3 lines yanked" {
			t.Errorf("unexpected status %q", e.Status())
		}
	})

	t.Run("block delete", func(t *testing.T) {
		e := newEditor("abcd\nefgh\nijkl")
		e.SetCursor(buffer.Pos(0, 1))
		run(t, e, "<C-v>jjld")
		if got := text(e); got != "ad\neh\nil" {
			t.Errorf("expected %q, got %q", "ad\neh\nil", got)
		}
		c, _ := e.Registers().Get(register.Unnamed)
		if c.Text != "bc\nfg\njk" {
			t.Errorf("unexpected register %q", c.Text)
		}
		if got := e.Cursor(); got != buffer.Pos(0, 1) {
			t.Errorf("expected cursor (0,1), got %s", got)
		}
	})

	t.Run("block skips short rows", func(t *testing.T) {
		e := newEditor("abcd\nx\nefgh")
		e.SetCursor(buffer.Pos(0, 1))
		run(t, e, "<C-v>ljjd")
		if got := text(e); got != "ad\nx\neh" {
			t.Errorf("expected %q, got %q", "ad\nx\neh", got)
		}
		c, _ := e.Registers().Get(register.Unnamed)
		if c.Text != "bc\n\nfg" {
			t.Errorf("unexpected register %q", c.Text)
		}
		if got := e.Cursor(); got != buffer.Pos(0, 1) {
			t.Errorf("expected cursor (0,1), got %s", got)
		}
	})

	t.Run("block yank status", func(t *testing.T) {
		e := newEditor("ab\ncd")
		run(t, e, "<C-v>jy")
		if e.Status() != "block of 2 lines yanked" {
			t.Errorf("unexpected status %q", e.Status())
		}
	})

	t.Run("case", func(t *testing.T) {
		e := newEditor("abc def")
		run(t, e, "veU")
		if got := text(e); got != "ABC def" {
			t.Errorf("expected %q, got %q", "ABC def", got)
		}
	})

	t.Run("indent", func(t *testing.T) {
		e := newEditor("a\nb")
		run(t, e, "Vj>")
		if got := text(e); got != "    a\n    b" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("comment", func(t *testing.T) {
		e := newEditorAt("a.go", "a\nb")
		run(t, e, "Vjgc")
		if got := text(e); got != "// a\n// b" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("change", func(t *testing.T) {
		e := newEditor("abc def")
		run(t, e, "vecX<Esc>")
		if got := text(e); got != "X def" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("toggle and switch", func(t *testing.T) {
		e := newEditor("abc")
		run(t, e, "v")
		if e.Mode() != ModeVisual {
			t.Fatalf("expected Visual, got %s", e.Mode())
		}
		run(t, e, "V")
		if e.Mode() != ModeVisualLine {
			t.Fatalf("expected V-LINE, got %s", e.Mode())
		}
		run(t, e, "V")
		if e.Mode() != ModeNormal {
			t.Fatalf("expected Normal, got %s", e.Mode())
		}
	})

	t.Run("reselect and swap", func(t *testing.T) {
		e := newEditor("hello world")
		run(t, e, "vl<Esc>")
		run(t, e, "gv")
		start, end, ok := e.Selection()
		if !ok || start != buffer.Pos(0, 0) || end != buffer.Pos(0, 1) {
			t.Fatalf("unexpected selection %s %s %v", start, end, ok)
		}
		run(t, e, "o")
		if got := e.Cursor(); got != buffer.Pos(0, 0) {
			t.Errorf("expected cursor at anchor, got %s", got)
		}
	})

	t.Run("select text object", func(t *testing.T) {
		e := newEditor("say (abc) now")
		e.SetCursor(buffer.Pos(0, 6))
		run(t, e, "vi(d")
		if got := text(e); got != "say () now" {
			t.Errorf("got %q", got)
		}
	})
}

func TestInsertMode(t *testing.T) {
	t.Run("one undo entry", func(t *testing.T) {
		e := newEditor("")
		run(t, e, "ihello<Esc>")
		if got := text(e); got != "hello" {
			t.Fatalf("got %q", got)
		}
		if got := e.Cursor(); got != buffer.Pos(0, 4) {
			t.Errorf("expected cursor (0,4), got %s", got)
		}
		run(t, e, "u")
		if got := text(e); got != "" {
			t.Errorf("expected empty buffer after undo, got %q", got)
		}
	})

	t.Run("auto indent", func(t *testing.T) {
		e := newEditor("func f() {")
		run(t, e, "A<CR>x<Esc>o}<Esc>")
		want := "func f() {\n    x\n}"
		if got := text(e); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("no auto indent", func(t *testing.T) {
		e := newEditor("  a", WithAutoIndent(false))
		run(t, e, "ob<Esc>")
		if got := text(e); got != "  a\nb" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("backspace joins lines", func(t *testing.T) {
		e := newEditor("ab\ncd")
		e.SetCursor(buffer.Pos(1, 0))
		run(t, e, "i<BS><Esc>")
		if got := text(e); got != "abcd" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("tab stops", func(t *testing.T) {
		e := newEditor("ab", WithTabWidth(4))
		run(t, e, "A<Tab>x<Esc>")
		if got := text(e); got != "ab  x" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("replace mode", func(t *testing.T) {
		e := newEditor("abcd")
		run(t, e, "RXY<Esc>")
		if got := text(e); got != "XYcd" {
			t.Fatalf("got %q", got)
		}
		if got := e.Cursor(); got != buffer.Pos(0, 1) {
			t.Errorf("expected cursor (0,1), got %s", got)
		}
		run(t, e, "u")
		if got := text(e); got != "abcd" {
			t.Errorf("expected undo to restore, got %q", got)
		}
	})

	t.Run("replace extends line", func(t *testing.T) {
		e := newEditor("ab")
		run(t, e, "RWXYZ<Esc>")
		if got := text(e); got != "WXYZ" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("last insert", func(t *testing.T) {
		e := newEditor("abc\ndef")
		run(t, e, "Ax<Esc>jgiy<Esc>")
		if got := text(e); got != "abcxy\ndef" {
			t.Errorf("got %q", got)
		}
	})
}

func TestUndoRedo(t *testing.T) {
	e := newEditor("abc")
	run(t, e, "u")
	if e.Status() != "Already at oldest change" {
		t.Errorf("unexpected status %q", e.Status())
	}
	run(t, e, "x")
	if got := text(e); got != "bc" {
		t.Fatalf("got %q", got)
	}
	run(t, e, "u")
	if got := text(e); got != "abc" {
		t.Fatalf("expected undo, got %q", got)
	}
	run(t, e, "<C-r>")
	if got := text(e); got != "bc" {
		t.Fatalf("expected redo, got %q", got)
	}
	run(t, e, "<C-r>")
	if e.Status() != "Already at newest change" {
		t.Errorf("unexpected status %q", e.Status())
	}
}

func TestBatchGroupsEdits(t *testing.T) {
	e := newEditor("abcd")
	e.BeginBatch()
	run(t, e, "xx")
	e.EndBatch()
	if got := text(e); got != "cd" {
		t.Fatalf("got %q", got)
	}
	if n := e.UndoStack().UndoCount(); n != 1 {
		t.Errorf("expected 1 undo entry, got %d", n)
	}
	run(t, e, "u")
	if got := text(e); got != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", got)
	}
}

func TestMarks(t *testing.T) {
	e := newEditor("a\n  bc\nc")
	e.SetCursor(buffer.Pos(1, 3))
	run(t, e, "ma")
	if e.Status() != "Mark 'a' set" {
		t.Errorf("unexpected status %q", e.Status())
	}
	run(t, e, "gg'a")
	if got := e.Cursor(); got != buffer.Pos(1, 2) {
		t.Errorf("expected line jump to (1,2), got %s", got)
	}
	run(t, e, "gg`a")
	if got := e.Cursor(); got != buffer.Pos(1, 3) {
		t.Errorf("expected exact jump to (1,3), got %s", got)
	}
	run(t, e, "'b")
	if e.Status() != "Mark 'b' not set" {
		t.Errorf("unexpected status %q", e.Status())
	}

	t.Run("global mark in other file", func(t *testing.T) {
		store := mark.NewStore()
		one := newEditorAt("/tmp/one.txt", "x\ny", WithMarks(store))
		two := newEditorAt("/tmp/two.txt", "z", WithMarks(store))
		one.SetCursor(buffer.Pos(1, 0))
		run(t, one, "mA")
		run(t, two, "'A")
		jump, ok := two.PendingFileJump()
		if !ok {
			t.Fatal("expected a file jump")
		}
		if jump.Path != "/tmp/one.txt" || jump.Pos != buffer.Pos(1, 0) || jump.Exact {
			t.Errorf("unexpected jump %+v", jump)
		}
		if _, ok := two.PendingFileJump(); ok {
			t.Error("expected jump to be cleared")
		}
	})

	t.Run("global mark needs a path", func(t *testing.T) {
		e := newEditor("x")
		if e.SetMark('A') {
			t.Error("expected global mark to be refused")
		}
	})
}

func TestScreenMotions(t *testing.T) {
	lines := make([]byte, 0, 60)
	for i := 0; i < 30; i++ {
		lines = append(lines, 'x', '\n')
	}
	e := newEditor(string(lines[:len(lines)-1]), WithTextRows(10))
	e.SetCursor(buffer.Pos(20, 0))
	if got := e.Viewport(); got != 11 {
		t.Fatalf("expected viewport 11, got %d", got)
	}

	tests := []struct {
		keys string
		line int
	}{
		{"H", 11},
		{"3H", 13},
		{"M", 15},
		{"L", 20},
		{"2L", 19},
	}
	for _, tt := range tests {
		run(t, e, tt.keys)
		if got := e.Cursor().Line; got != tt.line {
			t.Errorf("%s: expected line %d, got %d", tt.keys, tt.line, got)
		}
	}

	e.SetCursor(buffer.Pos(20, 0))
	run(t, e, "zt")
	if got := e.Viewport(); got != 20 {
		t.Errorf("zt: expected viewport 20, got %d", got)
	}
	run(t, e, "zz")
	if got := e.Viewport(); got != 15 {
		t.Errorf("zz: expected viewport 15, got %d", got)
	}
	run(t, e, "zb")
	if got := e.Viewport(); got != 11 {
		t.Errorf("zb: expected viewport 11, got %d", got)
	}
}

func TestVerticalMotionKeepsColumn(t *testing.T) {
	e := newEditor("abcdef\nx\nabcdef")
	e.SetCursor(buffer.Pos(0, 4))
	run(t, e, "j")
	if got := e.Cursor(); got != buffer.Pos(1, 0) {
		t.Errorf("expected (1,0), got %s", got)
	}
	run(t, e, "j")
	if got := e.Cursor(); got != buffer.Pos(2, 4) {
		t.Errorf("expected (2,4), got %s", got)
	}
}

func TestExecuteUnhandled(t *testing.T) {
	e := newEditor("a")
	for _, k := range []vim.ActionKind{vim.ActionPending, vim.ActionUnknown, vim.ActionHover, vim.ActionSave, vim.ActionQuit, vim.ActionPlayMacro} {
		if e.Execute(vim.Action{Kind: k}) {
			t.Errorf("expected %s to be unhandled", k)
		}
	}
	if !e.Execute(vim.Action{Kind: vim.ActionRepeatLastChange}) {
		t.Error("expected repeat to be handled")
	}
	if e.Status() != "repeat not implemented" {
		t.Errorf("unexpected status %q", e.Status())
	}
}

func TestReconfigure(t *testing.T) {
	e := newEditor("a")
	e.Reconfigure(WithTabWidth(2), WithAutoIndent(false))
	run(t, e, ">>")
	if got := text(e); got != "  a" {
		t.Errorf("expected %q, got %q", "  a", got)
	}
}
