package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
	if b.Dirty() {
		t.Error("new buffer should not be dirty")
	}
	if b.DisplayName() != "[No Name]" {
		t.Errorf("expected [No Name], got %q", b.DisplayName())
	}
	if b.ID() == "" {
		t.Error("expected a generated ID")
	}
}

func TestLineAccessors(t *testing.T) {
	b := NewBufferFromString("héllo\nworld\n")

	tests := []struct {
		line        int
		text        string
		ok          bool
		len         int
		withNewline int
	}{
		{0, "héllo", true, 5, 6},
		{1, "world", true, 5, 6},
		{2, "", true, 0, 0},
		{3, "", false, 0, 0},
		{-1, "", false, 0, 0},
	}

	for _, tt := range tests {
		text, ok := b.Line(tt.line)
		if text != tt.text || ok != tt.ok {
			t.Errorf("line %d: expected (%q, %v), got (%q, %v)", tt.line, tt.text, tt.ok, text, ok)
		}
		if got := b.LineLen(tt.line); got != tt.len {
			t.Errorf("line %d: expected len %d, got %d", tt.line, tt.len, got)
		}
		if got := b.LineLenWithNewline(tt.line); got != tt.withNewline {
			t.Errorf("line %d: expected len with newline %d, got %d", tt.line, tt.withNewline, got)
		}
	}

	if r, ok := b.CharAt(0, 1); !ok || r != 'é' {
		t.Errorf("expected 'é', got %q", r)
	}
	if r, ok := b.CharAt(0, 5); !ok || r != '\n' {
		t.Errorf("expected newline at end of line, got %q", r)
	}
	if _, ok := b.CharAt(9, 0); ok {
		t.Error("expected CharAt out of range to fail")
	}
}

func TestEditsBumpVersion(t *testing.T) {
	b := NewBufferFromString("abc")
	v := b.Version()

	b.InsertChar(0, 1, 'x')
	if b.Text() != "axbc" {
		t.Errorf("expected %q, got %q", "axbc", b.Text())
	}
	if b.Version() != v+1 {
		t.Errorf("expected version %d, got %d", v+1, b.Version())
	}
	if !b.Dirty() {
		t.Error("expected dirty after edit")
	}

	b.DeleteChar(0, 0)
	if b.Text() != "xbc" {
		t.Errorf("expected %q, got %q", "xbc", b.Text())
	}

	v = b.Version()
	b.DeleteChar(0, 10)
	b.DeleteRange(0, 2, 0, 1)
	b.InsertString(0, 0, "")
	if b.Version() != v {
		t.Error("no-op edits must not bump the version")
	}
}

func TestDeleteRangeAcrossLines(t *testing.T) {
	b := NewBufferFromString("one\ntwo\nthree")

	// Column past the line length continues into the next line.
	b.DeleteRange(0, 2, 0, b.LineLenWithNewline(0))
	if b.Text() != "ontwo\nthree" {
		t.Errorf("expected %q, got %q", "ontwo\nthree", b.Text())
	}

	b.DeleteRange(0, 2, 1, 2)
	if b.Text() != "onree" {
		t.Errorf("expected %q, got %q", "onree", b.Text())
	}
}

func TestTextRange(t *testing.T) {
	b := NewBufferFromString("alpha\nbeta")

	tests := []struct {
		name           string
		sl, sc, el, ec int
		want           string
	}{
		{"same line", 0, 1, 0, 4, "lph"},
		{"across newline", 0, 3, 1, 2, "ha\nbe"},
		{"inverted", 1, 2, 0, 1, ""},
		{"clamped end", 1, 0, 5, 0, "beta"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.TextRange(tt.sl, tt.sc, tt.el, tt.ec); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestApplyChange(t *testing.T) {
	b := NewBufferFromString("say \"hi\"")
	b.ApplyChange(0, 4, "\"", "'")
	if b.Text() != "say 'hi\"" {
		t.Errorf("expected %q, got %q", "say 'hi\"", b.Text())
	}
	b.ApplyChange(0, 4, "'", "")
	b.ApplyChange(0, 4, "", "[")
	if b.Text() != "say [hi\"" {
		t.Errorf("expected %q, got %q", "say [hi\"", b.Text())
	}
}

func TestIndentAndLineEndsWith(t *testing.T) {
	b := NewBufferFromString("\t  if x {  \nplain")

	if got := b.Indent(0); got != "\t  " {
		t.Errorf("expected %q, got %q", "\t  ", got)
	}
	if got := b.Indent(1); got != "" {
		t.Errorf("expected no indent, got %q", got)
	}
	if !b.LineEndsWith(0, '{') {
		t.Error("expected line 0 to end with '{'")
	}
	if b.LineEndsWith(1, '{') {
		t.Error("expected line 1 not to end with '{'")
	}
}

func TestKeyAndDisplayName(t *testing.T) {
	b := NewBuffer(WithID("abc"))
	if b.Key() != "__unnamed_abc" {
		t.Errorf("expected synthetic key, got %q", b.Key())
	}

	b.SetPath("/tmp/project/main.go")
	if b.Key() != "/tmp/project/main.go" {
		t.Errorf("expected path key, got %q", b.Key())
	}
	if b.DisplayName() != "main.go" {
		t.Errorf("expected main.go, got %q", b.DisplayName())
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Text() != "a\nb\n" {
		t.Errorf("expected normalized text, got %q", b.Text())
	}
	if b.LineEnding() != LineEndingCRLF {
		t.Errorf("expected crlf, got %s", b.LineEnding())
	}

	b.InsertString(2, 0, "c")
	if err := b.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Dirty() {
		t.Error("expected clean after save")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a\r\nb\r\nc" {
		t.Errorf("expected crlf output, got %q", data)
	}
	info, _ := os.Stat(path)
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected permissions kept, got %v", info.Mode().Perm())
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	b, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.IsEmpty() || b.Path() != path {
		t.Error("expected empty buffer bound to path")
	}
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrIsDirectory) {
		t.Errorf("expected ErrIsDirectory, got %v", err)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := NewBuffer().Save(); !errors.Is(err, ErrNoPath) {
		t.Errorf("expected ErrNoPath, got %v", err)
	}
}
