package buffer

import (
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/modalcore/internal/engine/rope"
)

// Reader is the read-only buffer surface used by motions and text objects.
type Reader interface {
	// LineCount returns the number of lines. A trailing newline starts a
	// final empty line. An empty buffer has one line.
	LineCount() int

	// Line returns the text of a line without its newline.
	Line(idx int) (string, bool)

	// LineLen returns the character length of a line excluding its newline.
	LineLen(idx int) int

	// LineLenWithNewline returns the character length including the newline.
	LineLenWithNewline(idx int) int

	// CharAt returns the character at a position.
	CharAt(line, col int) (rune, bool)

	// TextRange returns the text between two positions, end exclusive.
	TextRange(startLine, startCol, endLine, endCol int) string

	// Version returns the mutation counter.
	Version() uint64
}

// TextBuffer is the contract the editor mutates.
type TextBuffer interface {
	Reader

	InsertChar(line, col int, r rune)
	InsertString(line, col int, s string)
	DeleteChar(line, col int)
	DeleteRange(startLine, startCol, endLine, endCol int)

	// ApplyChange removes the given text at a position and inserts the
	// replacement. It is used to replay undo and redo changes.
	ApplyChange(line, col int, remove, insert string)
}

// Buffer is a rope-backed TextBuffer with file metadata.
type Buffer struct {
	mu         sync.RWMutex
	rope       rope.Rope
	id         string
	path       string
	dirty      bool
	version    uint64
	lineEnding LineEnding
}

var _ TextBuffer = (*Buffer)(nil)

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		rope:       rope.New(),
		id:         uuid.New().String(),
		lineEnding: LineEndingLF,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromString creates a buffer with initial content. Line endings are
// normalized to LF and the detected style is kept for Save.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(append([]Option{WithLineEnding(DetectLineEnding(s))}, opts...)...)
	b.rope = rope.FromString(normalizeLineEndings(s))
	return b
}

// offset converts a position to a rope offset. The column is added to the
// line start without clamping to the line, matching the documented contract.
func (b *Buffer) offset(line, col int) int {
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	off := b.rope.LineStart(line) + col
	if n := b.rope.Len(); off > n {
		off = n
	}
	return off
}

func (b *Buffer) touch() {
	b.dirty = true
	b.version++
}

// Read operations

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.LineCount()
}

// Line returns the text of a line without its newline.
func (b *Buffer) Line(idx int) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if idx < 0 || idx >= b.rope.LineCount() {
		return "", false
	}
	return b.rope.LineText(idx), true
}

// LineText returns the text of a line, or "" when out of range.
func (b *Buffer) LineText(idx int) string {
	s, _ := b.Line(idx)
	return s
}

// LineLen returns the length of a line in characters, excluding the newline.
func (b *Buffer) LineLen(idx int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.LineLen(idx)
}

// LineLenWithNewline returns the length of a line including its newline.
func (b *Buffer) LineLenWithNewline(idx int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := b.rope.LineCount()
	if idx < 0 || idx >= n {
		return 0
	}
	if idx < n-1 {
		return b.rope.LineStart(idx+1) - b.rope.LineStart(idx)
	}
	return b.rope.LineLen(idx)
}

// CharAt returns the character at a position.
func (b *Buffer) CharAt(line, col int) (rune, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || col < 0 || line >= b.rope.LineCount() {
		return utf8.RuneError, false
	}
	return b.rope.CharAt(b.rope.LineStart(line) + col)
}

// TextRange returns the text between two positions, end exclusive.
// An inverted or out-of-range span yields "".
func (b *Buffer) TextRange(startLine, startCol, endLine, endCol int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start := b.offset(startLine, startCol)
	end := b.offset(endLine, endCol)
	if start >= end {
		return ""
	}
	return b.rope.Slice(start, end)
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.String()
}

// String implements fmt.Stringer.
func (b *Buffer) String() string {
	return b.Text()
}

// Len returns the total number of characters.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.Len()
}

// IsEmpty returns true if the buffer has no content.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// Version returns the mutation counter.
func (b *Buffer) Version() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// Indent returns the leading spaces and tabs of a line.
func (b *Buffer) Indent(idx int) string {
	line := b.LineText(idx)
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// LineEndsWith reports whether the last non-blank character of a line is r.
func (b *Buffer) LineEndsWith(idx int, r rune) bool {
	line := strings.TrimRight(b.LineText(idx), " \t")
	if line == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(line)
	return last == r
}

// Write operations

// InsertChar inserts a single character at a position.
func (b *Buffer) InsertChar(line, col int, r rune) {
	b.InsertString(line, col, string(r))
}

// InsertString inserts text at a position.
func (b *Buffer) InsertString(line, col int, s string) {
	if s == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rope = b.rope.Insert(b.offset(line, col), s)
	b.touch()
}

// DeleteChar deletes the character at a position. Deleting past the end is a
// no-op.
func (b *Buffer) DeleteChar(line, col int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	off := b.offset(line, col)
	if off >= b.rope.Len() {
		return
	}
	b.rope = b.rope.Delete(off, off+1)
	b.touch()
}

// DeleteRange deletes the text between two positions, end exclusive.
func (b *Buffer) DeleteRange(startLine, startCol, endLine, endCol int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	start := b.offset(startLine, startCol)
	end := b.offset(endLine, endCol)
	if start >= end {
		return
	}
	b.rope = b.rope.Delete(start, end)
	b.touch()
}

// ApplyChange removes remove at the position and inserts insert there.
// The removal is clipped to the end of the buffer.
func (b *Buffer) ApplyChange(line, col int, remove, insert string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	off := b.offset(line, col)
	if remove != "" {
		b.rope = b.rope.Delete(off, off+utf8.RuneCountInString(remove))
	}
	if insert != "" {
		b.rope = b.rope.Insert(off, insert)
	}
	b.touch()
}

// Replace swaps the whole content, for example after a reload.
func (b *Buffer) Replace(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rope = rope.FromString(normalizeLineEndings(text))
	b.touch()
}

// Metadata

// ID returns the buffer's unique identifier.
func (b *Buffer) ID() string {
	return b.id
}

// Path returns the file path, or "" for an unnamed buffer.
func (b *Buffer) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.path
}

// SetPath associates the buffer with a file path.
func (b *Buffer) SetPath(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.path = path
}

// Key returns the identity used to scope buffer-local state such as marks:
// the path when set, otherwise a synthetic key derived from the ID.
func (b *Buffer) Key() string {
	if p := b.Path(); p != "" {
		return p
	}
	return "__unnamed_" + b.id
}

// DisplayName returns the base name of the path, or "[No Name]".
func (b *Buffer) DisplayName() string {
	p := b.Path()
	if p == "" {
		return "[No Name]"
	}
	return filepath.Base(p)
}

// Dirty reports whether the buffer has unsaved changes.
func (b *Buffer) Dirty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dirty
}

// MarkClean clears the dirty flag.
func (b *Buffer) MarkClean() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dirty = false
}

// MarkModified sets the dirty flag without changing the content.
func (b *Buffer) MarkModified() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dirty = true
}

// LineEnding returns the line ending written by Save.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}
