package editor

import (
	"fmt"
	"sync"

	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/history"
	"github.com/dshills/modalcore/internal/engine/mark"
	"github.com/dshills/modalcore/internal/engine/register"
	"github.com/dshills/modalcore/internal/syntax"
)

// Document is the buffer an Editor edits.
type Document interface {
	buffer.TextBuffer

	// Path is the file path, empty for an unnamed buffer.
	Path() string

	// Key identifies the buffer for local marks.
	Key() string
}

// CommentSource resolves the comment affixes for a file.
type CommentSource interface {
	CommentFor(path string) syntax.Comment
}

// Logger receives diagnostics.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// FileJump is a request to open another file, produced by jumping to a
// global mark set in a different buffer.
type FileJump struct {
	Path  string
	Pos   buffer.Position
	Exact bool
}

// Editor applies actions to one document. Methods are safe for concurrent
// use; the action methods serialize on one lock.
type Editor struct {
	mu sync.Mutex

	doc      Document
	regs     *register.Bank
	undo     *history.Stack
	marks    *mark.Store
	comments CommentSource
	log      Logger

	tabWidth   int
	autoIndent bool
	textRows   int
	scrollOff  int

	mode     Mode
	cursor   buffer.Position
	wantCol  int
	viewport int

	anchor     buffer.Position
	lastVisual visualSel
	hasVisual  bool
	lastInsert buffer.Position
	hasInsert  bool

	status   string
	fileJump *FileJump
	batch    int
}

// New creates an Editor for doc with the cursor at the start.
func New(doc Document, opts ...Option) *Editor {
	e := &Editor{
		doc:        doc,
		undo:       history.NewStack(),
		marks:      mark.NewStore(),
		comments:   syntax.NewRegistry(),
		log:        nopLogger{},
		tabWidth:   DefaultTabWidth,
		autoIndent: true,
		textRows:   DefaultTextRows,
		scrollOff:  DefaultScrollOff,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.regs == nil {
		e.regs = register.NewBank()
	}
	return e
}

// Document returns the edited document.
func (e *Editor) Document() Document {
	return e.doc
}

// Registers returns the register bank.
func (e *Editor) Registers() *register.Bank {
	return e.regs
}

// UndoStack returns the history of the document.
func (e *Editor) UndoStack() *history.Stack {
	return e.undo
}

// Marks returns the mark store.
func (e *Editor) Marks() *mark.Store {
	return e.marks
}

// Mode returns the current mode.
func (e *Editor) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Cursor returns the cursor position.
func (e *Editor) Cursor() buffer.Position {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cursor
}

// SetCursor moves the cursor, clamped for the current mode.
func (e *Editor) SetCursor(p buffer.Position) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursor = p
	e.clampCursor()
	e.wantCol = e.cursor.Col
	e.scrollToCursor()
}

// Viewport returns the first visible line.
func (e *Editor) Viewport() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewport
}

// TextRows returns the viewport height.
func (e *Editor) TextRows() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.textRows
}

// Resize sets the viewport height and keeps the cursor visible.
func (e *Editor) Resize(rows int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rows > 0 {
		e.textRows = rows
	}
	e.scrollToCursor()
}

// Status returns the last status message.
func (e *Editor) Status() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// SetStatus replaces the status message.
func (e *Editor) SetStatus(msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status = msg
}

// ClearStatus empties the status message.
func (e *Editor) ClearStatus() {
	e.SetStatus("")
}

func (e *Editor) statusf(format string, args ...any) {
	e.status = fmt.Sprintf(format, args...)
}

// PendingFileJump returns and clears a request to open another file.
func (e *Editor) PendingFileJump() (FileJump, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.fileJump == nil {
		return FileJump{}, false
	}
	j := *e.fileJump
	e.fileJump = nil
	return j, true
}

// BeginBatch groups every edit until the matching EndBatch into one undo
// entry. Batches nest.
func (e *Editor) BeginBatch() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.batch == 0 {
		e.undo.Begin(e.cursor)
	}
	e.batch++
}

// EndBatch closes a batch opened by BeginBatch.
func (e *Editor) EndBatch() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.batch == 0 {
		return
	}
	e.batch--
	if e.batch == 0 {
		e.undo.End(e.cursor)
	}
}

func (e *Editor) lineCount() int {
	return e.doc.LineCount()
}

func (e *Editor) lineLen(l int) int {
	return e.doc.LineLen(l)
}

func (e *Editor) lineText(l int) string {
	s, _ := e.doc.Line(l)
	return s
}

func (e *Editor) lastLine() int {
	return e.doc.LineCount() - 1
}

// maxCol is the last column the cursor may occupy on a line.
func (e *Editor) maxCol(l int) int {
	n := e.lineLen(l)
	if e.mode.IsInsert() {
		return n
	}
	return max(n-1, 0)
}

func (e *Editor) clampCursor() {
	e.cursor.Line = max(min(e.cursor.Line, e.lastLine()), 0)
	e.cursor.Col = max(min(e.cursor.Col, e.maxCol(e.cursor.Line)), 0)
}

func (e *Editor) clampLine(l int) int {
	return max(min(l, e.lastLine()), 0)
}
