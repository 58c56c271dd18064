package editor

import (
	"github.com/dshills/modalcore/internal/engine/history"
	"github.com/dshills/modalcore/internal/engine/mark"
	"github.com/dshills/modalcore/internal/engine/register"
)

// Defaults for a new Editor.
const (
	DefaultTabWidth  = 4
	DefaultTextRows  = 24
	DefaultScrollOff = 0
)

// Option configures an Editor.
type Option func(*Editor)

// WithRegisters shares a register bank between editors.
func WithRegisters(b *register.Bank) Option {
	return func(e *Editor) {
		if b != nil {
			e.regs = b
		}
	}
}

// WithUndoStack sets the history of the document.
func WithUndoStack(s *history.Stack) Option {
	return func(e *Editor) {
		if s != nil {
			e.undo = s
		}
	}
}

// WithTabWidth sets the width of one indent level.
func WithTabWidth(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.tabWidth = n
		}
	}
}

// WithAutoIndent copies indentation to new lines.
func WithAutoIndent(on bool) Option {
	return func(e *Editor) {
		e.autoIndent = on
	}
}

// WithComments sets the source of comment affixes.
func WithComments(c CommentSource) Option {
	return func(e *Editor) {
		if c != nil {
			e.comments = c
		}
	}
}

// WithTextRows sets the viewport height.
func WithTextRows(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.textRows = n
		}
	}
}

// WithScrollOff keeps n lines visible above and below the cursor.
func WithScrollOff(n int) Option {
	return func(e *Editor) {
		if n >= 0 {
			e.scrollOff = n
		}
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(l Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMarks shares a mark store between editors.
func WithMarks(s *mark.Store) Option {
	return func(e *Editor) {
		if s != nil {
			e.marks = s
		}
	}
}

// Reconfigure applies options to a running editor, as after a config
// reload. The cursor is kept in view under the new settings.
func (e *Editor) Reconfigure(opts ...Option) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, opt := range opts {
		opt(e)
	}
	e.clampCursor()
	e.scrollToCursor()
}
