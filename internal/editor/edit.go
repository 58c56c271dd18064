package editor

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/history"
)

var dmp = diffmatchpatch.New()

// begin opens an undo group unless a batch already holds one.
func (e *Editor) begin() {
	if e.batch == 0 {
		e.undo.Begin(e.cursor)
	}
}

func (e *Editor) end() {
	if e.batch == 0 {
		e.undo.End(e.cursor)
	}
}

// remove deletes [start, end) and returns the removed text.
func (e *Editor) remove(start, end buffer.Position) string {
	text := e.doc.TextRange(start.Line, start.Col, end.Line, end.Col)
	if text == "" {
		return ""
	}
	e.doc.ApplyChange(start.Line, start.Col, text, "")
	e.undo.Record(history.Delete(start.Line, start.Col, text))
	return text
}

// insertText inserts s at p and returns the position after it.
func (e *Editor) insertText(p buffer.Position, s string) buffer.Position {
	if s == "" {
		return p
	}
	e.doc.ApplyChange(p.Line, p.Col, "", s)
	e.undo.Record(history.Insert(p.Line, p.Col, s))
	return advance(p, s)
}

// replaceText rewrites old, which starts at p, to repl. Only the span that
// differs is changed and recorded.
func (e *Editor) replaceText(p buffer.Position, old, repl string) {
	if old == repl {
		return
	}
	o, n := []rune(old), []rune(repl)
	pre := dmp.DiffCommonPrefix(old, repl)
	suf := dmp.DiffCommonSuffix(old, repl)
	suf = min(suf, len(o)-pre, len(n)-pre)

	at := advance(p, string(o[:pre]))
	c := history.Change{
		Line: at.Line,
		Col:  at.Col,
		Old:  string(o[pre : len(o)-suf]),
		New:  string(n[pre : len(n)-suf]),
	}
	c.Apply(e.doc)
	e.undo.Record(c)
}

// rewriteLine replaces the text of line l.
func (e *Editor) rewriteLine(l int, text string) {
	e.replaceText(buffer.Pos(l, 0), e.lineText(l), text)
}

// advance returns the position after s when s starts at p.
func advance(p buffer.Position, s string) buffer.Position {
	for _, r := range s {
		if r == '\n' {
			p.Line++
			p.Col = 0
			continue
		}
		p.Col++
	}
	return p
}
