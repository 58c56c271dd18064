package editor

import (
	"strings"

	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/motion"
	"github.com/dshills/modalcore/internal/engine/textobj"
	"github.com/dshills/modalcore/internal/syntax"
)

// ToggleCommentLines comments count lines from the cursor, or uncomments
// them when every non-blank line already carries the marker.
func (e *Editor) ToggleCommentLines(count int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	first := e.cursor.Line
	e.begin()
	e.toggleComment(first, e.clampLine(first+max(count, 1)-1))
	e.end()
}

// ToggleCommentMotion toggles comments on the lines a motion spans.
func (e *Editor) ToggleCommentMotion(m motion.Motion, count int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	sp, ok := e.motionSpan(m, count, false)
	if !ok {
		return false
	}
	first, last := sp.Lines()
	e.begin()
	e.toggleComment(first, last)
	e.end()
	e.cursor = buffer.Pos(first, motion.FirstNonBlankCol(e.doc, first))
	return true
}

// ToggleCommentTextObject toggles comments on the lines a text object spans.
func (e *Editor) ToggleCommentTextObject(obj textobj.Object) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	sp, ok := e.objectSpan(obj)
	if !ok {
		e.statusf("No text object %s found", obj)
		return false
	}
	first, last := sp.Lines()
	e.begin()
	e.toggleComment(first, last)
	e.end()
	return true
}

func (e *Editor) toggleComment(first, last int) {
	c := e.comments.CommentFor(e.doc.Path())
	if c.IsZero() {
		c = syntax.DefaultComment
	}
	uncomment := true
	for l := first; l <= last; l++ {
		text := strings.TrimLeft(e.lineText(l), " \t")
		if text != "" && !strings.HasPrefix(text, c.Marker()) {
			uncomment = false
			break
		}
	}

	for l := first; l <= last; l++ {
		line := e.lineText(l)
		indent := leadingSpace(line)
		body := line[len(indent):]
		if strings.TrimSpace(body) == "" {
			continue
		}
		if uncomment {
			body = stripComment(body, c)
		} else {
			body = c.Prefix + body + c.Suffix
		}
		e.rewriteLine(l, indent+body)
	}
	e.clampCursor()
}

// stripComment removes the comment affixes from a line body that starts
// with the marker.
func stripComment(body string, c syntax.Comment) string {
	body = strings.TrimPrefix(body, c.Marker())
	body = strings.TrimPrefix(body, " ")
	if end := c.EndMarker(); end != "" {
		trimmed := strings.TrimRight(body, " \t")
		if strings.HasSuffix(trimmed, end) {
			body = strings.TrimRight(strings.TrimSuffix(trimmed, end), " \t")
		}
	}
	return body
}
