package editor

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/modalcore/internal/engine/motion"
	"github.com/dshills/modalcore/internal/input/vim"
)

var (
	lowerCaser = cases.Lower(language.Und)
	upperCaser = cases.Upper(language.Und)
)

// convertCase applies a case operator to text.
func convertCase(op vim.Operator, text string) string {
	switch op {
	case vim.OpLowercase:
		return lowerCaser.String(text)
	case vim.OpUppercase:
		return upperCaser.String(text)
	case vim.OpToggleCase:
		var b strings.Builder
		for _, r := range text {
			switch {
			case unicode.IsUpper(r):
				b.WriteString(lowerCaser.String(string(r)))
			case unicode.IsLower(r):
				b.WriteString(upperCaser.String(string(r)))
			default:
				b.WriteRune(r)
			}
		}
		return b.String()
	}
	return text
}

// caseSpan converts a span in place. Linewise spans are converted line by
// line, leaving the cursor on the first line's first non-blank.
func (e *Editor) caseSpan(op vim.Operator, sp Span) {
	if sp.Linewise {
		for l := sp.Start.Line; l <= sp.End.Line; l++ {
			line := e.lineText(l)
			e.rewriteLine(l, convertCase(op, line))
		}
		e.cursor.Line = sp.Start.Line
		e.cursor.Col = motion.FirstNonBlankCol(e.doc, sp.Start.Line)
		e.clampCursor()
		return
	}
	old := e.doc.TextRange(sp.Start.Line, sp.Start.Col, sp.End.Line, sp.End.Col)
	e.replaceText(sp.Start, old, convertCase(op, old))
	e.cursor = sp.Start
	e.clampCursor()
	e.wantCol = e.cursor.Col
}
