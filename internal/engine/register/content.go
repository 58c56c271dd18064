package register

import "strings"

// Kind tags register content as inline or whole lines.
type Kind uint8

const (
	// Chars is charwise content, pasted inline.
	Chars Kind = iota

	// Lines is linewise content, pasted on its own lines.
	Lines
)

// String returns the kind name.
func (k Kind) String() string {
	if k == Lines {
		return "lines"
	}
	return "chars"
}

// Content is the text held by a register.
type Content struct {
	Kind Kind
	Text string
}

// CharsOf returns charwise content.
func CharsOf(s string) Content {
	return Content{Kind: Chars, Text: s}
}

// LinesOf returns linewise content.
func LinesOf(s string) Content {
	return Content{Kind: Lines, Text: s}
}

// IsLinewise reports whether the content is linewise.
func (c Content) IsLinewise() bool {
	return c.Kind == Lines
}

// appendContent joins existing and added content for uppercase register
// writes. A linewise side gets a newline separator when the existing text
// does not already end in one. The result is linewise if either side is.
func appendContent(existing, added Content) Content {
	text := existing.Text
	if (existing.IsLinewise() || added.IsLinewise()) && text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	kind := Chars
	if existing.IsLinewise() || added.IsLinewise() {
		kind = Lines
	}
	return Content{Kind: kind, Text: text + added.Text}
}
