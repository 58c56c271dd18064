package rope

import "unicode/utf8"

// Point is a line/column position. Column counts characters.
type Point struct {
	Line   int
	Column int
}

// TextSummary holds aggregated metrics for a span of text.
type TextSummary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Chars is the number of runes.
	Chars int

	// Lines is the number of newline characters.
	Lines int
}

// Add combines two summaries.
func (s TextSummary) Add(other TextSummary) TextSummary {
	return TextSummary{
		Bytes: s.Bytes + other.Bytes,
		Chars: s.Chars + other.Chars,
		Lines: s.Lines + other.Lines,
	}
}

// ComputeSummary calculates metrics for a string.
func ComputeSummary(s string) TextSummary {
	sum := TextSummary{Bytes: len(s)}
	for _, r := range s {
		sum.Chars++
		if r == '\n' {
			sum.Lines++
		}
	}
	return sum
}

// byteIndex returns the byte index of the n-th rune of s.
// n past the end yields len(s).
func byteIndex(s string, n int) int {
	if n <= 0 {
		return 0
	}
	i := 0
	for n > 0 && i < len(s) {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n--
	}
	return i
}

// newlineChar returns the rune offset just past the n-th newline (1-indexed)
// in s, or -1 if s has fewer newlines.
func newlineChar(s string, n int) int {
	if n <= 0 {
		return 0
	}
	chars := 0
	for _, r := range s {
		chars++
		if r == '\n' {
			n--
			if n == 0 {
				return chars
			}
		}
	}
	return -1
}

// countLines returns the number of newlines among the first n runes of s.
func countLines(s string, n int) int {
	lines := 0
	for _, r := range s {
		if n == 0 {
			break
		}
		if r == '\n' {
			lines++
		}
		n--
	}
	return lines
}
