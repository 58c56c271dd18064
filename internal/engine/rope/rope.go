package rope

import "strings"

// Rope is an immutable rope of text addressed by character offset.
// The zero value is an empty rope.
type Rope struct {
	root *Node
}

// New returns an empty rope.
func New() Rope {
	return Rope{root: newLeaf(nil)}
}

// FromString builds a rope holding s.
func FromString(s string) Rope {
	chunks := splitIntoChunks(s)
	if len(chunks) == 0 {
		return New()
	}
	var leaves []*Node
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := min(i+MaxChunksPerLeaf, len(chunks))
		leaves = append(leaves, newLeaf(append([]Chunk(nil), chunks[i:end]...)))
	}
	return Rope{root: buildFromChildren(leaves)}
}

// Len returns the number of characters.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Chars
}

// ByteLen returns the UTF-8 length in bytes.
func (r Rope) ByteLen() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Bytes
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.summary.Lines + 1
}

// IsEmpty reports whether the rope holds no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// Summary returns the metrics for the whole rope.
func (r Rope) Summary() TextSummary {
	if r.root == nil {
		return TextSummary{}
	}
	return r.root.summary
}

// String returns the full text.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.root.summary.Bytes)
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the character range [start, end).
func (r Rope) Slice(start, end int) string {
	start = max(start, 0)
	end = min(end, r.Len())
	if start >= end {
		return ""
	}
	var sb strings.Builder
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// CharAt returns the rune at offset and whether the offset was in range.
func (r Rope) CharAt(offset int) (rune, bool) {
	if offset < 0 || offset >= r.Len() {
		return 0, false
	}
	return r.root.runeAt(offset), true
}

// Insert inserts text at a character offset, clamped to [0, Len()].
func (r Rope) Insert(offset int, text string) Rope {
	if text == "" {
		return r
	}
	if r.Len() == 0 {
		return FromString(text)
	}
	offset = min(max(offset, 0), r.Len())
	left, right := r.Split(offset)
	return left.Concat(FromString(text)).Concat(right)
}

// Delete removes the character range [start, end), clamped to the rope.
func (r Rope) Delete(start, end int) Rope {
	start = max(start, 0)
	end = min(end, r.Len())
	if start >= end {
		return r
	}
	left, rest := r.Split(start)
	_, right := rest.Split(end - start)
	return left.Concat(right)
}

// Split splits the rope at a character offset.
func (r Rope) Split(offset int) (Rope, Rope) {
	if r.root == nil || offset <= 0 {
		return New(), r
	}
	if offset >= r.Len() {
		return r, New()
	}
	l, rt := r.root.split(offset)
	return Rope{root: l}, Rope{root: rt}
}

// Concat appends other to r.
func (r Rope) Concat(other Rope) Rope {
	if r.Len() == 0 {
		return other
	}
	if other.Len() == 0 {
		return r
	}
	return Rope{root: concat(r.root, other.root)}
}

// LineStart returns the character offset of the first character of line.
// Lines past the end map to Len().
func (r Rope) LineStart(line int) int {
	if r.root == nil || line <= 0 {
		return 0
	}
	if line >= r.LineCount() {
		return r.Len()
	}
	return r.root.lineStart(line)
}

// LineEnd returns the character offset of the newline ending line, or Len()
// for the last line.
func (r Rope) LineEnd(line int) int {
	if line+1 >= r.LineCount() {
		return r.Len()
	}
	return r.LineStart(line+1) - 1
}

// LineLen returns the character length of line, excluding its newline.
// Out-of-range lines have length 0.
func (r Rope) LineLen(line int) int {
	if line < 0 || line >= r.LineCount() {
		return 0
	}
	return r.LineEnd(line) - r.LineStart(line)
}

// LineText returns the text of line without its newline.
func (r Rope) LineText(line int) string {
	if line < 0 || line >= r.LineCount() {
		return ""
	}
	return r.Slice(r.LineStart(line), r.LineEnd(line))
}

// OffsetToPoint converts a character offset to a line/column point.
func (r Rope) OffsetToPoint(offset int) Point {
	offset = min(max(offset, 0), r.Len())
	if r.root == nil {
		return Point{}
	}
	line := r.root.linesBefore(offset)
	return Point{Line: line, Column: offset - r.LineStart(line)}
}

// PointToOffset converts a point to a character offset. Columns past the end
// of the line clamp to the line end.
func (r Rope) PointToOffset(p Point) int {
	if p.Line < 0 {
		return 0
	}
	if p.Line >= r.LineCount() {
		return r.Len()
	}
	start := r.LineStart(p.Line)
	return start + min(max(p.Column, 0), r.LineEnd(p.Line)-start)
}

// Height returns the height of the tree.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}
