package rope

import "strings"

// Tree shape constants.
const (
	// MaxChildren is the maximum children per internal node.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// Node is a node in the rope B+ tree.
// Leaves (height 0) hold chunks; internal nodes hold children.
type Node struct {
	height  uint8
	summary TextSummary

	children []*Node
	chunks   []Chunk
}

func newLeaf(chunks []Chunk) *Node {
	n := &Node{chunks: chunks}
	for _, c := range chunks {
		n.summary = n.summary.Add(c.summary)
	}
	return n
}

func newInternal(children []*Node) *Node {
	if len(children) == 0 {
		return newLeaf(nil)
	}
	n := &Node{height: children[0].height + 1, children: children}
	for _, c := range children {
		n.summary = n.summary.Add(c.summary)
	}
	return n
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		for _, c := range n.chunks {
			sb.WriteString(c.data)
		}
		return
	}
	for _, c := range n.children {
		c.appendTo(sb)
	}
}

// appendRange writes the runes in [start, end) of this subtree.
func (n *Node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}
	offset := 0
	if n.IsLeaf() {
		for _, c := range n.chunks {
			cEnd := offset + c.summary.Chars
			if cEnd <= start {
				offset = cEnd
				continue
			}
			if offset >= end {
				return
			}
			lo := max(start-offset, 0)
			hi := min(end-offset, c.summary.Chars)
			sb.WriteString(c.data[byteIndex(c.data, lo):byteIndex(c.data, hi)])
			offset = cEnd
		}
		return
	}
	for _, child := range n.children {
		cEnd := offset + child.summary.Chars
		if cEnd <= start {
			offset = cEnd
			continue
		}
		if offset >= end {
			return
		}
		child.appendRange(sb, max(start-offset, 0), min(end-offset, child.summary.Chars))
		offset = cEnd
	}
}

// split divides the subtree at rune offset at.
func (n *Node) split(at int) (*Node, *Node) {
	if at <= 0 {
		return newLeaf(nil), n
	}
	if at >= n.summary.Chars {
		return n, newLeaf(nil)
	}
	if n.IsLeaf() {
		var left, right []Chunk
		offset := 0
		for _, c := range n.chunks {
			switch {
			case offset+c.summary.Chars <= at:
				left = append(left, c)
			case offset >= at:
				right = append(right, c)
			default:
				l, r := c.Split(at - offset)
				if !l.IsEmpty() {
					left = append(left, l)
				}
				if !r.IsEmpty() {
					right = append(right, r)
				}
			}
			offset += c.summary.Chars
		}
		return newLeaf(left), newLeaf(right)
	}

	var left, right []*Node
	offset := 0
	for _, child := range n.children {
		switch {
		case offset+child.summary.Chars <= at:
			left = append(left, child)
		case offset >= at:
			right = append(right, child)
		default:
			l, r := child.split(at - offset)
			if l.summary.Chars > 0 {
				left = append(left, l)
			}
			if r.summary.Chars > 0 {
				right = append(right, r)
			}
		}
		offset += child.summary.Chars
	}
	return buildFromChildren(left), buildFromChildren(right)
}

// buildFromChildren builds a balanced parent level over nodes of mixed
// height by wrapping shorter nodes until heights match.
func buildFromChildren(children []*Node) *Node {
	switch len(children) {
	case 0:
		return newLeaf(nil)
	case 1:
		return children[0]
	}
	var height uint8
	for _, c := range children {
		height = max(height, c.height)
	}
	level := make([]*Node, len(children))
	for i, c := range children {
		for c.height < height {
			c = newInternal([]*Node{c})
		}
		level[i] = c
	}
	for len(level) > 1 {
		var parents []*Node
		for i := 0; i < len(level); i += MaxChildren {
			end := min(i+MaxChildren, len(level))
			group := make([]*Node, end-i)
			copy(group, level[i:end])
			parents = append(parents, newInternal(group))
		}
		level = parents
	}
	return level[0]
}

// concat joins two subtrees, wrapping the shorter side so both sit at the
// same height before their children are merged.
func concat(left, right *Node) *Node {
	if left.summary.Bytes == 0 {
		return right
	}
	if right.summary.Bytes == 0 {
		return left
	}
	if left.IsLeaf() && right.IsLeaf() {
		return concatLeaves(left, right)
	}
	for left.height < right.height {
		left = newInternal([]*Node{left})
	}
	for right.height < left.height {
		right = newInternal([]*Node{right})
	}
	children := make([]*Node, 0, len(left.children)+len(right.children))
	children = append(children, left.children...)
	children = append(children, right.children...)
	if len(children) <= MaxChildren {
		return newInternal(children)
	}
	mid := len(children) / 2
	return newInternal([]*Node{
		newInternal(append([]*Node(nil), children[:mid]...)),
		newInternal(append([]*Node(nil), children[mid:]...)),
	})
}

// concatLeaves joins two leaves, merging the touching chunks when they fit.
func concatLeaves(left, right *Node) *Node {
	chunks := make([]Chunk, 0, len(left.chunks)+len(right.chunks))
	chunks = append(chunks, left.chunks...)
	first := 0
	if last := len(chunks) - 1; last >= 0 && len(right.chunks) > 0 &&
		len(chunks[last].data)+len(right.chunks[0].data) <= MaxChunkSize {
		chunks[last] = NewChunk(chunks[last].data + right.chunks[0].data)
		first = 1
	}
	chunks = append(chunks, right.chunks[first:]...)
	if len(chunks) <= MaxChunksPerLeaf {
		return newLeaf(chunks)
	}
	mid := len(chunks) / 2
	return newInternal([]*Node{
		newLeaf(append([]Chunk(nil), chunks[:mid]...)),
		newLeaf(append([]Chunk(nil), chunks[mid:]...)),
	})
}

// lineStart returns the rune offset just past the n-th newline (n >= 1)
// in the subtree, or -1 if there are fewer newlines.
func (n *Node) lineStart(line int) int {
	if line <= 0 {
		return 0
	}
	if line > n.summary.Lines {
		return -1
	}
	offset := 0
	if n.IsLeaf() {
		for _, c := range n.chunks {
			if line <= c.summary.Lines {
				return offset + newlineChar(c.data, line)
			}
			line -= c.summary.Lines
			offset += c.summary.Chars
		}
		return -1
	}
	for _, child := range n.children {
		if line <= child.summary.Lines {
			return offset + child.lineStart(line)
		}
		line -= child.summary.Lines
		offset += child.summary.Chars
	}
	return -1
}

// linesBefore counts newlines among the first at runes of the subtree.
func (n *Node) linesBefore(at int) int {
	if at >= n.summary.Chars {
		return n.summary.Lines
	}
	lines := 0
	if n.IsLeaf() {
		for _, c := range n.chunks {
			if at <= c.summary.Chars {
				return lines + countLines(c.data, at)
			}
			at -= c.summary.Chars
			lines += c.summary.Lines
		}
		return lines
	}
	for _, child := range n.children {
		if at <= child.summary.Chars {
			return lines + child.linesBefore(at)
		}
		at -= child.summary.Chars
		lines += child.summary.Lines
	}
	return lines
}

// runeAt returns the rune at offset at, or 0 when at is out of range.
func (n *Node) runeAt(at int) rune {
	if at < 0 || at >= n.summary.Chars {
		return 0
	}
	for !n.IsLeaf() {
		next := n
		for _, child := range n.children {
			if at < child.summary.Chars {
				next = child
				break
			}
			at -= child.summary.Chars
		}
		if next == n {
			return 0
		}
		n = next
	}
	for _, c := range n.chunks {
		if at < c.summary.Chars {
			for _, r := range c.data[byteIndex(c.data, at):] {
				return r
			}
		}
		at -= c.summary.Chars
	}
	return 0
}
