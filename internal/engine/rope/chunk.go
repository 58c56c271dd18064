package rope

// Chunk size bounds in bytes.
const (
	// MaxChunkSize is the largest chunk built from a single string.
	MaxChunkSize = 256

	// TargetChunkSize is the preferred split point when building.
	TargetChunkSize = 192
)

// Chunk is an immutable piece of text stored in a leaf.
type Chunk struct {
	data    string
	summary TextSummary
}

// NewChunk creates a chunk and computes its metrics.
func NewChunk(s string) Chunk {
	return Chunk{data: s, summary: ComputeSummary(s)}
}

// String returns the chunk's text.
func (c Chunk) String() string {
	return c.data
}

// Summary returns the chunk's metrics.
func (c Chunk) Summary() TextSummary {
	return c.summary
}

// Chars returns the rune count of the chunk.
func (c Chunk) Chars() int {
	return c.summary.Chars
}

// IsEmpty reports whether the chunk holds no text.
func (c Chunk) IsEmpty() bool {
	return len(c.data) == 0
}

// Split splits the chunk at a rune offset.
func (c Chunk) Split(at int) (Chunk, Chunk) {
	if at <= 0 {
		return Chunk{}, c
	}
	if at >= c.summary.Chars {
		return c, Chunk{}
	}
	i := byteIndex(c.data, at)
	return NewChunk(c.data[:i]), NewChunk(c.data[i:])
}

// splitIntoChunks cuts s into chunks no larger than MaxChunkSize bytes,
// preferring to cut just after a newline and never inside a rune.
func splitIntoChunks(s string) []Chunk {
	if len(s) == 0 {
		return nil
	}
	var chunks []Chunk
	for len(s) > MaxChunkSize {
		cut := splitPoint(s, TargetChunkSize)
		chunks = append(chunks, NewChunk(s[:cut]))
		s = s[cut:]
	}
	return append(chunks, NewChunk(s))
}

// splitPoint picks a byte index near target that starts a rune.
func splitPoint(s string, target int) int {
	for i := target; i < MaxChunkSize && i < len(s); i++ {
		if s[i-1] == '\n' {
			return i
		}
	}
	i := target
	for i > 0 && !isUTF8Start(s[i]) {
		i--
	}
	if i == 0 {
		i = target
		for i < len(s) && !isUTF8Start(s[i]) {
			i++
		}
	}
	return i
}

// isUTF8Start reports whether b begins a UTF-8 sequence.
func isUTF8Start(b byte) bool {
	return b&0xC0 != 0x80
}
