package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithPath sets the file path associated with the buffer.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
	}
}

// WithLineEnding sets the line ending written by Save.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// WithID overrides the generated buffer identifier.
func WithID(id string) Option {
	return func(b *Buffer) {
		if id != "" {
			b.id = id
		}
	}
}
