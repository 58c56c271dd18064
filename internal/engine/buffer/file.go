package buffer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// LineEnding specifies the line ending style used when writing to disk.
// Buffer content is always held with LF line endings.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	if le == LineEndingCRLF {
		return "crlf"
	}
	return "lf"
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	if le == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// DetectLineEnding returns CRLF when the text has more CRLF than bare LF
// line endings, LF otherwise.
func DetectLineEnding(text string) LineEnding {
	crlf := strings.Count(text, "\r\n")
	lf := strings.Count(text, "\n") - crlf
	if crlf > 0 && crlf >= lf {
		return LineEndingCRLF
	}
	return LineEndingLF
}

func normalizeLineEndings(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Load reads a file into a new buffer. A path that does not exist yields an
// empty buffer bound to that path, so it can be created on save.
func Load(path string, opts ...Option) (*Buffer, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NewBuffer(append(opts, WithPath(path))...), nil
	case err != nil:
		return nil, fmt.Errorf("stat %s: %w", path, err)
	case info.IsDir():
		return nil, fmt.Errorf("load %s: %w", path, ErrIsDirectory)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return NewBufferFromString(string(data), append(opts, WithPath(path))...), nil
}

// Save writes the buffer to its path and clears the dirty flag.
func (b *Buffer) Save() error {
	path := b.Path()
	if path == "" {
		return ErrNoPath
	}
	return b.SaveAs(path)
}

// SaveAs writes the buffer to path, binds the buffer to it and clears the
// dirty flag. An existing file keeps its permissions.
func (b *Buffer) SaveAs(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	text := b.rope.String()
	if b.lineEnding == LineEndingCRLF {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}

	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	b.path = path
	b.dirty = false
	return nil
}
