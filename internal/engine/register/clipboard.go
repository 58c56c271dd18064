package register

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned by NoClipboard.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard is the system clipboard collaborator. Calls may be slow and may
// fail; the bank treats failures as empty content.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the OS clipboard through xclip/xsel/wl-clipboard,
// pbcopy or the Windows API.
type SystemClipboard struct{}

// ReadAll returns the clipboard text.
func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnavailable
	}
	return clipboard.ReadAll()
}

// WriteAll replaces the clipboard text.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// NoClipboard is a clipboard that is never available.
type NoClipboard struct{}

// ReadAll always fails.
func (NoClipboard) ReadAll() (string, error) { return "", ErrClipboardUnavailable }

// WriteAll always fails.
func (NoClipboard) WriteAll(string) error { return ErrClipboardUnavailable }

// fromClipboard tags clipboard text: a trailing newline makes it linewise.
func fromClipboard(text string) Content {
	if strings.HasSuffix(text, "\n") {
		return LinesOf(text)
	}
	return CharsOf(text)
}
