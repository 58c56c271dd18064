package key

import "strings"

// Event is a single key press.
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// Char returns a plain character event.
func Char(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// Ctrl returns a Ctrl-modified character event. Letters are lowercased.
func Ctrl(r rune) Event {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return Event{Key: KeyRune, Rune: r, Mod: ModCtrl}
}

// Special returns an event for a non-character key.
func Special(k Key) Event {
	return Event{Key: k}
}

// Esc is the Escape key.
var Esc = Special(KeyEscape)

// IsRune reports whether e carries a character.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Plain returns the character of an unmodified character event. Shift is
// ignored because it is already folded into the rune.
func (e Event) Plain() (rune, bool) {
	if !e.IsRune() || e.Mod.Without(ModShift) != ModNone {
		return 0, false
	}
	return e.Rune, true
}

// IsCtrl reports whether e is Ctrl plus the given character.
func (e Event) IsCtrl(r rune) bool {
	return e.IsRune() && e.Mod.Without(ModShift) == ModCtrl && e.Rune == r
}

// Is reports whether e is the unmodified special key k.
func (e Event) Is(k Key) bool {
	return e.Key == k && e.Mod == ModNone
}

// String renders e in vim notation: "a", "<Space>", "<lt>", "<C-r>", "<Esc>".
func (e Event) String() string {
	mods := e.Mod
	if e.IsRune() {
		mods = mods.Without(ModShift)
		name, special := runeName(e.Rune)
		if mods == ModNone && !special {
			return name
		}
		return "<" + mods.String() + name + ">"
	}
	return "<" + mods.String() + e.Key.String() + ">"
}

func runeName(r rune) (string, bool) {
	switch r {
	case ' ':
		return "Space", true
	case '<':
		return "lt", true
	case '\\':
		return "Bslash", true
	case '|':
		return "Bar", true
	}
	return string(r), false
}

var runeAliases = map[string]rune{
	"space":  ' ',
	"lt":     '<',
	"gt":     '>',
	"bslash": '\\',
	"bar":    '|',
}

// FormatSequence renders events back to back in vim notation.
func FormatSequence(events []Event) string {
	var b strings.Builder
	for _, e := range events {
		b.WriteString(e.String())
	}
	return b.String()
}
