package register

import (
	"sort"
	"sync"
	"unicode"
)

// Special register names.
const (
	Unnamed     = '"'
	SmallDelete = '-'
	BlackHole   = '_'
	ClipboardP  = '+'
	ClipboardS  = '*'
	LastYank    = '0'
	Search      = '/'
)

// NumberedCount is the number of numbered delete registers.
const NumberedCount = 9

// IsValidName reports whether r may follow '"' in Normal mode.
func IsValidName(r rune) bool {
	if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
		return true
	}
	switch r {
	case Unnamed, SmallDelete, ClipboardP, ClipboardS, BlackHole, Search:
		return true
	}
	return false
}

// IsClipboard reports whether the name is a clipboard register.
func IsClipboard(name rune) bool {
	return name == ClipboardP || name == ClipboardS
}

// Option configures a Bank.
type Option func(*Bank)

// WithClipboard sets the clipboard used by '+' and '*'.
func WithClipboard(c Clipboard) Option {
	return func(b *Bank) {
		if c != nil {
			b.clipboard = c
		}
	}
}

// Bank holds all registers. It is safe for concurrent use.
type Bank struct {
	mu          sync.RWMutex
	named       map[rune]Content
	unnamed     *Content
	smallDelete *Content
	numbered    [NumberedCount]*Content
	clipboard   Clipboard
}

// NewBank creates an empty bank. Without WithClipboard it uses the system
// clipboard.
func NewBank(opts ...Option) *Bank {
	b := &Bank{
		named:     make(map[rune]Content),
		clipboard: SystemClipboard{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Yank stores yanked content. The unnamed register always receives it, and
// a named register does too when given.
func (b *Bank) Yank(name rune, c Content) {
	if name == BlackHole {
		return
	}
	if IsClipboard(name) {
		_ = b.clipboard.WriteAll(c.Text)
		b.mu.Lock()
		b.unnamed = &c
		b.mu.Unlock()
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.unnamed = &c
	if name != 0 && name != Unnamed {
		b.setLocked(name, c)
	}
}

// Delete stores deleted content. Without an explicit name, small deletes
// go to '-' and larger ones shift the numbered registers.
func (b *Bank) Delete(name rune, c Content, small bool) {
	if name == BlackHole {
		return
	}
	if IsClipboard(name) {
		_ = b.clipboard.WriteAll(c.Text)
		b.mu.Lock()
		b.unnamed = &c
		b.mu.Unlock()
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.unnamed = &c

	switch {
	case name != 0 && name != Unnamed:
		b.setLocked(name, c)
	case small:
		b.smallDelete = &c
	default:
		copy(b.numbered[1:], b.numbered[:NumberedCount-1])
		b.numbered[0] = &c
	}
}

// Set writes a register directly.
func (b *Bank) Set(name rune, c Content) {
	if name == BlackHole {
		return
	}
	if IsClipboard(name) {
		_ = b.clipboard.WriteAll(c.Text)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setLocked(name, c)
}

func (b *Bank) setLocked(name rune, c Content) {
	switch {
	case name == 0 || name == Unnamed:
		b.unnamed = &c
	case name == SmallDelete:
		b.smallDelete = &c
	case name >= 'a' && name <= 'z':
		b.named[name] = c
	case name >= 'A' && name <= 'Z':
		lower := unicode.ToLower(name)
		if existing, ok := b.named[lower]; ok {
			b.named[lower] = appendContent(existing, c)
		} else {
			b.named[lower] = c
		}
	default:
		b.unnamed = &c
	}
}

// Get reads a register. Clipboard registers read through the clipboard.
func (b *Bank) Get(name rune) (Content, bool) {
	if IsClipboard(name) {
		text, err := b.clipboard.ReadAll()
		if err != nil || text == "" {
			return Content{}, false
		}
		return fromClipboard(text), true
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	var c *Content
	switch {
	case name == 0 || name == Unnamed || name == LastYank:
		c = b.unnamed
	case name == SmallDelete:
		c = b.smallDelete
	case name >= 'a' && name <= 'z', name >= 'A' && name <= 'Z':
		if v, ok := b.named[unicode.ToLower(name)]; ok {
			return v, true
		}
	case name >= '1' && name <= '9':
		c = b.numbered[name-'1']
	}
	if c == nil {
		return Content{}, false
	}
	return *c, true
}

// Numbered returns numbered register i, 1 through 9.
func (b *Bank) Numbered(i int) (Content, bool) {
	if i < 1 || i > NumberedCount {
		return Content{}, false
	}
	return b.Get(rune('0' + i))
}

// Names returns the names of the non-empty registers, sorted.
func (b *Bank) Names() []rune {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var names []rune
	if b.unnamed != nil {
		names = append(names, Unnamed)
	}
	if b.smallDelete != nil {
		names = append(names, SmallDelete)
	}
	for i, c := range b.numbered {
		if c != nil {
			names = append(names, rune('1'+i))
		}
	}
	for r := range b.named {
		names = append(names, r)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Clear empties every register. The clipboard is untouched.
func (b *Bank) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.named = make(map[rune]Content)
	b.unnamed = nil
	b.smallDelete = nil
	b.numbered = [NumberedCount]*Content{}
}
