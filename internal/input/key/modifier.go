package key

import "strings"

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether m contains every modifier in mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod && mod != ModNone
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier { return m | mod }

// Without returns m with mod removed.
func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// String returns the vim prefix form, e.g. "C-A-".
func (m Modifier) String() string {
	var b strings.Builder
	if m.Has(ModCtrl) {
		b.WriteString("C-")
	}
	if m.Has(ModAlt) {
		b.WriteString("A-")
	}
	if m.Has(ModShift) {
		b.WriteString("S-")
	}
	if m.Has(ModMeta) {
		b.WriteString("D-")
	}
	return b.String()
}

func modifierFromPrefix(p string) (Modifier, bool) {
	switch strings.ToLower(p) {
	case "c", "ctrl":
		return ModCtrl, true
	case "a", "m", "alt":
		return ModAlt, true
	case "s", "shift":
		return ModShift, true
	case "d", "cmd", "meta":
		return ModMeta, true
	}
	return ModNone, false
}
