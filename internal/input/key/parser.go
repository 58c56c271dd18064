package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a single key in vim notation.
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, ErrEmptySpec
	}
	events, err := ParseSequence(spec)
	if err != nil {
		return Event{}, err
	}
	if len(events) != 1 {
		return Event{}, fmt.Errorf("%w: %q is %d keys", ErrInvalidSpec, spec, len(events))
	}
	return events[0], nil
}

// MustParse is Parse that panics. It is meant for literals in tests and
// default tables.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return e
}

// ParseSequence parses a run of keys such as "d2w", "cs\"'" or "ihi<Esc>".
// A '<' that does not start a recognizable <...> group is taken literally.
func ParseSequence(spec string) ([]Event, error) {
	var out []Event
	for len(spec) > 0 {
		if spec[0] == '<' {
			end := strings.IndexByte(spec, '>')
			if end > 1 {
				if e, err := parseBracketed(spec[1:end]); err == nil {
					out = append(out, e)
					spec = spec[end+1:]
					continue
				}
			}
		}
		r, size := utf8.DecodeRuneInString(spec)
		if r == utf8.RuneError && size <= 1 {
			return nil, fmt.Errorf("%w: invalid utf-8", ErrInvalidSpec)
		}
		out = append(out, Char(r))
		spec = spec[size:]
	}
	return out, nil
}

func parseBracketed(inner string) (Event, error) {
	parts := strings.Split(inner, "-")
	name := parts[len(parts)-1]
	if name == "" && len(parts) >= 2 {
		// <C-->
		name = "-"
		parts = parts[:len(parts)-1]
	}
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		m, ok := modifierFromPrefix(p)
		if !ok {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(m)
	}

	if k := FromName(name); k != KeyNone {
		return Event{Key: k, Mod: mods}, nil
	}
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return Event{Key: KeyRune, Rune: r, Mod: mods}, nil
	}
	if utf8.RuneCountInString(name) == 1 && mods != ModNone {
		r, _ := utf8.DecodeRuneInString(name)
		if mods.Has(ModCtrl) {
			return Ctrl(r).withMod(mods), nil
		}
		return Event{Key: KeyRune, Rune: r, Mod: mods}, nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
}

func (e Event) withMod(m Modifier) Event {
	e.Mod = e.Mod.With(m)
	return e
}
