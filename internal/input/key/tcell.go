package key

import "github.com/gdamore/tcell/v2"

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

// FromTcell converts a terminal key event. Terminals report Ctrl-letters
// either as dedicated control keys or as a rune with ModCtrl; both map to
// Ctrl(r). Backspace, Tab and Enter keep their special meaning even though
// they share codes with Ctrl-h, Ctrl-i and Ctrl-m.
func FromTcell(ev *tcell.EventKey) Event {
	mods := fromTcellMods(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if mods.Has(ModCtrl) {
			return Ctrl(r).withMod(mods.Without(ModShift))
		}
		return Event{Key: KeyRune, Rune: r, Mod: mods.Without(ModShift)}
	}
	if k, ok := tcellKeys[ev.Key()]; ok {
		return Event{Key: k, Mod: mods}
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		r := 'a' + rune(ev.Key()-tcell.KeyCtrlA)
		return Ctrl(r).withMod(mods.Without(ModShift))
	}
	return Event{Key: KeyNone, Mod: mods}
}

func fromTcellMods(m tcell.ModMask) Modifier {
	var out Modifier
	if m&tcell.ModShift != 0 {
		out = out.With(ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		out = out.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		out = out.With(ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		out = out.With(ModMeta)
	}
	return out
}
