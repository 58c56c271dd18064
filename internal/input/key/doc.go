// Package key defines the key events fed to the modal input state machine.
//
// An Event is either a character (Key == KeyRune, Rune set) or a special key
// such as Escape or an arrow. Modifiers are kept as a bit set. Shift is never
// reported for character events; the rune itself carries the case.
//
// Events can be written in vim notation ("a", "<Esc>", "<C-r>", "<CR>") and
// parsed back with Parse and ParseSequence, which is how macros are persisted
// and how tests drive the state machine.
package key
