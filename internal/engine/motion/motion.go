package motion

import "fmt"

// Kind identifies a motion.
type Kind uint8

const (
	None Kind = iota

	// Character motions
	Left
	Right
	Up
	Down

	// Word motions
	WordForward
	WordBackward
	WordEnd
	BigWordForward
	BigWordBackward
	BigWordEnd

	// Line motions
	LineStart
	FirstNonBlank
	LineEnd

	// File motions
	FileStart
	FileEnd
	GotoLine

	// Screen motions
	HalfPageDown
	HalfPageUp
	PageDown
	PageUp
	ScreenTop
	ScreenMiddle
	ScreenBottom

	// Find motions, single line
	FindForward
	FindBackward
	TillForward
	TillBackward

	// Block motions
	ParagraphForward
	ParagraphBackward
	MatchingBracket
)

var kindNames = [...]string{
	None:              "None",
	Left:              "Left",
	Right:             "Right",
	Up:                "Up",
	Down:              "Down",
	WordForward:       "WordForward",
	WordBackward:      "WordBackward",
	WordEnd:           "WordEnd",
	BigWordForward:    "BigWordForward",
	BigWordBackward:   "BigWordBackward",
	BigWordEnd:        "BigWordEnd",
	LineStart:         "LineStart",
	FirstNonBlank:     "FirstNonBlank",
	LineEnd:           "LineEnd",
	FileStart:         "FileStart",
	FileEnd:           "FileEnd",
	GotoLine:          "GotoLine",
	HalfPageDown:      "HalfPageDown",
	HalfPageUp:        "HalfPageUp",
	PageDown:          "PageDown",
	PageUp:            "PageUp",
	ScreenTop:         "ScreenTop",
	ScreenMiddle:      "ScreenMiddle",
	ScreenBottom:      "ScreenBottom",
	FindForward:       "FindForward",
	FindBackward:      "FindBackward",
	TillForward:       "TillForward",
	TillBackward:      "TillBackward",
	ParagraphForward:  "ParagraphForward",
	ParagraphBackward: "ParagraphBackward",
	MatchingBracket:   "MatchingBracket",
}

// String returns the motion kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Inclusive reports whether an operator range ending at this motion's target
// includes the target character. It only applies when the motion moved
// forward; backward motions are always exclusive.
func (k Kind) Inclusive() bool {
	switch k {
	case WordEnd, BigWordEnd, LineEnd,
		FindForward, FindBackward, TillForward, TillBackward,
		MatchingBracket:
		return true
	}
	return false
}

// Linewise reports whether an operator over this motion acts on whole lines.
func (k Kind) Linewise() bool {
	switch k {
	case Up, Down, FileStart, FileEnd, GotoLine,
		HalfPageDown, HalfPageUp, PageDown, PageUp,
		ScreenTop, ScreenMiddle, ScreenBottom:
		return true
	}
	return false
}

// IsScreenRelative reports whether the motion depends on the viewport.
func (k Kind) IsScreenRelative() bool {
	return k == ScreenTop || k == ScreenMiddle || k == ScreenBottom
}

// Motion is a motion kind plus its argument. Char is the target of find
// motions; Line is the one-based target of GotoLine.
type Motion struct {
	Kind Kind
	Char rune
	Line int
}

// New returns a motion without arguments.
func New(k Kind) Motion {
	return Motion{Kind: k}
}

// Find returns the f{char} motion.
func Find(r rune) Motion {
	return Motion{Kind: FindForward, Char: r}
}

// FindBack returns the F{char} motion.
func FindBack(r rune) Motion {
	return Motion{Kind: FindBackward, Char: r}
}

// Till returns the t{char} motion.
func Till(r rune) Motion {
	return Motion{Kind: TillForward, Char: r}
}

// TillBack returns the T{char} motion.
func TillBack(r rune) Motion {
	return Motion{Kind: TillBackward, Char: r}
}

// Line returns the {n}G motion for a one-based line number.
func Line(n int) Motion {
	return Motion{Kind: GotoLine, Line: n}
}

// Inclusive reports whether the motion is inclusive when moving forward.
func (m Motion) Inclusive() bool {
	return m.Kind.Inclusive()
}

// Linewise reports whether operators treat the motion as linewise.
func (m Motion) Linewise() bool {
	return m.Kind.Linewise()
}

// IsFind reports whether the motion is one of f, F, t, T.
func (m Motion) IsFind() bool {
	switch m.Kind {
	case FindForward, FindBackward, TillForward, TillBackward:
		return true
	}
	return false
}

// Reverse returns the find motion searching in the opposite direction.
// Non-find motions are returned unchanged.
func (m Motion) Reverse() Motion {
	switch m.Kind {
	case FindForward:
		m.Kind = FindBackward
	case FindBackward:
		m.Kind = FindForward
	case TillForward:
		m.Kind = TillBackward
	case TillBackward:
		m.Kind = TillForward
	}
	return m
}

// String returns a readable form such as "FindForward('x')" or "GotoLine(3)".
func (m Motion) String() string {
	switch {
	case m.IsFind():
		return fmt.Sprintf("%s(%q)", m.Kind, m.Char)
	case m.Kind == GotoLine:
		return fmt.Sprintf("%s(%d)", m.Kind, m.Line)
	}
	return m.Kind.String()
}
