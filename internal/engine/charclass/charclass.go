package charclass

import "unicode"

// Class is the lexical class of a rune.
type Class uint8

const (
	// Whitespace is any unicode space, including newlines.
	Whitespace Class = iota

	// Word is a letter, digit or underscore.
	Word

	// Keyword is any other non-space rune.
	Keyword
)

// String returns a string representation of the class.
func (c Class) String() string {
	switch c {
	case Whitespace:
		return "whitespace"
	case Word:
		return "word"
	case Keyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// Classify returns the class of r.
func Classify(r rune) Class {
	switch {
	case unicode.IsSpace(r):
		return Whitespace
	case r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r):
		return Word
	default:
		return Keyword
	}
}

// ClassifyBig returns the class of r under WORD rules, where every
// non-space rune is Word.
func ClassifyBig(r rune) Class {
	if unicode.IsSpace(r) {
		return Whitespace
	}
	return Word
}

// For returns the classifier for normal (big == false) or WORD semantics.
func For(big bool) func(rune) Class {
	if big {
		return ClassifyBig
	}
	return Classify
}

// IsWord reports whether r belongs to a word run.
// With big set, any non-space rune counts.
func IsWord(r rune, big bool) bool {
	return For(big)(r) == Word
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
