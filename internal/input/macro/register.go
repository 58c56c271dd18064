package macro

import "errors"

var (
	// ErrInvalidRegister is returned for names outside a-z and A-Z.
	ErrInvalidRegister = errors.New("invalid macro register")
	// ErrAlreadyRecording is returned by Start while a recording is active.
	ErrAlreadyRecording = errors.New("already recording a macro")
	// ErrNotRecorded is returned when playing a register that was never set.
	ErrNotRecorded = errors.New("macro not recorded")
	// ErrEmptyMacro is returned when playing a register that holds no keys.
	ErrEmptyMacro = errors.New("macro is empty")
	// ErrNoLastMacro is returned by PlayLast before any macro has played.
	ErrNoLastMacro = errors.New("no previously played macro")
	// ErrRecursion is returned when playback nests deeper than MaxDepth.
	ErrRecursion = errors.New("macro recursion too deep")
)

// IsValidRegister reports whether r names a macro register (a-z).
func IsValidRegister(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsAppendRegister reports whether r is an uppercase name, which appends
// to the matching lowercase register.
func IsAppendRegister(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// Normalize maps A-Z to a-z and returns 0 for names that are not registers.
func Normalize(r rune) rune {
	switch {
	case IsValidRegister(r):
		return r
	case IsAppendRegister(r):
		return r - 'A' + 'a'
	}
	return 0
}
