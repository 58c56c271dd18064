package app

import "errors"

var (
	// ErrNoDocument is returned when a file cannot be opened for editing.
	ErrNoDocument = errors.New("app: cannot open document")

	// ErrScreen is returned when the terminal cannot be initialized.
	ErrScreen = errors.New("app: screen unavailable")
)
