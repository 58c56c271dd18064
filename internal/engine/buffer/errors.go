package buffer

import "errors"

// Errors returned by buffer file operations.
var (
	// ErrNoPath is returned when saving a buffer that has no file path.
	ErrNoPath = errors.New("no file path set")

	// ErrIsDirectory is returned when loading a path that is a directory.
	ErrIsDirectory = errors.New("path is a directory")
)
