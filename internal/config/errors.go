package config

import "errors"

var (
	// ErrUnknownKey is returned when the file contains a key modalcore does
	// not recognize.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalidValue is returned by Validate for an out of range setting.
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrParse is returned for malformed TOML.
	ErrParse = errors.New("config: parse error")
)
