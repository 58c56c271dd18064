package dispatcher

import "time"

// Config holds dispatcher configuration options.
type Config struct {
	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool

	// RecoverFromPanic turns editor panics into error results.
	RecoverFromPanic bool

	// PlaybackTimeout bounds a single macro playback. Zero means no limit.
	PlaybackTimeout time.Duration

	// MaxRepeatCount limits the count of an action. Zero means no limit.
	MaxRepeatCount int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RecoverFromPanic: true,
		PlaybackTimeout:  5 * time.Second,
		MaxRepeatCount:   10000,
	}
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithPlaybackTimeout returns a copy of the config with the playback
// timeout set.
func (c Config) WithPlaybackTimeout(d time.Duration) Config {
	c.PlaybackTimeout = d
	return c
}

// WithMaxRepeatCount returns a copy of the config with the max repeat count set.
func (c Config) WithMaxRepeatCount(max int) Config {
	c.MaxRepeatCount = max
	return c
}
