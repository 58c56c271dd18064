package history

import "time"

// Defaults for NewStack.
const (
	DefaultGroupInterval = 300 * time.Millisecond
	DefaultLimit         = 1000
)

// Option configures a Stack.
type Option func(*Stack)

// WithGroupInterval sets how close together Begin calls must be to continue
// an open entry. Zero disables time-based grouping.
func WithGroupInterval(d time.Duration) Option {
	return func(s *Stack) {
		if d >= 0 {
			s.interval = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Stack) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLimit sets the maximum number of undo entries.
func WithLimit(n int) Option {
	return func(s *Stack) {
		if n > 0 {
			s.limit = n
		}
	}
}
