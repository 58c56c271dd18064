package dispatcher

import "github.com/dshills/modalcore/internal/input/vim"

// Status classifies a dispatch result.
type Status uint8

const (
	// StatusPending means the key was consumed and more input is needed.
	StatusPending Status = iota
	// StatusHandled means the action was applied.
	StatusHandled
	// StatusPassthrough means the action is for the caller to perform.
	StatusPassthrough
	// StatusUnknown means the key sequence matched nothing.
	StatusUnknown
	// StatusCancelled means a pre-dispatch hook refused the action.
	StatusCancelled
	// StatusError means the action failed.
	StatusError
)

var statusNames = [...]string{
	StatusPending:     "pending",
	StatusHandled:     "handled",
	StatusPassthrough: "passthrough",
	StatusUnknown:     "unknown",
	StatusCancelled:   "cancelled",
	StatusError:       "error",
}

// String returns the status name.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "invalid"
}

// Result is the outcome of one key or action.
type Result struct {
	Action vim.Action
	Status Status

	// Quit is set when the user asked to leave.
	Quit bool

	// Err holds the failure for StatusError.
	Err error
}

// IsPassthrough reports whether the caller should perform the action.
func (r Result) IsPassthrough() bool {
	return r.Status == StatusPassthrough
}
