package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrActionCancelled indicates the action was cancelled by a hook.
	ErrActionCancelled = errors.New("dispatcher: action cancelled by hook")

	// ErrPanic indicates the editor panicked while applying an action.
	ErrPanic = errors.New("dispatcher: handler panic")

	// ErrNotSavable indicates the document cannot be written.
	ErrNotSavable = errors.New("dispatcher: document cannot be saved")
)
