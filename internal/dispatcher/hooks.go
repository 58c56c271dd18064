package dispatcher

import "github.com/dshills/modalcore/internal/input/vim"

// PreDispatchHook is called before an action is applied.
type PreDispatchHook interface {
	// PreDispatch may modify the action. Returning false cancels it.
	PreDispatch(action *vim.Action) bool
}

// PostDispatchHook is called after an action is applied.
type PostDispatchHook interface {
	// PostDispatch may inspect or modify the result.
	PostDispatch(action vim.Action, result *Result)
}

// PreDispatchFunc is a function adapter for PreDispatchHook.
type PreDispatchFunc func(action *vim.Action) bool

// PreDispatch implements PreDispatchHook.
func (f PreDispatchFunc) PreDispatch(action *vim.Action) bool {
	return f(action)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(action vim.Action, result *Result)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(action vim.Action, result *Result) {
	f(action, result)
}

// LoggingHook logs every dispatched action at debug level.
type LoggingHook struct {
	log Logger
}

// NewLoggingHook creates a logging hook.
func NewLoggingHook(log Logger) *LoggingHook {
	return &LoggingHook{log: log}
}

// PreDispatch logs the action being dispatched.
func (h *LoggingHook) PreDispatch(action *vim.Action) bool {
	h.log.Debug("dispatching", "action", action.String())
	return true
}

// PostDispatch logs the dispatch result.
func (h *LoggingHook) PostDispatch(action vim.Action, result *Result) {
	if result.Err != nil {
		h.log.Warn("dispatch failed", "action", action.Kind.String(), "error", result.Err)
		return
	}
	h.log.Debug("dispatched", "action", action.Kind.String(), "status", result.Status.String())
}
