// Package dispatcher turns key events into editor changes.
//
// A Dispatcher owns the vim input state of one editor. Each key is routed
// by mode: Normal and visual keys go through the pending-input state
// machine, Insert and Replace keys map directly. The resulting action is
// applied to the editor, or handled here when it concerns macros, saving
// or quitting. Actions meant for the surrounding application, such as
// window and LSP commands, come back in the Result as passthrough.
//
// Macro recording captures every key while a register is active, except
// the closing q. Playback feeds the stored keys back through HandleKey as
// one undo entry, bounded by macro.MaxDepth for macros that call
// themselves.
//
// Pre- and post-dispatch hooks can observe or cancel actions. Handler
// panics are recovered into an ErrPanic result when configured.
package dispatcher
