// Package editor applies resolved vim actions to a buffer.
//
// An Editor owns the cursor, the mode, the viewport offset and the visual
// selection of one document, and routes each vim.Action to the operation
// it names: operators over motions, lines and text objects, visual
// operations, surround edits, comment toggling, indentation, case changes,
// marks, paste, Insert and Replace mode typing, and undo and redo.
//
// Every mutation is recorded on the history.Stack so that undo restores
// the buffer exactly. User input never produces an error: failed lookups
// leave the buffer untouched and set a status message instead.
package editor
