// Package buffer provides the line/column addressed text buffer used by the
// modal editing engine. It is built on the character-addressed rope and adds
// a file path, a dirty flag, and a monotonic version counter that is bumped on
// every mutation.
//
// Positions are zero-indexed. Columns count characters, not bytes.
//
// Column arithmetic follows the rope: an offset is the line's start plus the
// column, so a column equal to the line length including its newline lands on
// the first character of the next line. Operations that span a line break rely
// on this.
//
// Two interfaces describe the contract consumed by the rest of the engine:
//
//   - Reader: read-only access used by motions and text objects
//   - TextBuffer: Reader plus the mutations used by the editor
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("hello\nworld")
//	buf.InsertString(1, 0, "big ")  // "hello\nbig world"
//	buf.DeleteRange(0, 0, 1, 0)     // "big world"
//
// All Buffer methods are safe for concurrent use.
package buffer
