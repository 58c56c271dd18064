// Package motion computes cursor targets for vim-style motions.
//
// Apply is pure over buffer content: it reads through buffer.Reader and never
// mutates. Results are clamped to valid coordinates, where a column may equal
// the line length (one past the last character). Callers in Normal mode clamp
// further to the last character.
//
// Screen-relative motions (H, M, L) need the viewport offset, which this
// package does not know about. Apply resolves them against a viewport that
// starts at line 0; the editor recomputes them with its real offset.
package motion
