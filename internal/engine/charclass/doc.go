// Package charclass classifies runes for word-oriented motions and text objects.
//
// Three classes are recognized:
//   - Whitespace: unicode.IsSpace runes, including newline
//   - Word: letters, digits and underscore
//   - Keyword: everything else (punctuation, symbols)
//
// The package has no dependencies on buffers or cursors so that both the
// motion and text object packages can share it.
//
// "Big word" (WORD) semantics collapse Word and Keyword into one class:
// any run of non-whitespace is a single WORD.
package charclass
