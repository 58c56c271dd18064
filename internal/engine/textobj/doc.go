// Package textobj locates vim text objects around a cursor: words, quoted
// strings, and bracketed groups.
//
// Resolve returns an inclusive buffer.Range. Word and quote objects are
// single line. Bracket objects count nesting and may span lines.
//
// The same bracket and quote search backs the surround operations
// (ds, cs, ys) through FindSurrounding.
package textobj
