// Package rope provides an immutable, character-addressed rope for buffer text.
//
// Text is stored in small UTF-8 chunks held by the leaves of a shallow B+ tree.
// Every node carries a TextSummary (bytes, characters, newlines) for its
// subtree, so locating a character offset or the start of a line walks a
// single root-to-leaf path.
//
// All offsets taken and returned by this package count Unicode code points
// (runes), not bytes. Line numbers and columns are 0-indexed, and a line
// never includes its trailing newline.
//
// Operations return new Rope values and never modify the receiver, so a Rope
// can be kept as a cheap snapshot:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")   // "hello, world"
//	r = r.Delete(0, 7)     // "world"
//	n := r.Len()           // 5
package rope
