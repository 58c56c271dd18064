// Package register implements the vim register bank.
//
// Register names:
//
//   - 0 (no name) or '"': the unnamed register
//   - a-z: named registers; A-Z append to their lowercase counterpart
//   - 1-9: numbered delete history, shifted on every large delete
//   - '-': the small delete register, for deletes within one line
//   - '_': the black hole, which discards writes and reads empty
//   - '+' and '*': the system clipboard
//   - '0': reads the unnamed register
//
// Content is tagged charwise or linewise; the tag decides where a paste
// lands. Clipboard failures are swallowed and read as empty.
package register
