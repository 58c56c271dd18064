// Package vim turns key events into editing actions.
//
// State is the Normal-mode grammar:
//
//	[count]["x][operator][count](motion | text-object)
//	[count]["x]operator operator        (dd, yy, >>, guu, gcc)
//	[count]motion
//	[count]["x]command
//
// plus the two-key prefixes g, z, [ and ], the f/F/t/T character searches,
// the surround commands ds, cs and ys, marks, macros and the Ctrl-w window
// table. Every ProcessNormalKey call either records pending input and
// returns an ActionPending action or resolves to a complete Action and
// resets. The last character search survives Reset so ; and , keep working.
//
// State does not read the buffer. Whether a motion lands anywhere, or a
// text object exists, is decided by the editor that executes the Action.
//
// ProcessVisualKey and ProcessInsertKey map keys for the other modes; they
// share the count, register and text-object handling with Normal mode.
package vim
