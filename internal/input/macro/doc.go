// Package macro records key events into named registers and replays them.
//
// Recording starts with Recorder.Start and a register name a-z. An
// uppercase name appends to the lowercase register instead of replacing
// it. Every event handed to Record while recording is captured; Stop saves
// the capture when it is non-empty.
//
//	rec := macro.NewRecorder()
//	_ = rec.Start('a')
//	rec.Record(key.Char('d'))
//	rec.Record(key.Char('w'))
//	rec.Stop()
//
// A Player feeds a register back through a handler:
//
//	p := macro.NewPlayer(rec)
//	err := p.Play(ctx, 'a', 3, func(ev key.Event) error { ... })
//
// Registers persist across sessions as YAML, with each macro written in
// vim key notation ("d2w<Esc>").
//
// All types are safe for concurrent use.
package macro
