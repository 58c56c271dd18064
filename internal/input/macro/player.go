package macro

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/dshills/modalcore/internal/input/key"
)

// MaxDepth bounds nested playback, as when a macro invokes itself.
const MaxDepth = 64

// Handler receives each replayed event. A non-nil error stops playback.
type Handler func(key.Event) error

// Player replays registers from a Recorder.
type Player struct {
	recorder *Recorder
	depth    atomic.Int32
}

// NewPlayer returns a player reading from rec.
func NewPlayer(rec *Recorder) *Player {
	return &Player{recorder: rec}
}

// Depth returns the current nesting level, zero when idle.
func (p *Player) Depth() int {
	return int(p.depth.Load())
}

// IsPlaying reports whether playback is in progress.
func (p *Player) IsPlaying() bool {
	return p.depth.Load() > 0
}

// Play feeds register through handler count times. The register becomes
// the target of @@ once its events have been resolved, so a macro that
// fails partway can still be repeated.
func (p *Player) Play(ctx context.Context, register rune, count int, handler Handler) error {
	name := Normalize(register)
	if name == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidRegister, register)
	}
	events, ok := p.recorder.Get(name)
	if !ok {
		return fmt.Errorf("%w: @%c", ErrNotRecorded, name)
	}
	if len(events) == 0 {
		return fmt.Errorf("%w: @%c", ErrEmptyMacro, name)
	}
	if count < 1 {
		count = 1
	}
	if p.depth.Add(1) > MaxDepth {
		p.depth.Add(-1)
		return ErrRecursion
	}
	defer p.depth.Add(-1)

	p.recorder.MarkPlayed(name)
	for range count {
		for _, ev := range events {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := handler(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// PlayLast replays the register last played.
func (p *Player) PlayLast(ctx context.Context, count int, handler Handler) error {
	last := p.recorder.LastPlayed()
	if last == 0 {
		return ErrNoLastMacro
	}
	return p.Play(ctx, last, count, handler)
}
