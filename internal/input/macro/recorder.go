package macro

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dshills/modalcore/internal/input/key"
)

// Recorder captures key events into registers.
type Recorder struct {
	mu        sync.RWMutex
	registers map[rune][]key.Event
	recording bool
	target    rune
	appending bool
	captured  []key.Event
	last      rune
}

// NewRecorder returns an idle recorder with no registers set.
func NewRecorder() *Recorder {
	return &Recorder{registers: make(map[rune][]key.Event)}
}

// Start begins recording into register. An uppercase name appends.
func (r *Recorder) Start(register rune) error {
	name := Normalize(register)
	if name == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidRegister, register)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recording {
		return ErrAlreadyRecording
	}
	r.recording = true
	r.target = name
	r.appending = IsAppendRegister(register)
	r.captured = nil
	return nil
}

// Stop ends recording and returns the register that was targeted along
// with the captured events. An empty capture leaves the register as it was.
func (r *Recorder) Stop() (rune, []key.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return 0, nil
	}
	name, events := r.target, r.captured
	if len(events) > 0 {
		if r.appending {
			r.registers[name] = append(slices.Clone(r.registers[name]), events...)
		} else {
			r.registers[name] = events
		}
	}
	r.recording = false
	r.target = 0
	r.appending = false
	r.captured = nil
	return name, slices.Clone(events)
}

// Record appends ev to the active recording. It does nothing when idle.
func (r *Recorder) Record(ev key.Event) {
	r.mu.Lock()
	if r.recording {
		r.captured = append(r.captured, ev)
	}
	r.mu.Unlock()
}

// IsRecording reports whether a recording is active.
func (r *Recorder) IsRecording() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.recording
}

// Register returns the register being recorded, or 0 when idle.
func (r *Recorder) Register() rune {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.target
}

// Pending returns the number of events captured so far.
func (r *Recorder) Pending() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.captured)
}

// Get returns a copy of a register's events. The bool is false when the
// register was never set.
func (r *Recorder) Get(register rune) ([]key.Event, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	events, ok := r.registers[Normalize(register)]
	return slices.Clone(events), ok
}

// Set replaces a register's contents. An uppercase name appends.
func (r *Recorder) Set(register rune, events []key.Event) error {
	name := Normalize(register)
	if name == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidRegister, register)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if IsAppendRegister(register) {
		r.registers[name] = append(slices.Clone(r.registers[name]), events...)
	} else {
		r.registers[name] = slices.Clone(events)
	}
	return nil
}

// Clear removes a register.
func (r *Recorder) Clear(register rune) {
	r.mu.Lock()
	delete(r.registers, Normalize(register))
	r.mu.Unlock()
}

// Registers returns the names of all set registers in order.
func (r *Recorder) Registers() []rune {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]rune, 0, len(r.registers))
	for name := range r.registers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MarkPlayed records register as the target of @@.
func (r *Recorder) MarkPlayed(register rune) {
	r.mu.Lock()
	r.last = Normalize(register)
	r.mu.Unlock()
}

// LastPlayed returns the register last played, or 0.
func (r *Recorder) LastPlayed() rune {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}

func (r *Recorder) snapshot() (map[rune][]key.Event, rune) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[rune][]key.Event, len(r.registers))
	for name, events := range r.registers {
		out[name] = slices.Clone(events)
	}
	return out, r.last
}

func (r *Recorder) restore(registers map[rune][]key.Event, last rune, merge bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !merge {
		r.registers = make(map[rune][]key.Event, len(registers))
	}
	for name, events := range registers {
		r.registers[name] = events
	}
	if last != 0 {
		r.last = last
	}
}
