package dispatcher

import (
	"sort"
	"sync"
	"time"
)

// Metrics counts dispatches per action kind.
type Metrics struct {
	mu      sync.RWMutex
	actions map[string]*ActionMetrics

	dispatches uint64
	errors     uint64
	panics     uint64
	keys       uint64
	elapsed    time.Duration
}

// ActionMetrics holds the counters of one action kind.
type ActionMetrics struct {
	Name        string
	Count       uint64
	Errors      uint64
	Passthrough uint64
	Total       time.Duration
	Max         time.Duration
	LastStatus  Status
}

// Average returns the mean dispatch time.
func (a ActionMetrics) Average() time.Duration {
	if a.Count == 0 {
		return 0
	}
	return a.Total / time.Duration(a.Count)
}

// NewMetrics creates an empty collector.
func NewMetrics() *Metrics {
	return &Metrics{actions: make(map[string]*ActionMetrics)}
}

// RecordKey counts a key event.
func (m *Metrics) RecordKey() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys++
}

// RecordDispatch records one applied action.
func (m *Metrics) RecordDispatch(name string, d time.Duration, status Status) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dispatches++
	m.elapsed += d
	a := m.actions[name]
	if a == nil {
		a = &ActionMetrics{Name: name}
		m.actions[name] = a
	}
	a.Count++
	a.Total += d
	a.Max = max(a.Max, d)
	a.LastStatus = status
	switch status {
	case StatusError:
		m.errors++
		a.Errors++
	case StatusPassthrough:
		a.Passthrough++
	}
}

// RecordPanic records a recovered panic.
func (m *Metrics) RecordPanic(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panics++
}

// ActionStats returns a copy of one action's counters.
func (m *Metrics) ActionStats(name string) (ActionMetrics, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.actions[name]
	if !ok {
		return ActionMetrics{}, false
	}
	return *a, true
}

// TopActions returns up to n actions ordered by count, then name.
func (m *Metrics) TopActions(n int) []ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ActionMetrics, 0, len(m.actions))
	for _, a := range m.actions {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out[:min(max(n, 0), len(out))]
}

// MetricsSnapshot is a point-in-time copy of the global counters.
type MetricsSnapshot struct {
	Keys       uint64
	Dispatches uint64
	Errors     uint64
	Panics     uint64
	Average    time.Duration
	Actions    int
}

// Snapshot returns the global counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := MetricsSnapshot{
		Keys:       m.keys,
		Dispatches: m.dispatches,
		Errors:     m.errors,
		Panics:     m.panics,
		Actions:    len(m.actions),
	}
	if m.dispatches > 0 {
		s.Average = m.elapsed / time.Duration(m.dispatches)
	}
	return s
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m = Metrics{actions: make(map[string]*ActionMetrics)}
}
