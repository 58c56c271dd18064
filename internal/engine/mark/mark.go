// Package mark stores vim marks.
//
// Lowercase marks (a-z) are local to a buffer key. Uppercase marks (A-Z) are
// global and carry the path of the file they were set in, so a jump can open
// another file.
package mark

import (
	"sort"
	"sync"

	"github.com/dshills/modalcore/internal/engine/buffer"
)

// Mark is a saved position. Path is set for global marks only.
type Mark struct {
	Path string
	Pos  buffer.Position
}

// Named pairs a mark with its name for listings.
type Named struct {
	Name rune
	Mark Mark
}

// IsValid reports whether r is a mark name.
func IsValid(r rune) bool {
	return IsLocal(r) || IsGlobal(r)
}

// IsLocal reports whether r names a buffer-local mark.
func IsLocal(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsGlobal reports whether r names a global mark.
func IsGlobal(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// Store holds local and global marks. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	local  map[string]map[rune]Mark
	global map[rune]Mark
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		local:  make(map[string]map[rune]Mark),
		global: make(map[rune]Mark),
	}
}

// SetLocal sets a lowercase mark for a buffer key.
func (s *Store) SetLocal(key string, name rune, pos buffer.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	marks, ok := s.local[key]
	if !ok {
		marks = make(map[rune]Mark)
		s.local[key] = marks
	}
	marks[name] = Mark{Pos: pos}
}

// SetGlobal sets an uppercase mark in the file at path.
func (s *Store) SetGlobal(name rune, path string, pos buffer.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.global[name] = Mark{Path: path, Pos: pos}
}

// Set stores a mark by name. Global marks need a path; without one the call
// is ignored and Set returns false.
func (s *Store) Set(key, path string, name rune, pos buffer.Position) bool {
	switch {
	case IsLocal(name):
		s.SetLocal(key, name, pos)
		return true
	case IsGlobal(name) && path != "":
		s.SetGlobal(name, path, pos)
		return true
	}
	return false
}

// Get looks up a mark by name, local marks under key.
func (s *Store) Get(key string, name rune) (Mark, bool) {
	if IsLocal(name) {
		return s.GetLocal(key, name)
	}
	return s.GetGlobal(name)
}

// GetLocal looks up a local mark.
func (s *Store) GetLocal(key string, name rune) (Mark, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.local[key][name]
	return m, ok
}

// GetGlobal looks up a global mark.
func (s *Store) GetGlobal(name rune) (Mark, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.global[name]
	return m, ok
}

// Delete removes a mark and reports whether it existed.
func (s *Store) Delete(key string, name rune) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if IsLocal(name) {
		if _, ok := s.local[key][name]; ok {
			delete(s.local[key], name)
			return true
		}
		return false
	}
	if _, ok := s.global[name]; ok {
		delete(s.global, name)
		return true
	}
	return false
}

// DeleteAllLocal removes every local mark of a buffer and returns how many
// were removed.
func (s *Store) DeleteAllLocal(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.local[key])
	delete(s.local, key)
	return n
}

// Local lists a buffer's local marks sorted by name.
func (s *Store) Local(key string) []Named {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.local[key])
}

// Global lists the global marks sorted by name.
func (s *Store) Global() []Named {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.global)
}

func sorted(marks map[rune]Mark) []Named {
	out := make([]Named, 0, len(marks))
	for name, m := range marks {
		out = append(out, Named{Name: name, Mark: m})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ParseDelmarks expands a :delmarks argument such as "a-d X Y" into mark
// names. Ranges must stay within one case and ascend. Duplicates and
// invalid characters are dropped; order of first appearance is kept.
func ParseDelmarks(arg string) []rune {
	chars := []rune(arg)
	seen := make(map[rune]bool)
	var out []rune
	add := func(r rune) {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}

	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if !IsValid(c) {
			continue
		}
		if i+2 < len(chars) && chars[i+1] == '-' {
			end := chars[i+2]
			sameCase := (IsLocal(c) && IsLocal(end)) || (IsGlobal(c) && IsGlobal(end))
			if sameCase && end >= c {
				for r := c; r <= end; r++ {
					add(r)
				}
				i += 2
				continue
			}
		}
		add(c)
	}
	return out
}
