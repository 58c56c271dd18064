package syntax

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache timings for path lookups.
const (
	DefaultLookupTTL       = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// Option configures a Registry.
type Option func(*Registry)

// WithLanguages registers additional languages after the builtin table.
func WithLanguages(langs ...Language) Option {
	return func(r *Registry) {
		for _, l := range langs {
			r.registerLocked(l)
		}
	}
}

// WithoutBuiltins starts the registry empty.
func WithoutBuiltins() Option {
	return func(r *Registry) {
		r.byName = make(map[string]Language)
		r.byExt = make(map[string]string)
		r.byFile = make(map[string]string)
	}
}

// WithLookupTTL sets how long a path lookup stays memoized.
func WithLookupTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		r.cache = gocache.New(ttl, DefaultCleanupInterval)
	}
}

// Registry resolves paths to languages. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	byName    map[string]Language
	byExt     map[string]string
	byFile    map[string]string
	overrides map[string]Comment
	fallback  Comment
	cache     *gocache.Cache
}

// NewRegistry returns a registry seeded with Builtin.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byName:    make(map[string]Language),
		byExt:     make(map[string]string),
		byFile:    make(map[string]string),
		overrides: make(map[string]Comment),
		fallback:  DefaultComment,
		cache:     gocache.New(DefaultLookupTTL, DefaultCleanupInterval),
	}
	for _, l := range Builtin() {
		r.registerLocked(l)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) registerLocked(l Language) {
	if prev, ok := r.byName[l.Name]; ok {
		for _, ext := range prev.Extensions {
			delete(r.byExt, strings.ToLower(ext))
		}
		for _, f := range prev.Filenames {
			delete(r.byFile, f)
		}
	}
	r.byName[l.Name] = l
	for _, ext := range l.Extensions {
		r.byExt[strings.ToLower(ext)] = l.Name
	}
	for _, f := range l.Filenames {
		r.byFile[f] = l.Name
	}
}

// Register adds or replaces a language.
func (r *Registry) Register(l Language) {
	r.mu.Lock()
	r.registerLocked(l)
	r.mu.Unlock()
	r.cache.Flush()
}

// SetComment overrides the comment affixes of a language by name.
func (r *Registry) SetComment(name string, c Comment) {
	r.mu.Lock()
	r.overrides[name] = c
	r.mu.Unlock()
	r.cache.Flush()
}

// SetFallback sets the comment used for unknown file types.
func (r *Registry) SetFallback(c Comment) {
	r.mu.Lock()
	r.fallback = c
	r.mu.Unlock()
	r.cache.Flush()
}

// Language returns a language by name.
func (r *Registry) Language(name string) (Language, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.byName[name]
	if ok {
		if c, has := r.overrides[name]; has {
			l.Comment = c
		}
	}
	return l, ok
}

// Lookup resolves a path by base name first, then by extension.
func (r *Registry) Lookup(path string) (Language, bool) {
	if path == "" {
		return Language{}, false
	}
	if v, ok := r.cache.Get(path); ok {
		if l, ok := v.(Language); ok {
			return l, l.Name != ""
		}
	}

	name := r.nameFor(path)
	var l Language
	if name != "" {
		l, _ = r.Language(name)
	}
	r.cache.SetDefault(path, l)
	return l, name != ""
}

func (r *Registry) nameFor(path string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	base := filepath.Base(path)
	if name, ok := r.byFile[base]; ok {
		return name
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	return r.byExt[ext]
}

// CommentFor returns the comment affixes for a path. Unknown files and
// languages without a prefix get the fallback.
func (r *Registry) CommentFor(path string) Comment {
	if l, ok := r.Lookup(path); ok && !l.Comment.IsZero() {
		return l.Comment
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// Names returns the registered language names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
