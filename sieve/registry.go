package sieve

import (
	"fmt"
	"sort"
	"sync"
)

// Sieve scores a candidate. Smaller keys are better.
type Sieve interface {
	Name() string
	Key(ctx *Context, c Candidate) Key
}

type funcSieve struct {
	name string
	fn   func(*Context, Candidate) Key
}

func (f funcSieve) Name() string                      { return f.name }
func (f funcSieve) Key(ctx *Context, c Candidate) Key { return f.fn(ctx, c) }

// NewFunc wraps fn as a Sieve named name.
func NewFunc(name string, fn func(*Context, Candidate) Key) Sieve {
	return funcSieve{name: name, fn: fn}
}

// Registry maps names to sieves. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	sieves map[string]Sieve
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sieves: make(map[string]Sieve)}
}

// Register adds s. Names are unique.
func (r *Registry) Register(s Sieve) error {
	if s == nil {
		return ErrNilSieve
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sieves[s.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSieve, s.Name())
	}
	r.sieves[s.Name()] = s

	return nil
}

// Lookup returns the sieve registered under name.
func (r *Registry) Lookup(name string) (Sieve, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sieves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSieve, name)
	}

	return s, nil
}

// Resolve looks up every name, keeping their order.
func (r *Registry) Resolve(names []string) ([]Sieve, error) {
	out := make([]Sieve, 0, len(names))
	for _, n := range names {
		s, err := r.Lookup(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.sieves))
	for n := range r.sieves {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Builtin returns a new registry holding every built-in sieve.
func Builtin() *Registry {
	r := NewRegistry()
	for _, s := range builtins() {
		// names are distinct by construction
		_ = r.Register(s)
	}

	return r
}
