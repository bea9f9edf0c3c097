package decompose

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/mask"
	"github.com/katalvlaran/zigen/match"
	"github.com/katalvlaran/zigen/scheme"
	"github.com/katalvlaran/zigen/sieve"
	"github.com/katalvlaran/zigen/topology"
)

// Option configures an Engine.
type Option func(*Options)

// Options holds the infrastructure settings of an Engine.
type Options struct {
	// Registry resolves sieve names; defaults to sieve.Builtin().
	Registry *sieve.Registry

	// Table holds the match disambiguators; defaults to match.DefaultTable().
	Table match.Table

	// CacheSize is the number of target topologies kept; 0 disables caching.
	CacheSize int

	// NodeBudget bounds each scheme search; 0 means unbounded.
	NodeBudget int

	err error
}

// DefaultOptions returns the built-in registry and table, a 1024-entry
// topology cache and no node budget.
func DefaultOptions() Options {
	return Options{
		Registry:  sieve.Builtin(),
		Table:     match.DefaultTable(),
		CacheSize: 1024,
	}
}

// WithRegistry resolves sieves in r.
func WithRegistry(r *sieve.Registry) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil registry", ErrOptionViolation)
			return
		}
		o.Registry = r
	}
}

// WithTable replaces the disambiguator table; nil disables it.
func WithTable(t match.Table) Option {
	return func(o *Options) { o.Table = t }
}

// WithCacheSize sets the topology cache size; 0 disables the cache.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: CacheSize cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.CacheSize = n
	}
}

// WithNodeBudget bounds every scheme search (see scheme.WithNodeBudget).
func WithNodeBudget(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: NodeBudget cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.NodeBudget = k
	}
}

// Engine decomposes glyphs against a fixed library and configuration.
// It is safe for concurrent use.
type Engine struct {
	lib    *Library
	cfg    Config
	opts   Options
	sieves []sieve.Sieve
	sets   resolved
	cache  *lru.Cache[string, *topology.Topology]
}

// NewEngine checks cfg against lib and the sieve registry.
func NewEngine(lib *Library, cfg Config, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if lib == nil {
		return nil, ErrNilLibrary
	}
	if miss := cfg.missing(lib); len(miss) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRootReference, strings.Join(miss, ", "))
	}
	names := cfg.Sieves
	if len(names) == 0 {
		names = sieve.DefaultOrder
	}
	sieves, err := o.Registry.Resolve(names)
	if err != nil {
		return nil, fmt.Errorf("decompose: %w", err)
	}
	e := &Engine{lib: lib, cfg: cfg, opts: o, sieves: sieves, sets: cfg.resolve(lib)}
	if o.CacheSize > 0 {
		if e.cache, err = lru.New[string, *topology.Topology](o.CacheSize); err != nil {
			return nil, fmt.Errorf("decompose: topology cache: %w", err)
		}
	}

	return e, nil
}

// Library returns the engine's root library.
func (e *Engine) Library() *Library { return e.lib }

// Decompose splits the named glyph into roots.
func (e *Engine) Decompose(ctx context.Context, name string, strokes []curve.Stroke) (*Result, error) {
	// 1. Validate
	n := len(strokes)
	if n == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyGlyph, name)
	}
	if err := mask.Check(n); err != nil {
		return nil, fmt.Errorf("decompose %q: %w", name, err)
	}
	for i, s := range strokes {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("decompose %q stroke %d: %w", name, i, err)
		}
	}

	// 2. Render and topology
	g := curve.RenderGlyph(strokes)
	target := match.Subject{Name: name, Glyph: g, Topology: e.topology(name, strokes, g)}

	// 3. Slices
	owners, err := e.slices(ctx, target)
	if err != nil {
		return nil, &DecompositionError{Glyph: name, Err: err}
	}
	masks := make([]mask.Mask, 0, len(owners))
	for m := range owners {
		masks = append(masks, m)
	}

	// 4. Schemes
	schemes, err := scheme.Generate(n, masks,
		scheme.WithContext(ctx), scheme.WithNodeBudget(e.opts.NodeBudget))
	if err != nil {
		return nil, &DecompositionError{Glyph: name, Err: err}
	}
	if len(schemes) == 0 {
		tracer().Infof("%s: no scheme from %d slices", name, len(masks))
		return nil, &DecompositionError{Glyph: name, Err: ErrNoScheme}
	}

	// 5. Candidates and selection
	cands := expand(schemes, owners)
	required, accepts := e.sets.required, e.sets.accepts
	if e.cfg.StrokeRoots {
		required, accepts = e.sets.withLabels(e.labels(g))
	}
	sctx := &sieve.Context{
		Topology: target.Topology,
		Strong:   e.sets.strong,
		Weak:     e.sets.weak,
		Similar:  e.sets.similar,
	}
	sel, err := sieve.Select(cands, e.sieves, sctx, required, e.sets.optional, accepts)
	switch {
	case errors.Is(err, sieve.ErrNoConsistentScheme):
		tracer().Infof("%s: %d candidates, none consistent", name, len(cands))
		return nil, &DecompositionError{Glyph: name, Err: ErrNoConsistentScheme, Selection: sel}
	case errors.Is(err, sieve.ErrNoScheme):
		return nil, &DecompositionError{Glyph: name, Err: ErrNoScheme}
	case err != nil:
		return nil, &DecompositionError{Glyph: name, Err: err}
	}

	best, _ := sel.Best()
	res := &Result{Glyph: name, Selection: sel}
	for i, m := range best.Scheme {
		res.Sequence = append(res.Sequence, best.Roots[i])
		res.Slices = append(res.Slices, RootSlice{Root: best.Roots[i], Mask: m, Indices: m.Indices(n)})
	}
	tracer().Debugf("%s", res)

	return res, nil
}

// topology returns the cached topology of the glyph or builds it.
func (e *Engine) topology(name string, strokes []curve.Stroke, g curve.Glyph) *topology.Topology {
	if e.cache == nil {
		return topology.Build(g)
	}
	key := name + "\x00" + fmt.Sprint(strokes)
	if t, ok := e.cache.Get(key); ok {
		return t
	}
	t := topology.Build(g)
	e.cache.Add(key, t)

	return t
}

// slices matches every searched root, and the stroke roots, against
// target. The result maps each mask to the roots owning it, in search
// order.
func (e *Engine) slices(ctx context.Context, target match.Subject) (map[mask.Mask][]string, error) {
	n := len(target.Glyph)
	owners := make(map[mask.Mask][]string)
	for _, name := range e.sets.search {
		root, _ := e.lib.Root(name)
		found, err := match.FindSlices(e.cfg.Degenerator, target, root.subject(),
			match.WithContext(ctx), match.WithTable(e.opts.Table))
		if err != nil {
			return nil, err
		}
		for _, m := range found {
			owners[m] = append(owners[m], name)
		}
	}
	if e.cfg.StrokeRoots {
		for k, s := range target.Glyph {
			m := mask.Bit(n, k)
			owners[m] = append(owners[m], e.cfg.Classifier.Label(s.Feature))
		}
	}

	return owners, nil
}

// labels returns the stroke root labels of g, deduplicated.
func (e *Engine) labels(g curve.Glyph) []string {
	set := sieve.NewSet()
	for _, s := range g {
		set.Add(e.cfg.Classifier.Label(s.Feature))
	}

	return set.Sorted()
}

// expand turns schemes into candidates, one per combination of owners.
func expand(schemes []scheme.Scheme, owners map[mask.Mask][]string) []sieve.Candidate {
	var out []sieve.Candidate
	for _, s := range schemes {
		combos := [][]string{{}}
		for _, m := range s {
			var next [][]string
			for _, prefix := range combos {
				for _, r := range owners[m] {
					c := make([]string, len(prefix)+1)
					copy(c, prefix)
					c[len(prefix)] = r
					next = append(next, c)
				}
			}
			combos = next
		}
		for _, roots := range combos {
			out = append(out, sieve.Candidate{Scheme: s, Roots: roots})
		}
	}

	return out
}

// Decompose builds a throwaway engine without a topology cache and runs a
// single decomposition.
func Decompose(ctx context.Context, lib *Library, cfg Config, name string, strokes []curve.Stroke) (*Result, error) {
	e, err := NewEngine(lib, cfg, WithCacheSize(0))
	if err != nil {
		return nil, err
	}

	return e.Decompose(ctx, name, strokes)
}
