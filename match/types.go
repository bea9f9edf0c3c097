package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/mask"
	"github.com/katalvlaran/zigen/topology"
)

// tracer writes to trace with key 'zigen.match'
func tracer() tracing.Trace {
	return tracing.Select("zigen.match")
}

var (
	// ErrSubject is returned when a subject's topology is nil or sized for
	// a different glyph.
	ErrSubject = errors.New("match: subject topology does not fit its glyph")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("match: invalid option supplied")
)

// Subject is a rendered glyph together with its topology. Both targets and
// roots are subjects.
type Subject struct {
	Name     string
	Glyph    curve.Glyph
	Topology *topology.Topology
}

// NewSubject computes the topology of g and wraps both.
func NewSubject(name string, g curve.Glyph) Subject {
	return Subject{Name: name, Glyph: g, Topology: topology.Build(g)}
}

func (s Subject) check() error {
	if s.Topology == nil || s.Topology.Len() != len(s.Glyph) {
		return fmt.Errorf("%w: %q", ErrSubject, s.Name)
	}

	return nil
}

// Degenerator is the stroke-feature equivalence used while matching.
type Degenerator struct {
	// FeatureEquivalence merges feature a into the class of feature b for
	// every entry a → b. Entries chain: {提: 横, 横: 横钩} puts all three in
	// one class. Features absent from the map equate to themselves.
	FeatureEquivalence map[string]string

	// DisallowCrossing drops slices that cross a stroke outside the slice.
	DisallowCrossing bool
}

// Equivalent reports whether features a and b fall in the same class.
func (d Degenerator) Equivalent(a, b string) bool {
	canon := d.resolver()

	return canon(a) == canon(b)
}

// resolver returns a function mapping each feature to the smallest member
// of its class.
func (d Degenerator) resolver() func(string) string {
	if len(d.FeatureEquivalence) == 0 {
		return func(s string) string { return s }
	}
	parent := make(map[string]string, 2*len(d.FeatureEquivalence))
	var find func(string) string
	find = func(x string) string {
		p, ok := parent[x]
		if !ok || p == x {
			return x
		}
		r := find(p)
		parent[x] = r

		return r
	}
	for a, b := range d.FeatureEquivalence {
		ra, rb := find(a), find(b)
		switch {
		case ra == rb:
		case ra < rb:
			parent[rb] = ra
		default:
			parent[ra] = rb
		}
	}
	rep := make(map[string]string, len(parent))
	for x := range parent {
		rep[x] = find(x)
	}

	return func(s string) string {
		if r, ok := rep[s]; ok {
			return r
		}

		return s
	}
}

// Option configures FindSlices.
type Option func(*Options)

// Options holds the parameters of one FindSlices call.
type Options struct {
	// Ctx allows cancellation between root positions.
	Ctx context.Context

	// Table holds the disambiguators. A nil Table disables them.
	Table Table

	// OnSlice is called for every accepted slice, in discovery order.
	OnSlice func(root string, m mask.Mask)

	err error
}

// DefaultOptions returns background context, DefaultTable and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Table:   DefaultTable(),
		OnSlice: func(string, mask.Mask) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithTable replaces the disambiguator table. Passing nil disables
// disambiguation.
func WithTable(t Table) Option {
	return func(o *Options) {
		o.Table = t
	}
}

// WithOnSlice registers a callback run for each accepted slice.
func WithOnSlice(fn func(root string, m mask.Mask)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSlice = fn
		}
	}
}
