package decompose

import (
	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/match"
	"github.com/katalvlaran/zigen/sieve"
)

// Config is the analysis configuration of an Engine.
type Config struct {
	// Degenerator loosens stroke matching.
	Degenerator match.Degenerator

	// Sieves is the ranking order; empty means sieve.DefaultOrder.
	Sieves []string

	// Required roots are always in use; Optional roots may be switched on
	// through Accepted.
	Required, Optional, Accepted []string

	// Strong, Weak and Similar feed the sieves of the same names.
	Strong, Weak, Similar []string

	// StrokeRoots makes every single stroke a required root named after
	// its class.
	StrokeRoots bool

	// Classifier names stroke roots.
	Classifier curve.Classifier
}

// resolved is a Config turned into sets.
type resolved struct {
	search                      []string // roots to match, sorted
	required, optional, accepts sieve.Set
	strong, weak, similar       sieve.Set
}

func (c Config) resolve(lib *Library) resolved {
	r := resolved{
		required: sieve.NewSet(c.Required...),
		optional: sieve.NewSet(c.Optional...),
		strong:   sieve.NewSet(c.Strong...),
		weak:     sieve.NewSet(c.Weak...),
		similar:  sieve.NewSet(c.Similar...),
	}
	if len(c.Required) == 0 && len(c.Optional) == 0 {
		r.required.Add(lib.Names()...)
	}
	for _, n := range lib.Names() {
		if r.required.Has(n) || r.optional.Has(n) {
			r.search = append(r.search, n)
		}
	}
	r.accepts = sieve.NewSet(r.required.Sorted()...)
	if len(c.Accepted) == 0 {
		r.accepts.Add(c.Optional...)
	} else {
		r.accepts.Add(c.Accepted...)
	}

	return r
}

// withLabels returns copies of the required and accepted sets extended by
// the stroke root labels.
func (r resolved) withLabels(labels []string) (required, accepts sieve.Set) {
	required = sieve.NewSet(r.required.Sorted()...)
	accepts = sieve.NewSet(r.accepts.Sorted()...)
	required.Add(labels...)
	accepts.Add(labels...)

	return required, accepts
}

// missing lists configured names that are neither library roots nor, with
// stroke roots on, stroke labels.
func (c Config) missing(lib *Library) []string {
	seen := sieve.NewSet()
	var out []string
	for _, list := range [][]string{c.Required, c.Optional, c.Accepted} {
		for _, n := range list {
			if seen.Has(n) {
				continue
			}
			seen.Add(n)
			if _, ok := lib.Root(n); ok {
				continue
			}
			if c.StrokeRoots && isStrokeLabel(n) {
				continue
			}
			out = append(out, n)
		}
	}

	return out
}

// isStrokeLabel reports whether n looks like a class label ("1", "12").
func isStrokeLabel(n string) bool {
	if n == "" {
		return false
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
