package sieve

import (
	"errors"
	"sort"

	"github.com/katalvlaran/zigen/scheme"
	"github.com/katalvlaran/zigen/topology"
)

var (
	// ErrNoScheme is returned when there is nothing to select from.
	ErrNoScheme = errors.New("sieve: no scheme")

	// ErrNoConsistentScheme is returned when no usable scheme is made of
	// accepted roots only.
	ErrNoConsistentScheme = errors.New("sieve: no scheme consistent with the accepted roots")

	// ErrUnknownSieve is returned by Lookup for an unregistered name.
	ErrUnknownSieve = errors.New("sieve: unknown sieve")

	// ErrDuplicateSieve is returned by Register for a name already taken.
	ErrDuplicateSieve = errors.New("sieve: duplicate sieve")

	// ErrNilSieve is returned by Register for a nil sieve.
	ErrNilSieve = errors.New("sieve: sieve is nil")
)

// Key is a sieve value. Smaller keys are better.
type Key []int

// Compare orders keys lexicographically; a proper prefix sorts first.
func Compare(a, b Key) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// Evaluation holds the key of a candidate under each sieve, by sieve name.
type Evaluation map[string]Key

// Set is a set of root names.
type Set map[string]struct{}

// NewSet returns a set of the given names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}

	return s
}

// Has reports whether name is in s. A nil set is empty.
func (s Set) Has(name string) bool {
	_, ok := s[name]

	return ok
}

// Add inserts names.
func (s Set) Add(names ...string) {
	for _, n := range names {
		s[n] = struct{}{}
	}
}

// SubsetOf reports whether every member of s is in o.
func (s Set) SubsetOf(o Set) bool {
	for n := range s {
		if !o.Has(n) {
			return false
		}
	}

	return true
}

// Sorted returns the members of s in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Context carries what sieves may inspect besides the candidate itself.
type Context struct {
	// Topology is the target glyph's topology.
	Topology *topology.Topology

	// Strong roots are preferred, weak roots avoided, and similar roots
	// (easily confused with another root) avoided.
	Strong, Weak, Similar Set
}

// Len returns the stroke count of the target.
func (c *Context) Len() int {
	if c == nil || c.Topology == nil {
		return 0
	}

	return c.Topology.Len()
}

// Candidate is a scheme with the root name behind each slice.
type Candidate struct {
	Scheme scheme.Scheme
	Roots  []string
}

// Indices returns the stroke indices of slice k for an n-stroke glyph.
func (c Candidate) Indices(n, k int) []int {
	return c.Scheme[k].Indices(n)
}

// Ranked is a candidate after ranking.
type Ranked struct {
	Candidate

	// Evaluation holds the candidate's key under every sieve of the order.
	Evaluation Evaluation

	// Optional lists, sorted and deduplicated, the optional roots used.
	Optional []string

	// Usable is false when the candidate is dominated.
	Usable bool
}

// Selection is the outcome of Select.
type Selection struct {
	// Ranked is the full evaluated list in rank order.
	Ranked []Ranked

	// Chosen indexes Ranked, or is -1 when nothing was consistent.
	Chosen int
}

// Best returns the chosen candidate. ok is false when none was chosen.
func (s *Selection) Best() (Ranked, bool) {
	if s == nil || s.Chosen < 0 || s.Chosen >= len(s.Ranked) {
		return Ranked{}, false
	}

	return s.Ranked[s.Chosen], true
}
