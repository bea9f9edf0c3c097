package decompose

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/mask"
	"github.com/katalvlaran/zigen/match"
	"github.com/katalvlaran/zigen/sieve"
	"github.com/katalvlaran/zigen/topology"
)

// tracer writes to trace with key 'zigen.decompose'
func tracer() tracing.Trace {
	return tracing.Select("zigen.decompose")
}

var (
	// ErrNoScheme is returned when no scheme covers the glyph.
	ErrNoScheme = fmt.Errorf("decompose: %w", sieve.ErrNoScheme)

	// ErrNoConsistentScheme is returned when schemes exist but none is made
	// of accepted roots only.
	ErrNoConsistentScheme = fmt.Errorf("decompose: %w", sieve.ErrNoConsistentScheme)

	// ErrInvalidRootReference is returned when the configuration names a
	// root the library does not hold.
	ErrInvalidRootReference = errors.New("decompose: invalid root reference")

	// ErrEmptyGlyph is returned for a glyph with no strokes.
	ErrEmptyGlyph = errors.New("decompose: glyph has no strokes")

	// ErrTooManyStrokes is mask.ErrTooManyStrokes.
	ErrTooManyStrokes = mask.ErrTooManyStrokes

	// ErrNilLibrary is returned by NewEngine without a library.
	ErrNilLibrary = errors.New("decompose: library is nil")

	// ErrDuplicateRoot is returned by NewLibrary for a repeated root name.
	ErrDuplicateRoot = errors.New("decompose: duplicate root")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("decompose: invalid option supplied")
)

// DecompositionError reports a failed search for one glyph.
type DecompositionError struct {
	// Glyph is the name of the target.
	Glyph string

	// Err is ErrNoScheme, ErrNoConsistentScheme or a search error.
	Err error

	// Selection holds the ranking when candidates existed but none was
	// consistent; nil otherwise.
	Selection *sieve.Selection
}

func (e *DecompositionError) Error() string {
	return fmt.Sprintf("decompose %q: %v", e.Glyph, e.Err)
}

func (e *DecompositionError) Unwrap() error { return e.Err }

// Root is a compiled root: rendered strokes and their topology.
// A Root is read-only once built.
type Root struct {
	Name     string
	Glyph    curve.Glyph
	Topology *topology.Topology
}

// CompileRoot validates and renders strokes and computes their topology.
func CompileRoot(name string, strokes []curve.Stroke) (Root, error) {
	if len(strokes) == 0 {
		return Root{}, fmt.Errorf("%w: root %q", ErrEmptyGlyph, name)
	}
	if err := mask.Check(len(strokes)); err != nil {
		return Root{}, fmt.Errorf("decompose: root %q: %w", name, err)
	}
	for i, s := range strokes {
		if err := s.Validate(); err != nil {
			return Root{}, fmt.Errorf("decompose: root %q stroke %d: %w", name, i, err)
		}
	}
	g := curve.RenderGlyph(strokes)

	return Root{Name: name, Glyph: g, Topology: topology.Build(g)}, nil
}

func (r *Root) subject() match.Subject {
	return match.Subject{Name: r.Name, Glyph: r.Glyph, Topology: r.Topology}
}

// Library is an immutable set of compiled roots, safe for concurrent use.
type Library struct {
	roots map[string]*Root
	names []string
}

// NewLibrary collects roots. Names must be unique.
func NewLibrary(roots ...Root) (*Library, error) {
	l := &Library{roots: make(map[string]*Root, len(roots))}
	for i := range roots {
		r := roots[i]
		if _, ok := l.roots[r.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRoot, r.Name)
		}
		l.roots[r.Name] = &r
		l.names = append(l.names, r.Name)
	}
	sort.Strings(l.names)

	return l, nil
}

// Root returns the named root.
func (l *Library) Root(name string) (*Root, bool) {
	r, ok := l.roots[name]

	return r, ok
}

// Names returns the root names in ascending order.
func (l *Library) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)

	return out
}

// Len returns the number of roots.
func (l *Library) Len() int { return len(l.roots) }

// RootSlice is one root of a decomposition and the target strokes it covers.
type RootSlice struct {
	Root    string
	Mask    mask.Mask
	Indices []int
}

// Result is a successful decomposition.
type Result struct {
	// Glyph is the name of the target.
	Glyph string

	// Sequence lists the roots in scheme order.
	Sequence []string

	// Slices pairs every root of Sequence with its strokes.
	Slices []RootSlice

	// Selection is the full ranking the result was chosen from.
	Selection *sieve.Selection
}

// StrokeIndices maps each root to the target strokes it covers. A root
// used more than once gets the union of its index lists, in scheme order.
func (r *Result) StrokeIndices() map[string][]int {
	out := make(map[string][]int, len(r.Slices))
	for _, s := range r.Slices {
		out[s.Root] = append(out[s.Root], s.Indices...)
	}

	return out
}

func (r *Result) String() string {
	return r.Glyph + " = " + strings.Join(r.Sequence, " ")
}
