package scheme

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/zigen/mask"
)

// errStop unwinds the recursion once MaxSchemes is reached.
var errStop = errors.New("scheme: stop")

// checkEvery is the node interval between context checks.
const checkEvery = 1024

// generator holds the state of one Generate call.
type generator struct {
	full    mask.Mask
	masks   []mask.Mask        // sorted ascending, unique
	exclude map[mask.Mask]bool // interval sums
	opts    Options

	nodes   int
	path    Scheme
	schemes []Scheme
}

// Generate returns every scheme of an n-stroke glyph built from slices.
// slices need not be sorted; duplicates are ignored.
func Generate(n int, slices []mask.Mask, opts ...Option) ([]Scheme, error) {
	// 1. Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Validate input
	if err := mask.Check(n); err != nil {
		return nil, err
	}
	full := mask.Full(n)
	for _, m := range slices {
		if m == 0 || m&^full != 0 {
			return nil, fmt.Errorf("%w: %b for %d strokes", ErrMaskRange, uint64(m), n)
		}
	}
	if n == 0 {
		return nil, nil
	}

	// 3. Sort, deduplicate, precompute exclusions
	g := &generator{
		full:    full,
		masks:   normalize(slices),
		opts:    o,
		path:    make(Scheme, 0, n),
		exclude: make(map[mask.Mask]bool),
	}
	for _, m := range IntervalSums(n, g.masks) {
		g.exclude[m] = true
	}

	// 4. Search
	err := g.search(0)
	switch {
	case errors.Is(err, errStop):
	case err != nil:
		return g.schemes, err
	}
	tracer().Debugf("%d strokes, %d slices: %d schemes in %d nodes", n, len(g.masks), len(g.schemes), g.nodes)

	return g.schemes, nil
}

// search extends the current path from partial sum.
func (g *generator) search(sum mask.Mask) error {
	// 1. Budget and cancellation
	g.nodes++
	if g.opts.NodeBudget > 0 && g.nodes > g.opts.NodeBudget {
		return ErrBudgetExceeded
	}
	if g.nodes%checkEvery == 1 {
		select {
		case <-g.opts.Ctx.Done():
			return g.opts.Ctx.Err()
		default:
		}
	}

	// 2. Complete scheme
	if sum == g.full {
		s := make(Scheme, len(g.path))
		copy(s, g.path)
		g.schemes = append(g.schemes, s)
		g.opts.OnScheme(s)
		if g.opts.MaxSchemes > 0 && len(g.schemes) >= g.opts.MaxSchemes {
			return errStop
		}

		return nil
	}

	// 3. Candidates hold the first uncovered stroke and nothing outside the
	// complement
	rest := g.full &^ sum
	first := rest.High()
	lo := sort.Search(len(g.masks), func(i int) bool { return g.masks[i] >= first })
	for i := lo; i < len(g.masks) && g.masks[i] <= rest; i++ {
		m := g.masks[i]
		if m&sum != 0 {
			continue
		}
		// 4. Re-derived known root
		if g.rederives(m) {
			continue
		}
		g.path = append(g.path, m)
		err := g.search(sum | m)
		g.path = g.path[:len(g.path)-1]
		if err != nil {
			return err
		}
	}

	return nil
}

// rederives reports whether m together with the last k >= 1 slices of the
// path covers exactly an excluded interval sum.
func (g *generator) rederives(m mask.Mask) bool {
	u := m
	for k := len(g.path) - 1; k >= 0; k-- {
		u |= g.path[k]
		if g.exclude[u] {
			return true
		}
	}

	return false
}

// IntervalSums returns, in ascending order, every contiguous run of at
// least two strokes of an n-stroke glyph whose mask is among known.
func IntervalSums(n int, known []mask.Mask) []mask.Mask {
	set := make(map[mask.Mask]bool, len(known))
	for _, m := range known {
		set[m] = true
	}
	var out []mask.Mask
	for _, r := range mask.Runs(n, 2) {
		if set[r] {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func normalize(slices []mask.Mask) []mask.Mask {
	out := make([]mask.Mask, len(slices))
	copy(out, slices)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	k := 0
	for i, m := range out {
		if i == 0 || m != out[k-1] {
			out[k] = m
			k++
		}
	}

	return out[:k]
}
