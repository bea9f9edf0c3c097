package match

import (
	"github.com/katalvlaran/zigen/mask"
	"github.com/katalvlaran/zigen/topology"
)

// walker holds the state of one FindSlices call.
type walker struct {
	target Subject
	root   Subject
	canon  func(string) string
	opts   Options
}

// FindSlices returns every slice of target that reproduces root, as masks
// over target's strokes. A root with more strokes than target, or with no
// strokes at all, yields an empty result.
func FindSlices(deg Degenerator, target, root Subject, opts ...Option) ([]mask.Mask, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := target.check(); err != nil {
		return nil, err
	}
	if err := root.check(); err != nil {
		return nil, err
	}
	n, m := len(target.Glyph), len(root.Glyph)
	if err := mask.Check(n); err != nil {
		return nil, err
	}
	if m == 0 || m > n {
		return nil, nil
	}

	w := &walker{target: target, root: root, canon: deg.resolver(), opts: o}
	candidates, err := w.grow(n, m)
	if err != nil {
		return nil, err
	}

	encode := mask.IndicesToBinary(n)
	var out []mask.Mask
	for _, cand := range candidates {
		if deg.DisallowCrossing && w.crossesOutside(cand) {
			continue
		}
		if pred, ok := o.Table[root.Name]; ok && !pred(target, cand) {
			tracer().Debugf("root %s rejected at %v by disambiguator", root.Name, cand)
			continue
		}
		msk := encode(cand)
		o.OnSlice(root.Name, msk)
		out = append(out, msk)
	}
	tracer().Debugf("root %s: %d raw, %d accepted slices in %s", root.Name, len(candidates), len(out), target.Name)

	return out, nil
}

// grow extends the frontier of partial index lists once per root stroke.
func (w *walker) grow(n, m int) ([][]int, error) {
	frontier := [][]int{{}}
	for r := 0; r < m; r++ {
		// cancellation check (once per root position)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		want := w.canon(w.root.Glyph[r].Feature)
		hi := n - (m - r)
		next := make([][]int, 0, len(frontier))
		for _, partial := range frontier {
			lo := 0
			if len(partial) > 0 {
				lo = partial[len(partial)-1] + 1
			}
			for c := lo; c <= hi; c++ {
				if w.canon(w.target.Glyph[c].Feature) != want {
					continue
				}
				if !w.rowMatches(c, r, partial) {
					continue
				}
				ext := make([]int, len(partial)+1)
				copy(ext, partial)
				ext[len(partial)] = c
				next = append(next, ext)
			}
		}
		if len(next) == 0 {
			return nil, nil
		}
		frontier = next
	}

	return frontier, nil
}

// rowMatches compares target stroke c against the chosen strokes with root
// row r against the same positions.
func (w *walker) rowMatches(c, r int, chosen []int) bool {
	for k, t := range chosen {
		if !topology.Equal(w.target.Topology.Matrix[c][t], w.root.Topology.Matrix[r][k]) {
			return false
		}
	}

	return true
}

// crossesOutside reports whether a stroke of the slice crosses a stroke
// outside it.
func (w *walker) crossesOutside(slice []int) bool {
	n := len(w.target.Glyph)
	in := make([]bool, n)
	for _, i := range slice {
		in[i] = true
	}
	for _, i := range slice {
		for j := 0; j < n; j++ {
			if !in[j] && w.target.Topology.Has(i, j, topology.KindCross) {
				return true
			}
		}
	}

	return false
}
