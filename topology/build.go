package topology

import "github.com/katalvlaran/zigen/curve"

// Build computes the topology of g.
func Build(g curve.Glyph) *Topology {
	n := len(g)
	t := &Topology{
		Matrix: make([][][]Relation, n),
		Curves: make([]int, n),
	}
	for i := range g {
		t.Curves[i] = len(g[i].Curves)
		t.Matrix[i] = make([][]Relation, i)
		for j := 0; j < i; j++ {
			rels := make([]Relation, 0, len(g[i].Curves)*len(g[j].Curves))
			for _, ci := range g[i].Curves {
				for _, cj := range g[j].Curves {
					rels = append(rels, CurveRelation(ci, cj))
				}
			}
			t.Matrix[i][j] = rels
		}
	}
	for i := range g {
		for j := 0; j < i; j++ {
			if oriented(g[i], g[j], t.Matrix[i][j]) {
				t.Oriented = append(t.Oriented, Pair{I: i, J: j})
			}
		}
	}

	return t
}

// oriented: both strokes are one straight segment drawn the same way, they
// overlap along that axis and stand apart across it.
func oriented(a, b curve.RenderedStroke, rels []Relation) bool {
	if len(a.Curves) != 1 || len(b.Curves) != 1 {
		return false
	}
	ca, cb := a.Curves[0], b.Curves[0]
	if !ca.IsLinear() || !cb.IsLinear() {
		return false
	}
	axis := curve.Orientation(ca)
	if axis != curve.Orientation(cb) {
		return false
	}
	dir := curve.Direction(ca, axis)
	if dir == 0 || dir != curve.Direction(cb, axis) {
		return false
	}
	r := rels[0]

	return r.Kind == KindParallel && !r.A.IsFar() && r.B.IsFar()
}
