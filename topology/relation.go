package topology

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/zigen/curve"
)

const (
	// onLineEps is the largest distance at which a point counts as lying on
	// a linear curve.
	onLineEps = 1e-6

	// splitLimit stops subdivision once both boxes are smaller than this.
	splitLimit = 1.0

	// tipRadius is how close a subdivision hit must be to an endpoint for
	// the curve to count as attaching there.
	tipRadius = 1.5

	// maxDepth bounds the subdivision recursion.
	maxDepth = 40
)

// CurveRelation returns the relation of curve a towards curve b.
// CurveRelation(b, a) always equals CurveRelation(a, b).Mirror(): the pair
// is evaluated in control point order, so curves that touch or cross more
// than once report the same meeting point either way round.
func CurveRelation(a, b curve.Curve) Relation {
	if before(b, a) {
		return relation(b, a).Mirror()
	}

	return relation(a, b)
}

// before orders curves lexicographically by their control points.
func before(a, b curve.Curve) bool {
	pa, pb := a.Controls(), b.Controls()
	for i := 0; i < len(pa) && i < len(pb); i++ {
		switch {
		case pa[i].X != pb[i].X:
			return pa[i].X < pb[i].X
		case pa[i].Y != pb[i].Y:
			return pa[i].Y < pb[i].Y
		}
	}

	return len(pa) < len(pb)
}

func relation(a, b curve.Curve) Relation {
	if r, ok := attach(a, b); ok {
		return r
	}
	if a.IsLinear() && b.IsLinear() {
		if segmentsCross(a, b) {
			return Crossing()
		}

		return apart(a, b)
	}
	if p, ok := intersect(a, b, 0); ok {
		sa, sb := tipSide(a, p), tipSide(b, p)
		if sa == Middle && sb == Middle {
			return Crossing()
		}

		return Attached(sa, sb)
	}

	return apart(a, b)
}

// attach checks, in order: shared endpoints (start/start, start/end,
// end/start, end/end), then an endpoint of one curve inside the other when
// that other curve is linear.
func attach(a, b curve.Curve) (Relation, bool) {
	as, ae, bs, be := a.Start(), a.End(), b.Start(), b.End()
	switch {
	case as == bs:
		return Attached(Front, Front), true
	case as == be:
		return Attached(Front, Back), true
	case ae == bs:
		return Attached(Back, Front), true
	case ae == be:
		return Attached(Back, Back), true
	}
	if b.IsLinear() {
		if onSegment(as, bs, be) {
			return Attached(Front, Middle), true
		}
		if onSegment(ae, bs, be) {
			return Attached(Back, Middle), true
		}
	}
	if a.IsLinear() {
		if onSegment(bs, as, ae) {
			return Attached(Middle, Front), true
		}
		if onSegment(be, as, ae) {
			return Attached(Middle, Back), true
		}
	}

	return Relation{}, false
}

func cross(u, v vec.Vec2) float64 { return u.X*v.Y - u.Y*v.X }

// onSegment reports whether p lies strictly between p0 and p1.
func onSegment(p, p0, p1 curve.Point) bool {
	d := p1.Sub(p0)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return false
	}
	w := p.Sub(p0)
	if math.Abs(cross(d, w)) > onLineEps*math.Sqrt(l2) {
		return false
	}
	t := (d.X*w.X + d.Y*w.Y) / l2

	return t > 0 && t < 1
}

// segmentsCross is the strict signed-area test: every endpoint must lie
// strictly on one side of the other segment.
func segmentsCross(a, b curve.Curve) bool {
	p1, p2 := a.Start(), a.End()
	q1, q2 := b.Start(), b.End()
	d1 := cross(p2.Sub(p1), q1.Sub(p1))
	d2 := cross(p2.Sub(p1), q2.Sub(p1))
	d3 := cross(q2.Sub(q1), p1.Sub(q1))
	d4 := cross(q2.Sub(q1), p2.Sub(q1))

	return d1*d2 < 0 && d3*d4 < 0
}

// intersect searches a common point of a and b by halving both curves
// while their control boxes overlap.
func intersect(a, b curve.Curve, depth int) (curve.Point, bool) {
	alo, ahi := curve.BoundingEndpoints(a)
	blo, bhi := curve.BoundingEndpoints(b)
	if alo.X > bhi.X || blo.X > ahi.X || alo.Y > bhi.Y || blo.Y > ahi.Y {
		return curve.Point{}, false
	}
	if depth >= maxDepth || (extent(alo, ahi) < splitLimit && extent(blo, bhi) < splitLimit) {
		return alo.Add(ahi).Mul(0.5), true
	}
	a0, a1 := a.Split(0.5)
	b0, b1 := b.Split(0.5)
	for _, pa := range [2]curve.Curve{a0, a1} {
		for _, pb := range [2]curve.Curve{b0, b1} {
			if p, ok := intersect(pa, pb, depth+1); ok {
				return p, true
			}
		}
	}

	return curve.Point{}, false
}

func extent(lo, hi curve.Point) float64 {
	return math.Max(hi.X-lo.X, hi.Y-lo.Y)
}

func tipSide(c curve.Curve, p curve.Point) Side {
	switch {
	case p.Sub(c.Start()).Length() <= tipRadius:
		return Front
	case p.Sub(c.End()).Length() <= tipRadius:
		return Back
	default:
		return Middle
	}
}

// apart classifies two curves that do not meet.
func apart(a, b curve.Curve) Relation {
	alo, ahi := curve.BoundingEndpoints(a)
	blo, bhi := curve.BoundingEndpoints(b)
	x := compare(alo.X, ahi.X, blo.X, bhi.X)
	y := compare(alo.Y, ahi.Y, blo.Y, bhi.Y)
	axis := curve.Orientation(a)
	if axis != curve.Orientation(b) {
		return Disjoint(x, y)
	}
	if axis == curve.AxisX {
		return Parallel(x, y)
	}

	return Parallel(y, x)
}

// compare orders interval [a0,a1] against [b0,b1].
func compare(a0, a1, b0, b1 float64) Order {
	switch {
	case a1 < b0:
		return FarBelow
	case a0 > b1:
		return FarAbove
	case (a0 <= b0 && a1 >= b1) || (a0 >= b0 && a1 <= b1):
		return Overlap
	case a0 < b0:
		return OverlapBelow
	default:
		return OverlapAbove
	}
}
