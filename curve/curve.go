package curve

import "math"

// Curve is one parametric piece of a rendered stroke, defined for t in [0,1].
type Curve interface {
	// Controls returns the control points, first and last being the endpoints.
	Controls() []Point

	// Start is the point at t=0.
	Start() Point

	// End is the point at t=1.
	End() Point

	// IsLinear reports whether the curve is a straight segment.
	IsLinear() bool

	// Split divides the curve at t into two curves of the same type.
	Split(t float64) (Curve, Curve)
}

// Linear is a straight segment from P[0] to P[1].
type Linear struct {
	P [2]Point
}

// Bezier is a cubic Bézier curve with endpoints P[0] and P[3].
type Bezier struct {
	P [4]Point
}

// NewLinear returns the segment a→b.
func NewLinear(a, b Point) Linear { return Linear{P: [2]Point{a, b}} }

// NewBezier returns the cubic curve with control points p0..p3.
func NewBezier(p0, p1, p2, p3 Point) Bezier {
	return Bezier{P: [4]Point{p0, p1, p2, p3}}
}

func (l Linear) Controls() []Point { return l.P[:] }
func (l Linear) Start() Point      { return l.P[0] }
func (l Linear) End() Point        { return l.P[1] }
func (l Linear) IsLinear() bool    { return true }

// Split divides the segment at t.
func (l Linear) Split(t float64) (Curve, Curve) {
	m := lerp(l.P[0], l.P[1], t)

	return NewLinear(l.P[0], m), NewLinear(m, l.P[1])
}

func (b Bezier) Controls() []Point { return b.P[:] }
func (b Bezier) Start() Point      { return b.P[0] }
func (b Bezier) End() Point        { return b.P[3] }
func (b Bezier) IsLinear() bool    { return false }

// Split divides the curve at t using de Casteljau's construction.
func (b Bezier) Split(t float64) (Curve, Curve) {
	p0, p1, p2, p3 := b.P[0], b.P[1], b.P[2], b.P[3]
	q0 := lerp(p0, p1, t)
	q1 := lerp(p1, p2, t)
	q2 := lerp(p2, p3, t)
	r0 := lerp(q0, q1, t)
	r1 := lerp(q1, q2, t)
	s := lerp(r0, r1, t)

	return NewBezier(p0, q0, r0, s), NewBezier(s, r1, q2, p3)
}

// Evaluate returns the point of c at parameter t.
// Linear curves interpolate; cubic curves use the Bernstein weights
// (1-t)³, 3(1-t)²t, 3(1-t)t², t³.
func Evaluate(c Curve, t float64) Point {
	cs := c.Controls()
	if c.IsLinear() {
		return lerp(cs[0], cs[1], t)
	}
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t

	return cs[0].Mul(omt2 * omt).
		Add(cs[1].Mul(3 * omt2 * t)).
		Add(cs[2].Mul(3 * omt * t2)).
		Add(cs[3].Mul(t2 * t))
}

// BoundingEndpoints returns the lower and upper corners of the box spanned
// by the control points of c. By the convex hull property the curve lies
// inside this box.
func BoundingEndpoints(c Curve) (Point, Point) {
	cs := c.Controls()
	lo, hi := cs[0], cs[0]
	for _, p := range cs[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}

	return lo, hi
}

// lengthSteps is the flattening resolution used for cubic arc length.
const lengthSteps = 32

// Length returns the arc length of c. Cubic curves are flattened into
// lengthSteps chords.
func Length(c Curve) float64 {
	if c.IsLinear() {
		return c.End().Sub(c.Start()).Length()
	}
	var (
		total float64
		prev  = c.Start()
	)
	for i := 1; i <= lengthSteps; i++ {
		p := Evaluate(c, float64(i)/lengthSteps)
		total += p.Sub(prev).Length()
		prev = p
	}

	return total
}

// Axis names a principal direction of the authoring box.
type Axis int

const (
	// AxisX is the horizontal axis.
	AxisX Axis = iota
	// AxisY is the vertical axis.
	AxisY
)

// Orientation returns the principal axis along which c is drawn, judged by
// the chord from its start to its end. Ties resolve to AxisX.
func Orientation(c Curve) Axis {
	d := c.End().Sub(c.Start())
	if math.Abs(d.X) >= math.Abs(d.Y) {
		return AxisX
	}

	return AxisY
}

// Direction is the sign (-1, 0 or +1) of the chord of c along axis a.
func Direction(c Curve, a Axis) int {
	d := c.End().Sub(c.Start())
	v := d.X
	if a == AxisY {
		v = d.Y
	}
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func lerp(a, b Point, t float64) Point {
	return a.Add(b.Sub(a).Mul(t))
}
