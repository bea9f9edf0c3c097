package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/zigen/curve"
)

func p(x, y float64) curve.Point { return vec.Vec2{X: x, Y: y} }

func requirePoint(t *testing.T, want, got curve.Point) {
	t.Helper()
	require.InDelta(t, want.X, got.X, 1e-9)
	require.InDelta(t, want.Y, got.Y, 1e-9)
}

func TestLinear_Split(t *testing.T) {
	l := curve.NewLinear(p(0, 0), p(10, 0))
	a, b := l.Split(0.5)
	require.Equal(t, curve.NewLinear(p(0, 0), p(5, 0)), a)
	require.Equal(t, curve.NewLinear(p(5, 0), p(10, 0)), b)
	require.True(t, a.IsLinear())
}

func TestBezier_Split(t *testing.T) {
	c := curve.NewBezier(p(0, 0), p(10, -5), p(20, 5), p(30, 0))
	for _, tt := range []float64{0.25, 0.5, 0.9} {
		a, b := c.Split(tt)
		require.False(t, a.IsLinear())
		requirePoint(t, c.Start(), a.Start())
		requirePoint(t, c.End(), b.End())
		requirePoint(t, curve.Evaluate(c, tt), a.End())
		requirePoint(t, a.End(), b.Start())
		// The halves trace the same curve.
		requirePoint(t, curve.Evaluate(c, tt/2), curve.Evaluate(a, 0.5))
	}
}

func TestEvaluate(t *testing.T) {
	l := curve.NewLinear(p(0, 0), p(10, 20))
	requirePoint(t, p(2.5, 5), curve.Evaluate(l, 0.25))

	c := curve.NewBezier(p(0, 0), p(0, 10), p(10, 10), p(10, 0))
	requirePoint(t, p(0, 0), curve.Evaluate(c, 0))
	requirePoint(t, p(10, 0), curve.Evaluate(c, 1))
	requirePoint(t, p(5, 7.5), curve.Evaluate(c, 0.5))
}

func TestBoundingEndpoints(t *testing.T) {
	lo, hi := curve.BoundingEndpoints(curve.NewBezier(p(0, 0), p(10, -5), p(20, 5), p(30, 0)))
	require.Equal(t, p(0, -5), lo)
	require.Equal(t, p(30, 5), hi)

	lo, hi = curve.BoundingEndpoints(curve.NewLinear(p(5, 9), p(1, 2)))
	require.Equal(t, p(1, 2), lo)
	require.Equal(t, p(5, 9), hi)
}

func TestLength(t *testing.T) {
	require.Equal(t, 5.0, curve.Length(curve.NewLinear(p(0, 0), p(3, 4))))
	require.InDelta(t, 3.0, curve.Length(curve.NewBezier(p(0, 0), p(1, 0), p(2, 0), p(3, 0))), 1e-9)

	// A bulging cubic is longer than its chord and shorter than its hull.
	l := curve.Length(curve.NewBezier(p(0, 0), p(0, 10), p(10, 10), p(10, 0)))
	require.Greater(t, l, 10.0)
	require.Less(t, l, 30.0)
}

func TestOrientation(t *testing.T) {
	cases := []struct {
		name string
		c    curve.Curve
		axis curve.Axis
		dir  int
	}{
		{"right", curve.NewLinear(p(0, 0), p(10, 1)), curve.AxisX, 1},
		{"left", curve.NewLinear(p(10, 0), p(0, 3)), curve.AxisX, -1},
		{"down", curve.NewLinear(p(0, 0), p(1, 10)), curve.AxisY, 1},
		{"up", curve.NewLinear(p(0, 10), p(0, 0)), curve.AxisY, -1},
		{"tie", curve.NewLinear(p(0, 0), p(5, 5)), curve.AxisX, 1},
		{"sweep", curve.NewBezier(p(50, 20), p(50, 40), p(40, 65), p(20, 80)), curve.AxisY, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.axis, curve.Orientation(tc.c))
			require.Equal(t, tc.dir, curve.Direction(tc.c, tc.axis))
		})
	}
	require.Equal(t, 0, curve.Direction(curve.NewLinear(p(0, 0), p(0, 10)), curve.AxisX))
}
