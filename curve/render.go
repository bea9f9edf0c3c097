package curve

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// RenderedStroke is a stroke after rendering: its feature and its curves.
type RenderedStroke struct {
	Feature string
	Curves  []Curve
}

// Glyph is an ordered list of rendered strokes, in pen order.
type Glyph []RenderedStroke

// RenderStroke walks the commands of s from s.Start and returns one curve
// per command.
func RenderStroke(s Stroke) []Curve {
	curves := make([]Curve, 0, len(s.Commands))
	p := s.Start
	for _, cmd := range s.Commands {
		switch cmd.Kind {
		case CmdHorizontal:
			q := p.Add(vec.Vec2{X: cmd.Params[0]})
			curves = append(curves, NewLinear(p, q))
			p = q
		case CmdVertical:
			q := p.Add(vec.Vec2{Y: cmd.Params[0]})
			curves = append(curves, NewLinear(p, q))
			p = q
		case CmdCubic:
			a := cmd.Params
			c := NewBezier(p,
				p.Add(vec.Vec2{X: a[0], Y: a[1]}),
				p.Add(vec.Vec2{X: a[2], Y: a[3]}),
				p.Add(vec.Vec2{X: a[4], Y: a[5]}),
			)
			curves = append(curves, c)
			p = c.End()
		}
	}

	return curves
}

// RenderGlyph renders every stroke, keeping their order.
func RenderGlyph(strokes []Stroke) Glyph {
	g := make(Glyph, len(strokes))
	for i, s := range strokes {
		g[i] = RenderedStroke{Feature: s.Feature, Curves: RenderStroke(s)}
	}

	return g
}

// Features returns the feature sequence of g.
func (g Glyph) Features() []string {
	fs := make([]string, len(g))
	for i, s := range g {
		fs[i] = s.Feature
	}

	return fs
}

// StrokeBounds returns the control-point box of stroke i.
func (g Glyph) StrokeBounds(i int) rect.Rect {
	return boundsOf(g[i].Curves)
}

// Bounds returns the control-point box of the whole glyph.
// An empty glyph yields the zero rectangle.
func (g Glyph) Bounds() rect.Rect {
	var all []Curve
	for _, s := range g {
		all = append(all, s.Curves...)
	}

	return boundsOf(all)
}

// StrokeLength returns the arc length of stroke i.
func (g Glyph) StrokeLength(i int) float64 {
	var total float64
	for _, c := range g[i].Curves {
		total += Length(c)
	}

	return total
}

// Path exports stroke i as an open geom path: one move to the start point,
// then a line or cubic segment per curve.
func (g Glyph) Path(i int) path.Path {
	curves := g[i].Curves
	return func(yield func(path.Command, []Point) bool) {
		if len(curves) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, []Point{curves[0].Start()}) {
			return
		}
		for _, c := range curves {
			cmd := path.CmdCubeTo
			if c.IsLinear() {
				cmd = path.CmdLineTo
			}
			if !yield(cmd, c.Controls()[1:]) {
				return
			}
		}
	}
}

func boundsOf(curves []Curve) rect.Rect {
	if len(curves) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, c := range curves {
		lo, hi := BoundingEndpoints(c)
		r.LLx = math.Min(r.LLx, lo.X)
		r.LLy = math.Min(r.LLy, lo.Y)
		r.URx = math.Max(r.URx, hi.X)
		r.URy = math.Max(r.URy, hi.Y)
	}

	return r
}
