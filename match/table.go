package match

import (
	"math"

	"seehuhn.de/go/geom/rect"

	"github.com/katalvlaran/zigen/curve"
)

// Predicate decides whether a raw slice of target is accepted for a root.
// indices[k] is the target stroke matched to root stroke k.
type Predicate func(target Subject, indices []int) bool

// Table maps root names to their disambiguating predicate.
type Table map[string]Predicate

// DefaultTable returns the built-in disambiguators for roots that share
// features and topology with a look-alike:
//
//	土 / 士  last 横 longer / shorter than the first
//	未 / 末  first 横 shorter / longer than the second
//	口 / 囗  box empty / encloses other strokes
//	己 / 已  竖弯钩 starts on / off the line of the middle 横
func DefaultTable() Table {
	return Table{
		"土": LongerThan(2, 0),
		"士": ShorterThan(2, 0),
		"未": ShorterThan(0, 1),
		"末": LongerThan(0, 1),
		"口": Encloses([]int{0, 1, 2}, false),
		"囗": Encloses([]int{0, 1, 2}, true),
		"己": Collinear(Anchor{Stroke: 2}, 1, true),
		"已": Collinear(Anchor{Stroke: 2}, 1, false),
	}
}

// ShorterThan accepts when root stroke a is matched to a shorter target
// stroke than root stroke b.
func ShorterThan(a, b int) Predicate {
	return func(t Subject, idx []int) bool {
		return t.Glyph.StrokeLength(idx[a]) < t.Glyph.StrokeLength(idx[b])
	}
}

// LongerThan accepts when root stroke a is matched to a longer target
// stroke than root stroke b.
func LongerThan(a, b int) Predicate {
	return func(t Subject, idx []int) bool {
		return t.Glyph.StrokeLength(idx[a]) > t.Glyph.StrokeLength(idx[b])
	}
}

// Encloses accepts when the box spanned by the given root strokes contains
// at least one target stroke outside the slice, and want is true; or
// contains none, and want is false.
func Encloses(box []int, want bool) Predicate {
	return func(t Subject, idx []int) bool {
		in := make(map[int]bool, len(idx))
		for _, i := range idx {
			in[i] = true
		}
		outer := t.Glyph.StrokeBounds(idx[box[0]])
		for _, k := range box[1:] {
			outer = union(outer, t.Glyph.StrokeBounds(idx[k]))
		}
		found := false
		for i := range t.Glyph {
			if !in[i] && inside(t.Glyph.StrokeBounds(i), outer) {
				found = true
				break
			}
		}

		return found == want
	}
}

// Anchor names an endpoint of a root stroke: its start, or its end when
// End is set.
type Anchor struct {
	Stroke int
	End    bool
}

func (a Anchor) point(t Subject, idx []int) curve.Point {
	cs := t.Glyph[idx[a.Stroke]].Curves
	if a.End {
		return cs[len(cs)-1].End()
	}

	return cs[0].Start()
}

// collinearEps bounds the distance from the line, in authoring units.
const collinearEps = 0.5

// Collinear accepts when the corner point lies on the line through the
// first curve of root stroke line (within collinearEps), and want is true;
// or lies off it, and want is false.
func Collinear(corner Anchor, line int, want bool) Predicate {
	return func(t Subject, idx []int) bool {
		p := corner.point(t, idx)
		c := t.Glyph[idx[line]].Curves[0]
		a, b := c.Start(), c.End()
		d := b.Sub(a)
		l := d.Length()
		if l == 0 {
			return !want
		}
		w := p.Sub(a)
		dist := math.Abs(d.X*w.Y-d.Y*w.X) / l

		return (dist <= collinearEps) == want
	}
}

func union(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: math.Min(a.LLx, b.LLx), LLy: math.Min(a.LLy, b.LLy),
		URx: math.Max(a.URx, b.URx), URy: math.Max(a.URy, b.URy),
	}
}

func inside(r, box rect.Rect) bool {
	return r.LLx >= box.LLx && r.LLy >= box.LLy && r.URx <= box.URx && r.URy <= box.URy
}
