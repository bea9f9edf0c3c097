// Package fixture holds hand-authored stroke data for a handful of glyphs
// used across the zigen tests. Coordinates live in a 100×100 box with y
// growing downward.
package fixture

import (
	"sort"

	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/zigen/curve"
)

func pt(x, y float64) curve.Point { return vec.Vec2{X: x, Y: y} }

func stroke(feature string, x, y float64, cmds ...curve.Command) curve.Stroke {
	return curve.Stroke{Feature: feature, Start: pt(x, y), Commands: cmds}
}

var h, v, c = curve.H, curve.V, curve.C

var glyphs = map[string][]curve.Stroke{
	"一": {stroke("横", 20, 50, h(60))},
	"丨": {stroke("竖", 50, 20, v(60))},
	"丿": {stroke("撇", 60, 20, c(-5, 20, -15, 40, -30, 55))},
	"丶": {stroke("点", 45, 40, c(3, 3, 7, 7, 10, 15))},
	"十": {
		stroke("横", 20, 50, h(60)),
		stroke("竖", 50, 20, v(60)),
	},
	"二": {
		stroke("横", 30, 35, h(40)),
		stroke("横", 20, 65, h(60)),
	},
	"三": {
		stroke("横", 30, 25, h(40)),
		stroke("横", 35, 50, h(30)),
		stroke("横", 20, 75, h(60)),
	},
	"丰": {
		stroke("横", 30, 25, h(40)),
		stroke("横", 35, 45, h(30)),
		stroke("横", 20, 65, h(60)),
		stroke("竖", 50, 10, v(80)),
	},
	"土": {
		stroke("横", 30, 40, h(40)),
		stroke("竖", 50, 20, v(60)),
		stroke("横", 15, 80, h(70)),
	},
	"士": {
		stroke("横", 15, 40, h(70)),
		stroke("竖", 50, 20, v(60)),
		stroke("横", 30, 80, h(40)),
	},
	"王": {
		stroke("横", 25, 20, h(50)),
		stroke("横", 30, 50, h(40)),
		stroke("竖", 50, 20, v(60)),
		stroke("横", 20, 80, h(60)),
	},
	"壬": {
		stroke("撇", 65, 10, c(-10, 5, -20, 11, -30, 16)),
		stroke("横", 15, 45, h(70)),
		stroke("竖", 50, 30, v(50)),
		stroke("横", 30, 80, h(40)),
	},
	"田": {
		stroke("竖", 20, 20, v(60)),
		stroke("横折", 20, 20, h(60), v(60)),
		stroke("竖", 50, 20, v(60)),
		stroke("横", 20, 50, h(60)),
		stroke("横", 20, 80, h(60)),
	},
	"口": {
		stroke("竖", 25, 25, v(50)),
		stroke("横折", 25, 25, h(50), v(50)),
		stroke("横", 25, 75, h(50)),
	},
	"囗": {
		stroke("竖", 15, 15, v(70)),
		stroke("横折", 15, 15, h(70), v(70)),
		stroke("横", 15, 85, h(70)),
	},
	"回": {
		stroke("竖", 15, 15, v(70)),
		stroke("横折", 15, 15, h(70), v(70)),
		stroke("竖", 35, 35, v(30)),
		stroke("横折", 35, 35, h(30), v(30)),
		stroke("横", 35, 65, h(30)),
		stroke("横", 15, 85, h(70)),
	},
	"己": {
		stroke("横折", 30, 25, h(40), v(20)),
		stroke("横", 30, 45, h(40)),
		stroke("竖弯钩", 30, 45, v(30), c(0, 8, 5, 10, 45, 10)),
	},
	"已": {
		stroke("横折", 30, 25, h(40), v(20)),
		stroke("横", 30, 45, h(40)),
		stroke("竖弯钩", 30, 35, v(40), c(0, 8, 5, 10, 45, 10)),
	},
	"人": {
		stroke("撇", 50, 20, c(0, 20, -10, 45, -30, 60)),
		stroke("捺", 50, 45, c(10, 15, 20, 30, 35, 35)),
	},
}

// Names returns the names of all fixtures in sorted order.
func Names() []string {
	names := make([]string, 0, len(glyphs))
	for n := range glyphs {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Strokes returns a fresh copy of the strokes of the named fixture, or nil.
func Strokes(name string) []curve.Stroke {
	src, ok := glyphs[name]
	if !ok {
		return nil
	}
	out := make([]curve.Stroke, len(src))
	for i, s := range src {
		cmds := make([]curve.Command, len(s.Commands))
		for j, cmd := range s.Commands {
			cmds[j] = curve.Command{Kind: cmd.Kind, Params: append([]float64(nil), cmd.Params...)}
		}
		out[i] = curve.Stroke{Feature: s.Feature, Start: s.Start, Commands: cmds}
	}

	return out
}

// Glyph renders the named fixture.
func Glyph(name string) curve.Glyph {
	return curve.RenderGlyph(Strokes(name))
}

// WithFeature returns the strokes of name with stroke i relabelled.
func WithFeature(name string, i int, feature string) []curve.Stroke {
	s := Strokes(name)
	s[i].Feature = feature

	return s
}
