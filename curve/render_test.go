package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/internal/fixture"
)

func TestRenderStroke(t *testing.T) {
	s := curve.Stroke{Feature: "横折", Start: p(20, 20), Commands: []curve.Command{curve.H(60), curve.V(60)}}
	require.Equal(t, []curve.Curve{
		curve.NewLinear(p(20, 20), p(80, 20)),
		curve.NewLinear(p(80, 20), p(80, 80)),
	}, curve.RenderStroke(s))

	s = curve.Stroke{Feature: "撇", Start: p(50, 20), Commands: []curve.Command{curve.C(0, 20, -10, 45, -30, 60)}}
	require.Equal(t, []curve.Curve{
		curve.NewBezier(p(50, 20), p(50, 40), p(40, 65), p(20, 80)),
	}, curve.RenderStroke(s))

	// Commands chain from the end of the previous curve.
	s = curve.Stroke{Feature: "竖弯钩", Start: p(30, 45), Commands: []curve.Command{curve.V(30), curve.C(0, 8, 5, 10, 45, 10)}}
	cs := curve.RenderStroke(s)
	require.Len(t, cs, 2)
	require.Equal(t, p(30, 75), cs[1].Start())
	require.Equal(t, p(75, 85), cs[1].End())
}

func TestGlyph_Bounds(t *testing.T) {
	g := fixture.Glyph("十")
	require.Equal(t, rect.Rect{LLx: 20, LLy: 50, URx: 80, URy: 50}, g.StrokeBounds(0))
	require.Equal(t, rect.Rect{LLx: 20, LLy: 20, URx: 80, URy: 80}, g.Bounds())
	require.Equal(t, rect.Rect{}, curve.Glyph{}.Bounds())
	require.Equal(t, []string{"横", "竖"}, g.Features())
}

func TestGlyph_StrokeLength(t *testing.T) {
	g := fixture.Glyph("田")
	require.Equal(t, 60.0, g.StrokeLength(0))
	require.Equal(t, 120.0, g.StrokeLength(1))
	require.Equal(t, 120.0, fixture.Strokes("田")[1].Length())
}

type segment struct {
	cmd path.Command
	pts []curve.Point
}

func segments(p path.Path) []segment {
	var out []segment
	for cmd, pts := range p {
		out = append(out, segment{cmd, append([]curve.Point(nil), pts...)})
	}

	return out
}

func TestGlyph_Path(t *testing.T) {
	g := fixture.Glyph("田")
	require.Equal(t, []segment{
		{path.CmdMoveTo, []curve.Point{p(20, 20)}},
		{path.CmdLineTo, []curve.Point{p(80, 20)}},
		{path.CmdLineTo, []curve.Point{p(80, 80)}},
	}, segments(g.Path(1)))
	require.Equal(t, rect.Rect{LLx: 20, LLy: 20, URx: 80, URy: 80}, g.Path(1).BBox())

	got := segments(fixture.Glyph("人").Path(0))
	require.Len(t, got, 2)
	require.Equal(t, path.CmdCubeTo, got[1].cmd)
	require.Len(t, got[1].pts, 3)

	require.Empty(t, segments(curve.Glyph{{Feature: "横"}}.Path(0)))
}
