package preview_test

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zigen/internal/fixture"
	"github.com/katalvlaran/zigen/mask"
	"github.com/katalvlaran/zigen/preview"
)

func TestRasterize(t *testing.T) {
	img, err := preview.Rasterize(fixture.Glyph("十"), preview.WithSize(100))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())

	require.Equal(t, uint8(255), img.AlphaAt(50, 50).A)
	require.Equal(t, uint8(255), img.AlphaAt(30, 49).A)
	require.Equal(t, uint8(255), img.AlphaAt(49, 70).A)
	require.Equal(t, uint8(0), img.AlphaAt(30, 30).A)
	require.Equal(t, uint8(0), img.AlphaAt(5, 50).A)
}

func TestRasterize_Scale(t *testing.T) {
	img, err := preview.Rasterize(fixture.Glyph("一"), preview.WithSize(50), preview.WithBox(100), preview.WithWidth(10))
	require.NoError(t, err)
	// 横 at y=50 with width 10 covers rows 45..55, or 22.5..27.5 at half scale.
	require.Equal(t, uint8(255), img.AlphaAt(25, 24).A)
	require.Equal(t, uint8(0), img.AlphaAt(25, 20).A)
}

func TestRasterize_Curves(t *testing.T) {
	img, err := preview.Rasterize(fixture.Glyph("人"), preview.WithSize(100))
	require.NoError(t, err)
	var ink int
	for _, a := range img.Pix {
		if a > 0 {
			ink++
		}
	}
	require.Greater(t, ink, 200)
	require.Greater(t, img.AlphaAt(50, 21).A, uint8(200))
}

// Ink stays within the control box of the stroke paths, widened by the pen.
func TestRasterize_FollowsPath(t *testing.T) {
	g := fixture.Glyph("人")
	box := g.Path(0).BBox()
	box.Extend(g.Path(1).BBox())

	img, err := preview.Rasterize(g, preview.WithSize(100), preview.WithWidth(4))
	require.NoError(t, err)
	const pad = 4
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if img.AlphaAt(x, y).A == 0 {
				continue
			}
			require.True(t, float64(x) >= box.LLx-pad && float64(x) <= box.URx+pad &&
				float64(y) >= box.LLy-pad && float64(y) <= box.URy+pad,
				"ink at (%d,%d) outside %v", x, y, box)
		}
	}
}

func TestRender_Highlight(t *testing.T) {
	g := fixture.Glyph("十")
	img, err := preview.Render(g, preview.WithSize(100), preview.WithHighlight(mask.Bit(2, 0)))
	require.NoError(t, err)

	require.Equal(t, uint8(0), img.GrayAt(30, 49).Y)
	require.Equal(t, uint8(160), img.GrayAt(49, 30).Y)
	require.Equal(t, uint8(0), img.GrayAt(50, 50).Y)
	require.Equal(t, uint8(255), img.GrayAt(10, 10).Y)
}

func TestOptions_Invalid(t *testing.T) {
	g := fixture.Glyph("十")
	for _, opt := range []preview.Option{
		preview.WithSize(0),
		preview.WithBox(-1),
		preview.WithWidth(0),
		preview.WithHighlight(0b100),
	} {
		_, err := preview.Rasterize(g, opt)
		require.ErrorIs(t, err, preview.ErrOptionViolation)
	}
}

func TestWritePNG(t *testing.T) {
	img, err := preview.Render(fixture.Glyph("王"), preview.WithSize(64))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, preview.WritePNG(&buf, img))

	back, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), back.Bounds())
}
