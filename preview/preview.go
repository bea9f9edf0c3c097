package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/mask"
)

// ErrOptionViolation is returned for invalid options.
var ErrOptionViolation = errors.New("preview: invalid option")

// Option configures rasterization.
type Option func(*Options)

// Options sets the output geometry.
type Options struct {
	// Size is the edge length of the output image in pixels.
	Size int

	// Box is the edge length of the authoring box in glyph units.
	Box float64

	// Width is the stroke width in glyph units.
	Width float64

	// Highlight selects strokes drawn in full black by Render.
	Highlight mask.Mask

	err error
}

// DefaultOptions returns a 128 pixel image of a 100 unit box with 4 unit
// strokes.
func DefaultOptions() Options {
	return Options{Size: 128, Box: 100, Width: 4}
}

// WithSize sets the image size in pixels.
func WithSize(px int) Option {
	return func(o *Options) {
		if px <= 0 {
			o.err = fmt.Errorf("%w: size must be positive (%d)", ErrOptionViolation, px)
			return
		}
		o.Size = px
	}
}

// WithBox sets the authoring box size.
func WithBox(units float64) Option {
	return func(o *Options) {
		if !(units > 0) {
			o.err = fmt.Errorf("%w: box must be positive (%g)", ErrOptionViolation, units)
			return
		}
		o.Box = units
	}
}

// WithWidth sets the stroke width.
func WithWidth(units float64) Option {
	return func(o *Options) {
		if !(units > 0) {
			o.err = fmt.Errorf("%w: width must be positive (%g)", ErrOptionViolation, units)
			return
		}
		o.Width = units
	}
}

// WithHighlight marks the strokes of m for Render.
func WithHighlight(m mask.Mask) Option {
	return func(o *Options) { o.Highlight = m }
}

func apply(n int, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if err := mask.Check(n); err != nil {
		return o, fmt.Errorf("preview: %w", err)
	}
	if o.Highlight&^mask.Full(n) != 0 {
		return o, fmt.Errorf("%w: highlight %b exceeds %d strokes", ErrOptionViolation, o.Highlight, n)
	}

	return o, nil
}

// cubicSteps is the number of chords per cubic curve.
const cubicSteps = 16

// Rasterize draws every stroke of g into an alpha mask.
func Rasterize(g curve.Glyph, opts ...Option) (*image.Alpha, error) {
	o, err := apply(len(g), opts)
	if err != nil {
		return nil, err
	}

	return o.rasterize(g, func(int) bool { return true }), nil
}

// Render draws g in gray on white with the highlighted strokes in black.
func Render(g curve.Glyph, opts ...Option) (*image.Gray, error) {
	o, err := apply(len(g), opts)
	if err != nil {
		return nil, err
	}
	n := len(g)
	all := o.rasterize(g, func(int) bool { return true })
	hi := o.rasterize(g, func(k int) bool { return o.Highlight.Has(n, k) })

	dst := image.NewGray(all.Bounds())
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(color.Gray{Y: 160}), image.Point{}, all, image.Point{}, draw.Over)
	draw.DrawMask(dst, dst.Bounds(), image.Black, image.Point{}, hi, image.Point{}, draw.Over)

	return dst, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	return nil
}

func (o Options) rasterize(g curve.Glyph, keep func(int) bool) *image.Alpha {
	r := vector.NewRasterizer(o.Size, o.Size)
	scale := float64(o.Size) / o.Box
	toPixels := [6]float64{scale, 0, 0, scale, 0, 0}
	half := o.Width / 2 * scale
	for k := range g {
		if !keep(k) {
			continue
		}
		var cur curve.Point
		for cmd, pts := range g.Path(k).Transform(toPixels) {
			switch cmd {
			case path.CmdMoveTo:
				cur = pts[0]
			case path.CmdLineTo:
				segment(r, cur, pts[0], half)
				cur = pts[0]
			case path.CmdCubeTo:
				chords := flatten(curve.NewBezier(cur, pts[0], pts[1], pts[2]))
				for i := 1; i < len(chords); i++ {
					segment(r, chords[i-1], chords[i], half)
				}
				cur = pts[2]
			}
		}
	}
	dst := image.NewAlpha(r.Bounds())
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	return dst
}

func flatten(c curve.Bezier) []curve.Point {
	pts := make([]curve.Point, cubicSteps+1)
	for i := range pts {
		pts[i] = curve.Evaluate(c, float64(i)/cubicSteps)
	}

	return pts
}

// segment adds the rectangle around a→b in pixel space, extended by half at
// both ends. Every rectangle is traversed with the same winding so overlaps
// add up.
func segment(r *vector.Rasterizer, a, b curve.Point, half float64) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 || math.IsNaN(l) {
		d = vec.Vec2{X: 1}
	} else {
		d = d.Mul(1 / l)
	}
	d = d.Mul(half)
	nrm := vec.Vec2{X: -d.Y, Y: d.X}
	a, b = a.Sub(d), b.Add(d)
	corners := [4]curve.Point{a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm)}
	r.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, p := range corners[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
}
