package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/library"
	"github.com/katalvlaran/zigen/mask"
	"github.com/katalvlaran/zigen/match"
	"github.com/katalvlaran/zigen/preview"
	"github.com/katalvlaran/zigen/topology"
)

var cmdTopology = cli.Command{
	Name:      "topology",
	Usage:     "Print the stroke relations of a glyph",
	ArgsUsage: "<glyph>",
	Action:    runTopology,
}

var cmdSlices = cli.Command{
	Name:      "slices",
	Usage:     "List where a root occurs in a glyph",
	ArgsUsage: "<glyph> <root>",
	Action:    runSlices,
}

var cmdRender = cli.Command{
	Name:      "render",
	Usage:     "Rasterize a glyph to PNG",
	ArgsUsage: "<glyph>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Aliases:  []string{"o"},
			Usage:    "PNG file to write",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "size",
			Value: 256,
			Usage: "Image size in pixels",
		},
		&cli.StringFlag{
			Name:  "mask",
			Usage: "Strokes to highlight as a binary mask, first stroke leftmost",
		},
		&cli.StringFlag{
			Name:  "root",
			Usage: "Highlight the first slice of this root",
		},
	},
	Action: runRender,
}

var cmdCompile = cli.Command{
	Name:  "compile",
	Usage: "Compile the root library into a CBOR snapshot",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Aliases:  []string{"o"},
			Usage:    "Snapshot file to write",
			Required: true,
		},
	},
	Action: runCompile,
}

func targetGlyph(ctx *cli.Context, name string) (curve.Glyph, error) {
	doc, err := loadTargets(ctx)
	if err != nil {
		return nil, err
	}
	strokes, err := targetStrokes(doc, name)
	if err != nil {
		return nil, err
	}

	return curve.RenderGlyph(strokes), nil
}

func runTopology(ctx *cli.Context) error {
	name, err := firstArg(ctx, "glyph")
	if err != nil {
		return err
	}
	g, err := targetGlyph(ctx, name)
	if err != nil {
		return err
	}
	t := topology.Build(g)
	w := ctx.App.Writer
	for i := range t.Matrix {
		for j := 0; j < i; j++ {
			fmt.Fprintf(w, "%d %d %s\n", i, j, topology.Format(t.Matrix[i][j]))
		}
	}
	for _, p := range t.Oriented {
		fmt.Fprintf(w, "oriented %d %d\n", p.I, p.J)
	}

	return nil
}

// findSlices matches the library root named root against g.
func findSlices(ctx *cli.Context, name string, g curve.Glyph, root string) ([]mask.Mask, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	lib, err := loadLibrary(ctx)
	if err != nil {
		return nil, err
	}
	r, ok := lib.Root(root)
	if !ok {
		return nil, fmt.Errorf("%w: %q", library.ErrUnknownGlyph, root)
	}
	target := match.NewSubject(name, g)
	sub := match.Subject{Name: r.Name, Glyph: r.Glyph, Topology: r.Topology}

	return match.FindSlices(cfg.Engine().Degenerator, target, sub, match.WithContext(ctx.Context))
}

func runSlices(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("slices: expected a glyph and a root, got %d arguments", ctx.NArg())
	}
	name, root := ctx.Args().Get(0), ctx.Args().Get(1)
	g, err := targetGlyph(ctx, name)
	if err != nil {
		return err
	}
	found, err := findSlices(ctx, name, g, root)
	if err != nil {
		return err
	}
	n := len(g)
	for _, m := range found {
		fmt.Fprintf(ctx.App.Writer, "%0*b %v\n", n, uint64(m), m.Indices(n))
	}

	return nil
}

func runRender(ctx *cli.Context) error {
	name, err := firstArg(ctx, "glyph")
	if err != nil {
		return err
	}
	g, err := targetGlyph(ctx, name)
	if err != nil {
		return err
	}
	var hl mask.Mask
	if s := ctx.String("mask"); s != "" {
		v, err := strconv.ParseUint(s, 2, 64)
		if err != nil {
			return fmt.Errorf("render: bad mask %q: %w", s, err)
		}
		hl = mask.Mask(v)
	}
	if root := ctx.String("root"); root != "" {
		found, err := findSlices(ctx, name, g, root)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return fmt.Errorf("render: %q does not occur in %q", root, name)
		}
		hl |= found[0]
	}
	img, err := preview.Render(g, preview.WithSize(ctx.Int("size")), preview.WithHighlight(hl))
	if err != nil {
		return err
	}
	f, err := os.Create(ctx.String("out"))
	if err != nil {
		return err
	}
	if err := preview.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func runCompile(ctx *cli.Context) error {
	lib, err := loadLibrary(ctx)
	if err != nil {
		return err
	}
	out := ctx.String("out")
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := library.EncodeSnapshot(f, lib); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "compiled %d roots to %s\n", lib.Len(), out)

	return nil
}
