package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/zigen/config"
	"github.com/katalvlaran/zigen/decompose"
	"github.com/katalvlaran/zigen/sieve"
)

var cmdDecompose = cli.Command{
	Name:      "decompose",
	Usage:     "Decompose the named glyphs",
	ArgsUsage: "<glyph>...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Print every ranked candidate with its sieve keys",
		},
	},
	Action: runDecompose,
}

var cmdBatch = cli.Command{
	Name:  "batch",
	Usage: "Decompose every glyph of the target document",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Number of parallel workers (default: from config, else one per CPU)",
		},
	},
	Action: runBatch,
}

func runDecompose(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("decompose: no glyph given")
	}
	e, cfg, err := newEngine(ctx)
	if err != nil {
		return err
	}
	doc, err := loadTargets(ctx)
	if err != nil {
		return err
	}
	w, verbose := ctx.App.Writer, ctx.Bool("verbose")

	var failed int
	for _, name := range ctx.Args().Slice() {
		strokes, err := targetStrokes(doc, name)
		if err != nil {
			fmt.Fprintf(ctx.App.ErrWriter, "%v\n", err)
			failed++
			continue
		}
		res, err := e.Decompose(ctx.Context, name, strokes)
		if err != nil {
			fmt.Fprintf(ctx.App.ErrWriter, "%v\n", err)
			failed++
			var de *decompose.DecompositionError
			if verbose && errors.As(err, &de) && de.Selection != nil {
				printRanking(w, len(strokes), sieveOrder(cfg), de.Selection)
			}
			continue
		}
		fmt.Fprintln(w, res)
		if verbose {
			printRanking(w, len(strokes), sieveOrder(cfg), res.Selection)
		}
	}
	if failed > 0 {
		return fmt.Errorf("decompose: %d of %d glyphs failed", failed, ctx.NArg())
	}

	return nil
}

// batchWorkers picks the flag, then the config, then one worker per CPU.
func batchWorkers(flag, configured int) int {
	switch {
	case flag > 0:
		return flag
	case configured > 0:
		return configured
	default:
		return runtime.NumCPU()
	}
}

func runBatch(ctx *cli.Context) error {
	e, cfg, err := newEngine(ctx)
	if err != nil {
		return err
	}
	doc, err := loadTargets(ctx)
	if err != nil {
		return err
	}
	out, err := doc.DecomposeAll(ctx.Context, e, batchWorkers(ctx.Int("workers"), cfg.Workers))
	if err != nil {
		return err
	}

	var failed int
	for _, it := range out {
		if it.Err != nil {
			fmt.Fprintf(ctx.App.ErrWriter, "%v\n", it.Err)
			failed++
			continue
		}
		fmt.Fprintln(ctx.App.Writer, it.Result)
	}
	if failed > 0 {
		return fmt.Errorf("batch: %d of %d glyphs failed", failed, len(out))
	}

	return nil
}

func sieveOrder(cfg config.Config) []string {
	if len(cfg.Sieves) == 0 {
		return sieve.DefaultOrder
	}

	return cfg.Sieves
}

// printRanking lists the candidates of sel, marking the chosen one with *
// and dominated ones with x.
func printRanking(w io.Writer, n int, order []string, sel *sieve.Selection) {
	for i, r := range sel.Ranked {
		mark := " "
		switch {
		case i == sel.Chosen:
			mark = "*"
		case !r.Usable:
			mark = "x"
		}
		fmt.Fprintf(w, "  %s %s  %s", mark, r.Scheme.Format(n), strings.Join(r.Roots, " "))
		for _, name := range order {
			fmt.Fprintf(w, "  %s=%v", name, r.Evaluation[name])
		}
		if len(r.Optional) > 0 {
			fmt.Fprintf(w, "  optional=%s", strings.Join(r.Optional, ","))
		}
		fmt.Fprintln(w)
	}
}
