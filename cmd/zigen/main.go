// Command zigen decomposes glyphs into roots.
//
//	zigen --roots roots.json --config zigen.yaml decompose 王 丰
//	zigen --roots roots.json --targets glyphs.json batch --workers 8
//	zigen --roots roots.json compile --out roots.cbor
//
// --roots accepts a JSON glyph document or a CBOR snapshot written by
// compile. Glyphs to analyse come from --targets, or from --roots when it
// is a JSON document.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, cancel := installSignals()
	defer cancel()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "zigen"
	app.Usage = "Decompose glyphs into roots"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     "roots",
			Aliases:  []string{"r"},
			Usage:    "Root library: JSON glyph document or CBOR snapshot",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "targets",
			Aliases: []string{"t"},
			Usage:   "JSON glyph document holding the glyphs to analyse (default: --roots)",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML analysis configuration",
		},
	}
	app.Commands = []*cli.Command{
		&cmdDecompose,
		&cmdBatch,
		&cmdTopology,
		&cmdSlices,
		&cmdRender,
		&cmdCompile,
	}

	return app
}

func installSignals() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		signalChannel := make(chan os.Signal, 1)
		signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-signalChannel:
		case <-ctx.Done():
		}
		cancel()
		signal.Reset()
	}()

	return ctx, cancel
}
