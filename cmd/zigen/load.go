package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/zigen/config"
	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/decompose"
	"github.com/katalvlaran/zigen/library"
)

func isSnapshot(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cbor", ".snap":
		return true
	}

	return false
}

func loadLibrary(ctx *cli.Context) (*decompose.Library, error) {
	path := ctx.String("roots")
	if isSnapshot(path) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return library.DecodeSnapshot(f)
	}
	doc, err := library.Load(path)
	if err != nil {
		return nil, err
	}

	return doc.Compile()
}

func loadTargets(ctx *cli.Context) (*library.Document, error) {
	path := ctx.String("targets")
	if path == "" {
		path = ctx.String("roots")
		if isSnapshot(path) {
			return nil, fmt.Errorf("--targets is required when --roots is a snapshot")
		}
	}

	return library.Load(path)
}

func loadConfig(ctx *cli.Context) (config.Config, error) {
	if path := ctx.String("config"); path != "" {
		return config.Load(path)
	}

	return config.Default(), nil
}

func newEngine(ctx *cli.Context) (*decompose.Engine, config.Config, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, cfg, err
	}
	lib, err := loadLibrary(ctx)
	if err != nil {
		return nil, cfg, err
	}
	e, err := cfg.NewEngine(lib)

	return e, cfg, err
}

func targetStrokes(doc *library.Document, name string) ([]curve.Stroke, error) {
	g, err := doc.Lookup(name)
	if err != nil {
		return nil, err
	}

	return g.CurveStrokes()
}

// firstArg returns the single positional argument of ctx.
func firstArg(ctx *cli.Context, what string) (string, error) {
	if ctx.NArg() != 1 {
		return "", fmt.Errorf("%s: expected one %s, got %d arguments", ctx.Command.Name, what, ctx.NArg())
	}

	return ctx.Args().First(), nil
}
