package library

import (
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/zigen/decompose"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode reads a document, normalizes names and validates it.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("library: decode: %w", err)
	}
	for i := range d.Glyphs {
		d.Glyphs[i].Name = norm.NFC.String(d.Glyphs[i].Name)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Load decodes the document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("library: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes d as indented JSON.
func Encode(w io.Writer, d *Document) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("library: encode: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)

	return err
}

// Validate checks names and strokes of every glyph.
func (d *Document) Validate() error {
	seen := make(map[string]bool, len(d.Glyphs))
	for _, g := range d.Glyphs {
		if g.Name == "" {
			return ErrEmptyName
		}
		if seen[g.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateGlyph, g.Name)
		}
		seen[g.Name] = true
		if _, err := g.CurveStrokes(); err != nil {
			return err
		}
	}

	return nil
}

// Names lists the glyph names in document order.
func (d *Document) Names() []string {
	out := make([]string, len(d.Glyphs))
	for i, g := range d.Glyphs {
		out[i] = g.Name
	}

	return out
}

// Lookup returns the named glyph. name is NFC-normalized first.
func (d *Document) Lookup(name string) (Glyph, error) {
	name = norm.NFC.String(name)
	for _, g := range d.Glyphs {
		if g.Name == name {
			return g, nil
		}
	}

	return Glyph{}, fmt.Errorf("%w: %q", ErrUnknownGlyph, name)
}

// Compile renders every glyph of d as a root.
func (d *Document) Compile() (*decompose.Library, error) {
	roots := make([]decompose.Root, 0, len(d.Glyphs))
	for _, g := range d.Glyphs {
		strokes, err := g.CurveStrokes()
		if err != nil {
			return nil, err
		}
		r, err := decompose.CompileRoot(g.Name, strokes)
		if err != nil {
			return nil, err
		}
		roots = append(roots, r)
	}

	return decompose.NewLibrary(roots...)
}

// Items returns the glyphs of d as batch items.
func (d *Document) Items() ([]decompose.Item, error) {
	out := make([]decompose.Item, len(d.Glyphs))
	for i, g := range d.Glyphs {
		strokes, err := g.CurveStrokes()
		if err != nil {
			return nil, err
		}
		out[i] = decompose.Item{Name: g.Name, Strokes: strokes}
	}

	return out, nil
}

// DecomposeAll runs e over every glyph of d.
func (d *Document) DecomposeAll(ctx context.Context, e *decompose.Engine, workers int) ([]decompose.BatchItem, error) {
	items, err := d.Items()
	if err != nil {
		return nil, err
	}

	return e.Batch(ctx, items, workers)
}
