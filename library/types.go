package library

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/zigen/curve"
)

var (
	// ErrEmptyName is returned for a glyph without a name.
	ErrEmptyName = errors.New("library: glyph name is empty")

	// ErrDuplicateGlyph is returned when a document repeats a name.
	ErrDuplicateGlyph = errors.New("library: duplicate glyph")

	// ErrUnknownGlyph is returned by Lookup for a missing name.
	ErrUnknownGlyph = errors.New("library: unknown glyph")

	// ErrBadCommand is returned for a command kind that is not one letter.
	ErrBadCommand = errors.New("library: malformed command")

	// ErrSnapshotVersion is returned for a snapshot of another format version.
	ErrSnapshotVersion = errors.New("library: unsupported snapshot version")

	// ErrSnapshotCorrupt is returned for a snapshot that decodes but does
	// not describe a valid library.
	ErrSnapshotCorrupt = errors.New("library: corrupt snapshot")
)

// Document is a list of named glyphs.
type Document struct {
	Glyphs []Glyph `json:"glyphs"`
}

// Glyph is one named glyph of a document.
type Glyph struct {
	Name    string   `json:"name"`
	Strokes []Stroke `json:"strokes"`
}

// Stroke is the document form of curve.Stroke.
type Stroke struct {
	Feature  string     `json:"feature"`
	Start    [2]float64 `json:"start"`
	Commands []Command  `json:"commands"`
}

// Command is the document form of curve.Command.
type Command struct {
	Kind   string    `json:"kind"`
	Params []float64 `json:"params"`
}

// CurveStrokes converts g into validated curve strokes.
func (g Glyph) CurveStrokes() ([]curve.Stroke, error) {
	out := make([]curve.Stroke, len(g.Strokes))
	for i, s := range g.Strokes {
		cmds := make([]curve.Command, len(s.Commands))
		for j, c := range s.Commands {
			if len(c.Kind) != 1 {
				return nil, fmt.Errorf("%w: %q in %q stroke %d", ErrBadCommand, c.Kind, g.Name, i)
			}
			cmds[j] = curve.Command{Kind: curve.Kind(c.Kind[0]), Params: append([]float64(nil), c.Params...)}
		}
		cs := curve.Stroke{
			Feature:  s.Feature,
			Start:    vec.Vec2{X: s.Start[0], Y: s.Start[1]},
			Commands: cmds,
		}
		if err := cs.Validate(); err != nil {
			return nil, fmt.Errorf("library: %q stroke %d: %w", g.Name, i, err)
		}
		out[i] = cs
	}

	return out, nil
}

// FromStrokes builds the document form of a glyph.
func FromStrokes(name string, strokes []curve.Stroke) Glyph {
	g := Glyph{Name: name, Strokes: make([]Stroke, len(strokes))}
	for i, s := range strokes {
		cmds := make([]Command, len(s.Commands))
		for j, c := range s.Commands {
			cmds[j] = Command{Kind: c.Kind.String(), Params: append([]float64(nil), c.Params...)}
		}
		g.Strokes[i] = Stroke{Feature: s.Feature, Start: [2]float64{s.Start.X, s.Start.Y}, Commands: cmds}
	}

	return g
}
