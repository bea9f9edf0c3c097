package library

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/decompose"
	"github.com/katalvlaran/zigen/topology"
)

// SnapshotVersion is the format version written by EncodeSnapshot.
const SnapshotVersion = 1

type snapshot struct {
	_       struct{} `cbor:",toarray"`
	Version int
	Roots   []snapRoot
}

type snapRoot struct {
	_        struct{} `cbor:",toarray"`
	Name     string
	Strokes  []snapStroke
	Matrix   [][][]uint32
	Oriented [][2]int
}

// snapStroke stores every curve as its flattened control points.
type snapStroke struct {
	_       struct{} `cbor:",toarray"`
	Feature string
	Curves  [][]float64
}

var (
	encMode = mustEncMode()
	decMode = mustDecMode()
)

func mustEncMode() cbor.EncMode {
	m, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}

	return m
}

func mustDecMode() cbor.DecMode {
	m, err := cbor.DecOptions{ExtraReturnErrors: cbor.ExtraDecErrorUnknownField}.DecMode()
	if err != nil {
		panic(err)
	}

	return m
}

// EncodeSnapshot writes lib as deterministic CBOR. Equal libraries encode
// to equal bytes.
func EncodeSnapshot(w io.Writer, lib *decompose.Library) error {
	s := snapshot{Version: SnapshotVersion}
	for _, name := range lib.Names() {
		r, _ := lib.Root(name)
		s.Roots = append(s.Roots, packRoot(r))
	}
	b, err := encMode.Marshal(s)
	if err != nil {
		return fmt.Errorf("library: snapshot: %w", err)
	}
	_, err = w.Write(b)

	return err
}

// DecodeSnapshot reads a library written by EncodeSnapshot.
func DecodeSnapshot(r io.Reader) (*decompose.Library, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("library: snapshot: %w", err)
	}
	var s snapshot
	if err := decMode.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("library: snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, s.Version)
	}
	roots := make([]decompose.Root, len(s.Roots))
	for i, sr := range s.Roots {
		root, err := unpackRoot(sr)
		if err != nil {
			return nil, err
		}
		roots[i] = root
	}

	return decompose.NewLibrary(roots...)
}

func packRoot(r *decompose.Root) snapRoot {
	out := snapRoot{Name: r.Name}
	for _, s := range r.Glyph {
		ss := snapStroke{Feature: s.Feature}
		for _, c := range s.Curves {
			var flat []float64
			for _, p := range c.Controls() {
				flat = append(flat, p.X, p.Y)
			}
			ss.Curves = append(ss.Curves, flat)
		}
		out.Strokes = append(out.Strokes, ss)
	}
	t := r.Topology
	out.Matrix = make([][][]uint32, len(t.Matrix))
	for i, row := range t.Matrix {
		out.Matrix[i] = make([][]uint32, len(row))
		for j, cell := range row {
			packed := make([]uint32, len(cell))
			for k, rel := range cell {
				packed[k] = packRelation(rel)
			}
			out.Matrix[i][j] = packed
		}
	}
	for _, p := range t.Oriented {
		out.Oriented = append(out.Oriented, [2]int{p.I, p.J})
	}

	return out
}

func unpackRoot(sr snapRoot) (decompose.Root, error) {
	if len(sr.Matrix) != len(sr.Strokes) {
		return decompose.Root{}, fmt.Errorf("%w: root %q has %d strokes and %d matrix rows",
			ErrSnapshotCorrupt, sr.Name, len(sr.Strokes), len(sr.Matrix))
	}
	g := make(curve.Glyph, len(sr.Strokes))
	counts := make([]int, len(sr.Strokes))
	for i, ss := range sr.Strokes {
		curves := make([]curve.Curve, len(ss.Curves))
		for k, flat := range ss.Curves {
			c, err := unpackCurve(flat)
			if err != nil {
				return decompose.Root{}, fmt.Errorf("%w: root %q stroke %d", err, sr.Name, i)
			}
			curves[k] = c
		}
		g[i] = curve.RenderedStroke{Feature: ss.Feature, Curves: curves}
		counts[i] = len(curves)
	}
	t := &topology.Topology{Matrix: make([][][]topology.Relation, len(sr.Matrix)), Curves: counts}
	for i, row := range sr.Matrix {
		if len(row) != i {
			return decompose.Root{}, fmt.Errorf("%w: root %q row %d", ErrSnapshotCorrupt, sr.Name, i)
		}
		t.Matrix[i] = make([][]topology.Relation, i)
		for j, cell := range row {
			if len(cell) != counts[i]*counts[j] {
				return decompose.Root{}, fmt.Errorf("%w: root %q cell (%d,%d)", ErrSnapshotCorrupt, sr.Name, i, j)
			}
			rels := make([]topology.Relation, len(cell))
			for k, v := range cell {
				rels[k] = unpackRelation(v)
			}
			t.Matrix[i][j] = rels
		}
	}
	for _, p := range sr.Oriented {
		t.Oriented = append(t.Oriented, topology.Pair{I: p[0], J: p[1]})
	}

	return decompose.Root{Name: sr.Name, Glyph: g, Topology: t}, nil
}

func unpackCurve(flat []float64) (curve.Curve, error) {
	pt := func(k int) curve.Point { return vec.Vec2{X: flat[2*k], Y: flat[2*k+1]} }
	switch len(flat) {
	case 4:
		return curve.NewLinear(pt(0), pt(1)), nil
	case 8:
		return curve.NewBezier(pt(0), pt(1), pt(2), pt(3)), nil
	}

	return nil, fmt.Errorf("%w: curve with %d coordinates", ErrSnapshotCorrupt, len(flat))
}

// packRelation stores a relation in one word. Orders are biased by 2.
func packRelation(r topology.Relation) uint32 {
	return uint32(r.Kind)<<24 |
		uint32(r.First)<<20 | uint32(r.Second)<<16 |
		uint32(r.A+2)<<8 | uint32(r.B+2)
}

func unpackRelation(v uint32) topology.Relation {
	return topology.Relation{
		Kind:   topology.Kind(v >> 24),
		First:  topology.Side(v >> 20 & 0xf),
		Second: topology.Side(v >> 16 & 0xf),
		A:      topology.Order(int8(v>>8&0xff) - 2),
		B:      topology.Order(int8(v&0xff) - 2),
	}
}
