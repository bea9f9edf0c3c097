package topology

import (
	"fmt"
	"strings"
)

// Side says which part of a curve takes part in an attachment.
type Side uint8

const (
	// Front is the start point of a curve.
	Front Side = iota
	// Middle is any interior point.
	Middle
	// Back is the end point of a curve.
	Back
)

var sideNames = [...]string{"front", "middle", "back"}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}

	return fmt.Sprintf("side(%d)", s)
}

// Order compares two projected intervals. Negating an Order swaps the roles
// of the two intervals.
type Order int8

const (
	// FarBelow: the first interval ends before the second starts.
	FarBelow Order = -2
	// OverlapBelow: the intervals overlap, the first one starting lower.
	OverlapBelow Order = -1
	// Overlap: one interval contains the other.
	Overlap Order = 0
	// OverlapAbove: the intervals overlap, the first one ending higher.
	OverlapAbove Order = 1
	// FarAbove: the first interval starts after the second ends.
	FarAbove Order = 2
)

func (o Order) String() string {
	switch o {
	case FarBelow:
		return "far-below"
	case OverlapBelow:
		return "overlap-below"
	case Overlap:
		return "overlap"
	case OverlapAbove:
		return "overlap-above"
	case FarAbove:
		return "far-above"
	}

	return fmt.Sprintf("order(%d)", int8(o))
}

// IsFar reports whether o describes two non-overlapping intervals.
func (o Order) IsFar() bool { return o == FarBelow || o == FarAbove }

// Kind is the category of a curve relation.
type Kind uint8

const (
	KindCross Kind = iota
	KindAttach
	KindParallel
	KindDisjoint
)

// Relation describes how one curve relates to another. Relations are
// comparable with ==.
type Relation struct {
	Kind Kind

	// First and Second are set for KindAttach.
	First, Second Side

	// A and B are set for KindParallel (main axis, cross axis) and
	// KindDisjoint (x axis, y axis).
	A, B Order
}

// Crossing returns a Cross relation.
func Crossing() Relation { return Relation{Kind: KindCross} }

// Attached returns an Attach relation.
func Attached(first, second Side) Relation {
	return Relation{Kind: KindAttach, First: first, Second: second}
}

// Parallel returns a Parallel relation.
func Parallel(main, cross Order) Relation {
	return Relation{Kind: KindParallel, A: main, B: cross}
}

// Disjoint returns a Disjoint relation.
func Disjoint(x, y Order) Relation {
	return Relation{Kind: KindDisjoint, A: x, B: y}
}

// Mirror returns the relation seen from the other curve.
func (r Relation) Mirror() Relation {
	switch r.Kind {
	case KindAttach:
		return Attached(r.Second, r.First)
	case KindParallel, KindDisjoint:
		return Relation{Kind: r.Kind, A: -r.A, B: -r.B}
	default:
		return r
	}
}

func (r Relation) String() string {
	switch r.Kind {
	case KindCross:
		return "cross"
	case KindAttach:
		return fmt.Sprintf("attach(%s,%s)", r.First, r.Second)
	case KindParallel:
		return fmt.Sprintf("parallel(%s,%s)", r.A, r.B)
	case KindDisjoint:
		return fmt.Sprintf("disjoint(%s,%s)", r.A, r.B)
	}

	return fmt.Sprintf("relation(%d)", r.Kind)
}

// Equal reports whether two relation lists are identical element-wise.
func Equal(a, b []Relation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Format renders a relation list, e.g. "[cross attach(front,back)]".
func Format(rs []Relation) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Pair names two strokes with I > J.
type Pair struct {
	I, J int
}

// Topology is the strictly lower-triangular relation matrix of a glyph.
type Topology struct {
	// Matrix[i][j] for j < i lists the relations between every curve of
	// stroke i and every curve of stroke j, stroke i's curves outermost.
	Matrix [][][]Relation

	// Curves holds the curve count of every stroke.
	Curves []int

	// Oriented lists stroke pairs drawn in the same direction side by side.
	Oriented []Pair
}

// Len returns the stroke count.
func (t *Topology) Len() int { return len(t.Matrix) }

// Relations returns the relations of stroke i towards stroke j for any
// i != j. For i < j the stored cell is mirrored and reordered so that
// stroke i's curves stay outermost. It returns nil for i == j.
func (t *Topology) Relations(i, j int) []Relation {
	switch {
	case i > j:
		return t.Matrix[i][j]
	case i == j:
		return nil
	}
	stored := t.Matrix[j][i]
	ci, cj := t.Curves[i], t.Curves[j]
	out := make([]Relation, len(stored))
	for a := 0; a < ci; a++ {
		for b := 0; b < cj; b++ {
			out[a*cj+b] = stored[b*ci+a].Mirror()
		}
	}

	return out
}

// Has reports whether any relation between strokes i and j is of kind k.
func (t *Topology) Has(i, j int, k Kind) bool {
	if i == j {
		return false
	}
	if i < j {
		i, j = j, i
	}
	for _, r := range t.Matrix[i][j] {
		if r.Kind == k {
			return true
		}
	}

	return false
}

// IsOriented reports whether strokes i and j form an oriented pair.
func (t *Topology) IsOriented(i, j int) bool {
	if i < j {
		i, j = j, i
	}
	for _, p := range t.Oriented {
		if p.I == i && p.J == j {
			return true
		}
	}

	return false
}

// Restrict returns the topology of the sub-glyph made of the given strokes.
// indices must be strictly increasing.
func (t *Topology) Restrict(indices []int) *Topology {
	pos := make(map[int]int, len(indices))
	sub := &Topology{
		Matrix: make([][][]Relation, len(indices)),
		Curves: make([]int, len(indices)),
	}
	for a, i := range indices {
		pos[i] = a
		sub.Curves[a] = t.Curves[i]
		sub.Matrix[a] = make([][]Relation, a)
		for b := 0; b < a; b++ {
			sub.Matrix[a][b] = t.Matrix[i][indices[b]]
		}
	}
	for _, p := range t.Oriented {
		a, okA := pos[p.I]
		b, okB := pos[p.J]
		if okA && okB {
			sub.Oriented = append(sub.Oriented, Pair{I: a, J: b})
		}
	}

	return sub
}
