// Package mask encodes stroke subsets of a glyph as bit masks.
//
// For an n-stroke glyph, stroke k maps to bit n-1-k, so the first stroke is
// the most significant bit and numeric order follows pen order: a slice
// covering earlier strokes compares greater. The full glyph is 2^n - 1.
//
// Masks are uint64, which caps glyphs at MaxStrokes strokes.
package mask

import (
	"errors"
	"math/bits"
)

// MaxStrokes is the largest glyph a Mask can describe.
const MaxStrokes = 64

// ErrTooManyStrokes is returned when a glyph exceeds MaxStrokes.
var ErrTooManyStrokes = errors.New("mask: glyph exceeds 64 strokes")

// Mask is a set of stroke indices.
type Mask uint64

// Check validates a stroke count.
func Check(n int) error {
	if n > MaxStrokes {
		return ErrTooManyStrokes
	}

	return nil
}

// Full returns the mask holding all n strokes.
func Full(n int) Mask {
	if n >= MaxStrokes {
		return ^Mask(0)
	}

	return Mask(1)<<uint(n) - 1
}

// Bit returns the mask of stroke k in an n-stroke glyph.
func Bit(n, k int) Mask { return Mask(1) << uint(n-1-k) }

// FromIndices builds a mask from stroke indices.
func FromIndices(n int, indices []int) Mask {
	var m Mask
	for _, k := range indices {
		m |= Bit(n, k)
	}

	return m
}

// Indices lists the strokes of m in ascending order.
func (m Mask) Indices(n int) []int {
	out := make([]int, 0, m.Count())
	for k := 0; k < n; k++ {
		if m&Bit(n, k) != 0 {
			out = append(out, k)
		}
	}

	return out
}

// IndicesToBinary returns the index-list encoder for n-stroke glyphs.
func IndicesToBinary(n int) func([]int) Mask {
	return func(indices []int) Mask { return FromIndices(n, indices) }
}

// BinaryToIndices returns the decoder matching IndicesToBinary(n).
func BinaryToIndices(n int) func(Mask) []int {
	return func(m Mask) []int { return m.Indices(n) }
}

// Count returns the number of strokes in m.
func (m Mask) Count() int { return bits.OnesCount64(uint64(m)) }

// Has reports whether stroke k of an n-stroke glyph is in m.
func (m Mask) Has(n, k int) bool { return m&Bit(n, k) != 0 }

// Overlaps reports whether m and o share a stroke.
func (m Mask) Overlaps(o Mask) bool { return m&o != 0 }

// High returns the most significant set bit of m, or 0 for the empty mask.
// In pen order this is the first stroke of m.
func (m Mask) High() Mask {
	if m == 0 {
		return 0
	}

	return Mask(1) << uint(63-bits.LeadingZeros64(uint64(m)))
}

// Runs returns every contiguous run of at least minLen strokes of an
// n-stroke glyph, i.e. all masks of the form Full(l) << s with l >= minLen.
func Runs(n, minLen int) []Mask {
	var out []Mask
	for l := minLen; l <= n; l++ {
		for s := 0; s+l <= n; s++ {
			out = append(out, Full(l)<<uint(s))
		}
	}

	return out
}
