// Package topology computes how the strokes of a rendered glyph touch each
// other.
//
// For every unordered stroke pair (i, j) with i > j, Build records the
// relation between each curve of stroke i and each curve of stroke j
// (cartesian product, stroke i's curves outermost). A relation is one of:
//
//   - Cross:    the curves pass through each other.
//   - Attach:   the curves touch; First/Second say which part of each curve
//     touches (Front = start, Back = end, Middle = interior).
//   - Parallel: the curves are apart and drawn along the same principal axis;
//     A compares them along that axis, B across it.
//   - Disjoint: the curves are apart and drawn along different axes;
//     A compares them along x, B along y.
//
// Comparisons are Orders on projected intervals: FarBelow, OverlapBelow,
// Overlap (one interval nests in the other), OverlapAbove, FarAbove.
//
// The decision procedure for a curve pair runs in this order:
//
//  1. Attach test: shared exact endpoint, or an endpoint lying strictly
//     inside a linear curve.
//  2. Both linear: signed-area test decides Cross.
//  3. Otherwise: recursive subdivision of both curves until their boxes are
//     smaller than one unit; a hit near a tip becomes Attach, else Cross.
//  4. Apart: Parallel or Disjoint.
//
// Build also collects oriented pairs: two single-segment strokes drawn in
// the same direction, side by side. They feed ranking heuristics only.
//
// Complexity:
//
//   - Build: O(S²·C²) relations for S strokes of at most C curves each;
//     the subdivision search is bounded by maxDepth.
//
// A Topology is immutable after Build and safe for concurrent reads.
package topology
