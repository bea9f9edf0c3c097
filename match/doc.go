// Package match finds every slice of a target glyph that reproduces a root.
//
// A slice is a subset of the target's strokes, in pen order, such that
//
//   - the k-th chosen stroke is feature-equivalent to the k-th root stroke
//     under the active Degenerator, and
//   - the topology restricted to the chosen strokes equals the root's
//     topology exactly.
//
// FindSlices grows partial index lists one root stroke at a time, the way a
// breadth-first walker grows its frontier. For root position r the next
// target index must come after the previously chosen one and leave room for
// the remaining m-r-1 root strokes. Every extension is checked against the
// root's topology row r restricted to the positions chosen so far, so dead
// branches are pruned as soon as they appear.
//
// Survivors are then filtered:
//
//  1. With Degenerator.DisallowCrossing, a slice whose strokes cross any
//     stroke outside it is dropped.
//  2. Roots listed in the disambiguator Table must also satisfy their
//     geometric Predicate (relative stroke length, box enclosure or
//     collinearity). Unlisted roots pass.
//
// Accepted index lists are returned as mask.Mask values in discovery order.
//
// Complexity: O(m · W · m) restricted-row comparisons per surviving partial
// candidate, where W is the window width. In practice the pruning keeps the
// frontier small.
//
// Errors:
//
//   - ErrSubject if a subject's topology is missing or does not fit its glyph.
//   - mask.ErrTooManyStrokes for targets larger than mask.MaxStrokes.
//   - ErrOptionViolation for an invalid option.
//   - ctx.Err() when the context is cancelled between root positions.
package match
