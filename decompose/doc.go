// Package decompose splits a glyph into a sequence of roots.
//
// An Engine is built once from a compiled Library and a Config and then
// serves any number of Decompose calls, concurrently if needed. One call
// runs the whole pipeline:
//
//  1. Validate and render the strokes, then compute (or fetch from the LRU
//     cache) the target topology.
//  2. Match every configured root against the target (package match). With
//     Config.StrokeRoots every single stroke is also a slice, owned by an
//     implicit required root named after its feature class ("1".."5").
//  3. Enumerate all schemes over the slice masks (package scheme).
//  4. Expand each scheme into one candidate per combination of root names
//     (a mask matched by two roots yields two candidates) and select
//     (package sieve).
//
// Root sets: Required and Optional name the roots searched for. Accepted
// names the optional roots the caller currently allows; required roots are
// always accepted. An empty Accepted list accepts every optional root.
// If Required and Optional are both empty, every library root is required.
//
// Batch decomposes many glyphs in parallel with a bounded worker count;
// per-glyph failures are reported on the item and never abort the batch.
//
// Errors:
//
//   - ErrNilLibrary            if NewEngine gets no library.
//   - ErrInvalidRootReference  if a configured root is not in the library.
//   - sieve.ErrUnknownSieve    if a configured sieve is not registered.
//   - ErrEmptyGlyph            for a glyph without strokes.
//   - ErrTooManyStrokes        for a glyph over mask.MaxStrokes strokes.
//   - ErrNoScheme              if no scheme covers the glyph.
//   - ErrNoConsistentScheme    if no usable scheme uses accepted roots only.
//
// Search failures come wrapped in a *DecompositionError naming the glyph.
package decompose
