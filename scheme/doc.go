// Package scheme enumerates every way to partition a glyph's strokes into
// matched root slices.
//
// A Scheme is a list of slice masks that are pairwise disjoint and together
// cover the full mask of the glyph. Generate finds all of them with a
// depth-first search over partial sums:
//
//  1. Sort and deduplicate the slice masks.
//  2. Build the interval-sum exclusion set: every contiguous run of at least
//     two strokes whose mask equals one of the known slices.
//  3. From partial sum 0, take the first uncovered stroke (the highest bit
//     of the complement) and binary-search the masks lying between that bit
//     and the complement. Each such mask contains the stroke; skip the ones
//     overlapping strokes already used.
//  4. A partial sum assembled from two or more slices that lands in the
//     exclusion set is pruned: it rebuilds a known root from finer pieces.
//  5. Reaching the full mask records a Scheme.
//
// Schemes are returned in discovery order: at every step smaller masks are
// tried first.
//
// Complexity:
//
//   - Worst case exponential in the stroke count; the exclusion set and the
//     first-uncovered-stroke rule keep it small in practice.
//   - Memory: O(n) recursion depth plus the collected schemes.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked every 1024 search nodes.
//   - WithNodeBudget(k)    abort with ErrBudgetExceeded after k nodes.
//   - WithMaxSchemes(k)    stop quietly after k schemes.
//   - WithOnScheme(fn)     hook per recorded scheme.
//
// Errors:
//
//   - ErrTooManyStrokes    if n exceeds mask.MaxStrokes.
//   - ErrMaskRange         if a slice mask is empty or has bits beyond n.
//   - ErrBudgetExceeded    if the node budget is exhausted.
//   - ErrOptionViolation   for invalid options.
//   - ctx.Err()            if the context is done.
package scheme
