// Package zigen decomposes CJK glyphs into roots: smaller glyphs that an
// input method or a study tool treats as building blocks.
//
// 🚀 What is zigen?
//
//	A pure-Go engine that works from stroke geometry alone:
//		• Curves: strokes authored as h/v/c commands, rendered to line and cubic curves
//		• Topology: how every pair of strokes relates (cross, attach, parallel, disjoint)
//		• Matching: where a root occurs in a glyph, as stroke bitmasks
//		• Schemes: every way to cover a glyph with root occurrences
//		• Sieves: lexicographic ranking and selection of one scheme
//
// Under the hood, everything is organized in small packages:
//
//	curve/       stroke commands, curves, rendering, the stroke feature catalog
//	topology/    curve relations and the lower-triangular relation matrix
//	mask/        stroke subsets as uint64 bitmasks
//	match/       root slice matching with feature degeneration and disambiguators
//	scheme/      cover enumeration with interval-sum pruning
//	sieve/       sieve registry, ranking, dominance and selection
//	decompose/   the Engine: library, configuration, caching and batches
//	library/     JSON glyph documents and CBOR library snapshots
//	config/      YAML analysis configuration
//	preview/     PNG previews with highlighted slices
//	cmd/zigen    command line front end
//
// Quick example:
//
//	十 = 一 丨      two strokes crossing once
//	王 = 一 土      with 土 accepted
//	王 = 一 十 一   with only 一 丨 十 in use
//
//	go install github.com/katalvlaran/zigen/cmd/zigen@latest
package zigen
