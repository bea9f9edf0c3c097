// Package preview rasterizes rendered glyphs for inspection. Strokes are
// drawn as fixed-width outlines; a slice of the glyph can be highlighted to
// show which strokes a root covers.
package preview
