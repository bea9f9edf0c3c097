// Package curve models a pen stroke as a short program of drawing commands
// and renders it into the parametric curves the rest of zigen reasons about.
//
// What:
//
//   - Command: a relative drawing step. Horizontal (h dx), Vertical (v dy)
//     or Cubic (c x1 y1 x2 y2 x3 y3), where all cubic deltas are measured
//     from the point the command starts at.
//   - Stroke: a feature name from the stroke catalog, a start point and an
//     ordered command list.
//   - Curve: either Linear (two control points) or Bezier (four control
//     points). One Curve is produced per command.
//   - Glyph: the rendered form of an ordered stroke list. Order is the pen
//     order and is never reshuffled.
//
// Coordinates live in the authoring box (conventionally 0..100 on both
// axes) with y growing downward. Points are seehuhn.de/go/geom vectors so a
// rendered glyph can be handed directly to path based tooling via
// Glyph.Path.
//
// Complexity:
//
//   - RenderStroke: O(len(Commands)).
//   - Evaluate:     O(1).
//   - Length:       O(1) for Linear, O(k) for Cubic with k flattening steps.
//
// Errors:
//
//   - ErrUnknownCommand  command kind is not h, v or c.
//   - ErrParamCount      parameter count does not match the command kind.
//   - ErrUnknownFeature  feature name is not in the stroke catalog.
//
// Rendering itself has no failure mode: well-formed strokes always render.
// The errors above are reported by Validate, which loaders call before
// handing strokes to the engine.
package curve
