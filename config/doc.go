// Package config loads analysis configurations from YAML.
//
//	degenerator:
//	  feature: {提: 横, 竖钩: 竖}
//	  no_cross: false
//	sieves: [length, crossing, attaching, bias, order]
//	roots:
//	  required: [一, 丨, 十]
//	  optional: [土, 士]
//	  accepted: [一, 丨, 十, 土]
//	stroke_roots: true
//	workers: 4
//
// Omitted keys keep their defaults. Unknown keys are rejected.
package config
