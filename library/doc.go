// Package library reads and writes glyph documents and compiled root
// snapshots.
//
// A glyph document is JSON:
//
//	{
//	  "glyphs": [
//	    {
//	      "name": "十",
//	      "strokes": [
//	        {"feature": "横", "start": [20, 50], "commands": [{"kind": "h", "params": [60]}]},
//	        {"feature": "竖", "start": [50, 20], "commands": [{"kind": "v", "params": [60]}]}
//	      ]
//	    }
//	  ]
//	}
//
// The same format holds roots and targets. Names are normalized to Unicode
// NFC on decode so that lookups do not depend on how an editor composed
// them.
//
// Compile turns a document into a decompose.Library, rendering every root
// and computing its topology. EncodeSnapshot stores such a library as
// deterministic CBOR so tools can skip the compile step; DecodeSnapshot
// restores it without recomputation.
package library
