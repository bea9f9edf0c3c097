package library_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/decompose"
	"github.com/katalvlaran/zigen/internal/fixture"
	"github.com/katalvlaran/zigen/library"
)

func TestLoad(t *testing.T) {
	doc, err := library.Load("testdata/basic.json")
	require.NoError(t, err)
	require.Equal(t, []string{"一", "丨", "十", "土"}, doc.Names())

	g, err := doc.Lookup("土")
	require.NoError(t, err)
	strokes, err := g.CurveStrokes()
	require.NoError(t, err)
	require.Equal(t, fixture.Strokes("土"), strokes)

	_, err = doc.Lookup("王")
	require.ErrorIs(t, err, library.ErrUnknownGlyph)

	_, err = library.Load("testdata/missing.json")
	require.Error(t, err)
}

func TestDecode_NormalizesNames(t *testing.T) {
	src := `{"glyphs":[{"name":"` + "e\u0301" + `","strokes":[{"feature":"横","start":[0,0],"commands":[{"kind":"h","params":[1]}]}]}]}`
	doc, err := library.Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, "\u00e9", doc.Glyphs[0].Name)

	_, err = doc.Lookup("e\u0301")
	require.NoError(t, err)
}

func TestDecode_Invalid(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"empty name", `{"glyphs":[{"name":"","strokes":[]}]}`, library.ErrEmptyName},
		{"duplicate", `{"glyphs":[{"name":"一"},{"name":"一"}]}`, library.ErrDuplicateGlyph},
		{"long kind", `{"glyphs":[{"name":"一","strokes":[{"feature":"横","commands":[{"kind":"hh","params":[1]}]}]}]}`, library.ErrBadCommand},
		{"unknown kind", `{"glyphs":[{"name":"一","strokes":[{"feature":"横","commands":[{"kind":"q","params":[1]}]}]}]}`, curve.ErrUnknownCommand},
		{"params", `{"glyphs":[{"name":"一","strokes":[{"feature":"横","commands":[{"kind":"c","params":[1]}]}]}]}`, curve.ErrParamCount},
		{"feature", `{"glyphs":[{"name":"一","strokes":[{"feature":"圈","commands":[]}]}]}`, curve.ErrUnknownFeature},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := library.Decode(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := library.Decode(strings.NewReader(`{"glyphs":`))
	require.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	doc := &library.Document{}
	for _, n := range fixture.Names() {
		doc.Glyphs = append(doc.Glyphs, library.FromStrokes(n, fixture.Strokes(n)))
	}
	var buf bytes.Buffer
	require.NoError(t, library.Encode(&buf, doc))

	back, err := library.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, doc, back)
}

func TestCompile(t *testing.T) {
	doc, err := library.Load("testdata/basic.json")
	require.NoError(t, err)
	lib, err := doc.Compile()
	require.NoError(t, err)
	require.Equal(t, 4, lib.Len())

	r, ok := lib.Root("十")
	require.True(t, ok)
	want, err := decompose.CompileRoot("十", fixture.Strokes("十"))
	require.NoError(t, err)
	require.Equal(t, want.Topology, r.Topology)
}

func TestDecomposeAll(t *testing.T) {
	roots, err := library.Load("testdata/basic.json")
	require.NoError(t, err)
	lib, err := roots.Compile()
	require.NoError(t, err)
	e, err := decompose.NewEngine(lib, decompose.Config{
		Required: []string{"一", "丨", "十"},
		Optional: []string{"土"},
	})
	require.NoError(t, err)

	targets, err := library.Load("testdata/targets.json")
	require.NoError(t, err)
	out, err := targets.DecomposeAll(context.Background(), e, 2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "王", out[0].Name)
	require.NoError(t, out[0].Err)
	require.Equal(t, []string{"一", "土"}, out[0].Result.Sequence)
	require.ErrorIs(t, out[1].Err, decompose.ErrNoScheme)
}
