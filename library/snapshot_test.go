package library_test

import (
	"bytes"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zigen/decompose"
	"github.com/katalvlaran/zigen/internal/fixture"
	"github.com/katalvlaran/zigen/library"
)

func fixtureLibrary(t testing.TB) *decompose.Library {
	t.Helper()
	var roots []decompose.Root
	for _, n := range fixture.Names() {
		r, err := decompose.CompileRoot(n, fixture.Strokes(n))
		require.NoError(t, err)
		roots = append(roots, r)
	}
	lib, err := decompose.NewLibrary(roots...)
	require.NoError(t, err)

	return lib
}

func TestSnapshot_RoundTrip(t *testing.T) {
	lib := fixtureLibrary(t)

	var buf bytes.Buffer
	require.NoError(t, library.EncodeSnapshot(&buf, lib))
	back, err := library.DecodeSnapshot(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	require.Equal(t, lib.Names(), back.Names())
	for _, n := range lib.Names() {
		want, _ := lib.Root(n)
		got, ok := back.Root(n)
		require.True(t, ok, n)
		require.Equal(t, want.Glyph, got.Glyph, n)
		require.Equal(t, want.Topology, got.Topology, n)
	}
}

func TestSnapshot_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, library.EncodeSnapshot(&a, fixtureLibrary(t)))
	require.NoError(t, library.EncodeSnapshot(&b, fixtureLibrary(t)))
	require.Equal(t, a.Bytes(), b.Bytes())
}

func TestSnapshot_Errors(t *testing.T) {
	_, err := library.DecodeSnapshot(bytes.NewReader([]byte{0xff}))
	require.Error(t, err)

	b, err := cbor.Marshal([]any{99, []any{}})
	require.NoError(t, err)
	_, err = library.DecodeSnapshot(bytes.NewReader(b))
	require.ErrorIs(t, err, library.ErrSnapshotVersion)

	// One stroke but no matrix row.
	b, err = cbor.Marshal([]any{library.SnapshotVersion, []any{
		[]any{"一", []any{[]any{"横", []any{[]float64{0, 0, 1, 0}}}}, []any{}, []any{}},
	}})
	require.NoError(t, err)
	_, err = library.DecodeSnapshot(bytes.NewReader(b))
	require.ErrorIs(t, err, library.ErrSnapshotCorrupt)

	b, err = cbor.Marshal([]any{library.SnapshotVersion, []any{
		[]any{"一", []any{[]any{"横", []any{[]float64{0, 0, 1}}}}, []any{[]any{}}, []any{}},
	}})
	require.NoError(t, err)
	_, err = library.DecodeSnapshot(bytes.NewReader(b))
	require.ErrorIs(t, err, library.ErrSnapshotCorrupt)
}
