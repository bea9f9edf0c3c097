package decompose_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zigen/decompose"
	"github.com/katalvlaran/zigen/internal/fixture"
)

func TestBatch(t *testing.T) {
	lib := library(t, "一", "丨", "十", "土", "士")
	e := engine(t, lib, wangConfig)
	items := []decompose.Item{
		{Name: "王", Strokes: fixture.Strokes("王")},
		{Name: "空"},
		{Name: "十", Strokes: fixture.Strokes("十")},
		{Name: "田", Strokes: fixture.Strokes("田")},
	}

	out, err := e.Batch(context.Background(), items, 3)
	require.NoError(t, err)
	require.Len(t, out, len(items))

	require.NoError(t, out[0].Err)
	require.Equal(t, []string{"一", "土"}, out[0].Result.Sequence)
	require.ErrorIs(t, out[1].Err, decompose.ErrEmptyGlyph)
	require.Nil(t, out[1].Result)
	require.Equal(t, []string{"十"}, out[2].Result.Sequence)
	require.ErrorIs(t, out[3].Err, decompose.ErrNoScheme)
	for i, it := range items {
		require.Equal(t, it.Name, out[i].Name)
	}
}

// Results do not depend on the worker count.
func TestBatch_Deterministic(t *testing.T) {
	lib := library(t, "一", "丨", "十", "土", "士")
	e := engine(t, lib, wangConfig)
	var items []decompose.Item
	for _, n := range fixture.Names() {
		items = append(items, decompose.Item{Name: n, Strokes: fixture.Strokes(n)})
	}
	serial, err := e.Batch(context.Background(), items, 1)
	require.NoError(t, err)
	parallel, err := e.Batch(context.Background(), items, 8)
	require.NoError(t, err)
	for i := range items {
		require.Equal(t, serial[i].Err, parallel[i].Err, items[i].Name)
		if serial[i].Result != nil {
			require.Equal(t, serial[i].Result.Sequence, parallel[i].Result.Sequence, items[i].Name)
		}
	}
}

func TestBatch_Cancelled(t *testing.T) {
	lib := library(t, "一", "十")
	e := engine(t, lib, decompose.Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Batch(ctx, []decompose.Item{{Name: "十", Strokes: fixture.Strokes("十")}}, 0)
	require.ErrorIs(t, err, context.Canceled)
}
