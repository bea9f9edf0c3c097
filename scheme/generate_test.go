package scheme_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zigen/mask"
	"github.com/katalvlaran/zigen/scheme"
)

// wangSlices are the slices of 王 for roots 一 (8, 4, 1), 丨 (2), 十 (6)
// and 土 (7).
var wangSlices = []mask.Mask{8, 4, 1, 2, 6, 7}

func TestGenerate_Wang(t *testing.T) {
	got, err := scheme.Generate(4, wangSlices)
	require.NoError(t, err)
	// 一+丨 rebuilds 十 (6) and 十+一 rebuilds 土 (7).
	require.Equal(t, []scheme.Scheme{{8, 7}}, got)
}

// A glyph that is itself a known root admits no finer scheme.
func TestGenerate_IntervalSumPruning(t *testing.T) {
	got, err := scheme.Generate(3, []mask.Mask{4, 1, 2, 6, 7})
	require.NoError(t, err)
	require.Equal(t, []scheme.Scheme{{7}}, got)

	got, err = scheme.Generate(3, []mask.Mask{4, 1, 2, 6})
	require.NoError(t, err)
	require.Equal(t, []scheme.Scheme{{6, 1}}, got, "一+丨 would rebuild 十")
}

// Rebuilding a known root is pruned wherever the run sits in the glyph.
func TestGenerate_IntervalSumPruning_Inner(t *testing.T) {
	got, err := scheme.Generate(4, []mask.Mask{8, 4, 2, 1, 6})
	require.NoError(t, err)
	require.Equal(t, []scheme.Scheme{{8, 6, 1}}, got)

	got, err = scheme.Generate(3, []mask.Mask{4, 2, 1, 3})
	require.NoError(t, err)
	require.Equal(t, []scheme.Scheme{{4, 3}}, got)

	// Three single-stroke slices can rebuild a run too.
	got, err = scheme.Generate(4, []mask.Mask{8, 4, 2, 1, 7})
	require.NoError(t, err)
	require.Equal(t, []scheme.Scheme{{8, 7}}, got)
}

func TestIntervalSums(t *testing.T) {
	require.Equal(t, []mask.Mask{6, 7}, scheme.IntervalSums(4, wangSlices))
	require.Empty(t, scheme.IntervalSums(4, []mask.Mask{8, 4, 2, 1, 9, 5}))
}

func TestGenerate_Partition(t *testing.T) {
	slices := []mask.Mask{9, 5, 3, 8, 4, 2, 1, 12, 10, 6, 6}
	got, err := scheme.Generate(4, slices)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	seen := map[string]bool{}
	for _, s := range got {
		require.True(t, s.Valid(4), s.Format(4))
		key := s.Format(4)
		require.False(t, seen[key], "duplicate scheme %s", key)
		seen[key] = true
	}
}

func TestGenerate_Edges(t *testing.T) {
	got, err := scheme.Generate(4, nil)
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = scheme.Generate(4, []mask.Mask{8, 4, 2})
	require.NoError(t, err)
	require.Empty(t, got, "stroke 3 cannot be covered")

	_, err = scheme.Generate(4, []mask.Mask{16})
	require.ErrorIs(t, err, scheme.ErrMaskRange)
	_, err = scheme.Generate(4, []mask.Mask{0})
	require.ErrorIs(t, err, scheme.ErrMaskRange)
	_, err = scheme.Generate(65, nil)
	require.ErrorIs(t, err, scheme.ErrTooManyStrokes)
	_, err = scheme.Generate(4, wangSlices, scheme.WithNodeBudget(-1))
	require.ErrorIs(t, err, scheme.ErrOptionViolation)
}

func TestGenerate_Limits(t *testing.T) {
	_, err := scheme.Generate(4, wangSlices, scheme.WithNodeBudget(2))
	require.ErrorIs(t, err, scheme.ErrBudgetExceeded)

	var hooked []scheme.Scheme
	got, err := scheme.Generate(4, wangSlices,
		scheme.WithMaxSchemes(1),
		scheme.WithOnScheme(func(s scheme.Scheme) { hooked = append(hooked, s) }))
	require.NoError(t, err)
	require.Equal(t, []scheme.Scheme{{8, 7}}, got)
	require.Equal(t, got, hooked)
}

// chain returns the single strokes and adjacent pairs of an n-stroke glyph.
func chain(n int) []mask.Mask {
	var out []mask.Mask
	for k := 0; k < n; k++ {
		out = append(out, mask.Bit(n, k))
	}

	return append(out, mask.Runs(n, 2)[:n-1]...)
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := scheme.Generate(20, chain(20), scheme.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestScheme_Valid(t *testing.T) {
	require.True(t, scheme.Scheme{8, 7}.Valid(4))
	require.False(t, scheme.Scheme{8, 6}.Valid(4))
	require.False(t, scheme.Scheme{12, 6, 1}.Valid(4))
	require.False(t, scheme.Scheme{0, 15}.Valid(4))
	require.Equal(t, "1000+0111", scheme.Scheme{8, 7}.Format(4))
}
