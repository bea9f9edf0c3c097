package sieve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zigen/internal/fixture"
	"github.com/katalvlaran/zigen/scheme"
	"github.com/katalvlaran/zigen/sieve"
	"github.com/katalvlaran/zigen/topology"
)

// wang returns the three candidates of 王 for roots 一 丨 十 土 and a
// context over its topology.
func wang() ([]sieve.Candidate, *sieve.Context) {
	cands := []sieve.Candidate{
		{Scheme: scheme.Scheme{8, 4, 2, 1}, Roots: []string{"一", "一", "丨", "一"}},
		{Scheme: scheme.Scheme{8, 6, 1}, Roots: []string{"一", "十", "一"}},
		{Scheme: scheme.Scheme{8, 7}, Roots: []string{"一", "土"}},
	}
	ctx := &sieve.Context{Topology: topology.Build(fixture.Glyph("王"))}

	return cands, ctx
}

func keys(t *testing.T, name string, cands []sieve.Candidate, ctx *sieve.Context) []sieve.Key {
	t.Helper()
	s, err := sieve.Builtin().Lookup(name)
	require.NoError(t, err)
	out := make([]sieve.Key, len(cands))
	for i, c := range cands {
		out[i] = s.Key(ctx, c)
	}

	return out
}

func TestBuiltinKeys(t *testing.T) {
	cands, ctx := wang()
	ctx.Strong = sieve.NewSet("土")
	ctx.Weak = sieve.NewSet("丨")
	ctx.Similar = sieve.NewSet("一")

	cases := []struct {
		name string
		want []sieve.Key
	}{
		{sieve.Length, []sieve.Key{{4}, {3}, {2}}},
		{sieve.Crossing, []sieve.Key{{1}, {0}, {0}}},
		{sieve.Attaching, []sieve.Key{{2}, {2}, {1}}},
		{sieve.Bias, []sieve.Key{{-1, -1, -1, -1}, {-1, -2, -1}, {-1, -3}}},
		{sieve.Order, []sieve.Key{{0, 1, 2, 3}, {0, 1, 2, 3}, {0, 1, 2, 3}}},
		{sieve.Orientation, []sieve.Key{{3}, {3}, {2}}},
		{sieve.Strong, []sieve.Key{{0}, {0}, {-1}}},
		{sieve.Weak, []sieve.Key{{1}, {0}, {0}}},
		{sieve.Similar, []sieve.Key{{3}, {2}, {1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, keys(t, tc.name, cands, ctx))
		})
	}
}

func TestOrderKey_PenOrder(t *testing.T) {
	ctx := &sieve.Context{Topology: topology.Build(fixture.Glyph("丰"))}
	cands := []sieve.Candidate{
		{Scheme: scheme.Scheme{9, 4, 2}, Roots: []string{"十", "一", "一"}},
		{Scheme: scheme.Scheme{8, 5, 2}, Roots: []string{"一", "十", "一"}},
		{Scheme: scheme.Scheme{8, 4, 3}, Roots: []string{"一", "一", "十"}},
	}
	got := keys(t, sieve.Order, cands, ctx)
	require.Equal(t, []sieve.Key{{0, 3, 1, 2}, {0, 1, 3, 2}, {0, 1, 2, 3}}, got)
}

func TestCompare(t *testing.T) {
	require.Equal(t, 0, sieve.Compare(sieve.Key{1, 2}, sieve.Key{1, 2}))
	require.Equal(t, -1, sieve.Compare(sieve.Key{1, 2}, sieve.Key{1, 3}))
	require.Equal(t, 1, sieve.Compare(sieve.Key{2}, sieve.Key{1, 9}))
	require.Equal(t, -1, sieve.Compare(sieve.Key{1}, sieve.Key{1, 0}))
	require.Equal(t, 1, sieve.Compare(sieve.Key{-1, -1}, sieve.Key{-1, -3}))
}

func TestSet(t *testing.T) {
	s := sieve.NewSet("b", "a")
	s.Add("c")
	require.Equal(t, []string{"a", "b", "c"}, s.Sorted())
	require.True(t, sieve.NewSet().SubsetOf(s))
	require.True(t, sieve.NewSet("a").SubsetOf(s))
	require.False(t, s.SubsetOf(sieve.NewSet("a")))
	var empty sieve.Set
	require.False(t, empty.Has("a"))
}
