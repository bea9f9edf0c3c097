package sieve

import "github.com/katalvlaran/zigen/topology"

// Built-in sieve names.
const (
	Length      = "length"
	Crossing    = "crossing"
	Attaching   = "attaching"
	Bias        = "bias"
	Order       = "order"
	Orientation = "orientation"
	Similar     = "similar"
	Strong      = "strong"
	Weak        = "weak"
)

// DefaultOrder is the sieve order used when none is configured.
var DefaultOrder = []string{Length, Crossing, Attaching, Bias, Order}

func builtins() []Sieve {
	return []Sieve{
		NewFunc(Length, lengthKey),
		NewFunc(Crossing, relationKey(topology.KindCross)),
		NewFunc(Attaching, relationKey(topology.KindAttach)),
		NewFunc(Bias, biasKey),
		NewFunc(Order, orderKey),
		NewFunc(Orientation, orientationKey),
		NewFunc(Similar, countKey(func(c *Context) Set { return c.Similar }, 1)),
		NewFunc(Strong, countKey(func(c *Context) Set { return c.Strong }, -1)),
		NewFunc(Weak, countKey(func(c *Context) Set { return c.Weak }, 1)),
	}
}

// lengthKey: fewer roots.
func lengthKey(_ *Context, c Candidate) Key {
	return Key{len(c.Scheme)}
}

// relationKey counts root pairs with at least one stroke pair of kind k
// between them.
func relationKey(k topology.Kind) func(*Context, Candidate) Key {
	return func(ctx *Context, c Candidate) Key {
		n := ctx.Len()
		slices := make([][]int, len(c.Scheme))
		for i := range c.Scheme {
			slices[i] = c.Indices(n, i)
		}
		count := 0
		for a := range slices {
			for b := a + 1; b < len(slices); b++ {
				if related(ctx.Topology, slices[a], slices[b], k) {
					count++
				}
			}
		}

		return Key{count}
	}
}

func related(t *topology.Topology, a, b []int, k topology.Kind) bool {
	for _, i := range a {
		for _, j := range b {
			if t.Has(i, j, k) {
				return true
			}
		}
	}

	return false
}

// biasKey: larger roots first. Slice sizes are negated so that the
// lexicographic minimum puts the biggest root earliest.
func biasKey(_ *Context, c Candidate) Key {
	k := make(Key, len(c.Scheme))
	for i, m := range c.Scheme {
		k[i] = -m.Count()
	}

	return k
}

// orderKey: the stroke indices of all roots, concatenated in scheme order.
// The identity permutation is the best possible value.
func orderKey(ctx *Context, c Candidate) Key {
	n := ctx.Len()
	k := make(Key, 0, n)
	for i := range c.Scheme {
		k = append(k, c.Indices(n, i)...)
	}

	return k
}

// orientationKey: fewer oriented stroke pairs split across two roots.
func orientationKey(ctx *Context, c Candidate) Key {
	n := ctx.Len()
	if n == 0 {
		return Key{0}
	}
	owner := make([]int, n)
	for i, m := range c.Scheme {
		for _, s := range m.Indices(n) {
			owner[s] = i
		}
	}
	count := 0
	for _, p := range ctx.Topology.Oriented {
		if owner[p.I] != owner[p.J] {
			count++
		}
	}

	return Key{count}
}

// countKey counts roots in the set returned by pick, scaled by sign.
func countKey(pick func(*Context) Set, sign int) func(*Context, Candidate) Key {
	return func(ctx *Context, c Candidate) Key {
		set := pick(ctx)
		count := 0
		for _, r := range c.Roots {
			if set.Has(r) {
				count++
			}
		}

		return Key{sign * count}
	}
}
