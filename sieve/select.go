package sieve

import (
	"fmt"
	"sort"
)

// Rank evaluates every candidate under every sieve of order and returns
// them stable-sorted by those keys, sieve after sieve. All candidates start
// usable.
func Rank(cands []Candidate, order []Sieve, ctx *Context) []Ranked {
	if ctx == nil {
		ctx = &Context{}
	}
	ranked := make([]Ranked, len(cands))
	for i, c := range cands {
		ev := make(Evaluation, len(order))
		for _, s := range order {
			ev[s.Name()] = s.Key(ctx, c)
		}
		ranked[i] = Ranked{Candidate: c, Evaluation: ev, Usable: true}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		for _, s := range order {
			if c := Compare(ranked[i].Evaluation[s.Name()], ranked[j].Evaluation[s.Name()]); c != 0 {
				return c < 0
			}
		}

		return false
	})

	return ranked
}

// Dominance fills Optional and marks dominated entries of ranked unusable.
// An entry is dominated when an earlier entry uses a subset of its optional
// roots. Entries after the first one made only of required roots are all
// unusable.
func Dominance(ranked []Ranked, required, optional Set) {
	sets := make([]Set, len(ranked))
	for i := range ranked {
		sets[i] = NewSet()
		for _, r := range ranked[i].Roots {
			if optional.Has(r) && !required.Has(r) {
				sets[i].Add(r)
			}
		}
		ranked[i].Optional = sets[i].Sorted()
	}
	for k := range ranked {
		for e := 0; e < k; e++ {
			if sets[e].SubsetOf(sets[k]) {
				ranked[k].Usable = false
				break
			}
		}
		if allIn(ranked[k].Roots, required) {
			for rest := k + 1; rest < len(ranked); rest++ {
				ranked[rest].Usable = false
			}
			break
		}
	}
}

// Select ranks the candidates, applies Dominance and picks the first usable
// candidate whose roots are all in accepted. The selection is returned
// together with ErrNoConsistentScheme when no candidate qualifies, so that
// callers can still inspect the ranking.
func Select(cands []Candidate, order []Sieve, ctx *Context, required, optional, accepted Set) (*Selection, error) {
	if len(cands) == 0 {
		return nil, ErrNoScheme
	}
	sel := &Selection{Ranked: Rank(cands, order, ctx), Chosen: -1}
	Dominance(sel.Ranked, required, optional)
	for i, r := range sel.Ranked {
		if r.Usable && allIn(r.Roots, accepted) {
			sel.Chosen = i
			return sel, nil
		}
	}

	return sel, fmt.Errorf("%w: %d candidates", ErrNoConsistentScheme, len(cands))
}

func allIn(names []string, s Set) bool {
	for _, n := range names {
		if !s.Has(n) {
			return false
		}
	}

	return true
}
