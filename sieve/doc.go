// Package sieve ranks decomposition schemes and picks the one a caller's
// root configuration accepts.
//
// A Sieve maps a Candidate (a scheme plus the root name behind each slice)
// to a Key, a short vector of ints where smaller is better. Keys compare
// lexicographically, so a scalar metric is a one-element key.
//
// Select runs four steps:
//
//  1. Rank: evaluate every candidate under every sieve and stable-sort by
//     the sieves in order.
//  2. Dominance: walking the ranked list, a candidate is unusable when an
//     earlier candidate's optional-root set is a subset of its own. The walk
//     stops at the first candidate made only of required roots; everything
//     after it is unusable.
//  3. Pick the first usable candidate whose roots are all accepted.
//  4. Report ErrNoScheme for an empty input and ErrNoConsistentScheme when
//     nothing usable is accepted.
//
// Sieves live in an explicit Registry. Builtin returns one pre-populated
// with length, crossing, attaching, bias, order, orientation, similar,
// strong and weak.
//
// Complexity: O(C·S) evaluations plus O(C log C) comparisons for C
// candidates and S sieves; dominance is O(C²·R) for R roots per candidate.
package sieve
