package study

import (
	"cmp"
	"math"
	"slices"

	"github.com/okoham/ibeam/internal/cantilever"
)

// SortByMass orders summaries by ascending mass, then cost. The sort is
// stable so equal designs keep their candidate order.
func SortByMass(summaries []cantilever.Summary) {
	slices.SortStableFunc(summaries, func(a, b cantilever.Summary) int {
		if c := cmp.Compare(a.Mass, b.Mass); c != 0 {
			return c
		}
		return cmp.Compare(a.Cost, b.Cost)
	})
}

// Feasible returns the summaries whose reserve factors are all at least one.
func Feasible(summaries []cantilever.Summary) []cantilever.Summary {
	out := make([]cantilever.Summary, 0, len(summaries))
	for _, s := range summaries {
		if s.Feasible() {
			out = append(out, s)
		}
	}
	return out
}

// Lightest returns the feasible design with the smallest mass. ok is false
// when no design is feasible.
func Lightest(summaries []cantilever.Summary) (best cantilever.Summary, ok bool) {
	mass := math.Inf(1)
	for _, s := range summaries {
		if s.Feasible() && s.Mass < mass {
			best, mass, ok = s, s.Mass, true
		}
	}
	return best, ok
}
