package triage

import "sort"

// RankCases orders cases for the staff queue: highest clinical priority
// first, newest first within a tier. The input is not mutated; ranking an
// already-ranked list returns the same order.
func RankCases(cases []*Case) []*Case {
	ranked := make([]*Case, len(cases))
	copy(ranked, cases)

	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := ranked[i].Priority(), ranked[j].Priority()
		if pi != pj {
			return pi > pj
		}
		return ranked[i].CreatedAt().After(ranked[j].CreatedAt())
	})

	return ranked
}
