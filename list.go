package jsonmatch

import (
	"slices"
	"strconv"
)

// matchOrdered checks subsequence containment: pattern elements must appear,
// in order, among actual elements, gaps allowed. A single forward scan moves
// two cursors and never backtracks; the first qualifying actual element is
// always taken, so an assignment reachable only by skipping an earlier
// candidate in favor of a later one is rejected. An exhausted pattern matches
// regardless of remaining actual elements, so an empty pattern matches any
// sequence.
func (m *matcher) matchOrdered(path string, pattern, actual []any, record bool) bool {
	next := 0
	for i, av := range actual {
		if next == len(pattern) {
			break
		}
		if m.compare(m.indexPath(path, i), pattern[next], av, false) {
			next++
		}
	}
	if next == len(pattern) {
		return true
	}
	return m.failList(path, pattern[next:], actual, record)
}

// matchUnsorted checks multiset containment: each pattern element consumes
// the first remaining actual element it compares equal to, and consumed
// elements are never reused. Greedy consumption can reject a pattern that a
// different pairing would satisfy; that approximation is part of the
// contract. Cost is O(|pattern| x |actual|).
func (m *matcher) matchUnsorted(path string, pattern, actual []any, record bool) bool {
	pool := slices.Clone(actual)
	for _, pv := range pattern {
		found := -1
		for i, av := range pool {
			if m.compare(path, pv, av, false) {
				found = i
				break
			}
		}
		if found < 0 {
			return m.failList(path, []any{pv}, actual, record)
		}
		pool = slices.Delete(pool, found, found+1)
	}
	return true
}

func (m *matcher) failList(path string, unlocated, actual []any, record bool) bool {
	if record && m.tracing {
		m.mismatches = append(m.mismatches, Mismatch{
			Path:      path,
			Actual:    actual,
			Unlocated: slices.Clone(unlocated),
		})
	}
	return false
}

func (m *matcher) indexPath(path string, index int) string {
	if !m.tracing {
		return path
	}
	return path + "[" + strconv.Itoa(index) + "]"
}
