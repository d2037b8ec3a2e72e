package jsonmatch

import (
	"reflect"
	"time"

	"github.com/jacoelho/jsonmatch/internal/number"
)

// Compare reports whether a and b are interchangeable for matching purposes.
// It is the base pairwise relation the structural matchers recurse through,
// exposed so callers can reuse it for ad hoc leaf comparisons or build
// Matcher extensions on top of it.
//
// Dispatch, in priority order: timestamp instants, object containment,
// sequence subsequence containment, tuple positional containment, unsorted
// multiset containment, the pattern sentinels, then scalar equality. Numeric
// kinds compare by value across representations; all other scalars require
// equal type and value. Mismatched shapes are false, never a panic.
func Compare(a, b any) bool {
	var m matcher
	return m.compare("$", a, b, false)
}

// matcher carries the optional mismatch trace through one evaluation. The
// zero value performs a plain boolean match.
type matcher struct {
	tracing    bool
	mismatches []Mismatch
}

// compare implements the relation for one pattern/actual pair. record marks
// call sites whose failure decides the overall outcome; speculative probes
// inside the list matchers pass false so the trace only carries definitive
// mismatches.
func (m *matcher) compare(path string, pattern, actual any, record bool) bool {
	switch p := pattern.(type) {
	case time.Time:
		if t, ok := actual.(time.Time); ok && p.Equal(t) {
			return true
		}
		return m.fail(path, pattern, actual, record)
	case map[string]any:
		obj, ok := actual.(map[string]any)
		if !ok {
			return m.fail(path, pattern, actual, record)
		}
		return m.matchMap(path, p, obj, record)
	case []any:
		seq, ok := actual.([]any)
		if !ok {
			return m.fail(path, pattern, actual, record)
		}
		return m.matchOrdered(path, p, seq, record)
	case Tuple:
		tup, ok := actual.(Tuple)
		if !ok {
			return m.fail(path, pattern, actual, record)
		}
		return m.matchOrdered(path, p, tup, record)
	case unsortedList:
		seq, ok := actual.([]any)
		if !ok {
			return m.fail(path, pattern, actual, record)
		}
		return m.matchUnsorted(path, p.elems, seq, record)
	case wildcard:
		if isAbsent(actual) {
			return m.fail(path, pattern, actual, record)
		}
		return true
	case emptyList:
		if seq, ok := actual.([]any); ok && len(seq) == 0 {
			return true
		}
		return m.fail(path, pattern, actual, record)
	case Matcher:
		if !isAbsent(actual) && p.MatchValue(actual) {
			return true
		}
		return m.fail(path, pattern, actual, record)
	default:
		if equalScalars(pattern, actual) {
			return true
		}
		return m.fail(path, pattern, actual, record)
	}
}

// matchMap checks object containment: every pattern key must be satisfied,
// keys present only in actual are ignored. Absent keys compare against the
// internal absent marker so Any still requires presence.
func (m *matcher) matchMap(path string, pattern, actual map[string]any, record bool) bool {
	for k, pv := range pattern {
		av, ok := actual[k]
		if !ok {
			av = absent{}
		}
		if !m.compare(m.keyPath(path, k), pv, av, record) {
			return false
		}
	}
	return true
}

func equalScalars(a, b any) bool {
	if da, ok := number.ToDecimal(a); ok {
		db, ok := number.ToDecimal(b)
		return ok && da.Equal(db)
	}
	return reflect.DeepEqual(a, b)
}

func (m *matcher) keyPath(path, key string) string {
	if !m.tracing {
		return path
	}
	return path + "." + key
}

func (m *matcher) fail(path string, pattern, actual any, record bool) bool {
	if record && m.tracing {
		mm := Mismatch{Path: path, Pattern: pattern}
		if isAbsent(actual) {
			mm.Absent = true
		} else {
			mm.Actual = actual
		}
		m.mismatches = append(m.mismatches, mm)
	}
	return false
}
