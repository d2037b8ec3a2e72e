// Package jsonmatch checks whether a decoded JSON-like value structurally
// contains a described shape, for use in test assertions against partial
// expectations.
//
// Matching is containment, not equality: extra object keys and extra array
// elements on the actual side are tolerated, while everything named by the
// pattern must be found. Values are the native decoded Go types
// (map[string]any, []any, string, bool, nil and the numeric kinds), plus a
// small pattern-only vocabulary:
//
//   - Any          matches every present value, including null
//   - EmptyList    matches only a zero-length array
//   - Unsorted(..) matches its elements as a multiset, ignoring order
//   - Tuple{..}    a fixed-arity collection, matched positionally
//   - IsUUID       matches any RFC 4122 UUID string
//
// Arrays match as subsequences: Match([]any{2, 4}, []any{1, 2, 3, 4, 5}) is
// true. Both list matchers are deliberately greedy and never backtrack; a
// pattern that could only be satisfied by skipping an earlier candidate in
// favor of a later one is rejected. Objects match by containment:
// Match(map[string]any{"a": 1}, map[string]any{"a": 1, "b": 2}) is true.
//
// time.Time values compare as instants and decimal.Decimal values by numeric
// value, independent of representation.
//
// Every input combination resolves to a boolean; no shape mismatch panics.
package jsonmatch
