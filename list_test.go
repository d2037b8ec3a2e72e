package jsonmatch

import (
	"testing"
)

func TestOrderedSubsequence(t *testing.T) {
	tests := []struct {
		name    string
		pattern []any
		actual  []any
		want    bool
	}{
		{name: "both_empty", pattern: []any{}, actual: []any{}, want: true},
		{name: "empty_pattern_matches_any", pattern: []any{}, actual: []any{1, 2, 3}, want: true},
		{name: "identical", pattern: []any{1, 2, 3}, actual: []any{1, 2, 3}, want: true},
		{name: "gaps_allowed", pattern: []any{2, 4}, actual: []any{1, 2, 3, 4, 5}, want: true},
		{name: "leading_and_trailing_extras", pattern: []any{2}, actual: []any{1, 2, 3}, want: true},
		{name: "actual_exhausted", pattern: []any{1, 2, 3}, actual: []any{1, 2}, want: false},
		{name: "order_matters", pattern: []any{2, 1}, actual: []any{1, 2}, want: false},
		{name: "element_absent", pattern: []any{6}, actual: []any{1, 2, 3}, want: false},
		{name: "duplicates_consume_distinct_elements", pattern: []any{2, 2}, actual: []any{2}, want: false},
		{name: "duplicates_found_in_order", pattern: []any{2, 2}, actual: []any{1, 2, 3, 2}, want: true},
		{
			name:    "nested_maps_match_by_containment",
			pattern: []any{map[string]any{"a": 1}},
			actual:  []any{map[string]any{"b": 2}, map[string]any{"a": 1, "c": 3}},
			want:    true,
		},
		{
			name: "nested_failure_propagates",
			pattern: []any{
				map[string]any{"a": 1, "b": []any{2, 3, map[string]any{"x": []any{4, 5}}}},
				9,
				10,
			},
			actual: []any{
				map[string]any{"a": 1, "b": []any{2, 3, map[string]any{"x": []any{4}}}},
				9,
				10,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.pattern, tt.actual); got != tt.want {
				t.Fatalf("Match(%v, %v) = %v, want %v", tt.pattern, tt.actual, got, tt.want)
			}
		})
	}
}

// The ordered matcher always consumes the first qualifying element and never
// backtracks. The scan has no second pass: once an element is consumed or
// skipped it is never revisited.
func TestOrderedGreedyConsumption(t *testing.T) {
	// Any consumes the 3; the literal 3 then finds nothing after it.
	pattern := []any{Any, 3}
	actual := []any{3}

	if got := Match(pattern, actual); got {
		t.Fatalf("Match(%v, %v) = true, want false", pattern, actual)
	}

	// With an element before the 3 the wildcard binds to it instead.
	actual = []any{1, 3}
	if got := Match(pattern, actual); !got {
		t.Fatalf("Match(%v, %v) = false, want true", pattern, actual)
	}
}

func TestUnsortedContainment(t *testing.T) {
	tests := []struct {
		name    string
		pattern any
		actual  any
		want    bool
	}{
		{name: "order_irrelevant", pattern: Unsorted(1, 2), actual: []any{3, 2, 1}, want: true},
		{name: "element_missing", pattern: Unsorted(1, 2), actual: []any{3, 1}, want: false},
		{name: "duplicates_all_required", pattern: Unsorted(2, 2, 4), actual: []any{4, 2, 2}, want: true},
		{name: "duplicates_with_extras", pattern: Unsorted(2, 2, 4), actual: []any{4, 2, 1, 2, 0}, want: true},
		{name: "duplicates_not_reusable", pattern: Unsorted(2, 2), actual: []any{2, 1}, want: false},
		{name: "empty_pattern_matches_any", pattern: Unsorted(), actual: []any{1, 2}, want: true},
		{name: "empty_pattern_matches_empty", pattern: Unsorted(), actual: []any{}, want: true},
		{name: "non_sequence_actual_map", pattern: Unsorted(1), actual: map[string]any{"a": 1}, want: false},
		{name: "non_sequence_actual_scalar", pattern: Unsorted(1), actual: 1, want: false},
		{name: "non_sequence_actual_null", pattern: Unsorted(1), actual: nil, want: false},
		{name: "tuple_not_eligible", pattern: Unsorted(1), actual: Tuple{1}, want: false},
		{
			name:    "nested_maps",
			pattern: Unsorted(map[string]any{"a": 1}, map[string]any{"b": 2}),
			actual:  []any{map[string]any{"b": 2, "x": 0}, map[string]any{"a": 1}},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.pattern, tt.actual); got != tt.want {
				t.Fatalf("Match(%v, %v) = %v, want %v", tt.pattern, tt.actual, got, tt.want)
			}
		})
	}
}

// Greedy pool consumption is part of the contract: Any takes the first pool
// element even when a different pairing would satisfy the whole pattern.
func TestUnsortedGreedyBlindSpot(t *testing.T) {
	pattern := Unsorted(Any, 1)
	actual := []any{1, 2}

	if got := Match(pattern, actual); got {
		t.Fatalf("Match(%v, %v) = true, want false", pattern, actual)
	}

	// Reordering the pattern sidesteps the blind spot.
	pattern = Unsorted(1, Any)
	if got := Match(pattern, actual); !got {
		t.Fatalf("Match(%v, %v) = false, want true", pattern, actual)
	}
}

func TestTuples(t *testing.T) {
	tests := []struct {
		name    string
		pattern any
		actual  any
		want    bool
	}{
		{name: "identical", pattern: Tuple{1, 2}, actual: Tuple{1, 2}, want: true},
		{name: "subsequence", pattern: Tuple{1, 2}, actual: Tuple{1, 2, 3}, want: true},
		{name: "actual_too_short", pattern: Tuple{1, 2}, actual: Tuple{1}, want: false},
		{name: "empty_pattern", pattern: Tuple{}, actual: Tuple{1, 2}, want: true},
		{name: "nested_tuples", pattern: Tuple{Tuple{1}}, actual: Tuple{Tuple{1, 2}, 3}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.pattern, tt.actual); got != tt.want {
				t.Fatalf("Match(%v, %v) = %v, want %v", tt.pattern, tt.actual, got, tt.want)
			}
		})
	}
}

func TestEmptyListSentinel(t *testing.T) {
	tests := []struct {
		name   string
		actual any
		want   bool
	}{
		{name: "empty_sequence", actual: []any{}, want: true},
		{name: "non_empty_sequence", actual: []any{1}, want: false},
		{name: "map", actual: map[string]any{}, want: false},
		{name: "null", actual: nil, want: false},
		{name: "scalar", actual: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(EmptyList, tt.actual); got != tt.want {
				t.Fatalf("Match(EmptyList, %v) = %v, want %v", tt.actual, got, tt.want)
			}
		})
	}
}
