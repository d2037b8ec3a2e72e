package jsonmatch

import (
	"fmt"
	"strings"
)

// Result carries the outcome of a Check together with the mismatches that
// decided a failure. Mismatches is nil when Matched is true.
type Result struct {
	Matched    bool
	Mismatches []Mismatch
}

func (r Result) String() string {
	if r.Matched {
		return "match"
	}

	lines := make([]string, 0, len(r.Mismatches))
	for _, mm := range r.Mismatches {
		lines = append(lines, mm.String())
	}
	return strings.Join(lines, "\n")
}

// Mismatch describes one definitive reason a match failed. Path locates the
// failing fragment in JSONPath notation, "$" being the root. Speculative
// probes inside the list matchers are not reported; a sequence failure is
// reported once, with the pattern elements that could not be located.
type Mismatch struct {
	Path      string
	Pattern   any
	Actual    any
	Absent    bool  // the pattern names an object key the actual does not carry
	Unlocated []any // sequence pattern elements with no remaining counterpart
}

func (m Mismatch) String() string {
	switch {
	case m.Absent:
		return fmt.Sprintf("%s: key is absent, pattern requires %v", m.Path, m.Pattern)
	case len(m.Unlocated) > 0:
		return fmt.Sprintf("%s: elements %v not found in %v", m.Path, m.Unlocated, m.Actual)
	default:
		return fmt.Sprintf("%s: %v does not match pattern %v", m.Path, m.Actual, m.Pattern)
	}
}
