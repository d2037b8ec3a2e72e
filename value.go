package jsonmatch

import (
	"fmt"

	"github.com/google/uuid"
)

// Tuple is a fixed-arity ordered collection. It matches positionally like a
// sequence of the same elements, but a Tuple never matches a plain []any and
// is never eligible for unsorted matching.
type Tuple []any

// Matcher lets a pattern position delegate its verdict to custom logic built
// on top of Compare. A Matcher is consulted for every present actual value,
// including null; it is never consulted for an absent object key.
type Matcher interface {
	MatchValue(actual any) bool
}

// Pattern-only sentinels. None of these have an analog on the actual side.
var (
	// Any matches every present value, including null. It does not match an
	// absent object key.
	Any any = wildcard{}

	// EmptyList matches only a sequence of length zero. A plain empty
	// pattern sequence matches any sequence under containment, so a
	// dedicated sentinel is needed to require emptiness.
	EmptyList any = emptyList{}

	// IsUUID matches any string parseable as an RFC 4122 UUID.
	IsUUID Matcher = uuidMatcher{}
)

// Unsorted marks elems for multiset matching: each element must consume a
// distinct element of the actual sequence, order and extras ignored.
func Unsorted(elems ...any) any {
	return unsortedList{elems: elems}
}

type wildcard struct{}

func (wildcard) String() string { return "$any" }

type emptyList struct{}

func (emptyList) String() string { return "$empty" }

type unsortedList struct {
	elems []any
}

func (u unsortedList) String() string { return fmt.Sprintf("unsorted(%v)", u.elems) }

type uuidMatcher struct{}

func (uuidMatcher) MatchValue(actual any) bool {
	s, ok := actual.(string)
	if !ok {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func (uuidMatcher) String() string { return "$uuid" }

// absent is the internal marker for an object key the pattern names but the
// actual does not carry. It is distinct from an explicit null and never
// appears in user-supplied data.
type absent struct{}

func (absent) String() string { return "<absent>" }

func isAbsent(v any) bool {
	_, ok := v.(absent)
	return ok
}
