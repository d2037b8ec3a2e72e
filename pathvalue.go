package jsonmatch

import (
	"errors"
	"fmt"

	"github.com/theory/jsonpath"
)

var (
	ErrEmptyPath    = errors.New("JSONPath expression is empty")
	ErrPathNotFound = errors.New("JSONPath matched no value")
)

// PathValue selects a sub-value of doc by RFC 9535 JSONPath, so a pattern
// can be matched against one fragment of a larger document. When the
// expression selects multiple values the first is returned.
func PathValue(doc any, pathExpr string) (any, error) {
	if pathExpr == "" {
		return nil, ErrEmptyPath
	}

	path, err := jsonpath.Parse(pathExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %s: %w", pathExpr, err)
	}

	results := path.Select(doc)
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, pathExpr)
	}

	return results[0], nil
}
