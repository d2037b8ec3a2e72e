// Package decode turns JSON or YAML text into the value universe the
// matching engine operates on: map[string]any, []any and scalars, plus the
// pattern-only sentinels when the in-document DSL is enabled.
package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/shopspring/decimal"

	"github.com/jacoelho/jsonmatch"
	"github.com/jacoelho/jsonmatch/internal/number"
)

var ErrInvalidPattern = errors.New("invalid pattern construct")

// DSL tokens recognized in pattern documents.
const (
	tokenAny      = "$any"
	tokenEmpty    = "$empty"
	tokenUUID     = "$uuid"
	tokenUnsorted = "$unsorted"
	tokenTuple    = "$tuple"
	tokenRaw      = "$raw"
)

// Options controls how decoded documents are rewritten into engine values.
type Options struct {
	// Decimals converts every number to decimal.Decimal, so 1.10 and 1.1
	// compare equal by numeric value.
	Decimals bool

	// Timestamps converts RFC 3339 strings to time.Time, compared as
	// instants.
	Timestamps bool

	// PatternDSL enables the pattern-side tokens: "$any", "$empty",
	// "$uuid", {"$unsorted": [...]}, {"$tuple": [...]} and the
	// {"$raw": v} escape. Actual-side documents must decode without it.
	PatternDSL bool
}

// JSON decodes a JSON document. Numbers pass through json.Number so no
// precision is lost before the rewrite.
func JSON(data []byte, opts Options) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	return opts.rewrite(v)
}

// YAML decodes a YAML document. YAML is a JSON superset, so this also
// accepts plain JSON input.
func YAML(data []byte, opts Options) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}

	return opts.rewrite(v)
}

// Document decodes by file extension: .yaml and .yml as YAML, everything
// else as JSON.
func Document(name string, data []byte, opts Options) (any, error) {
	if isYAMLName(name) {
		return YAML(data, opts)
	}
	return JSON(data, opts)
}

func isYAMLName(name string) bool {
	for _, ext := range []string{".yaml", ".yml"} {
		if len(name) > len(ext) && name[len(name)-len(ext):] == ext {
			return true
		}
	}
	return false
}

func (o Options) rewrite(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		if o.PatternDSL && len(t) == 1 {
			if out, ok, err := o.rewriteToken(t); ok || err != nil {
				return out, err
			}
		}
		out := make(map[string]any, len(t))
		for k, val := range t {
			rewritten, err := o.rewrite(val)
			if err != nil {
				return nil, err
			}
			out[k] = rewritten
		}
		return out, nil
	case []any:
		return o.rewriteSeq(t)
	case string:
		if o.PatternDSL {
			switch t {
			case tokenAny:
				return jsonmatch.Any, nil
			case tokenEmpty:
				return jsonmatch.EmptyList, nil
			case tokenUUID:
				return jsonmatch.IsUUID, nil
			}
		}
		if o.Timestamps {
			if ts, err := time.Parse(time.RFC3339, t); err == nil {
				return ts, nil
			}
		}
		return t, nil
	case json.Number:
		if o.Decimals {
			parsed, err := decimal.NewFromString(t.String())
			if err != nil {
				return nil, fmt.Errorf("%w: number %q: %v", ErrInvalidPattern, t, err)
			}
			return parsed, nil
		}
		return t, nil
	default:
		if o.Decimals {
			if d, ok := number.ToDecimal(t); ok {
				return d, nil
			}
		}
		return t, nil
	}
}

// rewriteToken handles the single-key DSL wrappers. The boolean reports
// whether the map was a recognized wrapper.
func (o Options) rewriteToken(t map[string]any) (any, bool, error) {
	if raw, ok := t[tokenRaw]; ok {
		literal := o
		literal.PatternDSL = false
		out, err := literal.rewrite(raw)
		return out, true, err
	}

	if elems, ok := t[tokenUnsorted]; ok {
		seq, err := o.tokenSeq(tokenUnsorted, elems)
		if err != nil {
			return nil, true, err
		}
		return jsonmatch.Unsorted(seq...), true, nil
	}

	if elems, ok := t[tokenTuple]; ok {
		seq, err := o.tokenSeq(tokenTuple, elems)
		if err != nil {
			return nil, true, err
		}
		return jsonmatch.Tuple(seq), true, nil
	}

	return nil, false, nil
}

func (o Options) tokenSeq(token string, elems any) ([]any, error) {
	seq, ok := elems.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s requires a sequence, got %T", ErrInvalidPattern, token, elems)
	}
	return o.rewriteSeq(seq)
}

func (o Options) rewriteSeq(seq []any) ([]any, error) {
	out := make([]any, len(seq))
	for i, val := range seq {
		rewritten, err := o.rewrite(val)
		if err != nil {
			return nil, err
		}
		out[i] = rewritten
	}
	return out, nil
}
