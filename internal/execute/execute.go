// Package execute wires the decoder, the fetcher and the matching engine
// into the jsonmatch command.
package execute

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/jsonmatch"
	"github.com/jacoelho/jsonmatch/internal/config"
	"github.com/jacoelho/jsonmatch/internal/decode"
	"github.com/jacoelho/jsonmatch/internal/exit"
	"github.com/jacoelho/jsonmatch/internal/fetch"
)

// Runner executes one containment check according to the parsed config.
type Runner struct {
	config    *config.Config
	fetcher   *fetch.Fetcher
	input     io.Reader
	errOutput io.Writer
}

func New(cfg *config.Config) (*Runner, *exit.Result) {
	return &Runner{
		config:    cfg,
		fetcher:   fetch.New(cfg.Timeout, cfg.PollsPerSecond()),
		input:     os.Stdin,
		errOutput: os.Stderr,
	}, nil
}

// SetInput overrides the stdin source, used by tests.
func (r *Runner) SetInput(in io.Reader) {
	r.input = in
}

// SetErrorOutput overrides the mismatch/error sink, used by tests.
func (r *Runner) SetErrorOutput(w io.Writer) {
	r.errOutput = w
}

func (r *Runner) logf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.errorWriter(), format, args...)
}

func (r *Runner) errorWriter() io.Writer {
	if r.errOutput == nil {
		return io.Discard
	}
	return r.errOutput
}

func (r *Runner) decodeOptions(pattern bool) decode.Options {
	return decode.Options{
		Decimals:   r.config.Decimals,
		Timestamps: r.config.Timestamps,
		PatternDSL: pattern,
	}
}

// Run performs the check and returns the process exit code.
func (r *Runner) Run(ctx context.Context) int {
	pattern, err := r.loadPattern()
	if err != nil {
		r.logf("Error: %v\n", err)
		return exit.CodeError
	}

	if r.config.Poll {
		return r.runPoll(ctx, pattern)
	}

	name, body, err := r.readActual(ctx)
	if err != nil {
		r.logf("Error: %v\n", err)
		return exit.CodeError
	}

	actual, err := decode.Document(name, body, r.decodeOptions(false))
	if err != nil {
		r.logf("Error: %v\n", err)
		return exit.CodeError
	}

	return r.evaluate(pattern, actual)
}

func (r *Runner) loadPattern() (any, error) {
	data, err := os.ReadFile(r.config.PatternFile)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}

	pattern, err := decode.Document(r.config.PatternFile, data, r.decodeOptions(true))
	if err != nil {
		return nil, fmt.Errorf("pattern %s: %w", r.config.PatternFile, err)
	}

	return pattern, nil
}

// readActual returns the document name (for format sniffing) and its bytes.
func (r *Runner) readActual(ctx context.Context) (string, []byte, error) {
	switch {
	case r.config.URL != "":
		body, err := r.fetcher.Get(ctx, r.config.URL)
		return "", body, err
	case r.config.ActualFile != "":
		body, err := os.ReadFile(r.config.ActualFile)
		return r.config.ActualFile, body, err
	default:
		body, err := io.ReadAll(r.input)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "", body, nil
	}
}

// evaluate applies the optional path selection and reports mismatches.
func (r *Runner) evaluate(pattern, actual any) int {
	target, code := r.selectTarget(actual)
	if code != exit.CodeMatch {
		return code
	}

	result := jsonmatch.Check(pattern, target)
	if result.Matched {
		return exit.CodeMatch
	}

	if !r.config.Quiet {
		r.logf("%s\n", result)
	}
	return exit.CodeMismatch
}

// selectTarget narrows actual by the configured JSONPath. A path that
// selects nothing is a mismatch; a path that does not parse is an error.
func (r *Runner) selectTarget(actual any) (any, int) {
	if r.config.Path == "" {
		return actual, exit.CodeMatch
	}

	target, err := jsonmatch.PathValue(actual, r.config.Path)
	if err != nil {
		if errors.Is(err, jsonmatch.ErrPathNotFound) {
			if !r.config.Quiet {
				r.logf("%v\n", err)
			}
			return nil, exit.CodeMismatch
		}
		r.logf("Error: %v\n", err)
		return nil, exit.CodeError
	}

	return target, exit.CodeMatch
}

// runPoll re-fetches the URL until the pattern matches or the timeout
// expires. Attempts are silent; on failure the last payload is reported.
func (r *Runner) runPoll(ctx context.Context, pattern any) int {
	pollCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	accept := func(body []byte) bool {
		actual, err := decode.JSON(body, r.decodeOptions(false))
		if err != nil {
			return false
		}
		target, code := r.matchTargetQuiet(actual)
		if code != exit.CodeMatch {
			return false
		}
		return jsonmatch.Match(pattern, target)
	}

	last, err := r.fetcher.Poll(pollCtx, r.config.URL, accept)
	if err == nil {
		return exit.CodeMatch
	}

	if last == nil {
		r.logf("Error: no payload retrieved from %s: %v\n", r.config.URL, err)
		return exit.CodeError
	}

	actual, decodeErr := decode.JSON(last, r.decodeOptions(false))
	if decodeErr != nil {
		r.logf("Error: last payload from %s: %v\n", r.config.URL, decodeErr)
		return exit.CodeMismatch
	}
	return r.evaluate(pattern, actual)
}

func (r *Runner) matchTargetQuiet(actual any) (any, int) {
	if r.config.Path == "" {
		return actual, exit.CodeMatch
	}
	target, err := jsonmatch.PathValue(actual, r.config.Path)
	if err != nil {
		return nil, exit.CodeMismatch
	}
	return target, exit.CodeMatch
}
