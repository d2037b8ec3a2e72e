package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jacoelho/jsonmatch/internal/exit"
)

const (
	// DefaultTimeout bounds a single fetch, or the whole poll loop when
	// -poll is set.
	DefaultTimeout = 30 * time.Second

	// DefaultInterval is the pacing between poll attempts.
	DefaultInterval = time.Second
)

var (
	ErrNoArguments     = errors.New("no arguments provided")
	ErrNoPattern       = errors.New("pattern file is required")
	ErrMultipleInputs  = errors.New("cannot combine a FILE argument with -url")
	ErrTooManyFiles    = errors.New("at most one FILE argument is accepted")
	ErrPollWithoutURL  = errors.New("-poll requires -url")
	ErrInvalidInterval = errors.New("-interval must be positive")
)

// Config represents the complete configuration for the jsonmatch tool.
type Config struct {
	// Pattern and actual sources
	PatternFile string
	ActualFile  string // empty means stdin unless URL is set
	URL         string

	// Matching
	Path       string // optional JSONPath selecting the fragment to match
	Decimals   bool
	Timestamps bool
	Quiet      bool

	// Poll mode
	Poll     bool
	Interval time.Duration
	Timeout  time.Duration
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.PatternFile == "" {
		return ErrNoPattern
	}

	if _, err := os.Stat(c.PatternFile); err != nil {
		return fmt.Errorf("pattern file %s not found: %w", c.PatternFile, err)
	}

	if c.URL != "" && c.ActualFile != "" {
		return ErrMultipleInputs
	}

	if c.Poll && c.URL == "" {
		return ErrPollWithoutURL
	}

	if c.Interval <= 0 {
		return ErrInvalidInterval
	}

	if c.ActualFile != "" {
		if _, err := os.Stat(c.ActualFile); err != nil {
			return fmt.Errorf("actual file %s not found: %w", c.ActualFile, err)
		}
	}

	return nil
}

// PollsPerSecond converts the poll interval into the rate the fetcher expects.
func (c *Config) PollsPerSecond() float64 {
	return float64(time.Second) / float64(c.Interval)
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage and error output since we handle both ourselves
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		pattern    = fs.String("pattern", "", "Pattern file (JSON or YAML, pattern DSL enabled)")
		url        = fs.String("url", "", "Fetch the actual document from this URL instead of a file")
		path       = fs.String("path", "", "JSONPath selecting the fragment of the actual document to match")
		poll       = fs.Bool("poll", false, "Re-fetch -url until the pattern matches or -timeout expires")
		interval   = fs.Duration("interval", DefaultInterval, "Pacing between poll attempts")
		timeout    = fs.Duration("timeout", DefaultTimeout, "Fetch timeout, or overall poll deadline with -poll")
		decimals   = fs.Bool("decimals", false, "Compare numbers as arbitrary-precision decimals")
		timestamps = fs.Bool("timestamps", false, "Compare RFC 3339 strings as timestamps")
		quiet      = fs.Bool("q", false, "Suppress mismatch output")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	files := fs.Args()
	if len(files) > 1 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrTooManyFiles, Usage())
	}

	config := &Config{
		PatternFile: *pattern,
		URL:         *url,
		Path:        *path,
		Poll:        *poll,
		Interval:    *interval,
		Timeout:     *timeout,
		Decimals:    *decimals,
		Timestamps:  *timestamps,
		Quiet:       *quiet,
	}
	if len(files) == 1 {
		config.ActualFile = files[0]
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Usage returns the command-line usage text.
func Usage() string {
	var b strings.Builder

	b.WriteString("Usage: jsonmatch -pattern FILE [options] [FILE]\n\n")
	b.WriteString("Checks whether a JSON or YAML document structurally contains a pattern.\n")
	b.WriteString("The actual document is read from FILE, from -url, or from stdin.\n\n")
	b.WriteString("Options:\n")
	b.WriteString("  -pattern FILE     Pattern file (JSON or YAML, pattern DSL enabled)\n")
	b.WriteString("  -url URL          Fetch the actual document from URL\n")
	b.WriteString("  -path EXPR        Match only the fragment selected by this JSONPath\n")
	b.WriteString("  -poll             Re-fetch -url until the pattern matches or -timeout expires\n")
	b.WriteString("  -interval DUR     Pacing between poll attempts (default 1s)\n")
	b.WriteString("  -timeout DUR      Fetch timeout, or overall poll deadline with -poll (default 30s)\n")
	b.WriteString("  -decimals         Compare numbers as arbitrary-precision decimals\n")
	b.WriteString("  -timestamps       Compare RFC 3339 strings as timestamps\n")
	b.WriteString("  -q                Suppress mismatch output\n")
	b.WriteString("  -h, -help         Show this help message\n\n")
	b.WriteString("Exit codes: 0 match, 1 mismatch, 2 error.\n")

	return b.String()
}
