package jsonmatch

// Reporter receives human-readable failure context when a match fails. It is
// purely advisory: wiring one up never changes the returned boolean.
type Reporter interface {
	Report(format string, args ...any)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(format string, args ...any)

// Report calls f.
func (f ReporterFunc) Report(format string, args ...any) {
	f(format, args...)
}

// Option configures a Match call.
type Option func(*options)

type options struct {
	reporter Reporter
}

// WithReporter directs failure context for a failed match to r.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// Match reports whether actual structurally contains pattern. Inputs are
// never mutated and every shape combination resolves to a boolean.
func Match(pattern, actual any, opts ...Option) bool {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	result := Check(pattern, actual)
	if !result.Matched && o.reporter != nil {
		for _, mm := range result.Mismatches {
			o.reporter.Report("%s", mm)
		}
	}
	return result.Matched
}

// Check performs the same containment match as Match and additionally
// returns the mismatches that decided a failure.
func Check(pattern, actual any) Result {
	m := matcher{tracing: true}
	matched := m.compare("$", pattern, actual, true)
	return Result{Matched: matched, Mismatches: m.mismatches}
}
