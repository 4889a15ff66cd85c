package feedvalidator

import (
	"runtime"
	"time"
)

// Option configures the validator.
type Option func(*Options)

// Options holds all configuration for a validation run.
type Options struct {
	// Now is the reference time for time-relative checks (preorder
	// availability dates). The zero value means "capture time.Now at the
	// start of each feed run"; a run never re-samples the clock per rule.
	Now time.Time

	// Mode is the severity policy to apply.
	Mode SpecMode

	// MaxErrors stops evaluating further records after this many errors
	// (0 = unlimited). Records already evaluated keep their results.
	MaxErrors int

	// Fields is the fields-of-interest list for the field report.
	// nil means DefaultReportFields.
	Fields []string

	// WorkerCount is the number of goroutines used for record fan-out.
	WorkerCount int

	// ParallelRecords enables validating records concurrently.
	ParallelRecords bool

	// CollectMetrics enables performance metric collection.
	CollectMetrics bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		Mode:            ModeBalanced,
		MaxErrors:       0, // unlimited
		WorkerCount:     runtime.NumCPU(),
		ParallelRecords: true,
		CollectMetrics:  true,
	}
}

// WithNow pins the reference time used for time-relative checks.
// Required for deterministic results in tests.
func WithNow(now time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// WithMode sets the severity policy.
func WithMode(mode SpecMode) Option {
	return func(o *Options) {
		o.Mode = mode
	}
}

// WithMaxErrors sets the error budget for a feed run (0 = unlimited).
func WithMaxErrors(n int) Option {
	return func(o *Options) {
		o.MaxErrors = n
	}
}

// WithFields overrides the fields-of-interest list for the field
// report. An empty list limits the report to what the rules inspect.
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

// WithWorkerCount sets the number of fan-out goroutines.
// Values <= 0 fall back to runtime.NumCPU().
func WithWorkerCount(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		o.WorkerCount = n
	}
}

// WithParallelRecords enables or disables concurrent record validation.
// Disabling it is useful when debugging rule modules.
func WithParallelRecords(enable bool) Option {
	return func(o *Options) {
		o.ParallelRecords = enable
	}
}

// WithMetrics enables or disables metric collection.
func WithMetrics(enable bool) Option {
	return func(o *Options) {
		o.CollectMetrics = enable
	}
}
