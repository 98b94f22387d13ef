// Package batch: query/result types and driver options.
package batch

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/licit-lab/mgraph/core"
	"github.com/licit-lab/mgraph/kshortest"
)

// Query is one origin/destination pair with an optional per-query
// accessible-label set (nil or empty means no filter).
type Query struct {
	Origin      string
	Destination string
	Labels      []string
}

// Result is the outcome of one read-only query: the path, or the error
// that query produced (tagged with its index). Exactly one of the two is
// meaningful; an unreachable destination is a nil-error NoPath result.
type Result struct {
	Path core.PathCost
	Err  error
}

// KResult is the outcome of one alternative-paths query.
type KResult struct {
	Paths []core.PathCost
	Err   error
}

// Options collects driver-level tunables.
type Options struct {
	// Workers is the fixed worker count.
	Workers int

	// Logger receives batch-level progress; never called per query.
	Logger *zap.Logger

	// QueryOptions are forwarded to every kshortest call of a mutating
	// batch. Ignored by the read-only driver.
	QueryOptions []kshortest.Option
}

// Option customizes a driver call via DefaultBatchOptions.
type Option func(*Options)

// DefaultBatchOptions returns hardware-thread workers and a nop logger.
func DefaultBatchOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
		Logger:  zap.NewNop(),
	}
}

// WithWorkers fixes the worker count. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers requires n >= 1")
	}
	return func(o *Options) { o.Workers = n }
}

// WithLogger attaches a structured logger for batch-level events.
// Panics on nil; pass zap.NewNop() to silence explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithQueryOptions forwards kshortest options (penalty factor, label
// propagation, retries) to every query of a mutating batch.
func WithQueryOptions(opts ...kshortest.Option) Option {
	return func(o *Options) { o.QueryOptions = append(o.QueryOptions, opts...) }
}
