// Package kshortest: options and sentinel errors.
//
// Option constructors validate their arguments and panic on meaningless
// input; the algorithms themselves never panic on user input.
package kshortest

import (
	"errors"
	"math"
)

// Sentinel errors for the alternative-path algorithms.
var (
	// ErrBadK indicates a requested path count below one.
	ErrBadK = errors.New("kshortest: k must be at least 1")

	// ErrNilGraph indicates a nil *core.OrientedGraph was passed in.
	ErrNilGraph = errors.New("kshortest: graph is nil")
)

const (
	// DefaultPenaltyFactor is the multiplier applied to every cost dimension
	// of a link each time a path found by the heuristic uses it, whether
	// that path is accepted or rejected.
	DefaultPenaltyFactor = 10.0

	// DefaultMaxRetries is the number of consecutive rejected candidates
	// after which the penalty heuristic gives up.
	DefaultMaxRetries = 10
)

// Options collects the tunable parameters shared by both variants.
type Options struct {
	// AccessibleLabels is the label filter. Yen forwards it to every kernel
	// call; the penalty heuristic only when PropagateLabels is set.
	AccessibleLabels []string

	// PropagateLabels forwards AccessibleLabels to the penalty heuristic's
	// internal kernel calls.
	PropagateLabels bool

	// PenaltyFactor multiplies every cost dimension of a used link.
	PenaltyFactor float64

	// MaxRetries bounds consecutive rejections in the penalty loop.
	MaxRetries int
}

// Option customizes a call via DefaultKOptions.
type Option func(*Options)

// DefaultKOptions returns the default configuration: factor 10, ten
// retries, no label filter, no propagation.
func DefaultKOptions() Options {
	return Options{
		PenaltyFactor: DefaultPenaltyFactor,
		MaxRetries:    DefaultMaxRetries,
	}
}

// WithAccessibleLabels restricts traversal to links carrying one of the
// given labels. An empty call leaves the filter off.
func WithAccessibleLabels(labels ...string) Option {
	return func(o *Options) {
		o.AccessibleLabels = append(o.AccessibleLabels, labels...)
	}
}

// WithLabelPropagation forwards the accessible-label set to the penalty
// heuristic's internal kernel calls. Filtering the penalised re-runs
// changes which alternatives surface, so it is opt-in.
func WithLabelPropagation() Option {
	return func(o *Options) { o.PropagateLabels = true }
}

// WithPenaltyFactor overrides the cost multiplier. Panics unless f > 1 and
// finite: a factor at or below one cannot push the search off a used link.
func WithPenaltyFactor(f float64) Option {
	if f <= 1 || math.IsInf(f, 1) || math.IsNaN(f) {
		panic("kshortest: WithPenaltyFactor requires a finite factor > 1")
	}
	return func(o *Options) { o.PenaltyFactor = f }
}

// WithMaxRetries overrides the consecutive-rejection budget of the penalty
// loop. Panics if n < 1.
func WithMaxRetries(n int) Option {
	if n < 1 {
		panic("kshortest: WithMaxRetries requires n >= 1")
	}
	return func(o *Options) { o.MaxRetries = n }
}
