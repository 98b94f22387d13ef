// Package dijkstra: options and sentinel errors for the path kernel.
package dijkstra

import "errors"

// Sentinel errors returned by the kernel.
var (
	// ErrNilGraph indicates a nil *core.OrientedGraph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyEndpoint indicates an empty origin or destination id.
	ErrEmptyEndpoint = errors.New("dijkstra: origin or destination id is empty")
)

// Options collects the tunable parameters of a single query.
type Options struct {
	// AccessibleLabels restricts traversal to links whose label belongs to
	// the set. The empty set means "no filter": every label is accepted.
	AccessibleLabels map[string]struct{}
}

// Option customizes a query via DefaultOptions.
type Option func(*Options)

// DefaultOptions returns the zero configuration: no label filter.
func DefaultOptions() Options {
	return Options{AccessibleLabels: make(map[string]struct{})}
}

// WithAccessibleLabels restricts the query to links carrying one of the
// given labels. Passing no labels leaves the filter empty (all labels
// accepted), so per-query label slices can be forwarded verbatim.
func WithAccessibleLabels(labels ...string) Option {
	return func(o *Options) {
		for _, label := range labels {
			o.AccessibleLabels[label] = struct{}{}
		}
	}
}

// Accessible reports whether a link label passes the filter.
func (o *Options) Accessible(label string) bool {
	if len(o.AccessibleLabels) == 0 {
		return true
	}
	_, ok := o.AccessibleLabels[label]

	return ok
}
