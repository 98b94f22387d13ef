// Package batch: the drivers themselves.
//
// All three drivers share one skeleton: spawn min(cfg.Workers, queries)
// goroutines in an errgroup, feed query indices through an unbuffered channel (dynamic
// work stealing), write each outcome into its pre-sized slot. The mutating
// drivers differ only in cloning one private replica per worker before the
// query loop.
package batch

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/licit-lab/mgraph/core"
	"github.com/licit-lab/mgraph/dijkstra"
	"github.com/licit-lab/mgraph/kshortest"
)

// Dijkstra runs every query against the shared graph and returns the
// positionally aligned result vector: result[i] is the outcome of
// queries[i] for any worker count.
//
// The graph must stay frozen for the duration of the call; the kernels
// only read it. Per-query failures are recorded in their slot and do not
// disturb siblings.
//
// Complexity: O(Σ query) work spread over min(Workers, len(queries))
// goroutines.
func Dijkstra(g *core.OrientedGraph, queries []Query, costDim string, opts ...Option) []Result {
	cfg := DefaultBatchOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make([]Result, len(queries))
	run(cfg, len(queries), func(_ int) *core.OrientedGraph { return g },
		func(replica *core.OrientedGraph, i int) {
			q := queries[i]
			p, err := dijkstra.Dijkstra(replica, q.Origin, q.Destination, costDim,
				dijkstra.WithAccessibleLabels(q.Labels...))
			results[i] = Result{Path: p, Err: indexErr(i, err)}
		})
	cfg.Logger.Debug("dijkstra batch complete",
		zap.Int("queries", len(queries)),
		zap.Int("workers", cfg.Workers))

	return results
}

// KShortestPath runs the penalty heuristic for every query. Each worker
// owns a deep copy of the graph, cloned once before its query loop,
// because the heuristic mutates link costs mid-computation. The input
// graph itself is never written.
//
// Per-query label sets are combined with any WithQueryOptions labels.
func KShortestPath(g *core.OrientedGraph, queries []Query, costDim string, minDist, maxDist float64, k int, opts ...Option) []KResult {
	cfg := DefaultBatchOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make([]KResult, len(queries))
	start := time.Now()
	run(cfg, len(queries), cloneFactory(g, cfg),
		func(replica *core.OrientedGraph, i int) {
			q := queries[i]
			paths, err := kshortest.KShortestPath(replica, q.Origin, q.Destination, costDim,
				minDist, maxDist, k, queryOpts(cfg, q)...)
			results[i] = KResult{Paths: paths, Err: indexErr(i, err)}
		})
	cfg.Logger.Debug("k-shortest batch complete",
		zap.Int("queries", len(queries)),
		zap.Int("workers", cfg.Workers),
		zap.Duration("elapsed", time.Since(start)))

	return results
}

// YenKShortestPath runs Yen's algorithm for every query, with the same
// per-worker replica isolation as KShortestPath.
func YenKShortestPath(g *core.OrientedGraph, queries []Query, costDim string, k int, opts ...Option) []KResult {
	cfg := DefaultBatchOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make([]KResult, len(queries))
	start := time.Now()
	run(cfg, len(queries), cloneFactory(g, cfg),
		func(replica *core.OrientedGraph, i int) {
			q := queries[i]
			paths, err := kshortest.YenKShortestPath(replica, q.Origin, q.Destination, costDim,
				k, queryOpts(cfg, q)...)
			results[i] = KResult{Paths: paths, Err: indexErr(i, err)}
		})
	cfg.Logger.Debug("yen batch complete",
		zap.Int("queries", len(queries)),
		zap.Int("workers", cfg.Workers),
		zap.Duration("elapsed", time.Since(start)))

	return results
}

// run is the shared driver skeleton: a worker pool stealing indices from
// one channel. setup is invoked once per worker (identity for the shared
// graph, Clone for replicas); do executes query i against that worker's
// graph and writes only slot i.
func run(cfg Options, n int, setup func(worker int) *core.OrientedGraph, do func(g *core.OrientedGraph, i int)) {
	if n == 0 {
		return
	}
	workers := cfg.Workers
	if workers > n {
		workers = n
	}

	jobs := make(chan int)
	var grp errgroup.Group
	for w := 0; w < workers; w++ {
		worker := w
		grp.Go(func() error {
			replica := setup(worker)
			for i := range jobs {
				do(replica, i)
			}
			return nil
		})
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	// Workers only report nil; errors travel per-slot. Wait is for joining.
	_ = grp.Wait()
}

// cloneFactory returns a per-worker setup function that deep-copies the
// input graph, so mutating kernels never touch shared state.
func cloneFactory(g *core.OrientedGraph, cfg Options) func(int) *core.OrientedGraph {
	return func(worker int) *core.OrientedGraph {
		cfg.Logger.Debug("cloning replica", zap.Int("worker", worker))
		return g.Clone()
	}
}

// queryOpts builds the kshortest options for one query: driver-level
// options first, then the query's own label set.
func queryOpts(cfg Options, q Query) []kshortest.Option {
	opts := make([]kshortest.Option, 0, len(cfg.QueryOptions)+1)
	opts = append(opts, cfg.QueryOptions...)
	if len(q.Labels) > 0 {
		opts = append(opts, kshortest.WithAccessibleLabels(q.Labels...))
	}

	return opts
}

// indexErr tags a per-query error with its slot index; nil stays nil.
func indexErr(i int, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("batch: query %d: %w", i, err)
}
