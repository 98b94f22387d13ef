// Package kshortest: the penalty-reweighting heuristic.
//
// Snapshot-once is the load-bearing rule: the first time a link is touched
// its whole cost map is saved, and later visits only re-multiply. Restoring
// the saved maps on exit therefore lands exactly on the pre-call state no
// matter how many times a link was penalised in between.
package kshortest

import (
	"fmt"

	"github.com/licit-lab/mgraph/core"
	"github.com/licit-lab/mgraph/dijkstra"
)

// snapshot preserves one link's full cost map as it was before the first
// penalty touched it.
type snapshot struct {
	link  *core.Link
	costs map[string]float64
}

// KShortestPath returns up to k paths from origin to destination whose
// physical lengths differ from the primary path's length by at least
// minDist and at most maxDist.
//
// Protocol: the primary path is computed, its links penalised, and the
// kernel re-run on the penalised graph; each candidate is penalised in
// turn, then accepted if its length offset lies inside the window and its
// node sequence is new. The loop ends after k paths or MaxRetries
// consecutive rejections. All penalties are rolled back before returning
// and every returned cost is recomputed under the restored maps, so
// result costs are comparable and the graph is left bitwise-unchanged.
//
// If no primary path exists the result is the single NoPath entry.
//
// The graph MUST NOT be shared with concurrent queries for the duration of
// the call; use batch.KShortestPath for parallel workloads.
//
// Complexity: O(k · MaxRetries · (V+E) log V); each acceptance resets the
// rejection count.
func KShortestPath(g *core.OrientedGraph, origin, destination, costDim string, minDist, maxDist float64, k int, opts ...Option) (paths []core.PathCost, err error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 1 {
		return nil, ErrBadK
	}
	cfg := DefaultKOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var kernelOpts []dijkstra.Option
	if cfg.PropagateLabels {
		kernelOpts = append(kernelOpts, dijkstra.WithAccessibleLabels(cfg.AccessibleLabels...))
	}

	snapshots := make(map[string]snapshot)

	// Scoped guard: whatever way this call unwinds — normal return, error,
	// or panic — the penalised links are restored first. Cost recomputation
	// only runs on the success path, after restoration.
	defer func() {
		for _, snap := range snapshots {
			snap.link.SetCosts(snap.costs)
		}
		if err != nil {
			paths = nil
			return
		}
		for i := range paths {
			if paths[i].Empty() {
				continue
			}
			c, cerr := g.PathCost(paths[i].Nodes, costDim)
			if cerr != nil {
				paths, err = nil, fmt.Errorf("kshortest: recomputing cost: %w", cerr)
				return
			}
			paths[i].Cost = c
		}
	}()

	first, err := dijkstra.Dijkstra(g, origin, destination, costDim, kernelOpts...)
	if err != nil {
		return nil, err
	}
	paths = append(paths, first)
	if first.Empty() {
		return paths, nil
	}

	firstLength, err := g.PathLength(first.Nodes)
	if err != nil {
		return nil, err
	}
	if err = penalisePath(g, first.Nodes, snapshots, cfg.PenaltyFactor); err != nil {
		return nil, err
	}

	collected, retries := 1, 0
	for collected < k && retries < cfg.MaxRetries {
		candidate, derr := dijkstra.Dijkstra(g, origin, destination, costDim, kernelOpts...)
		if derr != nil {
			return nil, derr
		}
		if candidate.Empty() {
			// Penalties only scale costs, but compounding can overflow a
			// cost to +Inf and cut the last route; count it as a miss.
			retries++
			continue
		}
		if err = penalisePath(g, candidate.Nodes, snapshots, cfg.PenaltyFactor); err != nil {
			return nil, err
		}

		length, lerr := g.PathLength(candidate.Nodes)
		if lerr != nil {
			return nil, lerr
		}
		offset := length - firstLength

		if minDist <= offset && offset <= maxDist && !containsPath(paths, candidate.Nodes) {
			paths = append(paths, candidate)
			collected++
			retries = 0
		} else {
			retries++
		}
	}

	return paths, nil
}

// penalisePath multiplies every cost dimension of every link along nodes by
// factor, snapshotting each link's cost map the first time it is touched.
// Revisited links re-multiply without re-snapshotting: compounding is
// intentional, it makes a heavily reused link progressively less
// attractive.
func penalisePath(g *core.OrientedGraph, nodes []string, snapshots map[string]snapshot, factor float64) error {
	for i := 0; i+1 < len(nodes); i++ {
		link, err := g.LinkBetween(nodes[i], nodes[i+1])
		if err != nil {
			// A kernel-produced path must trace existing links.
			return fmt.Errorf("kshortest: penalising: %w", err)
		}
		if _, seen := snapshots[link.ID]; !seen {
			snapshots[link.ID] = snapshot{link: link, costs: link.Costs()}
		}
		link.ScaleCosts(factor)
	}

	return nil
}

// containsPath reports whether the node sequence already appears in paths.
func containsPath(paths []core.PathCost, nodes []string) bool {
	probe := core.PathCost{Nodes: nodes}
	for _, p := range paths {
		if p.SameNodes(probe) {
			return true
		}
	}

	return false
}
