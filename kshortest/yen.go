// Package kshortest: Yen's deviation algorithm.
package kshortest

import (
	"fmt"
	"math"
	"sort"

	"github.com/licit-lab/mgraph/core"
	"github.com/licit-lab/mgraph/dijkstra"
)

// YenKShortestPath returns up to k paths from origin to destination in
// non-decreasing cost order, using Yen's deviation algorithm. Root-path
// nodes are not removed from the spur search, so a returned path may
// revisit a node of its root.
//
// For each already-accepted path, every node except the destination is
// tried as a spur point at position i: for every accepted path that agrees
// with it on the first i nodes, the link that path takes out of its i-th
// node is priced at +Inf on costDim, as are the spur point's exits banned
// after arriving from the root; a spur path to the destination is computed
// under that pricing, and root+spur
// becomes a candidate. Costs touched during a spur iteration are restored
// before the next one — and on every error and panic path — so the graph
// is left bitwise-unchanged.
//
// The accessible-label set (WithAccessibleLabels) applies to every internal
// kernel call. If no primary path exists, the result is the single NoPath
// entry.
//
// The graph MUST NOT be shared with concurrent queries for the duration of
// the call; use batch.YenKShortestPath for parallel workloads.
//
// Complexity: O(k · V · (V+E) log V).
func YenKShortestPath(g *core.OrientedGraph, origin, destination, costDim string, k int, opts ...Option) ([]core.PathCost, error) {
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
	kernelOpts := []dijkstra.Option{dijkstra.WithAccessibleLabels(cfg.AccessibleLabels...)}

	first, err := dijkstra.Dijkstra(g, origin, destination, costDim, kernelOpts...)
	if err != nil {
		return nil, err
	}
	accepted := []core.PathCost{first}
	if first.Empty() {
		return accepted, nil
	}

	var candidates []core.PathCost
	for round := 1; round < k; round++ {
		previous := accepted[round-1].Nodes

		// Spur points: every node of the previous path except the
		// destination.
		for i := 0; i+1 < len(previous); i++ {
			candidate, serr := spurCandidate(g, accepted, previous, i, destination, costDim, kernelOpts)
			if serr != nil {
				return nil, serr
			}
			if candidate.Empty() {
				continue
			}
			if !containsPath(candidates, candidate.Nodes) && !containsPath(accepted, candidate.Nodes) {
				candidates = append(candidates, candidate)
			}
		}

		if len(candidates) == 0 {
			break
		}
		// Promote the cheapest candidate; ties break on the node sequence
		// so the enumeration is deterministic.
		sort.SliceStable(candidates, func(a, b int) bool {
			if candidates[a].Cost != candidates[b].Cost {
				return candidates[a].Cost < candidates[b].Cost
			}
			return lessNodes(candidates[a].Nodes, candidates[b].Nodes)
		})
		accepted = append(accepted, candidates[0])
		candidates = candidates[1:]
	}

	return accepted, nil
}

// spurCandidate runs one spur iteration: price away the link at position i
// of every accepted path that agrees with previous on its first i nodes,
// and the spur node's exits banned after the root, compute the spur path,
// and stitch root+spur. The +Inf pricing is snapshotted once per link
// and restored before returning, whatever the outcome.
func spurCandidate(g *core.OrientedGraph, accepted []core.PathCost, previous []string, i int, destination, costDim string, kernelOpts []dijkstra.Option) (candidate core.PathCost, err error) {
	rootPath := previous[: i+1 : i+1]
	spurNode := previous[i]

	// Root cost under the untouched graph, before any pricing below. The
	// root's own links are never priced in this iteration (they precede
	// the spur point), so the order is immaterial.
	rootCost, err := g.PathCost(rootPath, costDim)
	if err != nil {
		return core.NoPath(), fmt.Errorf("kshortest: yen root: %w", err)
	}

	type priced struct {
		link *core.Link
		cost float64
	}
	var pricedOut []priced
	seen := make(map[string]struct{})

	defer func() {
		for _, p := range pricedOut {
			p.link.SetCost(costDim, p.cost)
		}
	}()

	inf := math.Inf(1)
	for _, p := range accepted {
		if len(p.Nodes) <= i+1 || !samePrefix(p.Nodes, previous, i) {
			continue
		}
		link, ok := mustNode(g, p.Nodes[i]).Out(p.Nodes[i+1])
		if !ok {
			// Accepted paths always trace existing links.
			return core.NoPath(), fmt.Errorf("kshortest: yen spur %s→%s: %w", p.Nodes[i], p.Nodes[i+1], core.ErrUnknownLink)
		}
		if _, dup := seen[link.ID]; dup {
			continue
		}
		prior, cerr := link.Cost(costDim)
		if cerr != nil {
			return core.NoPath(), fmt.Errorf("kshortest: yen spur: %w", cerr)
		}
		seen[link.ID] = struct{}{}
		pricedOut = append(pricedOut, priced{link: link, cost: prior})
		link.SetCost(costDim, inf)
	}
	// Exits banned after arriving from the root are priced away too.
	if i > 0 {
		for _, succ := range mustNode(g, spurNode).ExcludedMovements()[previous[i-1]] {
			link, lerr := g.LinkBetween(spurNode, succ)
			if lerr != nil || !link.HasCost(costDim) {
				continue
			}
			prior, _ := link.Cost(costDim)
			if _, dup := seen[link.ID]; !dup {
				seen[link.ID] = struct{}{}
				pricedOut = append(pricedOut, priced{link: link, cost: prior})
				link.SetCost(costDim, inf)
			}
		}
	}

	spur, err := dijkstra.Dijkstra(g, spurNode, destination, costDim, kernelOpts...)
	if err != nil {
		return core.NoPath(), err
	}
	if spur.Empty() {
		// No deviation exists at this spur point; not an error.
		return core.NoPath(), nil
	}

	nodes := make([]string, 0, len(rootPath)+len(spur.Nodes)-1)
	nodes = append(nodes, rootPath...)
	nodes = append(nodes, spur.Nodes[1:]...)

	return core.PathCost{Nodes: nodes, Cost: rootCost + spur.Cost}, nil
}

// samePrefix reports whether a and b agree on their first i elements.
func samePrefix(a, b []string, i int) bool {
	for j := 0; j < i; j++ {
		if a[j] != b[j] {
			return false
		}
	}

	return true
}

// lessNodes orders node sequences lexicographically, shorter first on ties.
func lessNodes(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// mustNode fetches a node that the algorithm's own invariants guarantee to
// exist; absence is a programming error.
func mustNode(g *core.OrientedGraph, id string) *core.Node {
	n, err := g.GetNode(id)
	if err != nil {
		panic(fmt.Sprintf("kshortest: invariant violation: %v", err))
	}

	return n
}
