// Package dijkstra: the kernel itself — classical lazy-deletion Dijkstra
// with per-node turn restrictions and link-label filtering.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/licit-lab/mgraph/core"
)

// Dijkstra computes the cheapest path from origin to destination under the
// given cost dimension.
//
// Behavior highlights:
//
//   - Candidate exits of a settled node u come from u.Exits(prev[u]): the
//     movement ban is applied against the predecessor recorded during
//     relaxation (see the package doc for the fidelity trade-off).
//   - Links whose label falls outside a non-empty accessible set are
//     invisible to the query.
//   - origin == destination returns ([origin], 0) without touching the heap.
//   - An unreachable destination returns core.NoPath() and a nil error.
//
// The kernel never mutates the graph; concurrent queries over one frozen
// graph are safe.
//
// Errors: ErrNilGraph, ErrEmptyEndpoint, core.ErrUnknownNode for a missing
// endpoint, core.ErrUnknownCostDimension for a traversed link that lacks
// costDim.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.OrientedGraph, origin, destination, costDim string, opts ...Option) (core.PathCost, error) {
	if g == nil {
		return core.NoPath(), ErrNilGraph
	}
	if origin == "" || destination == "" {
		return core.NoPath(), ErrEmptyEndpoint
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := g.GetNode(origin); err != nil {
		return core.NoPath(), fmt.Errorf("dijkstra: origin: %w", err)
	}
	if _, err := g.GetNode(destination); err != nil {
		return core.NoPath(), fmt.Errorf("dijkstra: destination: %w", err)
	}

	if origin == destination {
		return core.PathCost{Nodes: []string{origin}, Cost: 0}, nil
	}

	s := &search{
		g:       g,
		costDim: costDim,
		opts:    cfg,
		dist:    make(map[string]float64, g.NodeCount()),
		prev:    make(map[string]string, g.NodeCount()),
	}

	return s.run(origin, destination)
}

// search holds the mutable state of a single query.
type search struct {
	g       *core.OrientedGraph
	costDim string
	opts    Options
	dist    map[string]float64 // node id → best known distance from origin
	prev    map[string]string  // node id → predecessor on that best path
	pq      nodePQ
}

// run executes the main loop: pop the closest unsettled node, stop when the
// destination is settled, relax its admissible exits otherwise.
func (s *search) run(origin, destination string) (core.PathCost, error) {
	s.dist[origin] = 0
	s.prev[origin] = "" // origin has no predecessor; Exits normalizes ""
	heap.Init(&s.pq)
	heap.Push(&s.pq, &nodeItem{id: origin, dist: 0})

	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*nodeItem)
		u := item.id

		// Lazy deletion: a stale entry carries an outdated distance.
		if item.dist > s.dist[u] {
			continue
		}

		// Loop invariant: dist[u] is final once u is popped fresh, so the
		// first fresh pop of the destination ends the query.
		if u == destination {
			return core.PathCost{Nodes: s.reconstruct(origin, destination), Cost: s.dist[u]}, nil
		}

		if err := s.relax(u); err != nil {
			return core.NoPath(), err
		}
	}

	// Heap exhausted without settling the destination: no path. Success.
	return core.NoPath(), nil
}

// relax expands the admissible exits of u and improves neighbor distances.
func (s *search) relax(u string) error {
	node, err := s.g.GetNode(u)
	if err != nil {
		// A settled node vanishing mid-query is a broken invariant, not a
		// user error.
		panic(fmt.Sprintf("dijkstra: settled node %q missing from graph: %v", u, err))
	}

	du := s.dist[u]
	for _, link := range node.Exits(s.prev[u]) {
		if !s.opts.Accessible(link.Label) {
			continue
		}
		w, err := link.Cost(s.costDim)
		if err != nil {
			return fmt.Errorf("dijkstra: relaxing %q: %w", u, err)
		}

		neighbor := link.Downstream
		newDist := du + w

		best, seen := s.dist[neighbor]
		if !seen {
			best = math.Inf(1)
		}
		if newDist < best {
			s.dist[neighbor] = newDist
			s.prev[neighbor] = u
			heap.Push(&s.pq, &nodeItem{id: neighbor, dist: newDist})
		}
	}

	return nil
}

// reconstruct walks prev from destination back to origin and reverses.
func (s *search) reconstruct(origin, destination string) []string {
	nodes := []string{destination}
	for v := s.prev[destination]; v != origin; v = s.prev[v] {
		nodes = append(nodes, v)
	}
	nodes = append(nodes, origin)
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return nodes
}

// nodeItem is one heap entry: a node id and the tentative distance it was
// pushed with.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id). The secondary
// lexicographic key keeps equal-distance pops deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
