// Package core: deep copy and disjoint merge.
//
// Clone is the isolation primitive of the whole library: the mutating batch
// driver hands each worker its own replica, so no Node or Link is ever
// shared across goroutines that write.
package core

import "fmt"

// cloneDetached returns a copy of n with empty adjacency, ready for
// insertion into a fresh graph; InsertLink rewires adjacency afterwards.
func (n *Node) cloneDetached() *Node {
	c := NewNode(n.ID, n.X, n.Y)
	c.Label = n.Label
	for pred, set := range n.exclude {
		copySet := make(map[string]struct{}, len(set))
		for s := range set {
			copySet[s] = struct{}{}
		}
		c.exclude[pred] = copySet
	}

	return c
}

// clone returns a deep copy of l, including the cost map.
func (l *Link) clone() *Link {
	return NewLink(l.ID, l.Upstream, l.Downstream, l.Length, l.costs, WithLinkLabel(l.Label))
}

// Clone returns a deep copy of the graph: every Node and Link is duplicated,
// including turn-exclusion tables and cost maps. The clone shares no object
// with the receiver, so mutating one graph can never be observed through
// the other.
// Complexity: O(V + E).
func (g *OrientedGraph) Clone() *OrientedGraph {
	out := NewOrientedGraph()
	for id, n := range g.nodes {
		out.nodes[id] = n.cloneDetached()
	}
	for id, l := range g.links {
		nl := l.clone()
		out.nodes[nl.Upstream].adj[nl.Downstream] = nl
		out.nodes[nl.Downstream].radj[nl.Upstream] = nl
		out.links[id] = nl
	}

	return out
}

// Merge returns a fresh graph containing every node and link of every input
// graph. Inputs must be disjoint: a node or link id appearing twice yields
// ErrDuplicateID and no partial result. The inputs are never mutated and
// share no objects with the merged graph.
// Complexity: O(Σ(V+E)) plus sorting for deterministic error reporting.
func Merge(graphs ...*OrientedGraph) (*OrientedGraph, error) {
	out := NewOrientedGraph()
	for _, g := range graphs {
		if g == nil {
			continue
		}
		for _, id := range g.NodeIDs() {
			if err := out.InsertNode(g.nodes[id].cloneDetached()); err != nil {
				return nil, fmt.Errorf("merge: %w", err)
			}
		}
	}
	// Second pass: all endpoints exist in the union before any link lands.
	for _, g := range graphs {
		if g == nil {
			continue
		}
		for _, id := range g.LinkIDs() {
			l := g.links[id]
			if _, exists := out.links[id]; exists {
				return nil, fmt.Errorf("merge: link %q: %w", id, ErrDuplicateID)
			}
			if err := out.InsertLink(l.clone()); err != nil {
				return nil, fmt.Errorf("merge: %w", err)
			}
		}
	}

	return out, nil
}
