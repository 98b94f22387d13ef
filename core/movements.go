// Package core: turn-restricted neighbor iteration.
//
// The orientation of the exclusion table is the subtle point of the whole
// model: the key is *where we came from*, and the stored set is *where we
// may not go next*. Exits and Entrances preserve that orientation; the path
// kernels never inspect the table directly.
package core

import "sort"

// Exits returns the outgoing links usable when this node was entered from
// predecessor. Let E = exclude[predecessor] (empty when absent); a link L
// is yielded iff L.Downstream ∉ E. Pass DefaultPredecessor — or the empty
// string, which is normalized to it — when the node is the path origin.
//
// The result is sorted by downstream id so traversal order, and therefore
// tie-breaking in the kernels, is deterministic.
// Complexity: O(deg log deg).
func (n *Node) Exits(predecessor string) []*Link {
	if predecessor == "" {
		predecessor = DefaultPredecessor
	}
	banned := n.exclude[predecessor]

	out := make([]*Link, 0, len(n.adj))
	for downstream, l := range n.adj {
		if _, forbidden := banned[downstream]; forbidden {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Downstream < out[j].Downstream })

	return out
}

// Entrances is the dual of Exits for reverse traversal: the incoming links
// usable when a backward walk reached this node from predecessor. A link L
// is yielded iff L.Upstream ∉ exclude[predecessor].
// Complexity: O(deg log deg).
func (n *Node) Entrances(predecessor string) []*Link {
	if predecessor == "" {
		predecessor = DefaultPredecessor
	}
	banned := n.exclude[predecessor]

	in := make([]*Link, 0, len(n.radj))
	for upstream, l := range n.radj {
		if _, forbidden := banned[upstream]; forbidden {
			continue
		}
		in = append(in, l)
	}
	sort.Slice(in, func(i, j int) bool { return in[i].Upstream < in[j].Upstream })

	return in
}

// Out returns the link leaving this node toward downstream, ignoring any
// movement exclusion. Complexity: O(1).
func (n *Node) Out(downstream string) (*Link, bool) {
	l, ok := n.adj[downstream]
	return l, ok
}

// In returns the link arriving at this node from upstream, ignoring any
// movement exclusion. Complexity: O(1).
func (n *Node) In(upstream string) (*Link, bool) {
	l, ok := n.radj[upstream]
	return l, ok
}

// OutDegree returns the number of outgoing links. Complexity: O(1).
func (n *Node) OutDegree() int { return len(n.adj) }

// InDegree returns the number of incoming links. Complexity: O(1).
func (n *Node) InDegree() int { return len(n.radj) }

// ForbidMovement adds successors to the forbidden set for the given
// predecessor, extending the table seeded by WithExcludeMovements.
// Complexity: O(len(successors)).
func (n *Node) ForbidMovement(predecessor string, successors ...string) {
	set, ok := n.exclude[predecessor]
	if !ok {
		set = make(map[string]struct{}, len(successors))
		n.exclude[predecessor] = set
	}
	for _, s := range successors {
		set[s] = struct{}{}
	}
}

// ExcludedMovements returns a deep copy of the turn-exclusion table, with
// each forbidden-successor set sorted, or nil when the table is empty.
// Intended for diagnostics.
// Complexity: O(T log T) over table entries.
func (n *Node) ExcludedMovements() map[string][]string {
	if len(n.exclude) == 0 {
		return nil
	}
	table := make(map[string][]string, len(n.exclude))
	for pred, set := range n.exclude {
		succs := make([]string, 0, len(set))
		for s := range set {
			succs = append(succs, s)
		}
		sort.Strings(succs)
		table[pred] = succs
	}

	return table
}
