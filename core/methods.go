// Package core: OrientedGraph mutation and lookup methods.
//
// Adjacency lives on the nodes themselves (downstream id → *Link forward,
// upstream id → *Link reverse), which gives the path kernels O(1) access to
// a node's exits without an extra catalog hop.
package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a new node with the given id, position, and options.
// Returns ErrEmptyID for an empty id and ErrDuplicateID if the id is
// already present.
// Complexity: O(1) amortized.
func (g *OrientedGraph) AddNode(id string, x, y float64, opts ...NodeOption) error {
	return g.InsertNode(NewNode(id, x, y, opts...))
}

// InsertNode inserts a prebuilt node. The graph takes ownership of n;
// callers must not insert the same *Node into two graphs.
// Returns ErrEmptyID or ErrDuplicateID.
// Complexity: O(1) amortized.
func (g *OrientedGraph) InsertNode(n *Node) error {
	if n == nil || n.ID == "" {
		return ErrEmptyID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("node %q: %w", n.ID, ErrDuplicateID)
	}
	g.nodes[n.ID] = n

	return nil
}

// AddLink inserts a new directed link from upstream to downstream with the
// given length and cost map.
//
// Failure modes:
//   - ErrEmptyID for an empty link id,
//   - ErrDuplicateID if the link id is already present,
//   - ErrUnknownNode if either endpoint is missing,
//   - ErrEmptyCosts if the cost map is empty.
//
// If a link already connects the same ordered (upstream, downstream) pair,
// the prior link is replaced and its id evicted from the catalog. Parallel
// links between the same ordered pair are not supported; relying on the
// replacement behavior is documented but not recommended.
// Complexity: O(1) amortized.
func (g *OrientedGraph) AddLink(id, upstream, downstream string, length float64, costs map[string]float64, opts ...LinkOption) error {
	return g.InsertLink(NewLink(id, upstream, downstream, length, costs, opts...))
}

// InsertLink inserts a prebuilt link, with the same semantics and failure
// modes as AddLink. The graph takes ownership of l.
// Complexity: O(1) amortized.
func (g *OrientedGraph) InsertLink(l *Link) error {
	if l == nil || l.ID == "" {
		return ErrEmptyID
	}
	if _, exists := g.links[l.ID]; exists {
		return fmt.Errorf("link %q: %w", l.ID, ErrDuplicateID)
	}
	up, ok := g.nodes[l.Upstream]
	if !ok {
		return fmt.Errorf("link %q upstream %q: %w", l.ID, l.Upstream, ErrUnknownNode)
	}
	down, ok := g.nodes[l.Downstream]
	if !ok {
		return fmt.Errorf("link %q downstream %q: %w", l.ID, l.Downstream, ErrUnknownNode)
	}
	if len(l.costs) == 0 {
		return fmt.Errorf("link %q: %w", l.ID, ErrEmptyCosts)
	}

	// Replacement: a second link over the same ordered pair evicts the first.
	if prior, exists := up.adj[l.Downstream]; exists {
		delete(g.links, prior.ID)
	}

	up.adj[l.Downstream] = l
	down.radj[l.Upstream] = l
	g.links[l.ID] = l

	return nil
}

// GetNode returns the node with the given id, or ErrUnknownNode.
// Complexity: O(1).
func (g *OrientedGraph) GetNode(id string) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node %q: %w", id, ErrUnknownNode)
	}

	return n, nil
}

// HasNode reports whether a node with the given id exists.
// Complexity: O(1).
func (g *OrientedGraph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// GetLink returns the link with the given id, or ErrUnknownLink.
// Complexity: O(1).
func (g *OrientedGraph) GetLink(id string) (*Link, error) {
	l, ok := g.links[id]
	if !ok {
		return nil, fmt.Errorf("link %q: %w", id, ErrUnknownLink)
	}

	return l, nil
}

// LinkBetween returns the link connecting the ordered pair
// (upstream, downstream), or ErrUnknownLink if no such link exists.
// Returns ErrUnknownNode when upstream itself is missing.
// Complexity: O(1).
func (g *OrientedGraph) LinkBetween(upstream, downstream string) (*Link, error) {
	up, err := g.GetNode(upstream)
	if err != nil {
		return nil, err
	}
	l, ok := up.adj[downstream]
	if !ok {
		return nil, fmt.Errorf("link %s→%s: %w", upstream, downstream, ErrUnknownLink)
	}

	return l, nil
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *OrientedGraph) NodeCount() int { return len(g.nodes) }

// LinkCount returns the number of links. Complexity: O(1).
func (g *OrientedGraph) LinkCount() int { return len(g.links) }

// NodeIDs returns all node ids in ascending order. The slice is fresh and
// safe to mutate.
// Complexity: O(V log V).
func (g *OrientedGraph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// LinkIDs returns all link ids in ascending order. The slice is fresh and
// safe to mutate.
// Complexity: O(E log E).
func (g *OrientedGraph) LinkIDs() []string {
	ids := make([]string, 0, len(g.links))
	for id := range g.links {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// PathLength sums Link.Length along the consecutive node pairs of nodes.
// A path of zero or one node has length 0. Returns ErrUnknownNode or
// ErrUnknownLink if the sequence does not trace existing links.
// Complexity: O(len(nodes)).
func (g *OrientedGraph) PathLength(nodes []string) (float64, error) {
	var length float64
	for i := 0; i+1 < len(nodes); i++ {
		l, err := g.LinkBetween(nodes[i], nodes[i+1])
		if err != nil {
			return 0, err
		}
		length += l.Length
	}

	return length, nil
}

// PathCost sums the given cost dimension along the consecutive node pairs
// of nodes. A path of zero or one node costs 0. Returns ErrUnknownNode,
// ErrUnknownLink, or ErrUnknownCostDimension.
// Complexity: O(len(nodes)).
func (g *OrientedGraph) PathCost(nodes []string, costDim string) (float64, error) {
	var total float64
	for i := 0; i+1 < len(nodes); i++ {
		l, err := g.LinkBetween(nodes[i], nodes[i+1])
		if err != nil {
			return 0, err
		}
		c, err := l.Cost(costDim)
		if err != nil {
			return 0, err
		}
		total += c
	}

	return total, nil
}
