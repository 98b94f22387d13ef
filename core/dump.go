// Package core: human-readable dumps for debugging and small examples.
package core

import (
	"fmt"
	"io"
	"strings"
)

// DumpNodes writes one line per node, in id order, to w.
// Format: Node(id, [x, y]).
func (g *OrientedGraph) DumpNodes(w io.Writer) {
	for _, id := range g.NodeIDs() {
		n := g.nodes[id]
		fmt.Fprintf(w, "Node(%s, [%g, %g])\n", n.ID, n.X, n.Y)
	}
}

// DumpLinks writes one line per link, in id order, to w.
// Format: Link(id, upstream, downstream).
func (g *OrientedGraph) DumpLinks(w io.Writer) {
	for _, id := range g.LinkIDs() {
		l := g.links[id]
		fmt.Fprintf(w, "Link(%s, %s, %s)\n", l.ID, l.Upstream, l.Downstream)
	}
}

// String returns a compact one-line summary of the graph.
func (g *OrientedGraph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "OrientedGraph(%d nodes, %d links)", len(g.nodes), len(g.links))

	return b.String()
}
