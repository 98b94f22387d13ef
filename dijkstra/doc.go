// Package dijkstra implements the turn-restricted, label-filtered
// shortest-path kernel over core.OrientedGraph.
//
// What:
//
//   - Single origin/destination query under one named cost dimension.
//   - Candidate exits of a settled node are filtered by that node's
//     turn-exclusion table, keyed by the predecessor recorded during
//     relaxation, and by the optional accessible-label set.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the lazy-decrease-key min-heap.
//   - Space: O(V + E) for distance/predecessor maps and heap entries.
//
// Determinism:
//
//   - The heap orders entries by (distance, node id); the lexicographic
//     secondary key makes equal-distance pops — and therefore the returned
//     path — deterministic. Exits iterates neighbors in sorted order for
//     the same reason.
//
// Turn-restriction fidelity:
//
//   - The kernel keys dist and prev on nodes only and consults prev[u] when
//     expanding u, rather than lifting state to (node, predecessor) pairs.
//     This halves the map sizes, but on
//     graphs where the shortest restricted path must arrive at a node from a
//     non-optimal predecessor it can return a suboptimal or blocked route.
//     Callers needing exactness under dense movement bans should model the
//     critical junctions as expanded nodes instead.
//
// Errors:
//
//	ErrNilGraph      - the graph pointer is nil.
//	ErrEmptyEndpoint - origin or destination id is empty.
//	core.ErrUnknownNode / core.ErrUnknownCostDimension propagate, wrapped.
//
// An unreachable destination is NOT an error: the kernel returns
// core.NoPath() with a nil error.
package dijkstra
