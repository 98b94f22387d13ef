// Package core defines the central OrientedGraph, Node, and Link types
// for multi-attribute transportation graphs, together with primitives for
// building, querying, cloning, and merging them.
//
// What:
//
//   - OrientedGraph owns id-keyed catalogs of nodes and directed links.
//   - Node carries a 2-D position, an optional categorical label, forward and
//     reverse adjacency, and a turn-exclusion table forbidding specific
//     predecessor→successor movements.
//   - Link carries a non-negative length, a categorical label used as an
//     access filter, and a map of named non-negative cost dimensions
//     (e.g. "time", "length").
//
// Why:
//
//   - Road and transit networks forbid turns, restrict lanes to vehicle
//     classes, and price the same link differently per criterion; the model
//     keeps all of that on the graph so path kernels stay generic.
//
// Concurrency:
//
//   - Build-then-query. All read operations (adjacency, Exits/Entrances,
//     cost lookups) are lock-free pure reads, so any number of goroutines may
//     query one graph concurrently as long as nobody mutates it. Algorithms
//     that mutate link costs mid-query (see kshortest) must run on a private
//     Clone; the batch package arranges exactly that.
//
// Invariants (hold between any two public operations):
//
//   - For every link L: nodes[L.Upstream] and nodes[L.Downstream] exist, and
//     both endpoints' adjacency maps point at L.
//   - Ids are unique within their kind; adding a link over an existing
//     (upstream, downstream) pair replaces the prior link and evicts its id.
//   - A Link belongs to exactly one graph; Clone never shares objects.
//
// Errors:
//
//	ErrEmptyID              - node or link id is the empty string.
//	ErrDuplicateID          - id already present in the graph.
//	ErrUnknownNode          - referenced node id does not exist.
//	ErrUnknownLink          - referenced link id does not exist.
//	ErrEmptyCosts           - link added without any cost dimension.
//	ErrUnknownCostDimension - cost lookup for a dimension the link lacks.
package core
