// Package gridgraph builds synthetic Manhattan grids for benchmarks and
// stress tests.
//
// What:
//
//   - Manhattan(n, ℓ) produces an n×n grid of nodes spaced ℓ apart,
//     four-connected in both directions, ringed by four compass arrays of
//     n virtual boundary nodes (WEST_i, EAST_i, NORTH_i, SOUTH_i) each
//     linked bidirectionally to its grid-edge node.
//   - Every link carries the single cost dimension "length" with value ℓ,
//     and a physical Length of ℓ.
//
// Why:
//
//   - The path kernels and batch drivers need a regular, arbitrarily
//     scalable topology with well-known distances; the compass nodes give
//     benchmarks stable entry points (e.g. NORTH_0 → EAST_0) independent
//     of the grid size.
//
// Complexity:
//
//   - Time and memory O(n²): n²+4n nodes, 4n(n−1)+8n links.
//
// Errors:
//
//	ErrBadDimension - n < 1.
//	ErrBadLength    - link length is not a positive finite number.
package gridgraph
