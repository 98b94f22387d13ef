// Package kshortest enumerates alternative paths: up to K distinct routes
// between one origin/destination pair.
//
// Two variants:
//
//   - KShortestPath — a penalty heuristic. Links of every path the kernel
//     finds, accepted or not, are made progressively less attractive by multiplying all their cost
//     dimensions by a factor (default ×10, see WithPenaltyFactor), and the
//     kernel is re-run until K acceptable alternatives accumulate or ten
//     consecutive candidates are rejected. A candidate is acceptable when
//     its physical length differs from the primary path's length by a value
//     inside [minDist, maxDist] and its node sequence is new.
//   - YenKShortestPath — Yen's deviation algorithm. Each node of the last
//     accepted path is tried as a spur point: the next link of every
//     previous result that agrees with that path up to the spur position,
//     and the spur point's exits banned after the root, are priced at +Inf
//     on the queried dimension, a spur path to the destination is
//     computed, and the cheapest candidate is promoted.
//
// Reversible mutation:
//
//   - Both variants mutate link costs mid-computation and therefore must run
//     on a graph no concurrent query shares (the batch package clones one
//     replica per worker). Costs are snapshotted once per link and restored
//     on every return path — including errors and panics — via deferred
//     guards, so the graph is bitwise-identical to its pre-call state when
//     the call unwinds. Returned costs are recomputed under the restored
//     maps.
//
// Label filtering:
//
//   - YenKShortestPath applies WithAccessibleLabels to every internal
//     kernel call. KShortestPath records the set but does not forward it
//     unless WithLabelPropagation is given.
//
// Errors:
//
//	ErrBadK - K < 1.
//	Kernel errors (unknown node, unknown cost dimension) propagate.
package kshortest
