// Package mgraph computes shortest and alternative paths on directed,
// weighted, multi-attribute graphs modelling transportation networks.
//
// 🚀 What is mgraph?
//
//	A small, focused routing toolkit that brings together:
//		• Core primitives: nodes, directed links, multi-dimensional cost maps,
//		  categorical labels and per-node movement exclusions
//		• Shortest paths: turn-restricted, label-filtered Dijkstra
//		• Alternatives: penalty-reweighting K-shortest and Yen's deviation algorithm
//		• Batching: parallel drivers for thousands of independent queries
//		• Benchmarks: Manhattan-grid generator with compass boundary nodes
//
// ✨ Why choose mgraph?
//
//   - Transport-native – movement bans and access labels are first-class,
//     not an afterthought bolted onto a textbook graph
//   - Reversible mutation – alternative-path search penalises link costs
//     and restores them on every exit path, so a shared replica never rots
//   - Deterministic – equal-cost ties break on node id, so a query always
//     returns the same path
//
// Everything is organized under five subpackages:
//
//	core/      — OrientedGraph, Node, Link, movement exclusions, clone & merge
//	dijkstra/  — the turn-restricted, label-filtered path kernel
//	kshortest/ — penalty heuristic and Yen's K-alternative paths
//	batch/     — parallel batch drivers (shared graph or per-worker replicas)
//	gridgraph/ — synthetic Manhattan grids for benchmarks
//
// Quick ASCII example:
//
//	    0──▶1
//	    │   │
//	    ▼   ▼
//	    3──▶2
//
//	a square of four nodes and four directed links; forbidding the
//	movement 0→3→2 reroutes dijkstra(0,2) through node 1.
//
//	go get github.com/licit-lab/mgraph
package mgraph
