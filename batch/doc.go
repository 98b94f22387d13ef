// Package batch executes many independent path queries in parallel over a
// fixed pool of workers.
//
// Two isolation regimes, chosen per driver:
//
//   - Dijkstra — read-only kernels share the input graph. Every operation
//     they perform is a pure read, so no synchronisation is taken; the
//     caller must not mutate the graph while the batch runs (a contract,
//     not something the driver enforces).
//   - KShortestPath / YenKShortestPath — mutating kernels penalise link
//     costs mid-query, so each worker receives a private deep copy of the
//     graph made once before its query loop. No Node or Link is ever
//     shared between workers.
//
// Scheduling is dynamic: workers steal query indices from one shared
// channel, so an expensive query never leaves siblings idle. Results land
// in a pre-sized slice at their query's index — result[i] always belongs
// to query i, whatever the completion order — and slots are disjoint, so
// no lock guards the result vector.
//
// A query that fails (unknown endpoint, missing cost dimension) records the
// error, tagged with its index, in its own slot; sibling queries continue.
// For any worker count the result vector equals the sequential map of the
// single-query function over the inputs.
//
// Logging goes through an optional *zap.Logger (WithLogger); the default
// is a nop logger and the per-query hot path never logs.
package batch
