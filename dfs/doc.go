// Package dfs provides depth-first algorithms over a core.AdjList:
//
//   - Recursive / Iterative: first-visit traversal order from a start vertex.
//   - IsAcyclic / DetectCycle: directed cycle detection.
//   - TopologicalSort: reverse post-order of a DAG.
//
// All routines share one visited/state map per call; nothing is copied per
// path, so cyclic inputs stay linear in V + E.
//
// Errors:
//
//   - ErrCycleDetected  TopologicalSort met a back-edge.
//   - context.Canceled  TopologicalSort was cancelled via WithCancelContext.
package dfs
