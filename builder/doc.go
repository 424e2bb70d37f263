// SPDX-License-Identifier: MIT
//
// Package builder generates deterministic graph fixtures for tests,
// examples and benchmarks.
//
// Simple topologies come back as core.AdjList:
//
//	adj, err := builder.Path(1000)       // 1→2→…→1000
//	tree, err := builder.BinaryTree(15)  // heap-numbered, rooted at 1
//
// Weighted multigraphs come back as *core.MultiGraph, with edge weights drawn
// from a WeightFn:
//
//	g, err := builder.ParallelChain(100, 3,
//	    builder.WithSeed(42),
//	    builder.WithWeightFn(builder.UniformWeightFn(1, 10)))
//
// The same arguments and seed always produce the same graph.
package builder
