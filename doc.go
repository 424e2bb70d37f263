// Package graphkit is a small collection of graph and sorting algorithms
// built around one idea: shortest trails in weighted multigraphs.
//
// What is inside:
//
//	core/     — MultiGraph (weighted directed multigraph with parallel edges),
//	            AdjList view and adjacency-matrix conversion
//	loader/   — text edge-list parser: "<from> <to> <weight>" per line
//	dijkstra/ — shortest vertex sequence over per-pair minimum weights
//	trail/    — minimum-weight trail with concrete parallel-edge choice,
//	            batch queries and text rendering
//	bfs/      — bounded-distance neighbors and breadth-first walk
//	dfs/      — recursive and iterative DFS, cycle detection, topological sort
//	sorting/  — quicksort and bubble sort with benchmarks
//	builder/  — deterministic fixture graphs (paths, trees, parallel chains)
//
// Typical flow:
//
//	g, err := loader.LoadFile("graph.txt")
//	if err != nil {
//	    return err
//	}
//	t, err := trail.FindMinTrail(g, 1, 4)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(t) // 1 -[1: 2.0]-> 2 -[0: 3.0]-> 3 -[1: 0.5]-> 4  (total = 5.5)
//
//	go get github.com/katalvlaran/graphkit
package graphkit
