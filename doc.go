// Package negpath computes shortest paths on weighted directed graphs whose
// edge weights may be negative.
//
// What is inside?
//
//	Three engines over one immutable graph model:
//		• Bellman-Ford: single source, negative weights, negative-cycle detection
//		• Dijkstra: single source, non-negative weights, heap or ordered-set frontier
//		• Johnson: all pairs, built from Bellman-Ford potentials and Dijkstra runs
//
// Why negpath?
//
//   - Unreached is a tag, not a magic large number: no sentinel arithmetic.
//   - Errors are values: negative cycles come back as wrapped sentinels.
//   - Directionality is chosen when the graph is built, never by the engine.
//
// Packages:
//
//	core/        - Edge, Graph, Distance, the Augment transform
//	bellmanford/ - relaxation passes and the verification pass
//	dijkstra/    - frontier-driven single-source search
//	johnson/     - potentials, reweighting, all-pairs table
//	builder/     - deterministic random and fixed-shape graphs
//	converters/  - gonum bridge and an independent all-pairs oracle
//	graphio/     - text graph format and timing lines
//	cmd/negpath  - command-line driver comparing the three engines
//
// Quick example, Johnson on the classic five-vertex graph:
//
//	g, _ := core.NewGraph(5, edges)
//	res, err := johnson.AllPairs(g)
//	if errors.Is(err, bellmanford.ErrNegativeCycle) { ... }
//	fmt.Println(res.At(0, 3)) // -2
//
//	go get github.com/katalvlaran/negpath
package negpath
