// Package stepgraph computes the maximum sum obtainable by walking a fixed
// value sequence from index 0, where every move applies one of a set of
// step rules (for example +3 or +4) and the walk may stop at any visited
// index.
//
// What
//
//   - Lazily materializes the step graph: only indices reachable from 0 are
//     ever discovered, and successors ≥ len(values) (or < 0) are dropped.
//   - Computes, for each discovered index, the best sum of a path from 0
//     ending there (Distance) and the node that yields it (Predecessor).
//   - Reports the global maximum and reconstructs every path achieving it.
//
// Phases
//
//	BuildGraph  breadth-first discovery from 0, then a three-colour DFS
//	            that rejects cycles with ErrCyclicStepRules.
//	Relax       longest-path relaxation over the now-stable node set.
//
// Both phases run on demand and are cached; MaxSum, LongestPaths, PathTo,
// Distance, Predecessor and DistanceCount never recompute.
//
// Strategies
//
//   - StrategyBellmanFord (default): repeated full passes in discovery order,
//     at most n of them, stopping early once a pass changes nothing.
//   - StrategyTopological: a single pass in topological order.
//
// Ties are broken towards the smaller predecessor index, so the two
// strategies agree exactly on Distance and Predecessor.
//
// Path convention
//
//	By default a path lists every visited index, 0 through the terminal.
//	WithPredecessorPaths() lists only the terminal's predecessors
//	([0, …, pred(terminal)]), and [] for a terminal of 0.
//
// Unreached
//
//	Distances live in int64. Unreached (math.MinInt64) is seeded for an index
//	before relaxation reaches it; reachability itself is tracked through
//	Predecessor, so a real sum of math.MinInt64 is still a valid answer.
//	A best sum outside the int64 range fails with ErrSumOverflow.
//
// Complexity (V = discovered indices, E = edges, R = len(rules))
//
//   - BuildGraph: O(V·R) time, O(V + E) memory.
//   - Relax:      O(E) for StrategyTopological, O(V·E) worst case for
//     StrategyBellmanFord.
//
// Usage
//
//	g, err := stepgraph.New(values, stepgraph.Offsets(3, 4))
//	if err != nil {
//	    // ErrEmptyValues, ErrNoStepRules, ErrNilRule or ErrOptionViolation
//	}
//	best, err := g.MaxSum()      // ErrCyclicStepRules if rules loop
//	paths, err := g.LongestPaths()
//
// Concurrency
//
//	A PathGraph is not safe for concurrent use. Independent instances share
//	nothing and may be solved in parallel (see package batch).
package stepgraph
