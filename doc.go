// Package stepsum finds the best walk through an array when every move
// jumps forward by one of a fixed set of offsets and the walk may stop
// anywhere.
//
// What is stepsum?
//
//	Start at index 0, add the value there, then repeatedly jump by one of
//	the allowed offsets (for example +3 or +4), adding each value landed on.
//	stepsum reports the largest total reachable and every walk achieving it.
//
//	For [14, 28, 79, -87, 29, 34, -7, 65, -11, 91, 32, 27, -5] with {+3, +4}
//	the answer is 140: 14 → 29 → 65 → 32.
//
// Under the hood, everything is organized under these packages:
//
//	stepgraph/    — the engine: lazy step-graph discovery, acyclicity check,
//	                Bellman-Ford or topological longest-path relaxation,
//	                path reconstruction
//	problem/      — named problems loaded from YAML files
//	batch/        — many independent problems solved in parallel
//	cmd/stepsum/  — command-line front end
//
// Quick start:
//
//	g, _ := stepgraph.New(values, stepgraph.Offsets(3, 4))
//	best, _ := g.MaxSum()
//	paths, _ := g.LongestPaths()
//
//	go install github.com/katalvlaran/stepsum/cmd/stepsum@latest
package stepsum
