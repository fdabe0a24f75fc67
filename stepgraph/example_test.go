package stepgraph_test

import (
	"fmt"

	"github.com/katalvlaran/stepsum/stepgraph"
)

// ExamplePathGraph_MaxSum walks the worked example with steps of +3 or +4.
// Starting at 14, jump to 29, then 65, then 32, and stop: 140.
func ExamplePathGraph_MaxSum() {
	values := []int64{14, 28, 79, -87, 29, 34, -7, 65, -11, 91, 32, 27, -5}
	g, err := stepgraph.New(values, stepgraph.Offsets(3, 4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	best, err := g.MaxSum()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	paths, _ := g.LongestPaths()
	fmt.Println(best)
	fmt.Println(paths)
	// Output:
	// 140
	// [[0 4 7 10]]
}

// ExampleWithPredecessorPaths shows the predecessor-only path form,
// which starts at 0 and leaves the terminal index implicit.
func ExampleWithPredecessorPaths() {
	values := []int64{14, 28, 79, -87, 29, 34, -7, 65, -11, 91, 32, 27, -5}
	g, _ := stepgraph.New(values, stepgraph.Offsets(3, 4), stepgraph.WithPredecessorPaths())

	paths, _ := g.LongestPaths()
	fmt.Println(paths)
	// Output:
	// [[0 4 7]]
}

// ExampleRuleFunc uses a custom rule alongside +1: jump from i to 2i+1.
func ExampleRuleFunc() {
	values := []int64{1, -4, 2, -8, 5, -1, -1, 3, 6}
	rules := []stepgraph.StepRule{
		stepgraph.Offset(1),
		stepgraph.RuleFunc(func(i int) int { return 2*i + 1 }),
	}
	g, _ := stepgraph.New(values, rules, stepgraph.WithStrategy(stepgraph.StrategyTopological))

	best, _ := g.MaxSum()
	path, _ := g.PathTo(8)
	fmt.Println(best, path)
	// Output:
	// 6 [0 1 2 5 6 7 8]
}

// ExamplePathGraph_DistanceCount counts indices reachable from 0.
func ExamplePathGraph_DistanceCount() {
	g, _ := stepgraph.New(make([]int64, 12), stepgraph.Offsets(5))

	n, _ := g.DistanceCount()
	fmt.Println(n, g.Indices())
	// Output:
	// 3 [0 5 10]
}
