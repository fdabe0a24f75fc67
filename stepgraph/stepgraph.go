package stepgraph

import (
	"fmt"
)

// queueItem pairs an index with its hop count from 0.
type queueItem struct {
	index int
	depth int
}

// PathGraph owns the discovery and relaxation state for one value sequence.
// It is single-use: once solved, results are cached and every query reads
// the same Distance and Predecessor maps.
type PathGraph struct {
	values []int64
	rules  []StepRule
	opts   Options

	adjacency   map[int][]int // discovered index → in-bounds successors
	distance    map[int]int64 // index → best known sum of a path from 0
	predecessor map[int]int   // index → node yielding its best distance
	order       []int         // insertion order into distance
	topo        []int         // topological order of discovered nodes

	built    bool
	buildErr error
	solved   bool
	relaxErr error
	passes   int
}

// New validates its inputs and returns an unsolved PathGraph.
// Nothing is computed until a query (or BuildGraph / Relax) is made.
// values is copied, so later changes by the caller are not observed.
func New(values []int64, rules []StepRule, opts ...Option) (*PathGraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(values) == 0 {
		return nil, ErrEmptyValues
	}
	if len(rules) == 0 {
		return nil, ErrNoStepRules
	}
	for i, r := range rules {
		if isNilRule(r) {
			return nil, fmt.Errorf("%w: rule #%d", ErrNilRule, i)
		}
	}

	return &PathGraph{
		values:      append([]int64(nil), values...),
		rules:       append([]StepRule(nil), rules...),
		opts:        o,
		adjacency:   make(map[int][]int),
		distance:    make(map[int]int64),
		predecessor: make(map[int]int),
	}, nil
}

// seed inserts index into distance with d, unless it is already present.
func (g *PathGraph) seed(index int, d int64) {
	if _, ok := g.distance[index]; ok {
		return
	}
	g.distance[index] = d
	g.order = append(g.order, index)
}

// discover initializes index and its successor list. Idempotent.
// Every in-bounds successor is seeded with Unreached so relaxation can
// read it before it is itself discovered.
func (g *PathGraph) discover(index int) {
	if _, ok := g.adjacency[index]; ok {
		return
	}
	if index == 0 {
		g.seed(0, g.values[0])
	} else {
		g.seed(index, Unreached)
	}

	succ := make([]int, 0, len(g.rules))
	for _, r := range g.rules {
		next := r.Next(index)
		if next < 0 || next >= len(g.values) || contains(succ, next) {
			continue
		}
		succ = append(succ, next)
		g.seed(next, Unreached)
	}
	g.adjacency[index] = succ
}

// BuildGraph discovers every index reachable from 0 breadth-first, then
// verifies the discovered graph is acyclic. Idempotent: a second call
// returns the first call's result.
func (g *PathGraph) BuildGraph() error {
	if g.built {
		return g.buildErr
	}
	g.built = true

	queue := make([]queueItem, 0, len(g.values))
	visited := make(map[int]bool, len(g.values))
	queue = append(queue, queueItem{index: 0, depth: 0})
	visited[0] = true

	edges := 0
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		g.discover(item.index)
		g.opts.OnDiscover(item.index, item.depth)

		for _, next := range g.adjacency[item.index] {
			edges++
			if visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, queueItem{index: next, depth: item.depth + 1})
		}
	}

	g.opts.Logger.Debug("stepgraph: graph built",
		"values", len(g.values),
		"rules", len(g.rules),
		"discovered", len(g.order),
		"edges", edges,
	)

	topo, err := topologicalOrder(g.order, g.adjacency)
	if err != nil {
		g.buildErr = err
		return err
	}
	g.topo = topo

	return nil
}

// Successors returns a copy of the in-bounds successors of index,
// or nil if index has not been discovered.
func (g *PathGraph) Successors(index int) []int {
	succ, ok := g.adjacency[index]
	if !ok {
		return nil
	}

	return append([]int(nil), succ...)
}

// reached reports whether relaxation has assigned index a real sum.
// Index 0 always holds Values[0]; every other index is reached once it has
// a predecessor.
func (g *PathGraph) reached(index int) bool {
	if index == 0 {
		return true
	}
	_, ok := g.predecessor[index]

	return ok
}

// Indices returns the indices discovered so far, in discovery order.
func (g *PathGraph) Indices() []int {
	return append([]int(nil), g.order...)
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}
