package stepgraph

import (
	"fmt"
	"math"
)

// Relax computes, for every discovered index, the maximum sum of a path
// from 0 ending there. It runs BuildGraph first if needed and is idempotent:
// a second call returns the first call's result.
//
// Relaxation of edge node→next:
//
//	Distance[next] = max(Distance[next], Distance[node] + Values[next])
//
// On an equal candidate the smaller predecessor index wins, so both
// strategies produce identical Distance and Predecessor maps.
// Relax fails with ErrSumOverflow if a best sum leaves the int64 range.
func (g *PathGraph) Relax() error {
	if g.solved {
		return g.relaxErr
	}
	if err := g.BuildGraph(); err != nil {
		return err
	}
	g.solved = true

	var err error
	switch g.opts.Strategy {
	case StrategyTopological:
		g.passes, err = g.relaxTopological()
	default:
		g.passes, err = g.relaxBellmanFord()
	}
	if err == nil {
		err = g.checkReached()
	}
	if err != nil {
		g.relaxErr = err
		return err
	}

	g.opts.Logger.Debug("stepgraph: relaxed",
		"strategy", g.opts.Strategy.String(),
		"passes", g.passes,
		"discovered", len(g.order),
	)

	return nil
}

// Passes reports how many full relaxation passes Relax performed
// (0 before Relax has run).
func (g *PathGraph) Passes() int { return g.passes }

// relaxBellmanFord sweeps every edge in discovery order until a sweep makes
// no change. Distances settle after at most n-1 sweeps on an acyclic graph;
// one more sweep settles predecessor ties, hence the bound of n.
func (g *PathGraph) relaxBellmanFord() (int, error) {
	n := len(g.order)
	passes := 0
	for passes < n {
		passes++
		changed := false
		for _, node := range g.order {
			for _, next := range g.adjacency[node] {
				ok, err := g.relaxEdge(node, next)
				if err != nil {
					return passes, err
				}
				if ok {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return passes, nil
}

// relaxTopological relaxes every edge once, in topological order.
func (g *PathGraph) relaxTopological() (int, error) {
	for _, node := range g.topo {
		for _, next := range g.adjacency[node] {
			if _, err := g.relaxEdge(node, next); err != nil {
				return 1, err
			}
		}
	}

	return 1, nil
}

// relaxEdge applies one relaxation and reports whether Distance or
// Predecessor of next changed.
//
// A candidate above math.MaxInt64 is an error: the final Distance of next is
// at least that large. A candidate below math.MinInt64 loses to any real
// sum and is skipped; checkReached reports next if nothing better arrives.
func (g *PathGraph) relaxEdge(node, next int) (bool, error) {
	if !g.reached(node) {
		return false, nil
	}
	from, v := g.distance[node], g.values[next]
	switch {
	case v > 0 && from > math.MaxInt64-v:
		return false, fmt.Errorf("%w: %d -> %d", ErrSumOverflow, node, next)
	case v < 0 && from < math.MinInt64-v:
		return false, nil
	}
	candidate := from + v

	if g.reached(next) {
		current := g.distance[next]
		if candidate < current {
			return false, nil
		}
		if candidate == current && node >= g.predecessor[next] {
			return false, nil
		}
	}
	g.distance[next] = candidate
	g.predecessor[next] = node

	return true, nil
}

// checkReached verifies every discovered index received a real sum. Every
// discovered index has a path from 0, so one left unreached means all of its
// candidate sums fell below math.MinInt64.
func (g *PathGraph) checkReached() error {
	for _, idx := range g.order {
		if !g.reached(idx) {
			return fmt.Errorf("%w: index %d", ErrSumOverflow, idx)
		}
	}

	return nil
}
