package stepgraph

import "fmt"

// MaxSum returns the largest Distance over all discovered indices,
// solving the graph first if needed.
func (g *PathGraph) MaxSum() (int64, error) {
	if err := g.Relax(); err != nil {
		return 0, err
	}

	return g.maxDistance()
}

// maxDistance scans distance in discovery order.
func (g *PathGraph) maxDistance() (int64, error) {
	if len(g.distance) == 0 {
		return 0, ErrEmptyValues
	}
	best := g.distance[g.order[0]]
	for _, idx := range g.order[1:] {
		if d := g.distance[idx]; d > best {
			best = d
		}
	}

	return best, nil
}

// LongestPaths returns one path for every index whose Distance equals
// MaxSum, in discovery order. Paths run 0 … terminal unless the graph was
// built WithPredecessorPaths.
func (g *PathGraph) LongestPaths() ([][]int, error) {
	best, err := g.MaxSum()
	if err != nil {
		return nil, err
	}
	var paths [][]int
	for _, idx := range g.order {
		if g.distance[idx] == best {
			paths = append(paths, g.path(idx))
		}
	}

	return paths, nil
}

// PathTo reconstructs the best path from 0 to dest.
// Returns ErrIndexNotReached if dest was never discovered.
func (g *PathGraph) PathTo(dest int) ([]int, error) {
	if err := g.Relax(); err != nil {
		return nil, err
	}
	if _, ok := g.distance[dest]; !ok || !g.reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrIndexNotReached, dest)
	}

	return g.path(dest), nil
}

// path walks Predecessor back from dest to 0 and reverses the result.
func (g *PathGraph) path(dest int) []int {
	path := []int{}
	if !g.opts.PredecessorPaths {
		path = append(path, dest)
	}
	for cur := dest; cur != 0; {
		prev := g.predecessor[cur]
		path = append(path, prev)
		cur = prev
	}
	// reverse to get 0 → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Distance returns the solved Distance of index. ok is false if index was
// never discovered or the graph could not be solved.
func (g *PathGraph) Distance(index int) (int64, bool) {
	if err := g.Relax(); err != nil {
		return 0, false
	}
	d, ok := g.distance[index]

	return d, ok
}

// Predecessor returns the node yielding index's best Distance.
// ok is false for index 0 and for undiscovered indices.
func (g *PathGraph) Predecessor(index int) (int, bool) {
	if err := g.Relax(); err != nil {
		return 0, false
	}
	p, ok := g.predecessor[index]

	return p, ok
}

// DistanceCount returns the number of discovered indices.
func (g *PathGraph) DistanceCount() (int, error) {
	if err := g.Relax(); err != nil {
		return 0, err
	}

	return len(g.distance), nil
}
