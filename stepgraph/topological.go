package stepgraph

import "fmt"

// DFS colours for cycle detection.
const (
	white = iota // not yet visited
	gray         // on the DFS stack
	black        // fully explored
)

// frame is one DFS stack entry: a node and the position of the next
// successor to explore.
type frame struct {
	index int
	child int
}

// topoSorter encapsulates state for a topological sort of the discovered graph.
type topoSorter struct {
	adjacency map[int][]int
	state     map[int]int
	stack     []frame
	order     []int // post-order
}

// topologicalOrder returns the discovered nodes so that every edge u→v has
// u before v. A back edge (including a self-loop) yields ErrCyclicStepRules.
func topologicalOrder(nodes []int, adjacency map[int][]int) ([]int, error) {
	t := &topoSorter{
		adjacency: adjacency,
		state:     make(map[int]int, len(nodes)),
		order:     make([]int, 0, len(nodes)),
	}
	for _, n := range nodes {
		if t.state[n] == white {
			if err := t.visit(n); err != nil {
				return nil, err
			}
		}
	}
	// reverse post-order
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

// visit explores everything reachable from root with an explicit stack,
// so the depth of a step chain never grows the goroutine stack.
func (t *topoSorter) visit(root int) error {
	t.state[root] = gray
	t.stack = append(t.stack[:0], frame{index: root})
	for len(t.stack) > 0 {
		top := &t.stack[len(t.stack)-1]
		succ := t.adjacency[top.index]
		if top.child == len(succ) {
			t.state[top.index] = black
			t.order = append(t.order, top.index)
			t.stack = t.stack[:len(t.stack)-1]
			continue
		}
		next := succ[top.child]
		top.child++

		switch t.state[next] {
		case gray:
			return fmt.Errorf("%w: index %d lies on a cycle", ErrCyclicStepRules, next)
		case black:
			continue
		}
		t.state[next] = gray
		t.stack = append(t.stack, frame{index: next})
	}

	return nil
}
