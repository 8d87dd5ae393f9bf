// Package pathfind implements the weighted grid path-planner (4.3): A*
// over a core.Grid with the Manhattan-distance heuristic.
package pathfind

import (
	"container/heap"

	"github.com/elektrokombinacija/warehouse-scheduler/internal/core"
)

// node is a single A* search node on the priority queue.
type node struct {
	at     core.Coord
	g      int // cost so far
	f      int // g + heuristic
	parent *node
	index  int // heap index, maintained by container/heap
}

// nodeHeap is a min-heap on f score.
type nodeHeap []*node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *nodeHeap) Push(x any) {
	n := x.(*node)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

func manhattan(a, b core.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Result is the outcome of a single-leg path search.
type Result struct {
	Path  core.Path
	Cost  int
	Found bool
}

// FindPath runs A* from origin to goal. A neighbor is expandable iff it
// is in-bounds, not Obstacle, and — if it is a Box — is the goal itself
// (4.3). carrying doubles every entry cost per the cost model (4.2).
// Returns Result{Found: false} iff no such path exists.
func FindPath(g *core.Grid, origin, goal core.Coord, carrying bool) Result {
	if _, ok := g.Get(origin.Row, origin.Col); !ok {
		return Result{}
	}
	if _, ok := g.Get(goal.Row, goal.Col); !ok {
		return Result{}
	}

	open := &nodeHeap{}
	heap.Init(open)

	start := &node{at: origin, g: 0, f: manhattan(origin, goal)}
	heap.Push(open, start)

	bestG := map[core.Coord]int{origin: 0}
	visited := make(map[core.Coord]bool)

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)

		if visited[current.at] {
			continue
		}
		visited[current.at] = true

		if current.at == goal {
			return Result{Path: reconstruct(current), Cost: current.g, Found: true}
		}

		for _, nb := range g.Neighbors(current.at.Row, current.at.Col) {
			if !expandable(nb, goal) {
				continue
			}
			if visited[nb.At] {
				continue
			}

			step := core.EntryCost(nb.Kind, carrying)
			if step == core.Infeasible {
				continue
			}

			newG := current.g + step
			if prev, ok := bestG[nb.At]; ok && prev <= newG {
				continue
			}
			bestG[nb.At] = newG

			heap.Push(open, &node{
				at:     nb.At,
				g:      newG,
				f:      newG + manhattan(nb.At, goal),
				parent: current,
			})
		}
	}

	return Result{}
}

// expandable implements the neighbor rule: in-bounds is assumed by the
// caller (Neighbors already filters bounds); an Obstacle is never
// expandable, and a Box only when it is the leg's goal (4.3).
func expandable(nb core.Neighbor, goal core.Coord) bool {
	if nb.Kind == core.Obstacle {
		return false
	}
	if nb.Kind == core.Box && nb.At != goal {
		return false
	}
	return true
}

func reconstruct(n *node) core.Path {
	var path core.Path
	for cur := n; cur != nil; cur = cur.parent {
		path = append(core.Path{cur.at}, path...)
	}
	return path
}
