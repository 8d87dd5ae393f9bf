package feasible

import (
	"runtime"
	"sync"

	"github.com/elektrokombinacija/warehouse-scheduler/internal/core"
)

// EvaluateAllSequential fills the |tasks| x |robots| feasibility table
// one pair at a time. This is what tests use to pin down deterministic
// behavior (5).
func EvaluateAllSequential(g *core.Grid, tasks []core.Task, robots []core.Robot) []Pair {
	pairs := make([]Pair, 0, len(tasks)*len(robots))
	for i, task := range tasks {
		for j, robot := range robots {
			plan, ok := Evaluate(g, task, robot)
			pairs = append(pairs, Pair{TaskIndex: i, RobotIndex: j, Plan: plan, Feasible: ok})
		}
	}
	return pairs
}

// EvaluateAll fills the same table as EvaluateAllSequential but fans the
// |tasks| x |robots| evaluations out across a bounded worker pool, since
// each evaluation only reads the grid and takes a value copy of its
// robot — no shared mutable state crosses goroutines (5). The returned
// slice is in the same (task, robot) row-major order as the sequential
// version, so callers observe identical results either way.
func EvaluateAll(g *core.Grid, tasks []core.Task, robots []core.Robot) []Pair {
	n := len(tasks) * len(robots)
	pairs := make([]Pair, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return EvaluateAllSequential(g, tasks, robots)
	}

	indices := make(chan int, n)
	for idx := 0; idx < n; idx++ {
		indices <- idx
	}
	close(indices)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range indices {
				i := idx / len(robots)
				j := idx % len(robots)
				plan, ok := Evaluate(g, tasks[i], robots[j])
				pairs[idx] = Pair{TaskIndex: i, RobotIndex: j, Plan: plan, Feasible: ok}
			}
		}()
	}
	wg.Wait()

	return pairs
}
