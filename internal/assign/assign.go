package assign

// Edge is one feasible (task, robot) pair and its battery cost, as
// produced by the feasibility evaluator.
type Edge struct {
	TaskIndex  int
	RobotIndex int
	Cost       int
}

// Match is one resolved assignment in the optimal solution.
type Match struct {
	TaskIndex  int
	RobotIndex int
	Cost       int
}

// Solve picks a subset of edges, at most one per task and at most one
// per robot, maximizing K*|selected| - sum(cost) for K strictly greater
// than the maximum achievable total cost (4.6). numTasks and numRobots
// bound the index space; edges absent from the input are infeasible.
//
// This is solved exactly as a bipartite minimum-cost matching: the cost
// matrix is padded to an (numTasks+numRobots) square so every task and
// every robot always has a same-cost "stay unassigned" dummy partner,
// and every feasible edge is priced at cost-K (negative, since K
// dominates) so the Hungarian algorithm only ever prefers a real edge
// over its dummy when doing so raises coverage or, coverage held equal,
// lowers cost.
func Solve(numTasks, numRobots int, edges []Edge) []Match {
	if numTasks == 0 || numRobots == 0 {
		return nil
	}

	k := bigWeight(edges)

	size := numTasks + numRobots
	cost := make([][]int64, size)
	for i := range cost {
		cost[i] = make([]int64, size)
		for j := range cost[i] {
			cost[i][j] = 0
		}
	}

	feasible := make(map[[2]int]int, len(edges))
	for _, e := range edges {
		feasible[[2]int{e.TaskIndex, e.RobotIndex}] = e.Cost
	}

	for i := 0; i < numTasks; i++ {
		for j := 0; j < numRobots; j++ {
			if c, ok := feasible[[2]int{i, j}]; ok {
				cost[i][j] = int64(c) - k
			} else {
				cost[i][j] = bigCost
			}
		}
		// Task i's dummy "stay unassigned" column is numRobots+i; any
		// other dummy column is forbidden to keep dummies 1:1 with
		// their real counterpart.
		for j := numRobots; j < size; j++ {
			if j-numRobots != i {
				cost[i][j] = bigCost
			}
		}
	}
	for i := numTasks; i < size; i++ {
		robotIdx := i - numTasks
		for j := 0; j < numRobots; j++ {
			if j != robotIdx {
				cost[i][j] = bigCost
			}
		}
	}

	rowToCol := solveSquare(cost)

	var matches []Match
	for i := 0; i < numTasks; i++ {
		j := rowToCol[i]
		if j >= numRobots {
			continue // matched to its own "unassigned" dummy
		}
		if c, ok := feasible[[2]int{i, j}]; ok {
			matches = append(matches, Match{TaskIndex: i, RobotIndex: j, Cost: c})
		}
	}
	return matches
}

// bigWeight computes a K that dominates the worst-case achievable total
// cost: 1 + the sum of every finite edge cost (4.6, 9).
func bigWeight(edges []Edge) int64 {
	var sum int64
	for _, e := range edges {
		sum += int64(e.Cost)
	}
	return sum + 1
}
