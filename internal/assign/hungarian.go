// Package assign implements the assignment solver (4.6): picking at
// most one robot per task and at most one task per robot to maximize
// K*coverage - totalCost, the lexicographic "most tasks, then least
// battery" objective.
package assign

import "math"

// bigCost marks a forbidden (infeasible or cross-dummy) edge in the
// padded cost matrix: high enough that the solver never prefers it to
// leaving both sides unmatched.
const bigCost = int64(math.MaxInt64 / 4)

// solveSquare is the classical O(n^3) Hungarian algorithm (Kuhn-Munkres
// with vertex potentials) for a minimum-cost perfect matching on a
// square cost matrix. Returns, for each row i (0-indexed), the column
// it is matched to (0-indexed).
func solveSquare(cost [][]int64) []int {
	n := len(cost)
	const inf = bigCost

	u := make([]int64, n+1)
	v := make([]int64, n+1)
	p := make([]int, n+1) // p[j] = row matched to column j, 0 = unmatched
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minV := make([]int64, n+1)
		used := make([]bool, n+1)
		for j := range minV {
			minV[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1

			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minV[j] {
					minV[j] = cur
					way[j] = j0
				}
				if minV[j] < delta {
					delta = minV[j]
					j1 = j
				}
			}

			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minV[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowToCol := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			rowToCol[p[j]-1] = j - 1
		}
	}
	return rowToCol
}
