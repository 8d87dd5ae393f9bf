// Package scheduler exposes the single pure entry point of the core:
// Schedule (4.7). It orchestrates the feasibility evaluator and the
// assignment solver and returns the result record; it performs no I/O
// beyond a single structured log line per call.
package scheduler

import (
	"log/slog"

	"github.com/elektrokombinacija/warehouse-scheduler/internal/assign"
	"github.com/elektrokombinacija/warehouse-scheduler/internal/config"
	"github.com/elektrokombinacija/warehouse-scheduler/internal/core"
	"github.com/elektrokombinacija/warehouse-scheduler/internal/feasible"
)

// Schedule computes a globally cost-optimal task-to-robot assignment
// for a static grid/robots/tasks snapshot. It is a pure function of its
// inputs: it neither mutates grid, robots, nor tasks, nor retains any
// reference to them after returning (4.7, 5).
func Schedule(g *core.Grid, robots []core.Robot, tasks []core.Task) core.AssignmentResult {
	return schedule(g, robots, tasks, config.Default())
}

// ScheduleWithConfig is Schedule with an explicit Config, used by the
// CLI entry points so environment-driven tuning (internal/config) can
// flow through without the core package depending on the environment
// itself.
func ScheduleWithConfig(g *core.Grid, robots []core.Robot, tasks []core.Task, cfg config.Config) core.AssignmentResult {
	return schedule(g, robots, tasks, cfg)
}

func schedule(g *core.Grid, robots []core.Robot, tasks []core.Task, cfg config.Config) core.AssignmentResult {
	result := make(core.AssignmentResult)
	if len(tasks) == 0 || len(robots) == 0 {
		return result
	}

	var pairs []feasible.Pair
	if cfg.ParallelEvaluation {
		pairs = feasible.EvaluateAll(g, tasks, robots)
	} else {
		pairs = feasible.EvaluateAllSequential(g, tasks, robots)
	}

	var edges []assign.Edge
	feasibleCount := 0
	for _, p := range pairs {
		if !p.Feasible {
			continue
		}
		feasibleCount++
		edges = append(edges, assign.Edge{
			TaskIndex:  p.TaskIndex,
			RobotIndex: p.RobotIndex,
			Cost:       p.Plan.Cost,
		})
	}

	matches := assign.Solve(len(tasks), len(robots), edges)

	totalCost := 0
	byTaskRobot := make(map[[2]int]feasible.Plan, len(pairs))
	for _, p := range pairs {
		if p.Feasible {
			byTaskRobot[[2]int{p.TaskIndex, p.RobotIndex}] = p.Plan
		}
	}

	for _, m := range matches {
		plan := byTaskRobot[[2]int{m.TaskIndex, m.RobotIndex}]
		task := tasks[m.TaskIndex]
		robot := robots[m.RobotIndex]
		result[task.ID] = core.AssignedPair{
			RobotID:              robot.ID,
			EstimatedBatteryCost: plan.Cost,
			PathToPickup:         plan.PathToPickup,
			PathToDropoff:        plan.PathToDropoff,
			PathToCharge:         plan.PathToCharge,
		}
		totalCost += plan.Cost
	}

	slog.Info("schedule computed",
		"tasks", len(tasks),
		"robots", len(robots),
		"pairs_considered", len(pairs),
		"pairs_feasible", feasibleCount,
		"assigned", len(matches),
		"total_cost", totalCost,
	)

	return result
}
