// Package feasible implements the feasibility evaluator (4.5): for each
// compatible (task, robot) pair, attempt a direct plan and, on battery
// shortfall, a recharge-first plan.
package feasible

import (
	"github.com/elektrokombinacija/warehouse-scheduler/internal/compat"
	"github.com/elektrokombinacija/warehouse-scheduler/internal/core"
	"github.com/elektrokombinacija/warehouse-scheduler/internal/pathfind"
)

// Plan is the outcome of evaluating one (task, robot) pair: a
// cost/path triple when feasible.
type Plan struct {
	Cost         int
	PathToPickup core.Path
	PathToDropoff core.Path
	PathToCharge core.Path // nil unless a recharge detour was used
}

// Pair names which task and robot a Plan (or its absence) belongs to.
type Pair struct {
	TaskIndex  int
	RobotIndex int
	Plan       Plan
	Feasible   bool
}

// Evaluate attempts to plan robot serving task on grid, per 4.5. It never
// mutates robot or task; every hypothetical position/battery/carrying
// change is local to this call.
func Evaluate(g *core.Grid, task core.Task, robot core.Robot) (Plan, bool) {
	if !compat.Compatible(robot, task) {
		return Plan{}, false
	}

	if plan, ok := directAttempt(g, task, robot.Start, robot.Battery, false); ok {
		return plan, true
	}

	return rechargeAttempt(g, task, robot)
}

// directAttempt plans pickup (unloaded) then dropoff (loaded) from the
// given start position with the given battery, and succeeds only if
// both legs exist and their combined cost fits the battery (4.5 step 1).
func directAttempt(g *core.Grid, task core.Task, from core.Coord, battery int, carryingAtStart bool) (Plan, bool) {
	_ = carryingAtStart // a leg always starts unloaded in this contract (4.5)

	pickup := pathfind.FindPath(g, from, task.Pickup, false)
	if !pickup.Found {
		return Plan{}, false
	}

	dropoff := pathfind.FindPath(g, task.Pickup, task.Dropoff, true)
	if !dropoff.Found {
		return Plan{}, false
	}

	total := pickup.Cost + dropoff.Cost
	if total > battery {
		return Plan{}, false
	}

	return Plan{
		Cost:          total,
		PathToPickup:  pickup.Path,
		PathToDropoff: dropoff.Path,
	}, true
}

// rechargeAttempt iterates charging stations in grid enumeration order;
// the first one reachable from the robot's original start within its
// original battery, after a full recharge, that also yields a feasible
// direct plan wins. Stops at the first viable station (4.5 step 2).
func rechargeAttempt(g *core.Grid, task core.Task, robot core.Robot) (Plan, bool) {
	for _, station := range g.ChargingStations() {
		toCharge := pathfind.FindPath(g, robot.Start, station, false)
		if !toCharge.Found || toCharge.Cost > robot.Battery {
			continue
		}

		plan, ok := directAttempt(g, task, station, core.FullBattery, false)
		if !ok {
			continue
		}

		plan.PathToCharge = toCharge.Path
		return plan, true
	}

	return Plan{}, false
}
