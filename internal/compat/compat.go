// Package compat implements the pure, total compatibility predicates
// between a robot and a task (4.4).
package compat

import "github.com/elektrokombinacija/warehouse-scheduler/internal/core"

// typeMatrix mirrors the permitted-task-types table in 4.4.
var typeMatrix = map[core.RobotType]map[core.TaskType]bool{
	core.General: {
		core.TaskStandard: true,
		core.TaskHeavy:    true,
		core.TaskFragile:  true,
	},
	core.Standard: {
		core.TaskStandard: true,
	},
	core.Fragile: {
		core.TaskFragile: true,
	},
}

// TypeCompatible reports whether a robot of the given type may serve a
// task of the given type (4.4).
func TypeCompatible(robot core.RobotType, task core.TaskType) bool {
	return typeMatrix[robot][task]
}

// ShiftCompatible reports whether robot.shift == AllHours or the two
// shifts are equal (4.4).
func ShiftCompatible(robotShift, taskShift core.Shift) bool {
	return robotShift == core.AllHours || robotShift == taskShift
}

// Compatible combines the type and shift predicates into the single
// gate the feasibility evaluator consults before attempting any plan.
func Compatible(robot core.Robot, task core.Task) bool {
	return TypeCompatible(robot.Type, task.Type) && ShiftCompatible(robot.Shift, task.Shift)
}
