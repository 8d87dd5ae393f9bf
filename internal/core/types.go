// Package core defines the domain model for the warehouse scheduler:
// grids, cells, robots, tasks, and the assignment result they produce.
package core

// CellKind classifies a single grid cell.
type CellKind int

const (
	Empty CellKind = iota
	Obstacle
	Robot
	Box
	Ramp
	Slope
	ChargingStation
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Obstacle:
		return "obstacle"
	case Robot:
		return "robot"
	case Box:
		return "box"
	case Ramp:
		return "ramp"
	case Slope:
		return "slope"
	case ChargingStation:
		return "charging_station"
	default:
		return "unknown"
	}
}

// ParseCellKind converts the wire tag used by the original warehouse_system
// enums back into a CellKind. Returns false for unknown tags.
func ParseCellKind(s string) (CellKind, bool) {
	switch s {
	case "empty":
		return Empty, true
	case "obstacle":
		return Obstacle, true
	case "robot":
		return Robot, true
	case "box":
		return Box, true
	case "ramp":
		return Ramp, true
	case "slope":
		return Slope, true
	case "charging_station":
		return ChargingStation, true
	default:
		return 0, false
	}
}

// Traversable reports whether a cell may ever be entered by a planner,
// independent of the box/goal rule (4.1, 4.3): only Obstacle is never
// enterable. Box passability is decided by the pathfinder, since it
// depends on whether the cell is the leg's goal.
func (k CellKind) Traversable() bool {
	return k != Obstacle
}

// RobotType classifies robot capability.
type RobotType int

const (
	General RobotType = iota
	Standard
	Fragile
)

func (t RobotType) String() string {
	switch t {
	case General:
		return "general"
	case Standard:
		return "standard"
	case Fragile:
		return "fragile"
	default:
		return "unknown"
	}
}

// TaskType classifies the work a task requires.
type TaskType int

const (
	TaskStandard TaskType = iota
	TaskHeavy
	TaskFragile
)

func (t TaskType) String() string {
	switch t {
	case TaskStandard:
		return "standard"
	case TaskHeavy:
		return "heavy"
	case TaskFragile:
		return "fragile"
	default:
		return "unknown"
	}
}

// Shift classifies when a robot operates or a task must be served.
type Shift int

const (
	Day Shift = iota
	Night
	AllHours
)

func (s Shift) String() string {
	switch s {
	case Day:
		return "day"
	case Night:
		return "night"
	case AllHours:
		return "24/7"
	default:
		return "unknown"
	}
}

// FullBattery is the level a robot is restored to by a recharge (4.5, 9).
const FullBattery = 100

// ParseRobotType converts the wire tag from the original enums.py
// (general/standard/fragile) into a RobotType.
func ParseRobotType(s string) (RobotType, bool) {
	switch s {
	case "general":
		return General, true
	case "standard":
		return Standard, true
	case "fragile":
		return Fragile, true
	default:
		return 0, false
	}
}

// ParseTaskType converts the wire tag into a TaskType.
func ParseTaskType(s string) (TaskType, bool) {
	switch s {
	case "standard":
		return TaskStandard, true
	case "heavy":
		return TaskHeavy, true
	case "fragile":
		return TaskFragile, true
	default:
		return 0, false
	}
}

// ParseShift converts the wire tag into a Shift. "24/7" is the
// original enum's literal tag for AllHours.
func ParseShift(s string) (Shift, bool) {
	switch s {
	case "day":
		return Day, true
	case "night":
		return Night, true
	case "24/7", "all_hours", "allhours":
		return AllHours, true
	default:
		return 0, false
	}
}
