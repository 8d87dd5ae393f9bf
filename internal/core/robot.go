package core

// Robot is a mobile agent in the warehouse. Robots are read-only inputs
// to the scheduler: feasibility evaluation takes value copies and never
// mutates the caller's Robot (3, "Robots are read-only inputs").
type Robot struct {
	ID          string
	Type        RobotType
	Shift       Shift
	Battery     int
	CarryingBox bool
	Start       Coord
}

// Snapshot returns an independent value copy of the robot, safe for the
// feasibility evaluator's hypothetical mutations (4.5).
func (r Robot) Snapshot() Robot {
	return r
}
