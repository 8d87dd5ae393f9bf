package core

// Path is an ordered sequence of cells, starting at a leg's origin and
// ending at its goal; consecutive cells are 4-adjacent (3).
type Path []Coord

// AssignedPair is one task's resolved plan: which robot serves it, what
// it costs, and the concrete legs the robot must walk (3).
type AssignedPair struct {
	RobotID              string
	EstimatedBatteryCost int
	PathToPickup         Path
	PathToDropoff        Path
	PathToCharge         Path // nil when no recharge detour was needed
}

// AssignmentResult maps a task ID to its resolved assignment. A task
// absent from the map is unassigned (4.7).
type AssignmentResult map[string]AssignedPair
