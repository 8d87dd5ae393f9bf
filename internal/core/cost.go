package core

import "math"

// Infeasible marks an untraversable cell's entry cost. It is kept as a
// distinct sentinel rather than reused as a plain large int so callers
// can tell "no path" apart from "a very expensive path" unambiguously.
const Infeasible = math.MaxInt32

// baseCost is the per-cell entry cost before the carrying-a-box
// multiplier is applied (4.2).
func baseCost(kind CellKind) int {
	switch kind {
	case Empty, ChargingStation, Box, Robot:
		return 1
	case Ramp:
		return 2
	case Slope:
		return 3
	default: // Obstacle
		return Infeasible
	}
}

// EntryCost returns the cost of entering a cell of the given kind,
// doubled when the robot carries a box (4.2). The starting cell of a
// leg is never charged; this only prices the destination of a step.
func EntryCost(kind CellKind, carrying bool) int {
	cost := baseCost(kind)
	if cost == Infeasible {
		return Infeasible
	}
	if carrying {
		cost *= 2
	}
	return cost
}
