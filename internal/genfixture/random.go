package genfixture

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/elektrokombinacija/warehouse-scheduler/internal/core"
)

// RandomParams configures a deterministic random snapshot, adapted from
// the teacher's tools/gen_instances parameter set onto this repo's 2-D
// grid model in place of the teacher's vertex/edge workspace.
type RandomParams struct {
	Seed             int64
	Width, Height    int
	NumRobots        int
	NumTasks         int
	ObstacleDensity  float64 // fraction of non-endpoint cells turned into Obstacle
	RampDensity      float64
	SlopeDensity     float64
	ChargingDensity  float64 // fraction of cells turned into ChargingStation
}

// DefaultRandomParams returns a modest default instance size. Generated
// instances are not guaranteed to be solvable.
func DefaultRandomParams() RandomParams {
	return RandomParams{
		Seed:            1,
		Width:           10,
		Height:          10,
		NumRobots:       4,
		NumTasks:        6,
		ObstacleDensity: 0.1,
		RampDensity:     0.05,
		SlopeDensity:    0.05,
		ChargingDensity: 0.03,
	}
}

// GenerateRandom builds a reproducible random Snapshot: same Seed and
// params always yield the same grid, robots, and tasks (7, purity
// extends to fixture generation itself so benchmarks are comparable
// across runs).
func GenerateRandom(p RandomParams) Snapshot {
	rng := rand.New(rand.NewSource(p.Seed))

	kinds := make([][]core.CellKind, p.Height)
	for r := range kinds {
		kinds[r] = make([]core.CellKind, p.Width)
	}

	cellKind := func() core.CellKind {
		switch roll := rng.Float64(); {
		case roll < p.ObstacleDensity:
			return core.Obstacle
		case roll < p.ObstacleDensity+p.RampDensity:
			return core.Ramp
		case roll < p.ObstacleDensity+p.RampDensity+p.SlopeDensity:
			return core.Slope
		case roll < p.ObstacleDensity+p.RampDensity+p.SlopeDensity+p.ChargingDensity:
			return core.ChargingStation
		default:
			return core.Empty
		}
	}

	for r := 0; r < p.Height; r++ {
		for c := 0; c < p.Width; c++ {
			kinds[r][c] = cellKind()
		}
	}

	randCoord := func() core.Coord {
		return core.Coord{Row: rng.Intn(p.Height), Col: rng.Intn(p.Width)}
	}
	// Endpoints are always kept Empty so every generated instance has a
	// chance of being solvable; obstacle placement never overrides them.
	clearEndpoint := func(at core.Coord) {
		kinds[at.Row][at.Col] = core.Empty
	}

	robotTypes := [...]core.RobotType{core.General, core.Standard, core.Fragile}
	shifts := [...]core.Shift{core.Day, core.Night, core.AllHours}

	robots := make([]RobotSpec, p.NumRobots)
	for i := range robots {
		start := randCoord()
		clearEndpoint(start)
		battery := 100
		robots[i] = RobotSpec{
			ID:       fmt.Sprintf("robot-%d", i),
			Type:     robotTypes[rng.Intn(len(robotTypes))].String(),
			Shift:    shifts[rng.Intn(len(shifts))].String(),
			Battery:  &battery,
			Position: [2]int{start.Row, start.Col},
		}
	}

	taskTypes := [...]core.TaskType{core.TaskStandard, core.TaskHeavy, core.TaskFragile}

	tasks := make([]TaskSpec, p.NumTasks)
	for i := range tasks {
		pickup := randCoord()
		dropoff := randCoord()
		clearEndpoint(pickup)
		clearEndpoint(dropoff)
		tasks[i] = TaskSpec{
			ID:      fmt.Sprintf("task-%d", i),
			Type:    taskTypes[rng.Intn(len(taskTypes))].String(),
			Shift:   shifts[rng.Intn(len(shifts))].String(),
			Pickup:  [2]int{pickup.Row, pickup.Col},
			Dropoff: [2]int{dropoff.Row, dropoff.Col},
		}
	}

	cells := make([][]string, p.Height)
	for r := range kinds {
		row := make([]string, p.Width)
		for c, k := range kinds[r] {
			row[c] = k.String()
		}
		cells[r] = row
	}

	return Snapshot{
		Grid:   GridSpec{Width: p.Width, Height: p.Height, Cells: cells},
		Robots: robots,
		Tasks:  tasks,
	}
}

// NewStableID mints a fresh, globally unique identifier for a robot or
// task whose caller doesn't supply one of its own — spec.md treats IDs
// as externally stable, so this is only ever used to fill a gap the
// caller left, never to override an ID that was already given.
func NewStableID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
