// Package genfixture builds and (de)serializes warehouse snapshots —
// grid plus robots plus tasks — for the CLI tools and tests. It is the
// only place in this repository that turns the core's in-memory types
// into a wire format; the HTTP collaborator's own JSON schema (6) is a
// separate, out-of-scope concern.
package genfixture

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/warehouse-scheduler/internal/config"
	"github.com/elektrokombinacija/warehouse-scheduler/internal/core"
)

// Snapshot is a YAML-serializable grid+robots+tasks instance, shaped
// after the HTTP request schema in spec.md section 6 but independent of
// it (this package never imports the HTTP layer and isn't imported by
// it).
type Snapshot struct {
	Grid   GridSpec   `yaml:"grid"`
	Robots []RobotSpec `yaml:"robots"`
	Tasks  []TaskSpec  `yaml:"tasks"`
}

// GridSpec is the wire shape of a grid: dimensions plus a row-major
// matrix of cell-kind tags from core.CellKind.String().
type GridSpec struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Cells  [][]string `yaml:"grid"`
}

// RobotSpec is the wire shape of one robot.
type RobotSpec struct {
	ID       string `yaml:"robot_id"`
	Type     string `yaml:"robot_type"`
	Shift    string `yaml:"shift"`
	Battery  *int   `yaml:"battery_level,omitempty"`
	Position [2]int `yaml:"current_position"`
}

// TaskSpec is the wire shape of one task.
type TaskSpec struct {
	ID      string `yaml:"task_id"`
	Type    string `yaml:"type"`
	Shift   string `yaml:"shift"`
	Pickup  [2]int `yaml:"pickup_location"`
	Dropoff [2]int `yaml:"dropoff_location"`
}

// Decode parses YAML bytes into a Snapshot.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("genfixture: decode: %w", err)
	}
	return s, nil
}

// Encode serializes a Snapshot to YAML bytes.
func Encode(s Snapshot) ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("genfixture: encode: %w", err)
	}
	return out, nil
}

// ToCore converts a Snapshot into the core types the scheduler consumes,
// applying cfg.DefaultBattery (6, "Missing battery_level defaults to
// 100") wherever a robot omits one, and minting a stable ID with
// NewStableID wherever a robot or task spec omits robot_id/task_id.
// Malformed enum tags or a non-rectangular grid are input-malformed
// errors (7) — this package sits at the validation boundary the core
// itself assumes has already run.
func ToCore(s Snapshot, cfg config.Config) (*core.Grid, []core.Robot, []core.Task, error) {
	if len(s.Grid.Cells) != s.Grid.Height {
		return nil, nil, nil, fmt.Errorf("genfixture: grid has %d rows, want %d", len(s.Grid.Cells), s.Grid.Height)
	}
	rows := make([][]core.CellKind, s.Grid.Height)
	for r, rawRow := range s.Grid.Cells {
		if len(rawRow) != s.Grid.Width {
			return nil, nil, nil, fmt.Errorf("genfixture: grid row %d has %d cols, want %d", r, len(rawRow), s.Grid.Width)
		}
		row := make([]core.CellKind, s.Grid.Width)
		for c, tag := range rawRow {
			kind, ok := core.ParseCellKind(tag)
			if !ok {
				return nil, nil, nil, fmt.Errorf("genfixture: grid[%d][%d]: unknown cell kind %q", r, c, tag)
			}
			row[c] = kind
		}
		rows[r] = row
	}
	grid := core.NewGridFromRows(rows)

	robots := make([]core.Robot, len(s.Robots))
	for i, rs := range s.Robots {
		rt, ok := core.ParseRobotType(rs.Type)
		if !ok {
			return nil, nil, nil, fmt.Errorf("genfixture: robot %s: unknown robot type %q", rs.ID, rs.Type)
		}
		sh, ok := core.ParseShift(rs.Shift)
		if !ok {
			return nil, nil, nil, fmt.Errorf("genfixture: robot %s: unknown shift %q", rs.ID, rs.Shift)
		}
		battery := cfg.DefaultBattery
		if rs.Battery != nil {
			battery = *rs.Battery
		}
		id := rs.ID
		if id == "" {
			id = NewStableID("robot")
		}
		robots[i] = core.Robot{
			ID:      id,
			Type:    rt,
			Shift:   sh,
			Battery: battery,
			Start:   core.Coord{Row: rs.Position[0], Col: rs.Position[1]},
		}
	}

	tasks := make([]core.Task, len(s.Tasks))
	for i, ts := range s.Tasks {
		tt, ok := core.ParseTaskType(ts.Type)
		if !ok {
			return nil, nil, nil, fmt.Errorf("genfixture: task %s: unknown task type %q", ts.ID, ts.Type)
		}
		sh, ok := core.ParseShift(ts.Shift)
		if !ok {
			return nil, nil, nil, fmt.Errorf("genfixture: task %s: unknown shift %q", ts.ID, ts.Shift)
		}
		taskID := ts.ID
		if taskID == "" {
			taskID = NewStableID("task")
		}
		tasks[i] = core.Task{
			ID:      taskID,
			Type:    tt,
			Shift:   sh,
			Pickup:  core.Coord{Row: ts.Pickup[0], Col: ts.Pickup[1]},
			Dropoff: core.Coord{Row: ts.Dropoff[0], Col: ts.Dropoff[1]},
		}
	}

	return grid, robots, tasks, nil
}

// FromCore is ToCore's inverse, used by round-trip tests.
func FromCore(g *core.Grid, robots []core.Robot, tasks []core.Task) Snapshot {
	cells := make([][]string, g.Height)
	for r := 0; r < g.Height; r++ {
		row := make([]string, g.Width)
		for c := 0; c < g.Width; c++ {
			kind, _ := g.Get(r, c)
			row[c] = kind.String()
		}
		cells[r] = row
	}

	robotSpecs := make([]RobotSpec, len(robots))
	for i, r := range robots {
		battery := r.Battery
		robotSpecs[i] = RobotSpec{
			ID:       r.ID,
			Type:     r.Type.String(),
			Shift:    r.Shift.String(),
			Battery:  &battery,
			Position: [2]int{r.Start.Row, r.Start.Col},
		}
	}

	taskSpecs := make([]TaskSpec, len(tasks))
	for i, t := range tasks {
		taskSpecs[i] = TaskSpec{
			ID:      t.ID,
			Type:    t.Type.String(),
			Shift:   t.Shift.String(),
			Pickup:  [2]int{t.Pickup.Row, t.Pickup.Col},
			Dropoff: [2]int{t.Dropoff.Row, t.Dropoff.Col},
		}
	}

	return Snapshot{
		Grid: GridSpec{
			Width:  g.Width,
			Height: g.Height,
			Cells:  cells,
		},
		Robots: robotSpecs,
		Tasks:  taskSpecs,
	}
}
