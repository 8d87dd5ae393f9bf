package scheduler

import (
	"testing"

	"github.com/elektrokombinacija/warehouse-scheduler/internal/core"
)

// S1: a single compatible robot with ample battery serves its only task.
func TestScenarioSingleRobotSingleTask(t *testing.T) {
	g := core.NewGrid(5, 5)
	robots := []core.Robot{
		{ID: "r1", Type: core.General, Shift: core.AllHours, Battery: 100, Start: core.Coord{Row: 0, Col: 0}},
	}
	tasks := []core.Task{
		{ID: "t1", Type: core.TaskStandard, Shift: core.AllHours, Pickup: core.Coord{Row: 0, Col: 2}, Dropoff: core.Coord{Row: 4, Col: 4}},
	}

	result := Schedule(g, robots, tasks)
	pair, ok := result["t1"]
	if !ok {
		t.Fatal("expected t1 to be assigned")
	}
	if pair.RobotID != "r1" {
		t.Errorf("expected r1 assigned, got %s", pair.RobotID)
	}
}

// S2: two tasks, one robot — only the cheaper-to-reach task is served.
func TestScenarioOneRobotTwoTasksServesOne(t *testing.T) {
	g := core.NewGrid(10, 10)
	robots := []core.Robot{
		{ID: "r1", Type: core.General, Shift: core.AllHours, Battery: 100, Start: core.Coord{Row: 0, Col: 0}},
	}
	tasks := []core.Task{
		{ID: "near", Type: core.TaskStandard, Shift: core.AllHours, Pickup: core.Coord{Row: 0, Col: 1}, Dropoff: core.Coord{Row: 0, Col: 2}},
		{ID: "far", Type: core.TaskStandard, Shift: core.AllHours, Pickup: core.Coord{Row: 9, Col: 9}, Dropoff: core.Coord{Row: 9, Col: 8}},
	}

	result := Schedule(g, robots, tasks)
	if len(result) != 1 {
		t.Fatalf("expected exactly one task served by the single robot, got %d", len(result))
	}
}

// S3: incompatible robot type never picks up a task it cannot carry.
func TestScenarioTypeIncompatibilityBlocksAssignment(t *testing.T) {
	g := core.NewGrid(5, 5)
	robots := []core.Robot{
		{ID: "r1", Type: core.Fragile, Shift: core.AllHours, Battery: 100, Start: core.Coord{Row: 0, Col: 0}},
	}
	tasks := []core.Task{
		{ID: "t1", Type: core.TaskHeavy, Shift: core.AllHours, Pickup: core.Coord{Row: 0, Col: 2}, Dropoff: core.Coord{Row: 4, Col: 4}},
	}

	result := Schedule(g, robots, tasks)
	if len(result) != 0 {
		t.Fatalf("expected no assignment across incompatible type, got %+v", result)
	}
}

// S4: shift mismatch blocks assignment even when otherwise feasible.
func TestScenarioShiftIncompatibilityBlocksAssignment(t *testing.T) {
	g := core.NewGrid(5, 5)
	robots := []core.Robot{
		{ID: "r1", Type: core.General, Shift: core.Day, Battery: 100, Start: core.Coord{Row: 0, Col: 0}},
	}
	tasks := []core.Task{
		{ID: "t1", Type: core.TaskStandard, Shift: core.Night, Pickup: core.Coord{Row: 0, Col: 2}, Dropoff: core.Coord{Row: 4, Col: 4}},
	}

	result := Schedule(g, robots, tasks)
	if len(result) != 0 {
		t.Fatalf("expected no assignment across incompatible shift, got %+v", result)
	}
}

// S5: low battery is rescued by a charging-station detour.
func TestScenarioLowBatteryRescuedByChargingStation(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.Set(0, 1, core.ChargingStation)
	robots := []core.Robot{
		{ID: "r1", Type: core.General, Shift: core.AllHours, Battery: 1, Start: core.Coord{Row: 0, Col: 0}},
	}
	tasks := []core.Task{
		{ID: "t1", Type: core.TaskStandard, Shift: core.AllHours, Pickup: core.Coord{Row: 0, Col: 2}, Dropoff: core.Coord{Row: 0, Col: 4}},
	}

	result := Schedule(g, robots, tasks)
	pair, ok := result["t1"]
	if !ok {
		t.Fatal("expected the charging detour to make t1 feasible")
	}
	if pair.PathToCharge == nil {
		t.Error("expected a recorded recharge path")
	}
}

// S6: two equally-compatible robots competing for one task — the
// cheaper one wins, and the other stays free for nothing (no other task
// exists for it to take).
func TestScenarioCheaperRobotWinsCompetedTask(t *testing.T) {
	g := core.NewGrid(10, 10)
	robots := []core.Robot{
		{ID: "near", Type: core.General, Shift: core.AllHours, Battery: 100, Start: core.Coord{Row: 0, Col: 0}},
		{ID: "far", Type: core.General, Shift: core.AllHours, Battery: 100, Start: core.Coord{Row: 9, Col: 9}},
	}
	tasks := []core.Task{
		{ID: "t1", Type: core.TaskStandard, Shift: core.AllHours, Pickup: core.Coord{Row: 0, Col: 1}, Dropoff: core.Coord{Row: 0, Col: 2}},
	}

	result := Schedule(g, robots, tasks)
	pair, ok := result["t1"]
	if !ok {
		t.Fatal("expected t1 to be assigned")
	}
	if pair.RobotID != "near" {
		t.Errorf("expected the cheaper robot 'near' to win, got %s", pair.RobotID)
	}
}

func TestScheduleIsPureAndDoesNotMutateInputs(t *testing.T) {
	g := core.NewGrid(5, 5)
	robots := []core.Robot{
		{ID: "r1", Type: core.General, Shift: core.AllHours, Battery: 100, Start: core.Coord{Row: 0, Col: 0}},
	}
	tasks := []core.Task{
		{ID: "t1", Type: core.TaskStandard, Shift: core.AllHours, Pickup: core.Coord{Row: 0, Col: 2}, Dropoff: core.Coord{Row: 4, Col: 4}},
	}
	robotsBefore := append([]core.Robot(nil), robots...)
	tasksBefore := append([]core.Task(nil), tasks...)

	_ = Schedule(g, robots, tasks)

	for i := range robots {
		if robots[i] != robotsBefore[i] {
			t.Errorf("Schedule mutated robots[%d]", i)
		}
	}
	for i := range tasks {
		if tasks[i] != tasksBefore[i] {
			t.Errorf("Schedule mutated tasks[%d]", i)
		}
	}
}

func TestScheduleEmptyInputsYieldEmptyResult(t *testing.T) {
	g := core.NewGrid(3, 3)
	if result := Schedule(g, nil, nil); len(result) != 0 {
		t.Errorf("expected empty result for no robots/tasks, got %+v", result)
	}
}
