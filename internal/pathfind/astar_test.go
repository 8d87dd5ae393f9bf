package pathfind

import (
	"testing"

	"github.com/elektrokombinacija/warehouse-scheduler/internal/core"
)

func emptyGrid(n int) *core.Grid {
	return core.NewGrid(n, n)
}

func TestFindPathStraightLine(t *testing.T) {
	g := emptyGrid(5)
	res := FindPath(g, core.Coord{Row: 0, Col: 0}, core.Coord{Row: 3, Col: 3}, false)
	if !res.Found {
		t.Fatal("expected a path on an empty grid")
	}
	if res.Path[0] != (core.Coord{Row: 0, Col: 0}) {
		t.Errorf("path should start at origin, got %v", res.Path[0])
	}
	if res.Path[len(res.Path)-1] != (core.Coord{Row: 3, Col: 3}) {
		t.Errorf("path should end at goal, got %v", res.Path[len(res.Path)-1])
	}
	if res.Cost != 6 {
		t.Errorf("expected Manhattan-optimal cost 6 on an empty grid, got %d", res.Cost)
	}
	for i := 1; i < len(res.Path); i++ {
		dr := abs(res.Path[i].Row - res.Path[i-1].Row)
		dc := abs(res.Path[i].Col - res.Path[i-1].Col)
		if dr+dc != 1 {
			t.Errorf("step %d->%d is not 4-adjacent: %v -> %v", i-1, i, res.Path[i-1], res.Path[i])
		}
	}
}

func TestFindPathCarryingDoublesCost(t *testing.T) {
	g := emptyGrid(5)
	unloaded := FindPath(g, core.Coord{Row: 0, Col: 0}, core.Coord{Row: 1, Col: 1}, false)
	loaded := FindPath(g, core.Coord{Row: 0, Col: 0}, core.Coord{Row: 1, Col: 1}, true)
	if loaded.Cost != 2*unloaded.Cost {
		t.Errorf("carrying should double cost: unloaded=%d loaded=%d", unloaded.Cost, loaded.Cost)
	}
}

func TestFindPathRoutesThroughGapInObstacleWall(t *testing.T) {
	g := core.NewGrid(5, 5)
	for r := 0; r < 5; r++ {
		if r != 2 {
			g.Set(r, 2, core.Obstacle)
		}
	}
	res := FindPath(g, core.Coord{Row: 0, Col: 0}, core.Coord{Row: 0, Col: 4}, false)
	if !res.Found {
		t.Fatal("expected a path through the gap at row 2")
	}
	found := false
	for _, at := range res.Path {
		if at == (core.Coord{Row: 2, Col: 2}) {
			found = true
		}
	}
	if !found {
		t.Error("expected the path to funnel through the only gap")
	}
}

func TestFindPathUnreachableReturnsNotFound(t *testing.T) {
	g := core.NewGrid(3, 3)
	for r := 0; r < 3; r++ {
		g.Set(r, 1, core.Obstacle)
	}
	res := FindPath(g, core.Coord{Row: 0, Col: 0}, core.Coord{Row: 0, Col: 2}, false)
	if res.Found {
		t.Fatal("expected no path when a full column of obstacles separates origin and goal")
	}
}

func TestFindPathBoxOnlyPassableAsGoal(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.Set(1, 1, core.Box)

	// Box not the goal: must route around it.
	res := FindPath(g, core.Coord{Row: 1, Col: 0}, core.Coord{Row: 1, Col: 2}, false)
	if !res.Found {
		t.Fatal("expected a path around the non-goal box")
	}
	for _, at := range res.Path {
		if at == (core.Coord{Row: 1, Col: 1}) {
			t.Error("path should not cross a box that isn't the goal")
		}
	}

	// Box is the goal: must be reachable.
	res2 := FindPath(g, core.Coord{Row: 0, Col: 1}, core.Coord{Row: 1, Col: 1}, false)
	if !res2.Found {
		t.Fatal("expected the box to be reachable as a goal")
	}
}

func TestFindPathOriginEqualsGoal(t *testing.T) {
	g := emptyGrid(3)
	res := FindPath(g, core.Coord{Row: 1, Col: 1}, core.Coord{Row: 1, Col: 1}, false)
	if !res.Found || res.Cost != 0 || len(res.Path) != 1 {
		t.Fatalf("expected a trivial zero-cost single-cell path, got %+v", res)
	}
}
