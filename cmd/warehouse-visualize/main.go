// Command warehouse-visualize renders a warehouse snapshot, and
// optionally the schedule computed for it, as an SVG: obstacles,
// ramps/slopes, charging stations, robots, tasks, and every emitted
// path drawn as a polyline. It replaces the teacher's gioui desktop
// viewer with a dependency-light static artifact (see DESIGN.md).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/elektrokombinacija/warehouse-scheduler/internal/config"
	"github.com/elektrokombinacija/warehouse-scheduler/internal/core"
	"github.com/elektrokombinacija/warehouse-scheduler/internal/genfixture"
	"github.com/elektrokombinacija/warehouse-scheduler/internal/scheduler"
)

const cellPx = 32

func main() {
	in := flag.String("in", "-", "path to a YAML snapshot, or - for stdin")
	out := flag.String("out", "-", "output SVG path, or - for stdout")
	drawPaths := flag.Bool("paths", true, "compute and draw the schedule's paths")
	flag.Parse()

	data, err := readInput(*in)
	if err != nil {
		fatal(err)
	}

	snapshot, err := genfixture.Decode(data)
	if err != nil {
		fatal(err)
	}

	cfg := config.Default()
	grid, robots, tasks, err := genfixture.ToCore(snapshot, cfg)
	if err != nil {
		fatal(err)
	}

	var result core.AssignmentResult
	if *drawPaths {
		result = scheduler.ScheduleWithConfig(grid, robots, tasks, cfg)
	}

	w := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		w = f
	}

	render(w, grid, robots, tasks, result)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "warehouse-visualize:", err)
	os.Exit(1)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func render(w *os.File, g *core.Grid, robots []core.Robot, tasks []core.Task, result core.AssignmentResult) {
	width := g.Width * cellPx
	height := g.Height * cellPx

	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			kind, _ := g.Get(r, c)
			canvas.Rect(c*cellPx, r*cellPx, cellPx, cellPx, "fill:"+cellColor(kind)+";stroke:#888")
		}
	}

	for _, pair := range result {
		drawPath(canvas, pair.PathToCharge, "stroke:#999;stroke-width:2;fill:none;stroke-dasharray:4,3")
		drawPath(canvas, pair.PathToPickup, "stroke:#1560bd;stroke-width:3;fill:none")
		drawPath(canvas, pair.PathToDropoff, "stroke:#2e8b57;stroke-width:3;fill:none")
	}

	for _, r := range robots {
		cx, cy := r.Start.Col*cellPx+cellPx/2, r.Start.Row*cellPx+cellPx/2
		canvas.Circle(cx, cy, cellPx/3, "fill:#333")
		canvas.Text(cx, cy-cellPx/2, r.ID, "font-size:10;text-anchor:middle")
	}

	for _, t := range tasks {
		px, py := t.Pickup.Col*cellPx+cellPx/2, t.Pickup.Row*cellPx+cellPx/2
		canvas.Rect(px-cellPx/4, py-cellPx/4, cellPx/2, cellPx/2, "fill:#d2691e")
		canvas.Text(px, py+cellPx, t.ID, "font-size:10;text-anchor:middle")
	}
}

func drawPath(canvas *svg.SVG, path core.Path, style string) {
	if len(path) < 2 {
		return
	}
	xs := make([]int, len(path))
	ys := make([]int, len(path))
	for i, at := range path {
		xs[i] = at.Col*cellPx + cellPx/2
		ys[i] = at.Row*cellPx + cellPx/2
	}
	canvas.Polyline(xs, ys, style)
}

func cellColor(kind core.CellKind) string {
	switch kind {
	case core.Obstacle:
		return "#222"
	case core.Ramp:
		return "#f0c040"
	case core.Slope:
		return "#e07a1f"
	case core.ChargingStation:
		return "#4caf50"
	case core.Box:
		return "#d2691e"
	default:
		return "#fafafa"
	}
}
