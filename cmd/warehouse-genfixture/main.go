// Command warehouse-genfixture emits a random, reproducible
// grid+robots+tasks YAML snapshot, adapted from the teacher's
// tools/gen_instances onto this repo's 2-D grid model.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/elektrokombinacija/warehouse-scheduler/internal/genfixture"
)

func main() {
	p := genfixture.DefaultRandomParams()

	seed := flag.Int64("seed", p.Seed, "random seed")
	width := flag.Int("width", p.Width, "grid width")
	height := flag.Int("height", p.Height, "grid height")
	robots := flag.Int("robots", p.NumRobots, "number of robots")
	tasks := flag.Int("tasks", p.NumTasks, "number of tasks")
	obstacles := flag.Float64("obstacle-density", p.ObstacleDensity, "fraction of cells that are obstacles")
	charging := flag.Float64("charging-density", p.ChargingDensity, "fraction of cells that are charging stations")
	out := flag.String("out", "-", "output path, or - for stdout")
	flag.Parse()

	p.Seed = *seed
	p.Width = *width
	p.Height = *height
	p.NumRobots = *robots
	p.NumTasks = *tasks
	p.ObstacleDensity = *obstacles
	p.ChargingDensity = *charging

	snapshot := genfixture.GenerateRandom(p)

	data, err := genfixture.Encode(snapshot)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warehouse-genfixture:", err)
		os.Exit(1)
	}

	if *out == "-" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "warehouse-genfixture:", err)
		os.Exit(1)
	}
}
