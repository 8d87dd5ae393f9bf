// Command warehouse-schedule loads a warehouse snapshot (grid, robots,
// tasks) from a YAML file or stdin, runs the scheduler, and prints the
// resulting assignment.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/elektrokombinacija/warehouse-scheduler/internal/config"
	"github.com/elektrokombinacija/warehouse-scheduler/internal/core"
	"github.com/elektrokombinacija/warehouse-scheduler/internal/genfixture"
	"github.com/elektrokombinacija/warehouse-scheduler/internal/scheduler"
)

func main() {
	path := flag.String("in", "-", "path to a YAML snapshot, or - for stdin")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	data, err := readInput(*path)
	if err != nil {
		fatal(err)
	}

	snapshot, err := genfixture.Decode(data)
	if err != nil {
		fatal(err)
	}

	grid, robots, tasks, err := genfixture.ToCore(snapshot, cfg)
	if err != nil {
		fatal(err)
	}

	start := time.Now()
	result := scheduler.ScheduleWithConfig(grid, robots, tasks, cfg)
	elapsed := time.Since(start)

	printReport(result, tasks, elapsed)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "warehouse-schedule:", err)
	os.Exit(1)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printReport(result core.AssignmentResult, tasks []core.Task, elapsed time.Duration) {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	sort.Strings(ids)

	fmt.Printf("=== Warehouse Schedule (%d/%d tasks assigned, %v) ===\n", len(result), len(tasks), elapsed)
	for _, id := range ids {
		pair, ok := result[id]
		if !ok {
			fmt.Printf("  %s: unassigned\n", id)
			continue
		}
		fmt.Printf("  %s -> %s  cost=%d  pickup_steps=%d  dropoff_steps=%d",
			id, pair.RobotID, pair.EstimatedBatteryCost, len(pair.PathToPickup)-1, len(pair.PathToDropoff)-1)
		if pair.PathToCharge != nil {
			fmt.Printf("  charge_steps=%d", len(pair.PathToCharge)-1)
		}
		fmt.Println()
	}
}
