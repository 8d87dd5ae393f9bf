package core

// Task is a pickup-and-delivery unit of work.
type Task struct {
	ID      string
	Type    TaskType
	Shift   Shift
	Pickup  Coord
	Dropoff Coord
}
