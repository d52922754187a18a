// Package task defines the unit of work serviced by the scheduler.
package task

import "fmt"

// Task is a single unit of work with the service time it still requires.
// Remaining is strictly positive for every task held in a queue; a task is
// discarded the instant Remaining reaches zero.
type Task struct {
	ID        string
	Remaining int
}

// New creates a task with the given identifier and service burst.
func New(id string, burst int) *Task {
	return &Task{ID: id, Remaining: burst}
}

// ID formats a task identifier from the owning queue id and the per-queue
// admission counter, zero-padded to 3 digits.
func ID(queueID string, counter int) string {
	return fmt.Sprintf("%s-%03d", queueID, counter)
}
