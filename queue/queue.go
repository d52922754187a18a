// Package queue implements the capacity-bounded FIFO used by the scheduler.
//
// The queue performs no internal locking – the scheduler core is
// single-threaded by contract and hosts that share a scheduler across
// goroutines serialise access externally.
package queue

import "github.com/cafeq/cafeq/model/task"

// Queue is a bounded first-in-first-out container of tasks.
type Queue struct {
	id       string
	capacity int
	tasks    []*task.Task
}

// New creates an empty queue with the given identity and capacity.
func New(id string, capacity int) *Queue {
	return &Queue{id: id, capacity: capacity}
}

// ID returns the queue identifier.
func (q *Queue) ID() string {
	return q.id
}

// Capacity returns the maximum number of tasks the queue can hold.
func (q *Queue) Capacity() int {
	return q.capacity
}

// Enqueue appends t to the tail. It reports false, with no side effect, when
// the queue is already at capacity.
func (q *Queue) Enqueue(t *task.Task) bool {
	if len(q.tasks) >= q.capacity {
		return false
	}
	q.tasks = append(q.tasks, t)
	return true
}

// Dequeue removes and returns the head task; ok is false when the queue is
// empty.
func (q *Queue) Dequeue() (*task.Task, bool) {
	if len(q.tasks) == 0 {
		return nil, false
	}
	head := q.tasks[0]
	q.tasks = q.tasks[1:]
	return head, true
}

// Peek returns the head task without removing it.
func (q *Queue) Peek() (*task.Task, bool) {
	if len(q.tasks) == 0 {
		return nil, false
	}
	return q.tasks[0], true
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Tasks returns the queued tasks head to tail. The slice is a copy so
// traversal never mutates queue state.
func (q *Queue) Tasks() []*task.Task {
	return append([]*task.Task(nil), q.tasks...)
}
