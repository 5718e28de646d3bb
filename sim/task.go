// Defines the Task struct that models an individual unit of work in the simulation.
// Tracks arrival, service start, and completion steps plus remaining service time.

package sim

import (
	"fmt"
)

// TaskState represents the lifecycle state of a task.
type TaskState string

const (
	StateWaiting   TaskState = "waiting"
	StateInService TaskState = "in_service"
	StateCompleted TaskState = "completed"
)

// Unset marks a step or server id field that has not been assigned yet.
const Unset = -1

// Task models a single task's lifecycle in the simulation.
// A task is owned by exactly one place at a time: nowhere (just spawned),
// one server's wait queue, or one server's in-service slot. Once
// CompletionStep is set the task is detached from its server and no longer
// mutated.
type Task struct {
	ID int64 // Unique identifier for the task

	ArrivalStep          int64 // Step at which the task entered the system
	InitialServiceTime   int64 // Sampled service demand in ticks (never mutated)
	RemainingServiceTime int64 // Ticks of service still owed; always >= 0

	StartStep      int64 // Step service began; Unset while waiting
	CompletionStep int64 // Step service finished; Unset until completed
	QueueWaitTime  int64 // StartStep - ArrivalStep; 0 for tasks that skip the queue

	// AssignedServer is a non-owning server id. The server owns the task
	// value in its queue or current slot; the task only remembers where it
	// went. Unset until dispatched.
	AssignedServer int

	State TaskState
}

// NewTask creates a task arriving at the given step with the given service demand.
func NewTask(id int64, arrivalStep int64, serviceTime int64) *Task {
	return &Task{
		ID:                   id,
		ArrivalStep:          arrivalStep,
		InitialServiceTime:   serviceTime,
		RemainingServiceTime: serviceTime,
		StartStep:            Unset,
		CompletionStep:       Unset,
		AssignedServer:       Unset,
		State:                StateWaiting,
	}
}

// SojournTime returns completion - arrival for a completed task.
func (t *Task) SojournTime() int64 {
	return t.CompletionStep - t.ArrivalStep
}

// This method returns a human-readable string representation of a Task.
func (t Task) String() string {
	return fmt.Sprintf("Task: (ID: %d, State: %s, Arrival: %d, Remaining: %d)",
		t.ID, t.State, t.ArrivalStep, t.RemainingServiceTime)
}
