// Implements the Server state machine. A server is either Idle or Busy,
// owns a FIFO wait queue, and serves at most one task at a time.

package sim

import (
	"github.com/sirupsen/logrus"
)

// ServerState represents the state of a server.
type ServerState string

const (
	ServerIdle ServerState = "idle"
	ServerBusy ServerState = "busy"
)

// Server serves one task at a time and queues the rest.
// Invariant: State == ServerBusy exactly when Current != nil.
type Server struct {
	ID      int
	State   ServerState
	Current *Task      // task in the single in-service slot; nil when idle
	Queue   *WaitQueue // tasks waiting at this server, FIFO

	TotalBusyTime int64 // sum of InitialServiceTime over completed tasks
	TasksServed   int64 // number of tasks this server completed
}

// NewServer creates an idle server with an empty queue.
func NewServer(id int) *Server {
	return &Server{
		ID:    id,
		State: ServerIdle,
		Queue: &WaitQueue{},
	}
}

// Tick advances the server by one step of simulated time and returns the
// task completed during this tick, if any. Two sub-steps run within the
// same tick:
//
//  1. If busy, decrement the current task's remaining service time and
//     finalize it when it reaches zero. A task whose service began this
//     very step (StartStep == clock) is not decremented; its first tick of
//     service lands on the next step.
//  2. If idle (now or already) and the queue is non-empty, dequeue exactly
//     one task and begin serving it.
func (s *Server) Tick(clock int64) *Task {
	var completed *Task

	if s.State == ServerBusy && s.Current.StartStep < clock {
		s.Current.RemainingServiceTime--
		if s.Current.RemainingServiceTime <= 0 {
			completed = s.completeService(clock)
		}
	}

	if s.State == ServerIdle && s.Queue.Len() > 0 {
		s.beginService(s.Queue.Dequeue(), clock)
	}

	return completed
}

// beginService moves a task into the in-service slot and marks the server busy.
func (s *Server) beginService(t *Task, clock int64) {
	s.State = ServerBusy
	s.Current = t
	t.State = StateInService
	t.StartStep = clock
	t.AssignedServer = s.ID
	t.QueueWaitTime = clock - t.ArrivalStep
	logrus.Debugf("[step %d] server %d beginning service of task %d (waited %d)",
		clock, s.ID, t.ID, t.QueueWaitTime)
}

// completeService finalizes the current task, detaches it, and goes idle.
func (s *Server) completeService(clock int64) *Task {
	t := s.Current
	t.RemainingServiceTime = 0
	t.CompletionStep = clock
	t.State = StateCompleted

	s.TotalBusyTime += t.InitialServiceTime
	s.TasksServed++
	s.Current = nil
	s.State = ServerIdle

	logrus.Debugf("[step %d] server %d completed task %d", clock, s.ID, t.ID)
	return t
}

// QueueLength returns the number of tasks waiting at this server.
func (s *Server) QueueLength() int {
	return s.Queue.Len()
}

// Busy reports whether the server is currently serving a task.
func (s *Server) Busy() bool {
	return s.State == ServerBusy
}
