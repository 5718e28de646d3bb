// Dispatch policies: route a newly arrived task to an idle server or into a queue.

package sim

import (
	"github.com/sirupsen/logrus"
)

// Dispatcher defines the interface for routing a new task to a server.
type Dispatcher interface {
	// Assign routes the task. Servers are always passed in ascending id
	// order; the policy must be deterministic for a given server state.
	Assign(task *Task, servers []*Server, clock int64)
}

// NewDispatcher creates a dispatcher of the specified type.
func NewDispatcher(policy string) Dispatcher {
	switch policy {
	case "shortest-queue", "":
		return &ShortestQueueDispatcher{}
	case "round-robin":
		return &RoundRobinDispatcher{}
	default:
		logrus.Panicf("unknown dispatch policy: %s", policy)
		return nil
	}
}

// GetAvailableDispatchers returns the list of supported dispatch policies.
func GetAvailableDispatchers() []string {
	return []string{"shortest-queue", "round-robin"}
}

// ShortestQueueDispatcher prefers any idle server and otherwise joins the
// shortest queue. Greedy and stateless: no look-ahead, no rebalancing of
// tasks already queued.
type ShortestQueueDispatcher struct{}

// Assign scans servers in ascending id order. The first idle server gets
// the task immediately (service begins, wait time trivially zero). If all
// servers are busy, the task joins the queue with the fewest waiting tasks;
// ties break to the lowest server id (first minimum wins).
func (d *ShortestQueueDispatcher) Assign(task *Task, servers []*Server, clock int64) {
	for _, s := range servers {
		if s.State == ServerIdle {
			s.beginService(task, clock)
			return
		}
	}

	target := servers[0]
	for _, s := range servers[1:] {
		if s.Queue.Len() < target.Queue.Len() {
			target = s
		}
	}
	enqueue(task, target, clock)
}

// RoundRobinDispatcher rotates the target server on every arrival,
// regardless of load. Starts service when the target happens to be idle,
// queues behind it otherwise.
type RoundRobinDispatcher struct {
	next int
}

func (d *RoundRobinDispatcher) Assign(task *Task, servers []*Server, clock int64) {
	target := servers[d.next%len(servers)]
	d.next++

	if target.State == ServerIdle {
		target.beginService(task, clock)
		return
	}
	enqueue(task, target, clock)
}

// enqueue appends a task to a server's wait queue. The task remains
// un-started; it only remembers which server's queue owns it.
func enqueue(task *Task, target *Server, clock int64) {
	task.AssignedServer = target.ID
	target.Queue.Enqueue(task)
	logrus.Debugf("[step %d] task %d queued at server %d (queue length %d)",
		clock, task.ID, target.ID, target.Queue.Len())
}
