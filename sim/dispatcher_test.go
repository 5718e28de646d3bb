package sim

import (
	"testing"
)

func makeServers(n int) []*Server {
	servers := make([]*Server, n)
	for i := range servers {
		servers[i] = NewServer(i)
	}
	return servers
}

func TestShortestQueueDispatcher_PrefersLowestIdleID(t *testing.T) {
	// GIVEN three idle servers
	servers := makeServers(3)
	d := &ShortestQueueDispatcher{}

	// WHEN a task is assigned
	task := NewTask(1, 0, 4)
	d.Assign(task, servers, 0)

	// THEN the lowest-id idle server starts serving it immediately
	if servers[0].Current != task {
		t.Fatalf("expected server 0 to serve the task")
	}
	if task.QueueWaitTime != 0 || task.StartStep != 0 {
		t.Errorf("direct assignment timing: wait=%d start=%d, want 0/0", task.QueueWaitTime, task.StartStep)
	}
}

func TestShortestQueueDispatcher_SkipsBusyForIdle(t *testing.T) {
	// GIVEN server 0 busy and server 1 idle
	servers := makeServers(2)
	d := &ShortestQueueDispatcher{}
	first := NewTask(1, 0, 5)
	d.Assign(first, servers, 0)

	// WHEN a second task arrives
	second := NewTask(2, 1, 5)
	d.Assign(second, servers, 1)

	// THEN it goes to the idle server, never the same one twice
	if servers[1].Current != second {
		t.Fatalf("expected server 1 to serve the second task")
	}
}

func TestShortestQueueDispatcher_ShortestQueueWins(t *testing.T) {
	// GIVEN all servers busy, with queue lengths [2, 0, 1]
	servers := makeServers(3)
	d := &ShortestQueueDispatcher{}
	for _, s := range servers {
		s.beginService(NewTask(int64(100+s.ID), 0, 50), 0)
	}
	servers[0].Queue.Enqueue(NewTask(10, 0, 1))
	servers[0].Queue.Enqueue(NewTask(11, 0, 1))
	servers[2].Queue.Enqueue(NewTask(12, 0, 1))

	// WHEN a task is dispatched
	task := NewTask(1, 1, 3)
	d.Assign(task, servers, 1)

	// THEN it joins the shortest queue and remains un-started
	if servers[1].Queue.Len() != 1 || servers[1].Queue.Peek() != task {
		t.Fatalf("expected task queued at server 1")
	}
	if task.StartStep != Unset {
		t.Errorf("queued task must not be started: start=%d", task.StartStep)
	}
	if task.AssignedServer != 1 {
		t.Errorf("AssignedServer: got %d, want 1", task.AssignedServer)
	}
}

func TestShortestQueueDispatcher_TieBreaksToLowestID(t *testing.T) {
	// GIVEN all servers busy with equal queue lengths
	servers := makeServers(3)
	d := &ShortestQueueDispatcher{}
	for _, s := range servers {
		s.beginService(NewTask(int64(100+s.ID), 0, 50), 0)
	}

	// WHEN a task is dispatched
	task := NewTask(1, 1, 3)
	d.Assign(task, servers, 1)

	// THEN the first minimum (lowest id) wins
	if servers[0].Queue.Len() != 1 {
		t.Fatalf("expected tie to break to server 0, queues: %d/%d/%d",
			servers[0].Queue.Len(), servers[1].Queue.Len(), servers[2].Queue.Len())
	}
}

func TestRoundRobinDispatcher_RotatesTargets(t *testing.T) {
	// GIVEN three idle servers and a round-robin dispatcher
	servers := makeServers(3)
	d := &RoundRobinDispatcher{}

	// WHEN three tasks are assigned
	for i := int64(0); i < 3; i++ {
		d.Assign(NewTask(i, i, 10), servers, i)
	}

	// THEN each server got exactly one task
	for _, s := range servers {
		if s.Current == nil {
			t.Fatalf("server %d got no task", s.ID)
		}
	}

	// AND a fourth task queues behind the (busy) first server
	fourth := NewTask(4, 3, 10)
	d.Assign(fourth, servers, 3)
	if servers[0].Queue.Len() != 1 {
		t.Errorf("expected fourth task queued at server 0")
	}
}

func TestNewDispatcher_KnownPolicies(t *testing.T) {
	if _, ok := NewDispatcher("shortest-queue").(*ShortestQueueDispatcher); !ok {
		t.Errorf("shortest-queue: wrong dispatcher type")
	}
	if _, ok := NewDispatcher("").(*ShortestQueueDispatcher); !ok {
		t.Errorf("empty policy must default to shortest-queue")
	}
	if _, ok := NewDispatcher("round-robin").(*RoundRobinDispatcher); !ok {
		t.Errorf("round-robin: wrong dispatcher type")
	}
}

func TestNewDispatcher_UnknownPolicyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("unknown policy did not panic")
		}
	}()
	NewDispatcher("bogus")
}
