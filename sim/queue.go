// Implements the WaitQueue, which holds the tasks waiting at a single server.
// Tasks are enqueued by the dispatcher and dequeued when the server goes idle.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of tasks waiting for service.
// It only ever holds tasks whose service has not begun (StartStep unset).
type WaitQueue struct {
	queue []*Task // FIFO queue of tasks
}

// Enqueue adds a task to the back of the wait queue.
func (wq *WaitQueue) Enqueue(t *Task) {
	wq.queue = append(wq.queue, t)
}

// Dequeue removes and returns the task at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *Task {
	if len(wq.queue) == 0 {
		return nil
	}
	front := wq.queue[0]
	wq.queue = wq.queue[1:]
	return front
}

// Peek returns the task at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Task {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Len returns the number of tasks in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
func (wq *WaitQueue) Items() []*Task {
	return wq.queue
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
