// The Engine owns all servers and drives the simulation one discrete step
// at a time: arrival+dispatch, server ticks, statistics, clock increment.

package sim

import (
	"github.com/sirupsen/logrus"
)

// Observer receives the per-step snapshot for telemetry/plotting
// collaborators. It gets a copy of the server state, never live structs.
type Observer func(step int64, servers []ServerSnapshot)

// Engine is the core object that holds simulation time, system state, and
// the step loop. Single-threaded: all mutable state (servers, queues,
// tasks, counters) is owned and mutated exclusively by the engine's control
// flow.
type Engine struct {
	Servers  []*Server // fixed at construction, ascending id order
	Clock    int64
	MaxSteps int64
	Running  bool

	Arrivals   *ArrivalProcess
	Dispatcher Dispatcher
	Metrics    *Metrics

	observer Observer
}

// NewEngine validates the configuration and constructs a ready-to-run
// engine. On any invalid parameter it returns a *ConfigError and no engine.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))

	servers := make([]*Server, cfg.NumServers)
	for i := range servers {
		servers[i] = NewServer(i)
	}

	e := &Engine{
		Servers:    servers,
		MaxSteps:   cfg.MaxSteps,
		Arrivals:   NewArrivalProcess(cfg.ArrivalRate, NewServiceTimeSampler(cfg.ServiceTime), rng),
		Dispatcher: NewDispatcher(cfg.Dispatch),
		Metrics:    NewMetrics(),
	}
	return e, nil
}

// SetObserver installs a per-step observer callback. Pass nil to remove it.
func (e *Engine) SetObserver(fn Observer) {
	e.observer = fn
}

// Run drives the simulation until the clock reaches MaxSteps or Stop is
// called from an observer.
func (e *Engine) Run() {
	e.Running = true
	for e.Running && e.Clock < e.MaxSteps {
		e.Step()
	}
	e.Running = false
	logrus.Infof("[step %07d] simulation ended", e.Clock)
}

// Stop clears the running flag; the current step finishes, then Run returns.
func (e *Engine) Stop() {
	e.Running = false
}

// Step is the atomic unit of simulated time. Fixed order:
//
//	(a) arrival + dispatch
//	(b) one tick for every server, ascending id order
//	(c) statistics recording and observer callback
//	(d) clock increment and termination check
//
// Because (a) precedes (b), a task dispatched at step t has its remaining
// service time first decremented at step t+1, never at t.
func (e *Engine) Step() {
	if task := e.Arrivals.MaybeSpawn(e.Clock); task != nil {
		logrus.Debugf("[step %d] task %d arrived (service time %d)",
			e.Clock, task.ID, task.InitialServiceTime)
		e.Dispatcher.Assign(task, e.Servers, e.Clock)
	}

	for _, s := range e.Servers {
		if completed := s.Tick(e.Clock); completed != nil {
			e.Metrics.RecordCompletion(completed)
		}
	}

	snap := e.snapshot()
	e.Metrics.RecordSnapshot(snap)
	if e.observer != nil {
		e.observer(snap.Step, snap.Servers)
	}

	e.Clock++
	if e.Clock >= e.MaxSteps {
		e.Running = false
	}
}

// snapshot copies the observable server state for the current step.
func (e *Engine) snapshot() StepSnapshot {
	servers := make([]ServerSnapshot, len(e.Servers))
	for i, s := range e.Servers {
		servers[i] = ServerSnapshot{
			ServerID:    s.ID,
			Busy:        s.Busy(),
			QueueLength: s.QueueLength(),
		}
	}
	return StepSnapshot{Step: e.Clock, Servers: servers}
}

// QueueLengths returns the current queue length of every server, in id order.
func (e *Engine) QueueLengths() []int {
	lengths := make([]int, len(e.Servers))
	for i, s := range e.Servers {
		lengths[i] = s.QueueLength()
	}
	return lengths
}

// BusyServerCount returns the number of servers currently serving a task.
func (e *Engine) BusyServerCount() int {
	busy := 0
	for _, s := range e.Servers {
		if s.Busy() {
			busy++
		}
	}
	return busy
}

// AvgQueueLength returns the mean queue length across servers at this
// instant. It is a snapshot at query time, not a time-average over the run.
func (e *Engine) AvgQueueLength() float64 {
	total := 0
	for _, s := range e.Servers {
		total += s.QueueLength()
	}
	return float64(total) / float64(len(e.Servers))
}

// AvgBusyFraction returns the fraction of servers busy at this instant.
// Like AvgQueueLength, this is not a time-average.
func (e *Engine) AvgBusyFraction() float64 {
	return float64(e.BusyServerCount()) / float64(len(e.Servers))
}

// AvgWaitTime returns the mean queueing delay over completed tasks.
func (e *Engine) AvgWaitTime() float64 {
	return e.Metrics.AvgWaitTime()
}

// AvgTimeInSystem returns the mean sojourn time over completed tasks.
func (e *Engine) AvgTimeInSystem() float64 {
	return e.Metrics.AvgTimeInSystem()
}
