// Package trace records per-step engine snapshots and computes run-level
// summaries. It is the bundled observer sink; the engine itself performs
// no I/O and keeps only instantaneous queries.
package trace

import "github.com/queueing-sim/queueing-sim/sim"

// StepRecord captures the aggregate system state at one step.
type StepRecord struct {
	Step         int64
	QueueLengths []int // per server, ascending id order
	BusyServers  int
}

// TotalQueued returns the number of waiting tasks across all servers.
func (r StepRecord) TotalQueued() int {
	total := 0
	for _, l := range r.QueueLengths {
		total += l
	}
	return total
}

// RunTrace collects step records during a simulation run.
type RunTrace struct {
	Records []StepRecord
}

// New creates a RunTrace ready for recording.
func New() *RunTrace {
	return &RunTrace{Records: make([]StepRecord, 0)}
}

// Record appends a step record.
func (rt *RunTrace) Record(rec StepRecord) {
	rt.Records = append(rt.Records, rec)
}

// Observer returns an engine observer that feeds this trace.
func (rt *RunTrace) Observer() sim.Observer {
	return func(step int64, servers []sim.ServerSnapshot) {
		rec := StepRecord{
			Step:         step,
			QueueLengths: make([]int, len(servers)),
		}
		for i, s := range servers {
			rec.QueueLengths[i] = s.QueueLength
			if s.Busy {
				rec.BusyServers++
			}
		}
		rt.Record(rec)
	}
}
