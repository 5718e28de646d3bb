// Tracks simulation-wide and per-task performance metrics: completion
// counts, queueing delay, sojourn time, and per-step snapshots.

package sim

import (
	"fmt"
	"math"
	"sort"
)

// ServerSnapshot captures one server's observable state at the end of a step.
type ServerSnapshot struct {
	ServerID    int
	Busy        bool
	QueueLength int
}

// StepSnapshot captures all servers' observable state at the end of a step.
type StepSnapshot struct {
	Step    int64
	Servers []ServerSnapshot
}

// Metrics aggregates statistics about the simulation for final reporting.
// Counters are monotonically non-decreasing for the lifetime of a run;
// they reset only by constructing a new Engine.
type Metrics struct {
	TotalTasks         int64 // number of tasks completed
	TotalQueueWaitTime int64 // sum of queue wait times over completed tasks
	TotalTimeInSystem  int64 // sum of sojourn times over completed tasks

	WaitTimes    []float64 // raw queue wait samples, one per completed task
	SojournTimes []float64 // raw sojourn samples, one per completed task

	Snapshots []StepSnapshot // one snapshot per simulated step
}

// NewMetrics creates an empty metrics accumulator.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordCompletion finalizes the statistics for a completed task.
func (m *Metrics) RecordCompletion(t *Task) {
	m.TotalTasks++
	m.TotalQueueWaitTime += t.QueueWaitTime
	m.TotalTimeInSystem += t.SojournTime()
	m.WaitTimes = append(m.WaitTimes, float64(t.QueueWaitTime))
	m.SojournTimes = append(m.SojournTimes, float64(t.SojournTime()))
}

// RecordSnapshot appends the per-step snapshot for external consumption.
func (m *Metrics) RecordSnapshot(snap StepSnapshot) {
	m.Snapshots = append(m.Snapshots, snap)
}

// AvgWaitTime returns the mean queue wait over completed tasks,
// or 0 if no task has completed.
func (m *Metrics) AvgWaitTime() float64 {
	if m.TotalTasks == 0 {
		return 0
	}
	return float64(m.TotalQueueWaitTime) / float64(m.TotalTasks)
}

// AvgTimeInSystem returns the mean sojourn time over completed tasks,
// or 0 if no task has completed.
func (m *Metrics) AvgTimeInSystem() float64 {
	if m.TotalTasks == 0 {
		return 0
	}
	return float64(m.TotalTimeInSystem) / float64(m.TotalTasks)
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(steps int64) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Steps simulated      : %d\n", steps)
	fmt.Printf("Completed Tasks      : %d\n", m.TotalTasks)
	if m.TotalTasks > 0 {
		fmt.Printf("Average Wait Time    : %.2f ticks\n", m.AvgWaitTime())
		fmt.Printf("Average Time In Sys  : %.2f ticks\n", m.AvgTimeInSystem())
	}
}

// Distribution captures a statistical summary of a metric.
type Distribution struct {
	Mean  float64
	P50   float64
	P95   float64
	P99   float64
	Min   float64
	Max   float64
	Count int
}

// NewDistribution computes a Distribution from raw values.
// Returns zero-value Distribution for empty input.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return Distribution{
		Mean:  sum / float64(len(sorted)),
		P50:   percentile(sorted, 50),
		P95:   percentile(sorted, 95),
		P99:   percentile(sorted, 99),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Count: len(sorted),
	}
}

// percentile computes the p-th percentile using linear interpolation.
// Input must be sorted.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// WaitTimeDistribution summarizes queue wait over completed tasks.
func (m *Metrics) WaitTimeDistribution() Distribution {
	return NewDistribution(m.WaitTimes)
}

// SojournTimeDistribution summarizes time in system over completed tasks.
func (m *Metrics) SojournTimeDistribution() Distribution {
	return NewDistribution(m.SojournTimes)
}
