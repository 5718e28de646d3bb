package cmd

import (
	"fmt"

	sim "github.com/queueing-sim/queueing-sim/sim"
	"github.com/queueing-sim/queueing-sim/sim/trace"
)

// PrintReport displays the end-of-run report: the engine's aggregate
// queries, wait/sojourn distributions, per-server counters, and the
// time-averaged trace summary.
func PrintReport(engine *sim.Engine, summary *trace.Summary) {
	engine.Metrics.Print(engine.Clock)

	fmt.Printf("Final Queue Lengths  : %v\n", engine.QueueLengths())
	fmt.Printf("Busy Servers (final) : %d\n", engine.BusyServerCount())
	fmt.Printf("Avg Queue Length     : %.2f (instantaneous)\n", engine.AvgQueueLength())
	fmt.Printf("Avg Busy Fraction    : %.2f (instantaneous)\n", engine.AvgBusyFraction())

	if engine.Metrics.TotalTasks > 0 {
		printDistribution("Wait Time", engine.Metrics.WaitTimeDistribution())
		printDistribution("Time In System", engine.Metrics.SojournTimeDistribution())
	}

	fmt.Println("=== Run Averages (over time) ===")
	fmt.Printf("Mean Queue Length    : %.2f\n", summary.MeanQueueLength)
	fmt.Printf("Mean Busy Fraction   : %.2f\n", summary.MeanBusyFraction)
	fmt.Printf("Peak Queue Length    : %d\n", summary.PeakQueueLength)
	fmt.Printf("Peak Busy Servers    : %d\n", summary.PeakBusyServers)

	fmt.Println("=== Per-Server Counters ===")
	for _, s := range engine.Servers {
		fmt.Printf("Server %d: served=%d busy_time=%d ticks\n", s.ID, s.TasksServed, s.TotalBusyTime)
	}
}

func printDistribution(label string, d sim.Distribution) {
	fmt.Printf("%-20s : mean=%.2f p50=%.2f p95=%.2f p99=%.2f max=%.2f (n=%d)\n",
		label, d.Mean, d.P50, d.P95, d.P99, d.Max, d.Count)
}
