package trace

// Summary aggregates a RunTrace over the whole run. Unlike the engine's
// instantaneous queries, the means here are time-averages: every step
// contributes one sample.
type Summary struct {
	Steps            int
	MeanQueueLength  float64 // time-averaged mean queue length per server
	MeanBusyFraction float64 // time-averaged busy fraction
	PeakQueueLength  int     // largest single-server queue observed
	PeakBusyServers  int     // most servers simultaneously busy
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace, numServers int) *Summary {
	summary := &Summary{}
	if rt == nil || len(rt.Records) == 0 || numServers <= 0 {
		return summary
	}

	summary.Steps = len(rt.Records)

	totalQueued := 0
	totalBusy := 0
	for _, rec := range rt.Records {
		totalQueued += rec.TotalQueued()
		totalBusy += rec.BusyServers

		for _, l := range rec.QueueLengths {
			if l > summary.PeakQueueLength {
				summary.PeakQueueLength = l
			}
		}
		if rec.BusyServers > summary.PeakBusyServers {
			summary.PeakBusyServers = rec.BusyServers
		}
	}

	steps := float64(len(rt.Records))
	summary.MeanQueueLength = float64(totalQueued) / steps / float64(numServers)
	summary.MeanBusyFraction = float64(totalBusy) / steps / float64(numServers)

	return summary
}
