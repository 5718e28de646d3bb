package cmd

import (
	"fmt"
	"strings"

	"github.com/queueing-sim/queueing-sim/sim/trace"
)

const (
	chartWidth  = 80
	chartHeight = 16
)

// PrintQueueChart renders an ASCII chart of the total number of queued
// tasks over the run, downsampled to the chart width.
func PrintQueueChart(rt *trace.RunTrace) {
	fmt.Print(renderQueueChart(rt, chartWidth, chartHeight))
}

func renderQueueChart(rt *trace.RunTrace, width, height int) string {
	if rt == nil || len(rt.Records) == 0 {
		return "No data to display\n"
	}

	var sb strings.Builder
	sb.WriteString("\nQueued Tasks Over Time\n")
	sb.WriteString(strings.Repeat("=", width))
	sb.WriteString("\n")

	// Downsample step records into one bucket per column, keeping the bucket max.
	cols := width - 6 // leave room for the y-axis labels
	samples := make([]int, cols)
	maxQueued := 0
	for col := 0; col < cols; col++ {
		lo := col * len(rt.Records) / cols
		hi := (col + 1) * len(rt.Records) / cols
		if hi <= lo {
			hi = lo + 1
		}
		if hi > len(rt.Records) {
			hi = len(rt.Records)
		}
		for _, rec := range rt.Records[lo:hi] {
			if q := rec.TotalQueued(); q > samples[col] {
				samples[col] = q
			}
		}
		if samples[col] > maxQueued {
			maxQueued = samples[col]
		}
	}

	if maxQueued == 0 {
		sb.WriteString("(no task ever waited in a queue)\n")
		return sb.String()
	}

	for row := height; row >= 1; row-- {
		threshold := float64(row) / float64(height) * float64(maxQueued)
		sb.WriteString(fmt.Sprintf("%4d |", int(threshold)))
		for col := 0; col < cols; col++ {
			if float64(samples[col]) >= threshold {
				sb.WriteString("#")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("     +")
	sb.WriteString(strings.Repeat("-", width-6))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("      step 0 .. %d\n", rt.Records[len(rt.Records)-1].Step))

	return sb.String()
}
