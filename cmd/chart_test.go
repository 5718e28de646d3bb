package cmd

import (
	"strings"
	"testing"

	"github.com/queueing-sim/queueing-sim/sim/trace"
)

func TestRenderQueueChart_EmptyTrace(t *testing.T) {
	if got := renderQueueChart(trace.New(), 80, 16); !strings.Contains(got, "No data") {
		t.Errorf("empty trace: got %q", got)
	}
	if got := renderQueueChart(nil, 80, 16); !strings.Contains(got, "No data") {
		t.Errorf("nil trace: got %q", got)
	}
}

func TestRenderQueueChart_NoQueueing(t *testing.T) {
	rt := trace.New()
	for i := int64(0); i < 10; i++ {
		rt.Record(trace.StepRecord{Step: i, QueueLengths: []int{0, 0}})
	}
	got := renderQueueChart(rt, 80, 16)
	if !strings.Contains(got, "no task ever waited") {
		t.Errorf("all-zero trace should say so, got %q", got)
	}
}

func TestRenderQueueChart_PlotsBars(t *testing.T) {
	rt := trace.New()
	for i := int64(0); i < 100; i++ {
		rt.Record(trace.StepRecord{Step: i, QueueLengths: []int{int(i / 10)}})
	}
	got := renderQueueChart(rt, 80, 16)
	if !strings.Contains(got, "#") {
		t.Errorf("chart has no bars:\n%s", got)
	}
	if !strings.Contains(got, "step 0 .. 99") {
		t.Errorf("chart missing x-axis range:\n%s", got)
	}
}
