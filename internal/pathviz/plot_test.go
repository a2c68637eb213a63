package pathviz

import (
	"strings"
	"testing"
)

func TestPlotTrajectoryProducesNonEmptyCanvas(t *testing.T) {
	samples := []complex128{1, 0.8 + 0.1i, 0.5 + 0.2i, 0.1 + 0.05i}
	ts := []complex128{1, 0.75, 0.5, 0.1}

	out := PlotTrajectory(samples, ts, 40, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}

	drawn := false
	for _, r := range out {
		if r != '\n' && r != 0x2800 {
			drawn = true
		}
	}
	if !drawn {
		t.Error("expected at least one non-empty braille cell")
	}
}

func TestPlotTrajectoryHandlesDegenerateInput(t *testing.T) {
	out := PlotTrajectory(nil, nil, 10, 5)
	if out == "" {
		t.Error("expected a blank canvas string, not an empty result, for degenerate input")
	}
}

func TestPlotOmegaSeriesRendersNonEmptyChart(t *testing.T) {
	out := PlotOmegaSeries([]float64{1, 1.5, 2, 1.8, 1.2}, 8)
	if out == "" {
		t.Error("expected a non-empty ASCII chart")
	}
}
