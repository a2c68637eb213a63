package pathviz

import (
	"math"
	"math/cmplx"

	"github.com/guptarohit/asciigraph"
)

// PlotTrajectory renders a path's coordinate-0 samples as it tracks
// from t=1 to t=0, projecting (Re x, Im x, -log10|t|) through a fixed
// Camera onto a braille Canvas sized width x height terminal cells.
func PlotTrajectory(samples []complex128, ts []complex128, width, height int) string {
	canvas := NewCanvas(width, height)
	if len(samples) < 2 || len(samples) != len(ts) {
		return canvas.String()
	}

	minRe, maxRe := math.Inf(1), math.Inf(-1)
	minIm, maxIm := math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		minRe, maxRe = math.Min(minRe, real(s)), math.Max(maxRe, real(s))
		minIm, maxIm = math.Min(minIm, imag(s)), math.Max(maxIm, imag(s))
	}
	spanRe := maxRe - minRe
	if spanRe == 0 {
		spanRe = 1
	}
	spanIm := maxIm - minIm
	if spanIm == 0 {
		spanIm = 1
	}

	scale := float64(width * 2 / 3)
	cam := NewCamera()

	project := func(i int) (int, int) {
		nx := (real(samples[i]) - minRe) / spanRe * scale
		ny := (imag(samples[i]) - minIm) / spanIm * scale
		depth := -math.Log10(math.Max(cmplx.Abs(ts[i]), 1e-300))
		p := Vec3{X: nx, Y: ny, Z: depth}
		return cam.Project(p, width*2, height*4)
	}

	px, py := project(0)
	for i := 1; i < len(samples); i++ {
		x, y := project(i)
		canvas.DrawLine(px, py, x, y)
		px, py = x, y
	}
	return canvas.String()
}

// PlotOmegaSeries renders a valuation or contraction-factor time series
// as an ASCII line chart.
func PlotOmegaSeries(series []float64, height int) string {
	if len(series) == 0 {
		return ""
	}
	return asciigraph.Plot(series, asciigraph.Height(height))
}
