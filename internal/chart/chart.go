// Package chart renders a static preview of a sliced telemetry segment as
// a PNG line chart of power and heart rate over elapsed time.
package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Njaaped/gauge-creator/internal/telemetry"
)

// WriteSegmentPNG renders the power and heart-rate channels of points to a
// PNG file at path. The x axis is seconds elapsed from the first point.
func WriteSegmentPNG(points []telemetry.Trackpoint, path string) error {
	if len(points) == 0 {
		return fmt.Errorf("chart: no points to plot")
	}

	p := plot.New()
	p.Title.Text = "Segment metrics"
	p.X.Label.Text = "Elapsed (s)"
	p.Y.Label.Text = "Power (W) / Heart rate (bpm)"

	start := points[0].Time
	powerPts := make(plotter.XYs, len(points))
	hrPts := make(plotter.XYs, len(points))
	for i, tp := range points {
		x := tp.Time.Sub(start).Seconds()
		powerPts[i] = plotter.XY{X: x, Y: float64(tp.Power)}
		hrPts[i] = plotter.XY{X: x, Y: float64(tp.HeartRate)}
	}

	powerLine, err := plotter.NewLine(powerPts)
	if err != nil {
		return fmt.Errorf("chart: power line: %w", err)
	}
	powerLine.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	powerLine.Width = vg.Points(1)
	p.Add(powerLine)
	p.Legend.Add("power", powerLine)

	hrLine, err := plotter.NewLine(hrPts)
	if err != nil {
		return fmt.Errorf("chart: heart-rate line: %w", err)
	}
	hrLine.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	hrLine.Width = vg.Points(1)
	p.Add(hrLine)
	p.Legend.Add("heart rate", hrLine)

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}
	return nil
}
