// Package resample converts a sparse, irregularly spaced trackpoint
// sequence into per-video-frame metric values at a fixed frame rate.
package resample

import (
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/Njaaped/gauge-creator/internal/telemetry"
)

// Frame holds the interpolated metric values for one output video frame.
type Frame struct {
	Index      int
	Power      float64
	HeartRate  float64
	WattsPerKg float64
}

// Frames resamples the metric channels of a non-empty point sequence onto a
// per-frame axis. The frame count is round(duration * fps) with a minimum
// of one frame. Interpolation is piecewise-linear over the sample index
// axis, matching the sample spacing of the source rather than wall time;
// values never extrapolate beyond the first/last sample.
//
// WattsPerKg is Power / bodyWeightKg per frame. A non-positive body weight
// yields zero for every frame.
//
// The points slice must be non-empty; callers validate before resampling.
func Frames(points []telemetry.Trackpoint, fps, bodyWeightKg float64) []Frame {
	duration := points[len(points)-1].Time.Sub(points[0].Time).Seconds()
	frameCount := int(math.Round(duration * fps))
	if frameCount < 1 {
		frameCount = 1
	}

	power := channel(points, func(tp telemetry.Trackpoint) float64 { return float64(tp.Power) })
	hr := channel(points, func(tp telemetry.Trackpoint) float64 { return float64(tp.HeartRate) })

	powerAt := predictor(power)
	hrAt := predictor(hr)

	frames := make([]Frame, frameCount)
	maxIdx := float64(len(points) - 1)
	for i := range frames {
		// Evenly spaced positions spanning the full index range. The
		// positions stay inside [0, maxIdx] by construction, so the
		// predictors never see out-of-range input.
		pos := 0.0
		if frameCount > 1 {
			pos = float64(i) * maxIdx / float64(frameCount-1)
		}
		if pos > maxIdx {
			pos = maxIdx
		}

		p := powerAt(pos)
		wkg := 0.0
		if bodyWeightKg > 0 {
			wkg = p / bodyWeightKg
		}
		frames[i] = Frame{
			Index:      i,
			Power:      p,
			HeartRate:  hrAt(pos),
			WattsPerKg: wkg,
		}
	}
	return frames
}

// channel extracts one metric as a float slice.
func channel(points []telemetry.Trackpoint, get func(telemetry.Trackpoint) float64) []float64 {
	out := make([]float64, len(points))
	for i, tp := range points {
		out[i] = get(tp)
	}
	return out
}

// predictor returns a function interpolating ys over the index axis
// 0..len(ys)-1. A single-sample channel is constant.
func predictor(ys []float64) func(float64) float64 {
	if len(ys) == 1 {
		v := ys[0]
		return func(float64) float64 { return v }
	}

	xs := make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i)
	}

	var pl interp.PiecewiseLinear
	// Fit only fails for mismatched lengths or non-increasing xs; neither
	// can happen with an index axis.
	if err := pl.Fit(xs, ys); err != nil {
		panic(err)
	}
	return pl.Predict
}
