// Package pipeline orchestrates gauge video generation: slice the series to
// the requested window, resample onto the frame axis, render each frame and
// stream it into the video sink.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Njaaped/gauge-creator/internal/config"
	"github.com/Njaaped/gauge-creator/internal/gauge"
	"github.com/Njaaped/gauge-creator/internal/monitoring"
	"github.com/Njaaped/gauge-creator/internal/resample"
	"github.com/Njaaped/gauge-creator/internal/storage/sqlite"
	"github.com/Njaaped/gauge-creator/internal/telemetry"
	"github.com/Njaaped/gauge-creator/internal/timeutil"
	"github.com/Njaaped/gauge-creator/internal/video"
)

// ErrNoDataInRange is returned when the requested window contains no
// trackpoints at all.
var ErrNoDataInRange = errors.New("pipeline: no trackpoints in the requested window")

// Generator runs the full telemetry-to-video pipeline. The zero value is not
// usable; construct with NewGenerator and override the injection points as
// needed.
type Generator struct {
	cfg config.Config

	// OpenSink opens the output sink for a run. Defaults to an ffmpeg
	// encoder writing H.264 MP4.
	OpenSink func(path string, width, height int, fps float64) (video.Sink, error)

	// LoadAssets loads the font and icons. Defaults to gauge.LoadAssets.
	LoadAssets func(config.Config) (*gauge.Assets, error)

	// Store, when non-nil, records a history row for every run, successful
	// or not. Store failures are logged and never fail the run itself.
	Store *sqlite.RunStore

	// Clock times runs for the history record.
	Clock timeutil.Clock

	// ArtifactDir holds the transient sliced-series JSON written during a
	// run. Defaults to the system temp directory.
	ArtifactDir string
}

// NewGenerator creates a Generator with production defaults.
func NewGenerator(cfg config.Config) *Generator {
	return &Generator{
		cfg: cfg,
		OpenSink: func(path string, width, height int, fps float64) (video.Sink, error) {
			return video.OpenFFmpeg(path, width, height, fps)
		},
		LoadAssets:  gauge.LoadAssets,
		Clock:       timeutil.RealClock{},
		ArtifactDir: os.TempDir(),
	}
}

// Result summarizes a completed run.
type Result struct {
	RunID      string
	OutputPath string
	FrameCount int
}

// Run generates one gauge video for the given window of the series. When
// outputPath is empty the video is written as "<run-id>.mp4" in the current
// directory. Progress lands on the reporter at coarse milestones; pass nil
// to discard updates.
//
// Cancelling ctx stops frame production between frames; the sink is closed
// on every exit path once opened.
func (g *Generator) Run(ctx context.Context, series *telemetry.Series, w telemetry.Window, sourceFile, outputPath string, progress Reporter) (*Result, error) {
	if progress == nil {
		progress = NopReporter
	}

	started := g.Clock.Now()
	runID := uuid.New().String()
	if outputPath == "" {
		outputPath = runID + ".mp4"
	}

	frameCount, err := g.generate(ctx, series, w, runID, outputPath, progress)
	g.record(runID, sourceFile, outputPath, w, frameCount, started, err)
	if err != nil {
		return nil, err
	}
	return &Result{RunID: runID, OutputPath: outputPath, FrameCount: frameCount}, nil
}

// generate performs the run body and returns the number of frames written.
func (g *Generator) generate(ctx context.Context, series *telemetry.Series, w telemetry.Window, runID, outputPath string, progress Reporter) (int, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}

	progress.Report(10, "Slicing telemetry data...")
	points := series.Slice(w)
	if len(points) == 0 {
		w = w.UTC()
		return 0, fmt.Errorf("%w: %s to %s", ErrNoDataInRange,
			w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
	}

	artifact := filepath.Join(g.ArtifactDir, fmt.Sprintf("sliced_%s.json", runID))
	if err := writeArtifact(points, artifact); err != nil {
		return 0, err
	}
	defer removeArtifact(artifact)

	frames := resample.Frames(points, g.cfg.FPS, g.cfg.BodyWeightKg)

	// Assets load before the sink opens, so a broken install never leaves a
	// partial output file behind.
	assets, err := g.LoadAssets(g.cfg)
	if err != nil {
		return 0, err
	}
	renderer := gauge.NewRenderer(g.cfg, assets)

	sink, err := g.OpenSink(outputPath, g.cfg.FrameWidth, g.cfg.FrameHeight, g.cfg.FPS)
	if err != nil {
		return 0, err
	}
	closed := false
	defer func() {
		if !closed {
			sink.Close()
		}
	}()

	progress.Report(20, "Generating gauge video frames...")
	interval := int(g.cfg.FPS) * 2
	if interval < 1 {
		interval = 1
	}
	for i, f := range frames {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := sink.WriteFrame(renderer.Render(f)); err != nil {
			return i, err
		}
		if (i+1)%interval == 0 {
			pct := 20 + int(float64(i+1)/float64(len(frames))*75)
			progress.Report(pct, fmt.Sprintf("Rendering frame %d/%d", i+1, len(frames)))
		}
	}

	closed = true
	if err := sink.Close(); err != nil {
		return len(frames), err
	}

	progress.Report(100, "Video generation complete.")
	return len(frames), nil
}

// record writes the run-history row when a store is configured.
func (g *Generator) record(runID, sourceFile, outputPath string, w telemetry.Window, frameCount int, started time.Time, runErr error) {
	if g.Store == nil {
		return
	}

	w = w.UTC()
	run := &sqlite.Run{
		RunID:         runID,
		SourceFile:    sourceFile,
		WindowStartNs: w.Start.UnixNano(),
		WindowEndNs:   w.End.UnixNano(),
		OutputPath:    outputPath,
		FrameCount:    frameCount,
		Status:        sqlite.RunStatusComplete,
		DurationMs:    g.Clock.Since(started).Milliseconds(),
	}
	if runErr != nil {
		run.Status = sqlite.RunStatusError
		run.Message = runErr.Error()
	}
	if err := g.Store.InsertRun(run); err != nil {
		monitoring.Warnf("could not record run %s: %v", runID, err)
	}
}
