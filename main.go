package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/Njaaped/gauge-creator/internal/chart"
	"github.com/Njaaped/gauge-creator/internal/config"
	"github.com/Njaaped/gauge-creator/internal/pipeline"
	"github.com/Njaaped/gauge-creator/internal/storage/sqlite"
	"github.com/Njaaped/gauge-creator/internal/tcx"
	"github.com/Njaaped/gauge-creator/internal/telemetry"
	"github.com/Njaaped/gauge-creator/internal/units"
	"github.com/Njaaped/gauge-creator/internal/version"
)

var (
	inputPath   = flag.String("input", "", "Path to the TCX activity file")
	startText   = flag.String("start", "", "Window start timestamp")
	endText     = flag.String("end", "", "Window end timestamp")
	outputPath  = flag.String("output", "", "Output video path (default <run-id>.mp4)")
	configPath  = flag.String("config", "", "Optional JSON config override file")
	chartPath   = flag.String("chart", "", "Optional path for a segment preview PNG")
	dbPath      = flag.String("db", "", "Optional sqlite database for run history")
	speedUnits  = flag.String("speed-units", units.KMPH, "Units for the logged segment speed (mps, mph, kmph)")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("gauge-creator %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	if *inputPath == "" || *startText == "" || *endText == "" {
		flag.Usage()
		log.Fatal("-input, -start and -end are required")
	}
	if !units.IsValid(*speedUnits) {
		log.Fatalf("invalid -speed-units %q, valid: %v", *speedUnits, units.ValidUnits)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	samples, err := tcx.ParseFile(*inputPath)
	if err != nil {
		log.Fatalf("failed to parse %s: %v", *inputPath, err)
	}
	series, err := telemetry.BuildSeries(samples)
	if err != nil {
		log.Fatalf("failed to build series: %v", err)
	}
	log.Printf("Loaded %d trackpoints spanning %s to %s",
		len(series.Points), series.Start.Format("2006-01-02T15:04:05Z"),
		series.End.Format("2006-01-02T15:04:05Z"))

	window, err := telemetry.ParseWindow(*startText, *endText)
	if err != nil {
		log.Fatalf("invalid window: %v", err)
	}

	points := series.Slice(window)
	log.Printf("Window contains %d trackpoints", len(points))
	if len(points) > 0 {
		var sum float64
		for _, tp := range points {
			sum += tp.Speed
		}
		avg := units.ConvertSpeed(sum/float64(len(points)), *speedUnits)
		log.Printf("Average segment speed: %.1f %s", avg, *speedUnits)
	}

	if *chartPath != "" {
		if err := chart.WriteSegmentPNG(points, *chartPath); err != nil {
			log.Fatalf("failed to write chart: %v", err)
		}
		log.Printf("Wrote segment chart to %s", *chartPath)
	}

	generator := pipeline.NewGenerator(cfg)
	if *dbPath != "" {
		db, err := sqlite.Open(*dbPath)
		if err != nil {
			log.Fatalf("failed to open run database: %v", err)
		}
		defer db.Close()
		generator.Store = sqlite.NewRunStore(db)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reporter := pipeline.ReporterFunc(func(pct int, msg string) {
		log.Printf("[%3d%%] %s", pct, msg)
	})

	result, err := generator.Run(ctx, series, window, *inputPath, *outputPath, reporter)
	if err != nil {
		log.Fatalf("video generation failed: %v", err)
	}
	log.Printf("Wrote %d frames to %s (run %s)", result.FrameCount, result.OutputPath, result.RunID)
}
