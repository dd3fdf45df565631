package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Njaaped/gauge-creator/internal/monitoring"
	"github.com/Njaaped/gauge-creator/internal/telemetry"
)

// writeArtifact persists the sliced series as a transient JSON file: one
// record per point with an ISO-8601 timestamp and the numeric fields. The
// artifact decouples the renderer from the slicer in process-separated
// deployments and is deleted after generation regardless of outcome.
func writeArtifact(points []telemetry.Trackpoint, path string) error {
	data, err := json.MarshalIndent(points, "", "  ")
	if err != nil {
		return fmt.Errorf("pipeline: encode sliced artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("pipeline: write sliced artifact: %w", err)
	}
	return nil
}

// removeArtifact deletes the transient artifact, logging rather than
// failing when the file is already gone.
func removeArtifact(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		monitoring.Warnf("could not remove transient artifact %s: %v", path, err)
	}
}
