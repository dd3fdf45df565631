package monitoring

import (
	"fmt"
	"strings"
	"testing"
)

func TestSetLoggerRedirects(t *testing.T) {
	defer SetLogger(nil)

	var lines []string
	SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})

	Logf("rendered %d frames", 60)
	if len(lines) != 1 || lines[0] != "rendered 60 frames" {
		t.Errorf("captured lines = %v, want one formatted line", lines)
	}
}

func TestWarnfPrefix(t *testing.T) {
	defer SetLogger(nil)

	var lines []string
	SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})

	Warnf("skipping trackpoint with unparsable time: %q", "bogus")
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "warning: ") {
		t.Errorf("Warnf output = %v, want warning prefix", lines)
	}
}

func TestSetLoggerNilMutes(t *testing.T) {
	SetLogger(nil)
	// Must not panic.
	Logf("muted %s", "message")
	Warnf("muted %s", "warning")
	SetLogger(nil)
}
