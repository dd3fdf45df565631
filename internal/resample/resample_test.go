package resample

import (
	"math"
	"testing"
	"time"

	"github.com/Njaaped/gauge-creator/internal/telemetry"
)

// pointsAt builds trackpoints with the given power/hr values at 1-second
// spacing.
func pointsAt(power, hr []int) []telemetry.Trackpoint {
	base := time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC)
	pts := make([]telemetry.Trackpoint, len(power))
	for i := range power {
		pts[i] = telemetry.Trackpoint{
			Time:      base.Add(time.Duration(i) * time.Second),
			Power:     power[i],
			HeartRate: hr[i],
		}
	}
	return pts
}

func TestFramesCount(t *testing.T) {
	tests := []struct {
		name      string
		seconds   int // number of 1s-spaced points
		fps       float64
		wantCount int
	}{
		{"two seconds at 30fps", 3, 30, 60},
		{"one second at 30fps", 2, 30, 30},
		{"ten seconds at 24fps", 11, 24, 240},
		{"single point still yields one frame", 1, 30, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			power := make([]int, tt.seconds)
			hr := make([]int, tt.seconds)
			for i := range power {
				power[i] = 100
				hr[i] = 120
			}

			frames := Frames(pointsAt(power, hr), tt.fps, 65)
			if len(frames) != tt.wantCount {
				t.Errorf("len(frames) = %d, want %d", len(frames), tt.wantCount)
			}
		})
	}
}

func TestFramesFractionalDurationRounds(t *testing.T) {
	base := time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC)
	pts := []telemetry.Trackpoint{
		{Time: base, Power: 100, HeartRate: 120},
		{Time: base.Add(1525 * time.Millisecond), Power: 200, HeartRate: 140},
	}

	// 1.525s * 30fps = 45.75 -> rounds to 46.
	frames := Frames(pts, 30, 65)
	if len(frames) != 46 {
		t.Errorf("len(frames) = %d, want 46", len(frames))
	}
}

func TestFramesBoundaryClamp(t *testing.T) {
	frames := Frames(pointsAt([]int{100, 150, 200}, []int{120, 130, 140}), 30, 65)

	if len(frames) != 60 {
		t.Fatalf("len(frames) = %d, want 60", len(frames))
	}
	if math.Abs(frames[0].Power-100) > 1e-9 {
		t.Errorf("first frame power = %v, want 100", frames[0].Power)
	}
	if math.Abs(frames[59].Power-200) > 1e-9 {
		t.Errorf("last frame power = %v, want 200", frames[59].Power)
	}
	if math.Abs(frames[0].HeartRate-120) > 1e-9 {
		t.Errorf("first frame hr = %v, want 120", frames[0].HeartRate)
	}
	if math.Abs(frames[59].HeartRate-140) > 1e-9 {
		t.Errorf("last frame hr = %v, want 140", frames[59].HeartRate)
	}
}

func TestFramesMonotoneBetweenSamples(t *testing.T) {
	frames := Frames(pointsAt([]int{100, 200}, []int{100, 200}), 30, 65)

	for i := 1; i < len(frames); i++ {
		if frames[i].Power < frames[i-1].Power {
			t.Fatalf("power not monotone at frame %d: %v < %v", i, frames[i].Power, frames[i-1].Power)
		}
	}
	for _, f := range frames {
		if f.Power < 100-1e-9 || f.Power > 200+1e-9 {
			t.Fatalf("frame %d power %v extrapolated outside sample range", f.Index, f.Power)
		}
	}
}

func TestFramesWattsPerKg(t *testing.T) {
	pts := pointsAt([]int{130, 130}, []int{120, 120})

	t.Run("positive body weight", func(t *testing.T) {
		frames := Frames(pts, 30, 65)
		for _, f := range frames {
			if math.Abs(f.WattsPerKg-2.0) > 1e-9 {
				t.Fatalf("frame %d W/kg = %v, want 2.0", f.Index, f.WattsPerKg)
			}
		}
	})

	t.Run("zero body weight yields zero", func(t *testing.T) {
		for _, f := range Frames(pts, 30, 0) {
			if f.WattsPerKg != 0 {
				t.Fatalf("frame %d W/kg = %v, want 0", f.Index, f.WattsPerKg)
			}
		}
	})

	t.Run("negative body weight yields zero", func(t *testing.T) {
		for _, f := range Frames(pts, 30, -10) {
			if f.WattsPerKg != 0 {
				t.Fatalf("frame %d W/kg = %v, want 0", f.Index, f.WattsPerKg)
			}
		}
	})
}

func TestFramesIndexOrder(t *testing.T) {
	frames := Frames(pointsAt([]int{100, 150, 200}, []int{120, 130, 140}), 30, 65)
	for i, f := range frames {
		if f.Index != i {
			t.Fatalf("frames[%d].Index = %d, want %d", i, f.Index, i)
		}
	}
}
