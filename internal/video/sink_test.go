package video

import (
	"errors"
	"image"
	"strings"
	"testing"
)

func TestFFmpegArgs(t *testing.T) {
	args := ffmpegArgs("out/ride.mp4", 1280, 720, 30)
	joined := strings.Join(args, " ")

	for _, want := range []string{
		"-f rawvideo",
		"-pixel_format rgba",
		"-video_size 1280x720",
		"-framerate 30",
		"-i -",
		"-c:v libx264",
		"-pix_fmt yuv420p",
		"out/ride.mp4",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}
	if args[0] != "-y" {
		t.Errorf("args[0] = %q, want -y (overwrite without prompting)", args[0])
	}
}

func TestMemorySinkAcceptsMatchingFrames(t *testing.T) {
	s := &MemorySink{Width: 32, Height: 16}

	for i := 0; i < 3; i++ {
		if err := s.WriteFrame(image.NewRGBA(image.Rect(0, 0, 32, 16))); err != nil {
			t.Fatalf("WriteFrame() error = %v", err)
		}
	}
	if len(s.Frames) != 3 {
		t.Errorf("frames = %d, want 3", len(s.Frames))
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestMemorySinkRejectsWrongDimensions(t *testing.T) {
	s := &MemorySink{Width: 32, Height: 16}

	err := s.WriteFrame(image.NewRGBA(image.Rect(0, 0, 8, 8)))
	if !errors.Is(err, ErrSinkWrite) {
		t.Errorf("error = %v, want ErrSinkWrite", err)
	}
}

func TestMemorySinkRejectsAfterClose(t *testing.T) {
	s := &MemorySink{Width: 8, Height: 8}
	s.Close()

	err := s.WriteFrame(image.NewRGBA(image.Rect(0, 0, 8, 8)))
	if !errors.Is(err, ErrSinkWrite) {
		t.Errorf("error = %v, want ErrSinkWrite", err)
	}
}

func TestMemorySinkInjectedFailure(t *testing.T) {
	s := &MemorySink{Width: 8, Height: 8, FailAfter: 2}

	var err error
	for i := 0; i < 5; i++ {
		err = s.WriteFrame(image.NewRGBA(image.Rect(0, 0, 8, 8)))
		if err != nil {
			break
		}
	}
	if !errors.Is(err, ErrSinkWrite) {
		t.Fatalf("error = %v, want injected ErrSinkWrite", err)
	}
	if len(s.Frames) != 2 {
		t.Errorf("frames accepted = %d, want 2", len(s.Frames))
	}
}

func TestOpenFFmpegFailsFastOnBadDestination(t *testing.T) {
	if _, err := OpenFFmpeg("/nonexistent-dir/out.mp4", 64, 64, 30); err == nil {
		t.Fatal("expected open failure for unwritable destination")
	} else if !errors.Is(err, ErrSinkOpen) {
		t.Errorf("error = %v, want ErrSinkOpen", err)
	}
}
