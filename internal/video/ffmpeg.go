package video

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"strconv"
)

// FFmpegSink pipes raw RGBA frames into an ffmpeg child process that
// encodes them as H.264 in an MP4 container. One frame per WriteFrame call,
// in order; memory stays bounded because frames stream through the pipe.
type FFmpegSink struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer

	width  int
	height int
	frames int
	closed bool
}

// ffmpegArgs builds the encoder invocation for a rawvideo stdin stream.
func ffmpegArgs(path string, width, height int, fps float64) []string {
	return []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", strconv.FormatFloat(fps, 'g', -1, 64),
		"-i", "-",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		path,
	}
}

// OpenFFmpeg starts an ffmpeg process encoding to path. It fails fast when
// ffmpeg is unavailable or the destination cannot be created, before any
// frame is produced.
func OpenFFmpeg(path string, width, height int, fps float64) (*FFmpegSink, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("%w: ffmpeg not found: %v", ErrSinkOpen, err)
	}

	// Probe the destination up front; ffmpeg reports an unwritable path
	// only after frames start flowing.
	probe, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSinkOpen, err)
	}
	probe.Close()

	s := &FFmpegSink{width: width, height: height}
	s.cmd = exec.Command("ffmpeg", ffmpegArgs(path, width, height, fps)...)
	s.cmd.Stderr = &s.stderr

	s.stdin, err = s.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSinkOpen, err)
	}
	if err := s.cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSinkOpen, err)
	}
	return s, nil
}

// WriteFrame streams one RGBA frame to the encoder.
func (s *FFmpegSink) WriteFrame(img *image.RGBA) error {
	if s.closed {
		return fmt.Errorf("%w: sink closed", ErrSinkWrite)
	}
	b := img.Bounds()
	if b.Dx() != s.width || b.Dy() != s.height {
		return fmt.Errorf("%w: frame %dx%d does not match sink %dx%d",
			ErrSinkWrite, b.Dx(), b.Dy(), s.width, s.height)
	}

	if img.Stride == 4*s.width {
		if _, err := s.stdin.Write(img.Pix); err != nil {
			return s.writeError(err)
		}
	} else {
		// Sub-images carry padding per row; write row by row.
		for y := 0; y < s.height; y++ {
			row := img.Pix[y*img.Stride : y*img.Stride+4*s.width]
			if _, err := s.stdin.Write(row); err != nil {
				return s.writeError(err)
			}
		}
	}

	s.frames++
	return nil
}

func (s *FFmpegSink) writeError(err error) error {
	tail := s.stderr.String()
	if len(tail) > 512 {
		tail = tail[len(tail)-512:]
	}
	return fmt.Errorf("%w: %v (ffmpeg: %s)", ErrSinkWrite, err, tail)
}

// Frames reports how many frames have been accepted.
func (s *FFmpegSink) Frames() int { return s.frames }

// Close finishes the stream and waits for the encoder to exit. Safe to
// call more than once.
func (s *FFmpegSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.stdin.Close(); err != nil {
		s.cmd.Wait()
		return fmt.Errorf("%w: closing encoder input: %v", ErrSinkWrite, err)
	}
	if err := s.cmd.Wait(); err != nil {
		return s.writeError(err)
	}
	return nil
}
