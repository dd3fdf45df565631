// Package video encodes rendered frames into an output video stream.
package video

import (
	"errors"
	"fmt"
	"image"
)

// Sink sequentially receives frames and encodes them into a single output
// container. Frames must be written in strictly increasing frame order;
// opening a sink is an explicit step that fails fast when the destination
// cannot be created.
type Sink interface {
	// WriteFrame appends one frame. The frame dimensions must match the
	// sink's configured resolution.
	WriteFrame(img *image.RGBA) error

	// Close flushes and finalizes the stream. Close must be called on
	// every exit path once the sink was opened.
	Close() error
}

// Sink failure sentinels. Open failures abort a run before any frame work;
// write failures abort the remaining frames and leave the partial output
// file's fate to the caller.
var (
	ErrSinkOpen  = errors.New("video: cannot open output sink")
	ErrSinkWrite = errors.New("video: frame write failed")
)

// MemorySink collects frames in memory. Used by tests and dry runs.
type MemorySink struct {
	Width  int
	Height int

	// FailAfter, when positive, makes WriteFrame fail once that many
	// frames have been accepted.
	FailAfter int

	Frames []*image.RGBA
	Closed bool
}

// WriteFrame records a frame after checking dimensions.
func (s *MemorySink) WriteFrame(img *image.RGBA) error {
	if s.Closed {
		return fmt.Errorf("%w: sink closed", ErrSinkWrite)
	}
	if s.FailAfter > 0 && len(s.Frames) >= s.FailAfter {
		return fmt.Errorf("%w: injected failure after %d frames", ErrSinkWrite, s.FailAfter)
	}
	if b := img.Bounds(); b.Dx() != s.Width || b.Dy() != s.Height {
		return fmt.Errorf("%w: frame %dx%d does not match sink %dx%d",
			ErrSinkWrite, b.Dx(), b.Dy(), s.Width, s.Height)
	}
	s.Frames = append(s.Frames, img)
	return nil
}

// Close marks the sink closed.
func (s *MemorySink) Close() error {
	s.Closed = true
	return nil
}
