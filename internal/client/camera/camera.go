// Package camera abstracts the selfie capture source. A Source is opened
// when the session becomes authenticated and yields a Stream that can take
// single stills on demand; the stream is released on logout.
package camera

import (
	"context"
	"errors"

	"punchclock/internal/client/models"
)

// ErrUnavailable means no camera stream is attached or the stream could
// not produce a frame. Callers decide whether the action may proceed
// without a photo.
var ErrUnavailable = errors.New("camera unavailable")

type Stream interface {
	// CaptureStill returns one frame from the stream.
	CaptureStill(ctx context.Context) (*models.CapturedPhoto, error)
	Close() error
}

type Source interface {
	Open(ctx context.Context) (Stream, error)
}
