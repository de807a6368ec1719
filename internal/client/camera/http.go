package camera

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"punchclock/internal/client/models"
)

// HTTPSource captures stills from a webcam's HTTP snapshot endpoint
// (the /shot.jpg style endpoint most IP-webcam apps expose).
type HTTPSource struct {
	SnapshotURL string
	HTTP        *http.Client
}

func NewHTTPSource(snapshotURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		SnapshotURL: snapshotURL,
		HTTP:        &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Open(ctx context.Context) (Stream, error) {
	if s.SnapshotURL == "" {
		return nil, fmt.Errorf("%w: no snapshot URL configured", ErrUnavailable)
	}
	return &httpStream{source: s}, nil
}

type httpStream struct {
	source *HTTPSource
}

func (s *httpStream) CaptureStill(ctx context.Context) (*models.CapturedPhoto, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.source.SnapshotURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	resp, err := s.source.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: snapshot returned %s", ErrUnavailable, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read snapshot: %w", ErrUnavailable, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty snapshot", ErrUnavailable)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		contentType = "image/jpeg"
	}

	return &models.CapturedPhoto{Data: data, ContentType: contentType}, nil
}

func (s *httpStream) Close() error {
	return nil
}
