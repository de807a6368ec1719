package camera

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_NoURL_Unavailable(t *testing.T) {
	src := NewHTTPSource("", time.Second)
	_, err := src.Open(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCaptureStill_ReturnsFrame(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xFF, 0xD8, 0xFF})
	}))
	t.Cleanup(srv.Close)

	src := NewHTTPSource(srv.URL, time.Second)
	stream, err := src.Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = stream.Close() })

	photo, err := stream.CaptureStill(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, photo.Data)
	assert.Equal(t, "image/jpeg", photo.ContentType)
}

func TestCaptureStill_Non200_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	src := NewHTTPSource(srv.URL, time.Second)
	stream, err := src.Open(context.Background())
	require.NoError(t, err)

	_, err = stream.CaptureStill(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCaptureStill_CameraGone_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	src := NewHTTPSource(url, time.Second)
	stream, err := src.Open(context.Background())
	require.NoError(t, err)

	_, err = stream.CaptureStill(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}
