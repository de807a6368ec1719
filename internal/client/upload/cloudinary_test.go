package upload

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchclock/internal/client/models"
)

func testPhoto() *models.CapturedPhoto {
	return &models.CapturedPhoto{Data: []byte{0xFF, 0xD8, 0xFF}, ContentType: "image/jpeg"}
}

func TestUpload_SendsPresetAndFile_ReturnsSecureURL(t *testing.T) {
	var gotPreset, gotFilename string
	var gotFile []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPreset = r.FormValue("upload_preset")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename
		gotFile, err = io.ReadAll(file)
		require.NoError(t, err)

		_, _ = io.WriteString(w, `{"secure_url":"https://res.example.com/img/abc.jpg"}`)
	}))
	t.Cleanup(srv.Close)

	c := NewCloudinaryClient(srv.URL, "projectatte", time.Second)
	url, err := c.Upload(context.Background(), testPhoto())
	require.NoError(t, err)

	assert.Equal(t, "https://res.example.com/img/abc.jpg", url)
	assert.Equal(t, "projectatte", gotPreset)
	assert.True(t, strings.HasSuffix(gotFilename, ".jpg"), "filename %q", gotFilename)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, gotFile)
}

func TestUpload_NonSuccessStatus_Fails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"Invalid preset"}}`)
	}))
	t.Cleanup(srv.Close)

	c := NewCloudinaryClient(srv.URL, "bad", time.Second)
	_, err := c.Upload(context.Background(), testPhoto())
	require.ErrorIs(t, err, ErrFailed)
}

func TestUpload_MissingSecureURL_Fails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}))
	t.Cleanup(srv.Close)

	c := NewCloudinaryClient(srv.URL, "p", time.Second)
	_, err := c.Upload(context.Background(), testPhoto())
	require.ErrorIs(t, err, ErrFailed)
}

func TestUpload_HostUnreachable_Fails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewCloudinaryClient(url, "p", time.Second)
	_, err := c.Upload(context.Background(), testPhoto())
	require.ErrorIs(t, err, ErrFailed)
}
