// Package upload sends captured stills to the image host and returns the
// durable URL the backend stores alongside the attendance event.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"punchclock/internal/client/models"
)

// ErrFailed wraps every upload failure; callers match it with errors.Is
// and decide whether the pending action may proceed without a photo.
var ErrFailed = errors.New("upload failed")

type Uploader interface {
	// Upload sends the photo and returns its stable URL.
	Upload(ctx context.Context, photo *models.CapturedPhoto) (string, error)
}

// CloudinaryClient uploads images through Cloudinary's unsigned upload API:
// a multipart form with the raw file and a fixed upload preset.
type CloudinaryClient struct {
	UploadURL string
	Preset    string
	HTTP      *http.Client
}

func NewCloudinaryClient(uploadURL, preset string, timeout time.Duration) *CloudinaryClient {
	return &CloudinaryClient{
		UploadURL: uploadURL,
		Preset:    preset,
		HTTP:      &http.Client{Timeout: timeout},
	}
}

type uploadResult struct {
	SecureURL string `json:"secure_url"`
}

func (c *CloudinaryClient) Upload(ctx context.Context, photo *models.CapturedPhoto) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	_ = w.WriteField("upload_preset", c.Preset)

	part, err := w.CreateFormFile("file", uuid.NewString()+extension(photo.ContentType))
	if err != nil {
		return "", fmt.Errorf("%w: create form file: %w", ErrFailed, err)
	}
	if _, err := io.Copy(part, bytes.NewReader(photo.Data)); err != nil {
		return "", fmt.Errorf("%w: write file: %w", ErrFailed, err)
	}
	w.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.UploadURL, &buf)
	if err != nil {
		return "", fmt.Errorf("%w: create request: %w", ErrFailed, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailed, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w (%d): %s", ErrFailed, resp.StatusCode, string(body))
	}

	var result uploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrFailed, err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("%w: response carries no secure_url", ErrFailed)
	}
	return result.SecureURL, nil
}

func extension(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
