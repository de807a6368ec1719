package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"punchclock/internal/client/models"
)

// HTTPClient talks JSON to the attendance backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := c.post(ctx, "/login", loginRequest{Email: email, Password: password}, false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", apiError(resp)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("login: decode response failed: %w", err)
	}
	return lr.Token, nil
}

func (c *HTTPClient) FetchHistory(ctx context.Context) ([]models.AttendanceRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/attendance", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch history: create request failed: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, apiError(resp)
	}

	var records []models.AttendanceRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("fetch history: decode response failed: %w", err)
	}
	return records, nil
}

type eventRequest struct {
	PhotoURL string `json:"photoUrl,omitempty"`
}

func (c *HTTPClient) RecordEvent(ctx context.Context, kind models.EventKind, photoURL string) error {
	resp, err := c.post(ctx, "/"+string(kind), eventRequest{PhotoURL: photoURL}, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return apiError(resp)
	}
	// 2xx ack body, if any, carries nothing the client needs
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *HTTPClient) post(ctx context.Context, path string, body any, authed bool) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request failed: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%s: create request failed: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		c.authorize(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrUnavailable, err)
	}
	return resp, nil
}

func (c *HTTPClient) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// apiError builds an *APIError from a non-2xx response, preferring a JSON
// {"message": ...} body and falling back to the raw body text.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	msg := strings.TrimSpace(string(body))
	var wrapped struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Message != "" {
		msg = wrapped.Message
	} else {
		var plain string
		if err := json.Unmarshal(body, &plain); err == nil && plain != "" {
			msg = plain
		}
	}

	return &APIError{Status: resp.StatusCode, Message: msg}
}
