package services

import (
	"context"
	"errors"
	"sync"

	"punchclock/internal/client/camera"
	"punchclock/internal/client/client"
	"punchclock/internal/client/models"
	"punchclock/internal/client/upload"
	"punchclock/internal/logging"
)

var (
	// ErrMissingCredentials means login was attempted without both email
	// and password; no network call is made.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrNotAuthenticated means an event action was attempted while
	// anonymous.
	ErrNotAuthenticated = errors.New("not logged in")

	// ErrActionInProgress means another action holds the session; actions
	// are rejected rather than queued so a double trigger cannot record
	// the same event twice.
	ErrActionInProgress = errors.New("another action is in progress")
)

const (
	msgLoginSuccess   = "Login successful"
	msgLoggedOut      = "Logged out"
	msgNoRecords      = "No attendance records found."
	msgSessionExpired = "Session expired, please log in again"
)

// AttendanceService orchestrates the session lifecycle: login and logout,
// the four event actions (capture, upload, record, refresh), and the
// reconciliation of displayed state with server truth. Displayed history
// is only ever replaced wholesale by a refresh; the service never guesses
// server-computed values.
//
// One action runs at a time per session. Message and Err expose the
// transient outcome of the last action for the presentation layer.
type AttendanceService struct {
	client   client.Client
	session  SessionStore
	camera   camera.Source
	uploader upload.Uploader
	log      logging.Logger

	mu      sync.Mutex
	stream  camera.Stream
	history []models.AttendanceRecord
	message string
	lastErr string
}

func NewAttendanceService(c client.Client, s SessionStore, cam camera.Source, up upload.Uploader, log logging.Logger) *AttendanceService {
	return &AttendanceService{client: c, session: s, camera: cam, uploader: up, log: log}
}

// Login authenticates, stores the credential and performs the first
// history refresh. On any failure the session stays anonymous.
func (a *AttendanceService) Login(ctx context.Context, email, password string) error {
	if !a.mu.TryLock() {
		return ErrActionInProgress
	}
	defer a.mu.Unlock()

	if email == "" || password == "" {
		a.fail("Please provide both email and password.")
		return ErrMissingCredentials
	}

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.fail(messageFor(err, "Login failed"))
		return err
	}

	if err := a.session.SetCredential(ctx, token); err != nil {
		a.fail("Login failed: server returned an invalid token")
		return err
	}
	a.client.SetToken(token)

	a.succeed(msgLoginSuccess)
	a.onCredentialChange(ctx)
	return nil
}

// Resume re-enters the authenticated state from a restored credential.
// Returns false when the session is anonymous.
func (a *AttendanceService) Resume(ctx context.Context) bool {
	if !a.mu.TryLock() {
		return false
	}
	defer a.mu.Unlock()

	cred, ok := a.session.Current()
	if !ok {
		return false
	}
	a.client.SetToken(cred.Token)
	a.onCredentialChange(ctx)
	return true
}

// onCredentialChange runs the entry side effects of the authenticated
// state: acquire the camera stream and fetch history. Called exactly once
// per credential change, never from a render path.
func (a *AttendanceService) onCredentialChange(ctx context.Context) {
	stream, err := a.camera.Open(ctx)
	if err != nil {
		a.log.Warn(ctx, "camera stream not available", "error", err)
	} else {
		a.stream = stream
	}
	a.refreshHistory(ctx)
}

// Logout clears the credential, history, message state and camera stream.
// Purely local, always succeeds, idempotent.
func (a *AttendanceService) Logout(ctx context.Context) error {
	if !a.mu.TryLock() {
		return ErrActionInProgress
	}
	defer a.mu.Unlock()

	a.dropSession(ctx)
	a.succeed(msgLoggedOut)
	return nil
}

func (a *AttendanceService) dropSession(ctx context.Context) {
	if err := a.session.ClearCredential(ctx); err != nil {
		// in-memory state is reset regardless, the slot is retried on next login
		a.log.Error(ctx, "failed to clear persisted credential", "error", err)
	}
	a.client.SetToken("")
	if a.stream != nil {
		_ = a.stream.Close()
		a.stream = nil
	}
	a.history = nil
}

// PerformEvent runs one event action: capture a still, upload it, record
// the event, refresh history. For check-in/check-out the photo is
// mandatory and any capture or upload failure aborts before the server is
// called. For break events the action proceeds without a photo.
func (a *AttendanceService) PerformEvent(ctx context.Context, kind models.EventKind) error {
	if !a.mu.TryLock() {
		return ErrActionInProgress
	}
	defer a.mu.Unlock()

	if _, ok := a.session.Current(); !ok {
		a.fail("Please log in first.")
		return ErrNotAuthenticated
	}

	photoURL, err := a.photoURLFor(ctx, kind)
	if err != nil {
		a.fail(messageFor(err, kind.FailureMessage()))
		return err
	}

	if err := a.client.RecordEvent(ctx, kind, photoURL); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.dropSession(ctx)
			a.fail(msgSessionExpired)
			return err
		}
		a.fail(messageFor(err, kind.FailureMessage()))
		return err
	}

	a.succeed(kind.SuccessMessage())
	a.refreshHistory(ctx)
	return nil
}

// photoURLFor produces the uploaded photo URL for the event, or "" when a
// tolerated failure leaves the optional photo out.
func (a *AttendanceService) photoURLFor(ctx context.Context, kind models.EventKind) (string, error) {
	photo, err := a.captureStill(ctx)
	if err != nil {
		if kind.PhotoRequired() {
			return "", err
		}
		a.log.Warn(ctx, "recording event without photo", "kind", string(kind), "error", err)
		return "", nil
	}

	url, err := a.uploader.Upload(ctx, photo)
	if err != nil {
		if kind.PhotoRequired() {
			return "", err
		}
		a.log.Warn(ctx, "recording event without photo", "kind", string(kind), "error", err)
		return "", nil
	}
	return url, nil
}

func (a *AttendanceService) captureStill(ctx context.Context) (*models.CapturedPhoto, error) {
	if a.stream == nil {
		return nil, camera.ErrUnavailable
	}
	return a.stream.CaptureStill(ctx)
}

// RefreshHistory refetches the attendance history on user request.
func (a *AttendanceService) RefreshHistory(ctx context.Context) error {
	if !a.mu.TryLock() {
		return ErrActionInProgress
	}
	defer a.mu.Unlock()

	if _, ok := a.session.Current(); !ok {
		a.fail("Please log in first.")
		return ErrNotAuthenticated
	}
	a.refreshHistory(ctx)
	return nil
}

// refreshHistory is the single read-after-write synchronization point: it
// runs after login and after every successful event action. A failed
// refresh keeps the previous history and does not overwrite the action's
// success message.
func (a *AttendanceService) refreshHistory(ctx context.Context) {
	records, err := a.client.FetchHistory(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.dropSession(ctx)
			a.lastErr = msgSessionExpired
			return
		}
		a.log.Error(ctx, "history refresh failed", "error", err)
		return
	}

	a.history = records
	if len(records) == 0 {
		// informational, not an error
		a.message = msgNoRecords
	}
}

// History returns the last successfully fetched records in server order.
func (a *AttendanceService) History() []models.AttendanceRecord {
	return a.history
}

// Identity returns the logged-in employee, or ok=false when anonymous.
func (a *AttendanceService) Identity() (models.Identity, bool) {
	cred, ok := a.session.Current()
	if !ok {
		return models.Identity{}, false
	}
	return cred.Identity, true
}

// Message is the transient success or informational line of the last
// action; empty when the last action failed.
func (a *AttendanceService) Message() string {
	return a.message
}

// Err is the transient error line of the last action; empty when the last
// action succeeded.
func (a *AttendanceService) Err() string {
	return a.lastErr
}

func (a *AttendanceService) succeed(msg string) {
	a.message = msg
	a.lastErr = ""
}

func (a *AttendanceService) fail(msg string) {
	a.lastErr = msg
	a.message = ""
}

// messageFor prefers the server-provided message and falls back to the
// generic action message.
func messageFor(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
