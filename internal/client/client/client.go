package client

import (
	"context"

	"punchclock/internal/client/models"
)

type Client interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)

	// FetchHistory returns the attendance records in server order.
	FetchHistory(ctx context.Context) ([]models.AttendanceRecord, error)

	// RecordEvent posts one attendance event. An empty photoURL omits the
	// photo from the request body.
	RecordEvent(ctx context.Context, kind models.EventKind, photoURL string) error

	// SetToken installs the bearer token used on authenticated calls.
	// An empty string clears it.
	SetToken(token string)
}
