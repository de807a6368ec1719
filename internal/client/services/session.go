// Package services contains the application services of the punchclock
// client: the durable session (bearer token plus decoded identity) and the
// attendance lifecycle controller that sequences login, logout and the four
// event actions.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"punchclock/internal/client/models"
	"punchclock/internal/client/repositories/session"
	"punchclock/internal/dbx"
	"punchclock/internal/logging"
)

// ErrInvalidToken means the token does not decode to a usable identity.
var ErrInvalidToken = errors.New("invalid token")

const credentialKey = "token"

// Credential is the bearer token together with the identity decoded from it.
type Credential struct {
	Token    string
	Identity models.Identity
}

// SessionStore holds the current credential and persists it across
// restarts.
//
// Contract:
//   - SetCredential: validate and persist a new token; on decode failure
//     the previous state is left untouched.
//   - ClearCredential: drop the persisted token; idempotent.
//   - Current: the credential, or ok=false when anonymous.
type SessionStore interface {
	SetCredential(ctx context.Context, token string) error
	ClearCredential(ctx context.Context) error
	Current() (Credential, bool)
}

// SessionService is the concrete SessionStore backed by the local sqlite
// database.
type SessionService struct {
	db  *sql.DB
	log logging.Logger
	cur *Credential
}

func NewSessionService(db *sql.DB, log logging.Logger) *SessionService {
	return &SessionService{db: db, log: log}
}

func (s *SessionService) repo(db dbx.DBTX) session.Repository {
	return session.NewSQLiteRepository(db)
}

// Restore loads the persisted token, if any. A token that no longer
// decodes, or whose expiry has passed, is discarded and the session stays
// anonymous.
func (s *SessionService) Restore(ctx context.Context) error {
	value, err := s.repo(s.db).Get(ctx, credentialKey)
	if err != nil {
		return fmt.Errorf("session restore: %w", err)
	}
	if len(value) == 0 {
		return nil
	}

	token := string(value)
	identity, err := decodeIdentity(token)
	if err != nil {
		s.log.Warn(ctx, "discarding persisted token", "error", err)
		return s.ClearCredential(ctx)
	}

	s.cur = &Credential{Token: token, Identity: identity}
	return nil
}

// SetCredential validates that the token decodes to an identity, persists
// it and switches the session to authenticated. On decode failure the
// prior state is kept.
func (s *SessionService) SetCredential(ctx context.Context, token string) error {
	identity, err := decodeIdentity(token)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		return repo.Set(ctx, credentialKey, []byte(token))
	})
	if err != nil {
		return fmt.Errorf("session persist: %w", err)
	}

	s.cur = &Credential{Token: token, Identity: identity}
	return nil
}

// ClearCredential removes the persisted token and returns the session to
// anonymous. Safe to call repeatedly.
func (s *SessionService) ClearCredential(ctx context.Context) error {
	s.cur = nil
	if err := s.repo(s.db).Clear(ctx); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

func (s *SessionService) Current() (Credential, bool) {
	if s.cur == nil {
		return Credential{}, false
	}
	return *s.cur, true
}

type tokenClaims struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// decodeIdentity extracts the employee identity from the token claims.
// The client holds no signing key, so the signature is not verified here;
// the backend remains the authority and rejects bad tokens with 401.
func decodeIdentity(token string) (models.Identity, error) {
	var claims tokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.ID == "" {
		return models.Identity{}, fmt.Errorf("%w: no subject id claim", ErrInvalidToken)
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return models.Identity{}, fmt.Errorf("%w: token expired", ErrInvalidToken)
	}

	return models.Identity{ID: claims.ID, Email: claims.Email}, nil
}
