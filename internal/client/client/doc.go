// Package client contains client-side building blocks for punchclock.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the attendance backend: Login, FetchHistory, RecordEvent.
//  2. A concrete HTTP implementation (see HTTPClient) that sends JSON
//     requests, injects the bearer token, and maps response status codes
//     to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     for the CLI, wiring an SQLite database and applying embedded goose
//     migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrConflict. Rejections
// that carry a server-provided message are returned as *APIError, which
// still matches the sentinels through errors.Is.
package client
