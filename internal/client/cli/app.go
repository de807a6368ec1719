// Package cli is the interactive terminal surface of punchclock: a small
// read-eval-print loop over the attendance lifecycle service.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"punchclock/internal/client/camera"
	"punchclock/internal/client/client"
	"punchclock/internal/client/config"
	"punchclock/internal/client/services"
	"punchclock/internal/client/upload"
	"punchclock/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config     *config.Config
	session    *services.SessionService
	attendance *services.AttendanceService
	log        logging.Logger
	reader     *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewText(os.Stderr, slog.LevelInfo)

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	api := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)
	cam := camera.NewHTTPSource(cfg.CameraSnapshotURL, cfg.RequestTimeout)
	up := upload.NewCloudinaryClient(cfg.UploadURL, cfg.UploadPreset, cfg.RequestTimeout)

	sess := services.NewSessionService(db, log)
	att := services.NewAttendanceService(api, sess, cam, up, log)

	return &App{
		config:     cfg,
		session:    sess,
		attendance: att,
		log:        log,
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if a.attendance.Resume(ctx) {
		a.printOutcome()
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.attendance.Identity()
	return ok
}

func (a *App) getStatus() string {
	if id, ok := a.attendance.Identity(); ok && id.Email != "" {
		return "(" + id.Email + ")"
	}
	return ""
}

// printOutcome shows the transient result of the last action, the way the
// original panel renders its success and error alerts.
func (a *App) printOutcome() {
	if msg := a.attendance.Message(); msg != "" {
		printlnFn(msg)
	}
	if errMsg := a.attendance.Err(); errMsg != "" {
		printlnFn("error: " + errMsg)
	}
}
