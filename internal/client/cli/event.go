package cli

import (
	"context"
	"errors"

	"punchclock/internal/client/models"
	"punchclock/internal/client/services"
)

func (a *App) CheckIn(ctx context.Context) error {
	return a.event(ctx, models.EventCheckIn)
}

func (a *App) CheckOut(ctx context.Context) error {
	return a.event(ctx, models.EventCheckOut)
}

func (a *App) BreakIn(ctx context.Context) error {
	return a.event(ctx, models.EventBreakIn)
}

func (a *App) BreakOut(ctx context.Context) error {
	return a.event(ctx, models.EventBreakOut)
}

func (a *App) event(ctx context.Context, kind models.EventKind) error {
	err := a.attendance.PerformEvent(ctx, kind)
	if errors.Is(err, services.ErrActionInProgress) {
		printlnFn("Another action is still running, try again in a moment")
		return err
	}
	a.printOutcome()
	return err
}
