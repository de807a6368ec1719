package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"punchclock/internal/client/models"
)

// History refetches the attendance history and renders it.
func (a *App) History(ctx context.Context) error {
	if err := a.attendance.RefreshHistory(ctx); err != nil {
		a.printOutcome()
		return err
	}

	for _, record := range a.attendance.History() {
		printlnFn(formatRecord(record))
	}
	a.printOutcome()
	return nil
}

// formatRecord renders one employee-day: date, the four event times,
// photo URLs when present, then the server-computed summary.
func formatRecord(r models.AttendanceRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Date: %s\n", r.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "  Check In:  %-8s  Check Out: %-8s\n", formatClock(r.CheckIn), formatClock(r.CheckOut))
	fmt.Fprintf(&b, "  Break In:  %-8s  Break Out: %-8s\n", formatClock(r.BreakIn), formatClock(r.BreakOut))
	if r.CheckInPhoto != "" {
		fmt.Fprintf(&b, "  Check-in photo: %s\n", r.CheckInPhoto)
	}
	if r.CheckOutPhoto != "" {
		fmt.Fprintf(&b, "  Check-out photo: %s\n", r.CheckOutPhoto)
	}
	if r.BreakInPhoto != "" {
		fmt.Fprintf(&b, "  Break-in photo: %s\n", r.BreakInPhoto)
	}
	if r.BreakOutPhoto != "" {
		fmt.Fprintf(&b, "  Break-out photo: %s\n", r.BreakOutPhoto)
	}
	fmt.Fprintf(&b, "  Total Hours: %s  Status: %s  Remark: %s",
		formatHours(r.TotalHours), orNA(r.Status), orNA(r.Remarks))

	return b.String()
}

func formatClock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("15:04:05")
}

func formatHours(h *float64) string {
	if h == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *h)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
