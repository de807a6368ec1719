// Package models defines the attendance record, event kinds and the
// identity carried by a session token.
package models

import "time"

// EventKind classifies an attendance event. Its string value is also the
// API route suffix the event is posted to.
type EventKind string

const (
	EventCheckIn  EventKind = "checkin"
	EventCheckOut EventKind = "checkout"
	EventBreakIn  EventKind = "breakin"
	EventBreakOut EventKind = "breakout"
)

// PhotoRequired reports whether the event cannot be recorded without a
// successfully uploaded photo. Check events require one; break events
// proceed without a photo when capture or upload fails.
func (k EventKind) PhotoRequired() bool {
	return k == EventCheckIn || k == EventCheckOut
}

// SuccessMessage is the transient line shown after the event is recorded.
func (k EventKind) SuccessMessage() string {
	switch k {
	case EventCheckIn:
		return "Checked in successfully"
	case EventCheckOut:
		return "Checked out successfully"
	case EventBreakIn:
		return "Break in recorded"
	case EventBreakOut:
		return "Break out recorded"
	}
	return "Event recorded"
}

// FailureMessage is the generic failure line, used when the server did
// not provide a message of its own.
func (k EventKind) FailureMessage() string {
	switch k {
	case EventCheckIn:
		return "Check-in failed"
	case EventCheckOut:
		return "Check-out failed"
	case EventBreakIn:
		return "Break in failed"
	case EventBreakOut:
		return "Break out failed"
	}
	return "Event failed"
}

// Identity is the employee a session token belongs to.
type Identity struct {
	ID    string
	Email string
}

// CapturedPhoto is a still image held only for the duration of a single
// action: captured, uploaded, discarded. Never persisted locally.
type CapturedPhoto struct {
	Data        []byte
	ContentType string
}

// AttendanceRecord is one employee-day as the server reports it. All
// fields are server-owned; totalHours, status and remarks are computed
// server-side and the client never fills them in on its own. Timestamps
// are pointers because any of the four events may not have happened yet.
type AttendanceRecord struct {
	ID   string    `json:"_id"`
	Date time.Time `json:"date"`

	CheckIn  *time.Time `json:"checkIn,omitempty"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
	BreakIn  *time.Time `json:"breakIn,omitempty"`
	BreakOut *time.Time `json:"breakOut,omitempty"`

	CheckInPhoto  string `json:"checkInPhoto,omitempty"`
	CheckOutPhoto string `json:"checkOutPhoto,omitempty"`
	BreakInPhoto  string `json:"breakInPhoto,omitempty"`
	BreakOutPhoto string `json:"breakOutPhoto,omitempty"`

	TotalHours *float64 `json:"totalHours,omitempty"`
	Status     string   `json:"status,omitempty"`
	Remarks    string   `json:"remarks,omitempty"`
}
