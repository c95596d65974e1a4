package entities

import "time"

// Event is a scheduling poll over an inclusive range of calendar days.
// StartTime and EndTime describe the organizer's preferred daily window; they
// are shown to participants but do not restrict the grid.
type Event struct {
	ID          string
	Name        string
	Description string
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	ShareCode   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasTimeWindow reports whether the organizer set a daily window.
func (e *Event) HasTimeWindow() bool {
	return e.StartTime != "" && e.EndTime != ""
}
