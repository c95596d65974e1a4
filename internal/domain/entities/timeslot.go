package entities

import (
	"time"

	"meetmatch/internal/domain/availability"
)

// TimeSlot is one persisted half-hour a participant marked as available.
type TimeSlot struct {
	ID            string
	EventID       string
	ParticipantID string
	Day           string
	TimeStart     string
	TimeEnd       string
	CreatedAt     time.Time
}

func (t TimeSlot) Key() availability.Key {
	return availability.Key{Day: t.Day, Start: t.TimeStart, End: t.TimeEnd}
}
