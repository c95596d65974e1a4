package entities

import (
	"time"

	"meetmatch/internal/domain/availability"
)

// Vote is a participant's yes/no/maybe answer for a persisted time slot.
type Vote struct {
	ID            string
	EventID       string
	ParticipantID string
	TimeSlotID    string
	VoteType      availability.VoteType
	CreatedAt     time.Time
}

// VoteRecord is a vote joined with the slot it targets, as read for results.
type VoteRecord struct {
	VoteType  string
	Day       string
	TimeStart string
	TimeEnd   string
}
