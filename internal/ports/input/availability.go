package input

import (
	"context"

	"meetmatch/internal/domain/availability"
	"meetmatch/internal/domain/entities"
)

// SubmitRequest replaces a participant's availability. Template, when set,
// names a quick-select pattern unioned with Slots.
type SubmitRequest struct {
	EventID       string
	ParticipantID string
	EditToken     string
	Slots         []availability.Key
	Template      string
}

type AvailabilityUseCase interface {
	// Submit stores the selection and returns the keys that were saved.
	Submit(ctx context.Context, req SubmitRequest) ([]availability.Key, error)
	ListTimeSlots(ctx context.Context, eventID string) ([]entities.TimeSlot, error)
	// Selection returns the participant's saved keys so editing can resume.
	Selection(ctx context.Context, eventID, participantID string) ([]availability.Key, error)
}
