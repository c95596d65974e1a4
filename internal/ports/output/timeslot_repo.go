package output

import (
	"context"

	"meetmatch/internal/domain/entities"
)

type TimeSlotRepository interface {
	// ReplaceForParticipant atomically swaps every slot of the participant in
	// the event for slots.
	ReplaceForParticipant(ctx context.Context, eventID, participantID string, slots []entities.TimeSlot) error
	FindByID(ctx context.Context, id string) (*entities.TimeSlot, error)
	FindByEventID(ctx context.Context, eventID string) ([]entities.TimeSlot, error)
	FindByParticipantID(ctx context.Context, eventID, participantID string) ([]entities.TimeSlot, error)
}
