package output

import (
	"context"

	"meetmatch/internal/domain/entities"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *entities.Participant) error
	FindByID(ctx context.Context, id string) (*entities.Participant, error)
	FindByEventID(ctx context.Context, eventID string) ([]entities.Participant, error)
	FindByEventIDAndName(ctx context.Context, eventID, name string) ([]entities.Participant, error)
}
