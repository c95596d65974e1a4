package input

import (
	"context"

	"meetmatch/internal/domain/entities"
)

type ParticipantUseCase interface {
	Register(ctx context.Context, eventID, name, email string) (*entities.Participant, error)
	ListParticipants(ctx context.Context, eventID string) ([]entities.Participant, error)
	// FindByName is a best-effort fallback for clients that lost their edit
	// token. Names are not unique, so several participants may match.
	FindByName(ctx context.Context, eventID, name string) ([]entities.Participant, error)
}
