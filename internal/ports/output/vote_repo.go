package output

import (
	"context"

	"meetmatch/internal/domain/entities"
)

type VoteRepository interface {
	// Upsert stores the vote, replacing an earlier vote of the same
	// participant for the same time slot.
	Upsert(ctx context.Context, vote *entities.Vote) error
	FindByEventID(ctx context.Context, eventID string) ([]entities.Vote, error)
	ListRecords(ctx context.Context, eventID string) ([]entities.VoteRecord, error)
}
