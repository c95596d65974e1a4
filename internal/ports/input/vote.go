package input

import (
	"context"

	"meetmatch/internal/domain/entities"
)

type CastVoteRequest struct {
	EventID       string
	ParticipantID string
	EditToken     string
	TimeSlotID    string
	VoteType      string
}

type VoteUseCase interface {
	CastVote(ctx context.Context, req CastVoteRequest) (*entities.Vote, error)
	ListVotes(ctx context.Context, eventID string) ([]entities.Vote, error)
}
