package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"meetmatch/internal/domain"
	"meetmatch/internal/domain/availability"
	"meetmatch/internal/domain/entities"
	"meetmatch/internal/ports/input"
	"meetmatch/internal/ports/output"
)

var _ input.VoteUseCase = (*VoteService)(nil)

type VoteService struct {
	eventRepo       output.EventRepository
	participantRepo output.ParticipantRepository
	slotRepo        output.TimeSlotRepository
	voteRepo        output.VoteRepository
	cache           output.ResultsCache
	logger          *zap.Logger
	now             func() time.Time
}

func NewVoteService(
	eventRepo output.EventRepository,
	participantRepo output.ParticipantRepository,
	slotRepo output.TimeSlotRepository,
	voteRepo output.VoteRepository,
	cache output.ResultsCache,
	logger *zap.Logger,
) *VoteService {
	return &VoteService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		slotRepo:        slotRepo,
		voteRepo:        voteRepo,
		cache:           cache,
		logger:          logger,
		now:             time.Now,
	}
}

// CastVote records a yes/no/maybe answer for a time slot of the event. A
// second vote by the same participant on the same slot replaces the first.
func (s *VoteService) CastVote(ctx context.Context, req input.CastVoteRequest) (*entities.Vote, error) {
	voteType, err := availability.ParseVoteType(req.VoteType)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.FindByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if _, err := authorize(ctx, s.participantRepo, event.ID, req.ParticipantID, req.EditToken); err != nil {
		return nil, err
	}
	slot, err := s.slotRepo.FindByID(ctx, req.TimeSlotID)
	if err != nil {
		return nil, err
	}
	if slot.EventID != event.ID {
		return nil, domain.ErrTimeSlotNotFound
	}

	vote := &entities.Vote{
		ID:            newID(),
		EventID:       event.ID,
		ParticipantID: req.ParticipantID,
		TimeSlotID:    slot.ID,
		VoteType:      voteType,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.voteRepo.Upsert(ctx, vote); err != nil {
		return nil, fmt.Errorf("upsert vote: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, event.ID)

	s.logger.Info("Vote cast",
		zap.String("event_id", event.ID),
		zap.String("participant_id", req.ParticipantID),
		zap.String("time_slot_id", slot.ID),
		zap.String("vote", string(voteType)))
	return vote, nil
}

func (s *VoteService) ListVotes(ctx context.Context, eventID string) ([]entities.Vote, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.voteRepo.FindByEventID(ctx, eventID)
}
