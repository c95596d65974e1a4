package application

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"meetmatch/internal/domain"
	"meetmatch/internal/domain/entities"
	"meetmatch/internal/ports/input"
	"meetmatch/internal/ports/output"
)

var _ input.ParticipantUseCase = (*ParticipantService)(nil)

type ParticipantService struct {
	participantRepo output.ParticipantRepository
	eventRepo       output.EventRepository
	cache           output.ResultsCache
	logger          *zap.Logger
	now             func() time.Time
}

func NewParticipantService(
	participantRepo output.ParticipantRepository,
	eventRepo output.EventRepository,
	cache output.ResultsCache,
	logger *zap.Logger,
) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		cache:           cache,
		logger:          logger,
		now:             time.Now,
	}
}

// Register adds a participant to the event. The returned participant carries
// the edit token; later reads never expose it.
func (s *ParticipantService) Register(ctx context.Context, eventID, name, email string) (*entities.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	participant := &entities.Participant{
		ID:        newID(),
		EventID:   eventID,
		Name:      name,
		Email:     strings.TrimSpace(email),
		EditToken: newID(),
		JoinedAt:  s.now().UTC(),
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, eventID)
	s.logger.Info("Participant registered",
		zap.String("event_id", eventID),
		zap.String("participant_id", participant.ID))
	return participant, nil
}

func (s *ParticipantService) ListParticipants(ctx context.Context, eventID string) ([]entities.Participant, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.participantRepo.FindByEventID(ctx, eventID)
}

func (s *ParticipantService) FindByName(ctx context.Context, eventID, name string) ([]entities.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	return s.participantRepo.FindByEventIDAndName(ctx, eventID, name)
}

// authorize resolves the participant and checks it belongs to eventID and
// that token matches its edit token.
func authorize(ctx context.Context, repo output.ParticipantRepository, eventID, participantID, token string) (*entities.Participant, error) {
	p, err := repo.FindByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if p.EventID != eventID {
		return nil, domain.ErrParticipantMismatch
	}
	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(p.EditToken)) != 1 {
		return nil, domain.ErrInvalidEditToken
	}
	return p, nil
}
