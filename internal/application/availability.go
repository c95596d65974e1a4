package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"meetmatch/internal/domain"
	"meetmatch/internal/domain/availability"
	"meetmatch/internal/domain/entities"
	"meetmatch/internal/ports/input"
	"meetmatch/internal/ports/output"
)

var _ input.AvailabilityUseCase = (*AvailabilityService)(nil)

type AvailabilityService struct {
	eventRepo       output.EventRepository
	participantRepo output.ParticipantRepository
	slotRepo        output.TimeSlotRepository
	cache           output.ResultsCache
	grid            availability.Grid
	logger          *zap.Logger
	now             func() time.Time
}

func NewAvailabilityService(
	eventRepo output.EventRepository,
	participantRepo output.ParticipantRepository,
	slotRepo output.TimeSlotRepository,
	cache output.ResultsCache,
	grid availability.Grid,
	logger *zap.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		slotRepo:        slotRepo,
		cache:           cache,
		grid:            grid,
		logger:          logger,
		now:             time.Now,
	}
}

// Submit replaces the participant's availability with req.Slots, plus every
// cell of req.Template when one is named. Each slot must be a grid cell on a
// day of the event.
func (s *AvailabilityService) Submit(ctx context.Context, req input.SubmitRequest) ([]availability.Key, error) {
	event, err := s.eventRepo.FindByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if _, err := authorize(ctx, s.participantRepo, event.ID, req.ParticipantID, req.EditToken); err != nil {
		return nil, err
	}

	days, err := availability.ExpandDays(event.StartDate, event.EndDate, availability.EnglishWeekdays)
	if err != nil {
		return nil, err
	}
	sel := availability.NewSelection(availability.NewBoard(days, s.grid), availability.ModeClick)
	if err := sel.Add(req.Slots...); err != nil {
		return nil, err
	}
	if req.Template != "" {
		if err := sel.ApplyTemplate(req.Template, false); err != nil {
			return nil, err
		}
	}

	keys := sel.Keys()
	now := s.now().UTC()
	slots := make([]entities.TimeSlot, 0, len(keys))
	for _, k := range keys {
		slots = append(slots, entities.TimeSlot{
			ID:            newID(),
			EventID:       event.ID,
			ParticipantID: req.ParticipantID,
			Day:           k.Day,
			TimeStart:     k.Start,
			TimeEnd:       k.End,
			CreatedAt:     now,
		})
	}
	if err := s.slotRepo.ReplaceForParticipant(ctx, event.ID, req.ParticipantID, slots); err != nil {
		return nil, fmt.Errorf("replace time slots: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, event.ID)

	s.logger.Info("Availability submitted",
		zap.String("event_id", event.ID),
		zap.String("participant_id", req.ParticipantID),
		zap.Int("slots", len(keys)),
		zap.String("template", req.Template))
	return keys, nil
}

func (s *AvailabilityService) ListTimeSlots(ctx context.Context, eventID string) ([]entities.TimeSlot, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.slotRepo.FindByEventID(ctx, eventID)
}

func (s *AvailabilityService) Selection(ctx context.Context, eventID, participantID string) ([]availability.Key, error) {
	p, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if p.EventID != eventID {
		return nil, domain.ErrParticipantMismatch
	}
	slots, err := s.slotRepo.FindByParticipantID(ctx, eventID, participantID)
	if err != nil {
		return nil, err
	}
	keys := make([]availability.Key, 0, len(slots))
	for _, ts := range slots {
		k := ts.Key()
		if err := k.Validate(); err != nil {
			s.logger.Warn("Skipping malformed time slot",
				zap.String("time_slot_id", ts.ID),
				zap.Error(err))
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys, nil
}

// invalidate drops cached results. Failures are logged, not returned; the
// entry still expires on its TTL.
func invalidate(ctx context.Context, cache output.ResultsCache, logger *zap.Logger, eventID string) {
	if err := cache.Invalidate(ctx, eventID); err != nil {
		logger.Warn("Failed to invalidate results cache",
			zap.String("event_id", eventID),
			zap.Error(err))
	}
}
