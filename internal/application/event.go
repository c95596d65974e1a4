package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"meetmatch/internal/domain"
	"meetmatch/internal/domain/availability"
	"meetmatch/internal/domain/entities"
	"meetmatch/internal/ports/input"
	"meetmatch/internal/ports/output"
)

// maxEventDays bounds the date range of one event.
const maxEventDays = 366

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo  output.EventRepository
	cache      output.ResultsCache
	translator output.T
	grid       availability.Grid
	logger     *zap.Logger
	now        func() time.Time
}

func NewEventService(
	eventRepo output.EventRepository,
	cache output.ResultsCache,
	translator output.T,
	grid availability.Grid,
	logger *zap.Logger,
) *EventService {
	return &EventService{
		eventRepo:  eventRepo,
		cache:      cache,
		translator: translator,
		grid:       grid,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event *entities.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	code, err := newShareCode()
	if err != nil {
		return fmt.Errorf("share code: %w", err)
	}
	now := s.now().UTC()
	event.ID = newID()
	event.ShareCode = code
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.logger.Error("Failed to create event",
			zap.String("name", event.Name),
			zap.Error(err))
		return err
	}
	s.logger.Info("Event created",
		zap.String("event_id", event.ID),
		zap.String("share_code", event.ShareCode),
		zap.String("range", event.StartDate+".."+event.EndDate))
	return nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *EventService) GetEventByShareCode(ctx context.Context, code string) (*entities.Event, error) {
	return s.eventRepo.FindByShareCode(ctx, strings.TrimSpace(code))
}

func (s *EventService) ListEvents(ctx context.Context, query string) ([]entities.Event, error) {
	return s.eventRepo.List(ctx, strings.TrimSpace(query))
}

// UpdateEvent overwrites the editable fields. Id, share code and creation
// time are kept from the stored event.
func (s *EventService) UpdateEvent(ctx context.Context, event *entities.Event) error {
	existing, err := s.eventRepo.FindByID(ctx, event.ID)
	if err != nil {
		return err
	}
	if err := validateEvent(event); err != nil {
		return err
	}
	event.ShareCode = existing.ShareCode
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = s.now().UTC()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, event.ID)
	s.logger.Info("Event updated", zap.String("event_id", event.ID))
	return nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, id)
	s.logger.Info("Event deleted", zap.String("event_id", id))
	return nil
}

func (s *EventService) Board(ctx context.Context, eventID, locale string) (*input.Board, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	days, err := availability.ExpandDays(event.StartDate, event.EndDate, s.translator.Weekdays(locale))
	if err != nil {
		return nil, err
	}
	return &input.Board{
		Event:     event,
		Days:      days,
		Cells:     s.grid.Cells(),
		Templates: availability.TemplateNames(),
	}, nil
}

func validateEvent(event *entities.Event) error {
	event.Name = strings.TrimSpace(event.Name)
	event.Description = strings.TrimSpace(event.Description)
	if event.Name == "" {
		return domain.ErrNameRequired
	}

	start, end, err := availability.ValidateRange(event.StartDate, event.EndDate)
	if err != nil {
		return err
	}
	if end.Sub(start) >= maxEventDays*24*time.Hour {
		return fmt.Errorf("%w: more than %d days", domain.ErrInvalidRange, maxEventDays)
	}

	if event.StartTime == "" && event.EndTime == "" {
		return nil
	}
	from, err := availability.ParseClock(event.StartTime)
	if err != nil {
		return err
	}
	to, err := availability.ParseClock(event.EndTime)
	if err != nil {
		return err
	}
	if from >= to {
		return fmt.Errorf("%w: %s-%s", domain.ErrInvalidTimeWindow, event.StartTime, event.EndTime)
	}
	return nil
}
