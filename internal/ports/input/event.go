package input

import (
	"context"

	"meetmatch/internal/domain/availability"
	"meetmatch/internal/domain/entities"
)

type EventUseCase interface {
	CreateEvent(ctx context.Context, event *entities.Event) error
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
	GetEventByShareCode(ctx context.Context, code string) (*entities.Event, error)
	ListEvents(ctx context.Context, query string) ([]entities.Event, error)
	UpdateEvent(ctx context.Context, event *entities.Event) error
	DeleteEvent(ctx context.Context, id string) error
	Board(ctx context.Context, eventID, locale string) (*Board, error)
}

// Board is everything a client needs to draw the availability grid.
type Board struct {
	Event     *entities.Event
	Days      []availability.Day
	Cells     []availability.Cell
	Templates []string
}
