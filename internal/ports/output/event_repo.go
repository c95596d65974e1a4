package output

import (
	"context"

	"meetmatch/internal/domain/entities"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	FindByShareCode(ctx context.Context, code string) (*entities.Event, error)
	// List returns events newest first. An empty query matches everything,
	// otherwise name and description are searched case-insensitively.
	List(ctx context.Context, query string) ([]entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id string) error
}
