package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"meetmatch/internal/domain"
	"meetmatch/internal/domain/entities"
	"meetmatch/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

const eventColumns = `id::text, name, description, start_date, end_date, start_time, end_time, share_code, created_at, updated_at`

type EventRepository struct {
	db DBTX
}

func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	start, end, err := eventDates(event)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO events (id, name, description, start_date, end_date, start_time, end_time, share_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		event.ID, event.Name, event.Description, start, end, event.StartTime, event.EndTime, event.ShareCode,
		timeToPgtypeTimestamptz(event.CreatedAt), timeToPgtypeTimestamptz(event.UpdatedAt))
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	if !validID(id) {
		return nil, domain.ErrEventNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if err != nil {
		return nil, notFound(err, domain.ErrEventNotFound, "get event by id")
	}
	return e, nil
}

func (r *EventRepository) FindByShareCode(ctx context.Context, code string) (*entities.Event, error) {
	row := r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE share_code = $1`, code)
	e, err := scanEvent(row)
	if err != nil {
		return nil, notFound(err, domain.ErrEventNotFound, "get event by share code")
	}
	return e, nil
}

func (r *EventRepository) List(ctx context.Context, query string) ([]entities.Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC`, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []entities.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	if !validID(event.ID) {
		return domain.ErrEventNotFound
	}
	start, end, err := eventDates(event)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE events
		SET name = $2, description = $3, start_date = $4, end_date = $5, start_time = $6, end_time = $7, updated_at = $8
		WHERE id = $1`,
		event.ID, event.Name, event.Description, start, end, event.StartTime, event.EndTime,
		timeToPgtypeTimestamptz(event.UpdatedAt))
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// Delete removes the event; participants, time slots and votes cascade.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrEventNotFound
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func eventDates(event *entities.Event) (pgtype.Date, pgtype.Date, error) {
	start, err := stringToPgtypeDate(event.StartDate)
	if err != nil {
		return pgtype.Date{}, pgtype.Date{}, err
	}
	end, err := stringToPgtypeDate(event.EndDate)
	if err != nil {
		return pgtype.Date{}, pgtype.Date{}, err
	}
	return start, end, nil
}

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var (
		e                    entities.Event
		start, end           pgtype.Date
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Description, &start, &end, &e.StartTime, &e.EndTime, &e.ShareCode, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e.StartDate = pgtypeDateToString(start)
	e.EndDate = pgtypeDateToString(end)
	e.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	e.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return &e, nil
}
