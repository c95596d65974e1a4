package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"meetmatch/internal/domain"
	"meetmatch/internal/domain/availability"
	"meetmatch/internal/domain/entities"
	"meetmatch/internal/ports/output"
)

var _ output.TimeSlotRepository = (*TimeSlotRepository)(nil)

const timeSlotColumns = `id::text, event_id::text, participant_id::text, day, time_start, time_end, created_at`

type TimeSlotRepository struct {
	db TxDB
}

func NewTimeSlotRepository(db TxDB) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

// ReplaceForParticipant makes slots the participant's whole set in one
// transaction, so readers see either the old or the new set. Rows whose cell
// is still selected keep their id and votes; votes on removed rows go with
// them by cascade.
func (r *TimeSlotRepository) ReplaceForParticipant(ctx context.Context, eventID, participantID string, slots []entities.TimeSlot) error {
	if !validID(eventID) {
		return domain.ErrEventNotFound
	}
	if !validID(participantID) {
		return domain.ErrParticipantNotFound
	}
	keep := make([]string, 0, len(slots))
	for _, s := range slots {
		keep = append(keep, availability.Encode(s.Day, s.TimeStart, s.TimeEnd))
	}
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM time_slots
			WHERE event_id = $1 AND participant_id = $2
			  AND day || '|' || time_start || '|' || time_end <> ALL($3::text[])`,
			eventID, participantID, keep); err != nil {
			return fmt.Errorf("delete time slots: %w", err)
		}
		if len(slots) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, s := range slots {
			batch.Queue(`
				INSERT INTO time_slots (id, event_id, participant_id, day, time_start, time_end, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT ON CONSTRAINT time_slots_unique DO NOTHING`,
				s.ID, eventID, participantID, s.Day, s.TimeStart, s.TimeEnd, timeToPgtypeTimestamptz(s.CreatedAt))
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert time slots: %w", err)
		}
		return nil
	})
}

func (r *TimeSlotRepository) FindByID(ctx context.Context, id string) (*entities.TimeSlot, error) {
	if !validID(id) {
		return nil, domain.ErrTimeSlotNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+timeSlotColumns+` FROM time_slots WHERE id = $1`, id)
	ts, err := scanTimeSlot(row)
	if err != nil {
		return nil, notFound(err, domain.ErrTimeSlotNotFound, "get time slot by id")
	}
	return ts, nil
}

// FindByEventID reads every slot of the event in a single statement.
func (r *TimeSlotRepository) FindByEventID(ctx context.Context, eventID string) ([]entities.TimeSlot, error) {
	if !validID(eventID) {
		return nil, nil
	}
	return r.list(ctx, "get time slots by event id", `
		SELECT `+timeSlotColumns+` FROM time_slots
		WHERE event_id = $1
		ORDER BY day, time_start`, eventID)
}

func (r *TimeSlotRepository) FindByParticipantID(ctx context.Context, eventID, participantID string) ([]entities.TimeSlot, error) {
	if !validID(eventID) || !validID(participantID) {
		return nil, nil
	}
	return r.list(ctx, "get time slots by participant id", `
		SELECT `+timeSlotColumns+` FROM time_slots
		WHERE event_id = $1 AND participant_id = $2
		ORDER BY day, time_start`, eventID, participantID)
}

func (r *TimeSlotRepository) list(ctx context.Context, op, sql string, args ...any) ([]entities.TimeSlot, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []entities.TimeSlot
	for rows.Next() {
		ts, err := scanTimeSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, *ts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func scanTimeSlot(row pgx.Row) (*entities.TimeSlot, error) {
	var (
		ts        entities.TimeSlot
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&ts.ID, &ts.EventID, &ts.ParticipantID, &ts.Day, &ts.TimeStart, &ts.TimeEnd, &createdAt); err != nil {
		return nil, err
	}
	ts.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return &ts, nil
}
