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

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

const participantColumns = `id::text, event_id::text, name, email, edit_token::text, joined_at`

// ParticipantRepository implements output.ParticipantRepository using pgx.
type ParticipantRepository struct {
	db DBTX
}

func NewParticipantRepository(db DBTX) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	if !validID(participant.EventID) {
		return domain.ErrEventNotFound
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO participants (id, event_id, name, email, edit_token, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		participant.ID, participant.EventID, participant.Name, stringToPgtypeText(participant.Email),
		participant.EditToken, timeToPgtypeTimestamptz(participant.JoinedAt))
	if err != nil {
		return fmt.Errorf("create participant: %w", err)
	}
	return nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id string) (*entities.Participant, error) {
	if !validID(id) {
		return nil, domain.ErrParticipantNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+participantColumns+` FROM participants WHERE id = $1`, id)
	p, err := scanParticipant(row)
	if err != nil {
		return nil, notFound(err, domain.ErrParticipantNotFound, "get participant by id")
	}
	return p, nil
}

func (r *ParticipantRepository) FindByEventID(ctx context.Context, eventID string) ([]entities.Participant, error) {
	if !validID(eventID) {
		return nil, nil
	}
	return r.list(ctx, "get participants by event id", `
		SELECT `+participantColumns+` FROM participants
		WHERE event_id = $1
		ORDER BY joined_at, id`, eventID)
}

func (r *ParticipantRepository) FindByEventIDAndName(ctx context.Context, eventID, name string) ([]entities.Participant, error) {
	if !validID(eventID) {
		return nil, nil
	}
	return r.list(ctx, "get participants by name", `
		SELECT `+participantColumns+` FROM participants
		WHERE event_id = $1 AND lower(name) = lower($2)
		ORDER BY joined_at DESC`, eventID, name)
}

func (r *ParticipantRepository) list(ctx context.Context, op, sql string, args ...any) ([]entities.Participant, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []entities.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func scanParticipant(row pgx.Row) (*entities.Participant, error) {
	var (
		p        entities.Participant
		email    pgtype.Text
		joinedAt pgtype.Timestamptz
	)
	if err := row.Scan(&p.ID, &p.EventID, &p.Name, &email, &p.EditToken, &joinedAt); err != nil {
		return nil, err
	}
	p.Email = pgtypeTextToString(email)
	p.JoinedAt = pgtypeTimestamptzToTime(joinedAt)
	return &p, nil
}
