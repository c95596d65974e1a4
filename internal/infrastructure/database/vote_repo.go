package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"meetmatch/internal/domain"
	"meetmatch/internal/domain/availability"
	"meetmatch/internal/domain/entities"
	"meetmatch/internal/ports/output"
)

var _ output.VoteRepository = (*VoteRepository)(nil)

type VoteRepository struct {
	db DBTX
}

func NewVoteRepository(db DBTX) *VoteRepository {
	return &VoteRepository{db: db}
}

// Upsert inserts the vote or, when the participant already voted on the slot,
// updates the type and timestamp of the existing row. vote.ID is set to the
// stored row's id.
func (r *VoteRepository) Upsert(ctx context.Context, vote *entities.Vote) error {
	if !validID(vote.TimeSlotID) {
		return domain.ErrTimeSlotNotFound
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO votes (id, event_id, participant_id, time_slot_id, vote_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ON CONSTRAINT votes_unique
		DO UPDATE SET vote_type = EXCLUDED.vote_type, created_at = EXCLUDED.created_at
		RETURNING id::text`,
		vote.ID, vote.EventID, vote.ParticipantID, vote.TimeSlotID, string(vote.VoteType),
		timeToPgtypeTimestamptz(vote.CreatedAt)).Scan(&vote.ID)
	if err != nil {
		return fmt.Errorf("upsert vote: %w", err)
	}
	return nil
}

func (r *VoteRepository) FindByEventID(ctx context.Context, eventID string) ([]entities.Vote, error) {
	if !validID(eventID) {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT id::text, event_id::text, participant_id::text, time_slot_id::text, vote_type, created_at
		FROM votes
		WHERE event_id = $1
		ORDER BY created_at`, eventID)
	if err != nil {
		return nil, fmt.Errorf("get votes by event id: %w", err)
	}
	defer rows.Close()

	var out []entities.Vote
	for rows.Next() {
		var (
			v         entities.Vote
			voteType  string
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.EventID, &v.ParticipantID, &v.TimeSlotID, &voteType, &createdAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		v.VoteType = availability.VoteType(voteType)
		v.CreatedAt = pgtypeTimestamptzToTime(createdAt)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get votes by event id: %w", err)
	}
	return out, nil
}

// ListRecords joins every vote of the event with its slot in one statement.
func (r *VoteRepository) ListRecords(ctx context.Context, eventID string) ([]entities.VoteRecord, error) {
	if !validID(eventID) {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT v.vote_type, s.day, s.time_start, s.time_end
		FROM votes v
		JOIN time_slots s ON s.id = v.time_slot_id
		WHERE v.event_id = $1`, eventID)
	if err != nil {
		return nil, fmt.Errorf("list vote records: %w", err)
	}
	defer rows.Close()

	var out []entities.VoteRecord
	for rows.Next() {
		var rec entities.VoteRecord
		if err := rows.Scan(&rec.VoteType, &rec.Day, &rec.TimeStart, &rec.TimeEnd); err != nil {
			return nil, fmt.Errorf("scan vote record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vote records: %w", err)
	}
	return out, nil
}
