package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"meetmatch/internal/domain/availability"
	"meetmatch/internal/domain/entities"
)

// TestReplaceForParticipant_KeepsUnchangedRows runs against a real database
// when MEETMATCH_TEST_DATABASE_URL is set.
func TestReplaceForParticipant_KeepsUnchangedRows(t *testing.T) {
	dsn := os.Getenv("MEETMATCH_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("MEETMATCH_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	log := zap.NewNop()
	if err := RunMigrations(dsn, log); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	pool, err := NewPool(ctx, dsn, log)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	defer pool.Close()

	events := NewEventRepository(pool)
	participants := NewParticipantRepository(pool)
	slots := NewTimeSlotRepository(pool)
	votes := NewVoteRepository(pool)

	now := time.Now().UTC()
	event := &entities.Event{
		ID: uuid.NewString(), Name: "Replace", StartDate: "2024-01-15", EndDate: "2024-01-16",
		ShareCode: uuid.NewString()[:7], CreatedAt: now, UpdatedAt: now,
	}
	if err := events.Create(ctx, event); err != nil {
		t.Fatalf("create event: %v", err)
	}
	defer func() { _ = events.Delete(ctx, event.ID) }()

	p := &entities.Participant{ID: uuid.NewString(), EventID: event.ID, Name: "Alice", EditToken: uuid.NewString(), JoinedAt: now}
	if err := participants.Create(ctx, p); err != nil {
		t.Fatalf("create participant: %v", err)
	}

	newSlot := func(day, start, end string) entities.TimeSlot {
		return entities.TimeSlot{ID: uuid.NewString(), EventID: event.ID, ParticipantID: p.ID, Day: day, TimeStart: start, TimeEnd: end, CreatedAt: now}
	}
	mon := newSlot("2024-01-15", "09:00", "09:30")
	tue := newSlot("2024-01-16", "09:00", "09:30")
	if err := slots.ReplaceForParticipant(ctx, event.ID, p.ID, []entities.TimeSlot{mon, tue}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	for _, s := range []entities.TimeSlot{mon, tue} {
		v := &entities.Vote{ID: uuid.NewString(), EventID: event.ID, ParticipantID: p.ID, TimeSlotID: s.ID, VoteType: availability.VoteYes, CreatedAt: now}
		if err := votes.Upsert(ctx, v); err != nil {
			t.Fatalf("vote: %v", err)
		}
	}

	// same monday cell under a fresh id, tuesday dropped
	again := newSlot("2024-01-15", "09:00", "09:30")
	if err := slots.ReplaceForParticipant(ctx, event.ID, p.ID, []entities.TimeSlot{again}); err != nil {
		t.Fatalf("replace again: %v", err)
	}

	stored, err := slots.FindByParticipantID(ctx, event.ID, p.ID)
	if err != nil {
		t.Fatalf("list slots: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != mon.ID {
		t.Fatalf("expected the monday row to keep id %s, got %+v", mon.ID, stored)
	}
	left, err := votes.FindByEventID(ctx, event.ID)
	if err != nil {
		t.Fatalf("list votes: %v", err)
	}
	if len(left) != 1 || left[0].TimeSlotID != mon.ID {
		t.Errorf("expected only the monday vote to survive, got %+v", left)
	}
}
