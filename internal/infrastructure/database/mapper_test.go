package database

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"meetmatch/internal/domain"
)

func TestDateMapping(t *testing.T) {
	d, err := stringToPgtypeDate("2024-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := pgtypeDateToString(d); got != "2024-01-15" {
		t.Errorf("got %q", got)
	}
	if got := pgtypeDateToString(pgtype.Date{}); got != "" {
		t.Errorf("NULL date should map to empty string, got %q", got)
	}
	if _, err := stringToPgtypeDate("15/01/2024"); !errors.Is(err, domain.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestTextMapping(t *testing.T) {
	if v := stringToPgtypeText(""); v.Valid {
		t.Error("empty string should be NULL")
	}
	if got := pgtypeTextToString(stringToPgtypeText("a@b.c")); got != "a@b.c" {
		t.Errorf("got %q", got)
	}
}

func TestTimestamptzMapping(t *testing.T) {
	if v := timeToPgtypeTimestamptz(time.Time{}); v.Valid {
		t.Error("zero time should be NULL")
	}
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	if got := pgtypeTimestamptzToTime(timeToPgtypeTimestamptz(now)); !got.Equal(now) {
		t.Errorf("got %v", got)
	}
}

func TestNotFound(t *testing.T) {
	if err := notFound(pgx.ErrNoRows, domain.ErrEventNotFound, "get event"); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
	boom := errors.New("boom")
	err := notFound(boom, domain.ErrEventNotFound, "get event")
	if !errors.Is(err, boom) || err.Error() != "get event: boom" {
		t.Errorf("unexpected wrap %v", err)
	}
}

func TestValidID(t *testing.T) {
	if !validID("6f1c2b0e-8a4e-4c55-9a36-2f0f7e1b9d11") {
		t.Error("expected uuid to be valid")
	}
	if validID("missing") {
		t.Error("expected non-uuid to be invalid")
	}
}
