package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"meetmatch/internal/domain/availability"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// pgtypeDateToString formats a DATE column as YYYY-MM-DD, or "" when NULL.
func pgtypeDateToString(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(availability.DateLayout)
}

func stringToPgtypeDate(s string) (pgtype.Date, error) {
	t, err := availability.ParseDate(s)
	if err != nil {
		return pgtype.Date{}, err
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

func pgtypeTextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// stringToPgtypeText stores "" as NULL.
func stringToPgtypeText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
