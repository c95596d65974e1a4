package discord

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"meetmatch/internal/domain/availability"
)

const displayDateLayout = "02/01/2006"

var (
	ErrDatesFormat  = errors.New("dates must be DD/MM/YYYY - DD/MM/YYYY")
	ErrWindowFormat = errors.New("time window must be HH:MM-HH:MM")
)

// ParseDateRange parses "DD/MM/YYYY - DD/MM/YYYY" into ISO dates. A single
// date stands for a one-day event. Ordering is left to event validation.
func ParseDateRange(s string) (start, end string, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", ErrDatesFormat
	}
	parts := strings.Split(s, "-")
	if len(parts) > 2 {
		return "", "", fmt.Errorf("%w: %q", ErrDatesFormat, s)
	}
	dates := make([]string, 0, 2)
	for _, p := range parts {
		t, err := time.Parse(displayDateLayout, strings.TrimSpace(p))
		if err != nil {
			return "", "", fmt.Errorf("%w: %q", ErrDatesFormat, s)
		}
		dates = append(dates, t.Format(availability.DateLayout))
	}
	if len(dates) == 1 {
		return dates[0], dates[0], nil
	}
	return dates[0], dates[1], nil
}

// ParseTimeWindow parses "HH:MM-HH:MM". An empty string means no window.
func ParseTimeWindow(s string) (start, end string, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", nil
	}
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrWindowFormat, s)
	}
	start, end = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if _, err := availability.ParseClock(start); err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrWindowFormat, s)
	}
	if _, err := availability.ParseClock(end); err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrWindowFormat, s)
	}
	return start, end, nil
}

// FormatDate renders an ISO date as DD/MM/YYYY, or returns it unchanged.
func FormatDate(iso string) string {
	t, err := time.Parse(availability.DateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format(displayDateLayout)
}
