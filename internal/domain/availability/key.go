// Package availability holds the slot model of MeetMatch: slot keys, the
// half-hour grid, day expansion, interval merging, interactive selection,
// aggregation of participants' answers and best-slot ranking.
//
// Everything here is pure and synchronous; persistence and transport live in
// the infrastructure and adapter layers.
package availability

import (
	"fmt"
	"strings"

	"meetmatch/internal/domain"
)

// keyDelimiter separates the fields of an encoded key. It never occurs in an
// ISO date, a weekday name or an HH:MM time, so decoding is unambiguous.
const keyDelimiter = "|"

// legacyDelimiter is the separator of keys written as "day-start-end".
const legacyDelimiter = "-"

// Key identifies one half-hour availability cell. It encodes to JSON as its
// canonical string, both as a value and as an object key.
type Key struct {
	Day   string
	Start string
	End   string
}

// Encode joins day, start and end into the canonical string key.
func Encode(day, start, end string) string {
	return day + keyDelimiter + start + keyDelimiter + end
}

// Decode parses a canonical key produced by Encode.
func Decode(s string) (Key, error) {
	parts := strings.Split(s, keyDelimiter)
	if len(parts) != 3 {
		return Key{}, fmt.Errorf("%w: %q has %d fields", domain.ErrMalformedKey, s, len(parts))
	}
	for _, p := range parts {
		if p == "" {
			return Key{}, fmt.Errorf("%w: %q has an empty field", domain.ErrMalformedKey, s)
		}
	}
	return Key{Day: parts[0], Start: parts[1], End: parts[2]}, nil
}

// DecodeLegacy parses keys written as "day-start-end", where day is either a
// weekday name ("monday") or an ISO date ("2024-01-15"). The last two fields
// are always the times, everything before them is the day.
func DecodeLegacy(s string) (Key, error) {
	parts := strings.Split(s, legacyDelimiter)
	n := len(parts)
	if n < 3 {
		return Key{}, fmt.Errorf("%w: %q", domain.ErrMalformedKey, s)
	}
	k := Key{
		Day:   strings.Join(parts[:n-2], legacyDelimiter),
		Start: parts[n-2],
		End:   parts[n-1],
	}
	if k.Day == "" || k.Start == "" || k.End == "" {
		return Key{}, fmt.Errorf("%w: %q", domain.ErrMalformedKey, s)
	}
	return k, nil
}

// Validate checks that k is a well-formed cell: an ISO day and a
// SlotMinutes-wide, aligned time range.
func (k Key) Validate() error {
	if _, err := ParseDate(k.Day); err != nil {
		return fmt.Errorf("%w: day %q", domain.ErrMalformedKey, k.Day)
	}
	s, err := ParseClock(k.Start)
	if err != nil {
		return fmt.Errorf("%w: start %q", domain.ErrMalformedKey, k.Start)
	}
	e, err := ParseClock(k.End)
	if err != nil {
		return fmt.Errorf("%w: end %q", domain.ErrMalformedKey, k.End)
	}
	if s%SlotMinutes != 0 || e != s+SlotMinutes {
		return fmt.Errorf("%w: %s-%s is not a grid cell", domain.ErrMalformedKey, k.Start, k.End)
	}
	return nil
}

// String returns the canonical encoding of k.
func (k Key) String() string {
	return Encode(k.Day, k.Start, k.End)
}

// Cell returns the time part of k.
func (k Key) Cell() Cell {
	return Cell{Start: k.Start, End: k.End}
}

// MarshalText lets keys be used as JSON object keys.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Decode(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Less orders keys by day, then start, then end. ISO dates and zero-padded
// times sort correctly as strings.
func (k Key) Less(o Key) bool {
	if k.Day != o.Day {
		return k.Day < o.Day
	}
	if k.Start != o.Start {
		return k.Start < o.Start
	}
	return k.End < o.End
}
