package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrTimeSlotNotFound    = errors.New("time slot not found")
	ErrNameRequired        = errors.New("name is required")
	ErrInvalidDate         = errors.New("invalid date (expected YYYY-MM-DD)")
	ErrInvalidRange        = errors.New("start date must not be after end date")
	ErrInvalidTime         = errors.New("invalid time (expected HH:MM on a 30 minute boundary)")
	ErrInvalidTimeWindow   = errors.New("start time must be before end time")
	ErrMalformedKey        = errors.New("malformed slot key")
	ErrSlotOutOfRange      = errors.New("slot is outside the event board")
	ErrInvalidVoteType     = errors.New("vote type must be one of: yes, no, maybe")
	ErrInvalidEditToken    = errors.New("edit token does not match participant")
	ErrParticipantMismatch = errors.New("participant does not belong to this event")
	ErrUnknownTemplate     = errors.New("unknown selection template")
	ErrSelectionMode       = errors.New("operation not allowed in the current selection mode")
)

var codes = map[error]string{
	ErrEventNotFound:       "event_not_found",
	ErrParticipantNotFound: "participant_not_found",
	ErrTimeSlotNotFound:    "time_slot_not_found",
	ErrNameRequired:        "name_required",
	ErrInvalidDate:         "invalid_date",
	ErrInvalidRange:        "invalid_range",
	ErrInvalidTime:         "invalid_time",
	ErrInvalidTimeWindow:   "invalid_time_window",
	ErrMalformedKey:        "malformed_key",
	ErrSlotOutOfRange:      "slot_out_of_range",
	ErrInvalidVoteType:     "invalid_vote_type",
	ErrInvalidEditToken:    "invalid_edit_token",
	ErrParticipantMismatch: "participant_mismatch",
	ErrUnknownTemplate:     "unknown_template",
	ErrSelectionMode:       "selection_mode",
}

// Code returns the stable code of the first domain error found in err's chain,
// or "" when err carries no domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
