package entities

import "time"

// Participant represents a person answering an event's poll.
// EditToken authorizes later edits of the participant's availability and is
// only disclosed when the participant is created.
type Participant struct {
	ID        string
	EventID   string
	Name      string
	Email     string
	EditToken string
	JoinedAt  time.Time
}
