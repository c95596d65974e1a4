package availability

import (
	"fmt"
	"sort"
	"strings"

	"meetmatch/internal/domain"
)

// VoteType is a participant's answer for one time slot.
type VoteType string

const (
	VoteYes   VoteType = "yes"
	VoteNo    VoteType = "no"
	VoteMaybe VoteType = "maybe"
)

// ParseVoteType validates a raw vote type. Matching is case-insensitive.
func ParseVoteType(s string) (VoteType, error) {
	switch VoteType(strings.ToLower(strings.TrimSpace(s))) {
	case VoteYes:
		return VoteYes, nil
	case VoteNo:
		return VoteNo, nil
	case VoteMaybe:
		return VoteMaybe, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidVoteType, s)
}

// Counts maps a slot to the number of distinct participants available for it.
// Slots nobody selected are absent.
type Counts map[Key]int

// Max returns the highest count, or 0 for empty counts.
func (c Counts) Max() int {
	max := 0
	for _, n := range c {
		if n > max {
			max = n
		}
	}
	return max
}

// Aggregate counts, per slot, the participants that selected it. A key listed
// twice by the same participant is counted once.
func Aggregate(byParticipant map[string][]Key) Counts {
	counts := make(Counts)
	for _, keys := range byParticipant {
		seen := make(map[Key]struct{}, len(keys))
		for _, k := range keys {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			counts[k]++
		}
	}
	return counts
}

// Attendees maps each slot to the sorted ids of the participants that
// selected it.
func Attendees(byParticipant map[string][]Key) map[Key][]string {
	out := make(map[Key][]string)
	for id, keys := range byParticipant {
		seen := make(map[Key]struct{}, len(keys))
		for _, k := range keys {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out[k] = append(out[k], id)
		}
	}
	for k := range out {
		sort.Strings(out[k])
	}
	return out
}

// VoteRecord is one vote joined with the key of the slot it targets.
type VoteRecord struct {
	Key  Key
	Type VoteType
}

// Tally is the per-slot breakdown of votes.
type Tally struct {
	Yes   int `json:"yes"`
	No    int `json:"no"`
	Maybe int `json:"maybe"`
	Total int `json:"total"`
}

// Score ranks slots in the vote variant.
func (t Tally) Score() int {
	return t.Yes - t.No
}

// AggregateVotes tallies votes per slot. Records with an unknown type are
// ignored; callers validate with ParseVoteType at the boundary.
func AggregateVotes(records []VoteRecord) map[Key]Tally {
	out := make(map[Key]Tally)
	for _, r := range records {
		t := out[r.Key]
		switch r.Type {
		case VoteYes:
			t.Yes++
		case VoteNo:
			t.No++
		case VoteMaybe:
			t.Maybe++
		default:
			continue
		}
		t.Total++
		out[r.Key] = t
	}
	return out
}
