package availability

import (
	"errors"
	"reflect"
	"testing"

	"meetmatch/internal/domain"
)

func TestAggregate(t *testing.T) {
	a := k("2024-01-15", "09:00")
	b := k("2024-01-15", "09:30")
	counts := Aggregate(map[string][]Key{
		"alice": {a, b, a},
		"bob":   {a},
		"carol": nil,
	})
	want := Counts{a: 2, b: 1}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("got %v, want %v", counts, want)
	}
	if counts.Max() != 2 {
		t.Errorf("max = %d", counts.Max())
	}

	att := Attendees(map[string][]Key{"bob": {a}, "alice": {a, a}})
	if !reflect.DeepEqual(att[a], []string{"alice", "bob"}) {
		t.Errorf("attendees = %v", att[a])
	}

	if got := Aggregate(nil); len(got) != 0 {
		t.Errorf("expected empty counts, got %v", got)
	}
}

func TestParseVoteType(t *testing.T) {
	for in, want := range map[string]VoteType{"yes": VoteYes, "NO": VoteNo, " maybe ": VoteMaybe} {
		got, err := ParseVoteType(in)
		if err != nil || got != want {
			t.Errorf("ParseVoteType(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseVoteType("perhaps"); !errors.Is(err, domain.ErrInvalidVoteType) {
		t.Errorf("expected ErrInvalidVoteType, got %v", err)
	}
}

func TestAggregateVotesAndRankByScore(t *testing.T) {
	days, _ := ExpandDays("2024-01-15", "2024-01-16", EnglishWeekdays)
	a := k("2024-01-15", "09:00")
	b := k("2024-01-16", "09:00")
	c := k("2024-01-15", "10:00")

	tallies := AggregateVotes([]VoteRecord{
		{Key: a, Type: VoteYes}, {Key: a, Type: VoteNo},
		{Key: b, Type: VoteYes}, {Key: b, Type: VoteYes}, {Key: b, Type: VoteMaybe},
		{Key: c, Type: VoteYes}, {Key: c, Type: VoteType("bogus")},
	})
	if tallies[b] != (Tally{Yes: 2, Maybe: 1, Total: 3}) {
		t.Errorf("tally b = %+v", tallies[b])
	}
	if tallies[c].Total != 1 {
		t.Errorf("unknown vote types must be ignored: %+v", tallies[c])
	}

	ranked := RankByScore(tallies, 2, days)
	if len(ranked) != 2 || ranked[0].Key != b || ranked[1].Key != c {
		t.Errorf("unexpected ranking %+v", ranked)
	}
}

func TestBestSlots_MaxTie(t *testing.T) {
	a := k("2024-01-16", "09:00")
	b := k("2024-01-15", "10:00")
	c := k("2024-01-15", "09:00")
	best := BestSlots(Counts{a: 3, b: 3, c: 1})
	want := []RankedSlot{{Key: b, Count: 3}, {Key: a, Count: 3}}
	if !reflect.DeepEqual(best, want) {
		t.Errorf("got %+v, want %+v", best, want)
	}
	if got := BestSlots(Counts{}); len(got) != 0 {
		t.Errorf("expected empty, got %+v", got)
	}
}

func TestTopSlots(t *testing.T) {
	days, _ := ExpandDays("2024-01-15", "2024-01-16", EnglishWeekdays)
	a := k("2024-01-16", "09:00")
	b := k("2024-01-15", "10:00")
	c := k("2024-01-15", "09:00")
	outside := k("2024-01-10", "09:00")
	counts := Counts{a: 2, b: 2, c: 1, outside: 2}

	got := TopSlots(counts, 3, days)
	want := []RankedSlot{{Key: b, Count: 2}, {Key: a, Count: 2}, {Key: outside, Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if all := TopSlots(counts, 0, days); len(all) != 4 {
		t.Errorf("n=0 should return all, got %d", len(all))
	}
}

func TestBucketIntensity(t *testing.T) {
	tests := []struct {
		count, max int
		want       Intensity
	}{
		{10, 10, IntensityFull},
		{8, 10, IntensityVeryHigh},
		{6, 10, IntensityHigh},
		{4, 10, IntensityMedium},
		{2, 10, IntensityLow},
		{1, 10, IntensityMinimal},
		{0, 0, IntensityMinimal},
		{3, 0, IntensityMinimal},
	}
	for _, tt := range tests {
		if got := BucketIntensity(tt.count, tt.max); got != tt.want {
			t.Errorf("BucketIntensity(%d, %d) = %s, want %s", tt.count, tt.max, got, tt.want)
		}
	}
}

func TestGroupByDay(t *testing.T) {
	days, _ := ExpandDays("2024-01-15", "2024-01-16", EnglishWeekdays)
	counts := Counts{
		k("2024-01-16", "10:00"): 1,
		k("2024-01-16", "09:00"): 2,
		k("2024-01-15", "09:00"): 1,
		k("2024-01-20", "09:00"): 1,
	}
	groups := GroupByDay(counts, days)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	order := []string{groups[0].Day.Date, groups[1].Day.Date, groups[2].Day.Date}
	if !reflect.DeepEqual(order, []string{"2024-01-15", "2024-01-16", "2024-01-20"}) {
		t.Errorf("day order %v", order)
	}
	tue := groups[1]
	if tue.Slots[0].Key.Start != "09:00" || tue.Slots[0].Intensity != IntensityFull {
		t.Errorf("unexpected first tuesday slot %+v", tue.Slots[0])
	}
	if groups[2].Day.Label != "Saturday" {
		t.Errorf("unknown day should still be labelled, got %+v", groups[2].Day)
	}
}
