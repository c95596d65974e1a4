package availability

import (
	"sort"
	"time"
)

// Intensity is the heatmap bucket of a slot.
type Intensity string

const (
	IntensityFull     Intensity = "full"
	IntensityVeryHigh Intensity = "very_high"
	IntensityHigh     Intensity = "high"
	IntensityMedium   Intensity = "medium"
	IntensityLow      Intensity = "low"
	IntensityMinimal  Intensity = "minimal"
)

// BucketIntensity places count/max into one of six buckets.
func BucketIntensity(count, max int) Intensity {
	if max <= 0 || count <= 0 {
		return IntensityMinimal
	}
	if count >= max {
		return IntensityFull
	}
	ratio := float64(count) / float64(max)
	switch {
	case ratio >= 0.8:
		return IntensityVeryHigh
	case ratio >= 0.6:
		return IntensityHigh
	case ratio >= 0.4:
		return IntensityMedium
	case ratio >= 0.2:
		return IntensityLow
	}
	return IntensityMinimal
}

// RankedSlot is a slot with its availability count.
type RankedSlot struct {
	Key   Key `json:"key"`
	Count int `json:"count"`
}

// ScoredSlot is a slot with its vote tally.
type ScoredSlot struct {
	Key Key `json:"key"`
	Tally
	Score int `json:"score"`
}

// sequence orders days by their position in the expanded event range. Days
// outside the range sort after it, chronologically.
type sequence map[string]int

func newSequence(days []Day) sequence {
	seq := make(sequence, len(days))
	for i, d := range days {
		seq[d.Date] = i
	}
	return seq
}

func (s sequence) less(a, b Key) bool {
	ia, oka := s[a.Day]
	ib, okb := s[b.Day]
	switch {
	case oka && okb && ia != ib:
		return ia < ib
	case oka != okb:
		return oka
	case a.Day != b.Day:
		return a.Day < b.Day
	}
	return a.Start < b.Start
}

// BestSlots returns every slot tied at the highest count, ordered by day then
// start. It is empty when nobody selected anything.
func BestSlots(counts Counts) []RankedSlot {
	max := counts.Max()
	if max == 0 {
		return []RankedSlot{}
	}
	best := make([]RankedSlot, 0)
	for k, n := range counts {
		if n == max {
			best = append(best, RankedSlot{Key: k, Count: n})
		}
	}
	sort.Slice(best, func(i, j int) bool { return best[i].Key.Less(best[j].Key) })
	return best
}

// TopSlots returns up to n slots by descending count, ties broken by the day
// sequence and then start time. n <= 0 returns every slot.
func TopSlots(counts Counts, n int, days []Day) []RankedSlot {
	seq := newSequence(days)
	ranked := make([]RankedSlot, 0, len(counts))
	for k, c := range counts {
		if c > 0 {
			ranked = append(ranked, RankedSlot{Key: k, Count: c})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return seq.less(ranked[i].Key, ranked[j].Key)
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// RankByScore orders voted slots by yes minus no, with the same tie-break as
// TopSlots. n <= 0 returns every slot.
func RankByScore(tallies map[Key]Tally, n int, days []Day) []ScoredSlot {
	seq := newSequence(days)
	ranked := make([]ScoredSlot, 0, len(tallies))
	for k, t := range tallies {
		ranked = append(ranked, ScoredSlot{Key: k, Tally: t, Score: t.Score()})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return seq.less(ranked[i].Key, ranked[j].Key)
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// HeatCell is one non-empty cell of the heatmap.
type HeatCell struct {
	Key       Key       `json:"key"`
	Count     int       `json:"count"`
	Intensity Intensity `json:"intensity"`
}

// DayGroup holds the heatmap cells of one day.
type DayGroup struct {
	Day   Day        `json:"day"`
	Slots []HeatCell `json:"slots"`
}

// GroupByDay arranges counts into per-day heatmap rows. Days follow the
// expanded order and slots are sorted by start. Only days with at least one
// count are returned.
func GroupByDay(counts Counts, days []Day) []DayGroup {
	max := counts.Max()
	seq := newSequence(days)

	perDay := make(map[string][]HeatCell)
	for k, c := range counts {
		if c <= 0 {
			continue
		}
		perDay[k.Day] = append(perDay[k.Day], HeatCell{Key: k, Count: c, Intensity: BucketIntensity(c, max)})
	}

	dates := make([]string, 0, len(perDay))
	for d := range perDay {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return seq.less(Key{Day: dates[i]}, Key{Day: dates[j]})
	})

	groups := make([]DayGroup, 0, len(dates))
	for _, date := range dates {
		cells := perDay[date]
		sort.Slice(cells, func(i, j int) bool { return cells[i].Key.Start < cells[j].Key.Start })
		var day Day
		if i, ok := seq[date]; ok {
			day = days[i]
		} else {
			day = describe(date)
		}
		groups = append(groups, DayGroup{Day: day, Slots: cells})
	}
	return groups
}

// describe labels a date that is not part of the expanded range.
func describe(date string) Day {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return Day{Date: date}
	}
	wd := t.Weekday()
	return Day{
		Date:        date,
		WeekdayKey:  WeekdayKey(wd),
		Label:       EnglishWeekdays[wd].Label,
		Short:       EnglishWeekdays[wd].Short,
		DisplayDate: t.Format("1/2"),
	}
}
