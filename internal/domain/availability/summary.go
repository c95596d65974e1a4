package availability

import (
	"sort"
	"strings"
)

// DaySummary is the merged availability of one participant on one day.
type DaySummary struct {
	Day    Day     `json:"day"`
	Ranges []Range `json:"ranges"`
}

// String renders the summary as "Monday 09:00-11:00, 14:00-15:00".
func (s DaySummary) String() string {
	label := s.Day.Label
	if label == "" {
		label = s.Day.Date
	}
	parts := make([]string, len(s.Ranges))
	for i, r := range s.Ranges {
		parts[i] = r.String()
	}
	return label + " " + strings.Join(parts, ", ")
}

// Summarize merges keys per day and orders the days like the expanded range.
func Summarize(keys []Key, days []Day) []DaySummary {
	seq := newSequence(days)
	merged := MergeByDay(keys)

	dates := make([]string, 0, len(merged))
	for d := range merged {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return seq.less(Key{Day: dates[i]}, Key{Day: dates[j]})
	})

	out := make([]DaySummary, 0, len(dates))
	for _, date := range dates {
		var day Day
		if i, ok := seq[date]; ok {
			day = days[i]
		} else {
			day = describe(date)
		}
		out = append(out, DaySummary{Day: day, Ranges: merged[date]})
	}
	return out
}

// SummaryLines renders each day summary on its own line.
func SummaryLines(summaries []DaySummary) []string {
	lines := make([]string, len(summaries))
	for i, s := range summaries {
		lines[i] = s.String()
	}
	return lines
}
