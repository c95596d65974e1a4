package availability

import "sort"

// Range is a contiguous run of cells within one day.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r Range) String() string {
	return r.Start + "-" + r.End
}

// Keys splits r back into half-hour keys on day. A range whose bounds do not
// parse yields nil.
func (r Range) Keys(day string) []Key {
	s, err := ParseClock(r.Start)
	if err != nil {
		return nil
	}
	e, err := ParseClock(r.End)
	if err != nil {
		return nil
	}
	var keys []Key
	for m := s; m+SlotMinutes <= e; m += SlotMinutes {
		keys = append(keys, Key{Day: day, Start: FormatClock(m), End: FormatClock(m + SlotMinutes)})
	}
	return keys
}

// Merge collapses the keys of one day into maximal contiguous ranges ordered
// by start. The day of each key is ignored.
func Merge(keys []Key) []Range {
	if len(keys) == 0 {
		return []Range{}
	}

	sorted := make([]Key, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	ranges := make([]Range, 0, len(sorted))
	cur := Range{Start: sorted[0].Start, End: sorted[0].End}
	for _, k := range sorted[1:] {
		if k.Start <= cur.End {
			if k.End > cur.End {
				cur.End = k.End
			}
			continue
		}
		ranges = append(ranges, cur)
		cur = Range{Start: k.Start, End: k.End}
	}
	return append(ranges, cur)
}

// MergeByDay groups keys per day and merges each group.
func MergeByDay(keys []Key) map[string][]Range {
	perDay := make(map[string][]Key)
	for _, k := range keys {
		perDay[k.Day] = append(perDay[k.Day], k)
	}
	out := make(map[string][]Range, len(perDay))
	for day, ks := range perDay {
		out[day] = Merge(ks)
	}
	return out
}
