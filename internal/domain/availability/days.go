package availability

import (
	"fmt"
	"time"

	"meetmatch/internal/domain"
)

// DateLayout is the ISO calendar date format used for event ranges and keys.
const DateLayout = "2006-01-02"

// WeekdayName is the localized label pair of one weekday.
type WeekdayName struct {
	Label string
	Short string
}

// WeekdayTable holds one WeekdayName per weekday, indexed by time.Weekday
// (Sunday first).
type WeekdayTable [7]WeekdayName

// EnglishWeekdays is the fallback table.
var EnglishWeekdays = WeekdayTable{
	{Label: "Sunday", Short: "Sun"},
	{Label: "Monday", Short: "Mon"},
	{Label: "Tuesday", Short: "Tue"},
	{Label: "Wednesday", Short: "Wed"},
	{Label: "Thursday", Short: "Thu"},
	{Label: "Friday", Short: "Fri"},
	{Label: "Saturday", Short: "Sat"},
}

var weekdayKeys = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// WeekdayKey returns the lowercase English key of w ("monday").
func WeekdayKey(w time.Weekday) string {
	return weekdayKeys[w]
}

// WeekdayKeys lists the keys in time.Weekday order.
func WeekdayKeys() []string {
	keys := make([]string, len(weekdayKeys))
	copy(keys, weekdayKeys[:])
	return keys
}

// Day is one calendar day of an event.
type Day struct {
	Date        string `json:"date"`
	WeekdayKey  string `json:"weekdayKey"`
	Label       string `json:"label"`
	Short       string `json:"short"`
	DisplayDate string `json:"displayDate"`
}

// Weekend reports whether d falls on a Saturday or Sunday.
func (d Day) Weekend() bool {
	return d.WeekdayKey == "saturday" || d.WeekdayKey == "sunday"
}

// ParseDate parses an ISO date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return t, nil
}

// ValidateRange checks that both dates parse and start is not after end.
func ValidateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s > %s", domain.ErrInvalidRange, startDate, endDate)
	}
	return start, end, nil
}

// ExpandDays lists every calendar day from startDate to endDate inclusive,
// labelled from table.
func ExpandDays(startDate, endDate string, table WeekdayTable) ([]Day, error) {
	start, end, err := ValidateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	n := int(end.Sub(start).Hours()/24) + 1
	days := make([]Day, 0, n)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		days = append(days, Day{
			Date:        d.Format(DateLayout),
			WeekdayKey:  WeekdayKey(wd),
			Label:       table[wd].Label,
			Short:       table[wd].Short,
			DisplayDate: fmt.Sprintf("%d/%d", int(d.Month()), d.Day()),
		})
	}
	return days, nil
}
