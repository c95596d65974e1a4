package availability

import (
	"fmt"
	"sort"

	"meetmatch/internal/domain"
)

// Template is a named quick-select pattern. A cell matches when
// Start <= cell.Start < End on one of the template's weekdays.
type Template struct {
	Name     string
	Start    string
	End      string
	Weekdays []string // nil means every day
}

var (
	workdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	weekend  = []string{"saturday", "sunday"}
)

var templates = map[string]Template{
	"morning":   {Name: "morning", Start: "09:00", End: "12:00"},
	"afternoon": {Name: "afternoon", Start: "13:00", End: "18:00"},
	"evening":   {Name: "evening", Start: "18:00", End: "21:00"},
	"working":   {Name: "working", Start: "09:00", End: "18:00", Weekdays: workdays},
	"lunch":     {Name: "lunch", Start: "12:00", End: "13:00"},
	"weekend":   {Name: "weekend", Start: "09:00", End: "21:00", Weekdays: weekend},
}

// LookupTemplate returns the template registered under name.
func LookupTemplate(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", domain.ErrUnknownTemplate, name)
	}
	return t, nil
}

// TemplateNames lists the registered template names alphabetically.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for n := range templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Matches reports whether the cell c of day d belongs to the template.
func (t Template) Matches(d Day, c Cell) bool {
	if t.Weekdays != nil && !contains(t.Weekdays, d.WeekdayKey) {
		return false
	}
	return t.Start <= c.Start && c.Start < t.End
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
