package availability

import (
	"fmt"
	"strconv"

	"meetmatch/internal/domain"
)

// SlotMinutes is the width of one cell of the grid.
const SlotMinutes = 30

const minutesPerDay = 24 * 60

// ParseClock converts "HH:MM" to minutes after midnight. "24:00" is accepted
// and means the end of the day.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTime, s)
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTime, s)
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTime, s)
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTime, s)
	}
	return h*60 + m, nil
}

// FormatClock is the inverse of ParseClock.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Cell is one half-hour of a day.
type Cell struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Label renders the cell as "09:00-09:30".
func (c Cell) Label() string {
	return c.Start + "-" + c.End
}

// Grid is the fixed half-hour grid shown for every day of an event.
type Grid struct {
	start int
	end   int
}

var (
	// DefaultGrid covers 07:00 to midnight (34 cells).
	DefaultGrid = Grid{start: 7 * 60, end: minutesPerDay}
	// CompactGrid covers 09:00 to 21:00 (24 cells).
	CompactGrid = Grid{start: 9 * 60, end: 21 * 60}
)

// NewGrid builds a grid from two HH:MM bounds aligned to SlotMinutes.
func NewGrid(start, end string) (Grid, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Grid{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Grid{}, err
	}
	if s%SlotMinutes != 0 || e%SlotMinutes != 0 {
		return Grid{}, fmt.Errorf("%w: grid bounds %s-%s", domain.ErrInvalidTime, start, end)
	}
	if s >= e {
		return Grid{}, fmt.Errorf("%w: grid bounds %s-%s", domain.ErrInvalidTimeWindow, start, end)
	}
	return Grid{start: s, end: e}, nil
}

func (g Grid) Start() string { return FormatClock(g.start) }
func (g Grid) End() string   { return FormatClock(g.end) }

// Len returns the number of cells per day.
func (g Grid) Len() int {
	return (g.end - g.start) / SlotMinutes
}

// Cells lists the cells of one day in time order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Len())
	for m := g.start; m < g.end; m += SlotMinutes {
		cells = append(cells, Cell{Start: FormatClock(m), End: FormatClock(m + SlotMinutes)})
	}
	return cells
}

// At returns the cell at position i.
func (g Grid) At(i int) Cell {
	m := g.start + i*SlotMinutes
	return Cell{Start: FormatClock(m), End: FormatClock(m + SlotMinutes)}
}

// Index returns the position of c on the grid. ok is false when c is not a
// grid cell (misaligned, out of bounds or not exactly SlotMinutes wide).
func (g Grid) Index(c Cell) (int, bool) {
	s, err := ParseClock(c.Start)
	if err != nil {
		return 0, false
	}
	e, err := ParseClock(c.End)
	if err != nil {
		return 0, false
	}
	if s%SlotMinutes != 0 || e != s+SlotMinutes || s < g.start || e > g.end {
		return 0, false
	}
	return (s - g.start) / SlotMinutes, true
}
