package availability

import (
	"fmt"

	"meetmatch/internal/domain"
)

// Board is the day × cell matrix of one event.
type Board struct {
	days     []Day
	dayIndex map[string]int
	grid     Grid
}

func NewBoard(days []Day, grid Grid) *Board {
	idx := make(map[string]int, len(days))
	for i, d := range days {
		idx[d.Date] = i
	}
	return &Board{days: days, dayIndex: idx, grid: grid}
}

func (b *Board) Days() []Day { return b.days }
func (b *Board) Grid() Grid  { return b.grid }

// Position returns the day and cell indexes of k.
func (b *Board) Position(k Key) (day, cell int, ok bool) {
	day, ok = b.dayIndex[k.Day]
	if !ok {
		return 0, 0, false
	}
	cell, ok = b.grid.Index(k.Cell())
	return day, cell, ok
}

// KeyAt returns the key at the given indexes. Indexes must be in range.
func (b *Board) KeyAt(day, cell int) Key {
	c := b.grid.At(cell)
	return Key{Day: b.days[day].Date, Start: c.Start, End: c.End}
}

// Validate returns ErrSlotOutOfRange when k is not a cell of the board.
func (b *Board) Validate(k Key) error {
	if _, _, ok := b.Position(k); !ok {
		return fmt.Errorf("%w: %s", domain.ErrSlotOutOfRange, k)
	}
	return nil
}

// DayKeys lists every cell of date in time order, or nil for an unknown date.
func (b *Board) DayKeys(date string) []Key {
	i, ok := b.dayIndex[date]
	if !ok {
		return nil
	}
	keys := make([]Key, 0, b.grid.Len())
	for c := 0; c < b.grid.Len(); c++ {
		keys = append(keys, b.KeyAt(i, c))
	}
	return keys
}
