package availability

import (
	"fmt"
	"sort"

	"meetmatch/internal/domain"
)

// Mode selects how pointer input edits a Selection.
type Mode int

const (
	ModeClick Mode = iota
	ModeDrag
)

// Intent is fixed when a drag begins: dragging from an unselected cell
// selects, dragging from a selected cell deselects.
type Intent int

const (
	IntentSelect Intent = iota
	IntentDeselect
)

type position struct {
	day  int
	cell int
}

// Selection is the set of cells a participant has marked during one editing
// session. It is not safe for concurrent use.
type Selection struct {
	board    *Board
	selected map[Key]struct{}
	mode     Mode

	dragging bool
	anchor   position
	intent   Intent
	base     map[Key]struct{}
}

func NewSelection(board *Board, mode Mode) *Selection {
	return &Selection{
		board:    board,
		selected: make(map[Key]struct{}),
		mode:     mode,
	}
}

func (s *Selection) Mode() Mode { return s.mode }

// SetMode switches the input mode and abandons any drag in progress.
func (s *Selection) SetMode(m Mode) {
	s.EndDrag()
	s.mode = m
}

// Toggle flips a single cell. Only valid in click mode.
func (s *Selection) Toggle(k Key) error {
	if s.mode != ModeClick {
		return fmt.Errorf("%w: toggle requires click mode", domain.ErrSelectionMode)
	}
	if err := s.board.Validate(k); err != nil {
		return err
	}
	if _, ok := s.selected[k]; ok {
		delete(s.selected, k)
	} else {
		s.selected[k] = struct{}{}
	}
	return nil
}

// BeginDrag anchors a drag at k and applies it to that single cell.
func (s *Selection) BeginDrag(k Key) error {
	if s.mode != ModeDrag {
		return fmt.Errorf("%w: drag requires drag mode", domain.ErrSelectionMode)
	}
	day, cell, ok := s.board.Position(k)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSlotOutOfRange, k)
	}

	s.intent = IntentSelect
	if _, sel := s.selected[k]; sel {
		s.intent = IntentDeselect
	}
	s.anchor = position{day: day, cell: cell}
	s.base = make(map[Key]struct{}, len(s.selected))
	for key := range s.selected {
		s.base[key] = struct{}{}
	}
	s.dragging = true
	s.applyRect(position{day: day, cell: cell})
	return nil
}

// ContinueDrag extends the drag to the rectangle between the anchor and k.
// The rectangle is recomputed from the state at BeginDrag, so repeated or
// backtracking moves converge on the same result.
func (s *Selection) ContinueDrag(k Key) error {
	if !s.dragging {
		return fmt.Errorf("%w: no drag in progress", domain.ErrSelectionMode)
	}
	day, cell, ok := s.board.Position(k)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSlotOutOfRange, k)
	}
	s.applyRect(position{day: day, cell: cell})
	return nil
}

// EndDrag commits the current drag. It is a no-op when no drag is active.
func (s *Selection) EndDrag() {
	s.dragging = false
	s.base = nil
}

func (s *Selection) Dragging() bool { return s.dragging }

// Intent reports the intent of the active drag.
func (s *Selection) Intent() Intent { return s.intent }

func (s *Selection) applyRect(to position) {
	s.selected = make(map[Key]struct{}, len(s.base))
	for k := range s.base {
		s.selected[k] = struct{}{}
	}

	d0, d1 := order(s.anchor.day, to.day)
	c0, c1 := order(s.anchor.cell, to.cell)
	for d := d0; d <= d1; d++ {
		for c := c0; c <= c1; c++ {
			k := s.board.KeyAt(d, c)
			if s.intent == IntentSelect {
				s.selected[k] = struct{}{}
			} else {
				delete(s.selected, k)
			}
		}
	}
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// BulkApply selects every board cell for which match returns true. With
// replace the previous selection is discarded first, otherwise the matches
// are unioned into it.
func (s *Selection) BulkApply(match func(Day, Cell) bool, replace bool) {
	s.EndDrag()
	if replace {
		s.selected = make(map[Key]struct{})
	}
	cells := s.board.grid.Cells()
	for _, d := range s.board.days {
		for _, c := range cells {
			if match(d, c) {
				s.selected[Key{Day: d.Date, Start: c.Start, End: c.End}] = struct{}{}
			}
		}
	}
}

// ApplyTemplate runs BulkApply with the named template.
func (s *Selection) ApplyTemplate(name string, replace bool) error {
	t, err := LookupTemplate(name)
	if err != nil {
		return err
	}
	s.BulkApply(t.Matches, replace)
	return nil
}

// Add selects the given keys, stopping at the first key that is not on the
// board.
func (s *Selection) Add(keys ...Key) error {
	for _, k := range keys {
		if err := s.board.Validate(k); err != nil {
			return err
		}
		s.selected[k] = struct{}{}
	}
	return nil
}

func (s *Selection) SelectDay(date string) error {
	keys := s.board.DayKeys(date)
	if keys == nil {
		return fmt.Errorf("%w: day %s", domain.ErrSlotOutOfRange, date)
	}
	for _, k := range keys {
		s.selected[k] = struct{}{}
	}
	return nil
}

func (s *Selection) ClearDay(date string) error {
	keys := s.board.DayKeys(date)
	if keys == nil {
		return fmt.Errorf("%w: day %s", domain.ErrSlotOutOfRange, date)
	}
	for _, k := range keys {
		delete(s.selected, k)
	}
	return nil
}

func (s *Selection) Clear() {
	s.EndDrag()
	s.selected = make(map[Key]struct{})
}

func (s *Selection) Has(k Key) bool {
	_, ok := s.selected[k]
	return ok
}

func (s *Selection) Len() int { return len(s.selected) }

// Keys returns the selected keys ordered by day then start.
func (s *Selection) Keys() []Key {
	keys := make([]Key, 0, len(s.selected))
	for k := range s.selected {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
