package application

import (
	"context"
	"sort"
	"strings"

	"meetmatch/internal/domain"
	"meetmatch/internal/domain/availability"
	"meetmatch/internal/domain/entities"
)

// --- in-memory test doubles ---

type memEventRepo struct {
	events map[string]entities.Event
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: make(map[string]entities.Event)}
}

func (r *memEventRepo) Create(_ context.Context, e *entities.Event) error {
	r.events[e.ID] = *e
	return nil
}

func (r *memEventRepo) FindByID(_ context.Context, id string) (*entities.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (r *memEventRepo) FindByShareCode(_ context.Context, code string) (*entities.Event, error) {
	for _, e := range r.events {
		if e.ShareCode == code {
			return &e, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (r *memEventRepo) List(_ context.Context, query string) ([]entities.Event, error) {
	q := strings.ToLower(query)
	var out []entities.Event
	for _, e := range r.events {
		if q == "" || strings.Contains(strings.ToLower(e.Name+" "+e.Description), q) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memEventRepo) Update(_ context.Context, e *entities.Event) error {
	if _, ok := r.events[e.ID]; !ok {
		return domain.ErrEventNotFound
	}
	r.events[e.ID] = *e
	return nil
}

func (r *memEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

type memParticipantRepo struct {
	participants []entities.Participant
}

func (r *memParticipantRepo) Create(_ context.Context, p *entities.Participant) error {
	r.participants = append(r.participants, *p)
	return nil
}

func (r *memParticipantRepo) FindByID(_ context.Context, id string) (*entities.Participant, error) {
	for _, p := range r.participants {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrParticipantNotFound
}

func (r *memParticipantRepo) FindByEventID(_ context.Context, eventID string) ([]entities.Participant, error) {
	var out []entities.Participant
	for _, p := range r.participants {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memParticipantRepo) FindByEventIDAndName(_ context.Context, eventID, name string) ([]entities.Participant, error) {
	var out []entities.Participant
	for _, p := range r.participants {
		if p.EventID == eventID && strings.EqualFold(p.Name, name) {
			out = append(out, p)
		}
	}
	return out, nil
}

type memSlotRepo struct {
	slots []entities.TimeSlot
	// onDelete mirrors the votes cascade.
	onDelete func(slotID string)
}

// ReplaceForParticipant keeps rows whose cell is still selected, drops the
// rest and appends the missing cells.
func (r *memSlotRepo) ReplaceForParticipant(_ context.Context, eventID, participantID string, slots []entities.TimeSlot) error {
	wanted := make(map[availability.Key]entities.TimeSlot, len(slots))
	for _, s := range slots {
		wanted[s.Key()] = s
	}
	kept := make([]entities.TimeSlot, 0, len(r.slots)+len(slots))
	for _, s := range r.slots {
		if s.EventID != eventID || s.ParticipantID != participantID {
			kept = append(kept, s)
			continue
		}
		if _, ok := wanted[s.Key()]; ok {
			delete(wanted, s.Key())
			kept = append(kept, s)
			continue
		}
		if r.onDelete != nil {
			r.onDelete(s.ID)
		}
	}
	for _, s := range slots {
		if _, ok := wanted[s.Key()]; ok {
			delete(wanted, s.Key())
			kept = append(kept, s)
		}
	}
	r.slots = kept
	return nil
}

func (r *memSlotRepo) FindByID(_ context.Context, id string) (*entities.TimeSlot, error) {
	for _, s := range r.slots {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, domain.ErrTimeSlotNotFound
}

func (r *memSlotRepo) FindByEventID(_ context.Context, eventID string) ([]entities.TimeSlot, error) {
	var out []entities.TimeSlot
	for _, s := range r.slots {
		if s.EventID == eventID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSlotRepo) FindByParticipantID(_ context.Context, eventID, participantID string) ([]entities.TimeSlot, error) {
	var out []entities.TimeSlot
	for _, s := range r.slots {
		if s.EventID == eventID && s.ParticipantID == participantID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memVoteRepo struct {
	votes []entities.Vote
	slots *memSlotRepo
}

func (r *memVoteRepo) Upsert(_ context.Context, v *entities.Vote) error {
	for i, existing := range r.votes {
		if existing.ParticipantID == v.ParticipantID && existing.TimeSlotID == v.TimeSlotID {
			v.ID = existing.ID
			r.votes[i] = *v
			return nil
		}
	}
	r.votes = append(r.votes, *v)
	return nil
}

func (r *memVoteRepo) deleteBySlot(slotID string) {
	kept := r.votes[:0]
	for _, v := range r.votes {
		if v.TimeSlotID != slotID {
			kept = append(kept, v)
		}
	}
	r.votes = kept
}

func (r *memVoteRepo) FindByEventID(_ context.Context, eventID string) ([]entities.Vote, error) {
	var out []entities.Vote
	for _, v := range r.votes {
		if v.EventID == eventID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memVoteRepo) ListRecords(ctx context.Context, eventID string) ([]entities.VoteRecord, error) {
	var out []entities.VoteRecord
	for _, v := range r.votes {
		if v.EventID != eventID {
			continue
		}
		s, err := r.slots.FindByID(ctx, v.TimeSlotID)
		if err != nil {
			continue
		}
		out = append(out, entities.VoteRecord{VoteType: string(v.VoteType), Day: s.Day, TimeStart: s.TimeStart, TimeEnd: s.TimeEnd})
	}
	return out, nil
}

type memCache struct {
	entries     map[string][]byte
	invalidated []string
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, eventID, variant string) ([]byte, bool, error) {
	data, ok := c.entries[eventID+"/"+variant]
	return data, ok, nil
}

func (c *memCache) Set(_ context.Context, eventID, variant string, data []byte) error {
	c.entries[eventID+"/"+variant] = data
	return nil
}

func (c *memCache) Invalidate(_ context.Context, eventID string) error {
	c.invalidated = append(c.invalidated, eventID)
	for k := range c.entries {
		if strings.HasPrefix(k, eventID+"/") {
			delete(c.entries, k)
		}
	}
	return nil
}

type stubTranslator struct{}

func (stubTranslator) T(_, key string, _ map[string]any) string { return key }

func (stubTranslator) Locale(...string) string { return "en" }

func (stubTranslator) Weekdays(string) availability.WeekdayTable { return availability.EnglishWeekdays }
