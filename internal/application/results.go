package application

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"meetmatch/internal/domain/availability"
	"meetmatch/internal/domain/entities"
	"meetmatch/internal/ports/input"
	"meetmatch/internal/ports/output"
)

var _ input.ResultsUseCase = (*ResultsService)(nil)

type ResultsService struct {
	eventRepo       output.EventRepository
	participantRepo output.ParticipantRepository
	slotRepo        output.TimeSlotRepository
	voteRepo        output.VoteRepository
	cache           output.ResultsCache
	translator      output.T
	topN            int
	logger          *zap.Logger
}

func NewResultsService(
	eventRepo output.EventRepository,
	participantRepo output.ParticipantRepository,
	slotRepo output.TimeSlotRepository,
	voteRepo output.VoteRepository,
	cache output.ResultsCache,
	translator output.T,
	topN int,
	logger *zap.Logger,
) *ResultsService {
	return &ResultsService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		slotRepo:        slotRepo,
		voteRepo:        voteRepo,
		cache:           cache,
		translator:      translator,
		topN:            topN,
		logger:          logger,
	}
}

func (s *ResultsService) Results(ctx context.Context, eventID, locale string, topN int) (*input.Results, error) {
	if topN <= 0 {
		topN = s.topN
	}
	variant := fmt.Sprintf("%s:%d", locale, topN)
	if cached, ok := s.cached(ctx, eventID, variant); ok {
		return cached, nil
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	participants, err := s.participantRepo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	slots, err := s.slotRepo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	records, err := s.voteRepo.ListRecords(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	days, err := availability.ExpandDays(event.StartDate, event.EndDate, s.translator.Weekdays(locale))
	if err != nil {
		return nil, err
	}

	byParticipant, skipped := s.decodeSlots(eventID, slots)
	voteRecords, skippedVotes := s.decodeVotes(eventID, records)
	skipped += skippedVotes

	counts := availability.Aggregate(byParticipant)
	tallies := availability.AggregateVotes(voteRecords)

	res := &input.Results{
		EventID:           event.ID,
		EventName:         event.Name,
		Days:              days,
		TotalParticipants: len(participants),
		Participants:      summarizeParticipants(participants, byParticipant, days),
		Counts:            counts,
		Best:              availability.BestSlots(counts),
		Top:               availability.TopSlots(counts, topN, days),
		Heatmap:           heatmap(counts, days, byParticipant, participants),
		Votes: input.VoteResults{
			Tallies: tallies,
			Ranked:  availability.RankByScore(tallies, topN, days),
		},
		Skipped: skipped,
	}
	s.store(ctx, eventID, variant, res)
	return res, nil
}

// decodeSlots groups valid rows per participant. Rows that do not form a
// grid cell are counted and logged.
func (s *ResultsService) decodeSlots(eventID string, slots []entities.TimeSlot) (map[string][]availability.Key, int) {
	out := make(map[string][]availability.Key)
	skipped := 0
	for _, ts := range slots {
		k := ts.Key()
		if err := k.Validate(); err != nil {
			skipped++
			s.logger.Warn("Skipping malformed time slot",
				zap.String("event_id", eventID),
				zap.String("time_slot_id", ts.ID),
				zap.Error(err))
			continue
		}
		out[ts.ParticipantID] = append(out[ts.ParticipantID], k)
	}
	return out, skipped
}

func (s *ResultsService) decodeVotes(eventID string, records []entities.VoteRecord) ([]availability.VoteRecord, int) {
	out := make([]availability.VoteRecord, 0, len(records))
	skipped := 0
	for _, r := range records {
		k := availability.Key{Day: r.Day, Start: r.TimeStart, End: r.TimeEnd}
		err := k.Validate()
		var vt availability.VoteType
		if err == nil {
			vt, err = availability.ParseVoteType(r.VoteType)
		}
		if err != nil {
			skipped++
			s.logger.Warn("Skipping malformed vote",
				zap.String("event_id", eventID),
				zap.Error(err))
			continue
		}
		out = append(out, availability.VoteRecord{Key: k, Type: vt})
	}
	return out, skipped
}

func summarizeParticipants(participants []entities.Participant, byParticipant map[string][]availability.Key, days []availability.Day) []input.ParticipantSummary {
	out := make([]input.ParticipantSummary, 0, len(participants))
	for _, p := range participants {
		keys := dedupe(byParticipant[p.ID])
		summary := availability.Summarize(keys, days)
		out = append(out, input.ParticipantSummary{
			ID:        p.ID,
			Name:      p.Name,
			SlotCount: len(keys),
			Days:      summary,
			Lines:     availability.SummaryLines(summary),
		})
	}
	return out
}

func heatmap(counts availability.Counts, days []availability.Day, byParticipant map[string][]availability.Key, participants []entities.Participant) []input.HeatmapDay {
	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.Name
	}
	attendees := availability.Attendees(byParticipant)

	groups := availability.GroupByDay(counts, days)
	out := make([]input.HeatmapDay, 0, len(groups))
	for _, g := range groups {
		row := input.HeatmapDay{Day: g.Day, Slots: make([]input.HeatmapSlot, 0, len(g.Slots))}
		for _, cell := range g.Slots {
			ids := attendees[cell.Key]
			who := make([]string, 0, len(ids))
			for _, id := range ids {
				if n, ok := names[id]; ok {
					who = append(who, n)
				}
			}
			row.Slots = append(row.Slots, input.HeatmapSlot{HeatCell: cell, Names: who})
		}
		out = append(out, row)
	}
	return out
}

func dedupe(keys []availability.Key) []availability.Key {
	seen := make(map[availability.Key]struct{}, len(keys))
	out := make([]availability.Key, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func (s *ResultsService) cached(ctx context.Context, eventID, variant string) (*input.Results, bool) {
	data, ok, err := s.cache.Get(ctx, eventID, variant)
	if err != nil {
		s.logger.Warn("Results cache read failed", zap.String("event_id", eventID), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var res input.Results
	if err := json.Unmarshal(data, &res); err != nil {
		s.logger.Warn("Discarding unreadable cached results", zap.String("event_id", eventID), zap.Error(err))
		return nil, false
	}
	return &res, true
}

func (s *ResultsService) store(ctx context.Context, eventID, variant string, res *input.Results) {
	data, err := json.Marshal(res)
	if err != nil {
		s.logger.Warn("Failed to encode results", zap.String("event_id", eventID), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, eventID, variant, data); err != nil {
		s.logger.Warn("Results cache write failed", zap.String("event_id", eventID), zap.Error(err))
	}
}
