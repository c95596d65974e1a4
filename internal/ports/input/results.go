package input

import (
	"context"

	"meetmatch/internal/domain/availability"
)

type ResultsUseCase interface {
	// Results aggregates every answer of the event. topN <= 0 selects the
	// configured default.
	Results(ctx context.Context, eventID, locale string, topN int) (*Results, error)
}

// Results is the aggregated view of an event.
type Results struct {
	EventID           string                    `json:"eventId"`
	EventName         string                    `json:"eventName"`
	Days              []availability.Day        `json:"days"`
	TotalParticipants int                       `json:"totalParticipants"`
	Participants      []ParticipantSummary      `json:"participants"`
	Counts            availability.Counts       `json:"counts"`
	Best              []availability.RankedSlot `json:"best"`
	Top               []availability.RankedSlot `json:"top"`
	Heatmap           []HeatmapDay              `json:"heatmap"`
	Votes             VoteResults               `json:"votes"`
	Skipped           int                       `json:"skipped"`
}

type ParticipantSummary struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	SlotCount int                       `json:"slotCount"`
	Days      []availability.DaySummary `json:"days"`
	Lines     []string                  `json:"lines"`
}

type HeatmapDay struct {
	Day   availability.Day `json:"day"`
	Slots []HeatmapSlot    `json:"slots"`
}

// HeatmapSlot is a heatmap cell with the names of who is available.
type HeatmapSlot struct {
	availability.HeatCell
	Names []string `json:"names"`
}

type VoteResults struct {
	Tallies map[availability.Key]availability.Tally `json:"tallies"`
	Ranked  []availability.ScoredSlot                `json:"ranked"`
}
