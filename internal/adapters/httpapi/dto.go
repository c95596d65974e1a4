package httpapi

import (
	"time"

	"meetmatch/internal/domain/availability"
	"meetmatch/internal/domain/entities"
)

type eventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

func (r eventRequest) toEntity() *entities.Event {
	return &entities.Event{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
}

type eventResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	StartTime   string    `json:"startTime,omitempty"`
	EndTime     string    `json:"endTime,omitempty"`
	ShareCode   string    `json:"shareCode"`
	ShareLink   string    `json:"shareLink"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type participantRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

type participantResponse struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	EditToken string    `json:"editToken,omitempty"`
	JoinedAt  time.Time `json:"joinedAt"`
}

func toParticipantResponse(p entities.Participant, withToken bool) participantResponse {
	resp := participantResponse{
		ID:       p.ID,
		EventID:  p.EventID,
		Name:     p.Name,
		Email:    p.Email,
		JoinedAt: p.JoinedAt,
	}
	if withToken {
		resp.EditToken = p.EditToken
	}
	return resp
}

type slotDTO struct {
	Day       string `json:"day"`
	TimeStart string `json:"timeStart"`
	TimeEnd   string `json:"timeEnd"`
}

func toSlotDTOs(keys []availability.Key) []slotDTO {
	out := make([]slotDTO, len(keys))
	for i, k := range keys {
		out[i] = slotDTO{Day: k.Day, TimeStart: k.Start, TimeEnd: k.End}
	}
	return out
}

// submitRequest accepts slots as objects under timeSlots (or its alias
// slots), as encoded keys, or any mix. An empty submission must set Clear.
type submitRequest struct {
	ParticipantID string    `json:"participantId" binding:"required"`
	EditToken     string    `json:"editToken"`
	TimeSlots     []slotDTO `json:"timeSlots"`
	Slots         []slotDTO `json:"slots"`
	Keys          []string  `json:"keys"`
	Template      string    `json:"template"`
	Clear         bool      `json:"clear"`
}

// empty reports whether the request selects nothing at all.
func (r submitRequest) empty() bool {
	return len(r.TimeSlots) == 0 && len(r.Slots) == 0 && len(r.Keys) == 0 && r.Template == ""
}

// keys decodes every slot of the request. Encoded keys may use the legacy
// "day-start-end" form.
func (r submitRequest) keys() ([]availability.Key, error) {
	out := make([]availability.Key, 0, len(r.TimeSlots)+len(r.Slots)+len(r.Keys))
	for _, s := range r.TimeSlots {
		out = append(out, availability.Key{Day: s.Day, Start: s.TimeStart, End: s.TimeEnd})
	}
	for _, s := range r.Slots {
		out = append(out, availability.Key{Day: s.Day, Start: s.TimeStart, End: s.TimeEnd})
	}
	for _, raw := range r.Keys {
		k, err := availability.Decode(raw)
		if err != nil {
			if legacy, lerr := availability.DecodeLegacy(raw); lerr == nil {
				k, err = legacy, nil
			}
		}
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

type selectionResponse struct {
	ParticipantID string    `json:"participantId"`
	Slots         []slotDTO `json:"slots"`
	Summary       []string  `json:"summary"`
}

type timeSlotResponse struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participantId"`
	Day           string    `json:"day"`
	TimeStart     string    `json:"timeStart"`
	TimeEnd       string    `json:"timeEnd"`
	CreatedAt     time.Time `json:"createdAt"`
}

type voteRequest struct {
	ParticipantID string `json:"participantId" binding:"required"`
	EditToken     string `json:"editToken"`
	TimeSlotID    string `json:"timeSlotId" binding:"required"`
	VoteType      string `json:"voteType" binding:"required"`
}

type voteResponse struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participantId"`
	TimeSlotID    string    `json:"timeSlotId"`
	VoteType      string    `json:"voteType"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toVoteResponse(v entities.Vote) voteResponse {
	return voteResponse{
		ID:            v.ID,
		ParticipantID: v.ParticipantID,
		TimeSlotID:    v.TimeSlotID,
		VoteType:      string(v.VoteType),
		CreatedAt:     v.CreatedAt,
	}
}

type boardResponse struct {
	Event     eventResponse       `json:"event"`
	Days      []availability.Day  `json:"days"`
	Cells     []availability.Cell `json:"cells"`
	Templates []string            `json:"templates"`
}
