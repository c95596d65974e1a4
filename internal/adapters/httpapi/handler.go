package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meetmatch/internal/domain/availability"
	"meetmatch/internal/domain/entities"
	"meetmatch/internal/ports/input"
	"meetmatch/internal/ports/output"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services groups the use cases served over HTTP.
type Services struct {
	Events       input.EventUseCase
	Participants input.ParticipantUseCase
	Availability input.AvailabilityUseCase
	Votes        input.VoteUseCase
	Results      input.ResultsUseCase
}

type Handler struct {
	services   Services
	translator output.T
	health     Pinger
	shareLink  func(code string) string
	logger     *zap.Logger
}

func NewHandler(services Services, translator output.T, health Pinger, shareLink func(string) string, logger *zap.Logger) *Handler {
	return &Handler{
		services:   services,
		translator: translator,
		health:     health,
		shareLink:  shareLink,
		logger:     logger,
	}
}

func (h *Handler) locale(c *gin.Context) string {
	return h.translator.Locale(c.Query("locale"), c.GetHeader("Accept-Language"))
}

// editToken reads the token from the body, falling back to the X-Edit-Token
// header.
func editToken(c *gin.Context, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	return c.GetHeader("X-Edit-Token")
}

func (h *Handler) toEventResponse(e *entities.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		ShareCode:   e.ShareCode,
		ShareLink:   h.shareLink(e.ShareCode),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (h *Handler) Health(c *gin.Context) {
	if h.health != nil {
		if err := h.health.Ping(c.Request.Context()); err != nil {
			h.logger.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Events

func (h *Handler) CreateEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	event := req.toEntity()
	if err := h.services.Events.CreateEvent(c.Request.Context(), event); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toEventResponse(event))
}

func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.services.Events.ListEvents(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]eventResponse, len(events))
	for i := range events {
		out[i] = h.toEventResponse(&events[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetEvent(c *gin.Context) {
	event, err := h.services.Events.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toEventResponse(event))
}

func (h *Handler) GetEventByShareCode(c *gin.Context) {
	event, err := h.services.Events.GetEventByShareCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toEventResponse(event))
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	event := req.toEntity()
	event.ID = c.Param("id")
	if err := h.services.Events.UpdateEvent(c.Request.Context(), event); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toEventResponse(event))
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.services.Events.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Board(c *gin.Context) {
	board, err := h.services.Events.Board(c.Request.Context(), c.Param("id"), h.locale(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boardResponse{
		Event:     h.toEventResponse(board.Event),
		Days:      board.Days,
		Cells:     board.Cells,
		Templates: board.Templates,
	})
}

// Participants

func (h *Handler) RegisterParticipant(c *gin.Context) {
	var req participantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	p, err := h.services.Participants.Register(c.Request.Context(), c.Param("id"), req.Name, req.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toParticipantResponse(*p, true))
}

func (h *Handler) ListParticipants(c *gin.Context) {
	participants, err := h.services.Participants.ListParticipants(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.writeParticipants(c, participants)
}

// LookupParticipants finds participants by ?name= for clients that lost their
// edit token.
func (h *Handler) LookupParticipants(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		h.badRequest(c, errors.New("name query parameter is required"))
		return
	}
	participants, err := h.services.Participants.FindByName(c.Request.Context(), c.Param("id"), name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.writeParticipants(c, participants)
}

func (h *Handler) writeParticipants(c *gin.Context, participants []entities.Participant) {
	out := make([]participantResponse, len(participants))
	for i, p := range participants {
		out[i] = toParticipantResponse(p, false)
	}
	c.JSON(http.StatusOK, out)
}

// Availability

func (h *Handler) SubmitAvailability(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	if req.empty() && !req.Clear {
		h.badRequest(c, errors.New("no time slots submitted; set clear to remove every slot"))
		return
	}
	keys, err := req.keys()
	if err != nil {
		h.respondError(c, err)
		return
	}
	saved, err := h.services.Availability.Submit(c.Request.Context(), input.SubmitRequest{
		EventID:       c.Param("id"),
		ParticipantID: req.ParticipantID,
		EditToken:     editToken(c, req.EditToken),
		Slots:         keys,
		Template:      req.Template,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"participantId": req.ParticipantID,
		"count":         len(saved),
		"slots":         toSlotDTOs(saved),
	})
}

func (h *Handler) ListTimeSlots(c *gin.Context) {
	slots, err := h.services.Availability.ListTimeSlots(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]timeSlotResponse, len(slots))
	for i, s := range slots {
		out[i] = timeSlotResponse{
			ID:            s.ID,
			ParticipantID: s.ParticipantID,
			Day:           s.Day,
			TimeStart:     s.TimeStart,
			TimeEnd:       s.TimeEnd,
			CreatedAt:     s.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, out)
}

// Selection returns a participant's saved cells with a per-day summary.
func (h *Handler) Selection(c *gin.Context) {
	ctx := c.Request.Context()
	eventID := c.Param("id")
	pid := c.Param("pid")

	keys, err := h.services.Availability.Selection(ctx, eventID, pid)
	if err != nil {
		h.respondError(c, err)
		return
	}
	board, err := h.services.Events.Board(ctx, eventID, h.locale(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, selectionResponse{
		ParticipantID: pid,
		Slots:         toSlotDTOs(keys),
		Summary:       availability.SummaryLines(availability.Summarize(keys, board.Days)),
	})
}

// Votes

func (h *Handler) CastVote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	vote, err := h.services.Votes.CastVote(c.Request.Context(), input.CastVoteRequest{
		EventID:       c.Param("id"),
		ParticipantID: req.ParticipantID,
		EditToken:     editToken(c, req.EditToken),
		TimeSlotID:    req.TimeSlotID,
		VoteType:      req.VoteType,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVoteResponse(*vote))
}

func (h *Handler) ListVotes(c *gin.Context) {
	votes, err := h.services.Votes.ListVotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]voteResponse, len(votes))
	for i, v := range votes {
		out[i] = toVoteResponse(v)
	}
	c.JSON(http.StatusOK, out)
}

// Results

func (h *Handler) Results(c *gin.Context) {
	topN := 0
	if raw := c.Query("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.badRequest(c, fmt.Errorf("top must be a non-negative integer, got %q", raw))
			return
		}
		topN = n
	}
	results, err := h.services.Results.Results(c.Request.Context(), c.Param("id"), h.locale(c), topN)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
