package discord

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"meetmatch/internal/domain"
	"meetmatch/internal/domain/entities"
	"meetmatch/internal/ports/input"
	"meetmatch/internal/ports/output"
)

const interactionTimeout = 5 * time.Second

// responder is the part of *discordgo.Session the handlers need.
type responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// Handler handles Discord interactions using use cases.
type Handler struct {
	events       input.EventUseCase
	participants input.ParticipantUseCase
	availability input.AvailabilityUseCase
	results      input.ResultsUseCase
	translator   output.T
	shareLink    func(code string) string
	tokens       *tokenStore
	logger       *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	events input.EventUseCase,
	participants input.ParticipantUseCase,
	availability input.AvailabilityUseCase,
	results input.ResultsUseCase,
	translator output.T,
	shareLink func(code string) string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		events:       events,
		participants: participants,
		availability: availability,
		results:      results,
		translator:   translator,
		shareLink:    shareLink,
		tokens:       newTokenStore(),
		logger:       logger,
	}
}

func (h *Handler) locale(i *discordgo.Interaction) string {
	prefs := []string{string(i.Locale)}
	if i.GuildLocale != nil {
		prefs = append(prefs, string(*i.GuildLocale))
	}
	return h.translator.Locale(prefs...)
}

func zapInteraction(i *discordgo.Interaction, err error) []zap.Field {
	return []zap.Field{
		zap.String("interaction_id", i.ID),
		zap.String("guild_id", i.GuildID),
		zap.Error(err),
	}
}

// resolveEvent accepts either an event id or a share code.
func (h *Handler) resolveEvent(ctx context.Context, ref string) (*entities.Event, error) {
	event, err := h.events.GetEvent(ctx, ref)
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, domain.ErrEventNotFound) {
		return nil, err
	}
	return h.events.GetEventByShareCode(ctx, ref)
}
