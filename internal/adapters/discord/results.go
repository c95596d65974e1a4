package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	pkgdiscord "meetmatch/pkg/discord"
)

func (h *Handler) handleResults(s responder, i *discordgo.Interaction, eventRef string) {
	locale := h.locale(i)
	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	event, err := h.resolveEvent(ctx, eventRef)
	if err != nil {
		h.respondEphemeral(s, i, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}
	res, err := h.results.Results(ctx, event.ID, locale, 0)
	if err != nil {
		h.logger.Error("discord results failed", zap.String("event_id", event.ID), zap.Error(err))
		h.respondEphemeral(s, i, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}
	h.respondEmbed(s, i, pkgdiscord.BuildResultsEmbed(h.translator, locale, res))
}
