package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"meetmatch/internal/ports/input"
	pkgdiscord "meetmatch/pkg/discord"
)

// handleAvailable registers the user once per event and name, then replaces
// their selection with the template.
func (h *Handler) handleAvailable(s responder, i *discordgo.Interaction, eventRef, template, name string) {
	locale := h.locale(i)
	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	event, err := h.resolveEvent(ctx, eventRef)
	if err != nil {
		h.respondEphemeral(s, i, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = resolveDisplayName(i)
	}
	userID := interactionUserID(i)

	tok, ok := h.tokens.get(event.ID, userID, name)
	if !ok {
		p, err := h.participants.Register(ctx, event.ID, name, "")
		if err != nil {
			h.respondEphemeral(s, i, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
			return
		}
		tok = participantToken{participantID: p.ID, name: name, editToken: p.EditToken}
		h.tokens.put(event.ID, userID, tok)
	}

	saved, err := h.availability.Submit(ctx, input.SubmitRequest{
		EventID:       event.ID,
		ParticipantID: tok.participantID,
		EditToken:     tok.editToken,
		Template:      template,
	})
	if err != nil {
		h.logger.Info("discord availability rejected", zap.String("event_id", event.ID), zap.Error(err))
		h.respondEphemeral(s, i, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}
	h.respondEphemeral(s, i, h.translator.T(locale, "available_saved", map[string]any{
		"Count": len(saved),
		"Name":  tok.name,
	}))
}
