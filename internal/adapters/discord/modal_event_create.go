package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"meetmatch/internal/domain/entities"
	pkgdiscord "meetmatch/pkg/discord"
)

const (
	createEventModalID = "meetmatch_create_event"

	fieldName        = "name"
	fieldDescription = "description"
	fieldDates       = "dates"
	fieldWindow      = "window"

	placeholderDates  = "15/01/2024 - 19/01/2024"
	placeholderWindow = "09:00-17:00"
)

func (h *Handler) openCreateModal(s responder, i *discordgo.Interaction) {
	locale := h.locale(i)
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: createEventModalID,
			Title:    h.translator.T(locale, "modal_create_title", nil),
			Components: []discordgo.MessageComponent{
				pkgdiscord.TextInputRow(fieldName, h.translator.T(locale, "modal_field_name", nil), "", discordgo.TextInputShort, true),
				pkgdiscord.TextInputRow(fieldDescription, h.translator.T(locale, "modal_field_description", nil), "", discordgo.TextInputParagraph, false),
				pkgdiscord.TextInputRow(fieldDates, h.translator.T(locale, "modal_field_dates", nil), placeholderDates, discordgo.TextInputShort, true),
				pkgdiscord.TextInputRow(fieldWindow, h.translator.T(locale, "modal_field_window", nil), placeholderWindow, discordgo.TextInputShort, false),
			},
		},
	})
	if err != nil {
		h.logger.Warn("open create modal failed", zapInteraction(i, err)...)
	}
}

// handleCreateEventModalSubmit creates the event and replies with its link.
func (h *Handler) handleCreateEventModalSubmit(s responder, i *discordgo.Interaction, data discordgo.ModalSubmitInteractionData) {
	locale := h.locale(i)
	values := pkgdiscord.ModalValues(data)

	start, end, err := pkgdiscord.ParseDateRange(values[fieldDates])
	if err != nil {
		h.respondEphemeral(s, i, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}
	from, to, err := pkgdiscord.ParseTimeWindow(values[fieldWindow])
	if err != nil {
		h.respondEphemeral(s, i, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}

	event := &entities.Event{
		Name:        values[fieldName],
		Description: values[fieldDescription],
		StartDate:   start,
		EndDate:     end,
		StartTime:   from,
		EndTime:     to,
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()
	if err := h.events.CreateEvent(ctx, event); err != nil {
		h.logger.Info("discord event creation rejected", zap.Error(err))
		h.respondEphemeral(s, i, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}

	h.logger.Info("event created from discord",
		zap.String("event_id", event.ID),
		zap.String("user_id", interactionUserID(i)),
	)
	h.respondEphemeral(s, i, h.translator.T(locale, "event_created", map[string]any{
		"Name":  event.Name,
		"Start": pkgdiscord.FormatDate(event.StartDate),
		"End":   pkgdiscord.FormatDate(event.EndDate),
		"Link":  h.shareLink(event.ShareCode),
		"ID":    event.ID,
	}))
}
