package discord

import (
	"github.com/bwmarrin/discordgo"
)

// HandleModalSubmit routes modals by CustomID.
func (h *Handler) HandleModalSubmit(s responder, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	switch data.CustomID {
	case createEventModalID:
		h.handleCreateEventModalSubmit(s, i.Interaction, data)
	default:
		h.logger.Debug("unknown modal ignored")
	}
}
