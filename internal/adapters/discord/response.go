package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Nick > GlobalName > Username. Outside a guild only the user is set.
func resolveDisplayName(i *discordgo.Interaction) string {
	user := i.User
	if i.Member != nil {
		if i.Member.Nick != "" {
			return i.Member.Nick
		}
		user = i.Member.User
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func (h *Handler) respondEphemeral(s responder, i *discordgo.Interaction, content string) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		h.logger.Warn("interaction response failed", zapInteraction(i, err)...)
	}
}

func (h *Handler) respondEmbed(s responder, i *discordgo.Interaction, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		h.logger.Warn("interaction response failed", zapInteraction(i, err)...)
	}
}
