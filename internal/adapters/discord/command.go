package discord

import (
	"github.com/bwmarrin/discordgo"

	"meetmatch/internal/domain/availability"
	"meetmatch/internal/ports/output"
)

const (
	commandName = "meetmatch"

	subCreate    = "create"
	subResults   = "results"
	subAvailable = "available"

	optEvent    = "event"
	optName     = "name"
	optTemplate = "template"
)

// applicationCommand describes /meetmatch with descriptions in locale.
func applicationCommand(tr output.T, locale string) *discordgo.ApplicationCommand {
	eventOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        optEvent,
		Description: tr.T(locale, "opt_event_description", nil),
		Required:    true,
	}

	templates := availability.TemplateNames()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(templates))
	for i, name := range templates {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name}
	}

	return &discordgo.ApplicationCommand{
		Name:        commandName,
		Description: tr.T(locale, "cmd_description", nil),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subCreate,
				Description: tr.T(locale, "cmd_create_description", nil),
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subResults,
				Description: tr.T(locale, "cmd_results_description", nil),
				Options:     []*discordgo.ApplicationCommandOption{eventOption},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subAvailable,
				Description: tr.T(locale, "cmd_available_description", nil),
				Options: []*discordgo.ApplicationCommandOption{
					eventOption,
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        optTemplate,
						Description: tr.T(locale, "opt_template_description", nil),
						Required:    true,
						Choices:     choices,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        optName,
						Description: tr.T(locale, "opt_name_description", nil),
					},
				},
			},
		},
	}
}

// HandleCommand dispatches a /meetmatch subcommand.
func (h *Handler) HandleCommand(s responder, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]
	opts := make(map[string]string, len(sub.Options))
	for _, o := range sub.Options {
		if o.Type == discordgo.ApplicationCommandOptionString {
			opts[o.Name] = o.StringValue()
		}
	}

	switch sub.Name {
	case subCreate:
		h.openCreateModal(s, i.Interaction)
	case subResults:
		h.handleResults(s, i.Interaction, opts[optEvent])
	case subAvailable:
		h.handleAvailable(s, i.Interaction, opts[optEvent], opts[optTemplate], opts[optName])
	}
}
