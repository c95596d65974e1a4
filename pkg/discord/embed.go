package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"meetmatch/internal/domain/availability"
	"meetmatch/internal/ports/input"
	"meetmatch/internal/ports/output"
)

const (
	embedColor = 0x5865F2
	// Discord rejects field values over 1024 characters.
	maxFieldLen   = 1024
	maxFieldLines = 10
)

// SlotLabel renders a slot as "Mon 1/15 09:00-09:30", using the labels of the
// expanded days when the date is known.
func SlotLabel(k availability.Key, days map[string]availability.Day) string {
	if d, ok := days[k.Day]; ok && d.Short != "" {
		return fmt.Sprintf("%s %s %s-%s", d.Short, d.DisplayDate, k.Start, k.End)
	}
	return fmt.Sprintf("%s %s-%s", FormatDate(k.Day), k.Start, k.End)
}

// BuildResultsEmbed summarizes aggregated results for a Discord message.
func BuildResultsEmbed(tr output.T, locale string, res *input.Results) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: tr.T(locale, "results_title", map[string]any{"Name": res.EventName}),
		Color: embedColor,
	}

	names := make([]string, 0, len(res.Participants))
	for _, p := range res.Participants {
		names = append(names, p.Name)
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  tr.T(locale, "results_participants", nil),
		Value: fieldValue(fmt.Sprintf("%d", res.TotalParticipants), strings.Join(names, ", ")),
	})

	if len(res.Best) == 0 {
		embed.Description = tr.T(locale, "results_none", nil)
		return embed
	}

	days := make(map[string]availability.Day, len(res.Days))
	for _, d := range res.Days {
		days[d.Date] = d
	}

	best := make([]string, 0, len(res.Best))
	for _, s := range res.Best {
		best = append(best, fmt.Sprintf("%s (%d)", SlotLabel(s.Key, days), s.Count))
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  tr.T(locale, "results_best", nil),
		Value: joinLines(best),
	})

	if len(res.Top) > 0 {
		top := make([]string, 0, len(res.Top))
		for i, s := range res.Top {
			top = append(top, fmt.Sprintf("%d. %s (%d)", i+1, SlotLabel(s.Key, days), s.Count))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  tr.T(locale, "results_top", nil),
			Value: joinLines(top),
		})
	}

	if len(res.Votes.Ranked) > 0 {
		votes := make([]string, 0, len(res.Votes.Ranked))
		for _, s := range res.Votes.Ranked {
			votes = append(votes, fmt.Sprintf("%s ✅ %d ❌ %d ❔ %d", SlotLabel(s.Key, days), s.Yes, s.No, s.Maybe))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  tr.T(locale, "results_votes", nil),
			Value: joinLines(votes),
		})
	}
	return embed
}

func fieldValue(head, detail string) string {
	if detail == "" {
		return head
	}
	return truncate(head + ": " + detail)
}

func joinLines(lines []string) string {
	if len(lines) > maxFieldLines {
		more := len(lines) - maxFieldLines
		lines = append(lines[:maxFieldLines:maxFieldLines], fmt.Sprintf("+%d", more))
	}
	return truncate(strings.Join(lines, "\n"))
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxFieldLen {
		return s
	}
	return string(r[:maxFieldLen-1]) + "…"
}
