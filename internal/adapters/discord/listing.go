package discord

import (
	"github.com/bwmarrin/discordgo"

	"inscribot/internal/application"
	"inscribot/internal/domain/entities"
	pkgdiscord "inscribot/pkg/discord"
)

func (h *Handler) handleList(s *discordgo.Session, i *discordgo.InteractionCreate, search, event string) {
	embed, components := h.renderListing(locale(i), search, event)
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

func (h *Handler) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	loc := locale(i)
	stats := application.ComputeStats(h.snapshot())
	embed := pkgdiscord.BuildStatsEmbed(
		h.translator.T(loc, "stats.title", nil),
		h.translator.T(loc, "stats.body", map[string]any{
			"Total":  stats.TotalRegistrations,
			"Events": stats.UniqueEvents,
		}),
	)
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// renderListing recompute toutes les vues dérivées : sous-ensemble filtré
// trié du plus récent au plus ancien, compteurs, options de filtre.
func (h *Handler) renderListing(loc, search, event string) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	all := h.snapshot()
	visible := application.SortedByNewest(application.Filter(all, search, event))
	stats := application.ComputeStats(all)

	title := h.translator.T(loc, "list.title", nil)
	footer := h.translator.T(loc, "list.footer", map[string]any{
		"Total":  stats.TotalRegistrations,
		"Events": stats.UniqueEvents,
	})

	var embed *discordgo.MessageEmbed
	if len(visible) == 0 {
		embed = pkgdiscord.BuildListingEmbed(title, nil, footer, "")
		embed.Description = h.translator.T(loc, "list.empty", nil)
	} else {
		var more string
		if len(visible) > pkgdiscord.MaxListedRows {
			more = h.translator.T(loc, "list.more", map[string]any{
				"Count": len(visible) - pkgdiscord.MaxListedRows,
			})
		}
		embed = pkgdiscord.BuildListingEmbed(title, visible, footer, more)
	}

	return embed, h.buildListingComponents(loc, all, search, event)
}

func (h *Handler) buildListingComponents(loc string, all []entities.Participant, search, event string) []discordgo.MessageComponent {
	options := []discordgo.SelectMenuOption{{
		Label:   h.translator.T(loc, "filter.all", nil),
		Value:   "all",
		Default: event == "",
	}}
	for _, name := range application.UniqueEvents(all) {
		if len(options) == 25 { // limite Discord par menu
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:   name,
			Value:   name,
			Default: name == event,
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    selectFilterCustomID(search),
				Placeholder: h.translator.T(loc, "filter.placeholder", nil),
				Options:     options,
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    h.translator.T(loc, "export.button", nil),
				Style:    discordgo.PrimaryButton,
				CustomID: exportCustomID(search, event),
			},
		}},
	}
}
