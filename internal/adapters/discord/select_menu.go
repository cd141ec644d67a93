package discord

import (
	"github.com/bwmarrin/discordgo"
)

// HandleEventFilterSelect réapplique le filtre et réécrit le listing en place.
// Le terme de recherche actif voyage dans le custom ID du menu.
func (h *Handler) HandleEventFilterSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	search := parseSelectFilterCustomID(data.CustomID)

	event := ""
	if len(data.Values) > 0 && data.Values[0] != "all" {
		event = data.Values[0]
	}

	embed, components := h.renderListing(locale(i), search, event)
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}
