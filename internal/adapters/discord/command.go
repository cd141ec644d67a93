package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	placeholderName    = "Ex: Marie Dupont"
	placeholderEmail   = "Ex: marie@exemple.fr"
	placeholderContact = "Ex: 06 12 34 56 78"
	placeholderEvent   = "Ex: Conférence Tech 2026"
	placeholderNotes   = "Allergies, accessibilité, covoiturage..."
)

func (h *Handler) HandleRegisterCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: registrationModalID,
			Title:    "S'inscrire à un événement",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: "name", Label: "Nom", Style: discordgo.TextInputShort, Required: true, Placeholder: placeholderName},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: "email", Label: "E-mail", Style: discordgo.TextInputShort, Required: true, Placeholder: placeholderEmail},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: "contact", Label: "Contact", Style: discordgo.TextInputShort, Required: true, Placeholder: placeholderContact},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: "event", Label: "Événement", Style: discordgo.TextInputShort, Required: true, Placeholder: placeholderEvent},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: "notes", Label: "Notes", Style: discordgo.TextInputParagraph, Required: false, Placeholder: placeholderNotes},
				}},
			},
		},
	})
}

func (h *Handler) HandleAdminCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, o := range sub.Options {
		opts[o.Name] = o
	}

	switch sub.Name {
	case "liste":
		h.handleList(s, i, stringOpt(opts, "recherche"), stringOpt(opts, "evenement"))
	case "stats":
		h.handleStats(s, i)
	case "export":
		h.handleExport(s, i, stringOpt(opts, "recherche"), stringOpt(opts, "evenement"))
	case "supprimer":
		h.handleDeleteRequest(s, i, intOpt(opts, "id"))
	case "renvoyer":
		h.handleResend(s, i, intOpt(opts, "id"))
	}
}

func stringOpt(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if o, ok := opts[name]; ok {
		return o.StringValue()
	}
	return ""
}

func intOpt(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	if o, ok := opts[name]; ok {
		return int(o.IntValue())
	}
	return 0
}
