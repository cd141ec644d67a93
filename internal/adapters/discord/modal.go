package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"inscribot/internal/domain"
	"inscribot/internal/ports/input"
	pkgdiscord "inscribot/pkg/discord"
)

func (h *Handler) HandleRegistrationSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name, email, contact, event, notes := pkgdiscord.ExtractRegistrationForm(i.ModalSubmitData())

	ctx := context.Background()
	participant, err := h.registrations.Register(ctx, input.RegistrationForm{
		Name:    name,
		Email:   email,
		Contact: contact,
		Event:   event,
		Notes:   notes,
	})
	if err != nil {
		key := "error.generic"
		if code := domain.Code(err); code != "" {
			key = "error." + code
		} else {
			log.Printf("❌ Erreur lors de l'enregistrement de l'inscription: %v", err)
		}
		respondEphemeral(s, i.Interaction, h.translator.T(locale(i), key, nil))
		return
	}

	h.notifications.SendConfirmation(ctx, participant)
	respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "register.success", nil))
}
