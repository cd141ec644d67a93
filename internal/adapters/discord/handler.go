package discord

import (
	"slices"

	"github.com/bwmarrin/discordgo"

	"inscribot/internal/domain/entities"
	"inscribot/internal/ports/input"
	"inscribot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	registrations input.RegistrationUseCase
	notifications input.NotificationUseCase
	translator    output.T
}

// NewHandler creates a Handler.
func NewHandler(
	registrations input.RegistrationUseCase,
	notifications input.NotificationUseCase,
	translator output.T,
) *Handler {
	return &Handler{
		registrations: registrations,
		notifications: notifications,
		translator:    translator,
	}
}

// snapshot matérialise le contenu courant du registre, dans l'ordre de stockage.
func (h *Handler) snapshot() []entities.Participant {
	return slices.Collect(h.registrations.All())
}

func locale(i *discordgo.InteractionCreate) string {
	return string(i.Locale)
}
