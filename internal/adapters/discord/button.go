package discord

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// handleDeleteRequest demande une confirmation interactive avant toute
// suppression ; rien n'est supprimé tant que le bouton n'est pas cliqué.
func (h *Handler) handleDeleteRequest(s *discordgo.Session, i *discordgo.InteractionCreate, id int) {
	loc := locale(i)
	ctx := context.Background()

	participant, err := h.registrations.Find(ctx, id)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.translator.T(loc, "delete.not_found", map[string]any{"ID": id}))
		return
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: h.translator.T(loc, "delete.confirm", map[string]any{
				"ID":    participant.ID,
				"Name":  participant.Name,
				"Event": participant.Event,
			}),
			Flags: discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    h.translator.T(loc, "delete.confirm_button", nil),
						Style:    discordgo.DangerButton,
						CustomID: fmt.Sprintf("%s%d", confirmDeletePrefix, participant.ID),
					},
					discordgo.Button{
						Label:    h.translator.T(loc, "delete.cancel_button", nil),
						Style:    discordgo.SecondaryButton,
						CustomID: cancelDeleteID,
					},
				}},
			},
		},
	})
}

func (h *Handler) HandleConfirmDelete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	idStr := strings.TrimPrefix(i.MessageComponentData().CustomID, confirmDeletePrefix)
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return
	}

	ctx := context.Background()
	if err := h.registrations.Delete(ctx, id); err != nil {
		log.Printf("❌ Erreur lors de la suppression de l'inscription %d: %v", id, err)
		respondUpdate(s, i.Interaction, h.translator.T(locale(i), "error.generic", nil))
		return
	}
	respondUpdate(s, i.Interaction, h.translator.T(locale(i), "delete.done", map[string]any{"ID": id}))
}

func (h *Handler) HandleCancelDelete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondUpdate(s, i.Interaction, h.translator.T(locale(i), "delete.cancelled", nil))
}

// handleResend renvoie la confirmation existante ; un id inconnu n'envoie rien.
func (h *Handler) handleResend(s *discordgo.Session, i *discordgo.InteractionCreate, id int) {
	loc := locale(i)
	ctx := context.Background()

	participant, err := h.registrations.Find(ctx, id)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.translator.T(loc, "resend.not_found", map[string]any{"ID": id}))
		return
	}

	h.notifications.SendConfirmation(ctx, participant)
	respondEphemeral(s, i.Interaction, h.translator.T(loc, "resend.done", map[string]any{"Email": participant.Email}))
}
