package discord

import (
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"inscribot/internal/application"
	pkgdiscord "inscribot/pkg/discord"
	"inscribot/pkg/tz"
)

// handleExport applique le filtre actif et remet le CSV en pièce jointe.
// Registre vide ou résultat filtré vide : message visible, pas de fichier.
func (h *Handler) handleExport(s *discordgo.Session, i *discordgo.InteractionCreate, search, event string) {
	loc := locale(i)

	all := h.snapshot()
	filtered := application.Filter(all, search, event)
	if len(filtered) == 0 {
		respondEphemeral(s, i.Interaction, h.translator.T(loc, "export.empty", nil))
		return
	}

	csv := application.ToCSV(filtered)
	filename := pkgdiscord.ExportFilename(time.Now().In(tz.Paris))

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: h.translator.T(loc, "export.done", map[string]any{"Count": len(filtered)}),
			Flags:   discordgo.MessageFlagsEphemeral,
			Files: []*discordgo.File{{
				Name:        filename,
				ContentType: "text/csv",
				Reader:      strings.NewReader(csv),
			}},
		},
	})
	if err != nil {
		log.Printf("❌ Erreur lors de l'envoi de l'export CSV: %v", err)
	}
}

// HandleExportButton relit les filtres transportés par le custom ID du bouton.
func (h *Handler) HandleExportButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	search, event := parseExportCustomID(i.MessageComponentData().CustomID)
	h.handleExport(s, i, search, event)
}
