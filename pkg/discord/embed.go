package discord

import (
	"fmt"
	"strings"

	"inscribot/internal/domain/entities"

	"github.com/bwmarrin/discordgo"
)

const (
	embedColor = 0x5865F2

	// MaxListedRows borne la taille du listing pour rester sous la limite
	// de description des embeds Discord.
	MaxListedRows = 10
)

// BuildListingEmbed renders the admin listing. participants must already be
// filtered and sorted newest first; only the first MaxListedRows are shown,
// moreText (already localized) is appended when rows were cut off.
func BuildListingEmbed(title string, participants []entities.Participant, footer, moreText string) *discordgo.MessageEmbed {
	var b strings.Builder
	shown := participants
	if len(shown) > MaxListedRows {
		shown = shown[:MaxListedRows]
	}
	for _, p := range shown {
		b.WriteString(fmt.Sprintf("**#%d · %s** — %s\n", p.ID, p.Name, p.Email))
		b.WriteString(fmt.Sprintf("🎫 %s · 📞 %s · 🕒 %s", p.Event, p.Contact, p.RegistrationDate))
		if p.Notes != "" {
			b.WriteString(" · 📝 " + p.Notes)
		}
		b.WriteString("\n")
	}
	if len(participants) > MaxListedRows && moreText != "" {
		b.WriteString(moreText + "\n")
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: b.String(),
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: footer},
	}
}

// BuildStatsEmbed renders the aggregate counters view.
func BuildStatsEmbed(title, body string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: body,
		Color:       embedColor,
	}
}
