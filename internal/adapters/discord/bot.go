package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"inscribot/internal/config"
	"inscribot/internal/ports/input"
	"inscribot/internal/ports/output"
)

const (
	commandRegister = "inscription"
	commandAdmin    = "registres"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires the use cases into the interaction handler.
func NewBot(cfg *config.Config, registrations input.RegistrationUseCase, notifications input.NotificationUseCase, translator output.T) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("création de la session Discord: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(registrations, notifications, translator),
	}
	bot.session.AddHandler(bot.handleInteraction)
	return bot, nil
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case commandRegister:
			b.handler.HandleRegisterCommand(s, i)
		case commandAdmin:
			b.handler.HandleAdminCommand(s, i)
		}
	case discordgo.InteractionModalSubmit:
		if i.ModalSubmitData().CustomID == registrationModalID {
			b.handler.HandleRegistrationSubmit(s, i)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		switch {
		case strings.HasPrefix(customID, confirmDeletePrefix):
			b.handler.HandleConfirmDelete(s, i)
		case customID == cancelDeleteID:
			b.handler.HandleCancelDelete(s, i)
		case strings.HasPrefix(customID, exportPrefix):
			b.handler.HandleExportButton(s, i)
		case strings.HasPrefix(customID, selectFilterPrefix):
			b.handler.HandleEventFilterSelect(s, i)
		}
	}
}

func commands() []*discordgo.ApplicationCommand {
	optionalFilters := []*discordgo.ApplicationCommandOption{
		{Type: discordgo.ApplicationCommandOptionString, Name: "recherche", Description: "Filtre texte (nom, e-mail ou événement)"},
		{Type: discordgo.ApplicationCommandOptionString, Name: "evenement", Description: "Nom exact de l'événement"},
	}
	idOption := []*discordgo.ApplicationCommandOption{
		{Type: discordgo.ApplicationCommandOptionInteger, Name: "id", Description: "Identifiant de l'inscription", Required: true},
	}
	return []*discordgo.ApplicationCommand{
		{Name: commandRegister, Description: "S'inscrire à un événement"},
		{
			Name:        commandAdmin,
			Description: "Administration des inscriptions",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "liste", Description: "Lister les inscriptions", Options: optionalFilters},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "stats", Description: "Compteurs du registre"},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "export", Description: "Exporter les inscriptions en CSV", Options: optionalFilters},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "supprimer", Description: "Supprimer une inscription", Options: idOption},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "renvoyer", Description: "Renvoyer l'e-mail de confirmation", Options: idOption},
			},
		},
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Erreur lors de l'enregistrement de la commande %s: %v", cmd.Name, err)
		}
	}

	fmt.Println("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
