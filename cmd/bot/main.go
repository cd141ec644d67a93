package main

import (
	"context"
	"log"
	"os"

	"inscribot/internal/adapters/discord"
	"inscribot/internal/application"
	"inscribot/internal/config"
	"inscribot/internal/infrastructure/database"
	"inscribot/internal/infrastructure/i18n"
	"inscribot/internal/infrastructure/mail"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Erreur lors des migrations: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
	}
	defer pool.Close()

	registry := application.NewRegistrationService(database.NewKVStore(pool))
	if err := registry.Load(ctx); err != nil {
		log.Fatalf("❌ Erreur lors du chargement du registre: %v", err)
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale)
	notifier := application.NewNotifier(mail.NewConsole())

	bot, err := discord.NewBot(cfg, registry, notifier, translator)
	if err != nil {
		log.Fatalf("❌ Erreur lors de la création du bot: %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Erreur lors du démarrage du bot: %v", err)
		os.Exit(1)
	}
}
