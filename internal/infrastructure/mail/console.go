package mail

import (
	"context"
	"log"

	"inscribot/internal/ports/output"
)

var _ output.Mailer = (*Console)(nil)

// Console simule l'envoi d'e-mails : le message rendu est journalisé tel
// quel. Le transport réel (SMTP ou autre) est un collaborateur externe qui
// n'est pas fourni ici.
type Console struct{}

func NewConsole() *Console {
	return &Console{}
}

func (Console) Send(_ context.Context, to, subject, body string) error {
	log.Printf("📧 Confirmation envoyée à %s\nSubject: %s\n\n%s\n", to, subject, body)
	return nil
}
