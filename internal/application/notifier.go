package application

import (
	"context"
	"fmt"
	"log"

	"inscribot/internal/domain/entities"
	"inscribot/internal/ports/input"
	"inscribot/internal/ports/output"
)

const confirmationSubject = "Event Registration Confirmation"

var _ input.NotificationUseCase = (*Notifier)(nil)

// Notifier met en forme le message de confirmation et le remet une seule fois
// au collaborateur d'envoi. Un échec d'envoi est journalisé, jamais remonté.
type Notifier struct {
	mailer output.Mailer
}

func NewNotifier(mailer output.Mailer) *Notifier {
	return &Notifier{mailer: mailer}
}

func (n *Notifier) SendConfirmation(ctx context.Context, participant *entities.Participant) {
	body := ConfirmationBody(participant)
	if err := n.mailer.Send(ctx, participant.Email, confirmationSubject, body); err != nil {
		log.Printf("⚠️ Envoi de la confirmation à %s impossible: %v", participant.Email, err)
	}
}

// ConfirmationBody renders the fixed confirmation template.
func ConfirmationBody(p *entities.Participant) string {
	return fmt.Sprintf(`Dear %s,

Thank you for registering for "%s"!

Your registration details:
- Name: %s
- Email: %s
- Contact: %s
- Event: %s
- Registration Date: %s

We look forward to seeing you at the event!

Best regards,
Event Management Team`,
		p.Name, p.Event, p.Name, p.Email, p.Contact, p.Event, p.RegistrationDate)
}
