package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inscribot/internal/domain/entities"
)

type recordingMailer struct {
	calls   int
	to      string
	subject string
	body    string
	err     error
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.calls++
	m.to = to
	m.subject = subject
	m.body = body
	return m.err
}

func confirmedParticipant() *entities.Participant {
	return &entities.Participant{
		ID:               7,
		Name:             "Alice Martin",
		Email:            "alice@example.com",
		Contact:          "06 00 00 00 00",
		Event:            "Conf",
		RegistrationDate: "Jan 1, 2024, 10:00 AM",
	}
}

func TestNotifierRendersFixedTemplate(t *testing.T) {
	mailer := &recordingMailer{}
	notifier := NewNotifier(mailer)

	notifier.SendConfirmation(context.Background(), confirmedParticipant())

	require.Equal(t, 1, mailer.calls)
	assert.Equal(t, "alice@example.com", mailer.to)
	assert.Equal(t, "Event Registration Confirmation", mailer.subject)

	want := `Dear Alice Martin,

Thank you for registering for "Conf"!

Your registration details:
- Name: Alice Martin
- Email: alice@example.com
- Contact: 06 00 00 00 00
- Event: Conf
- Registration Date: Jan 1, 2024, 10:00 AM

We look forward to seeing you at the event!

Best regards,
Event Management Team`
	assert.Equal(t, want, mailer.body)
}

func TestNotifierSwallowsDeliveryFailure(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp: indisponible")}
	notifier := NewNotifier(mailer)

	// Pas de panique, pas d'erreur remontée : l'échec reste chez le collaborateur.
	notifier.SendConfirmation(context.Background(), confirmedParticipant())
	assert.Equal(t, 1, mailer.calls)
}
