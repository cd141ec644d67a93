package input

import (
	"context"

	"inscribot/internal/domain/entities"
)

type NotificationUseCase interface {
	// SendConfirmation dispatches the confirmation message for a participant.
	// Delivery is best-effort: failures never reach the caller.
	SendConfirmation(ctx context.Context, participant *entities.Participant)
}
