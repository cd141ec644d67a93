package input

import (
	"context"
	"iter"

	"inscribot/internal/domain/entities"
)

// RegistrationForm carries the raw field values submitted by a user.
type RegistrationForm struct {
	Name    string
	Email   string
	Contact string
	Event   string
	Notes   string
}

type RegistrationUseCase interface {
	Register(ctx context.Context, form RegistrationForm) (*entities.Participant, error)
	Delete(ctx context.Context, id int) error
	Find(ctx context.Context, id int) (*entities.Participant, error)
	All() iter.Seq[entities.Participant]
}
