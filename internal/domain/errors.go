package domain

import "errors"

// Domain errors.
var (
	ErrMissingField        = errors.New("champ obligatoire manquant")
	ErrInvalidEmail        = errors.New("adresse e-mail invalide")
	ErrAlreadyRegistered   = errors.New("déjà inscrit à cet événement")
	ErrParticipantNotFound = errors.New("participant non trouvé")
)

// Code returns a stable identifier for a domain error, usable as an i18n
// message key suffix. Unknown errors yield "".
func Code(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrInvalidEmail):
		return "invalid_email"
	case errors.Is(err, ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, ErrParticipantNotFound):
		return "participant_not_found"
	}
	return ""
}
