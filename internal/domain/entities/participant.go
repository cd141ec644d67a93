package entities

import "time"

// Participant is one registration record. The JSON tags match the form
// persisted in the key-value store, so a dump written by an older deployment
// loads unchanged.
type Participant struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
	Event   string `json:"event"`
	Notes   string `json:"notes"`
	// RegistrationDate est l'horodatage d'affichage, figé à la création.
	RegistrationDate string `json:"registrationDate"`
	// Timestamp orders the display (newest first); immutable once set.
	Timestamp time.Time `json:"timestamp"`
}
