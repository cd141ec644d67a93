package application

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"inscribot/internal/domain"
	"inscribot/internal/domain/entities"
	"inscribot/internal/ports/input"
	"inscribot/internal/ports/output"
	"inscribot/pkg/tz"
)

// Clés du store, héritées de la première version du registre.
const (
	KeyParticipants = "eventParticipants"
	KeyIDCounter    = "participantIdCounter"
)

// RegistrationDateLayout is the display timestamp frozen on each record.
const RegistrationDateLayout = "Jan 2, 2006, 3:04 PM"

// Local part, @, domain containing a dot. Nothing fancier on purpose.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var _ input.RegistrationUseCase = (*RegistrationService)(nil)

// RegistrationService est le registre des inscriptions : la liste en mémoire
// fait foi pendant la session, et chaque mutation réécrit intégralement les
// deux entrées du store avant de retourner. Si l'écriture échoue, la mutation
// est annulée et l'erreur remontée à l'appelant.
type RegistrationService struct {
	store output.KV
	now   func() time.Time

	mu           sync.Mutex
	participants []entities.Participant
	nextID       int
}

func NewRegistrationService(store output.KV) *RegistrationService {
	return &RegistrationService{
		store:  store,
		now:    time.Now,
		nextID: 1,
	}
}

// Load reads both store entries. A missing entry means an empty registry and
// a counter starting at 1.
func (s *RegistrationService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.store.Get(ctx, KeyParticipants)
	if err != nil {
		return fmt.Errorf("load participants: %w", err)
	}
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &s.participants); err != nil {
			return fmt.Errorf("decode participants: %w", err)
		}
	}

	rawCounter, ok, err := s.store.Get(ctx, KeyIDCounter)
	if err != nil {
		return fmt.Errorf("load id counter: %w", err)
	}
	if ok {
		n, err := strconv.Atoi(strings.TrimSpace(rawCounter))
		if err != nil {
			return fmt.Errorf("decode id counter %q: %w", rawCounter, err)
		}
		s.nextID = n
	}
	return nil
}

// Register validates the form, enforces the (email insensible à la casse,
// événement exact) uniqueness pair, assigns the next id and persists.
func (s *RegistrationService) Register(ctx context.Context, form input.RegistrationForm) (*entities.Participant, error) {
	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)
	contact := strings.TrimSpace(form.Contact)
	event := strings.TrimSpace(form.Event)
	notes := strings.TrimSpace(form.Notes)

	if name == "" || email == "" || contact == "" || event == "" {
		return nil, domain.ErrMissingField
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.participants {
		p := &s.participants[i]
		if strings.EqualFold(p.Email, email) && p.Event == event {
			return nil, domain.ErrAlreadyRegistered
		}
	}

	now := s.now()
	participant := entities.Participant{
		ID:               s.nextID,
		Name:             name,
		Email:            email,
		Contact:          contact,
		Event:            event,
		Notes:            notes,
		RegistrationDate: now.In(tz.Paris).Format(RegistrationDateLayout),
		Timestamp:        now.UTC(),
	}
	s.participants = append(s.participants, participant)
	s.nextID++

	if err := s.persistLocked(ctx); err != nil {
		s.participants = s.participants[:len(s.participants)-1]
		s.nextID--
		return nil, err
	}
	return &participant, nil
}

// Delete removes the participant with this id. Deleting an unknown id is a
// no-op; the id counter never goes back down.
func (s *RegistrationService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.participants, func(p entities.Participant) bool {
		return p.ID == id
	})
	if idx < 0 {
		return nil
	}

	removed := s.participants[idx]
	s.participants = slices.Delete(s.participants, idx, idx+1)
	if err := s.persistLocked(ctx); err != nil {
		s.participants = slices.Insert(s.participants, idx, removed)
		return err
	}
	return nil
}

func (s *RegistrationService) Find(ctx context.Context, id int) (*entities.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.participants {
		if s.participants[i].ID == id {
			p := s.participants[i]
			return &p, nil
		}
	}
	return nil, domain.ErrParticipantNotFound
}

// All returns a restartable sequence over a snapshot of the registry, in
// storage order. Callers sort with SortedByNewest before display.
func (s *RegistrationService) All() iter.Seq[entities.Participant] {
	s.mu.Lock()
	snapshot := slices.Clone(s.participants)
	s.mu.Unlock()
	return slices.Values(snapshot)
}

func (s *RegistrationService) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.participants)
	if err != nil {
		return fmt.Errorf("encode participants: %w", err)
	}
	// Liste et compteur partent dans la même écriture atomique : aucun état
	// partiel ne peut être rechargé après redémarrage.
	err = s.store.PutAll(ctx,
		output.Entry{Key: KeyParticipants, Value: string(raw)},
		output.Entry{Key: KeyIDCounter, Value: strconv.Itoa(s.nextID)},
	)
	if err != nil {
		return fmt.Errorf("persist registry: %w", err)
	}
	return nil
}
