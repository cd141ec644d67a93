package application

import (
	"fmt"
	"slices"
	"strings"

	"inscribot/internal/domain/entities"
)

// Stats are the aggregate counters shown in the admin view.
type Stats struct {
	TotalRegistrations int
	UniqueEvents       int
}

// SortedByNewest returns a copy ordered by registration instant, newest
// first. The sort is stable so same-instant records keep insertion order.
func SortedByNewest(participants []entities.Participant) []entities.Participant {
	sorted := slices.Clone(participants)
	slices.SortStableFunc(sorted, func(a, b entities.Participant) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return sorted
}

// UniqueEvents returns the distinct event names, alphabetically, for the
// filter options.
func UniqueEvents(participants []entities.Participant) []string {
	seen := make(map[string]struct{}, len(participants))
	events := make([]string, 0, len(participants))
	for _, p := range participants {
		if _, ok := seen[p.Event]; ok {
			continue
		}
		seen[p.Event] = struct{}{}
		events = append(events, p.Event)
	}
	slices.Sort(events)
	return events
}

func ComputeStats(participants []entities.Participant) Stats {
	seen := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		seen[p.Event] = struct{}{}
	}
	return Stats{
		TotalRegistrations: len(participants),
		UniqueEvents:       len(seen),
	}
}

// Filter keeps the participants matching both the free-text search (substring
// of name, email or event, insensible à la casse) and the exact event filter.
// An empty term or event name leaves that side unconstrained.
func Filter(participants []entities.Participant, searchTerm, eventName string) []entities.Participant {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	matched := make([]entities.Participant, 0, len(participants))
	for _, p := range participants {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Email), term) ||
			strings.Contains(strings.ToLower(p.Event), term)
		matchesEvent := eventName == "" || p.Event == eventName
		if matchesSearch && matchesEvent {
			matched = append(matched, p)
		}
	}
	return matched
}

// ToCSV renders the export text. Name, Event, Registration Date and Notes are
// wrapped in double quotes (Notes even when empty), the other columns are
// written bare.
func ToCSV(participants []entities.Participant) string {
	rows := make([]string, 0, len(participants)+1)
	rows = append(rows, "ID,Name,Email,Contact,Event,Registration Date,Notes")
	for _, p := range participants {
		rows = append(rows, fmt.Sprintf("%d,\"%s\",%s,%s,\"%s\",\"%s\",\"%s\"",
			p.ID, p.Name, p.Email, p.Contact, p.Event, p.RegistrationDate, p.Notes))
	}
	return strings.Join(rows, "\n")
}
