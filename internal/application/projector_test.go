package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inscribot/internal/domain/entities"
)

func participant(id int, name, email, event string, at time.Time) entities.Participant {
	return entities.Participant{
		ID:               id,
		Name:             name,
		Email:            email,
		Contact:          "123",
		Event:            event,
		RegistrationDate: at.Format(RegistrationDateLayout),
		Timestamp:        at,
	}
}

func sampleRegistry() []entities.Participant {
	base := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	return []entities.Participant{
		participant(1, "Alice Martin", "alice@example.com", "Conf", base),
		participant(2, "Bob Durand", "bob@example.com", "Atelier", base.Add(time.Hour)),
		participant(3, "Carol Petit", "carol@alice-corp.com", "Conf", base.Add(2*time.Hour)),
	}
}

func TestSortedByNewest(t *testing.T) {
	sorted := SortedByNewest(sampleRegistry())
	ids := []int{sorted[0].ID, sorted[1].ID, sorted[2].ID}
	assert.Equal(t, []int{3, 2, 1}, ids)
}

func TestSortedByNewestIsStable(t *testing.T) {
	at := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	ps := []entities.Participant{
		participant(1, "Alice", "alice@example.com", "Conf", at),
		participant(2, "Bob", "bob@example.com", "Conf", at),
	}
	sorted := SortedByNewest(ps)
	assert.Equal(t, 1, sorted[0].ID)
	assert.Equal(t, 2, sorted[1].ID)
}

func TestUniqueEventsAlphabetical(t *testing.T) {
	assert.Equal(t, []string{"Atelier", "Conf"}, UniqueEvents(sampleRegistry()))
	assert.Empty(t, UniqueEvents(nil))
}

func TestComputeStats(t *testing.T) {
	assert.Equal(t, Stats{TotalRegistrations: 0, UniqueEvents: 0}, ComputeStats(nil))
	assert.Equal(t, Stats{TotalRegistrations: 3, UniqueEvents: 2}, ComputeStats(sampleRegistry()))
}

func TestFilter(t *testing.T) {
	registry := sampleRegistry()

	t.Run("empty filters return everything", func(t *testing.T) {
		assert.Len(t, Filter(registry, "", ""), 3)
	})

	t.Run("search matches name, email and event, case-insensitive", func(t *testing.T) {
		matched := Filter(registry, "alice", "")
		require.Len(t, matched, 2) // nom d'Alice + domaine de Carol
		assert.Equal(t, 1, matched[0].ID)
		assert.Equal(t, 3, matched[1].ID)

		assert.Len(t, Filter(registry, "ATELIER", ""), 1)
	})

	t.Run("event filter is exact", func(t *testing.T) {
		assert.Len(t, Filter(registry, "", "Conf"), 2)
		assert.Empty(t, Filter(registry, "", "conf"))
	})

	t.Run("both filters combine with AND", func(t *testing.T) {
		matched := Filter(registry, "alice", "Conf")
		require.Len(t, matched, 2)
		assert.Empty(t, Filter(registry, "bob", "Conf"))
	})
}

func TestToCSV(t *testing.T) {
	records := []entities.Participant{{
		ID:               1,
		Name:             "A B",
		Email:            "a@b.com",
		Contact:          "123",
		Event:            "Conf",
		RegistrationDate: "Jan 1, 2024, 10:00 AM",
		Notes:            "",
	}}
	want := "ID,Name,Email,Contact,Event,Registration Date,Notes\n" +
		`1,"A B",a@b.com,123,"Conf","Jan 1, 2024, 10:00 AM",""`
	assert.Equal(t, want, ToCSV(records))
}

func TestToCSVHeaderOnly(t *testing.T) {
	assert.Equal(t, "ID,Name,Email,Contact,Event,Registration Date,Notes", ToCSV(nil))
}
