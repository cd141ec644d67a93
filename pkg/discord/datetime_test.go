package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExportFilename(t *testing.T) {
	day := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "event_registrations_2024-03-05.csv", ExportFilename(day))
}
