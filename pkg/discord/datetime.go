package discord

import (
	"fmt"
	"time"
)

// ExportFilename names a CSV export after its generation day (ISO date).
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("event_registrations_%s.csv", t.Format("2006-01-02"))
}
