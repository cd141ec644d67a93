package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectFilterCustomIDRoundTrip(t *testing.T) {
	id := selectFilterCustomID("café | bis")
	assert.Equal(t, "café | bis", parseSelectFilterCustomID(id))
	assert.Empty(t, parseSelectFilterCustomID(selectFilterPrefix+"|"))
}

func TestExportCustomIDRoundTrip(t *testing.T) {
	id := exportCustomID("alice", "Conférence Tech 2026")
	search, event := parseExportCustomID(id)
	assert.Equal(t, "alice", search)
	assert.Equal(t, "Conférence Tech 2026", event)

	search, event = parseExportCustomID("btn_export")
	assert.Empty(t, search)
	assert.Empty(t, event)
}

func TestCustomIDsStayWithinDiscordLimit(t *testing.T) {
	long := strings.Repeat("événement très long ", 10)

	id := selectFilterCustomID(long)
	assert.LessOrEqual(t, len(id), maxCustomIDLen)
	// Le terme transporté est un préfixe du terme saisi, jamais du bruit.
	assert.True(t, strings.HasPrefix(long, parseSelectFilterCustomID(id)))

	exportID := exportCustomID(long, long)
	assert.LessOrEqual(t, len(exportID), maxCustomIDLen)
	search, event := parseExportCustomID(exportID)
	assert.True(t, strings.HasPrefix(long, search))
	assert.True(t, strings.HasPrefix(long, event))
}
