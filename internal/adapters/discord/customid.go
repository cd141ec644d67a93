package discord

import (
	"net/url"
	"strings"
)

// Custom IDs des composants. Les filtres actifs (recherche, événement) sont
// transportés dans l'ID, encodés pour survivre aux séparateurs et tronqués
// pour tenir dans la limite Discord.
const (
	registrationModalID = "registration_modal"
	selectFilterPrefix  = "select_event_filter"
	exportPrefix        = "btn_export"
	confirmDeletePrefix = "btn_confirm_delete_"
	cancelDeleteID      = "btn_cancel_delete"

	// maxCustomIDLen is Discord's cap on component custom IDs.
	maxCustomIDLen = 100
)

func selectFilterCustomID(search string) string {
	return selectFilterPrefix + "|" + escapeWithin(search, maxCustomIDLen-len(selectFilterPrefix)-1)
}

func parseSelectFilterCustomID(id string) (search string) {
	_, rest, ok := strings.Cut(id, "|")
	if !ok {
		return ""
	}
	search, err := url.QueryUnescape(rest)
	if err != nil {
		return ""
	}
	return search
}

func exportCustomID(search, event string) string {
	budget := maxCustomIDLen - len(exportPrefix) - 2
	escapedEvent := escapeWithin(event, budget)
	escapedSearch := escapeWithin(search, budget-len(escapedEvent))
	return exportPrefix + "|" + escapedSearch + "|" + escapedEvent
}

func parseExportCustomID(id string) (search, event string) {
	parts := strings.Split(id, "|")
	if len(parts) != 3 {
		return "", ""
	}
	search, _ = url.QueryUnescape(parts[1])
	event, _ = url.QueryUnescape(parts[2])
	return search, event
}

// escapeWithin query-escape le texte puis le raccourcit rune par rune jusqu'à
// ce que la forme encodée tienne dans budget caractères.
func escapeWithin(text string, budget int) string {
	runes := []rune(text)
	escaped := url.QueryEscape(string(runes))
	for len(escaped) > budget && len(runes) > 0 {
		runes = runes[:len(runes)-1]
		escaped = url.QueryEscape(string(runes))
	}
	if len(escaped) > budget {
		return ""
	}
	return escaped
}
