package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatorLoadsEveryEmbeddedLocale(t *testing.T) {
	tr := NewTranslator("fr")

	assert.Equal(t, "Aucune donnée à exporter.", tr.T("fr", "export.empty", nil))
	assert.Equal(t, "No data to export.", tr.T("en", "export.empty", nil))
}

func TestTranslatorFallsBack(t *testing.T) {
	tr := NewTranslator("fr")

	// Locale inconnue : repli sur la locale par défaut.
	assert.Equal(t, "Aucune donnée à exporter.", tr.T("xx", "export.empty", nil))
	// Clé inconnue : la clé elle-même.
	assert.Equal(t, "cle.inconnue", tr.T("fr", "cle.inconnue", nil))
}

func TestTranslatorTemplatesData(t *testing.T) {
	tr := NewTranslator("fr")

	assert.Equal(t, "📧 E-mail de confirmation renvoyé à alice@example.com.",
		tr.T("fr", "resend.done", map[string]any{"Email": "alice@example.com"}))
}
