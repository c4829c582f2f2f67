package core

import (
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailMessage_Render(t *testing.T) {
	data := map[string]string{
		"TraineeName": "Juan Pérez",
		"TraineeCI":   "12345678",
		"TraineeRank": "Soldado",
		"Reason":      "Traslado",
		"Date":        "2024-05-10",
		"Notes":       "Traslado a otra unidad",
		"RecordedBy":  "Jefe de Evaluaciones",
	}

	t.Run("template", func(t *testing.T) {
		msg := &EmailMessage{
			To:           []mail.Address{{Address: "comandante@eame.mil.bo"}},
			Subject:      "Baja registrada",
			TemplateName: "discharge_notice",
			TemplateData: data,
		}
		require.NoError(t, msg.Render("EAME"))
		assert.True(t, msg.HasRecipients())
		assert.True(t, msg.HasContent())
		assert.Contains(t, msg.TextContent, "Juan Pérez (CI 12345678, Soldado)")
		assert.Contains(t, msg.TextContent, "Motivo: Traslado")
		assert.Contains(t, msg.HTMLContent, "<strong>Juan Pérez</strong>")
	})

	t.Run("missing key", func(t *testing.T) {
		msg := &EmailMessage{TemplateName: "discharge_notice", TemplateData: map[string]string{}}
		assert.Error(t, msg.Render("EAME"))
	})

	t.Run("plain body", func(t *testing.T) {
		msg := &EmailMessage{BodyStr: "hola"}
		require.NoError(t, msg.Render("EAME"))
		assert.Equal(t, "hola", msg.TextContent)
		assert.Empty(t, msg.HTMLContent)
		assert.False(t, msg.HasRecipients())
	})

	t.Run("unknown template", func(t *testing.T) {
		msg := &EmailMessage{TemplateName: "lol"}
		require.NoError(t, msg.Render("EAME"))
		assert.False(t, msg.HasContent())
	})
}
