package echoapi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saraquenta/Sistema-EAME/core/discipline"
	"github.com/saraquenta/Sistema-EAME/testutil"
)

func Test_disciplineApi(t *testing.T) {
	app := setup(t)
	karate := testutil.CreateDiscipline(t, app.Svcs, "Karate", 30, 60, 10)

	chiefToken := app.token(t, app.chief)
	cmdToken := app.token(t, app.commander)

	runHTTPTests(t, app, []httpTest{
		{
			name: "weights must sum to 100", method: http.MethodPost, path: "/api/disciplinas", token: chiefToken,
			body: map[string]interface{}{
				"nombre": "Judo", "tipo": "Arte Marcial",
				"porcentaje_teoria": 30, "porcentaje_practica": 60, "porcentaje_otros": 20,
			},
			wantCode: http.StatusBadRequest, wantErr: "validation_error",
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, decodeError(t, rec).Fields, "porcentaje_otros")
			},
		},
		{
			name: "missing weights", method: http.MethodPost, path: "/api/disciplinas", token: chiefToken,
			body:     map[string]interface{}{"nombre": "Judo", "tipo": "Arte Marcial", "porcentaje_teoria": 100},
			wantCode: http.StatusBadRequest, wantErr: "validation_error",
		},
		{
			name: "unknown type", method: http.MethodPost, path: "/api/disciplinas", token: chiefToken,
			body: map[string]interface{}{
				"nombre": "Esgrima", "tipo": "Deporte",
				"porcentaje_teoria": 30, "porcentaje_practica": 60, "porcentaje_otros": 10,
			},
			wantCode: http.StatusBadRequest, wantErr: "validation_error",
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, decodeError(t, rec).Fields["tipo"], "must be one of")
			},
		},
		{
			name: "create", method: http.MethodPost, path: "/api/disciplinas", token: chiefToken,
			body: map[string]interface{}{
				"nombre": "Judo", "tipo": "Arte Marcial",
				"porcentaje_teoria": 0, "porcentaje_practica": 90, "porcentaje_otros": 10,
			},
			wantCode: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var d discipline.Discipline
				env := decodeEnvelope(t, rec, &d)
				assert.Equal(t, "Disciplina creada exitosamente", env.Message)
				assert.True(t, d.IsActive)
				assert.Equal(t, 0, d.TheoryWeight)
			},
		},
		{
			name: "update breaking the sum", method: http.MethodPut, path: "/api/disciplinas/" + karate.ID, token: chiefToken,
			body: map[string]int{"porcentaje_teoria": 40}, wantCode: http.StatusBadRequest, wantErr: "validation_error",
		},
		{
			name: "update keeping the sum", method: http.MethodPut, path: "/api/disciplinas/" + karate.ID, token: chiefToken,
			body: map[string]interface{}{"porcentaje_teoria": 40, "porcentaje_practica": 50, "activo": false}, wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var d discipline.Discipline
				decodeEnvelope(t, rec, &d)
				assert.Equal(t, 40, d.TheoryWeight)
				assert.Equal(t, 50, d.PracticeWeight)
				assert.False(t, d.IsActive)
			},
		},
		{
			name: "list", path: "/api/disciplinas", token: cmdToken, wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				env := decodeEnvelope(t, rec, nil)
				assert.Equal(t, 2, *env.Total)
			},
		},
		{
			name: "delete forbidden for commander", method: http.MethodDelete, path: "/api/disciplinas/" + karate.ID,
			token: cmdToken, wantCode: http.StatusForbidden, wantErr: "forbidden",
		},
	})
}
