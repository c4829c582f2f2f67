package echoapi_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/saraquenta/Sistema-EAME/core/report"
	"github.com/saraquenta/Sistema-EAME/testutil"
)

func Test_reportApi(t *testing.T) {
	app := newTestApp(t, testutil.NewSeededEnv(t))
	token := app.token(t, app.commander)

	runHTTPTests(t, app, []httpTest{
		{name: "auth required", path: "/api/reportes/estadisticas", wantCode: http.StatusUnauthorized, wantErr: "unauthorized"},
		{name: "invalid year", path: "/api/reportes/estadisticas?year=24", token: token, wantCode: http.StatusBadRequest, wantErr: "validation_error"},
		{
			name: "invalid tally scope", path: "/api/reportes/estadisticas?year=2024&tally_scope=lol", token: token,
			wantCode: http.StatusBadRequest, wantErr: "validation_error",
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, decodeError(t, rec).Fields, "tally_scope")
			},
		},
		{
			name: "statistics", path: "/api/reportes/estadisticas?year=2024", token: token, wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var stats report.Statistics
				decodeEnvelope(t, rec, &stats)
				assert.Equal(t, "2024", stats.Summary.Period)
				assert.Equal(t, 50, stats.Summary.TotalTrainees)
				assert.Equal(t, 30, stats.Summary.TotalMerits)
				assert.Equal(t, 20, stats.Summary.TotalDischarges)
				assert.Less(t, stats.Summary.ActiveTrainees, 50)
				assert.Len(t, stats.ByDiscipline, 20)
				assert.Len(t, stats.Ranking, 50)
			},
		},
		{
			name: "statistics of an empty cohort", path: "/api/reportes/estadisticas?year=1999&tally_scope=year", token: token,
			wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var stats report.Statistics
				decodeEnvelope(t, rec, &stats)
				assert.Zero(t, stats.Summary.TotalTrainees)
				assert.Zero(t, stats.Summary.TotalMerits)
				assert.Zero(t, stats.Summary.OverallAverage)
				assert.Empty(t, stats.Ranking)
			},
		},
		{
			name: "ranking", path: "/api/reportes/ranking/2024", token: token, wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var ranking []report.RankedTrainee
				env := decodeEnvelope(t, rec, &ranking)
				assert.Equal(t, "2024", env.Year)
				assert.Equal(t, 50, *env.Total)
				assert.True(t, sort.SliceIsSorted(ranking, func(i, j int) bool { return ranking[i].Average > ranking[j].Average }))
			},
		},
		{name: "ranking invalid year", path: "/api/reportes/ranking/abcd", token: token, wantCode: http.StatusBadRequest, wantErr: "validation_error"},
		{name: "ranking signed year", path: "/api/reportes/ranking/+202", token: token, wantCode: http.StatusBadRequest, wantErr: "validation_error"},
		{name: "statistics signed year", path: "/api/reportes/estadisticas?year=%2B202", token: token, wantCode: http.StatusBadRequest, wantErr: "validation_error"},
		{
			name: "detailed discharges", path: "/api/reportes/bajas-detalladas", token: token, wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var rows []map[string]interface{}
				env := decodeEnvelope(t, rec, &rows)
				assert.Equal(t, 20, *env.Total)
				for i := 1; i < len(rows); i++ {
					assert.GreaterOrEqual(t, rows[i-1]["fecha"], rows[i]["fecha"])
				}
				assert.NotEmpty(t, rows[0]["cursante_nombre"])
			},
		},
		{
			name: "detailed merits", path: "/api/reportes/meritos-detallados", token: token, wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var rows []map[string]interface{}
				env := decodeEnvelope(t, rec, &rows)
				assert.Equal(t, 30, *env.Total)
				assert.Contains(t, rows[0], "cursante_ci")
			},
		},
		{
			name: "export", path: "/api/reportes/export?year=2024", token: token, wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
				assert.Contains(t, rec.Header().Get("Content-Disposition"), "reporte-eame-2024.xlsx")

				f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
				require.NoError(t, err)
				defer f.Close()
				assert.Equal(t, []string{"Estadisticas", "Ranking", "Bajas", "Meritos"}, f.GetSheetList())
			},
		},
	})
}

func Test_reportApi_orphans(t *testing.T) {
	app := newTestApp(t, testutil.NewSeededEnv(t))
	adminToken := app.token(t, app.admin)

	rec := app.do(t, http.MethodGet, "/api/reportes/bajas-detalladas", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []map[string]interface{}
	decodeEnvelope(t, rec, &rows)
	traineeID := rows[0]["cursante_id"].(string)

	rec = app.do(t, http.MethodDelete, "/api/cursantes/"+traineeID, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/reportes/bajas-detalladas", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &rows)
	for _, row := range rows {
		if row["cursante_id"] == traineeID {
			assert.Equal(t, "N/A", row["cursante_nombre"])
			assert.Equal(t, "N/A", row["cursante_ci"])
			assert.Equal(t, "N/A", row["cursante_grado"])
		}
	}

	rec = app.do(t, http.MethodGet, "/api/reportes/ranking/2024", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 49, *decodeEnvelope(t, rec, nil).Total)
}
