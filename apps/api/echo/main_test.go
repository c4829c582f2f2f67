package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/saraquenta/Sistema-EAME/apps/api/echo"
	"github.com/saraquenta/Sistema-EAME/core/user"
	"github.com/saraquenta/Sistema-EAME/testutil"
)

const testPwd = "Tr4ining!Sched"

type testApp struct {
	*testutil.Env
	server *echoapi.Server

	admin, chief, commander user.User
}

// setup returns a server over a fresh store holding one active user per role.
func setup(t *testing.T) *testApp {
	return newTestApp(t, testutil.NewEnv(t))
}

func newTestApp(t *testing.T, env *testutil.Env) *testApp {
	app := &testApp{Env: env, server: newServer(env)}
	app.admin = testutil.CreateUser(t, env.DB, "Admin Prueba", "admin_prueba", "admin@test.bo", testPwd, user.RoleAdmin, true)
	app.chief = testutil.CreateUser(t, env.DB, "Jefe Prueba", "jefe_prueba", "jefe@test.bo", testPwd, user.RoleChief, true)
	app.commander = testutil.CreateUser(t, env.DB, "Comandante Prueba", "cmd_prueba", "cmd@test.bo", testPwd, user.RoleCommander, true)
	return app
}

func newServer(env *testutil.Env) *echoapi.Server {
	svcs := env.Svcs
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:          env.Conf,
		Logger:        env.Logger,
		Validate:      svcs.Validate,
		Translator:    svcs.Translator,
		AuthSvc:       svcs.Auth,
		UserSvc:       svcs.User,
		TraineeSvc:    svcs.Trainee,
		DisciplineSvc: svcs.Discipline,
		EvaluationSvc: svcs.Evaluation,
		MeritSvc:      svcs.Merit,
		DischargeSvc:  svcs.Discharge,
		ActivitySvc:   svcs.Activity,
		ReportSvc:     svcs.Report,
	})
}

func (app *testApp) token(t *testing.T, usr user.User) string {
	token, err := app.Svcs.Auth.Issue(usr)
	if err != nil {
		t.Fatalf("token() failed: %v", err)
	}
	return token
}

// do sends body (marshalled unless it is a string or []byte) to the server.
func (app *testApp) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	case []byte:
		buf.Write(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.server.ServeHTTP(rec, req)
	return rec
}

// envelope is a decoded echoapi.Response with its data kept raw.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Total   *int            `json:"total"`
	Year    string          `json:"year"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data), string(env.Data))
	}
	return env
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) echoapi.ErrorResponse {
	var resp echoapi.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

// httpTest is one request and its expected status; check inspects successful bodies further.
type httpTest struct {
	name     string
	method   string
	path     string
	body     interface{}
	token    string
	wantCode int
	wantErr  string // error kind
	check    func(t *testing.T, rec *httptest.ResponseRecorder)
}

func runHTTPTests(t *testing.T, app *testApp, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			rec := app.do(t, method, tt.path, tt.token, tt.body)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeError(t, rec).Error)
			}
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}
