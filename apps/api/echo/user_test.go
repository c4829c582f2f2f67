package echoapi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saraquenta/Sistema-EAME/core/user"
)

func Test_userApi(t *testing.T) {
	app := setup(t)
	adminToken := app.token(t, app.admin)

	runHTTPTests(t, app, []httpTest{
		{name: "list forbidden for chief", path: "/api/usuarios", token: app.token(t, app.chief), wantCode: http.StatusForbidden, wantErr: "forbidden"},
		{name: "list forbidden for commander", path: "/api/usuarios", token: app.token(t, app.commander), wantCode: http.StatusForbidden, wantErr: "forbidden"},
		{
			name: "list", path: "/api/usuarios", token: adminToken, wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var users []user.User
				env := decodeEnvelope(t, rec, &users)
				assert.Equal(t, 3, *env.Total)
				assert.Equal(t, app.admin.ID, users[0].ID)
				assert.NotContains(t, rec.Body.String(), "password")
			},
		},
		{
			name: "status forbidden for chief", method: http.MethodPut, path: "/api/usuarios/" + app.commander.ID + "/estado",
			token: app.token(t, app.chief), body: map[string]bool{"activo": false}, wantCode: http.StatusForbidden, wantErr: "forbidden",
		},
		{
			name: "status missing", method: http.MethodPut, path: "/api/usuarios/" + app.commander.ID + "/estado",
			token: adminToken, body: map[string]string{}, wantCode: http.StatusBadRequest, wantErr: "validation_error",
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, map[string]string{"activo": "this field is required"}, decodeError(t, rec).Fields)
			},
		},
		{
			name: "status unknown user", method: http.MethodPut, path: "/api/usuarios/lol/estado",
			token: adminToken, body: map[string]bool{"activo": false}, wantCode: http.StatusNotFound, wantErr: "not_found",
		},
		{
			name: "deactivate", method: http.MethodPut, path: "/api/usuarios/" + app.commander.ID + "/estado",
			token: adminToken, body: map[string]bool{"activo": false}, wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var usr user.User
				decodeEnvelope(t, rec, &usr)
				assert.False(t, usr.IsActive)
			},
		},
		{
			name: "get", path: "/api/usuarios/" + app.commander.ID, token: adminToken, wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var usr user.User
				decodeEnvelope(t, rec, &usr)
				assert.False(t, usr.IsActive)
			},
		},
	})
}

func Test_userApi_create(t *testing.T) {
	app := setup(t)
	adminToken := app.token(t, app.admin)
	newUserBody := func(email, pwd string) map[string]string {
		return map[string]string{
			"nombre_completo":  "Instructor Uno",
			"username":         "instructor",
			"email":            email,
			"role":             user.RoleChief,
			"password":         pwd,
			"password_confirm": pwd,
		}
	}

	runHTTPTests(t, app, []httpTest{
		{
			name: "forbidden for chief", method: http.MethodPost, path: "/api/usuarios", token: app.token(t, app.chief),
			body: newUserBody("instructor@eame.mil.bo", "Kx9#mTq2!vLp"), wantCode: http.StatusForbidden, wantErr: "forbidden",
		},
		{
			name: "weak password", method: http.MethodPost, path: "/api/usuarios", token: adminToken,
			body: newUserBody("instructor@eame.mil.bo", "12345678"), wantCode: http.StatusBadRequest, wantErr: "validation_error",
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, map[string]string{"password": "password cannot be entirely numeric"}, decodeError(t, rec).Fields)
			},
		},
		{
			name: "email taken", method: http.MethodPost, path: "/api/usuarios", token: adminToken,
			body: newUserBody(app.chief.Email, "Kx9#mTq2!vLp"), wantCode: http.StatusConflict, wantErr: "conflict",
		},
		{
			name: "create", method: http.MethodPost, path: "/api/usuarios", token: adminToken,
			body: newUserBody(" Instructor@EAME.mil.bo ", "Kx9#mTq2!vLp"), wantCode: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var usr user.User
				env := decodeEnvelope(t, rec, &usr)
				assert.Equal(t, "Usuario creado exitosamente", env.Message)
				assert.Equal(t, "instructor@eame.mil.bo", usr.Email)
				assert.True(t, usr.IsActive)
				assert.NotContains(t, rec.Body.String(), "password")
			},
		},
		{
			name: "created user can log in", method: http.MethodPost, path: "/api/auth/login",
			body: map[string]string{"email": "instructor@eame.mil.bo", "password": "Kx9#mTq2!vLp"}, wantCode: http.StatusOK,
		},
		{
			name: "listed", path: "/api/usuarios", token: adminToken, wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var users []user.User
				env := decodeEnvelope(t, rec, &users)
				assert.Equal(t, 4, *env.Total)
				assert.Equal(t, "instructor", users[3].Username)
			},
		},
	})
}
