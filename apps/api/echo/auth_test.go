package echoapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/saraquenta/Sistema-EAME/apps/api/echo"
	"github.com/saraquenta/Sistema-EAME/core/auth"
	"github.com/saraquenta/Sistema-EAME/core/user"
	"github.com/saraquenta/Sistema-EAME/testutil"
)

func TestHealth(t *testing.T) {
	app := setup(t)

	rec := app.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, app.Conf.Build, resp["build"])
	assert.NotEmpty(t, resp["timestamp"])
}

func Test_authApi_login(t *testing.T) {
	app := setup(t)
	testutil.CreateUser(t, app.DB, "Usuario Inactivo", "inactivo", "inactivo@test.bo", testPwd, user.RoleChief, false)

	login := func(email, pwd string) map[string]string {
		return map[string]string{"email": email, "password": pwd}
	}

	runHTTPTests(t, app, []httpTest{
		{
			name: "missing fields", method: http.MethodPost, path: "/api/auth/login", body: map[string]string{},
			wantCode: http.StatusBadRequest, wantErr: "validation_error",
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, map[string]string{
					"email":    "this field is required",
					"password": "this field is required",
				}, decodeError(t, rec).Fields)
			},
		},
		{
			name: "malformed body", method: http.MethodPost, path: "/api/auth/login", body: "{",
			wantCode: http.StatusBadRequest, wantErr: "validation_error",
		},
		{
			name: "unknown email", method: http.MethodPost, path: "/api/auth/login", body: login("nadie@test.bo", testPwd),
			wantCode: http.StatusUnauthorized, wantErr: "unauthorized",
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, auth.ErrInvalidCredentials.Error(), decodeError(t, rec).Message)
			},
		},
		{
			name: "wrong password", method: http.MethodPost, path: "/api/auth/login", body: login("admin@test.bo", "nope"),
			wantCode: http.StatusUnauthorized, wantErr: "unauthorized",
		},
		{
			name: "inactive account", method: http.MethodPost, path: "/api/auth/login", body: login("inactivo@test.bo", testPwd),
			wantCode: http.StatusForbidden, wantErr: "forbidden",
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, auth.ErrAccountInactive.Error(), decodeError(t, rec).Message)
			},
		},
		{
			name: "success", method: http.MethodPost, path: "/api/auth/login", body: login("ADMIN@test.bo", testPwd),
			wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp echoapi.LoginResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, app.admin.ID, resp.User.ID)
				assert.NotNil(t, resp.User.LastLogin)
				assert.NotContains(t, rec.Body.String(), "PasswordHash")

				usr, err := app.Svcs.Auth.Verify(context.Background(), resp.Token)
				require.NoError(t, err)
				assert.Equal(t, app.admin.ID, usr.ID)
			},
		},
	})
}

func Test_authMiddleware(t *testing.T) {
	app := setup(t)

	sign := func(claims auth.Claims, key string) string {
		token, err := jwt.NewWithClaims(auth.SigningMethod, claims).SignedString([]byte(key))
		require.NoError(t, err)
		return token
	}
	expired := sign(auth.Claims{StandardClaims: jwt.StandardClaims{
		Subject:   app.admin.ID,
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}}, app.Conf.SecretKey)
	forged := sign(auth.Claims{StandardClaims: jwt.StandardClaims{
		Subject:   app.admin.ID,
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}}, "not-the-secret")
	ghost := sign(auth.Claims{StandardClaims: jwt.StandardClaims{
		Subject:   "does-not-exist",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}}, app.Conf.SecretKey)

	runHTTPTests(t, app, []httpTest{
		{
			name: "no token", path: "/api/auth/me", wantCode: http.StatusUnauthorized, wantErr: "unauthorized",
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "missing or malformed token", decodeError(t, rec).Message)
			},
		},
		{name: "garbage token", path: "/api/auth/me", token: "lol", wantCode: http.StatusForbidden, wantErr: "forbidden"},
		{name: "expired token", path: "/api/auth/me", token: expired, wantCode: http.StatusForbidden, wantErr: "forbidden"},
		{name: "forged token", path: "/api/auth/me", token: forged, wantCode: http.StatusForbidden, wantErr: "forbidden"},
		{name: "deleted user", path: "/api/auth/me", token: ghost, wantCode: http.StatusForbidden, wantErr: "forbidden"},
		{
			name: "protected entity route", path: "/api/cursantes", wantCode: http.StatusUnauthorized, wantErr: "unauthorized",
		},
		{
			name: "me", path: "/api/auth/me", token: app.token(t, app.chief), wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var usr user.User
				decodeEnvelope(t, rec, &usr)
				assert.Equal(t, app.chief.ID, usr.ID)
				assert.Equal(t, user.RoleChief, usr.Role)
			},
		},
		{
			name: "logout", method: http.MethodPost, path: "/api/auth/logout", token: app.token(t, app.commander),
			wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "Sesión cerrada exitosamente", decodeEnvelope(t, rec, nil).Message)
			},
		},
		{
			name: "refresh", method: http.MethodPost, path: "/api/auth/refresh", token: app.token(t, app.commander),
			wantCode: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp echoapi.TokenResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				usr, err := app.Svcs.Auth.Verify(context.Background(), resp.Token)
				require.NoError(t, err)
				assert.Equal(t, app.commander.ID, usr.ID)
			},
		},
	})
}

func Test_authMiddleware_deactivatedUser(t *testing.T) {
	app := setup(t)
	token := app.token(t, app.chief)

	rec := app.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodPut, "/api/usuarios/"+app.chief.ID+"/estado", app.token(t, app.admin), map[string]bool{"activo": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, auth.ErrInvalidToken.Error(), decodeError(t, rec).Message)
}

func TestRateLimit(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Conf.Server.RateLimit = 2
	env.Conf.Server.RateLimitWindow = 15 * time.Minute
	app := &testApp{Env: env, server: newServer(env)}

	for i := 0; i < 2; i++ {
		rec := app.do(t, http.MethodGet, "/api/health", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := app.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "too_many_requests", decodeError(t, rec).Error)
}
