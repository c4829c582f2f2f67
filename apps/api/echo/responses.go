package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/saraquenta/Sistema-EAME/core/user"
)

var nowFunc = time.Now // mockable

type (
	// Response is the envelope of every successful response.
	Response struct {
		Message string      `json:"message"`
		Data    interface{} `json:"data,omitempty"`
		Total   *int        `json:"total,omitempty"`
	}

	// ErrorResponse is the envelope of every failed response. Error is a machine-readable kind.
	ErrorResponse struct {
		Error   string            `json:"error"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields,omitempty"`
	}

	LoginResponse struct {
		Message string    `json:"message"`
		Token   string    `json:"token"`
		User    user.User `json:"user"`
	}

	TokenResponse struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}

	RankingResponse struct {
		Response
		Year string `json:"year"`
	}

	healthResponse struct {
		Status    string    `json:"status"`
		Message   string    `json:"message"`
		Timestamp time.Time `json:"timestamp"`
		Build     string    `json:"build"`
	}
)

func respond(ctx echo.Context, code int, msg string, data interface{}) error {
	return ctx.JSON(code, Response{Message: msg, Data: data})
}

func respondList(ctx echo.Context, msg string, data interface{}, total int) error {
	return ctx.JSON(http.StatusOK, Response{Message: msg, Data: data, Total: &total})
}
