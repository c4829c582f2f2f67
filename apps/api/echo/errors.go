package echoapi

import (
	"net/http"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/auth"
	"github.com/saraquenta/Sistema-EAME/core/user"
)

// error kinds
const (
	kindValidation   = "validation_error"
	kindNotFound     = "not_found"
	kindConflict     = "conflict"
	kindUnauthorized = "unauthorized"
	kindForbidden    = "forbidden"
	kindRateLimited  = "too_many_requests"
	kindInternal     = "internal_error"
)

var (
	errMissingToken   = echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed token")
	errInvalidToken   = echo.NewHTTPError(http.StatusForbidden, auth.ErrInvalidToken.Error())
	errHTTPForbidden  = echo.NewHTTPError(http.StatusForbidden, auth.ErrPermissionDenied.Error())
	errUsrNotInCtx    = errors.New("user object not found in echo.Context")
	internalErrorText = "internal server error"
)

func kindOf(code int) string {
	switch code {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return kindValidation
	case http.StatusUnauthorized:
		return kindUnauthorized
	case http.StatusForbidden:
		return kindForbidden
	case http.StatusNotFound:
		return kindNotFound
	case http.StatusConflict:
		return kindConflict
	case http.StatusTooManyRequests:
		return kindRateLimited
	case http.StatusInternalServerError:
		return kindInternal
	}
	return strings.ToLower(strings.ReplaceAll(http.StatusText(code), " ", "_"))
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var (
			code = http.StatusInternalServerError
			resp ErrorResponse
		)

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			code = origErr.Code
			resp.Message = httpErrorMessage(origErr)
		case validator.ValidationErrors:
			code = http.StatusBadRequest
			resp.Message = "validation failed"
			resp.Fields = make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				resp.Fields[vErr.Field()] = vErr.Translate(translator)
			}
		case *core.ValidationError:
			code = http.StatusBadRequest
			resp.Message = origErr.Error()
			if len(origErr.Fields) > 0 {
				resp.Fields = make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					resp.Fields[fErr.Field] = fErr.Error
				}
			}
		case *core.NotFoundError:
			code = http.StatusNotFound
			resp.Message = origErr.Error()
		case *core.ConflictError:
			code = http.StatusConflict
			resp.Message = origErr.Error()
		default:
			switch origErr {
			case auth.ErrInvalidCredentials:
				code = http.StatusUnauthorized
			case auth.ErrAccountInactive, auth.ErrInvalidToken, auth.ErrPermissionDenied:
				code = http.StatusForbidden
			}
			resp.Message = origErr.Error()
		}

		if code >= http.StatusInternalServerError {
			// any other error is a server error: details are only logged
			resp.Message = internalErrorText
			args := []interface{}{errors.Wrap(err, internalErrorText)}
			if usr, ok := ctx.Get(contextUserKey).(user.User); ok {
				args = append(args, usr)
			}
			logger.Error(err.Error(), args...)

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}
		resp.Error = kindOf(code)
		if ctx.Echo().Debug && code >= http.StatusInternalServerError {
			resp.Message = err.Error()
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, resp)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}

func httpErrorMessage(herr *echo.HTTPError) string {
	if msg, ok := herr.Message.(string); ok {
		return msg
	}
	return http.StatusText(herr.Code)
}
