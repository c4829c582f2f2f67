package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/saraquenta/Sistema-EAME/core/auth"
)

// requirePermission lets the request through only if the context user's role may perform op.
func requirePermission(op auth.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			usr, err := getContextUser(ctx)
			if err != nil {
				return errMissingToken
			}
			if !auth.Allow(usr.Role, op) {
				return errHTTPForbidden
			}
			return next(ctx)
		}
	}
}
