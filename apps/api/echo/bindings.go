package echoapi

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core"
)

// bind decodes the request body into dst; malformed bodies are validation errors.
func bind(ctx echo.Context, dst interface{}) error {
	if err := ctx.Bind(dst); err != nil {
		var msg string
		if herr, ok := err.(*echo.HTTPError); ok {
			msg = httpErrorMessage(herr)
		} else {
			msg = err.Error()
		}
		return core.NewValidationError(errors.New("invalid request body: " + msg))
	}
	return nil
}

// yearParam reads a 4-digit year from the query param (or path param) `name`, defaulting to the current year.
func yearParam(ctx echo.Context, name string, fromPath bool) (string, error) {
	var year string
	if fromPath {
		year = ctx.Param(name)
	} else {
		year = ctx.QueryParam(name)
	}
	if year == "" {
		return strconv.Itoa(nowFunc().Year()), nil
	}
	if !core.IsYear(year) {
		return "", core.NewValidationError(
			fmt.Errorf("invalid year %q", year),
			core.FieldError{Field: name, Error: "must be a 4-digit year"},
		)
	}
	return year, nil
}
