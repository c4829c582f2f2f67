package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core/auth"
)

type (
	// crudService is the part of a record service shared by every resource; create differs per resource.
	crudService[T, U any] interface {
		QueryAll(ctx context.Context) ([]T, error)
		Get(ctx context.Context, id string) (T, error)
		Update(ctx context.Context, id string, data U) (T, error)
		Delete(ctx context.Context, id string) (T, error)
	}

	resourceMessages struct {
		list    string
		get     string
		created string
		updated string
		deleted string
	}

	// resourceApi serves list, retrieve, update & destroy of records of type T updated with U.
	resourceApi[T, U any] struct {
		name string
		svc  crudService[T, U]
		msgs resourceMessages
	}
)

func (api resourceApi[T, U]) register(g *echo.Group, read, write auth.Operation, create echo.HandlerFunc) {
	rg := g.Group("/" + api.name)
	rg.GET("", api.query, requirePermission(read))
	rg.POST("", create, requirePermission(write))
	rg.GET("/:id", api.retrieve, requirePermission(read))
	rg.PUT("/:id", api.update, requirePermission(write))
	rg.DELETE("/:id", api.destroy, requirePermission(write))
}

func (api resourceApi[T, U]) query(ctx echo.Context) error {
	objs, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrapf(err, "querying %s", api.name)
	}
	if objs == nil {
		objs = []T{}
	}
	return respondList(ctx, api.msgs.list, objs, len(objs))
}

func (api resourceApi[T, U]) retrieve(ctx echo.Context) error {
	obj, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrapf(err, "retrieving %s", api.name)
	}
	return respond(ctx, http.StatusOK, api.msgs.get, obj)
}

func (api resourceApi[T, U]) update(ctx echo.Context) error {
	var data U
	if err := bind(ctx, &data); err != nil {
		return err
	}
	obj, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrapf(err, "updating %s", api.name)
	}
	return respond(ctx, http.StatusOK, api.msgs.updated, obj)
}

func (api resourceApi[T, U]) destroy(ctx echo.Context) error {
	obj, err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrapf(err, "deleting %s", api.name)
	}
	return respond(ctx, http.StatusOK, api.msgs.deleted, obj)
}

// created responds 201 with the new record, or wraps err.
func (api resourceApi[T, U]) created(ctx echo.Context, obj T, err error) error {
	if err != nil {
		return errors.Wrapf(err, "creating %s", api.name)
	}
	return respond(ctx, http.StatusCreated, api.msgs.created, obj)
}
