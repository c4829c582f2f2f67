package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core/auth"
	"github.com/saraquenta/Sistema-EAME/core/user"
)

type userApi struct {
	svc *user.Service
}

func registerUserAPI(g *echo.Group, svc *user.Service) {
	api := &userApi{svc: svc}

	ug := g.Group("/usuarios")
	ug.GET("", api.query, requirePermission(auth.UsersRead))
	ug.POST("", api.create, requirePermission(auth.UsersWrite))
	ug.GET("/:id", api.retrieve, requirePermission(auth.UsersRead))
	ug.PUT("/:id/estado", api.setStatus, requirePermission(auth.UsersWrite))
}

func (api *userApi) query(ctx echo.Context) error {
	users, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	if users == nil {
		users = []user.User{}
	}
	return respondList(ctx, "Usuarios obtenidos exitosamente", users, len(users))
}

func (api *userApi) create(ctx echo.Context) error {
	var data user.NewUser
	if err := bind(ctx, &data); err != nil {
		return err
	}
	usr, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating user")
	}
	return respond(ctx, http.StatusCreated, "Usuario creado exitosamente", usr)
}

func (api *userApi) retrieve(ctx echo.Context) error {
	usr, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "retrieving user")
	}
	return respond(ctx, http.StatusOK, "Usuario obtenido exitosamente", usr)
}

// setStatus (de)activates a user. Tokens of a deactivated user stop resolving on their next request.
func (api *userApi) setStatus(ctx echo.Context) error {
	var data user.UpdateStatus
	if err := bind(ctx, &data); err != nil {
		return err
	}
	usr, err := api.svc.SetActive(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating user status")
	}
	return respond(ctx, http.StatusOK, "Estado de usuario actualizado exitosamente", usr)
}
