package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/saraquenta/Sistema-EAME/core/auth"
	"github.com/saraquenta/Sistema-EAME/core/merit"
)

type meritApi struct {
	resourceApi[merit.Merit, merit.UpdateMerit]
	svc *merit.Service
}

func registerMeritAPI(g *echo.Group, svc *merit.Service) {
	api := &meritApi{
		resourceApi: resourceApi[merit.Merit, merit.UpdateMerit]{
			name: "meritos",
			svc:  svc,
			msgs: resourceMessages{
				list:    "Méritos obtenidos exitosamente",
				get:     "Mérito obtenido exitosamente",
				created: "Mérito registrado exitosamente",
				updated: "Mérito actualizado exitosamente",
				deleted: "Mérito eliminado exitosamente",
			},
		},
		svc: svc,
	}
	api.register(g, auth.MeritsRead, auth.MeritsWrite, api.create)
}

// create records the authenticated user as the merit's author.
func (api *meritApi) create(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return err
	}
	var data merit.NewMerit
	if err := bind(ctx, &data); err != nil {
		return err
	}
	obj, err := api.svc.Create(ctx.Request().Context(), data, usr.ID)
	return api.created(ctx, obj, err)
}
