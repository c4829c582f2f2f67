package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/saraquenta/Sistema-EAME/core/auth"
	"github.com/saraquenta/Sistema-EAME/core/discharge"
)

type dischargeApi struct {
	resourceApi[discharge.Discharge, discharge.UpdateDischarge]
	svc *discharge.Service
}

func registerDischargeAPI(g *echo.Group, svc *discharge.Service) {
	api := &dischargeApi{
		resourceApi: resourceApi[discharge.Discharge, discharge.UpdateDischarge]{
			name: "bajas",
			svc:  svc,
			msgs: resourceMessages{
				list:    "Bajas obtenidas exitosamente",
				get:     "Baja obtenida exitosamente",
				created: "Baja registrada exitosamente",
				updated: "Baja actualizada exitosamente",
				deleted: "Baja eliminada exitosamente",
			},
		},
		svc: svc,
	}
	api.register(g, auth.DischargesRead, auth.DischargesWrite, api.create)
}

// create records the authenticated user as the discharge's author.
func (api *dischargeApi) create(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return err
	}
	var data discharge.NewDischarge
	if err := bind(ctx, &data); err != nil {
		return err
	}
	obj, err := api.svc.Create(ctx.Request().Context(), data, usr.ID)
	return api.created(ctx, obj, err)
}
