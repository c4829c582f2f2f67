package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/saraquenta/Sistema-EAME/core/activity"
	"github.com/saraquenta/Sistema-EAME/core/auth"
)

type activityApi struct {
	resourceApi[activity.Activity, activity.UpdateActivity]
	svc *activity.Service
}

func registerActivityAPI(g *echo.Group, svc *activity.Service) {
	api := &activityApi{
		resourceApi: resourceApi[activity.Activity, activity.UpdateActivity]{
			name: "actividades",
			svc:  svc,
			msgs: resourceMessages{
				list:    "Actividades obtenidas exitosamente",
				get:     "Actividad obtenida exitosamente",
				created: "Actividad registrada exitosamente",
				updated: "Actividad actualizada exitosamente",
				deleted: "Actividad eliminada exitosamente",
			},
		},
		svc: svc,
	}
	api.register(g, auth.ActivitiesRead, auth.ActivitiesWrite, api.create)
}

// create records the authenticated user as the activity's author.
func (api *activityApi) create(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return err
	}
	var data activity.NewActivity
	if err := bind(ctx, &data); err != nil {
		return err
	}
	obj, err := api.svc.Create(ctx.Request().Context(), data, usr.ID)
	return api.created(ctx, obj, err)
}
