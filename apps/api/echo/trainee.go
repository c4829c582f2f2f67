package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/saraquenta/Sistema-EAME/core/auth"
	"github.com/saraquenta/Sistema-EAME/core/trainee"
)

type traineeApi struct {
	resourceApi[trainee.Trainee, trainee.UpdateTrainee]
	svc *trainee.Service
}

func registerTraineeAPI(g *echo.Group, svc *trainee.Service) {
	api := &traineeApi{
		resourceApi: resourceApi[trainee.Trainee, trainee.UpdateTrainee]{
			name: "cursantes",
			svc:  svc,
			msgs: resourceMessages{
				list:    "Cursantes obtenidos exitosamente",
				get:     "Cursante obtenido exitosamente",
				created: "Cursante creado exitosamente",
				updated: "Cursante actualizado exitosamente",
				deleted: "Cursante eliminado exitosamente",
			},
		},
		svc: svc,
	}
	api.register(g, auth.TraineesRead, auth.TraineesWrite, api.create)
}

func (api *traineeApi) create(ctx echo.Context) error {
	var data trainee.NewTrainee
	if err := bind(ctx, &data); err != nil {
		return err
	}
	tr, err := api.svc.Create(ctx.Request().Context(), data)
	return api.created(ctx, tr, err)
}
