package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/saraquenta/Sistema-EAME/core/auth"
	"github.com/saraquenta/Sistema-EAME/core/discipline"
)

type disciplineApi struct {
	resourceApi[discipline.Discipline, discipline.UpdateDiscipline]
	svc *discipline.Service
}

func registerDisciplineAPI(g *echo.Group, svc *discipline.Service) {
	api := &disciplineApi{
		resourceApi: resourceApi[discipline.Discipline, discipline.UpdateDiscipline]{
			name: "disciplinas",
			svc:  svc,
			msgs: resourceMessages{
				list:    "Disciplinas obtenidas exitosamente",
				get:     "Disciplina obtenida exitosamente",
				created: "Disciplina creada exitosamente",
				updated: "Disciplina actualizada exitosamente",
				deleted: "Disciplina eliminada exitosamente",
			},
		},
		svc: svc,
	}
	api.register(g, auth.DisciplinesRead, auth.DisciplinesWrite, api.create)
}

func (api *disciplineApi) create(ctx echo.Context) error {
	var data discipline.NewDiscipline
	if err := bind(ctx, &data); err != nil {
		return err
	}
	d, err := api.svc.Create(ctx.Request().Context(), data)
	return api.created(ctx, d, err)
}
