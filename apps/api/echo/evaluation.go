package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/saraquenta/Sistema-EAME/core/auth"
	"github.com/saraquenta/Sistema-EAME/core/evaluation"
)

type evaluationApi struct {
	resourceApi[evaluation.Evaluation, evaluation.UpdateEvaluation]
	svc *evaluation.Service
}

func registerEvaluationAPI(g *echo.Group, svc *evaluation.Service) {
	api := &evaluationApi{
		resourceApi: resourceApi[evaluation.Evaluation, evaluation.UpdateEvaluation]{
			name: "evaluaciones",
			svc:  svc,
			msgs: resourceMessages{
				list:    "Evaluaciones obtenidas exitosamente",
				get:     "Evaluación obtenida exitosamente",
				created: "Evaluación creada exitosamente",
				updated: "Evaluación actualizada exitosamente",
				deleted: "Evaluación eliminada exitosamente",
			},
		},
		svc: svc,
	}
	api.register(g, auth.EvaluationsRead, auth.EvaluationsWrite, api.create)
}

func (api *evaluationApi) create(ctx echo.Context) error {
	var data evaluation.NewEvaluation
	if err := bind(ctx, &data); err != nil {
		return err
	}
	e, err := api.svc.Create(ctx.Request().Context(), data)
	return api.created(ctx, e, err)
}
