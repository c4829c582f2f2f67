package echoapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core/auth"
	"github.com/saraquenta/Sistema-EAME/core/report"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type reportApi struct {
	svc *report.Service
}

func registerReportAPI(g *echo.Group, svc *report.Service) {
	api := &reportApi{svc: svc}

	rg := g.Group("/reportes", requirePermission(auth.ReportsRead))
	rg.GET("/estadisticas", api.statistics)
	rg.GET("/bajas-detalladas", api.discharges)
	rg.GET("/meritos-detallados", api.merits)
	rg.GET("/ranking/:year", api.ranking)
	rg.GET("/export", api.export)
}

func (api *reportApi) statistics(ctx echo.Context) error {
	year, err := yearParam(ctx, "year", false)
	if err != nil {
		return err
	}
	scope, err := report.ParseScope(ctx.QueryParam("tally_scope"))
	if err != nil {
		return err
	}
	stats, err := api.svc.Statistics(ctx.Request().Context(), year, scope)
	if err != nil {
		return errors.Wrap(err, "computing statistics")
	}
	return respond(ctx, http.StatusOK, "Estadísticas obtenidas exitosamente", stats)
}

func (api *reportApi) discharges(ctx echo.Context) error {
	rows, err := api.svc.DetailedDischarges(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing detailed discharges")
	}
	return respondList(ctx, "Reporte de bajas obtenido exitosamente", rows, len(rows))
}

func (api *reportApi) merits(ctx echo.Context) error {
	rows, err := api.svc.DetailedMerits(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing detailed merits")
	}
	return respondList(ctx, "Reporte de méritos obtenido exitosamente", rows, len(rows))
}

func (api *reportApi) ranking(ctx echo.Context) error {
	year, err := yearParam(ctx, "year", true)
	if err != nil {
		return err
	}
	rows, err := api.svc.Ranking(ctx.Request().Context(), year)
	if err != nil {
		return errors.Wrap(err, "computing ranking")
	}
	total := len(rows)
	return ctx.JSON(http.StatusOK, RankingResponse{
		Response: Response{
			Message: "Ranking obtenido exitosamente",
			Data:    rows,
			Total:   &total,
		},
		Year: year,
	})
}

func (api *reportApi) export(ctx echo.Context) error {
	year, err := yearParam(ctx, "year", false)
	if err != nil {
		return err
	}
	scope, err := report.ParseScope(ctx.QueryParam("tally_scope"))
	if err != nil {
		return err
	}
	buf, err := api.svc.Export(ctx.Request().Context(), year, scope)
	if err != nil {
		return errors.Wrap(err, "exporting report")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reporte-eame-%s.xlsx"`, year))
	return ctx.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
