package report

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	sheetStats      = "Estadisticas"
	sheetRanking    = "Ranking"
	sheetDischarges = "Bajas"
	sheetMerits     = "Meritos"
)

// Export renders the year's statistics, ranking & detailed listings as an xlsx workbook.
func (svc *Service) Export(ctx context.Context, year string, scope TallyScope) (*bytes.Buffer, error) {
	stats, err := svc.Statistics(ctx, year, scope)
	if err != nil {
		return nil, err
	}
	ds, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}
	return writeWorkbook(stats, detailDischarges(ds), detailMerits(ds))
}

func writeWorkbook(stats Statistics, discharges []DetailedDischarge, merits []DetailedMerit) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	//goland:noinspection GoUnhandledErrorResult
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetStats); err != nil {
		return nil, errors.Wrap(err, "report.writeWorkbook")
	}
	for _, name := range []string{sheetRanking, sheetDischarges, sheetMerits} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, errors.Wrap(err, "report.writeWorkbook")
		}
	}

	sum := stats.Summary
	statsRows := [][]interface{}{
		{"Periodo", sum.Period},
		{"Fecha de generación", sum.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Cursantes activos", sum.ActiveTrainees},
		{"Total cursantes", sum.TotalTrainees},
		{"Total bajas", sum.TotalDischarges},
		{"Total méritos", sum.TotalMerits},
		{"Disciplinas activas", sum.ActiveDisciplines},
		{"Promedio general", sum.OverallAverage},
		{},
		{"Disciplina", "Tipo", "Evaluaciones", "Promedio"},
	}
	for _, d := range stats.ByDiscipline {
		statsRows = append(statsRows, []interface{}{d.Name, d.Type, d.Evaluations, d.Average})
	}

	rankingRows := [][]interface{}{{"Posición", "Nombre completo", "CI", "Grado", "Estado", "Evaluaciones", "Promedio"}}
	for i, r := range stats.Ranking {
		rankingRows = append(rankingRows, []interface{}{i + 1, r.FullName, r.CI, r.Rank, r.Status, r.Evaluations, r.Average})
	}

	dischargeRows := [][]interface{}{{"Fecha", "Cursante", "CI", "Grado", "Motivo", "Observaciones"}}
	for _, d := range discharges {
		dischargeRows = append(dischargeRows, []interface{}{d.Date, d.TraineeName, d.TraineeCI, d.TraineeRank, d.Reason, d.Notes})
	}

	meritRows := [][]interface{}{{"Cursante", "CI", "Grado", "Tipo", "Gestión", "Justificación"}}
	for _, m := range merits {
		meritRows = append(meritRows, []interface{}{m.TraineeName, m.TraineeCI, m.TraineeRank, m.Type, m.Period, m.Justification})
	}

	for sheet, rows := range map[string][][]interface{}{
		sheetStats:      statsRows,
		sheetRanking:    rankingRows,
		sheetDischarges: dischargeRows,
		sheetMerits:     meritRows,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "report.writeWorkbook")
	}
	return buf, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "report.writeRows")
		}
		row := row
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "report.writeRows(%s)", sheet)
		}
	}
	return nil
}
