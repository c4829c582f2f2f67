package report

import (
	"fmt"
	"time"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/discharge"
	"github.com/saraquenta/Sistema-EAME/core/merit"
	"github.com/saraquenta/Sistema-EAME/core/trainee"
)

// notAvailable stands in for the fields of a Trainee that no longer exists.
const notAvailable = "N/A"

// TallyScope selects which merits & discharges are counted by Statistics.
type TallyScope string

const (
	// ScopeAll counts every record regardless of the requested year.
	ScopeAll TallyScope = "all"
	// ScopeYear only counts records whose Trainee belongs to the requested cohort.
	ScopeYear TallyScope = "year"
)

func ParseScope(s string) (TallyScope, error) {
	switch TallyScope(s) {
	case "", ScopeAll:
		return ScopeAll, nil
	case ScopeYear:
		return ScopeYear, nil
	}
	return "", core.NewValidationError(
		fmt.Errorf("invalid tally_scope %q", s),
		core.FieldError{Field: "tally_scope", Error: "must be one of: all, year"},
	)
}

type (
	Summary struct {
		Period            string    `json:"periodo"`
		GeneratedAt       time.Time `json:"fecha_generacion"`
		ActiveTrainees    int       `json:"cursantes_activos"`
		TotalTrainees     int       `json:"total_cursantes"`
		TotalDischarges   int       `json:"total_bajas"`
		TotalMerits       int       `json:"total_meritos"`
		ActiveDisciplines int       `json:"disciplinas_activas"`
		OverallAverage    float64   `json:"promedio_general"`
	}

	DisciplineStats struct {
		ID          string  `json:"id"`
		Name        string  `json:"nombre"`
		Type        string  `json:"tipo"`
		Evaluations int     `json:"evaluaciones"`
		Average     float64 `json:"promedio"`
	}

	RankedTrainee struct {
		trainee.Trainee
		Average     float64 `json:"promedio"`
		Evaluations int     `json:"evaluaciones"`
	}

	Statistics struct {
		Summary            Summary           `json:"estadisticas"`
		MeritsByType       map[string]int    `json:"meritosPorTipo"`
		DischargesByReason map[string]int    `json:"bajasPorMotivo"`
		ByDiscipline       []DisciplineStats `json:"evaluacionesPorDisciplina"`
		Ranking            []RankedTrainee   `json:"rankingCursantes"`
	}

	traineeRef struct {
		TraineeName string `json:"cursante_nombre"`
		TraineeCI   string `json:"cursante_ci"`
		TraineeRank string `json:"cursante_grado"`
	}

	DetailedDischarge struct {
		discharge.Discharge
		traineeRef
	}

	DetailedMerit struct {
		merit.Merit
		traineeRef
	}
)

func newTraineeRef(tr trainee.Trainee, ok bool) traineeRef {
	if !ok {
		return traineeRef{TraineeName: notAvailable, TraineeCI: notAvailable, TraineeRank: notAvailable}
	}
	return traineeRef{TraineeName: tr.FullName, TraineeCI: tr.CI, TraineeRank: tr.Rank}
}
