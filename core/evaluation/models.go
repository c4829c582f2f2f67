package evaluation

import (
	"time"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/grading"
)

// Evaluation (evaluación) is a scored assessment of one Trainee in one Discipline for one period.
type Evaluation struct {
	ID           string    `json:"id"`
	TraineeID    string    `json:"cursante_id" validate:"required"`
	DisciplineID string    `json:"disciplina_id" validate:"required"`
	Period       string    `json:"periodo_id" validate:"required,year"`
	Theory       float64   `json:"teoria" validate:"min=0,max=100"`
	Practice     float64   `json:"practica" validate:"min=0,max=100"`
	Attendance   float64   `json:"asistencia" validate:"min=0,max=100"`
	Notebook     float64   `json:"cuaderno" validate:"min=0,max=100"`
	FinalGrade   float64   `json:"nota_final"`
	Date         string    `json:"fecha_eval" validate:"required,date"`
	Notes        string    `json:"observaciones"`
	CreatedAt    time.Time `json:"creado_en"`
}

// Scores returns the four raw sub-scores.
func (e Evaluation) Scores() grading.Scores {
	return grading.Scores{Theory: e.Theory, Practice: e.Practice, Attendance: e.Attendance, Notebook: e.Notebook}
}

// NewEvaluation contains information needed to create a new Evaluation.
// A client supplied nota_final is never read.
type NewEvaluation struct {
	TraineeID    string   `json:"cursante_id"`
	DisciplineID string   `json:"disciplina_id"`
	Period       string   `json:"periodo_id"`
	Theory       *float64 `json:"teoria" validate:"required"`
	Practice     *float64 `json:"practica" validate:"required"`
	Attendance   *float64 `json:"asistencia" validate:"required"`
	Notebook     *float64 `json:"cuaderno" validate:"required"`
	Date         string   `json:"fecha_eval"`
	Notes        string   `json:"observaciones"`
}

func (ne NewEvaluation) toEvaluation() Evaluation {
	val := func(f *float64) float64 {
		if f == nil {
			return 0
		}
		return *f
	}
	return Evaluation{
		TraineeID:    core.CleanString(ne.TraineeID),
		DisciplineID: core.CleanString(ne.DisciplineID),
		Period:       core.CleanString(ne.Period),
		Theory:       val(ne.Theory),
		Practice:     val(ne.Practice),
		Attendance:   val(ne.Attendance),
		Notebook:     val(ne.Notebook),
		Date:         core.CleanString(ne.Date),
		Notes:        core.CleanString(ne.Notes),
	}
}

// UpdateEvaluation defines what information may be provided to modify an existing Evaluation.
// Nil fields are left untouched.
type UpdateEvaluation struct {
	TraineeID    *string  `json:"cursante_id"`
	DisciplineID *string  `json:"disciplina_id"`
	Period       *string  `json:"periodo_id"`
	Theory       *float64 `json:"teoria"`
	Practice     *float64 `json:"practica"`
	Attendance   *float64 `json:"asistencia"`
	Notebook     *float64 `json:"cuaderno"`
	Date         *string  `json:"fecha_eval"`
	Notes        *string  `json:"observaciones"`
}

// touchesGrade reports whether the update changes an input of the final grade.
func (ue UpdateEvaluation) touchesGrade() bool {
	return ue.Theory != nil || ue.Practice != nil || ue.Attendance != nil || ue.Notebook != nil || ue.DisciplineID != nil
}

func (ue UpdateEvaluation) merge(orig Evaluation) Evaluation {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = core.CleanString(*src)
		}
	}
	setNum := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&orig.TraineeID, ue.TraineeID)
	setStr(&orig.DisciplineID, ue.DisciplineID)
	setStr(&orig.Period, ue.Period)
	setNum(&orig.Theory, ue.Theory)
	setNum(&orig.Practice, ue.Practice)
	setNum(&orig.Attendance, ue.Attendance)
	setNum(&orig.Notebook, ue.Notebook)
	setStr(&orig.Date, ue.Date)
	setStr(&orig.Notes, ue.Notes)
	return orig
}
