package activity

import "github.com/saraquenta/Sistema-EAME/core"

var Types = []string{"Entrenamiento", "Competencia", "Examen", "Seminario", "Práctica", "Demostración"}

// Activity (actividad) is a training event attended by a Trainee.
type Activity struct {
	ID         string `json:"id"`
	TraineeID  string `json:"cursante_id" validate:"required"`
	Type       string `json:"tipo_actividad" validate:"required,activity_type"`
	Discipline string `json:"disciplina" validate:"required"`
	Date       string `json:"fecha" validate:"required,date"`
	Duration   string `json:"duracion" validate:"required"`
	Notes      string `json:"observaciones" validate:"required,min=10"`
	UserID     string `json:"usuario_id"`
	Period     string `json:"periodo_id" validate:"required,year"`
}

// NewActivity contains information needed to record an Activity.
type NewActivity struct {
	TraineeID  string `json:"cursante_id"`
	Type       string `json:"tipo_actividad"`
	Discipline string `json:"disciplina"`
	Date       string `json:"fecha"`
	Duration   string `json:"duracion"`
	Notes      string `json:"observaciones"`
	Period     string `json:"periodo_id"`
}

func (na NewActivity) toActivity(userID string) Activity {
	return Activity{
		TraineeID:  core.CleanString(na.TraineeID),
		Type:       core.CleanString(na.Type),
		Discipline: core.CleanString(na.Discipline),
		Date:       core.CleanString(na.Date),
		Duration:   core.CleanString(na.Duration),
		Notes:      core.CleanString(na.Notes),
		UserID:     userID,
		Period:     core.CleanString(na.Period),
	}
}

// UpdateActivity defines what information may be provided to modify an existing Activity.
type UpdateActivity struct {
	TraineeID  *string `json:"cursante_id"`
	Type       *string `json:"tipo_actividad"`
	Discipline *string `json:"disciplina"`
	Date       *string `json:"fecha"`
	Duration   *string `json:"duracion"`
	Notes      *string `json:"observaciones"`
	Period     *string `json:"periodo_id"`
}

func (ua UpdateActivity) merge(orig Activity) Activity {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = core.CleanString(*src)
		}
	}
	set(&orig.TraineeID, ua.TraineeID)
	set(&orig.Type, ua.Type)
	set(&orig.Discipline, ua.Discipline)
	set(&orig.Date, ua.Date)
	set(&orig.Duration, ua.Duration)
	set(&orig.Notes, ua.Notes)
	set(&orig.Period, ua.Period)
	return orig
}
