package trainee

import (
	"time"

	"github.com/saraquenta/Sistema-EAME/core"
)

// Statuses
const (
	StatusActive     = "activo"
	StatusDischarged = "baja"
	StatusSuspended  = "suspendido"
)

var (
	Statuses = []string{StatusActive, StatusDischarged, StatusSuspended}

	Ranks = []string{
		"Soldado", "Cabo", "Sargento Segundo", "Sargento Primero", "Sargento Inicial", "Sargento Mayor",
		"Subteniente", "Teniente", "Capitán", "Mayor", "Teniente Coronel", "Coronel",
	}
)

// Trainee (cursante) is a student enrolled in the school.
type Trainee struct {
	ID         string    `json:"id"`
	FullName   string    `json:"nombre_completo" validate:"required,alphaspace"`
	CI         string    `json:"ci" validate:"required,digits"`
	BirthDate  string    `json:"fecha_nacimiento" validate:"required,date"`
	Rank       string    `json:"grado_militar" validate:"required,rank"`
	Status     string    `json:"estado" validate:"required,trainee_status"`
	EnrolledOn string    `json:"fecha_ingreso" validate:"required,date"`
	Cohort     string    `json:"curso_anual" validate:"required,year"`
	Notes      string    `json:"observaciones"`
	CreatedAt  time.Time `json:"creado_en"`
}

// NewTrainee contains information needed to create a new Trainee.
type NewTrainee struct {
	FullName   string `json:"nombre_completo"`
	CI         string `json:"ci"`
	BirthDate  string `json:"fecha_nacimiento"`
	Rank       string `json:"grado_militar"`
	Status     string `json:"estado"`
	EnrolledOn string `json:"fecha_ingreso"`
	Cohort     string `json:"curso_anual"`
	Notes      string `json:"observaciones"`
}

func (nt NewTrainee) toTrainee() Trainee {
	status := core.CleanString(nt.Status)
	if status == "" {
		status = StatusActive
	}
	return Trainee{
		FullName:   core.CleanString(nt.FullName),
		CI:         core.CleanString(nt.CI),
		BirthDate:  core.CleanString(nt.BirthDate),
		Rank:       core.CleanString(nt.Rank),
		Status:     status,
		EnrolledOn: core.CleanString(nt.EnrolledOn),
		Cohort:     core.CleanString(nt.Cohort),
		Notes:      core.CleanString(nt.Notes),
	}
}

// UpdateTrainee defines what information may be provided to modify an existing Trainee.
// Nil fields are left untouched.
type UpdateTrainee struct {
	FullName   *string `json:"nombre_completo"`
	CI         *string `json:"ci"`
	BirthDate  *string `json:"fecha_nacimiento"`
	Rank       *string `json:"grado_militar"`
	Status     *string `json:"estado"`
	EnrolledOn *string `json:"fecha_ingreso"`
	Cohort     *string `json:"curso_anual"`
	Notes      *string `json:"observaciones"`
}

// merge applies the set fields of ut onto orig.
func (ut UpdateTrainee) merge(orig Trainee) Trainee {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = core.CleanString(*src)
		}
	}
	set(&orig.FullName, ut.FullName)
	set(&orig.CI, ut.CI)
	set(&orig.BirthDate, ut.BirthDate)
	set(&orig.Rank, ut.Rank)
	set(&orig.Status, ut.Status)
	set(&orig.EnrolledOn, ut.EnrolledOn)
	set(&orig.Cohort, ut.Cohort)
	set(&orig.Notes, ut.Notes)
	return orig
}
