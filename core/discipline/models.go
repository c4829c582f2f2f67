package discipline

import (
	"time"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/grading"
)

var Types = []string{"Arte Marcial", "Defensa Personal", "Combate", "Acondicionamiento Físico", "Técnicas Especiales"}

// Discipline (disciplina) is a trainable subject with a fixed grading weight profile.
type Discipline struct {
	ID             string    `json:"id"`
	Name           string    `json:"nombre" validate:"required"`
	Type           string    `json:"tipo" validate:"required,discipline_type"`
	TheoryWeight   int       `json:"porcentaje_teoria" validate:"min=0,max=100"`
	PracticeWeight int       `json:"porcentaje_practica" validate:"min=0,max=100"`
	OtherWeight    int       `json:"porcentaje_otros" validate:"min=0,max=100"`
	IsActive       bool      `json:"activo"`
	CreatedAt      time.Time `json:"creado_en"`
}

// Weights returns the Discipline's grading weight profile.
func (d Discipline) Weights() grading.Weights {
	return grading.Weights{Theory: d.TheoryWeight, Practice: d.PracticeWeight, Other: d.OtherWeight}
}

// NewDiscipline contains information needed to create a new Discipline.
type NewDiscipline struct {
	Name           string `json:"nombre"`
	Type           string `json:"tipo"`
	TheoryWeight   *int   `json:"porcentaje_teoria" validate:"required"`
	PracticeWeight *int   `json:"porcentaje_practica" validate:"required"`
	OtherWeight    *int   `json:"porcentaje_otros" validate:"required"`
	IsActive       *bool  `json:"activo"`
}

func (nd NewDiscipline) toDiscipline() Discipline {
	d := Discipline{
		Name:     core.CleanString(nd.Name),
		Type:     core.CleanString(nd.Type),
		IsActive: true,
	}
	if nd.TheoryWeight != nil {
		d.TheoryWeight = *nd.TheoryWeight
	}
	if nd.PracticeWeight != nil {
		d.PracticeWeight = *nd.PracticeWeight
	}
	if nd.OtherWeight != nil {
		d.OtherWeight = *nd.OtherWeight
	}
	if nd.IsActive != nil {
		d.IsActive = *nd.IsActive
	}
	return d
}

// UpdateDiscipline defines what information may be provided to modify an existing Discipline.
// Nil fields are left untouched.
type UpdateDiscipline struct {
	Name           *string `json:"nombre"`
	Type           *string `json:"tipo"`
	TheoryWeight   *int    `json:"porcentaje_teoria"`
	PracticeWeight *int    `json:"porcentaje_practica"`
	OtherWeight    *int    `json:"porcentaje_otros"`
	IsActive       *bool   `json:"activo"`
}

func (ud UpdateDiscipline) merge(orig Discipline) Discipline {
	if ud.Name != nil {
		orig.Name = core.CleanString(*ud.Name)
	}
	if ud.Type != nil {
		orig.Type = core.CleanString(*ud.Type)
	}
	if ud.TheoryWeight != nil {
		orig.TheoryWeight = *ud.TheoryWeight
	}
	if ud.PracticeWeight != nil {
		orig.PracticeWeight = *ud.PracticeWeight
	}
	if ud.OtherWeight != nil {
		orig.OtherWeight = *ud.OtherWeight
	}
	if ud.IsActive != nil {
		orig.IsActive = *ud.IsActive
	}
	return orig
}
