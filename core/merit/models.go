package merit

import "github.com/saraquenta/Sistema-EAME/core"

var Types = []string{"Excelencia Académica", "Liderazgo", "Disciplina", "Compañerismo", "Mejora Continua", "Dedicación"}

// Merit (mérito) is a positive recognition granted to a Trainee.
type Merit struct {
	ID            string `json:"id"`
	TraineeID     string `json:"cursante_id" validate:"required"`
	Type          string `json:"tipo" validate:"required,merit_type"`
	Period        string `json:"gestion" validate:"required,year"`
	Justification string `json:"justificacion" validate:"required,min=10"`
	UserID        string `json:"usuario_id"`
}

// NewMerit contains information needed to grant a Merit.
type NewMerit struct {
	TraineeID     string `json:"cursante_id"`
	Type          string `json:"tipo"`
	Period        string `json:"gestion"`
	Justification string `json:"justificacion"`
}

func (nm NewMerit) toMerit(userID string) Merit {
	return Merit{
		TraineeID:     core.CleanString(nm.TraineeID),
		Type:          core.CleanString(nm.Type),
		Period:        core.CleanString(nm.Period),
		Justification: core.CleanString(nm.Justification),
		UserID:        userID,
	}
}

// UpdateMerit defines what information may be provided to modify an existing Merit.
type UpdateMerit struct {
	TraineeID     *string `json:"cursante_id"`
	Type          *string `json:"tipo"`
	Period        *string `json:"gestion"`
	Justification *string `json:"justificacion"`
}

func (um UpdateMerit) merge(orig Merit) Merit {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = core.CleanString(*src)
		}
	}
	set(&orig.TraineeID, um.TraineeID)
	set(&orig.Type, um.Type)
	set(&orig.Period, um.Period)
	set(&orig.Justification, um.Justification)
	return orig
}
