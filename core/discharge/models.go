package discharge

import "github.com/saraquenta/Sistema-EAME/core"

var Reasons = []string{"Bajo Rendimiento", "Problemas Disciplinarios", "Motivos Personales", "Problemas de Salud", "Traslado", "Otros"}

// Discharge (baja) ends a Trainee's active status.
type Discharge struct {
	ID        string `json:"id"`
	TraineeID string `json:"cursante_id" validate:"required"`
	Reason    string `json:"motivo" validate:"required,discharge_reason"`
	Date      string `json:"fecha" validate:"required,date"`
	Notes     string `json:"observaciones" validate:"required,min=10"`
	UserID    string `json:"usuario_id"`
}

// NewDischarge contains information needed to record a Discharge.
type NewDischarge struct {
	TraineeID string `json:"cursante_id"`
	Reason    string `json:"motivo"`
	Date      string `json:"fecha"`
	Notes     string `json:"observaciones"`
}

func (nd NewDischarge) toDischarge(userID string) Discharge {
	return Discharge{
		TraineeID: core.CleanString(nd.TraineeID),
		Reason:    core.CleanString(nd.Reason),
		Date:      core.CleanString(nd.Date),
		Notes:     core.CleanString(nd.Notes),
		UserID:    userID,
	}
}

// UpdateDischarge defines what information may be provided to modify an existing Discharge.
type UpdateDischarge struct {
	TraineeID *string `json:"cursante_id"`
	Reason    *string `json:"motivo"`
	Date      *string `json:"fecha"`
	Notes     *string `json:"observaciones"`
}

func (ud UpdateDischarge) merge(orig Discharge) Discharge {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = core.CleanString(*src)
		}
	}
	set(&orig.TraineeID, ud.TraineeID)
	set(&orig.Reason, ud.Reason)
	set(&orig.Date, ud.Date)
	set(&orig.Notes, ud.Notes)
	return orig
}

// noticeData feeds the discharge_notice email template.
type noticeData struct {
	TraineeName string
	TraineeCI   string
	TraineeRank string
	Reason      string
	Date        string
	Notes       string
	RecordedBy  string
}
