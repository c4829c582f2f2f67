// Package shared holds the wiring common to the api and admin binaries.
package shared

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/activity"
	"github.com/saraquenta/Sistema-EAME/core/discharge"
	"github.com/saraquenta/Sistema-EAME/core/discipline"
	"github.com/saraquenta/Sistema-EAME/core/merit"
	"github.com/saraquenta/Sistema-EAME/core/trainee"
	"github.com/saraquenta/Sistema-EAME/core/user"
)

// NewValidator returns a validator with every custom tag & translation registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()

	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	trainee.InitValidators(validate, translator)
	discipline.InitValidators(validate, translator)
	merit.InitValidators(validate, translator)
	discharge.InitValidators(validate, translator)
	activity.InitValidators(validate, translator)
	return validate, translator
}
