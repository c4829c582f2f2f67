package discharge

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/saraquenta/Sistema-EAME/core"
)

var reasonTag = "discharge_reason"

// InitValidators registers the discharge validators & their translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	core.RegisterEnumValidation(validate, translator, reasonTag, Reasons)
}
