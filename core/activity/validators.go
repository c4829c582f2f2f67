package activity

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/saraquenta/Sistema-EAME/core"
)

var typeTag = "activity_type"

// InitValidators registers the activity validators & their translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	core.RegisterEnumValidation(validate, translator, typeTag, Types)
}
