package trainee

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/saraquenta/Sistema-EAME/core"
)

var (
	rankTag   = "rank"
	statusTag = "trainee_status"
)

// InitValidators registers the trainee validators & their translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	core.RegisterEnumValidation(validate, translator, rankTag, Ranks)
	core.RegisterEnumValidation(validate, translator, statusTag, Statuses)
}
