package discipline

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/saraquenta/Sistema-EAME/core"
)

var (
	typeTag = "discipline_type"

	weightsSumTag  = "weights_sum"
	weightsSumText = "porcentaje_teoria + porcentaje_practica + porcentaje_otros must equal 100"
)

// InitValidators registers the discipline validators & their translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	core.RegisterEnumValidation(validate, translator, typeTag, Types)

	validate.RegisterStructValidation(weightsStructValidation, Discipline{})
	core.RegisterCustomTranslation(validate, translator, weightsSumTag, weightsSumText)
}

// weightsStructValidation checks that the weights of a Discipline sum to exactly 100.
func weightsStructValidation(sl validator.StructLevel) {
	d, ok := sl.Current().Interface().(Discipline)
	if !ok {
		return
	}
	if d.Weights().Sum() != 100 {
		sl.ReportError(d.OtherWeight, "porcentaje_otros", "OtherWeight", weightsSumTag, "")
	}
}
