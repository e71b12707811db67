package utils

import (
	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return exceptions.WrapWithError(err, constvars.StatusBadRequest, exceptions.FormatFirstValidationError(err), err.Error())
	}
	return nil
}
