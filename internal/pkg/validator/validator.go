// Package validator checks request DTOs against their `validate` tags and
// flattens the result into the field→tag map the error envelope carries as
// details (e.g. {"CheckIn": "required", "Guests": "gt"}).
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate returns nil when v passes, otherwise one entry per failing field.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
