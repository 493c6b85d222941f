package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse is one failed validation rule on a request payload. The
// services flatten these into the error message the HTTP layer returns.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// uuid_required rejects the zero UUID. Request DTOs use it for the
	// product, table and inventory references that "required" alone
	// would let through as uuid.Nil.
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

// ValidateStruct runs the struct tags on a request DTO and returns every
// violation, or nil when the payload is clean.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
