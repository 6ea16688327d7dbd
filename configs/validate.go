package configs

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type InputValidationError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
	Tag     string `json:"tag"`
}

func (err *InputValidationError) Error() string {
	return err.Message
}

// Validate is the shared validator instance used by controllers and
// the upstream request builders.
var Validate = validator.New()

// ValidateInput runs the struct tags and reports the first failure as
// an InputValidationError with a readable message.
func ValidateInput(v interface{}) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}

	fe := errs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	message := fmt.Sprintf("%s failed validation on %s", field, fe.Tag())
	switch fe.Tag() {
	case "required":
		message = field + " is required"
	case "email":
		message = field + " must be a valid email address"
	case "min":
		message = fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		message = fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	}

	return &InputValidationError{
		Message: message,
		Field:   field,
		Tag:     fe.Tag(),
	}
}
