package services

import (
	"elevatorops-console/models"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateInput runs struct validation and turns failures into a local guard failure
func validateInput(input interface{}) error {
	if err := validate.Struct(input); err != nil {
		return models.NewGuardFailure(models.ErrValidation, "%s", FormatValidationErrors(err))
	}
	return nil
}

// FormatValidationErrors formats validation errors into readable messages
func FormatValidationErrors(err error) string {
	var errorMessages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	for _, fieldError := range validationErrors {
		switch fieldError.Tag() {
		case "required":
			errorMessages = append(errorMessages, fieldError.Field()+" is required")
		case "min":
			errorMessages = append(errorMessages, fieldError.Field()+" must be at least "+fieldError.Param()+" characters/items")
		case "max":
			errorMessages = append(errorMessages, fieldError.Field()+" must be at most "+fieldError.Param()+" characters/items")
		case "gte":
			errorMessages = append(errorMessages, fieldError.Field()+" must be greater than or equal to "+fieldError.Param())
		case "oneof":
			errorMessages = append(errorMessages, fieldError.Field()+" must be one of: "+strings.ReplaceAll(fieldError.Param(), " ", ", "))
		default:
			errorMessages = append(errorMessages, fieldError.Field()+" is invalid")
		}
	}

	return strings.Join(errorMessages, "; ")
}
