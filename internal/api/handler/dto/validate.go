package dto

import (
	"errors"
	"fmt"

	"customer-graph-api/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks a response DTO against its declared shape before it is
// written. The first violated constraint is reported as an
// apperrors.ValidationError.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Namespace(), messageFor(fe))
	}
	return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	default:
		return fmt.Sprintf("failed on the '%s' constraint", fe.Tag())
	}
}
