package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates request DTOs against the `validate` struct tags
// declared in the models package.
//
// It is a thin adapter over go-playground/validator: the library does the
// rule evaluation, this type translates its error types into the package
// sentinels so callers never import the library directly.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [Validator] for request DTOs.
func NewRequestValidator() Validator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks obj against its `validate` tags. When field names are
// given, only those struct fields are evaluated; otherwise the whole struct
// is.
//
// Error handling:
//   - Non-struct input → [ErrUnsupportedType].
//   - Any rule violation → wrapped with [ErrValidationFailed], the message
//     naming each failed field and rule.
func (rv *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = rv.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = rv.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return ErrUnsupportedType
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %s", ErrValidationFailed, describeFieldErrors(fieldErrs))
	}

	return fmt.Errorf("%w: %w", ErrValidationFailed, err)
}

// describeFieldErrors renders rule violations into a compact human-readable
// list, e.g. `field "Email" failed on the "email" rule`.
func describeFieldErrors(fieldErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		parts = append(parts, fmt.Sprintf("field %q failed on the %q rule", fieldErr.Field(), fieldErr.Tag()))
	}

	return strings.Join(parts, "; ")
}
