package validators

import "errors"

var (
	// ErrUnsupportedType is returned when a value that is not a struct (or a
	// pointer to one) is handed to a struct validator.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidationFailed wraps every rule violation so callers can translate
	// any invalid input into a bad-request response with a single errors.Is.
	ErrValidationFailed = errors.New("validation failed")
)
