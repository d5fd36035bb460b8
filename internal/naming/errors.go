package naming

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrConfiguration is wrapped by every error caused by missing or malformed input.
var ErrConfiguration = errors.New("configuration error")

// errOptionsNotSet is returned when a nil options struct is provided.
var errOptionsNotSet = fmt.Errorf("%w: options are not set", ErrConfiguration)

// validate checks struct tags of the option types.
//
//nolint:gochecknoglobals // Validator caches struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validationError converts a validator failure into a configuration error naming the fields.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		fields = append(fields, fieldErr.Field())
	}

	return fmt.Errorf("%w: missing %s", ErrConfiguration, strings.Join(fields, ", "))
}
