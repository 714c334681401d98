package middleware

import (
	"github.com/kartavya/website/internal/pkg/apperrors"
	"github.com/kartavya/website/internal/pkg/validation"
)

// BindingError converts a gin binding failure into a validation error carrying
// per-field messages, so HandleAPIError can report it as a 400.
func BindingError(err error) error {
	return apperrors.NewValidationError(validation.Messages(err))
}
