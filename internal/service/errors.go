package service

import (
	"errors"

	"github.com/phrazzld/memofiche-api/internal/domain"
	"github.com/phrazzld/memofiche-api/internal/generation"
	"github.com/phrazzld/memofiche-api/internal/normalize"
)

// IsInputError reports whether err was caused by the caller's input
// (missing subject or unreadable upload) rather than by the generation service.
func IsInputError(err error) bool {
	return errors.Is(err, domain.ErrEmptySubject) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, normalize.ErrFileRead)
}

// IsGenerationError reports whether err came from the generation service
// or its configuration.
func IsGenerationError(err error) bool {
	return errors.Is(err, generation.ErrGenerationFailed) ||
		errors.Is(err, generation.ErrInvalidCredential) ||
		errors.Is(err, generation.ErrInvalidConfig) ||
		errors.Is(err, generation.ErrInvalidResponse) ||
		errors.Is(err, generation.ErrContentBlocked)
}
