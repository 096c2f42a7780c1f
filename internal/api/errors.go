package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/memofiche-api/internal/domain"
	"github.com/phrazzld/memofiche-api/internal/generation"
	"github.com/phrazzld/memofiche-api/internal/normalize"
	"github.com/phrazzld/memofiche-api/internal/redact"
	"github.com/phrazzld/memofiche-api/internal/service"
)

// User-facing messages. The application is used by French-speaking
// students, so everything a client can display is in French.
const (
	msgSubjectRequired    = "Le sujet est obligatoire."
	msgInvalidRequest     = "Format de requête invalide."
	msgFileRead           = "Impossible de lire l'un des fichiers fournis."
	msgTooManyFiles       = "Trop de fichiers fournis."
	msgUploadTooLarge     = "Les fichiers fournis dépassent la taille maximale autorisée."
	msgNotConfigured      = "Le service de génération n'est pas configuré. Veuillez définir la clé API."
	msgInvalidCredential  = "La clé API du service de génération est invalide."
	msgContentBlocked     = "La réponse a été bloquée par les filtres de sécurité du service de génération."
	msgServiceErrorPrefix = "Erreur du service de génération : "
	msgTimeout            = "Le service de génération n'a pas répondu à temps."
	msgUnexpected         = "Une erreur inattendue s'est produite."
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	// Input errors
	case service.IsInputError(err), errors.As(err, &validationErrs):
		return http.StatusBadRequest

	// Generation is disabled until a key is configured
	case errors.Is(err, generation.ErrInvalidConfig):
		return http.StatusServiceUnavailable

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	// Upstream errors
	case service.IsGenerationError(err):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err. Only generation
// service failures carry their cause, and only after redaction.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, domain.ErrEmptySubject):
		return msgSubjectRequired

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)

	case errors.Is(err, domain.ErrValidation):
		return msgInvalidRequest

	case errors.Is(err, normalize.ErrFileRead):
		return msgFileRead

	case errors.Is(err, generation.ErrInvalidConfig):
		return msgNotConfigured

	case errors.Is(err, context.DeadlineExceeded):
		return msgTimeout

	case errors.Is(err, generation.ErrInvalidCredential):
		return msgInvalidCredential

	case errors.Is(err, generation.ErrContentBlocked):
		return msgContentBlocked

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse):
		return msgServiceErrorPrefix + redact.Error(err)

	default:
		return msgUnexpected
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Erreur de validation."
	}

	fe := validationErrs[0]
	if strings.EqualFold(fe.Field(), "Subject") && fe.Tag() == "required" {
		return msgSubjectRequired
	}
	return "Champ " + strings.ToLower(fe.Field()) + " : " + getValidationTagMessage(fe.Tag())
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "obligatoire"
	case "max":
		return "trop long"
	case "url":
		return "URL invalide"
	default:
		return "invalide"
	}
}
