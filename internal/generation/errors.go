package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrInvalidConfig is returned when the generator configuration is invalid,
	// most commonly because no usable API key is configured.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrInvalidCredential is returned when the service rejects the configured API key
	ErrInvalidCredential = errors.New("generation service rejected the API key")

	// ErrGenerationFailed is returned when the generation call fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate memo sheet")

	// ErrInvalidResponse is returned when the service response is empty or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the service blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")
)
