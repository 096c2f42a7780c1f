package generation

import (
	"fmt"
	"strings"
)

// placeholderCredentials are sample values shipped in example configuration
// files. They are treated exactly like a missing key.
var placeholderCredentials = map[string]struct{}{
	"YOUR_GEMINI_API_KEY_HERE": {},
	"YOUR_OPENAI_API_KEY_HERE": {},
	"YOUR_API_KEY_HERE":        {},
}

// IsPlaceholderCredential reports whether key is one of the known sample values.
func IsPlaceholderCredential(key string) bool {
	_, ok := placeholderCredentials[strings.TrimSpace(key)]
	return ok
}

// ValidateCredential returns an error wrapping ErrInvalidConfig when key is
// empty or a placeholder. name is used in the message, e.g. "gemini".
func ValidateCredential(name, key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: %s API key is not configured", ErrInvalidConfig, name)
	}
	if IsPlaceholderCredential(key) {
		return fmt.Errorf("%w: %s API key is still the placeholder value", ErrInvalidConfig, name)
	}
	return nil
}
