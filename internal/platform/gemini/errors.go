package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/memofiche-api/internal/generation"
)

// InvalidKeySignature is the text the Gemini API puts in its error message
// when the API key is rejected.
const InvalidKeySignature = "API key not valid"

// classifyError maps an error from the Gemini client to the generation error taxonomy.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), InvalidKeySignature) {
		return fmt.Errorf("%w: %w", generation.ErrInvalidCredential, err)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request aborted: %w", generation.ErrGenerationFailed, err)
	}

	return fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
}
