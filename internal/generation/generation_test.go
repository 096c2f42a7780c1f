package generation_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/memofiche-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test that error types are distinct
func TestErrorTypes(t *testing.T) {
	t.Parallel()

	errTypes := []error{
		generation.ErrInvalidConfig,
		generation.ErrInvalidCredential,
		generation.ErrGenerationFailed,
		generation.ErrInvalidResponse,
		generation.ErrContentBlocked,
	}

	for i, err1 := range errTypes {
		for j, err2 := range errTypes {
			if i != j {
				assert.False(t, errors.Is(err1, err2), "Errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestErrorWrapping(t *testing.T) {
	t.Parallel()

	origErr := errors.New("connection reset")
	wrappedErr := fmt.Errorf("%w: %v", generation.ErrGenerationFailed, origErr)

	assert.ErrorIs(t, wrappedErr, generation.ErrGenerationFailed)
	assert.Equal(t, "failed to generate memo sheet: connection reset", wrappedErr.Error())
}

func TestValidateCredential(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		wantErr bool
		msg     string
	}{
		{name: "empty_key", key: "", wantErr: true, msg: "not configured"},
		{name: "blank_key", key: "   ", wantErr: true, msg: "not configured"},
		{name: "gemini_placeholder", key: "YOUR_GEMINI_API_KEY_HERE", wantErr: true, msg: "placeholder"},
		{name: "generic_placeholder", key: "YOUR_API_KEY_HERE", wantErr: true, msg: "placeholder"},
		{name: "real_key", key: "AIzaSyExampleExampleExample", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := generation.ValidateCredential("gemini", tt.key)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestUnavailableGenerator(t *testing.T) {
	t.Parallel()

	cause := generation.ValidateCredential("gemini", "")
	gen := generation.NewUnavailableGenerator("gemini", cause)

	var _ generation.Generator = gen

	out, err := gen.Generate(context.Background(), "prompt")

	assert.Empty(t, out)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	assert.Equal(t, "gemini", gen.Provider())
	assert.Empty(t, gen.Model())
	assert.Equal(t, cause, gen.Cause())
}

func TestUnavailableGenerator_NilCause(t *testing.T) {
	t.Parallel()

	gen := generation.NewUnavailableGenerator("openai", nil)
	_, err := gen.Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}
