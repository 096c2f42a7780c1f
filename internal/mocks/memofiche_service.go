package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/memofiche-api/internal/domain"
	"github.com/phrazzld/memofiche-api/internal/service"
)

// MockMemoFicheService implements service.MemoFicheService for handler tests
type MockMemoFicheService struct {
	GenerateFn      func(ctx context.Context, input domain.FormInput) (*domain.MemoFiche, error)
	PreviewPromptFn func(ctx context.Context, input domain.FormInput) (string, error)

	mu     sync.Mutex
	inputs []domain.FormInput
}

var _ service.MemoFicheService = (*MockMemoFicheService)(nil)

// Generate implements service.MemoFicheService
func (m *MockMemoFicheService) Generate(ctx context.Context, input domain.FormInput) (*domain.MemoFiche, error) {
	m.record(input)
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, input)
	}
	return domain.NewMemoFiche(input.Subject, DefaultMemoFicheMarkdown, "", "mock", "mock-model")
}

// PreviewPrompt implements service.MemoFicheService
func (m *MockMemoFicheService) PreviewPrompt(ctx context.Context, input domain.FormInput) (string, error) {
	m.record(input)
	if m.PreviewPromptFn != nil {
		return m.PreviewPromptFn(ctx, input)
	}
	return "", nil
}

// Inputs returns a copy of every input received so far.
func (m *MockMemoFicheService) Inputs() []domain.FormInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.FormInput(nil), m.inputs...)
}

func (m *MockMemoFicheService) record(input domain.FormInput) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, input)
}
