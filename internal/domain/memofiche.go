package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MemoFiche is a generated revision sheet. Markdown holds the text returned
// by the generation service; HTML is its rendering for display.
type MemoFiche struct {
	ID        uuid.UUID `json:"id"`
	Subject   string    `json:"subject"`
	Markdown  string    `json:"markdown"`
	HTML      string    `json:"html"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMemoFiche creates a MemoFiche with a fresh ID and creation time.
// Returns an error if validation fails.
func NewMemoFiche(subject, markdown, html, provider, model string) (*MemoFiche, error) {
	fiche := &MemoFiche{
		ID:        uuid.New(),
		Subject:   subject,
		Markdown:  markdown,
		HTML:      html,
		Provider:  provider,
		Model:     model,
		CreatedAt: time.Now().UTC(),
	}

	if err := fiche.Validate(); err != nil {
		return nil, err
	}

	return fiche, nil
}

// Validate checks if the MemoFiche has valid data.
func (m *MemoFiche) Validate() error {
	if strings.TrimSpace(m.Subject) == "" {
		return ErrEmptySubject
	}

	if strings.TrimSpace(m.Markdown) == "" {
		return ErrEmptyMarkdown
	}

	return nil
}
