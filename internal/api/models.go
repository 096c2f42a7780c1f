package api

import (
	"time"

	"github.com/phrazzld/memofiche-api/internal/domain"
)

// Form field names accepted by the memo sheet endpoints.
const (
	FieldSubject     = "subject"
	FieldTitle       = "title"
	FieldYoutubeLink = "youtube_link"
	FieldPodcastLink = "podcast_link"
	FieldAIText      = "ai_text"
	FieldDocuments   = "documents"
)

// GenerateMemoFicheRequest is the JSON body of the memo sheet endpoints.
// Documents can only be sent with multipart/form-data.
type GenerateMemoFicheRequest struct {
	Subject     string `json:"subject" validate:"required,max=500"`
	Title       string `json:"title" validate:"max=500"`
	YoutubeLink string `json:"youtube_link" validate:"max=2048"`
	PodcastLink string `json:"podcast_link" validate:"max=2048"`
	AIText      string `json:"ai_text"`
}

// toFormInput converts the request to the service input.
func (r GenerateMemoFicheRequest) toFormInput(files []domain.UploadedFile) domain.FormInput {
	return domain.FormInput{
		Subject:        r.Subject,
		Title:          r.Title,
		YoutubeLink:    r.YoutubeLink,
		PodcastLink:    r.PodcastLink,
		AdditionalText: r.AIText,
		Files:          files,
	}
}

// MemoFicheResponse represents the response data for a memo sheet
type MemoFicheResponse struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Markdown  string    `json:"markdown"`
	HTML      string    `json:"html"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

// PromptResponse is returned by the prompt preview endpoint.
type PromptResponse struct {
	Prompt string `json:"prompt"`
}

// memoFicheToResponse converts a domain.MemoFiche to a MemoFicheResponse
func memoFicheToResponse(fiche *domain.MemoFiche) MemoFicheResponse {
	return MemoFicheResponse{
		ID:        fiche.ID.String(),
		Subject:   fiche.Subject,
		Markdown:  fiche.Markdown,
		HTML:      fiche.HTML,
		Provider:  fiche.Provider,
		Model:     fiche.Model,
		CreatedAt: fiche.CreatedAt,
	}
}
