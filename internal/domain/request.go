package domain

import (
	"strings"
)

// FormInput is the raw input collected by a caller (HTTP form, CLI flags)
// before normalization. Empty strings mean "not provided".
type FormInput struct {
	Subject     string
	Title       string
	YoutubeLink string
	PodcastLink string
	// AdditionalText is the free text typed by the user.
	AdditionalText string
	Files          []UploadedFile
}

// GenerationRequest is the normalized input of the prompt builder.
//
// Optional fields are nil when absent. A non-nil optional field always
// points to a non-empty, trimmed string; NewGenerationRequest is the only
// place that enforces this, so callers should not build the struct by hand.
type GenerationRequest struct {
	Subject           string
	Title             *string
	YoutubeLink       *string
	PodcastLink       *string
	AdditionalContext *string
}

// NewGenerationRequest builds a GenerationRequest from form values and the
// combined context produced by the normalizer. Blank optional values become
// absent. Returns ErrEmptySubject when the subject is blank.
func NewGenerationRequest(
	subject, title, youtubeLink, podcastLink string,
	additionalContext *string,
) (*GenerationRequest, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, ErrEmptySubject
	}

	req := &GenerationRequest{
		Subject:     subject,
		Title:       Optional(title),
		YoutubeLink: Optional(youtubeLink),
		PodcastLink: Optional(podcastLink),
	}
	if additionalContext != nil {
		req.AdditionalContext = Optional(*additionalContext)
	}

	return req, nil
}

// Optional returns nil for a blank string and a pointer to the trimmed
// value otherwise.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
