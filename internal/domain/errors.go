package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptySubject is returned when a generation is requested without a subject.
	ErrEmptySubject = fmt.Errorf("%w: subject cannot be empty", ErrValidation)

	// ErrEmptyMarkdown is returned when a memo sheet would carry no content.
	ErrEmptyMarkdown = errors.New("memo sheet content cannot be empty")

	// ErrNilFileOpener is returned when an uploaded file has no way to read its content.
	ErrNilFileOpener = errors.New("uploaded file has no content opener")
)
