package domain

import (
	"bytes"
	"io"
	"strings"
)

// UploadedFile references a document supplied by the caller. The content is
// only read through Open, once, during normalization.
type UploadedFile struct {
	Name     string
	MIMEType string
	Open     func() (io.ReadCloser, error)
}

// NewUploadedFile wraps in-memory content as an UploadedFile.
func NewUploadedFile(name, mimeType string, data []byte) UploadedFile {
	return UploadedFile{
		Name:     name,
		MIMEType: mimeType,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// IsText reports whether the declared MIME type is a text subtype.
// Parameters such as "; charset=utf-8" are ignored.
func (f UploadedFile) IsText() bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(f.MIMEType)), "text/")
}
