// Package files turns uploaded multipart parts and paths on disk into
// domain.UploadedFile values, resolving their MIME type.
package files

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/phrazzld/memofiche-api/internal/domain"
)

// OctetStream is the MIME type of content with no better description.
const OctetStream = "application/octet-stream"

// ResolveMIME picks the MIME type of a file. A declared type other than
// application/octet-stream wins. Otherwise the sniffed type is used, and
// when sniffing gives nothing specific the type registered for the file
// extension is used.
func ResolveMIME(declared, sniffed, name string) string {
	if t := baseType(declared); t != "" && t != OctetStream {
		return declared
	}
	if t := baseType(sniffed); t != "" && t != OctetStream {
		return sniffed
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
		return byExt
	}
	return OctetStream
}

func baseType(contentType string) string {
	t, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return t
}

// FromPath describes the file at path. Its content is read lazily, when the
// normalizer opens it.
func FromPath(path string) (domain.UploadedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.UploadedFile{}, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if info.IsDir() {
		return domain.UploadedFile{}, fmt.Errorf("%q is a directory", path)
	}

	sniffed := ""
	if m, err := mimetype.DetectFile(path); err == nil {
		sniffed = m.String()
	}

	return domain.UploadedFile{
		Name:     filepath.Base(path),
		MIMEType: ResolveMIME("", sniffed, path),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// FromPaths describes every path, in order.
func FromPaths(paths []string) ([]domain.UploadedFile, error) {
	out := make([]domain.UploadedFile, 0, len(paths))
	for _, p := range paths {
		f, err := FromPath(p)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// FromFileHeader describes a multipart upload. The declared Content-Type of
// the part is kept unless it is missing or generic, in which case the
// content is sniffed.
func FromFileHeader(fh *multipart.FileHeader) domain.UploadedFile {
	declared := fh.Header.Get("Content-Type")
	sniffed := ""
	if t := baseType(declared); t == "" || t == OctetStream {
		if f, err := fh.Open(); err == nil {
			if m, err := mimetype.DetectReader(f); err == nil {
				sniffed = m.String()
			}
			_ = f.Close()
		}
	}

	return domain.UploadedFile{
		Name:     fh.Filename,
		MIMEType: ResolveMIME(declared, sniffed, fh.Filename),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
