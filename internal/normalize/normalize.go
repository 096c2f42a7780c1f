package normalize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/phrazzld/memofiche-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ErrFileRead is returned when any uploaded document cannot be read.
var ErrFileRead = errors.New("failed to read uploaded file")

const (
	documentsHeader    = "--- Documents Fournis ---"
	documentsSeparator = "\n\n---\n\n"
	utf8BOM            = "\uFEFF"
)

// Options tunes a Normalizer.
type Options struct {
	// MaxFileBytes caps the size of a single text document. Zero disables the cap.
	MaxFileBytes int64
}

// Normalizer combines free text and uploaded documents. The zero value is
// ready to use and applies no size cap.
type Normalizer struct {
	maxFileBytes int64
}

// New creates a Normalizer with the given options.
func New(opts Options) *Normalizer {
	return &Normalizer{maxFileBytes: opts.MaxFileBytes}
}

// CombineContext is a convenience wrapper around a zero-value Normalizer.
func CombineContext(ctx context.Context, freeText string, files []domain.UploadedFile) (*string, error) {
	return (&Normalizer{}).CombineContext(ctx, freeText, files)
}

// CombineContext returns the trimmed concatenation of freeText and the
// document block built from files, or nil when nothing is left after
// trimming. Any read failure returns an error wrapping ErrFileRead and no
// context at all.
func (n *Normalizer) CombineContext(
	ctx context.Context,
	freeText string,
	files []domain.UploadedFile,
) (*string, error) {
	combined := freeText

	if len(files) > 0 {
		contents, err := n.readAll(ctx, files)
		if err != nil {
			return nil, err
		}
		combined = fmt.Sprintf("%s\n\n%s\n%s", freeText, documentsHeader,
			strings.Join(contents, documentsSeparator))
	}

	return domain.Optional(combined), nil
}

// readAll extracts every file concurrently. Results are written by index so
// the output order matches files regardless of completion order.
func (n *Normalizer) readAll(ctx context.Context, files []domain.UploadedFile) ([]string, error) {
	contents := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := n.extract(f)
			if err != nil {
				return err
			}
			contents[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrFileRead) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrFileRead, err)
	}

	return contents, nil
}

func (n *Normalizer) extract(f domain.UploadedFile) (string, error) {
	if !f.IsText() {
		return Placeholder(f), nil
	}

	if f.Open == nil {
		return "", fmt.Errorf("%w %q: %v", ErrFileRead, f.Name, domain.ErrNilFileOpener)
	}

	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrFileRead, f.Name, err)
	}
	defer rc.Close()

	var r io.Reader = rc
	if n.maxFileBytes > 0 {
		r = io.LimitReader(rc, n.maxFileBytes+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrFileRead, f.Name, err)
	}
	if n.maxFileBytes > 0 && int64(len(data)) > n.maxFileBytes {
		return "", fmt.Errorf("%w %q: larger than %d bytes", ErrFileRead, f.Name, n.maxFileBytes)
	}

	return decodeText(data), nil
}

// decodeText decodes data as UTF-8 the way a browser text reader does:
// a leading BOM is dropped and invalid sequences become U+FFFD.
func decodeText(data []byte) string {
	s := strings.TrimPrefix(string(data), utf8BOM)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	return s
}

// Placeholder is the stand-in text used for a document whose content is not extracted.
func Placeholder(f domain.UploadedFile) string {
	return fmt.Sprintf("[Contenu du fichier %s (type: %s) non extrait car non textuel.]", f.Name, f.MIMEType)
}
