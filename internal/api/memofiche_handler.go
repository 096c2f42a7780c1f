package api

import (
	"errors"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/phrazzld/memofiche-api/internal/api/shared"
	"github.com/phrazzld/memofiche-api/internal/domain"
	"github.com/phrazzld/memofiche-api/internal/platform/files"
	"github.com/phrazzld/memofiche-api/internal/service"
)

// multipartMemoryLimit is the part of a multipart body kept in memory;
// the rest spills to temporary files.
const multipartMemoryLimit = 8 << 20

// HandlerConfig holds the upload limits applied by MemoFicheHandler.
type HandlerConfig struct {
	// MaxUploadBytes caps the whole request body.
	MaxUploadBytes int64
	// MaxFiles caps the number of uploaded documents. Zero disables the cap.
	MaxFiles int
}

// MemoFicheHandler handles memo sheet HTTP requests
type MemoFicheHandler struct {
	memoFicheService service.MemoFicheService
	cfg              HandlerConfig
}

// NewMemoFicheHandler creates a new MemoFicheHandler
func NewMemoFicheHandler(memoFicheService service.MemoFicheService, cfg HandlerConfig) *MemoFicheHandler {
	return &MemoFicheHandler{
		memoFicheService: memoFicheService,
		cfg:              cfg,
	}
}

// GenerateMemoFiche handles POST /api/memofiches requests
func (h *MemoFicheHandler) GenerateMemoFiche(w http.ResponseWriter, r *http.Request) {
	input, cleanup, ok := h.readInput(w, r)
	if !ok {
		return
	}
	defer cleanup()

	fiche, err := h.memoFicheService.Generate(r.Context(), input)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, memoFicheToResponse(fiche))
}

// PreviewPrompt handles POST /api/memofiches/prompt requests
func (h *MemoFicheHandler) PreviewPrompt(w http.ResponseWriter, r *http.Request) {
	input, cleanup, ok := h.readInput(w, r)
	if !ok {
		return
	}
	defer cleanup()

	p, err := h.memoFicheService.PreviewPrompt(r.Context(), input)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PromptResponse{Prompt: p})
}

func (h *MemoFicheHandler) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// readInput decodes a multipart or JSON submission. When ok is false an
// error response has already been written. cleanup must be called once the
// uploaded files are no longer needed.
func (h *MemoFicheHandler) readInput(w http.ResponseWriter, r *http.Request) (domain.FormInput, func(), bool) {
	noop := func() {}

	if h.cfg.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil && r.Header.Get("Content-Type") != "" {
		shared.RespondWithError(w, r, http.StatusUnsupportedMediaType, msgInvalidRequest)
		return domain.FormInput{}, noop, false
	}

	switch mediaType {
	case "multipart/form-data":
		return h.readMultipart(w, r)
	case "application/json", "":
		input, ok := h.readJSON(w, r)
		return input, noop, ok
	default:
		shared.RespondWithError(w, r, http.StatusUnsupportedMediaType, msgInvalidRequest)
		return domain.FormInput{}, noop, false
	}
}

func (h *MemoFicheHandler) readJSON(w http.ResponseWriter, r *http.Request) (domain.FormInput, bool) {
	var req GenerateMemoFicheRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if h.respondIfTooLarge(w, r, err) {
			return domain.FormInput{}, false
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidRequest)
		return domain.FormInput{}, false
	}

	if !h.validate(w, r, req) {
		return domain.FormInput{}, false
	}

	return req.toFormInput(nil), true
}

func (h *MemoFicheHandler) readMultipart(w http.ResponseWriter, r *http.Request) (domain.FormInput, func(), bool) {
	noop := func() {}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		if h.respondIfTooLarge(w, r, err) {
			return domain.FormInput{}, noop, false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidRequest, err)
		return domain.FormInput{}, noop, false
	}

	form := r.MultipartForm
	cleanup := func() {
		if err := form.RemoveAll(); err != nil {
			slog.WarnContext(r.Context(), "failed to remove multipart temporary files", "error", err)
		}
	}

	req := GenerateMemoFicheRequest{
		Subject:     formValue(form, FieldSubject),
		Title:       formValue(form, FieldTitle),
		YoutubeLink: formValue(form, FieldYoutubeLink),
		PodcastLink: formValue(form, FieldPodcastLink),
		AIText:      formValue(form, FieldAIText),
	}
	if !h.validate(w, r, req) {
		cleanup()
		return domain.FormInput{}, noop, false
	}

	var headers []*multipart.FileHeader
	headers = append(headers, form.File[FieldDocuments]...)
	headers = append(headers, form.File[FieldDocuments+"[]"]...)
	if h.cfg.MaxFiles > 0 && len(headers) > h.cfg.MaxFiles {
		cleanup()
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgTooManyFiles,
			errors.New("too many uploaded documents"), shared.WithElevatedLogLevel())
		return domain.FormInput{}, noop, false
	}

	uploads := make([]domain.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		uploads = append(uploads, files.FromFileHeader(fh))
	}

	return req.toFormInput(uploads), cleanup, true
}

func (h *MemoFicheHandler) validate(w http.ResponseWriter, r *http.Request, req GenerateMemoFicheRequest) bool {
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}

func (h *MemoFicheHandler) respondIfTooLarge(w http.ResponseWriter, r *http.Request, err error) bool {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) || errors.Is(err, multipart.ErrMessageTooLarge) {
		shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, msgUploadTooLarge, err,
			shared.WithElevatedLogLevel())
		return true
	}
	return false
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}
