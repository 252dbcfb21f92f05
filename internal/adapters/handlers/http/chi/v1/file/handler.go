package file

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
	"webapp/internal/core/domain"
	"webapp/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 file routes
type HandlerV1 struct {
	fileService port.FileService
	logger      *slog.Logger
}

// NewFileHandlerV1 creates HandlerV1
func NewFileHandlerV1(service port.FileService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		fileService: service,
		logger:      logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.UploadFileV1)
	router.Get("/", h.GetFileV1)
	router.Delete("/{id}", h.DeleteFileV1)
	router.MethodNotAllowed(h.MethodNotAllowedV1)

	return router
}

// V1FileResponse is the FileRecord representation returned by file routes
type V1FileResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	URL        string    `json:"url"`
	UploadDate time.Time `json:"upload_date"`
	UserID     string    `json:"user_id"`
}

// V1ErrorResponse is the body of every failed file route
type V1ErrorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category"`
}

// Error categories reported in V1ErrorResponse
const (
	CategoryValidation         = "validation"
	CategoryNotFound           = "not_found"
	CategoryMethodNotAllowed   = "method_not_allowed"
	CategoryDependency         = "dependency"
	CategoryPartialConsistency = "partial_consistency"
)

// MethodNotAllowedV1 answers any unsupported method on file routes
func (h *HandlerV1) MethodNotAllowedV1(w http.ResponseWriter, _ *http.Request) {
	h.writeError(w, http.StatusMethodNotAllowed, domain.ErrMethodNotAllowed.Error(), CategoryMethodNotAllowed)
}

func toResponse(record *domain.FileRecord) V1FileResponse {
	return V1FileResponse{
		ID:         record.ID,
		FileName:   record.FileName,
		URL:        record.URL,
		UploadDate: record.UploadDate,
		UserID:     record.OwnerID,
	}
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func (h *HandlerV1) writeError(w http.ResponseWriter, status int, message, category string) {
	h.writeJSON(w, status, V1ErrorResponse{Error: message, Category: category})
}
