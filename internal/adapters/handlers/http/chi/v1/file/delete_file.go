package file

import (
	"errors"
	"net/http"
	"webapp/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// DeleteFileV1 removes the blob then the FileRecord identified by the id path parameter
func (h *HandlerV1) DeleteFileV1(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.fileService.Delete(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.writeError(w, http.StatusBadRequest, err.Error(), CategoryValidation)
	case errors.Is(err, domain.ErrFileNotFound):
		h.writeError(w, http.StatusNotFound, domain.ErrFileNotFound.Error(), CategoryNotFound)
	case errors.Is(err, domain.ErrPartialConsistency):
		h.logger.Error("partial delete", "file_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "delete partially applied", CategoryPartialConsistency)
	case err != nil:
		h.logger.Error("error deleting file", "file_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "delete failed", CategoryDependency)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
