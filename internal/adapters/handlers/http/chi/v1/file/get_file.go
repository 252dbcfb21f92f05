package file

import (
	"errors"
	"net/http"
	"webapp/internal/core/domain"
)

// GetFileV1 returns the FileRecord identified by the id query parameter
func (h *HandlerV1) GetFileV1(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrMissingID.Error(), CategoryValidation)
		return
	}

	record, err := h.fileService.GetMetadata(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.writeError(w, http.StatusBadRequest, err.Error(), CategoryValidation)
		return
	case errors.Is(err, domain.ErrFileNotFound):
		h.writeError(w, http.StatusNotFound, domain.ErrFileNotFound.Error(), CategoryNotFound)
		return
	case err != nil:
		h.logger.Error("error getting file", "file_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "metadata store unavailable", CategoryDependency)
		return
	default:
		h.writeJSON(w, http.StatusOK, toResponse(record))
	}
}
