package file

import (
	"errors"
	"io"
	"net/http"
	"webapp/internal/core/domain"
)

const multipartMemory = 1 << 20

// UploadFileV1 stores the multipart field "file" and returns its FileRecord
func (h *HandlerV1) UploadFileV1(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		h.logger.Debug("invalid multipart body", "error", err)
		h.writeError(w, http.StatusBadRequest, "invalid multipart body", CategoryValidation)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	part, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "file is required", CategoryValidation)
		return
	}
	defer part.Close()

	content, err := io.ReadAll(part)
	if err != nil {
		h.logger.Error("error reading file part", "error", err)
		h.writeError(w, http.StatusBadRequest, "invalid file part", CategoryValidation)
		return
	}

	record, err := h.fileService.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), content)
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.writeError(w, http.StatusBadRequest, err.Error(), CategoryValidation)
		return
	case err != nil:
		h.logger.Error("error uploading file", "file_name", header.Filename, "error", err)
		h.writeError(w, http.StatusInternalServerError, "upload failed", CategoryDependency)
		return
	default:
		h.writeJSON(w, http.StatusCreated, toResponse(record))
	}
}
