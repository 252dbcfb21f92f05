package file

import (
	"context"
	"errors"
	"fmt"
	"time"
	"webapp/internal/core/domain"
)

// ResumeUpload retries the metadata insert of an upload whose blob is already stored
func (f *fileService) ResumeUpload(ctx context.Context, record domain.FileRecord) (*domain.FileRecord, error) {
	if _, err := parseID(record.ID); err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: invalid file id %q", domain.ErrValidation, record.ID)
		}
		return nil, err
	}
	if record.FileName == "" {
		return nil, domain.ErrMissingFileName
	}

	key, err := f.locator.Key(record.URL)
	if err != nil {
		return nil, err
	}
	if key != domain.BlobKey(record.ID, record.FileName) {
		return nil, fmt.Errorf("%w: url %q does not locate file %s", domain.ErrValidation, record.URL, record.ID)
	}

	ctx = context.WithoutCancel(ctx)

	exists, err := f.fileStorage.ObjectExists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: checking blob %s: %w", domain.ErrDependency, key, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: no blob at %s", domain.ErrFileNotFound, key)
	}

	if record.UploadDate.IsZero() {
		record.UploadDate = time.Now().UTC()
	}

	saved, err := f.fileRepo.Create(ctx, record)
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("%w: saving metadata of %s: %w", domain.ErrDependency, record.ID, err)
	}

	f.logger.Info("orphaned blob recovered", "file_id", record.ID, "blob_key", key)
	return saved, nil
}
