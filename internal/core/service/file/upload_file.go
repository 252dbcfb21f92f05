package file

import (
	"bytes"
	"context"
	"fmt"
	"time"
	"webapp/internal/core/domain"

	"github.com/google/uuid"
)

const defaultContentType = "application/octet-stream"

// Upload writes the blob first, then its metadata. A failed metadata insert leaves the blob in
// place and returns *domain.OrphanedBlobError.
func (f *fileService) Upload(ctx context.Context, fileName string, contentType string, content []byte) (*domain.FileRecord, error) {
	if fileName == "" {
		return nil, domain.ErrMissingFileName
	}
	if len(content) == 0 {
		return nil, domain.ErrEmptyFile
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	// in-flight writes survive a client disconnect
	ctx = context.WithoutCancel(ctx)

	id := uuid.New().String()
	key := domain.BlobKey(id, fileName)
	record := domain.FileRecord{
		ID:         id,
		FileName:   fileName,
		URL:        f.locator.URL(key),
		UploadDate: time.Now().UTC(),
	}

	err := f.fileStorage.PutObject(ctx, key, contentType, bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("%w: storing blob %s: %w", domain.ErrDependency, key, err)
	}

	saved, err := f.fileRepo.Create(ctx, record)
	if err != nil {
		f.reportInconsistency(ctx, domain.InconsistencyOrphanedBlob, record, key, err)
		return nil, &domain.OrphanedBlobError{
			FileID:  id,
			BlobKey: key,
			URL:     record.URL,
			Err:     err,
		}
	}

	return saved, nil
}
