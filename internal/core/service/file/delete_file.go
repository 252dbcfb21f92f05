package file

import (
	"context"
	"errors"
	"fmt"
	"webapp/internal/core/domain"

	"github.com/google/uuid"
)

// Delete removes the blob, then the metadata row. A metadata failure after the blob is gone is
// reported as domain.ErrPartialConsistency.
func (f *fileService) Delete(ctx context.Context, id string) error {
	record, err := f.GetMetadata(ctx, id)
	if err != nil {
		return err
	}

	ctx = context.WithoutCancel(ctx)
	key := f.blobKeyOf(*record)

	if err := f.fileStorage.DeleteObject(ctx, key); err != nil {
		return fmt.Errorf("%w: deleting blob %s: %w", domain.ErrDependency, key, err)
	}

	// id was validated by GetMetadata
	fileID, _ := uuid.Parse(id)
	err = f.fileRepo.Delete(ctx, fileID)
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		// a concurrent delete of the same id won the race
		return err
	case err != nil:
		f.reportInconsistency(ctx, domain.InconsistencyDanglingRecord, *record, key, err)
		return fmt.Errorf("%w: file %s: %w", domain.ErrPartialConsistency, id, err)
	}

	return nil
}
