package file

import (
	"context"
	"errors"
	"fmt"
	"webapp/internal/core/domain"
)

// GetMetadata reads a file record. The blob store is not consulted.
func (f *fileService) GetMetadata(ctx context.Context, id string) (*domain.FileRecord, error) {
	fileID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	record, err := f.fileRepo.FindByID(ctx, fileID)
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("%w: reading metadata of %s: %w", domain.ErrDependency, id, err)
	}

	return record, nil
}
