package file

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"webapp/internal/core/domain"
	"webapp/internal/core/port"

	"github.com/google/uuid"
)

type fileService struct {
	fileRepo    port.FileRepository
	fileStorage port.FileStorage
	publisher   port.InconsistencyPublisher
	locator     domain.ObjectLocator
	logger      *slog.Logger
}

// NewFileService creates the file lifecycle coordinator
func NewFileService(repo port.FileRepository, storage port.FileStorage, publisher port.InconsistencyPublisher, locator domain.ObjectLocator, logger *slog.Logger) port.FileService {
	return &fileService{
		fileRepo:    repo,
		fileStorage: storage,
		publisher:   publisher,
		locator:     locator,
		logger:      logger,
	}
}

// parseID maps ids that could never have been issued to not found.
// Only the canonical lower-case hyphenated form is ever issued.
func parseID(id string) (uuid.UUID, error) {
	if id == "" {
		return uuid.Nil, domain.ErrMissingID
	}
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != id {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, id)
	}
	return parsed, nil
}

// blobKeyOf derives the blob key from the stored url, falling back to the id/name derivation
// when the url was built under another base
func (f *fileService) blobKeyOf(record domain.FileRecord) string {
	key, err := f.locator.Key(record.URL)
	if err != nil {
		f.logger.Warn("stored url does not match storage base, deriving key from id",
			"file_id", record.ID,
			"url", record.URL,
			"error", err,
		)
		return domain.BlobKey(record.ID, record.FileName)
	}
	return key
}

// reportInconsistency logs and publishes a cross-store inconsistency. Publishing is best effort.
func (f *fileService) reportInconsistency(ctx context.Context, kind domain.InconsistencyKind, record domain.FileRecord, key string, cause error) {
	f.logger.Error("storage inconsistency",
		"inconsistency", kind,
		"file_id", record.ID,
		"blob_key", key,
		"error", cause,
	)

	event := domain.InconsistencyEvent{
		Kind:       kind,
		FileID:     record.ID,
		FileName:   record.FileName,
		BlobKey:    key,
		URL:        record.URL,
		Cause:      cause.Error(),
		DetectedAt: time.Now().UTC(),
	}
	if err := f.publisher.Publish(ctx, event); err != nil {
		f.logger.Error("failed to publish inconsistency event", "file_id", record.ID, "error", err)
	}
}
