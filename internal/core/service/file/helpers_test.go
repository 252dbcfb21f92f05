package file_test

import (
	"io"
	"log/slog"
	"testing"
	"webapp/internal/adapters/eventbroker"
	"webapp/internal/adapters/repository"
	"webapp/internal/adapters/storage"
	"webapp/internal/core/domain"
	"webapp/internal/core/port"
	"webapp/internal/core/service/file"

	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://localhost:9000/files"

type fixture struct {
	repo      *repository.MockFileRepository
	storage   *storage.MockStorage
	publisher *eventbroker.MockPublisher
	locator   domain.ObjectLocator
	service   port.FileService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	locator, err := domain.NewObjectLocator(testBaseURL)
	require.NoError(t, err)

	f := &fixture{
		repo:      repository.NewMockFileRepository(),
		storage:   storage.NewMockStorage(),
		publisher: eventbroker.NewMockPublisher(),
		locator:   locator,
	}
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.service = file.NewFileService(f.repo, f.storage, f.publisher, locator, discardLogger)
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.repo.AssertExpectations(t)
	f.storage.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}
