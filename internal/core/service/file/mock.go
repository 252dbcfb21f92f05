package file

import (
	"context"
	"webapp/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockFileService is a mock implementation of FileService
type MockFileService struct {
	mock.Mock
}

// NewMockFileService creates a new MockFileService
func NewMockFileService() *MockFileService {
	return &MockFileService{}
}

func (m *MockFileService) Upload(ctx context.Context, fileName string, contentType string, content []byte) (*domain.FileRecord, error) {
	args := m.Called(ctx, fileName, contentType, content)
	return args.Get(0).(*domain.FileRecord), args.Error(1)
}

func (m *MockFileService) ResumeUpload(ctx context.Context, record domain.FileRecord) (*domain.FileRecord, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(*domain.FileRecord), args.Error(1)
}

func (m *MockFileService) GetMetadata(ctx context.Context, id string) (*domain.FileRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.FileRecord), args.Error(1)
}

func (m *MockFileService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
