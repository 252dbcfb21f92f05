package port

import (
	"context"
	"io"
	"webapp/internal/core/domain"

	"github.com/google/uuid"
)

// FileRepository is an interface to define file metadata store interactions
type FileRepository interface {
	Create(ctx context.Context, record domain.FileRecord) (*domain.FileRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FileRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FileStorage is an interface to define blob store interactions
type FileStorage interface {
	PutObject(ctx context.Context, key string, contentType string, content io.Reader, size int64) error
	DeleteObject(ctx context.Context, key string) error
	ObjectExists(ctx context.Context, key string) (bool, error)
}

// FileService is an interface to define the file lifecycle coordinator
type FileService interface {
	Upload(ctx context.Context, fileName string, contentType string, content []byte) (*domain.FileRecord, error)
	ResumeUpload(ctx context.Context, record domain.FileRecord) (*domain.FileRecord, error)
	GetMetadata(ctx context.Context, id string) (*domain.FileRecord, error)
	Delete(ctx context.Context, id string) error
}
