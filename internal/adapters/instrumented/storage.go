package instrumented

import (
	"context"
	"io"
	"log/slog"
	"webapp/internal/core/port"
)

const (
	OpBlobPut    = "dependency.blob.put"
	OpBlobDelete = "dependency.blob.delete"
	OpBlobStat   = "dependency.blob.stat"
)

type fileStorage struct {
	next    port.FileStorage
	metrics port.Metrics
	logger  *slog.Logger
}

// NewFileStorage decorates a port.FileStorage with timing samples
func NewFileStorage(next port.FileStorage, metrics port.Metrics, logger *slog.Logger) port.FileStorage {
	return &fileStorage{next: next, metrics: metrics, logger: logger}
}

func (s *fileStorage) PutObject(ctx context.Context, key string, contentType string, content io.Reader, size int64) error {
	return MeasureErr(s.metrics, s.logger, OpBlobPut, func() error {
		return s.next.PutObject(ctx, key, contentType, content, size)
	})
}

func (s *fileStorage) DeleteObject(ctx context.Context, key string) error {
	return MeasureErr(s.metrics, s.logger, OpBlobDelete, func() error {
		return s.next.DeleteObject(ctx, key)
	})
}

func (s *fileStorage) ObjectExists(ctx context.Context, key string) (bool, error) {
	return Measure(s.metrics, s.logger, OpBlobStat, func() (bool, error) {
		return s.next.ObjectExists(ctx, key)
	})
}
