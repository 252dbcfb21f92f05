package instrumented

import (
	"context"
	"log/slog"
	"webapp/internal/core/domain"
	"webapp/internal/core/port"

	"github.com/google/uuid"
)

const (
	OpFileCreate      = "dependency.db.file.create"
	OpFileFind        = "dependency.db.file.find"
	OpFileDelete      = "dependency.db.file.delete"
	OpHeartbeatCreate = "dependency.db.heartbeat.create"
)

type fileRepository struct {
	next    port.FileRepository
	metrics port.Metrics
	logger  *slog.Logger
}

// NewFileRepository decorates a port.FileRepository with timing samples
func NewFileRepository(next port.FileRepository, metrics port.Metrics, logger *slog.Logger) port.FileRepository {
	return &fileRepository{next: next, metrics: metrics, logger: logger}
}

func (r *fileRepository) Create(ctx context.Context, record domain.FileRecord) (*domain.FileRecord, error) {
	return Measure(r.metrics, r.logger, OpFileCreate, func() (*domain.FileRecord, error) {
		return r.next.Create(ctx, record)
	})
}

func (r *fileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FileRecord, error) {
	return Measure(r.metrics, r.logger, OpFileFind, func() (*domain.FileRecord, error) {
		return r.next.FindByID(ctx, id)
	})
}

func (r *fileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return MeasureErr(r.metrics, r.logger, OpFileDelete, func() error {
		return r.next.Delete(ctx, id)
	})
}

type heartbeatRepository struct {
	next    port.HeartbeatRepository
	metrics port.Metrics
	logger  *slog.Logger
}

// NewHeartbeatRepository decorates a port.HeartbeatRepository with timing samples
func NewHeartbeatRepository(next port.HeartbeatRepository, metrics port.Metrics, logger *slog.Logger) port.HeartbeatRepository {
	return &heartbeatRepository{next: next, metrics: metrics, logger: logger}
}

func (r *heartbeatRepository) Create(ctx context.Context, heartbeat domain.HeartbeatRecord) error {
	return MeasureErr(r.metrics, r.logger, OpHeartbeatCreate, func() error {
		return r.next.Create(ctx, heartbeat)
	})
}
