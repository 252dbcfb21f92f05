package health

import (
	"context"
	"fmt"
	"time"
	"webapp/internal/core/domain"
	"webapp/internal/core/port"
)

type healthService struct {
	heartbeatRepo port.HeartbeatRepository
}

// NewHealthService creates a new health service
func NewHealthService(repo port.HeartbeatRepository) port.HealthService {
	return &healthService{heartbeatRepo: repo}
}

// Check writes one heartbeat. Failures are not retried.
func (h *healthService) Check(ctx context.Context) error {
	err := h.heartbeatRepo.Create(ctx, domain.HeartbeatRecord{Timestamp: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("%w: writing heartbeat: %w", domain.ErrDependency, err)
	}
	return nil
}
