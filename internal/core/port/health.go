package port

import (
	"context"
	"webapp/internal/core/domain"
)

// HeartbeatRepository is an interface to write liveness records
type HeartbeatRepository interface {
	Create(ctx context.Context, heartbeat domain.HeartbeatRecord) error
}

// HealthService is service that probes metadata store readiness
type HealthService interface {
	Check(ctx context.Context) error
}
