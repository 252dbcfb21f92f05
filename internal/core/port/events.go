package port

import (
	"context"
	"webapp/internal/core/domain"
)

// InconsistencyPublisher is an interface to report cross-store inconsistencies (nats, ...)
type InconsistencyPublisher interface {
	Publish(ctx context.Context, event domain.InconsistencyEvent) error
	Close() error
}
