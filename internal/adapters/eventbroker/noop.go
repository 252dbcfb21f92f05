package eventbroker

import (
	"context"
	"webapp/internal/core/domain"
	"webapp/internal/core/port"
)

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNoopPublisher() port.InconsistencyPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, domain.InconsistencyEvent) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
