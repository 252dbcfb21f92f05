package postgres

import (
	"context"
	"fmt"
	"webapp/internal/core/domain"
	"webapp/internal/core/port"
)

type sqlHeartbeatRepository struct {
	db SQLQuerier
}

// NewSqlHeartbeatRepository creates sqlHeartbeatRepository that implements port.HeartbeatRepository
func NewSqlHeartbeatRepository(db SQLQuerier) port.HeartbeatRepository {
	return &sqlHeartbeatRepository{
		db: db,
	}
}

// Create appends a heartbeat row
func (s *sqlHeartbeatRepository) Create(ctx context.Context, heartbeat domain.HeartbeatRecord) error {
	query := `INSERT INTO health_check (datetime) VALUES ($1)`

	_, err := s.db.ExecContext(ctx, query, heartbeat.Timestamp)
	if err != nil {
		return fmt.Errorf("error inserting heartbeat: %w", err)
	}
	return nil
}
