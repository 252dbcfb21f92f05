package domain

import "time"

// HeartbeatRecord represents a liveness probe write
type HeartbeatRecord struct {
	Timestamp time.Time
}
