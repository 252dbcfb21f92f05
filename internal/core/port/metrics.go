package port

import "time"

// Metrics is a sink for named counters and timing samples
type Metrics interface {
	Count(name string)
	Timing(name string, d time.Duration)
}
