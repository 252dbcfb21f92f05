package instrumented

import (
	"errors"
	"log/slog"
	"time"
	"webapp/internal/core/domain"
	"webapp/internal/core/port"
)

// Measure runs fn and emits exactly one timing sample named operation, on success, failure or
// panic. The result and error of fn are returned unchanged.
func Measure[T any](metrics port.Metrics, logger *slog.Logger, operation string, fn func() (T, error)) (result T, err error) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		metrics.Timing(operation, elapsed)
		if err != nil && !errors.Is(err, domain.ErrFileNotFound) {
			logger.Error("dependency call failed",
				"operation", operation,
				"duration", elapsed,
				"error", err,
			)
		}
	}()

	return fn()
}

// MeasureErr is Measure for calls returning only an error
func MeasureErr(metrics port.Metrics, logger *slog.Logger, operation string, fn func() error) error {
	_, err := Measure(metrics, logger, operation, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
