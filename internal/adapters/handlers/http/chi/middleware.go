package chi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
	"webapp/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// LoggerMiddleware is a custom logging middleware
func LoggerMiddleware(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				if r.URL.Path != "/healthz" {

					l.Info("http_request",
						"request_id", middleware.GetReqID(r.Context()),
						"method", r.Method,
						"path", r.URL.Path,
						"route", RouteName(r),
						"status", ww.Status(),
						"duration", time.Since(start),
					)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// MetricsMiddleware counts and times every request per route.
// Emission is deferred so it happens exactly once, even when the handler panics.
func MetricsMiddleware(metrics port.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			defer func() {
				route := RouteName(r)
				metrics.Count(route)
				metrics.Timing(route, time.Since(start))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RouteName identifies a request by method and matched route pattern (ex: http.delete./v1/file/{id})
func RouteName(r *http.Request) string {
	pattern := "unmatched"
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			pattern = p
		}
	}
	return "http." + strings.ToLower(r.Method) + "." + pattern
}
