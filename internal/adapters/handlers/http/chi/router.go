package chi

import (
	"log/slog"
	"net/http"
	"webapp/internal/adapters/handlers/http/chi/health"
	"webapp/internal/adapters/handlers/http/chi/v1/file"
	"webapp/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options configures NewRouter
type Options struct {
	Env            string
	MaxUploadBytes int64
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, metrics port.Metrics, healthHandler *health.Handler, fileHandler *file.HandlerV1, opts Options) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	//must stay outside Recoverer to see the 500 written after a panic
	r.Use(MetricsMiddleware(metrics))
	r.Use(middleware.Recoverer)
	if opts.MaxUploadBytes > 0 {
		r.Use(middleware.RequestSize(opts.MaxUploadBytes))
	}

	//the probe stays outside cors: every method but GET must reach the handler
	r.HandleFunc("/healthz", healthHandler.Check)

	r.Route("/v1", func(r chi.Router) {
		if opts.Env != "prod" {
			//preflights pass through so unsupported methods still answer 405
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:     []string{"http://localhost:*", "http://127.0.0.1:*"},
				AllowedMethods:     []string{"GET", "POST", "DELETE"},
				AllowedHeaders:     []string{"Accept", "Content-Type", "X-Request-ID"},
				ExposedHeaders:     []string{"Link"},
				AllowCredentials:   true,
				MaxAge:             300,
				OptionsPassthrough: true,
			}))
		}
		r.Mount("/file", fileHandler.Routes())
	})

	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Method(http.MethodGet, opts.MetricsPath, opts.MetricsHandler)
	}

	return r
}
