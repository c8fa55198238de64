package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/divyakumars/video-summarizer/internal/logger"
	"github.com/divyakumars/video-summarizer/internal/pipeline"
)

// Options configures the HTTP surface.
type Options struct {
	TempDir        string
	MaxUploadBytes int64
	AllowedOrigins []string
	Transcriber    string
	Generator      string
}

// NewRouter wires the upload page and the JSON API around p.
func NewRouter(p pipeline.Pipeline, log logger.Logger, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(log))
	r.Use(cors.Handler(corsOptions(opts.AllowedOrigins)))

	h := newHandler(p, log, opts)

	r.Get("/", h.Index)
	r.Post("/", h.SummarizeForm)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Post("/summaries", h.SummarizeJSON)
	})

	return r
}

func corsOptions(allowedOrigins []string) cors.Options {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	// When wildcard is used, disable AllowCredentials to prevent CSRF
	allowCreds := true
	for _, o := range allowedOrigins {
		if o == "*" {
			allowCreds = false
			break
		}
	}

	return cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: allowCreds,
		MaxAge:           300,
	}
}
