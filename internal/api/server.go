package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	"github.com/diazpablogon/footballstats/internal/api/handler"
	"github.com/diazpablogon/footballstats/internal/cache"
	"github.com/diazpablogon/footballstats/internal/config"
	"github.com/diazpablogon/footballstats/internal/store"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(s *store.Store, appCache *cache.Cache, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitReqs, cfg.RateLimitWindow.Std()))
	}

	// --- Handler dependencies ---
	h := handler.New(s, appCache, cfg)

	// --- Routes ---
	r.Get("/", h.Root)
	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/leagues", h.GetLeagues)
		r.Get("/ranking/{season}/{league}", h.GetRanking)
	})

	return r
}
