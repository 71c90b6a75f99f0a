package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"roi-calculator/service"
)

type Dependencies struct {
	ROI         *service.ROIService
	Sessions    *service.SessionService
	RateLimiter *RateLimiter
	Logger      zerolog.Logger
}

func NewRouter(deps Dependencies) *chi.Mux {
	estimates := NewEstimateHandler(deps.ROI)
	sessions := NewSessionHandler(deps.Sessions)

	router := chi.NewRouter()
	router.Use(Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", Health)

		r.Group(func(r chi.Router) {
			limit(r, deps.RateLimiter, "estimates")

			r.Get("/options", Options)

			r.Post("/estimates", estimates.Calculate)
			r.Get("/estimates", estimates.List)
			r.Get("/estimates/{id}", estimates.Get)
		})

		r.Group(func(r chi.Router) {
			limit(r, deps.RateLimiter, "sessions")

			r.Post("/sessions", sessions.Create)
			r.Get("/sessions/{id}", sessions.Get)
			r.Patch("/sessions/{id}/fields", sessions.SetField)
			r.Post("/sessions/{id}/compute", sessions.Compute)
			r.Post("/sessions/{id}/reset", sessions.Reset)
		})
	})

	return router
}

func limit(r chi.Router, limiter *RateLimiter, scope string) {
	if limiter != nil {
		r.Use(RateLimitMiddleware(limiter, scope))
	}
}
