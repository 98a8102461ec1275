package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chartadvisor/chart-advisor/internal/api"
	apiMiddleware "github.com/chartadvisor/chart-advisor/internal/api/middleware"
	"github.com/chartadvisor/chart-advisor/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Heartbeat("/health"))
	r.Use(apiMiddleware.NewTrace(app.logger))
	r.Use(app.metrics.Middleware)
	r.Use(middleware.Recoverer)

	recommendHandler := api.NewRecommendHandler(app.generator, app.metrics, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Every route under /api accepts POST only.
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithMethodNotAllowed(w, r, http.MethodPost)
		})

		r.With(middleware.RequestSize(app.config.Server.MaxBodyBytes)).
			Post("/recommend", recommendHandler.Recommend)
	})

	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
