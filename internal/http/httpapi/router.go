package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"beamband/internal/http/handlers"
	"beamband/internal/infra"
	"beamband/internal/middleware"
)

// NewRouter wires the API surface: catalog views under /v1 and the payment
// endpoints on the paths the web client already calls.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Logger(logger),
		chimw.Recoverer,
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/cities", func(r chi.Router) {
		r.Get("/", app.CitiesList)
		r.Get("/suggested", app.CitySuggested)
		r.Route("/{slug}", func(r chi.Router) {
			r.Get("/", app.CityDetail)
			r.Get("/events", app.CityEvents)
			r.Get("/milestones", app.CityMilestones)
			r.Get("/leaderboard", app.CityLeaderboard)
		})
	})

	// Payment endpoints carry the rate limit; catalog reads do not.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
		r.Post("/api/create-checkout-session", app.CreateCheckoutSession)
		r.Post("/api/create-payment-intent", app.CreatePaymentIntent)
	})

	return r
}
