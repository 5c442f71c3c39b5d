package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"beamband/internal/domain"
	"beamband/internal/infra"
	"beamband/internal/infra/geoip"
	"beamband/internal/providers/stripe"
)

// PaymentGateway is the slice of the Stripe client the handlers depend on.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, params stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	CreatePaymentIntent(ctx context.Context, params stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// App holds the handlers' injected dependencies.
type App struct {
	Cities     domain.CityRepository
	Events     domain.EventRepository
	Milestones domain.MilestoneRepository
	Donations  domain.DonationRepository

	Payments PaymentGateway
	Geo      geoip.RegionResolver

	Logger           infra.Logger
	SiteBaseURL      string
	LeaderboardLimit int
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}
