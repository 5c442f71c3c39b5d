package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"beamband/internal/donation"
)

type checkoutSessionRequest struct {
	Amount      float64 `json:"amount"`
	CityID      string  `json:"cityId"`
	CityName    string  `json:"cityName"`
	DonorName   string  `json:"donorName"`
	Message     string  `json:"message"`
	IsAnonymous bool    `json:"isAnonymous"`
}

type paymentIntentRequest struct {
	Amount    float64 `json:"amount"`
	CityID    string  `json:"cityId"`
	DonorName string  `json:"donorName"`
}

// CreateCheckoutSession validates a donation request and creates a hosted
// checkout session with the payment processor. Redirect targets are scoped to
// the originating city page under the caller's Origin.
func (a *App) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req checkoutSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Amount == 0 || req.CityID == "" || req.CityName == "" || req.DonorName == "" {
		a.error(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Amount <= 0 {
		a.error(w, http.StatusBadRequest, "Amount must be greater than 0")
		return
	}

	intent, err := donation.BuildIntent(donation.FormInput{
		DonorName: req.DonorName,
		Amount:    req.Amount,
		CityID:    req.CityID,
		CityName:  req.CityName,
		Message:   req.Message,
		Anonymous: req.IsAnonymous,
	})
	if err != nil {
		a.error(w, http.StatusBadRequest, checkoutValidationMessage(err))
		return
	}

	sub := donation.NewSubmission(intent, a.origin(r))
	if err := sub.Submit(r.Context(), a.Payments); err != nil {
		// The processor cause is logged only; callers get a generic,
		// retry-eligible failure.
		a.Logger.Error().Err(err).Str("city_id", req.CityID).Msg("create checkout session")
		a.error(w, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}

	a.json(w, http.StatusOK, map[string]string{"sessionId": sub.Session().ID})
}

// CreatePaymentIntent is the in-page alternative to the hosted checkout
// redirect: it returns the processor's client secret instead of a session.
func (a *App) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req paymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Amount == 0 || req.CityID == "" || req.DonorName == "" {
		a.error(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Amount <= 0 {
		a.error(w, http.StatusBadRequest, "Amount must be greater than 0")
		return
	}

	intent, err := donation.BuildIntent(donation.FormInput{
		DonorName: req.DonorName,
		Amount:    req.Amount,
		CityID:    req.CityID,
	})
	if err != nil {
		a.error(w, http.StatusBadRequest, checkoutValidationMessage(err))
		return
	}

	result, err := a.Payments.CreatePaymentIntent(r.Context(), intent.PaymentIntentParams())
	if err != nil {
		a.Logger.Error().Err(err).Str("city_id", req.CityID).Msg("create payment intent")
		a.error(w, http.StatusInternalServerError, "Failed to create payment intent")
		return
	}

	a.json(w, http.StatusOK, map[string]string{"clientSecret": result.ClientSecret})
}

// origin resolves the redirect base for checkout flows: the caller's Origin
// header, falling back to the configured site URL for non-browser clients.
func (a *App) origin(r *http.Request) string {
	if origin := r.Header.Get("Origin"); origin != "" {
		return origin
	}
	return a.SiteBaseURL
}

func checkoutValidationMessage(err error) string {
	var verr *donation.ValidationError
	if errors.As(err, &verr) && verr.Reason == donation.InvalidAmount {
		return "Amount must be greater than 0"
	}
	return "Missing required fields"
}
