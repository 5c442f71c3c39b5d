package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"beamband/internal/infra"
	"beamband/internal/providers/stripe"
)

type fakeGateway struct {
	sessionCalls  int
	intentCalls   int
	sessionParams stripe.CheckoutSessionParams
	intentParams  stripe.PaymentIntentParams
	err           error
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, params stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	g.sessionCalls++
	g.sessionParams = params
	if g.err != nil {
		return nil, g.err
	}
	return &stripe.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/pay/cs_test_123"}, nil
}

func (g *fakeGateway) CreatePaymentIntent(_ context.Context, params stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	g.intentCalls++
	g.intentParams = params
	if g.err != nil {
		return nil, g.err
	}
	return &stripe.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret_456"}, nil
}

func testApp(gw *fakeGateway) *App {
	return &App{
		Payments:    gw,
		Logger:      infra.Logger(zerolog.New(io.Discard)),
		SiteBaseURL: "http://localhost:3000",
	}
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestCreateCheckoutSessionSuccess(t *testing.T) {
	gw := &fakeGateway{}
	app := testApp(gw)

	payload := `{"amount":100,"cityId":"orlando","cityName":"Orlando","donorName":"Jane","message":"","isAnonymous":false}`
	req := httptest.NewRequest("POST", "/api/create-checkout-session", strings.NewReader(payload))
	req.Header.Set("Origin", "https://beamband.org")
	rr := httptest.NewRecorder()

	app.CreateCheckoutSession(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if body := decodeBody(t, rr); body["sessionId"] != "cs_test_123" {
		t.Fatalf("sessionId = %q", body["sessionId"])
	}
	if gw.sessionCalls != 1 {
		t.Fatalf("gateway calls = %d, want 1", gw.sessionCalls)
	}

	params := gw.sessionParams
	if !strings.Contains(params.SuccessURL, "city/orlando") || !strings.Contains(params.SuccessURL, "amount=100") {
		t.Fatalf("success url = %q", params.SuccessURL)
	}
	if params.CancelURL != "https://beamband.org/city/orlando" {
		t.Fatalf("cancel url = %q", params.CancelURL)
	}
	if params.AmountMinor != 10000 {
		t.Fatalf("amount minor = %d, want 10000", params.AmountMinor)
	}
	if params.ProductName != "Donation to Orlando" {
		t.Fatalf("product name = %q", params.ProductName)
	}
	if params.Metadata["donor_name"] != "Jane" || params.Metadata["anonymous"] != "false" {
		t.Fatalf("metadata = %v", params.Metadata)
	}
	if params.IdempotencyKey == "" {
		t.Fatal("expected idempotency key on processor call")
	}
}

func TestCreateCheckoutSessionValidation(t *testing.T) {
	cases := []struct {
		name      string
		payload   string
		wantError string
	}{
		{
			name:      "missing cityId",
			payload:   `{"amount":100,"cityName":"Orlando","donorName":"Jane"}`,
			wantError: "Missing required fields",
		},
		{
			name:      "missing donorName",
			payload:   `{"amount":100,"cityId":"orlando","cityName":"Orlando"}`,
			wantError: "Missing required fields",
		},
		{
			name:      "zero amount",
			payload:   `{"amount":0,"cityId":"orlando","cityName":"Orlando","donorName":"Jane"}`,
			wantError: "Missing required fields",
		},
		{
			name:      "negative amount",
			payload:   `{"amount":-5,"cityId":"orlando","cityName":"Orlando","donorName":"Jane"}`,
			wantError: "Amount must be greater than 0",
		},
		{
			name:      "whitespace donor name",
			payload:   `{"amount":100,"cityId":"orlando","cityName":"Orlando","donorName":"   "}`,
			wantError: "Missing required fields",
		},
		{
			name:      "malformed body",
			payload:   `{"amount":`,
			wantError: "Missing required fields",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &fakeGateway{}
			app := testApp(gw)

			req := httptest.NewRequest("POST", "/api/create-checkout-session", strings.NewReader(tc.payload))
			rr := httptest.NewRecorder()
			app.CreateCheckoutSession(rr, req)

			if rr.Code != 400 {
				t.Fatalf("status = %d, want 400", rr.Code)
			}
			if body := decodeBody(t, rr); body["error"] != tc.wantError {
				t.Fatalf("error = %q, want %q", body["error"], tc.wantError)
			}
			if gw.sessionCalls != 0 {
				t.Fatalf("gateway called %d times for invalid input", gw.sessionCalls)
			}
		})
	}
}

func TestCreateCheckoutSessionGatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("stripe: status 503")}
	app := testApp(gw)

	payload := `{"amount":100,"cityId":"orlando","cityName":"Orlando","donorName":"Jane"}`
	req := httptest.NewRequest("POST", "/api/create-checkout-session", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	app.CreateCheckoutSession(rr, req)

	if rr.Code != 500 {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if body := decodeBody(t, rr); body["error"] != "Failed to create checkout session" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestCreateCheckoutSessionFallsBackToSiteBaseURL(t *testing.T) {
	gw := &fakeGateway{}
	app := testApp(gw)

	payload := `{"amount":50,"cityId":"tampa","cityName":"Tampa","donorName":"Jane"}`
	req := httptest.NewRequest("POST", "/api/create-checkout-session", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	app.CreateCheckoutSession(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if want := "http://localhost:3000/city/tampa"; gw.sessionParams.CancelURL != want {
		t.Fatalf("cancel url = %q, want %q", gw.sessionParams.CancelURL, want)
	}
}

func TestCreatePaymentIntentSuccess(t *testing.T) {
	gw := &fakeGateway{}
	app := testApp(gw)

	payload := `{"amount":19.999,"cityId":"orlando","donorName":"Jane"}`
	req := httptest.NewRequest("POST", "/api/create-payment-intent", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	app.CreatePaymentIntent(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if body := decodeBody(t, rr); body["clientSecret"] != "pi_123_secret_456" {
		t.Fatalf("clientSecret = %q", body["clientSecret"])
	}
	if gw.intentParams.AmountMinor != 2000 {
		t.Fatalf("amount minor = %d, want 2000", gw.intentParams.AmountMinor)
	}
	if gw.intentParams.Metadata["city_id"] != "orlando" {
		t.Fatalf("metadata = %v", gw.intentParams.Metadata)
	}
}

func TestCreatePaymentIntentValidationAndFailure(t *testing.T) {
	gw := &fakeGateway{}
	app := testApp(gw)

	req := httptest.NewRequest("POST", "/api/create-payment-intent", strings.NewReader(`{"amount":100,"donorName":"Jane"}`))
	rr := httptest.NewRecorder()
	app.CreatePaymentIntent(rr, req)
	if rr.Code != 400 {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if body := decodeBody(t, rr); body["error"] != "Missing required fields" {
		t.Fatalf("error = %q", body["error"])
	}

	gw.err = errors.New("stripe: status 500")
	req = httptest.NewRequest("POST", "/api/create-payment-intent", strings.NewReader(`{"amount":100,"cityId":"orlando","donorName":"Jane"}`))
	rr = httptest.NewRecorder()
	app.CreatePaymentIntent(rr, req)
	if rr.Code != 500 {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if body := decodeBody(t, rr); body["error"] != "Failed to create payment intent" {
		t.Fatalf("error = %q", body["error"])
	}
}
