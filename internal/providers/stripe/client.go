// Package stripe is a minimal client for the two Stripe REST endpoints this
// service uses: checkout session and payment intent creation. All money
// movement, receipts and webhooks stay on Stripe's side.
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"beamband/internal/infra"
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = errors.New("stripe: secret key is required")

// Options configures the Stripe API client.
type Options struct {
	APIKey         string
	BaseURL        string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls against the Stripe API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
}

// CheckoutSessionParams describes a single-line-item hosted checkout.
// Amounts are in minor units; the caller converts exactly once.
type CheckoutSessionParams struct {
	AmountMinor        int64
	Currency           string
	ProductName        string
	ProductDescription string
	Quantity           int64
	SuccessURL         string
	CancelURL          string
	ClientReferenceID  string
	Metadata           map[string]string
	IdempotencyKey     string
}

// CheckoutSession is the opaque processor-hosted pending purchase.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// PaymentIntentParams describes an in-page payment collection.
type PaymentIntentParams struct {
	AmountMinor    int64
	Currency       string
	Metadata       map[string]string
	IdempotencyKey string
}

// PaymentIntent carries the client secret for in-page completion.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.stripe.com/v1"
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// HasCredentials reports whether the client can perform remote calls.
func (c *Client) HasCredentials() bool {
	return c.apiKey != ""
}

// CreateCheckoutSession creates a hosted checkout session for one donation.
func (c *Client) CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error) {
	if !c.HasCredentials() {
		return nil, ErrMissingAPIKey
	}
	if params.AmountMinor <= 0 {
		return nil, errors.New("stripe: amount must be positive")
	}
	currency := params.Currency
	if currency == "" {
		currency = "usd"
	}
	quantity := params.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("line_items[0][price_data][currency]", currency)
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	if params.ProductDescription != "" {
		form.Set("line_items[0][price_data][product_data][description]", params.ProductDescription)
	}
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.AmountMinor, 10))
	form.Set("line_items[0][quantity]", strconv.FormatInt(quantity, 10))
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	if params.ClientReferenceID != "" {
		form.Set("client_reference_id", params.ClientReferenceID)
	}
	encodeMetadata(form, params.Metadata)

	var session CheckoutSession
	if err := c.post(ctx, "/checkout/sessions", form, params.IdempotencyKey, &session); err != nil {
		return nil, err
	}
	if session.ID == "" {
		return nil, errors.New("stripe: empty session id")
	}
	c.logger.Debug().
		Str("session_id", session.ID).
		Int64("amount_minor", params.AmountMinor).
		Msg("stripe: created checkout session")
	return &session, nil
}

// CreatePaymentIntent creates a payment intent for in-page collection.
func (c *Client) CreatePaymentIntent(ctx context.Context, params PaymentIntentParams) (*PaymentIntent, error) {
	if !c.HasCredentials() {
		return nil, ErrMissingAPIKey
	}
	if params.AmountMinor <= 0 {
		return nil, errors.New("stripe: amount must be positive")
	}
	currency := params.Currency
	if currency == "" {
		currency = "usd"
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.AmountMinor, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	encodeMetadata(form, params.Metadata)

	var intent PaymentIntent
	if err := c.post(ctx, "/payment_intents", form, params.IdempotencyKey, &intent); err != nil {
		return nil, err
	}
	if intent.ClientSecret == "" {
		return nil, errors.New("stripe: empty client secret")
	}
	c.logger.Debug().
		Str("payment_intent_id", intent.ID).
		Int64("amount_minor", params.AmountMinor).
		Msg("stripe: created payment intent")
	return &intent, nil
}

func (c *Client) post(ctx context.Context, path string, form url.Values, idempotencyKey string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("stripe: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("stripe: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("stripe: read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		var detail errorResponse
		if err := json.Unmarshal(raw, &detail); err == nil && detail.Error.Message != "" {
			return fmt.Errorf("stripe: %s (%s)", detail.Error.Message, detail.Error.Type)
		}
		return fmt.Errorf("stripe: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("stripe: decode response: %w", err)
	}
	return nil
}

func encodeMetadata(form url.Values, metadata map[string]string) {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		form.Set("metadata["+k+"]", metadata[k])
	}
}
