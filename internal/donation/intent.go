// Package donation models the lifecycle of a single donation form submission:
// validating user input, building a payment intent, and walking the
// Editing -> Submitting -> {Redirecting, Failed} state machine around the one
// side-effecting call to the payment gateway.
package donation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"beamband/internal/funding"
	"beamband/internal/providers/stripe"
)

// PresetAmounts are the fixed donation buttons offered by the form.
var PresetAmounts = []float64{25, 50, 100, 250, 500, 1000}

// State is the form submission state.
type State string

const (
	StateEditing     State = "editing"
	StateSubmitting  State = "submitting"
	StateRedirecting State = "redirecting"
	StateFailed      State = "failed"
)

// ValidationReason identifies which local check rejected the input.
type ValidationReason string

const (
	MissingName   ValidationReason = "missing_name"
	InvalidAmount ValidationReason = "invalid_amount"
)

// ValidationError is a local input rejection. It never reaches the network.
type ValidationError struct {
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case MissingName:
		return "donor name is required"
	case InvalidAmount:
		return "amount must be a positive number"
	}
	return "invalid donation input"
}

var (
	// ErrSubmissionInFlight rejects re-entry while a submit is outstanding.
	ErrSubmissionInFlight = errors.New("donation: submission already in flight")
	// ErrSubmissionComplete rejects submits after a successful redirect.
	ErrSubmissionComplete = errors.New("donation: submission already completed")
)

// FormInput is the raw, human-entered form state. A non-empty CustomAmount
// overrides the preset Amount, matching the form's free-text field.
type FormInput struct {
	DonorName    string
	Amount       float64
	CustomAmount string
	CityID       string
	CityName     string
	Message      string
	Anonymous    bool
}

// Intent is a validated donation request. Amount stays in major currency
// units; conversion to minor units happens once, at the gateway boundary.
// The idempotency key is minted here and reused for every retry of this
// submission, so a rapid double-click collapses into one processor session.
type Intent struct {
	DonorName      string
	CityID         string
	CityName       string
	Message        string
	Anonymous      bool
	Amount         float64
	IdempotencyKey string
}

// BuildIntent validates form input and constructs an Intent. All checks are
// synchronous and happen before any network call.
func BuildIntent(in FormInput) (*Intent, error) {
	name := strings.TrimSpace(in.DonorName)
	if name == "" {
		return nil, &ValidationError{Reason: MissingName}
	}

	amount := in.Amount
	if custom := strings.TrimSpace(in.CustomAmount); custom != "" {
		parsed, err := strconv.ParseFloat(custom, 64)
		if err != nil {
			parsed = 0
		}
		amount = parsed
	}
	if !(amount > 0) || math.IsInf(amount, 0) {
		return nil, &ValidationError{Reason: InvalidAmount}
	}

	return &Intent{
		DonorName:      name,
		CityID:         in.CityID,
		CityName:       in.CityName,
		Message:        strings.TrimSpace(in.Message),
		Anonymous:      in.Anonymous,
		Amount:         amount,
		IdempotencyKey: uuid.NewString(),
	}, nil
}

// PaymentIntentParams builds the gateway request for the in-page collection
// flow, converting to minor units at the boundary.
func (i *Intent) PaymentIntentParams() stripe.PaymentIntentParams {
	return stripe.PaymentIntentParams{
		AmountMinor: funding.MinorUnits(i.Amount),
		Metadata: map[string]string{
			"city_id":    i.CityID,
			"donor_name": i.DonorName,
		},
		IdempotencyKey: i.IdempotencyKey,
	}
}

// Gateway is the single outbound dependency of a submission.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, params stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// Submission drives one intent through the form state machine.
type Submission struct {
	intent  *Intent
	origin  string
	state   State
	session *stripe.CheckoutSession
}

// NewSubmission wraps a validated intent. Success and cancel redirects are
// scoped to the originating city page under origin.
func NewSubmission(intent *Intent, origin string) *Submission {
	return &Submission{intent: intent, origin: origin, state: StateEditing}
}

// State returns the current form state.
func (s *Submission) State() State { return s.state }

// Session returns the checkout session after a successful submit.
func (s *Submission) Session() *stripe.CheckoutSession { return s.session }

// Intent returns the validated intent backing this submission.
func (s *Submission) Intent() *Intent { return s.intent }

// Submit issues the single gateway call. It may be called from Editing or,
// for a user-initiated retry, from Failed; the retry reuses the intent's
// idempotency key so the processor can deduplicate.
func (s *Submission) Submit(ctx context.Context, gw Gateway) error {
	switch s.state {
	case StateSubmitting:
		return ErrSubmissionInFlight
	case StateRedirecting:
		return ErrSubmissionComplete
	}

	s.state = StateSubmitting
	session, err := gw.CreateCheckoutSession(ctx, s.checkoutParams())
	if err != nil {
		s.state = StateFailed
		return fmt.Errorf("submit donation: %w", err)
	}
	s.session = session
	s.state = StateRedirecting
	return nil
}

// Reset returns a failed submission to Editing so the form is interactive
// again. It is a no-op in any other state.
func (s *Submission) Reset() {
	if s.state == StateFailed {
		s.state = StateEditing
	}
}

func (s *Submission) checkoutParams() stripe.CheckoutSessionParams {
	i := s.intent
	description := i.Message
	if description == "" {
		description = fmt.Sprintf("Supporting %s community initiatives", i.CityName)
	}
	cityPage := s.origin + "/city/" + i.CityID
	amount := strconv.FormatFloat(i.Amount, 'f', -1, 64)

	return stripe.CheckoutSessionParams{
		AmountMinor:        funding.MinorUnits(i.Amount),
		ProductName:        "Donation to " + i.CityName,
		ProductDescription: description,
		SuccessURL:         cityPage + "?success=true&amount=" + amount,
		CancelURL:          cityPage,
		ClientReferenceID:  i.CityID,
		Metadata: map[string]string{
			"city_id":    i.CityID,
			"donor_name": i.DonorName,
			"message":    i.Message,
			"anonymous":  strconv.FormatBool(i.Anonymous),
		},
		IdempotencyKey: i.IdempotencyKey,
	}
}
